// internal/handlers/orders.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/petville/petcare-backend/internal/services"
	"github.com/petville/petcare-backend/internal/utils"
)

type OrderHandler struct {
	checkoutService *services.CheckoutService
	orderService    *services.OrderService
}

func NewOrderHandler(checkoutService *services.CheckoutService, orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{
		checkoutService: checkoutService,
		orderService:    orderService,
	}
}

// POST /checkout
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req services.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	var fieldErrors []utils.ValidationError
	fieldErrors = append(fieldErrors, utils.GetValidationErrors(utils.ValidateStruct(&req.Delivery))...)
	fieldErrors = append(fieldErrors, utils.GetValidationErrors(utils.ValidateStruct(&req.Payment))...)
	if len(fieldErrors) > 0 {
		utils.ValidationErrorResponse(c, fieldErrors)
		return
	}

	order, err := h.checkoutService.Submit(&req)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			utils.ConflictResponse(c, "Cart is empty")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.CreatedResponse(c, order)
}

// GET /orders
func (h *OrderHandler) GetOrders(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{"orders": h.orderService.ListOrders()})
}

// GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.orderService.GetOrder(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "Order")
		return
	}
	utils.SuccessResponse(c, order)
}

// GET /orders/:id/timeline
func (h *OrderHandler) GetTimeline(c *gin.Context) {
	stages, err := h.orderService.Timeline(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "Order")
		return
	}
	utils.SuccessResponse(c, gin.H{"stages": stages})
}

// POST /orders/:id/cancel
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	order, err := h.orderService.Cancel(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "Order")
			return
		}
		if errors.Is(err, services.ErrOrderNotCancellable) {
			utils.ConflictResponse(c, err.Error())
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, order)
}

// POST /orders/:id/reorder
func (h *OrderHandler) Reorder(c *gin.Context) {
	snapshot, err := h.orderService.Reorder(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "Order")
		return
	}
	utils.SuccessResponse(c, snapshot)
}
