// internal/handlers/addresses.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/petville/petcare-backend/internal/services"
	"github.com/petville/petcare-backend/internal/utils"
)

type AddressHandler struct {
	addressService *services.AddressService
}

func NewAddressHandler(addressService *services.AddressService) *AddressHandler {
	return &AddressHandler{addressService: addressService}
}

// GET /addresses
func (h *AddressHandler) GetAddresses(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{"addresses": h.addressService.List()})
}

// GET /addresses/default
func (h *AddressHandler) GetDefaultAddress(c *gin.Context) {
	address, ok := h.addressService.Default()
	if !ok {
		utils.NotFoundResponse(c, "Default address")
		return
	}
	utils.SuccessResponse(c, address)
}

// POST /addresses
func (h *AddressHandler) AddAddress(c *gin.Context) {
	var req services.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	address, err := h.addressService.Add(&req)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.CreatedResponse(c, address)
}

// PUT /addresses/:id
func (h *AddressHandler) UpdateAddress(c *gin.Context) {
	var req services.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	address, err := h.addressService.Update(c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "Address")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, address)
}

// PUT /addresses/:id/default
func (h *AddressHandler) SetDefaultAddress(c *gin.Context) {
	address, err := h.addressService.SetDefault(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "Address")
		return
	}
	utils.SuccessResponse(c, address)
}

// DELETE /addresses/:id
func (h *AddressHandler) DeleteAddress(c *gin.Context) {
	if err := h.addressService.Delete(c.Param("id")); err != nil {
		utils.NotFoundResponse(c, "Address")
		return
	}
	utils.SuccessResponse(c, gin.H{"deleted": true})
}
