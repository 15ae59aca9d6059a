// internal/services/checkout_service.go
package services

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/petville/petcare-backend/internal/models"
	"github.com/petville/petcare-backend/internal/store"
	"github.com/petville/petcare-backend/internal/utils"
)

// CheckoutService converts the current cart snapshot plus delivery and
// payment form data into an Order. Payment is a simulated terminal step and
// is never actually charged.
type CheckoutService struct {
	cart   *store.CartStore
	orders *store.OrderStore
}

type DeliveryInfo struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required,phone10"`
	Address string `json:"address" validate:"required"`
}

type PaymentInfo struct {
	Method     models.PaymentMethod `json:"method" validate:"required,oneof=Cash UPI Card"`
	CardNumber string               `json:"card_number" validate:"required_if=Method Card,omitempty,numeric,min=12,max=19"`
	Expiry     string               `json:"expiry" validate:"required_if=Method Card,omitempty,card_expiry"`
	CVV        string               `json:"cvv" validate:"required_if=Method Card,omitempty,numeric,min=3,max=4"`
}

type CheckoutRequest struct {
	Delivery DeliveryInfo `json:"delivery"`
	Payment  PaymentInfo  `json:"payment"`
}

func NewCheckoutService(cart *store.CartStore, orders *store.OrderStore) *CheckoutService {
	return &CheckoutService{cart: cart, orders: orders}
}

// Submit validates the form all-or-nothing, then creates the order from the
// cart snapshot at submit time and clears the cart.
func (s *CheckoutService) Submit(req *CheckoutRequest) (*models.Order, error) {
	if err := utils.ValidateStruct(&req.Delivery); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := utils.ValidateStruct(&req.Payment); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	snapshot := s.cart.Snapshot()
	if len(snapshot.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	now := time.Now()
	order := models.Order{
		ID:               fmt.Sprintf("ORD-%d", rand.Intn(9000)+1000),
		Status:           models.OrderStatusOrdered,
		OrderDate:        now,
		ExpectedDelivery: now.AddDate(0, 0, 5),
		Total:            snapshot.Total,
		TrackingID:       fmt.Sprintf("TRK-%06d-IND", rand.Intn(1000000)),
	}
	for _, line := range snapshot.Lines {
		order.Lines = append(order.Lines, models.OrderLine{
			ProductID: line.ProductID,
			Name:      line.Name,
			ImageURL:  line.ImageURL,
			Quantity:  line.Quantity,
		})
	}

	s.orders.Add(order)
	s.cart.Clear()

	logrus.WithFields(logrus.Fields{
		"order_id": order.ID,
		"total":    order.Total,
		"method":   req.Payment.Method,
	}).Info("Order placed")

	return &order, nil
}
