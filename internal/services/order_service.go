// internal/services/order_service.go
package services

import (
	"errors"

	"github.com/petville/petcare-backend/internal/models"
	"github.com/petville/petcare-backend/internal/store"
)

var ErrOrderNotCancellable = errors.New("order can no longer be cancelled")

type OrderService struct {
	orders *store.OrderStore
	cart   *CartService
}

func NewOrderService(orders *store.OrderStore, cart *CartService) *OrderService {
	return &OrderService{orders: orders, cart: cart}
}

func (s *OrderService) ListOrders() []models.Order {
	return s.orders.List()
}

func (s *OrderService) GetOrder(id string) (models.Order, error) {
	order, ok := s.orders.Get(id)
	if !ok {
		return models.Order{}, ErrNotFound
	}
	return order, nil
}

// StageCompleted reports whether the named stage is complete for the order:
// true iff the stage's index in the fixed sequence is at or before the index
// of the order's status. A cancelled order shows only Ordered as completed.
func StageCompleted(order models.Order, stage models.OrderStatus) bool {
	if order.Status == models.OrderStatusCancelled {
		return stage == models.OrderStatusOrdered
	}

	currentIndex := stageIndex(order.Status)
	stageIdx := stageIndex(stage)
	if stageIdx < 0 || currentIndex < 0 {
		return false
	}
	return stageIdx <= currentIndex
}

// Timeline renders the five-stage progression with per-stage completion.
func (s *OrderService) Timeline(id string) ([]models.TimelineStage, error) {
	order, ok := s.orders.Get(id)
	if !ok {
		return nil, ErrNotFound
	}

	stages := make([]models.TimelineStage, len(models.StageSequence))
	for i, stage := range models.StageSequence {
		stages[i] = models.TimelineStage{
			Name:      stage,
			Completed: StageCompleted(order, stage),
		}
	}
	return stages, nil
}

// Cancel is the terminal escape from the stage sequence. Delivered and
// already-cancelled orders cannot be cancelled.
func (s *OrderService) Cancel(id string) (models.Order, error) {
	order, ok := s.orders.Get(id)
	if !ok {
		return models.Order{}, ErrNotFound
	}
	if order.Status == models.OrderStatusDelivered || order.Status == models.OrderStatusCancelled {
		return models.Order{}, ErrOrderNotCancellable
	}

	s.orders.SetStatus(id, models.OrderStatusCancelled)
	order.Status = models.OrderStatusCancelled
	return order, nil
}

// Reorder puts a past order's lines back into the cart. Lines whose product
// has left the catalog are skipped.
func (s *OrderService) Reorder(id string) (models.CartSnapshot, error) {
	order, ok := s.orders.Get(id)
	if !ok {
		return models.CartSnapshot{}, ErrNotFound
	}

	snapshot := s.cart.Snapshot()
	for _, line := range order.Lines {
		if snap, err := s.cart.AddToCart(line.ProductID, line.Quantity); err == nil {
			snapshot = snap
		}
	}
	return snapshot, nil
}

func stageIndex(status models.OrderStatus) int {
	for i, stage := range models.StageSequence {
		if stage == status {
			return i
		}
	}
	return -1
}
