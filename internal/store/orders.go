// internal/store/orders.go
package store

import (
	"sync"

	"github.com/petville/petcare-backend/internal/models"
)

// OrderStore owns the process-wide order list. Orders are appended on
// checkout, have their status mutated by cancellation only, and are never
// deleted.
type OrderStore struct {
	mtx    sync.Mutex
	orders []models.Order
}

func NewOrderStore(seed []models.Order) *OrderStore {
	return &OrderStore{orders: seed}
}

// List returns orders newest-first.
func (s *OrderStore) List() []models.Order {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	out := make([]models.Order, len(s.orders))
	for i, o := range s.orders {
		out[len(s.orders)-1-i] = o
	}
	return out
}

func (s *OrderStore) Get(id string) (models.Order, bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return models.Order{}, false
}

func (s *OrderStore) Add(order models.Order) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.orders = append(s.orders, order)
}

// SetStatus mutates an order's status in place and reports whether the order
// exists.
func (s *OrderStore) SetStatus(id string, status models.OrderStatus) bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			return true
		}
	}
	return false
}
