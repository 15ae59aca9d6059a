// internal/services/cart_service.go
package services

import (
	"github.com/petville/petcare-backend/internal/models"
	"github.com/petville/petcare-backend/internal/store"
)

// CartService fronts the cart store and resolves product ids against the
// catalog, so only real catalog entries can enter the cart.
type CartService struct {
	cart    *store.CartStore
	catalog *store.CatalogStore
}

func NewCartService(cart *store.CartStore, catalog *store.CatalogStore) *CartService {
	return &CartService{cart: cart, catalog: catalog}
}

func (s *CartService) AddToCart(productID, qty int) (models.CartSnapshot, error) {
	product, ok := s.catalog.Get(productID)
	if !ok {
		return models.CartSnapshot{}, ErrNotFound
	}
	return s.cart.AddToCart(product, qty), nil
}

// UpdateQuantity applies delta to a line. Unknown ids are a silent no-op by
// policy, so the current snapshot comes back without an error.
func (s *CartService) UpdateQuantity(productID, delta int) models.CartSnapshot {
	return s.cart.UpdateQuantity(productID, delta)
}

func (s *CartService) RemoveFromCart(productID int) models.CartSnapshot {
	return s.cart.RemoveFromCart(productID)
}

func (s *CartService) Clear() models.CartSnapshot {
	return s.cart.Clear()
}

func (s *CartService) Snapshot() models.CartSnapshot {
	return s.cart.Snapshot()
}
