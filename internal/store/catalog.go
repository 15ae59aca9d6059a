// internal/store/catalog.go
package store

import "github.com/petville/petcare-backend/internal/models"

// CatalogStore is the read-only product catalog, seeded once at construction.
type CatalogStore struct {
	products []models.Product
	byID     map[int]models.Product
}

func NewCatalogStore(products []models.Product) *CatalogStore {
	s := &CatalogStore{
		products: products,
		byID:     make(map[int]models.Product, len(products)),
	}
	for _, p := range products {
		s.byID[p.ID] = p
	}
	return s
}

// List returns a copy of the full catalog.
func (s *CatalogStore) List() []models.Product {
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *CatalogStore) Get(id int) (models.Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}
