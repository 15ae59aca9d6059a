// internal/services/catalog_service.go
package services

import (
	"sort"
	"strings"

	"github.com/petville/petcare-backend/internal/models"
	"github.com/petville/petcare-backend/internal/store"
)

type CatalogService struct {
	catalog *store.CatalogStore
}

type ProductSearchParams struct {
	Query    string
	Category string // "All" or a ProductCategory
	PetType  string // "All" or a PetType
	SortBy   string // popularity | priceLow | priceHigh | newest
}

func NewCatalogService(catalog *store.CatalogStore) *CatalogService {
	return &CatalogService{catalog: catalog}
}

func (s *CatalogService) ListProducts() []models.Product {
	return s.catalog.List()
}

func (s *CatalogService) GetProduct(id int) (models.Product, error) {
	p, ok := s.catalog.Get(id)
	if !ok {
		return models.Product{}, ErrNotFound
	}
	return p, nil
}

// SearchProducts filters by free-text query, category and pet type, then
// sorts. Unrecognized sort keys fall back to popularity.
func (s *CatalogService) SearchProducts(params ProductSearchParams) []models.Product {
	products := s.catalog.List()

	if params.Query != "" {
		query := strings.ToLower(params.Query)
		filtered := products[:0]
		for _, p := range products {
			if strings.Contains(strings.ToLower(p.Name), query) ||
				strings.Contains(strings.ToLower(p.Description), query) ||
				strings.Contains(strings.ToLower(p.Tag), query) {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	if params.Category != "" && params.Category != "All" {
		filtered := products[:0]
		for _, p := range products {
			if string(p.Category) == params.Category {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	if params.PetType != "" && params.PetType != "All" {
		filtered := products[:0]
		for _, p := range products {
			if string(p.PetType) == params.PetType {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	switch params.SortBy {
	case "priceLow":
		sort.Slice(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case "priceHigh":
		sort.Slice(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case "newest":
		sort.Slice(products, func(i, j int) bool { return products[i].ID > products[j].ID })
	default: // popularity
		sort.Slice(products, func(i, j int) bool { return products[i].Reviews > products[j].Reviews })
	}

	return products
}

// Categories returns the fixed category list for the shop filter bar.
func (s *CatalogService) Categories() []models.ProductCategory {
	return []models.ProductCategory{
		models.CategoryFood,
		models.CategoryToys,
		models.CategoryMedicine,
		models.CategoryGrooming,
		models.CategoryAccessories,
	}
}
