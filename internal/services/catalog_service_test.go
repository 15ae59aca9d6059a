// internal/services/catalog_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/petville/petcare-backend/internal/store"
)

func newCatalogService() *CatalogService {
	return NewCatalogService(store.NewCatalogStore(store.SeedProducts()))
}

func TestSearchProductsByQuery(t *testing.T) {
	svc := newCatalogService()

	products := svc.SearchProducts(ProductSearchParams{Query: "puppy"})
	assert.Len(t, products, 1)
	assert.Equal(t, 1, products[0].ID)

	// Tag text is searched too.
	products = svc.SearchProducts(ProductSearchParams{Query: "training reward"})
	assert.Len(t, products, 1)
	assert.Equal(t, 8, products[0].ID)
}

func TestSearchProductsByCategoryAndPetType(t *testing.T) {
	svc := newCatalogService()

	food := svc.SearchProducts(ProductSearchParams{Category: "Food"})
	assert.Len(t, food, 2)

	cats := svc.SearchProducts(ProductSearchParams{PetType: "Cat"})
	assert.Len(t, cats, 1)
	assert.Equal(t, 5, cats[0].ID)

	all := svc.SearchProducts(ProductSearchParams{Category: "All", PetType: "All"})
	assert.Len(t, all, 4)
}

func TestSearchProductsSorting(t *testing.T) {
	svc := newCatalogService()

	byPriceLow := svc.SearchProducts(ProductSearchParams{SortBy: "priceLow"})
	assert.Equal(t, 2, byPriceLow[0].ID)
	assert.Equal(t, 5, byPriceLow[len(byPriceLow)-1].ID)

	byPriceHigh := svc.SearchProducts(ProductSearchParams{SortBy: "priceHigh"})
	assert.Equal(t, 5, byPriceHigh[0].ID)

	byPopularity := svc.SearchProducts(ProductSearchParams{SortBy: "popularity"})
	assert.Equal(t, 8, byPopularity[0].ID, "most-reviewed product first")

	byNewest := svc.SearchProducts(ProductSearchParams{SortBy: "newest"})
	assert.Equal(t, 8, byNewest[0].ID)
}

func TestGetProduct(t *testing.T) {
	svc := newCatalogService()

	product, err := svc.GetProduct(1)
	assert.NoError(t, err)
	assert.Equal(t, 799.0, product.Price)

	_, err = svc.GetProduct(404)
	assert.ErrorIs(t, err, ErrNotFound)
}
