// internal/handlers/catalog.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/petville/petcare-backend/internal/services"
	"github.com/petville/petcare-backend/internal/utils"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// GET /products
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	params := services.ProductSearchParams{
		Query:    c.Query("search"),
		Category: c.DefaultQuery("category", "All"),
		PetType:  c.DefaultQuery("pet_type", "All"),
		SortBy:   c.DefaultQuery("sort", "popularity"),
	}

	products := h.catalogService.SearchProducts(params)

	page := utils.GetPaginationParams(c)
	start, end := utils.PageBounds(len(products), page)
	result := utils.CreatePaginationResult(products[start:end], int64(len(products)), page)
	utils.PaginatedResponse(c, result)
}

// GET /products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	product, err := h.catalogService.GetProduct(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "Product")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, product)
}

// GET /categories
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"categories": h.catalogService.Categories(),
	})
}
