// internal/handlers/vets.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/petville/petcare-backend/internal/models"
	"github.com/petville/petcare-backend/internal/services"
	"github.com/petville/petcare-backend/internal/utils"
)

type VetHandler struct {
	vetService      *services.VetService
	addressService  *services.AddressService
	defaultRadiusKm int
}

func NewVetHandler(vetService *services.VetService, addressService *services.AddressService, defaultRadiusKm int) *VetHandler {
	return &VetHandler{
		vetService:      vetService,
		addressService:  addressService,
		defaultRadiusKm: defaultRadiusKm,
	}
}

// GET /vets/search?query=&lat=&lng=&radius=&open_now=&min_rating=
// A missing query falls back to the profile's default address, then to the
// fixed default location, so the caller always gets a result set. Device
// coordinates, when supplied, override the resolved map center.
func (h *VetHandler) SearchVets(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		if address, ok := h.addressService.Default(); ok {
			query = address.Street + ", " + address.City
		}
	}

	radius := h.defaultRadiusKm
	if radiusStr := c.Query("radius"); radiusStr != "" {
		if parsed, err := strconv.Atoi(radiusStr); err == nil && parsed > 0 {
			radius = parsed
		}
	}

	result := h.vetService.Search(c.Request.Context(), query, radius)

	if latStr, lngStr := c.Query("lat"), c.Query("lng"); latStr != "" && lngStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lng, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr == nil && lngErr == nil {
			result.Center = models.Coordinates{Latitude: lat, Longitude: lng}
		}
	}

	openNowOnly, _ := strconv.ParseBool(c.Query("open_now"))
	minRating := 0.0
	if ratingStr := c.Query("min_rating"); ratingStr != "" {
		if parsed, err := strconv.ParseFloat(ratingStr, 64); err == nil {
			minRating = parsed
		}
	}
	result.Vets = services.ApplyFilters(result.Vets, openNowOnly, minRating)

	utils.SuccessResponse(c, result)
}
