// internal/router/router.go
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/petville/petcare-backend/internal/config"
	"github.com/petville/petcare-backend/internal/handlers"
	"github.com/petville/petcare-backend/internal/middleware"
	"github.com/petville/petcare-backend/internal/services"
	"github.com/petville/petcare-backend/internal/store"
)

// Initialize builds the store -> service -> handler graph and mounts the
// routes. All state lives in the stores for the lifetime of the process;
// a restart resets everything to the seed data.
func Initialize(cfg *config.Config) *gin.Engine {
	// Stores
	catalogStore := store.NewCatalogStore(store.SeedProducts())
	cartStore := store.NewCartStore()
	orderStore := store.NewOrderStore(store.SeedOrders(time.Now()))
	petStore := store.NewPetStore(store.SeedPets(), store.SeedVaccineRecords())
	addressStore := store.NewAddressStore(store.SeedAddresses())
	appointmentStore := store.NewAppointmentStore()

	// Services
	catalogService := services.NewCatalogService(catalogStore)
	cartService := services.NewCartService(cartStore, catalogStore)
	checkoutService := services.NewCheckoutService(cartStore, orderStore)
	orderService := services.NewOrderService(orderStore, cartService)
	vetClient := services.NewGenerativeVetClient(
		cfg.VetSearch.APIURL,
		cfg.VetSearch.APIKey,
		time.Duration(cfg.VetSearch.TimeoutSeconds)*time.Second,
	)
	vetService := services.NewVetService(vetClient)
	petService := services.NewPetService(petStore, store.SeedVaccineRecommendations())
	addressService := services.NewAddressService(addressStore)
	appointmentService := services.NewAppointmentService(appointmentStore, petStore)

	// Handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(checkoutService, orderService)
	vetHandler := handlers.NewVetHandler(vetService, addressService, cfg.VetSearch.DefaultRadiusKm)
	petHandler := handlers.NewPetHandler(petService)
	addressHandler := handlers.NewAddressHandler(addressService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	profileHandler := handlers.NewProfileHandler(store.SeedUser())

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		products := v1.Group("/products")
		{
			products.GET("", catalogHandler.GetProducts)
			products.GET("/:id", catalogHandler.GetProduct)
		}
		v1.GET("/categories", catalogHandler.GetCategories)

		cart := v1.Group("/cart")
		{
			cart.GET("", cartHandler.GetCart)
			cart.DELETE("", cartHandler.ClearCart)
			cart.POST("/items", cartHandler.AddToCart)
			cart.PATCH("/items/:productId", cartHandler.UpdateQuantity)
			cart.DELETE("/items/:productId", cartHandler.RemoveFromCart)
		}

		v1.POST("/checkout", orderHandler.Checkout)

		orders := v1.Group("/orders")
		{
			orders.GET("", orderHandler.GetOrders)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.GET("/:id/timeline", orderHandler.GetTimeline)
			orders.POST("/:id/cancel", orderHandler.CancelOrder)
			orders.POST("/:id/reorder", orderHandler.Reorder)
		}

		vets := v1.Group("/vets")
		vets.Use(middleware.VetSearchRateLimit())
		{
			vets.GET("/search", vetHandler.SearchVets)
		}

		pets := v1.Group("/pets")
		{
			pets.GET("", petHandler.GetPets)
			pets.POST("", petHandler.AddPet)
			pets.GET("/:id", petHandler.GetPet)
			pets.PUT("/:id", petHandler.UpdatePet)
			pets.GET("/:id/vaccines", petHandler.GetVaccineRecords)
			pets.POST("/:id/vaccines", petHandler.AddVaccineRecord)
		}
		v1.GET("/vaccines/recommendations", petHandler.GetRecommendations)

		addresses := v1.Group("/addresses")
		{
			addresses.GET("", addressHandler.GetAddresses)
			addresses.POST("", addressHandler.AddAddress)
			addresses.GET("/default", addressHandler.GetDefaultAddress)
			addresses.PUT("/:id", addressHandler.UpdateAddress)
			addresses.PUT("/:id/default", addressHandler.SetDefaultAddress)
			addresses.DELETE("/:id", addressHandler.DeleteAddress)
		}

		appointments := v1.Group("/appointments")
		{
			appointments.GET("", appointmentHandler.GetAppointments)
			appointments.POST("", appointmentHandler.BookAppointment)
		}

		v1.GET("/profile", profileHandler.GetProfile)
	}

	return r
}
