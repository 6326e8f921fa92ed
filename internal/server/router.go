package server

import (
	"net/http"

	auctionhandler "vehicle-marketplace/services/auction/handler"
	interactionhandler "vehicle-marketplace/services/interaction/handler"
	vehiclehandler "vehicle-marketplace/services/vehicle/handler"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Services bundles the service implementations the router exposes
type Services struct {
	Auction     auctionhandler.AuctionServiceInterface
	Vehicle     vehiclehandler.VehicleServiceInterface
	Interaction interactionhandler.InteractionServiceInterface
	Tracker     vehiclehandler.InteractionTracker
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(services Services) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(MetricsMiddleware)       // prometheus request metrics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := auctionhandler.NewAuctionHandler(services.Auction)
	vehicleHandler := vehiclehandler.NewVehicleHandler(services.Vehicle, services.Tracker)
	interactionHandler := interactionhandler.NewInteractionHandler(services.Interaction)

	auctions := router.Group("/auctions")
	{
		auctions.POST("", auctionHandler.CreateAuctionHandler)
		auctions.GET("", auctionHandler.ListAuctionsHandler)
		auctions.GET("/:auction_id", auctionHandler.GetAuctionHandler)
		auctions.GET("/:auction_id/bids", auctionHandler.ListBidsHandler)
		auctions.POST("/:auction_id/bids", auctionHandler.PlaceBidHandler)
	}

	vehicles := router.Group("/vehicles")
	{
		vehicles.POST("", vehicleHandler.CreateVehicleHandler)
		vehicles.GET("", vehicleHandler.ListVehiclesHandler)
		vehicles.GET("/search", vehicleHandler.SearchVehiclesHandler)
		vehicles.GET("/compare", vehicleHandler.CompareVehiclesHandler)
		vehicles.GET("/:vehicle_id", vehicleHandler.GetVehicleHandler)
		vehicles.GET("/:vehicle_id/suggestions", vehicleHandler.SimilarVehiclesHandler)
	}

	users := router.Group("/users")
	{
		users.GET("/:user_id/recommendations", vehicleHandler.RecommendationsHandler)
	}

	router.POST("/interactions", interactionHandler.TrackInteractionHandler)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}
