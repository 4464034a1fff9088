package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"planner-api/config"
	"planner-api/controllers"
	"planner-api/middleware"
	"planner-api/repositories"
	"planner-api/services"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, mailService *services.MailService) {
	// Store and services
	tripRepository := repositories.NewTripRepository(db)
	tripService := services.NewTripService(tripRepository, mailService, cfg)
	participantService := services.NewParticipantService(tripRepository, mailService, cfg)

	// Controllers
	tripController := controllers.NewTripController(tripService)
	participantController := controllers.NewParticipantController(participantService)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Confirmation links mailed to owners and invitees resolve at the root
	// so the URLs stay short
	r.GET("/trips/:tripId/confirm", tripController.ConfirmTrip)
	r.GET("/participants/:participantId/confirm", participantController.ConfirmParticipant)

	// API version 1
	v1 := r.Group("/api/v1")
	v1.Use(middleware.RateLimit(cfg.RateLimitPerMinute, cfg.RateLimitBurst))

	trips := v1.Group("/trips")
	{
		trips.POST("", tripController.CreateTrip)
		trips.GET("/:tripId", tripController.GetTrip)
		trips.PUT("/:tripId", tripController.UpdateTrip)
		trips.POST("/:tripId/invites", participantController.InviteParticipant)
	}
}

// SetupCORS allows the web app to call the API from another origin
func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
