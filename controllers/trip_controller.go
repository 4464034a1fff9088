package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"planner-api/models"
	"planner-api/services"
)

type TripController struct {
	tripService *services.TripService
}

func NewTripController(tripService *services.TripService) *TripController {
	return &TripController{tripService: tripService}
}

type CreateTripRequest struct {
	Destination    string    `json:"destination" binding:"required,min=4"`
	StartsAt       time.Time `json:"starts_at" binding:"required"`
	EndsAt         time.Time `json:"ends_at" binding:"required"`
	OwnerName      string    `json:"owner_name" binding:"required"`
	OwnerEmail     string    `json:"owner_email" binding:"required,email"`
	EmailsToInvite []string  `json:"emails_to_invite" binding:"omitempty,dive,email"`
}

type UpdateTripRequest struct {
	Destination string    `json:"destination" binding:"required,min=4"`
	StartsAt    time.Time `json:"starts_at" binding:"required"`
	EndsAt      time.Time `json:"ends_at" binding:"required"`
}

func (tc *TripController) CreateTrip(c *gin.Context) {
	var req CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tripID, err := tc.tripService.CreateTrip(services.CreateTripInput{
		Destination:    req.Destination,
		StartsAt:       req.StartsAt,
		EndsAt:         req.EndsAt,
		OwnerName:      req.OwnerName,
		OwnerEmail:     req.OwnerEmail,
		EmailsToInvite: req.EmailsToInvite,
	})
	if err != nil {
		if errors.Is(err, models.ErrInvalidDateRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trip date range"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create trip"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"trip_id": tripID})
}

func (tc *TripController) GetTrip(c *gin.Context) {
	tripID := c.Param("tripId")

	trip, err := tc.tripService.GetTrip(tripID)
	if err != nil {
		if errors.Is(err, models.ErrTripNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch trip"})
		return
	}

	c.JSON(http.StatusOK, trip)
}

func (tc *TripController) UpdateTrip(c *gin.Context) {
	tripID := c.Param("tripId")

	var req UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := tc.tripService.UpdateTrip(tripID, req.Destination, req.StartsAt, req.EndsAt)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trip date range"})
		case errors.Is(err, models.ErrTripNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update trip"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"trip_id": tripID})
}

// ConfirmTrip is the target of the link mailed to the trip owner. It
// redirects to the trip page in the web app whether this call performed
// the confirmation or the trip was already confirmed.
func (tc *TripController) ConfirmTrip(c *gin.Context) {
	tripID := c.Param("tripId")

	redirectURL, err := tc.tripService.ConfirmTrip(tripID)
	if err != nil {
		if errors.Is(err, models.ErrTripNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to confirm trip"})
		return
	}

	c.Redirect(http.StatusFound, redirectURL)
}
