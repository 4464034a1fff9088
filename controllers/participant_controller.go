package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"planner-api/models"
	"planner-api/services"
)

type ParticipantController struct {
	participantService *services.ParticipantService
}

func NewParticipantController(participantService *services.ParticipantService) *ParticipantController {
	return &ParticipantController{participantService: participantService}
}

type InviteParticipantRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func (pc *ParticipantController) InviteParticipant(c *gin.Context) {
	tripID := c.Param("tripId")

	var req InviteParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	participantID, err := pc.participantService.InviteParticipant(tripID, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrTripNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		case errors.Is(err, models.ErrInvalidEmail):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email address"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to invite participant"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"participant_id": participantID})
}

// ConfirmParticipant is the target of the link mailed to each invitee.
func (pc *ParticipantController) ConfirmParticipant(c *gin.Context) {
	participantID := c.Param("participantId")

	redirectURL, err := pc.participantService.ConfirmParticipant(participantID)
	if err != nil {
		if errors.Is(err, models.ErrParticipantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Participant not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to confirm participant"})
		return
	}

	c.Redirect(http.StatusFound, redirectURL)
}
