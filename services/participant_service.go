package services

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"planner-api/config"
	"planner-api/models"
	"planner-api/utils"
)

type ParticipantService struct {
	store  TripStore
	mailer Mailer
	appURL string
	apiURL string
}

func NewParticipantService(store TripStore, mailer Mailer, cfg *config.Config) *ParticipantService {
	return &ParticipantService{
		store:  store,
		mailer: mailer,
		appURL: cfg.AppURL,
		apiURL: cfg.APIURL,
	}
}

// InviteParticipant adds an unconfirmed participant to an existing trip and
// mails them their confirmation link. Invitations are allowed on confirmed
// trips, and the same email may be invited more than once; each invite is
// its own participant row.
func (s *ParticipantService) InviteParticipant(tripID, email string) (string, error) {
	if !utils.IsValidEmail(email) {
		return "", models.ErrInvalidEmail
	}

	trip, err := s.store.GetTrip(tripID)
	if err != nil {
		return "", err
	}

	participant := &models.Participant{
		ID:     uuid.New().String(),
		TripID: trip.ID,
		Email:  email,
	}
	if err := s.store.CreateParticipant(participant); err != nil {
		return "", fmt.Errorf("create participant: %w", err)
	}

	confirmationLink := fmt.Sprintf("%s/participants/%s/confirm", s.apiURL, participant.ID)
	if err := s.mailer.SendParticipantConfirmationEmail(email, trip.Destination, trip.StartsAt, trip.EndsAt, confirmationLink); err != nil {
		log.Printf("Failed to send participant confirmation email to %s: %v", email, err)
	}

	return participant.ID, nil
}

// ConfirmParticipant flips a single participant to confirmed. Repeat visits
// to the same link are no-ops that still redirect. The owning trip's state
// is never touched.
func (s *ParticipantService) ConfirmParticipant(participantID string) (string, error) {
	participant, err := s.store.GetParticipant(participantID)
	if err != nil {
		return "", err
	}

	if !participant.IsConfirmed {
		if _, err := s.store.ConfirmParticipant(participantID); err != nil {
			return "", fmt.Errorf("confirm participant: %w", err)
		}
	}

	return fmt.Sprintf("%s/trips/%s", s.appURL, participant.TripID), nil
}
