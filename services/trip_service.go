package services

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"planner-api/config"
	"planner-api/models"
)

// TripStore is the persistence surface the services depend on, implemented
// by repositories.TripRepository and by fakes in tests.
type TripStore interface {
	CreateTrip(trip *models.Trip) error
	GetTrip(id string) (*models.Trip, error)
	GetTripWithUnconfirmed(id string) (*models.Trip, error)
	UpdateTrip(trip *models.Trip) error
	ConfirmTrip(id string) (bool, error)
	CreateParticipant(participant *models.Participant) error
	GetParticipant(id string) (*models.Participant, error)
	ConfirmParticipant(id string) (bool, error)
}

// Mailer sends the confirmation emails. Delivery failures are logged by the
// services and never escalated to callers.
type Mailer interface {
	SendTripConfirmationEmail(toEmail, toName, destination string, startsAt, endsAt time.Time, confirmationLink string) error
	SendParticipantConfirmationEmail(toEmail, destination string, startsAt, endsAt time.Time, confirmationLink string) error
}

type TripService struct {
	store  TripStore
	mailer Mailer
	appURL string
	apiURL string

	// now is replaceable in tests
	now func() time.Time
}

func NewTripService(store TripStore, mailer Mailer, cfg *config.Config) *TripService {
	return &TripService{
		store:  store,
		mailer: mailer,
		appURL: cfg.AppURL,
		apiURL: cfg.APIURL,
		now:    time.Now,
	}
}

type CreateTripInput struct {
	Destination    string
	StartsAt       time.Time
	EndsAt         time.Time
	OwnerName      string
	OwnerEmail     string
	EmailsToInvite []string
}

// CreateTrip validates the date window, creates the trip with its owner and
// invited participants in one atomic insert, then mails the owner a link to
// confirm the trip. The owner starts confirmed; invitees do not. Duplicate
// emails in the invite list become separate participant rows.
func (s *TripService) CreateTrip(input CreateTripInput) (string, error) {
	if input.StartsAt.Before(s.now()) {
		return "", models.ErrInvalidDateRange
	}
	if input.EndsAt.Before(input.StartsAt) {
		return "", models.ErrInvalidDateRange
	}

	ownerName := input.OwnerName
	participants := make([]models.Participant, 0, len(input.EmailsToInvite)+1)
	participants = append(participants, models.Participant{
		ID:          uuid.New().String(),
		Email:       input.OwnerEmail,
		Name:        &ownerName,
		IsOwner:     true,
		IsConfirmed: true,
	})
	for _, email := range input.EmailsToInvite {
		participants = append(participants, models.Participant{
			ID:    uuid.New().String(),
			Email: email,
		})
	}

	trip := &models.Trip{
		ID:           uuid.New().String(),
		Destination:  input.Destination,
		StartsAt:     input.StartsAt,
		EndsAt:       input.EndsAt,
		Participants: participants,
	}

	if err := s.store.CreateTrip(trip); err != nil {
		return "", fmt.Errorf("create trip: %w", err)
	}

	confirmationLink := fmt.Sprintf("%s/trips/%s/confirm", s.apiURL, trip.ID)
	if err := s.mailer.SendTripConfirmationEmail(input.OwnerEmail, input.OwnerName, input.Destination, input.StartsAt, input.EndsAt, confirmationLink); err != nil {
		log.Printf("Failed to send trip confirmation email to %s: %v", input.OwnerEmail, err)
	}

	return trip.ID, nil
}

// ConfirmTrip flips the trip to confirmed and mails every participant that
// has not confirmed yet. The flip is a conditional update, so under
// concurrent calls only one caller sends the mail burst; everyone else,
// including calls on an already confirmed trip, gets the redirect with no
// side effects. Mail dispatch is concurrent and each failure is logged
// without affecting the others or the result.
func (s *TripService) ConfirmTrip(tripID string) (string, error) {
	trip, err := s.store.GetTripWithUnconfirmed(tripID)
	if err != nil {
		return "", err
	}

	redirectURL := fmt.Sprintf("%s/trips/%s", s.appURL, trip.ID)

	if trip.IsConfirmed {
		return redirectURL, nil
	}

	flipped, err := s.store.ConfirmTrip(tripID)
	if err != nil {
		return "", fmt.Errorf("confirm trip: %w", err)
	}
	if !flipped {
		// another caller won the flip
		return redirectURL, nil
	}

	var wg sync.WaitGroup
	for _, participant := range trip.Participants {
		wg.Add(1)
		go func(p models.Participant) {
			defer wg.Done()

			confirmationLink := fmt.Sprintf("%s/participants/%s/confirm", s.apiURL, p.ID)
			if err := s.mailer.SendParticipantConfirmationEmail(p.Email, trip.Destination, trip.StartsAt, trip.EndsAt, confirmationLink); err != nil {
				log.Printf("Failed to send participant confirmation email to %s: %v", p.Email, err)
			}
		}(participant)
	}
	wg.Wait()

	return redirectURL, nil
}

func (s *TripService) GetTrip(tripID string) (*models.Trip, error) {
	return s.store.GetTrip(tripID)
}

// UpdateTrip changes the destination and date window under the same date
// rules as creation. Confirmation state is untouched and no mail is sent.
func (s *TripService) UpdateTrip(tripID, destination string, startsAt, endsAt time.Time) error {
	if startsAt.Before(s.now()) {
		return models.ErrInvalidDateRange
	}
	if endsAt.Before(startsAt) {
		return models.ErrInvalidDateRange
	}

	trip := &models.Trip{
		ID:          tripID,
		Destination: destination,
		StartsAt:    startsAt,
		EndsAt:      endsAt,
	}
	if err := s.store.UpdateTrip(trip); err != nil {
		return err
	}
	return nil
}
