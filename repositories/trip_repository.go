package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"planner-api/models"
)

type TripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) *TripRepository {
	return &TripRepository{db: db}
}

// CreateTrip inserts the trip together with its initial participants.
// GORM wraps the row and its associations in a single transaction, so a
// trip is never visible without its owner.
func (r *TripRepository) CreateTrip(trip *models.Trip) error {
	return r.db.Create(trip).Error
}

func (r *TripRepository) GetTrip(id string) (*models.Trip, error) {
	var trip models.Trip
	err := r.db.Preload("Participants").First(&trip, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrTripNotFound
		}
		return nil, err
	}
	return &trip, nil
}

// GetTripWithUnconfirmed loads the trip with only its not-yet-confirmed
// participants, the set that receives mail when the trip is confirmed.
func (r *TripRepository) GetTripWithUnconfirmed(id string) (*models.Trip, error) {
	var trip models.Trip
	err := r.db.Preload("Participants", "is_confirmed = ?", false).
		First(&trip, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrTripNotFound
		}
		return nil, err
	}
	return &trip, nil
}

func (r *TripRepository) UpdateTrip(trip *models.Trip) error {
	result := r.db.Model(&models.Trip{}).Where("id = ?", trip.ID).Updates(map[string]interface{}{
		"destination": trip.Destination,
		"starts_at":   trip.StartsAt,
		"ends_at":     trip.EndsAt,
		"updated_at":  time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrTripNotFound
	}
	return nil
}

// ConfirmTrip flips is_confirmed with a conditional update. The returned
// bool reports whether this call performed the flip: concurrent confirms
// race on the WHERE clause and at most one sees RowsAffected == 1.
func (r *TripRepository) ConfirmTrip(id string) (bool, error) {
	result := r.db.Model(&models.Trip{}).
		Where("id = ? AND is_confirmed = ?", id, false).
		Update("is_confirmed", true)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *TripRepository) CreateParticipant(participant *models.Participant) error {
	return r.db.Create(participant).Error
}

func (r *TripRepository) GetParticipant(id string) (*models.Participant, error) {
	var participant models.Participant
	err := r.db.First(&participant, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrParticipantNotFound
		}
		return nil, err
	}
	return &participant, nil
}

// ConfirmParticipant uses the same conditional-update shape as ConfirmTrip.
func (r *TripRepository) ConfirmParticipant(id string) (bool, error) {
	result := r.db.Model(&models.Participant{}).
		Where("id = ? AND is_confirmed = ?", id, false).
		Update("is_confirmed", true)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}
