package models

import (
	"time"
)

type Participant struct {
	ID          string    `json:"id" gorm:"primaryKey;size:191"`
	TripID      string    `json:"trip_id" gorm:"not null;index;size:191"`
	Email       string    `json:"email" gorm:"not null;size:255"`
	Name        *string   `json:"name" gorm:"size:255"`
	IsOwner     bool      `json:"is_owner" gorm:"default:false"`
	IsConfirmed bool      `json:"is_confirmed" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
