package models

import (
	"time"
)

type Trip struct {
	ID          string    `json:"id" gorm:"primaryKey;size:191"`
	Destination string    `json:"destination" gorm:"not null;size:255"`
	StartsAt    time.Time `json:"starts_at" gorm:"not null"`
	EndsAt      time.Time `json:"ends_at" gorm:"not null"`
	IsConfirmed bool      `json:"is_confirmed" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Participants []Participant `json:"participants" gorm:"foreignKey:TripID"`
}
