package models

import "errors"

var (
	ErrTripNotFound        = errors.New("trip not found")
	ErrParticipantNotFound = errors.New("participant not found")
)

var (
	ErrInvalidDateRange = errors.New("invalid trip date range")
	ErrInvalidEmail     = errors.New("invalid email address")
)
