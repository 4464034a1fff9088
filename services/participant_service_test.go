package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planner-api/models"
)

func TestParticipantService_InviteParticipant(t *testing.T) {
	store := newFakeStore()
	mailer := newFakeMailer()
	seedTrip(store, false)
	svc := NewParticipantService(store, mailer, testConfig)

	participantID, err := svc.InviteParticipant("trip-1", "c@x.com")

	require.NoError(t, err)
	require.NotEmpty(t, participantID)

	participant, err := store.GetParticipant(participantID)
	require.NoError(t, err)
	assert.Equal(t, "trip-1", participant.TripID)
	assert.Equal(t, "c@x.com", participant.Email)
	assert.False(t, participant.IsConfirmed)
	assert.False(t, participant.IsOwner)

	mails := mailer.sentTo("c@x.com")
	require.Len(t, mails, 1)
	assert.Equal(t, "http://localhost:3333/participants/"+participantID+"/confirm", mails[0].link)
	assert.Equal(t, "Fortaleza", mails[0].dest)
}

func TestParticipantService_InviteParticipant_TripNotFound(t *testing.T) {
	store := newFakeStore()
	mailer := newFakeMailer()
	svc := NewParticipantService(store, mailer, testConfig)

	_, err := svc.InviteParticipant("missing", "c@x.com")

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrTripNotFound)
	assert.Empty(t, store.participants)
	assert.Zero(t, mailer.count())
}

func TestParticipantService_InviteParticipant_InvalidEmail(t *testing.T) {
	store := newFakeStore()
	mailer := newFakeMailer()
	seedTrip(store, false)
	svc := NewParticipantService(store, mailer, testConfig)

	_, err := svc.InviteParticipant("trip-1", "not-an-email")

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvalidEmail)
	assert.Zero(t, mailer.count())
}

func TestParticipantService_InviteParticipant_ConfirmedTripAllowed(t *testing.T) {
	store := newFakeStore()
	mailer := newFakeMailer()
	seedTrip(store, true)
	svc := NewParticipantService(store, mailer, testConfig)

	participantID, err := svc.InviteParticipant("trip-1", "late@x.com")

	require.NoError(t, err)
	assert.NotEmpty(t, participantID)
	assert.Len(t, mailer.sentTo("late@x.com"), 1, "late invitee gets only their own invitation mail")
}

func TestParticipantService_InviteParticipant_DuplicateEmailAllowed(t *testing.T) {
	store := newFakeStore()
	mailer := newFakeMailer()
	seedTrip(store, false)
	svc := NewParticipantService(store, mailer, testConfig)

	first, err := svc.InviteParticipant("trip-1", "c@x.com")
	require.NoError(t, err)
	second, err := svc.InviteParticipant("trip-1", "c@x.com")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "each invite is its own row")
	assert.Len(t, mailer.sentTo("c@x.com"), 2)
}

func TestParticipantService_InviteParticipant_MailFailureStillSucceeds(t *testing.T) {
	store := newFakeStore()
	mailer := newFakeMailer()
	mailer.failFor["c@x.com"] = true
	seedTrip(store, false)
	svc := NewParticipantService(store, mailer, testConfig)

	participantID, err := svc.InviteParticipant("trip-1", "c@x.com")

	require.NoError(t, err)
	_, err = store.GetParticipant(participantID)
	assert.NoError(t, err, "participant row survives the delivery failure")
}

func TestParticipantService_ConfirmParticipant(t *testing.T) {
	store := newFakeStore()
	mailer := newFakeMailer()
	seedTrip(store, true)
	svc := NewParticipantService(store, mailer, testConfig)

	redirectURL, err := svc.ConfirmParticipant("p-1")

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000/trips/trip-1", redirectURL)
	assert.True(t, store.participants["p-1"].IsConfirmed)
	assert.Equal(t, 1, store.participantConfirms)
	assert.True(t, store.trips["trip-1"].IsConfirmed, "trip state untouched")
}

func TestParticipantService_ConfirmParticipant_Idempotent(t *testing.T) {
	store := newFakeStore()
	mailer := newFakeMailer()
	seedTrip(store, false)
	svc := NewParticipantService(store, mailer, testConfig)

	first, err := svc.ConfirmParticipant("p-2")
	require.NoError(t, err)

	second, err := svc.ConfirmParticipant("p-2")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, store.participantConfirms, "flip happens exactly once")
	assert.False(t, store.trips["trip-1"].IsConfirmed, "participant confirmation never confirms the trip")
}

func TestParticipantService_ConfirmParticipant_NotFound(t *testing.T) {
	store := newFakeStore()
	mailer := newFakeMailer()
	svc := NewParticipantService(store, mailer, testConfig)

	_, err := svc.ConfirmParticipant("missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrParticipantNotFound)
}

func TestParticipantService_OwnerAlreadyConfirmed(t *testing.T) {
	store := newFakeStore()
	mailer := newFakeMailer()
	seedTrip(store, false)
	svc := NewParticipantService(store, mailer, testConfig)

	redirectURL, err := svc.ConfirmParticipant("owner-1")

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000/trips/trip-1", redirectURL)
	assert.Zero(t, store.participantConfirms, "owner link visit is a pure no-op")
}
