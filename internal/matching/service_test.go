package matching

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jogajunto/backend/internal/availability"
	"github.com/jogajunto/backend/internal/location"
	"github.com/jogajunto/backend/internal/notification"
	"github.com/jogajunto/backend/internal/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- in-memory fakes ---

type fakeAvailabilityRepo struct {
	active []availability.Availability
}

func (f *fakeAvailabilityRepo) Create(*availability.Availability) error       { return nil }
func (f *fakeAvailabilityRepo) GetByID(uint) (*availability.Availability, error) { return nil, nil }
func (f *fakeAvailabilityRepo) GetByPlayer(uint) ([]availability.Availability, error) {
	return nil, nil
}
func (f *fakeAvailabilityRepo) GetActive() ([]availability.Availability, error) {
	return f.active, nil
}
func (f *fakeAvailabilityRepo) Update(*availability.Availability) error { return nil }
func (f *fakeAvailabilityRepo) MarkDeleted(uint) error                  { return nil }
func (f *fakeAvailabilityRepo) ExpireOverdue(time.Time) (int64, error)  { return 0, nil }

type fakeLocationRepo struct {
	locations []location.Location
}

func (f *fakeLocationRepo) Create(*location.Location) error          { return nil }
func (f *fakeLocationRepo) GetByID(uint) (*location.Location, error) { return nil, nil }
func (f *fakeLocationRepo) GetAll() ([]location.Location, error)     { return f.locations, nil }
func (f *fakeLocationRepo) GetActive() ([]location.Location, error)  { return f.locations, nil }
func (f *fakeLocationRepo) Update(*location.Location) error          { return nil }
func (f *fakeLocationRepo) Delete(uint) error                        { return nil }

type fakeNotificationRepo struct {
	created   []notification.Notification
	failNext  bool
}

func (f *fakeNotificationRepo) Create(n *notification.Notification) error {
	if f.failNext {
		f.failNext = false
		return errors.New("record store unavailable")
	}
	f.created = append(f.created, *n)
	return nil
}
func (f *fakeNotificationRepo) GetByPlayer(uint, int, int) ([]notification.Notification, int64, error) {
	return nil, 0, nil
}
func (f *fakeNotificationRepo) GetByID(uint) (*notification.Notification, error) { return nil, nil }
func (f *fakeNotificationRepo) Exists(playerID uint, t notification.Type, message string) (bool, error) {
	for _, n := range f.created {
		if n.PlayerID == playerID && n.Type == t && n.Message == message {
			return true, nil
		}
	}
	return false, nil
}
func (f *fakeNotificationRepo) MarkRead(uint) error       { return nil }
func (f *fakeNotificationRepo) ClearForPlayer(uint) error { return nil }

// --- fixtures ---

func activePair() []availability.Availability {
	x := availability.Availability{
		PlayerID:    1,
		Player:      player.Player{Name: "X", Gender: player.Male, PadelCategory: strPtr("CAT 3")},
		Sports:      []string{"padel"},
		LocationIDs: []uint{1},
		TimeSlots:   mondayEvening(),
		Status:      availability.StatusActive,
	}
	x.Player.ID = 1
	y := availability.Availability{
		PlayerID:    2,
		Player:      player.Player{Name: "Y", Gender: player.Male, PadelCategory: strPtr("CAT 3")},
		Sports:      []string{"padel"},
		LocationIDs: []uint{1},
		TimeSlots:   mondayEvening(),
		Status:      availability.StatusActive,
	}
	y.Player.ID = 2
	return []availability.Availability{x, y}
}

func passLocations() []location.Location {
	return []location.Location{
		withID(1, location.Location{Name: "Arena Centro", Latitude: 0, Longitude: 0, Active: true}),
	}
}

func TestRunPass_NotifiesBothSidesOfACompatiblePair(t *testing.T) {
	notifRepo := &fakeNotificationRepo{}
	svc := NewService(
		&fakeAvailabilityRepo{active: activePair()},
		&fakeLocationRepo{locations: passLocations()},
		notifRepo,
		DefaultRadiusKm,
	)

	stats, err := svc.RunPass(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Candidates)
	assert.Equal(t, 2, stats.Matches)
	assert.Equal(t, 2, stats.Notified)
	require.Len(t, notifRepo.created, 2)
	assert.ElementsMatch(t,
		[]uint{1, 2},
		[]uint{notifRepo.created[0].PlayerID, notifRepo.created[1].PlayerID})
}

func TestRunPass_SecondPassDeduplicates(t *testing.T) {
	notifRepo := &fakeNotificationRepo{}
	svc := NewService(
		&fakeAvailabilityRepo{active: activePair()},
		&fakeLocationRepo{locations: passLocations()},
		notifRepo,
		DefaultRadiusKm,
	)

	_, err := svc.RunPass(context.Background())
	require.NoError(t, err)
	stats, err := svc.RunPass(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, stats.Notified)
	assert.Equal(t, 2, stats.Deduplicated)
	assert.Len(t, notifRepo.created, 2)
}

func TestRunPass_InsertFailureIsSkippedNotFatal(t *testing.T) {
	notifRepo := &fakeNotificationRepo{failNext: true}
	svc := NewService(
		&fakeAvailabilityRepo{active: activePair()},
		&fakeLocationRepo{locations: passLocations()},
		notifRepo,
		DefaultRadiusKm,
	)

	stats, err := svc.RunPass(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.FailedInserts)
	assert.Equal(t, 1, stats.Notified)

	// The failed insert is naturally retried on the next pass.
	stats, err = svc.RunPass(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Notified)
	assert.Equal(t, 1, stats.Deduplicated)
	assert.Len(t, notifRepo.created, 2)
}

func TestRunPass_SamePlayerNeverMatchedAgainstThemselves(t *testing.T) {
	pair := activePair()
	pair[1].PlayerID = 1 // both availabilities belong to player 1

	notifRepo := &fakeNotificationRepo{}
	svc := NewService(
		&fakeAvailabilityRepo{active: pair},
		&fakeLocationRepo{locations: passLocations()},
		notifRepo,
		DefaultRadiusKm,
	)

	stats, err := svc.RunPass(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Matches)
	assert.Empty(t, notifRepo.created)
}
