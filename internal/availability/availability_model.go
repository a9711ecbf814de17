package availability

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jogajunto/backend/internal/models"
	"github.com/jogajunto/backend/internal/player"
	"gorm.io/gorm"
)

type Status string

const (
	StatusActive  Status = "active"
	StatusExpired Status = "expired"
	StatusDeleted Status = "deleted"
)

type Visibility string

const (
	VisibilityPublic Visibility = "public"
	VisibilityGroups Visibility = "groups"
)

// TimeSlot is one recurring weekly window: a weekday plus wall-clock
// "HH:MM" bounds. Start < End is enforced at input binding, not re-checked
// downstream.
type TimeSlot struct {
	Day       string `json:"day" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}

// TimeSlots is the JSONB column holding an availability's weekly windows.
type TimeSlots []TimeSlot

func (s TimeSlots) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan unmarshals a JSONB column into the slice.
func (s *TimeSlots) Scan(src interface{}) error {
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("TimeSlots: expected []byte, got %T", src)
	}
	return json.Unmarshal(b, s)
}

// Availability is a player's declared recurring weekly windows during which
// they want to find a game.
type Availability struct {
	gorm.Model
	PlayerID uint          `json:"player_id" gorm:"index;not null"`
	Player   player.Player `json:"player" gorm:"foreignKey:PlayerID"`

	Sports      models.StringSlice `json:"sports" gorm:"type:jsonb;not null"`
	LocationIDs models.UintSlice   `json:"locations" gorm:"type:jsonb;not null"`
	TimeSlots   TimeSlots          `json:"time_slots" gorm:"type:jsonb;not null"`

	Visibility   Visibility `json:"visibility" gorm:"default:'public'"`
	DurationDays int        `json:"duration_days" gorm:"not null;default:7"`
	Status       Status     `json:"status" gorm:"index;default:'active'"`
	ExpiresAt    time.Time  `json:"expires_at" gorm:"index;not null"`
	Notes        string     `json:"notes,omitempty" gorm:"type:text"`
}

// IsExpired reports whether the availability's window has passed. Expiry is
// evaluated lazily; rows are not rewritten on a clock.
func (a *Availability) IsExpired(now time.Time) bool {
	return now.After(a.ExpiresAt)
}

// Republish resets the availability to active with a fresh expiry window.
func (a *Availability) Republish(now time.Time) {
	a.Status = StatusActive
	a.ExpiresAt = now.AddDate(0, 0, a.DurationDays)
}
