package game

import (
	"time"

	"github.com/jogajunto/backend/internal/models"
	"github.com/jogajunto/backend/internal/player"
	"gorm.io/gorm"
)

type Status string

const (
	StatusOpen      Status = "open"
	StatusFull      Status = "full"
	StatusCancelled Status = "cancelled"
	StatusDeleted   Status = "deleted"
	StatusExpired   Status = "expired"
)

// GameGender is the gender category a game is open to.
type GameGender string

const (
	GenderMale   GameGender = "male"
	GenderFemale GameGender = "female"
	GenderMixed  GameGender = "mixed"
)

// Game is a scheduled, single-occurrence game open for other players to join.
type Game struct {
	gorm.Model
	CreatedByID uint          `json:"created_by_id" gorm:"index;not null"`
	CreatedBy   player.Player `json:"created_by" gorm:"foreignKey:CreatedByID"`

	Sport  string     `json:"sport" gorm:"index;not null"`
	Gender GameGender `json:"gender" gorm:"not null;default:'mixed'"`

	// RequiredCategories is the union of eligible skill categories. Empty
	// means the game is open to any category.
	RequiredCategories models.StringSlice `json:"required_categories" gorm:"type:jsonb;default:'[]'"`
	LocationIDs        models.UintSlice   `json:"locations" gorm:"type:jsonb;not null"`

	Date      time.Time `json:"date" gorm:"index;not null"`
	StartTime string    `json:"start_time" gorm:"not null"`
	EndTime   string    `json:"end_time" gorm:"not null"`

	MaxPlayers int          `json:"max_players" gorm:"not null"`
	Players    []GamePlayer `json:"players" gorm:"foreignKey:GameID"`
	Status     Status       `json:"status" gorm:"index;default:'open'"`

	Notes string `json:"notes,omitempty" gorm:"type:text"`
}

// GamePlayer is one roster entry. Temporary entries stand in for people
// without accounts: they carry a display name and an external key instead
// of a player id.
type GamePlayer struct {
	gorm.Model
	GameID      uint           `json:"game_id" gorm:"index;not null"`
	PlayerID    *uint          `json:"player_id,omitempty" gorm:"index"`
	Player      *player.Player `json:"player,omitempty" gorm:"foreignKey:PlayerID"`
	TempKey     string         `json:"temp_key,omitempty" gorm:"index"`
	Name        string         `json:"name,omitempty"`
	JoinMessage string         `json:"join_message,omitempty"`
	IsTemporary bool           `json:"is_temporary" gorm:"default:false"`
}
