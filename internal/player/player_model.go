package player

import (
	"time"

	"github.com/jogajunto/backend/internal/models"
	"github.com/jogajunto/backend/internal/sport"
	"gorm.io/gorm"
)

// Gender of a player. Games additionally accept "mixed" (see game package).
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// Player is a registered community member. Players are never physically
// deleted; moderation sets the Blocked flag instead.
type Player struct {
	gorm.Model
	Name     string `json:"name" gorm:"not null"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Phone    string `json:"phone" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`
	Gender   Gender `json:"gender" gorm:"not null"`
	Avatar   string `json:"avatar,omitempty"`

	// Per-sport skill categories, all optional. Labels are the raw category
	// strings ("CAT 3", "INICIANTE", "4.5"), never ordinals.
	PadelCategory       *string `json:"padel_category,omitempty"`
	BeachTennisCategory *string `json:"beach_tennis_category,omitempty"`
	TennisCategory      *string `json:"tennis_category,omitempty"`

	PreferredSports models.StringSlice `json:"preferred_sports" gorm:"type:jsonb;default:'[]'"`

	IsAdmin   bool       `json:"is_admin" gorm:"default:false"`
	Blocked   bool       `json:"blocked" gorm:"default:false"`
	BlockedAt *time.Time `json:"blocked_at,omitempty"`

	RefreshTokens []RefreshToken `json:"-" gorm:"foreignKey:PlayerID"`
}

// CategoryFor returns the player's category label for a sport, nil when the
// player never declared one.
func (p *Player) CategoryFor(s sport.Sport) *string {
	switch s {
	case sport.Padel:
		return p.PadelCategory
	case sport.BeachTennis:
		return p.BeachTennisCategory
	case sport.Tennis:
		return p.TennisCategory
	}
	return nil
}

// RefreshToken stores an issued refresh token so sessions can be revoked.
type RefreshToken struct {
	gorm.Model
	PlayerID  uint      `json:"player_id" gorm:"index;not null"`
	Token     string    `json:"-" gorm:"uniqueIndex;not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
	Revoked   bool      `json:"revoked" gorm:"default:false"`
}
