package notification

import "gorm.io/gorm"

// Type tags the origin of a notification.
type Type string

const (
	TypeAvailabilityMatch Type = "availability_match"
	TypeGameInvite        Type = "game_invite"
)

// Notification is one alert row for a player. Delivery is the client's
// concern; rows are the contract.
type Notification struct {
	gorm.Model
	PlayerID uint   `json:"player_id" gorm:"index;not null"`
	Type     Type   `json:"type" gorm:"index;not null"`
	Title    string `json:"title" gorm:"not null"`
	Message  string `json:"message" gorm:"type:text;not null"`
	Read     bool   `json:"read" gorm:"default:false"`
	GameID   *uint  `json:"game_id,omitempty" gorm:"index"`
}
