package game

import (
	"fmt"
	"strings"

	"github.com/jogajunto/backend/internal/player"
	"github.com/jogajunto/backend/internal/sport"
)

// JoinCheck is the outcome of a join-eligibility evaluation. Rejections are
// results, not errors; Message is safe to show to the player.
type JoinCheck struct {
	IsValid bool   `json:"isValid"`
	Message string `json:"message,omitempty"`
}

// CanJoin decides whether a player may join a game. Temporary (account-less)
// players are always eligible. For padel and beach tennis the player must
// have declared a category for the sport, and when the game restricts
// categories the player's must be a member of the allowed set. Tennis
// carries no category rule. This gates the join action only, never listing
// visibility.
func CanJoin(g *Game, p *player.Player) JoinCheck {
	if p == nil {
		// No account: the creator vouches for the guest.
		return JoinCheck{IsValid: true}
	}

	switch sport.Sport(g.Sport) {
	case sport.Padel:
		return checkCategory(g, p.PadelCategory, "Padel")
	case sport.BeachTennis:
		return checkCategory(g, p.BeachTennisCategory, "Beach Tennis")
	}
	return JoinCheck{IsValid: true}
}

func checkCategory(g *Game, category *string, sportName string) JoinCheck {
	if category == nil {
		return JoinCheck{
			IsValid: false,
			Message: fmt.Sprintf("You must set your %s category in your profile to join this game", sportName),
		}
	}
	if !sport.CategoryAllowed(category, g.RequiredCategories) {
		return JoinCheck{
			IsValid: false,
			Message: fmt.Sprintf("This game is restricted to categories %s; your %s category is %s",
				strings.Join(g.RequiredCategories, ", "), sportName, *category),
		}
	}
	return JoinCheck{IsValid: true}
}
