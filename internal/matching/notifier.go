package matching

import (
	"fmt"
	"strings"

	"github.com/jogajunto/backend/internal/availability"
	"github.com/jogajunto/backend/internal/location"
	"github.com/jogajunto/backend/internal/notification"
)

// ComposeMatchNotification builds the alert row announcing that the owner of
// counterpart is compatible with the recipient's availability. The phrasing
// distinguishes a shared venue from a nearby-but-different one. Idempotency
// is the caller's responsibility via NotificationRepository.Exists.
func ComposeMatchNotification(recipientID uint, counterpart *availability.Availability, loc LocationMatch, catalog location.Catalog) *notification.Notification {
	playerName := counterpart.Player.Name
	sports := strings.Join(counterpart.Sports, ", ")

	var message string
	if loc.IsMatch && loc.DistanceKm == 0 {
		message = fmt.Sprintf("%s wants to play %s at your location during your available hours", playerName, sports)
	} else if loc.IsMatch {
		names := locationNames(loc.NearbyLocations, catalog)
		message = fmt.Sprintf("%s wants to play %s nearby (%s, about %.1f km away) during your available hours",
			playerName, sports, strings.Join(names, ", "), loc.DistanceKm)
	} else {
		message = fmt.Sprintf("%s wants to play %s during your available hours", playerName, sports)
	}

	return &notification.Notification{
		PlayerID: recipientID,
		Type:     notification.TypeAvailabilityMatch,
		Title:    "We found a compatible player!",
		Message:  message,
	}
}

// locationNames resolves ids to display names, skipping dangling references.
func locationNames(ids []uint, catalog location.Catalog) []string {
	var names []string
	for _, id := range ids {
		if name := catalog.NameOf(id); name != "" {
			names = append(names, name)
		}
	}
	return names
}
