package matching

import (
	"context"
	"log"

	"github.com/jogajunto/backend/internal/availability"
	"github.com/jogajunto/backend/internal/location"
	"github.com/jogajunto/backend/internal/notification"
)

// Service runs availability matching passes and records the resulting
// notifications.
type Service struct {
	availabilityRepo availability.AvailabilityRepository
	locationRepo     location.LocationRepository
	notificationRepo notification.NotificationRepository
	radiusKm         float64
}

// NewService wires a matching service over the repositories.
func NewService(
	availabilityRepo availability.AvailabilityRepository,
	locationRepo location.LocationRepository,
	notificationRepo notification.NotificationRepository,
	radiusKm float64,
) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		locationRepo:     locationRepo,
		notificationRepo: notificationRepo,
		radiusKm:         radiusKm,
	}
}

// PassStats summarizes one matching pass.
type PassStats struct {
	Candidates    int `json:"candidates"`
	Matches       int `json:"matches"`
	Notified      int `json:"notified"`
	Deduplicated  int `json:"deduplicated"`
	FailedInserts int `json:"failed_inserts"`
}

// RunPass evaluates every active availability against the others and
// notifies owners of compatible pairs. For each candidate the first
// compatible counterpart found in iteration order wins; there is no "best"
// match. Insert failures are logged and skipped; the de-duplication check
// re-evaluates on the next pass, so nothing is lost permanently.
func (s *Service) RunPass(ctx context.Context) (PassStats, error) {
	var stats PassStats

	availabilities, err := s.availabilityRepo.GetActive()
	if err != nil {
		return stats, err
	}
	locations, err := s.locationRepo.GetAll()
	if err != nil {
		return stats, err
	}
	catalog := location.NewCatalog(locations)
	matcher := NewMatcher(catalog, s.radiusKm)

	stats.Candidates = len(availabilities)

	for i := range availabilities {
		candidate := &availabilities[i]
		for j := range availabilities {
			if i == j {
				continue
			}
			counterpart := &availabilities[j]
			if candidate.PlayerID == counterpart.PlayerID {
				continue
			}

			result := matcher.Match(candidate, counterpart)
			if !result.IsMatch() {
				continue
			}
			stats.Matches++

			n := ComposeMatchNotification(candidate.PlayerID, counterpart, result.Location, catalog)
			exists, err := s.notificationRepo.Exists(n.PlayerID, n.Type, n.Message)
			if err != nil {
				log.Printf("matching: dedup check failed for player %d: %v", n.PlayerID, err)
				stats.FailedInserts++
				break
			}
			if exists {
				stats.Deduplicated++
				break
			}
			if err := s.notificationRepo.Create(n); err != nil {
				log.Printf("matching: notification insert failed for player %d: %v", n.PlayerID, err)
				stats.FailedInserts++
				break
			}
			stats.Notified++

			// First compatible counterpart per candidate short-circuits
			// further search for that candidate.
			break
		}
	}

	return stats, nil
}
