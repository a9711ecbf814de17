package matching

import (
	"math"

	"github.com/jogajunto/backend/internal/availability"
	"github.com/jogajunto/backend/internal/location"
	"github.com/jogajunto/backend/internal/sport"
	"github.com/jogajunto/backend/pkg/geo"
	"github.com/jogajunto/backend/pkg/schedule"
)

// DefaultRadiusKm is the proximity threshold for "close enough" locations.
const DefaultRadiusKm = 10.0

// LocationMatch describes the geographic side of a compatibility result.
type LocationMatch struct {
	IsMatch bool `json:"isMatch"`
	// NearbyLocations lists the counterpart's location ids within the
	// proximity radius of at least one of the candidate's locations.
	NearbyLocations []uint `json:"nearbyLocations"`
	// DistanceKm is the minimum pairwise distance across both location
	// sets. +Inf when no coordinates resolve.
	DistanceKm float64 `json:"distance"`
}

// Result is the outcome of matching two availabilities.
type Result struct {
	TimeMatch bool          `json:"timeMatch"`
	Location  LocationMatch `json:"locationMatch"`
}

// IsMatch reports whether the pair is compatible on every axis.
func (r Result) IsMatch() bool {
	return r.TimeMatch && r.Location.IsMatch
}

// DistanceFunc computes the distance in km between two coordinate pairs.
type DistanceFunc func(lat1, lon1, lat2, lon2 float64) float64

// Matcher evaluates availability compatibility against a location catalog.
// It holds no mutable state and is safe to reuse across passes.
type Matcher struct {
	catalog  location.Catalog
	radiusKm float64
	distance DistanceFunc
}

// NewMatcher creates a Matcher over the given catalog. A non-positive
// radius falls back to DefaultRadiusKm.
func NewMatcher(catalog location.Catalog, radiusKm float64) *Matcher {
	if radiusKm <= 0 {
		radiusKm = DefaultRadiusKm
	}
	return &Matcher{
		catalog:  catalog,
		radiusKm: radiusKm,
		distance: geo.DistanceKm,
	}
}

// Match evaluates whether availability a is compatible with availability b.
// Checks run cheapest first and the first failure returns a fully-negative
// result: shared sport, category equality on the first shared sport,
// location-id intersection, schedule containment, gender equality. Only
// when all five pass is the geographic proximity computed.
//
// The schedule test is containment, not symmetric overlap: a slot of a must
// fall entirely inside a slot of b, so Match(a, b) and Match(b, a) can
// disagree. This mirrors the product's observed behavior and is a known
// candidate for revisiting.
func (m *Matcher) Match(a, b *availability.Availability) Result {
	shared, ok := firstSharedSport(a, b)
	if !ok {
		return noMatch()
	}

	if !categoriesCompatible(shared, a, b) {
		return noMatch()
	}

	if !locationIDsIntersect(a.LocationIDs, b.LocationIDs) {
		return noMatch()
	}

	if !slotsContained(a.TimeSlots, b.TimeSlots) {
		return noMatch()
	}

	if a.Player.Gender != b.Player.Gender {
		return noMatch()
	}

	return Result{
		TimeMatch: true,
		Location:  m.locationProximity(a.LocationIDs, b.LocationIDs),
	}
}

func noMatch() Result {
	return Result{Location: LocationMatch{DistanceKm: math.Inf(1)}}
}

// firstSharedSport scans a's sport list in order against b's and returns
// the first tag both declare. Later shared sports are never considered.
func firstSharedSport(a, b *availability.Availability) (sport.Sport, bool) {
	for _, s := range a.Sports {
		if b.Sports.Contains(s) {
			return sport.Sport(s), true
		}
	}
	return "", false
}

// categoriesCompatible applies the strict-equality category gate for the
// shared sport. Tennis has no category rule wired.
func categoriesCompatible(s sport.Sport, a, b *availability.Availability) bool {
	switch s {
	case sport.Padel:
		return sport.CategoriesEqual(a.Player.PadelCategory, b.Player.PadelCategory)
	case sport.BeachTennis:
		return sport.CategoriesEqual(a.Player.BeachTennisCategory, b.Player.BeachTennisCategory)
	}
	return true
}

func locationIDsIntersect(a, b []uint) bool {
	for _, id := range a {
		for _, other := range b {
			if id == other {
				return true
			}
		}
	}
	return false
}

// slotsContained reports whether some slot of a fits entirely inside some
// slot of b on the same weekday, with inclusive bounds.
func slotsContained(a, b availability.TimeSlots) bool {
	for _, sa := range a {
		for _, sb := range b {
			if sa.Day != sb.Day {
				continue
			}
			if schedule.Contains(sa.StartTime, sa.EndTime, sb.StartTime, sb.EndTime) {
				return true
			}
		}
	}
	return false
}

// locationProximity computes pairwise distances across both location sets.
// Ids missing from the catalog are silently skipped.
func (m *Matcher) locationProximity(aIDs, bIDs []uint) LocationMatch {
	minDistance := math.Inf(1)
	var nearby []uint

	for _, bID := range bIDs {
		bLoc, ok := m.catalog[bID]
		if !ok {
			continue
		}
		bestForB := math.Inf(1)
		for _, aID := range aIDs {
			aLoc, ok := m.catalog[aID]
			if !ok {
				continue
			}
			d := m.distance(aLoc.Latitude, aLoc.Longitude, bLoc.Latitude, bLoc.Longitude)
			if d < bestForB {
				bestForB = d
			}
		}
		if bestForB < minDistance {
			minDistance = bestForB
		}
		if bestForB <= m.radiusKm {
			nearby = append(nearby, bID)
		}
	}

	return LocationMatch{
		IsMatch:         minDistance <= m.radiusKm,
		NearbyLocations: nearby,
		DistanceKm:      minDistance,
	}
}
