package matching

import (
	"math"
	"testing"

	"github.com/jogajunto/backend/internal/availability"
	"github.com/jogajunto/backend/internal/location"
	"github.com/jogajunto/backend/internal/models"
	"github.com/jogajunto/backend/internal/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func testCatalog() location.Catalog {
	return location.NewCatalog([]location.Location{
		withID(1, location.Location{Name: "Arena Centro", Latitude: 0, Longitude: 0, Active: true}),
		withID(2, location.Location{Name: "Clube Norte", Latitude: 0, Longitude: 0.2, Active: true}), // ~22 km from Arena Centro
		withID(3, location.Location{Name: "Quadra Sul", Latitude: 0, Longitude: 0.05, Active: true}), // ~5.5 km from Arena Centro
	})
}

func withID(id uint, loc location.Location) location.Location {
	loc.ID = id
	return loc
}

func testAvailability(p player.Player, sports []string, locs []uint, slots availability.TimeSlots) *availability.Availability {
	return &availability.Availability{
		Player:      p,
		Sports:      sports,
		LocationIDs: models.UintSlice(locs),
		TimeSlots:   slots,
		Status:      availability.StatusActive,
	}
}

func mondayEvening() availability.TimeSlots {
	return availability.TimeSlots{{Day: "monday", StartTime: "18:00", EndTime: "20:00"}}
}

func TestMatch_CompatiblePairAtSameLocation(t *testing.T) {
	// Scenario: X (padel CAT 3, male, L1, Monday 18:00-20:00) against
	// Y (padel CAT 3, male, L1, Monday 18:30-19:30).
	m := NewMatcher(testCatalog(), DefaultRadiusKm)

	x := testAvailability(
		player.Player{Name: "X", Gender: player.Male, PadelCategory: strPtr("CAT 3")},
		[]string{"padel"}, []uint{1}, mondayEvening())
	y := testAvailability(
		player.Player{Name: "Y", Gender: player.Male, PadelCategory: strPtr("CAT 3")},
		[]string{"padel"}, []uint{1},
		availability.TimeSlots{{Day: "monday", StartTime: "18:30", EndTime: "19:30"}})

	result := m.Match(y, x)
	assert.True(t, result.TimeMatch)
	assert.True(t, result.Location.IsMatch)
	assert.Equal(t, 0.0, result.Location.DistanceKm)
	assert.Equal(t, []uint{1}, result.Location.NearbyLocations)
	assert.True(t, result.IsMatch())
}

func TestMatch_CategoryMismatchFailsBeforeScheduling(t *testing.T) {
	m := NewMatcher(testCatalog(), DefaultRadiusKm)

	x := testAvailability(
		player.Player{Gender: player.Male, PadelCategory: strPtr("CAT 3")},
		[]string{"padel"}, []uint{1}, mondayEvening())
	y := testAvailability(
		player.Player{Gender: player.Male, PadelCategory: strPtr("CAT 4")},
		[]string{"padel"}, []uint{1}, mondayEvening())

	result := m.Match(x, y)
	assert.False(t, result.TimeMatch)
	assert.False(t, result.Location.IsMatch)
	assert.False(t, result.IsMatch())
}

func TestMatch_UndeclaredCategoriesNeverMatch(t *testing.T) {
	m := NewMatcher(testCatalog(), DefaultRadiusKm)

	declared := testAvailability(
		player.Player{Gender: player.Male, PadelCategory: strPtr("CAT 3")},
		[]string{"padel"}, []uint{1}, mondayEvening())
	undeclared := testAvailability(
		player.Player{Gender: player.Male},
		[]string{"padel"}, []uint{1}, mondayEvening())

	assert.False(t, m.Match(declared, undeclared).IsMatch())
	assert.False(t, m.Match(undeclared, declared).IsMatch())

	// Two players who both never declared a category do not match either.
	other := testAvailability(
		player.Player{Gender: player.Male},
		[]string{"padel"}, []uint{1}, mondayEvening())
	assert.False(t, m.Match(undeclared, other).IsMatch())
}

func TestMatch_NearbyButDifferentLocations(t *testing.T) {
	// Both players list ids {1,2}; every counterpart location is within
	// 0 km of one of the candidate's, so both show up as nearby.
	m := NewMatcher(testCatalog(), DefaultRadiusKm)

	x := testAvailability(
		player.Player{Gender: player.Male, PadelCategory: strPtr("CAT 3")},
		[]string{"padel"}, []uint{1, 2}, mondayEvening())
	y := testAvailability(
		player.Player{Gender: player.Male, PadelCategory: strPtr("CAT 3")},
		[]string{"padel"}, []uint{1, 2}, mondayEvening())

	result := m.Match(x, y)
	assert.True(t, result.IsMatch())
	assert.Equal(t, 0.0, result.Location.DistanceKm)
	assert.ElementsMatch(t, []uint{1, 2}, result.Location.NearbyLocations)
}

func TestMatch_DistantLocationsBeyondRadius(t *testing.T) {
	// X at L1 (0,0), Y at L2 (0,0.2): ~22 km apart. Identical time,
	// category, and gender. The id intersection check would reject fully
	// disjoint sets, so both players also list a shared id whose catalog
	// entry is missing, exercising the dangling-reference path.
	catalog := testCatalog()
	m := NewMatcher(catalog, DefaultRadiusKm)

	x := testAvailability(
		player.Player{Gender: player.Male, PadelCategory: strPtr("CAT 3")},
		[]string{"padel"}, []uint{1, 99}, mondayEvening())
	y := testAvailability(
		player.Player{Gender: player.Male, PadelCategory: strPtr("CAT 3")},
		[]string{"padel"}, []uint{2, 99}, mondayEvening())

	result := m.Match(x, y)
	assert.True(t, result.TimeMatch)
	assert.False(t, result.Location.IsMatch)
	assert.InDelta(t, 22.2, result.Location.DistanceKm, 0.2)
	assert.Empty(t, result.Location.NearbyLocations)
	assert.False(t, result.IsMatch())
}

func TestMatch_GenderFailureSkipsDistanceComputation(t *testing.T) {
	m := NewMatcher(testCatalog(), DefaultRadiusKm)

	calls := 0
	m.distance = func(lat1, lon1, lat2, lon2 float64) float64 {
		calls++
		return 0
	}

	x := testAvailability(
		player.Player{Gender: player.Male, PadelCategory: strPtr("CAT 3")},
		[]string{"padel"}, []uint{1}, mondayEvening())
	y := testAvailability(
		player.Player{Gender: player.Female, PadelCategory: strPtr("CAT 3")},
		[]string{"padel"}, []uint{1}, mondayEvening())

	result := m.Match(x, y)
	assert.False(t, result.IsMatch())
	assert.Equal(t, 0, calls, "distance must not be computed when gender already disqualifies the pair")

	// Same pair with matching gender does reach the distance computation.
	y.Player.Gender = player.Male
	require.True(t, m.Match(x, y).IsMatch())
	assert.Greater(t, calls, 0)
}

func TestMatch_NoSharedSport(t *testing.T) {
	m := NewMatcher(testCatalog(), DefaultRadiusKm)

	x := testAvailability(
		player.Player{Gender: player.Male, PadelCategory: strPtr("CAT 3")},
		[]string{"padel"}, []uint{1}, mondayEvening())
	y := testAvailability(
		player.Player{Gender: player.Male, TennisCategory: strPtr("4.0")},
		[]string{"tennis"}, []uint{1}, mondayEvening())

	assert.False(t, m.Match(x, y).IsMatch())
}

func TestMatch_FirstSharedSportDecidesTheCategoryGate(t *testing.T) {
	// Both declare padel then beach tennis. Padel is the first shared sport
	// scanning a's list, so the padel categories (which differ) decide,
	// even though the beach tennis categories agree.
	m := NewMatcher(testCatalog(), DefaultRadiusKm)

	x := testAvailability(
		player.Player{Gender: player.Male, PadelCategory: strPtr("CAT 3"), BeachTennisCategory: strPtr("CAT B")},
		[]string{"padel", "beach_tennis"}, []uint{1}, mondayEvening())
	y := testAvailability(
		player.Player{Gender: player.Male, PadelCategory: strPtr("CAT 4"), BeachTennisCategory: strPtr("CAT B")},
		[]string{"padel", "beach_tennis"}, []uint{1}, mondayEvening())

	assert.False(t, m.Match(x, y).IsMatch())
}

func TestMatch_DisjointLocationSets(t *testing.T) {
	m := NewMatcher(testCatalog(), DefaultRadiusKm)

	x := testAvailability(
		player.Player{Gender: player.Male, PadelCategory: strPtr("CAT 3")},
		[]string{"padel"}, []uint{1}, mondayEvening())
	y := testAvailability(
		player.Player{Gender: player.Male, PadelCategory: strPtr("CAT 3")},
		[]string{"padel"}, []uint{3}, mondayEvening())

	assert.False(t, m.Match(x, y).IsMatch())
}

func TestMatch_ContainmentIsAsymmetric(t *testing.T) {
	m := NewMatcher(testCatalog(), DefaultRadiusKm)

	wide := testAvailability(
		player.Player{Gender: player.Male, PadelCategory: strPtr("CAT 3")},
		[]string{"padel"}, []uint{1}, mondayEvening())
	narrow := testAvailability(
		player.Player{Gender: player.Male, PadelCategory: strPtr("CAT 3")},
		[]string{"padel"}, []uint{1},
		availability.TimeSlots{{Day: "monday", StartTime: "18:30", EndTime: "19:30"}})

	// The narrow slot fits inside the wide one, not the other way around.
	assert.True(t, m.Match(narrow, wide).TimeMatch)
	assert.False(t, m.Match(wide, narrow).TimeMatch)
}

func TestMatch_DifferentDaysNeverContain(t *testing.T) {
	m := NewMatcher(testCatalog(), DefaultRadiusKm)

	monday := testAvailability(
		player.Player{Gender: player.Male, PadelCategory: strPtr("CAT 3")},
		[]string{"padel"}, []uint{1}, mondayEvening())
	tuesday := testAvailability(
		player.Player{Gender: player.Male, PadelCategory: strPtr("CAT 3")},
		[]string{"padel"}, []uint{1},
		availability.TimeSlots{{Day: "tuesday", StartTime: "18:00", EndTime: "20:00"}})

	assert.False(t, m.Match(monday, tuesday).IsMatch())
}

func TestMatch_NoResolvableCoordinates(t *testing.T) {
	m := NewMatcher(location.Catalog{}, DefaultRadiusKm)

	x := testAvailability(
		player.Player{Gender: player.Male, PadelCategory: strPtr("CAT 3")},
		[]string{"padel"}, []uint{1}, mondayEvening())
	y := testAvailability(
		player.Player{Gender: player.Male, PadelCategory: strPtr("CAT 3")},
		[]string{"padel"}, []uint{1}, mondayEvening())

	result := m.Match(x, y)
	assert.True(t, result.TimeMatch)
	assert.False(t, result.Location.IsMatch)
	assert.True(t, math.IsInf(result.Location.DistanceKm, 1))
}
