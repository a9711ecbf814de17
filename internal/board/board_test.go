package board

import (
	"math"
	"testing"
	"time"

	"github.com/jogajunto/backend/internal/availability"
	"github.com/jogajunto/backend/internal/game"
	"github.com/jogajunto/backend/internal/location"
	"github.com/jogajunto/backend/internal/models"
	"github.com/jogajunto/backend/internal/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC) // a Monday

func boardCatalog() location.Catalog {
	arena := location.Location{Name: "Arena Centro", Latitude: 0, Longitude: 0, Active: true}
	arena.ID = 1
	clube := location.Location{Name: "Clube Norte", Latitude: 0, Longitude: 0.2, Active: true}
	clube.ID = 2
	quadra := location.Location{Name: "Quadra Sul", Latitude: 0, Longitude: 0.05, Active: true}
	quadra.ID = 3
	return location.NewCatalog([]location.Location{arena, clube, quadra})
}

func boardGame(status game.Status, date time.Time) game.Game {
	return game.Game{
		Sport:       "padel",
		Gender:      game.GenderMale,
		LocationIDs: models.UintSlice{1},
		Date:        date,
		StartTime:   "18:00",
		EndTime:     "20:00",
		MaxPlayers:  4,
		Status:      status,
	}
}

func boardAvailability(status availability.Status, expiresAt time.Time) availability.Availability {
	return availability.Availability{
		Player:      player.Player{Gender: player.Male},
		Sports:      models.StringSlice{"padel"},
		LocationIDs: models.UintSlice{1},
		TimeSlots:   availability.TimeSlots{{Day: "monday", StartTime: "18:00", EndTime: "20:00"}},
		Status:      status,
		ExpiresAt:   expiresAt,
	}
}

func TestFilterGames_ExcludesDeletedAndPastKeepsUpcoming(t *testing.T) {
	e := NewEngine(boardCatalog(), nil, 10)

	yesterday := today.AddDate(0, 0, -1)
	tomorrow := today.AddDate(0, 0, 1)
	games := []game.Game{
		boardGame(game.StatusDeleted, tomorrow),
		boardGame(game.StatusOpen, yesterday),
		boardGame(game.StatusOpen, tomorrow),
	}

	views := e.FilterGames(games, Filters{}, today)
	require.Len(t, views, 1)
	assert.Equal(t, tomorrow, views[0].Date)
}

func TestFilterGames_TodayIsNotPast(t *testing.T) {
	e := NewEngine(boardCatalog(), nil, 10)

	// Date carries an earlier time-of-day than "now"; date-only comparison
	// must still include it.
	sameDay := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	views := e.FilterGames([]game.Game{boardGame(game.StatusOpen, sameDay)}, Filters{}, today)
	assert.Len(t, views, 1)
}

func TestFilterGames_EmptyFiltersReturnEverythingEligible(t *testing.T) {
	e := NewEngine(boardCatalog(), nil, 10)

	tomorrow := today.AddDate(0, 0, 1)
	games := []game.Game{
		boardGame(game.StatusOpen, tomorrow),
		boardGame(game.StatusFull, tomorrow),
	}

	views := e.FilterGames(games, Filters{}, today)
	assert.Len(t, views, 2)
}

func TestFilterGames_AllPredicatesMustPass(t *testing.T) {
	e := NewEngine(boardCatalog(), nil, 10)

	tomorrow := today.AddDate(0, 0, 1) // a Tuesday
	g := boardGame(game.StatusOpen, tomorrow)
	g.RequiredCategories = models.StringSlice{"CAT 2", "CAT 3"}

	tests := []struct {
		name string
		f    Filters
		want int
	}{
		{"all axes match", Filters{
			Sports:      []string{"padel"},
			LocationIDs: []uint{1},
			Categories:  []string{"CAT 3"},
			Days:        []string{"tuesday"},
			Genders:     []string{"male"},
		}, 1},
		{"sport mismatch", Filters{Sports: []string{"tennis"}}, 0},
		{"location mismatch", Filters{LocationIDs: []uint{2}}, 0},
		{"category mismatch", Filters{Categories: []string{"CAT 1"}}, 0},
		{"day mismatch", Filters{Days: []string{"sunday"}}, 0},
		{"gender mismatch", Filters{Genders: []string{"female"}}, 0},
		{"one failing axis among passing ones", Filters{
			Sports:  []string{"padel"},
			Genders: []string{"female"},
		}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, e.FilterGames([]game.Game{g}, tt.f, today), tt.want)
		})
	}
}

func TestFilterGames_DistanceAnnotation(t *testing.T) {
	viewer := &models.Coordinates{Latitude: 0, Longitude: 0}
	e := NewEngine(boardCatalog(), viewer, 10)

	tomorrow := today.AddDate(0, 0, 1)
	near := boardGame(game.StatusOpen, tomorrow)
	far := boardGame(game.StatusOpen, tomorrow)
	far.LocationIDs = models.UintSlice{2}
	dangling := boardGame(game.StatusOpen, tomorrow)
	dangling.LocationIDs = models.UintSlice{99}

	views := e.FilterGames([]game.Game{near, far, dangling}, Filters{}, today)
	require.Len(t, views, 3)
	assert.Equal(t, 0.0, views[0].DistanceKm)
	assert.InDelta(t, 22.2, views[1].DistanceKm, 0.2)
	assert.True(t, math.IsInf(views[2].DistanceKm, 1))
}

func TestFilterGames_NoViewerCoordinatesMeansInfiniteDistance(t *testing.T) {
	e := NewEngine(boardCatalog(), nil, 10)
	views := e.FilterGames([]game.Game{boardGame(game.StatusOpen, today.AddDate(0, 0, 1))}, Filters{}, today)
	require.Len(t, views, 1)
	assert.True(t, math.IsInf(views[0].DistanceKm, 1))
}

func TestFilterAvailabilities_ExpiryBoundary(t *testing.T) {
	e := NewEngine(boardCatalog(), nil, 10)

	expiredYesterday := boardAvailability(availability.StatusActive, time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC))
	expiresToday := boardAvailability(availability.StatusActive, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))
	expiresTomorrow := boardAvailability(availability.StatusActive, time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC))

	views := e.FilterAvailabilities(
		[]availability.Availability{expiredYesterday, expiresToday, expiresTomorrow},
		Filters{}, today)

	require.Len(t, views, 2)
	assert.Equal(t, expiresToday.ExpiresAt, views[0].ExpiresAt)
	assert.Equal(t, expiresTomorrow.ExpiresAt, views[1].ExpiresAt)
}

func TestFilterAvailabilities_DeletedExcluded(t *testing.T) {
	e := NewEngine(boardCatalog(), nil, 10)

	future := today.AddDate(0, 0, 7)
	views := e.FilterAvailabilities([]availability.Availability{
		boardAvailability(availability.StatusDeleted, future),
		boardAvailability(availability.StatusActive, future),
	}, Filters{}, today)

	assert.Len(t, views, 1)
}

func TestFilterAvailabilities_WeekdayMatchesAnySlot(t *testing.T) {
	e := NewEngine(boardCatalog(), nil, 10)

	a := boardAvailability(availability.StatusActive, today.AddDate(0, 0, 7))
	a.TimeSlots = availability.TimeSlots{
		{Day: "monday", StartTime: "18:00", EndTime: "20:00"},
		{Day: "thursday", StartTime: "19:00", EndTime: "21:00"},
	}

	assert.Len(t, e.FilterAvailabilities([]availability.Availability{a}, Filters{Days: []string{"thursday"}}, today), 1)
	assert.Len(t, e.FilterAvailabilities([]availability.Availability{a}, Filters{Days: []string{"friday"}}, today), 0)
}

func TestFilterAvailabilities_SportAndGenderAxes(t *testing.T) {
	e := NewEngine(boardCatalog(), nil, 10)

	a := boardAvailability(availability.StatusActive, today.AddDate(0, 0, 7))
	a.Sports = models.StringSlice{"padel", "beach_tennis"}

	assert.Len(t, e.FilterAvailabilities([]availability.Availability{a}, Filters{Sports: []string{"beach_tennis"}}, today), 1)
	assert.Len(t, e.FilterAvailabilities([]availability.Availability{a}, Filters{Sports: []string{"tennis"}}, today), 0)
	assert.Len(t, e.FilterAvailabilities([]availability.Availability{a}, Filters{Genders: []string{"male"}}, today), 1)
	assert.Len(t, e.FilterAvailabilities([]availability.Availability{a}, Filters{Genders: []string{"female"}}, today), 0)
}

func TestSuggestNearbyLocations(t *testing.T) {
	viewer := &models.Coordinates{Latitude: 0, Longitude: 0}
	e := NewEngine(boardCatalog(), viewer, 10)

	// Arena Centro (0 km) and Quadra Sul (~5.5 km) are in range; Clube
	// Norte (~22 km) is not.
	assert.Equal(t, []uint{1, 3}, e.SuggestNearbyLocations())
}

func TestSuggestNearbyLocations_NoViewer(t *testing.T) {
	e := NewEngine(boardCatalog(), nil, 10)
	assert.Nil(t, e.SuggestNearbyLocations())
}
