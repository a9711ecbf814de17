package board

import (
	"math"
	"sort"
	"time"

	"github.com/jogajunto/backend/internal/availability"
	"github.com/jogajunto/backend/internal/game"
	"github.com/jogajunto/backend/internal/location"
	"github.com/jogajunto/backend/internal/models"
	"github.com/jogajunto/backend/pkg/geo"
	"github.com/jogajunto/backend/pkg/schedule"
)

// Filters is the transient, client-held board selection. An empty set on
// any axis means "no restriction on this axis".
type Filters struct {
	Sports      []string `form:"sports[]" json:"sports"`
	LocationIDs []uint   `form:"locations[]" json:"locations"`
	Categories  []string `form:"categories[]" json:"categories"`
	Days        []string `form:"days[]" json:"days"`
	Genders     []string `form:"genders[]" json:"genders"`
}

// GameView is a board row: the game plus its distance from the viewer.
type GameView struct {
	game.Game
	DistanceKm float64 `json:"distance"`
}

// AvailabilityView is a board row for an availability.
type AvailabilityView struct {
	availability.Availability
	DistanceKm float64 `json:"distance"`
}

// Engine produces the filtered, distance-annotated community board lists.
// It holds the location catalog and, when known, the viewer's coordinates;
// all other inputs arrive per call.
type Engine struct {
	catalog  location.Catalog
	viewer   *models.Coordinates
	radiusKm float64
}

// NewEngine creates a board engine. viewer may be nil when the client has
// not shared coordinates; distances then annotate as +Inf.
func NewEngine(catalog location.Catalog, viewer *models.Coordinates, radiusKm float64) *Engine {
	if radiusKm <= 0 {
		radiusKm = 10
	}
	return &Engine{catalog: catalog, viewer: viewer, radiusKm: radiusKm}
}

// FilterGames returns the games the board shows for the given filter
// selection. Deleted games and games dated before today (date-only
// comparison) are excluded; every active filter predicate must pass.
// No sort order is imposed beyond the distance annotation.
func (e *Engine) FilterGames(games []game.Game, f Filters, today time.Time) []GameView {
	views := make([]GameView, 0, len(games))
	for _, g := range games {
		if g.Status == game.StatusDeleted {
			continue
		}
		if dayBefore(g.Date, today) {
			continue
		}
		if !e.gameMatchesFilters(&g, f) {
			continue
		}
		views = append(views, GameView{Game: g, DistanceKm: e.minDistanceTo(g.LocationIDs)})
	}
	return views
}

func (e *Engine) gameMatchesFilters(g *game.Game, f Filters) bool {
	if len(f.LocationIDs) > 0 && !intersectIDs(g.LocationIDs, f.LocationIDs) {
		return false
	}
	if len(f.Categories) > 0 && !intersectStrings(g.RequiredCategories, f.Categories) {
		return false
	}
	if len(f.Days) > 0 && !containsString(f.Days, string(schedule.DayOf(g.Date))) {
		return false
	}
	if len(f.Genders) > 0 && !containsString(f.Genders, string(g.Gender)) {
		return false
	}
	if len(f.Sports) > 0 && !containsString(f.Sports, g.Sport) {
		return false
	}
	return true
}

// FilterAvailabilities returns the availabilities the board shows. Deleted
// rows and rows whose expiry date (date-only) is strictly before today are
// excluded. The weekday predicate passes when any time slot's day is in the
// selection.
func (e *Engine) FilterAvailabilities(avails []availability.Availability, f Filters, today time.Time) []AvailabilityView {
	views := make([]AvailabilityView, 0, len(avails))
	for _, a := range avails {
		if a.Status == availability.StatusDeleted {
			continue
		}
		if dayBefore(a.ExpiresAt, today) {
			continue
		}
		if !e.availabilityMatchesFilters(&a, f) {
			continue
		}
		views = append(views, AvailabilityView{Availability: a, DistanceKm: e.minDistanceTo(a.LocationIDs)})
	}
	return views
}

func (e *Engine) availabilityMatchesFilters(a *availability.Availability, f Filters) bool {
	if len(f.LocationIDs) > 0 && !intersectIDs(a.LocationIDs, f.LocationIDs) {
		return false
	}
	if len(f.Days) > 0 {
		found := false
		for _, slot := range a.TimeSlots {
			if containsString(f.Days, slot.Day) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if len(f.Genders) > 0 && !containsString(f.Genders, string(a.Player.Gender)) {
		return false
	}
	if len(f.Sports) > 0 && !intersectStrings(a.Sports, f.Sports) {
		return false
	}
	return true
}

// SuggestNearbyLocations returns the ids of catalog locations within the
// proximity radius of the viewer, ascending by id. This is the explicit
// "narrow the location filter to nearby venues" operation; callers decide
// whether to fold the result into their filter selection, so moving viewers
// never mutate engine state.
func (e *Engine) SuggestNearbyLocations() []uint {
	if e.viewer == nil {
		return nil
	}
	var ids []uint
	for id, loc := range e.catalog {
		d := geo.DistanceKm(e.viewer.Latitude, e.viewer.Longitude, loc.Latitude, loc.Longitude)
		if d <= e.radiusKm {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// minDistanceTo computes the viewer's distance to the closest referenced
// location. Unknown ids are skipped; no viewer or no resolvable location
// yields +Inf.
func (e *Engine) minDistanceTo(ids []uint) float64 {
	min := math.Inf(1)
	if e.viewer == nil {
		return min
	}
	for _, id := range ids {
		loc, ok := e.catalog[id]
		if !ok {
			continue
		}
		d := geo.DistanceKm(e.viewer.Latitude, e.viewer.Longitude, loc.Latitude, loc.Longitude)
		if d < min {
			min = d
		}
	}
	return min
}

// dayBefore reports whether t falls on a calendar day strictly before ref.
func dayBefore(t, ref time.Time) bool {
	ty, tm, td := t.Date()
	ry, rm, rd := ref.Date()
	if ty != ry {
		return ty < ry
	}
	if tm != rm {
		return tm < rm
	}
	return td < rd
}

func containsString(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func intersectStrings(a models.StringSlice, b []string) bool {
	for _, v := range a {
		if containsString(b, v) {
			return true
		}
	}
	return false
}

func intersectIDs(a models.UintSlice, b []uint) bool {
	for _, id := range a {
		for _, other := range b {
			if id == other {
				return true
			}
		}
	}
	return false
}
