package board

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jogajunto/backend/internal/availability"
	"github.com/jogajunto/backend/internal/game"
	"github.com/jogajunto/backend/internal/location"
	"github.com/jogajunto/backend/internal/models"
	"github.com/jogajunto/backend/pkg/responses"
)

// BoardController serves the community board.
type BoardController struct {
	gameRepo         game.GameRepository
	availabilityRepo availability.AvailabilityRepository
	locationRepo     location.LocationRepository
	radiusKm         float64
}

// NewBoardController creates a new board controller.
func NewBoardController(gameRepo game.GameRepository, availabilityRepo availability.AvailabilityRepository, locationRepo location.LocationRepository, radiusKm float64) *BoardController {
	return &BoardController{
		gameRepo:         gameRepo,
		availabilityRepo: availabilityRepo,
		locationRepo:     locationRepo,
		radiusKm:         radiusKm,
	}
}

// boardPayload is the combined board response.
type boardPayload struct {
	Games          []GameView         `json:"games"`
	Availabilities []AvailabilityView `json:"availabilities"`
}

// GetBoard godoc
// @Summary Get the community board (games and availabilities)
// @Tags board
// @Produce json
// @Param sports[] query []string false "Sport filter"
// @Param locations[] query []int false "Location id filter"
// @Param categories[] query []string false "Category filter"
// @Param days[] query []string false "Weekday filter"
// @Param genders[] query []string false "Gender filter"
// @Param lat query number false "Viewer latitude"
// @Param lon query number false "Viewer longitude"
// @Success 200 {object} responses.SuccessResponse
// @Router /board [get]
// @Security Bearer
func (c *BoardController) GetBoard(ctx *gin.Context) {
	var filters Filters
	if err := ctx.ShouldBindQuery(&filters); err != nil {
		responses.BadRequest(ctx, "Invalid filters")
		return
	}

	engine, err := c.buildEngine(ctx)
	if err != nil {
		responses.InternalServerError(ctx, "")
		return
	}

	games, err := c.gameRepo.GetOpen()
	if err != nil {
		responses.InternalServerError(ctx, "")
		return
	}
	avails, err := c.availabilityRepo.GetActive()
	if err != nil {
		responses.InternalServerError(ctx, "")
		return
	}

	now := time.Now()
	responses.SendSuccess(ctx, http.StatusOK, "", boardPayload{
		Games:          engine.FilterGames(games, filters, now),
		Availabilities: engine.FilterAvailabilities(avails, filters, now),
	})
}

// NearbyLocations godoc
// @Summary Suggest catalog locations near the viewer
// @Tags board
// @Produce json
// @Param lat query number true "Viewer latitude"
// @Param lon query number true "Viewer longitude"
// @Success 200 {object} responses.SuccessResponse
// @Failure 400 {object} responses.ErrorResponse
// @Router /board/nearby-locations [get]
// @Security Bearer
func (c *BoardController) NearbyLocations(ctx *gin.Context) {
	if viewerFromQuery(ctx) == nil {
		responses.BadRequest(ctx, "lat and lon are required")
		return
	}
	engine, err := c.buildEngine(ctx)
	if err != nil {
		responses.InternalServerError(ctx, "")
		return
	}
	ids := engine.SuggestNearbyLocations()
	if ids == nil {
		ids = []uint{}
	}
	responses.SendSuccess(ctx, http.StatusOK, "", gin.H{"locations": ids})
}

func (c *BoardController) buildEngine(ctx *gin.Context) (*Engine, error) {
	locations, err := c.locationRepo.GetAll()
	if err != nil {
		return nil, err
	}
	return NewEngine(location.NewCatalog(locations), viewerFromQuery(ctx), c.radiusKm), nil
}

// viewerFromQuery parses the optional lat/lon pair. Either missing or
// malformed means the viewer's position is unknown.
func viewerFromQuery(ctx *gin.Context) *models.Coordinates {
	latStr, lonStr := ctx.Query("lat"), ctx.Query("lon")
	if latStr == "" || lonStr == "" {
		return nil
	}
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return nil
	}
	return &models.Coordinates{Latitude: lat, Longitude: lon}
}
