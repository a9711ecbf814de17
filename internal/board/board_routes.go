package board

import (
	"github.com/gin-gonic/gin"
	"github.com/jogajunto/backend/config"
	"github.com/jogajunto/backend/internal/availability"
	"github.com/jogajunto/backend/internal/game"
	"github.com/jogajunto/backend/internal/location"
	"github.com/jogajunto/backend/internal/middleware"
	"gorm.io/gorm"
)

// RegisterBoardRoutes sets up the community board endpoints.
func RegisterBoardRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	controller := NewBoardController(
		game.NewGameRepository(db),
		availability.NewAvailabilityRepository(db),
		location.NewLocationRepository(db),
		appConfig.Matching.RadiusKm,
	)

	boardGroup := router.Group("/board")
	boardGroup.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		boardGroup.GET("", controller.GetBoard)
		boardGroup.GET("/nearby-locations", controller.NearbyLocations)
	}
}
