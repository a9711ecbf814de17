package game

import (
	"github.com/gin-gonic/gin"
	"github.com/jogajunto/backend/config"
	"github.com/jogajunto/backend/internal/middleware"
	"github.com/jogajunto/backend/internal/notification"
	"github.com/jogajunto/backend/internal/player"
	"gorm.io/gorm"
)

// RegisterGameRoutes sets up the game endpoints.
func RegisterGameRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	controller := NewGameController(
		NewGameRepository(db),
		player.NewPlayerRepository(db),
		notification.NewNotificationRepository(db),
	)

	games := router.Group("/games")
	games.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		games.POST("", controller.CreateGame)
		games.GET("/:id", controller.GetGame)
		games.PUT("/:id", controller.UpdateGame)
		games.POST("/:id/join", controller.JoinGame)
		games.POST("/:id/leave", controller.LeaveGame)
		games.POST("/:id/complete", controller.CompleteGame)
		games.DELETE("/:id", controller.DeleteGame)
	}
}
