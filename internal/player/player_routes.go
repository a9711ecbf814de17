package player

import (
	"github.com/gin-gonic/gin"
	"github.com/jogajunto/backend/config"
	"github.com/jogajunto/backend/internal/middleware"
	"gorm.io/gorm"
)

// RegisterPlayerRoutes sets up the player profile endpoints.
func RegisterPlayerRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	controller := NewPlayerController(NewPlayerRepository(db))

	players := router.Group("/players")
	players.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		players.GET("/me", controller.Me)
		players.PUT("/me", controller.UpdateMe)
		players.GET("/:id", controller.GetPlayer)
	}

	admin := router.Group("/admin/players")
	admin.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db), middleware.AdminOnly())
	{
		admin.GET("", controller.ListPlayers)
		admin.PUT("/:id/block", controller.BlockPlayer)
	}
}
