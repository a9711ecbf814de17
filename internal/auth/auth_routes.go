package auth

import (
	"github.com/gin-gonic/gin"
	"github.com/jogajunto/backend/config"
	"github.com/jogajunto/backend/internal/player"
	"gorm.io/gorm"
)

// RegisterAuthRoutes sets up the public auth endpoints.
func RegisterAuthRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	controller := NewAuthController(player.NewPlayerRepository(db), appConfig)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", controller.Register)
		authGroup.POST("/login", controller.Login)
		authGroup.POST("/refresh", controller.Refresh)
	}
}
