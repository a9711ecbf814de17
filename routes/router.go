package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/jogajunto/backend/config"
	"github.com/jogajunto/backend/internal/auth"
	"github.com/jogajunto/backend/internal/availability"
	"github.com/jogajunto/backend/internal/board"
	"github.com/jogajunto/backend/internal/game"
	"github.com/jogajunto/backend/internal/location"
	"github.com/jogajunto/backend/internal/matching"
	"github.com/jogajunto/backend/internal/notification"
	"github.com/jogajunto/backend/internal/player"
)

func SetupRoutes(db *gorm.DB, appConfig *config.Config) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{appConfig.App.FrontendURL}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": "jogajunto", "status": "ok"})
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	auth.RegisterAuthRoutes(api, db, appConfig)
	player.RegisterPlayerRoutes(api, db, appConfig)
	location.RegisterLocationRoutes(api, db, appConfig)
	availability.RegisterAvailabilityRoutes(api, db, appConfig)
	game.RegisterGameRoutes(api, db, appConfig)
	board.RegisterBoardRoutes(api, db, appConfig)
	notification.RegisterNotificationRoutes(api, db, appConfig)
	matching.RegisterMatchingRoutes(api, db, appConfig)

	return r
}
