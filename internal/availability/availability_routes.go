package availability

import (
	"github.com/gin-gonic/gin"
	"github.com/jogajunto/backend/config"
	"github.com/jogajunto/backend/internal/middleware"
	"gorm.io/gorm"
)

// RegisterAvailabilityRoutes wires availability endpoints. All of them
// require authentication.
func RegisterAvailabilityRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewAvailabilityRepository(db)
	controller := NewAvailabilityController(repo)

	availabilities := router.Group("/availabilities")
	availabilities.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		availabilities.POST("", controller.CreateAvailability)
		availabilities.GET("/mine", controller.MyAvailabilities)
		availabilities.PUT("/:id", controller.UpdateAvailability)
		availabilities.POST("/:id/republish", controller.RepublishAvailability)
		availabilities.DELETE("/:id", controller.DeleteAvailability)
	}
}
