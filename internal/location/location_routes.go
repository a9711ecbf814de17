package location

import (
	"github.com/gin-gonic/gin"
	"github.com/jogajunto/backend/config"
	"github.com/jogajunto/backend/internal/middleware"
	"gorm.io/gorm"
)

// RegisterLocationRoutes wires location endpoints. Reads are public;
// mutations are admin-only.
func RegisterLocationRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewLocationRepository(db)
	controller := NewLocationController(repo)

	locations := router.Group("/locations")
	{
		locations.GET("", controller.ListLocations)
		locations.GET("/:id", controller.GetLocation)
	}

	admin := router.Group("/admin/locations")
	admin.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db), middleware.AdminOnly())
	{
		admin.POST("", controller.CreateLocation)
		admin.PUT("/:id", controller.UpdateLocation)
		admin.DELETE("/:id", controller.DeleteLocation)
	}
}
