package matching

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jogajunto/backend/config"
	"github.com/jogajunto/backend/internal/availability"
	"github.com/jogajunto/backend/internal/location"
	"github.com/jogajunto/backend/internal/middleware"
	"github.com/jogajunto/backend/internal/notification"
	"github.com/jogajunto/backend/pkg/responses"
	"gorm.io/gorm"
)

// RegisterMatchingRoutes sets up the admin matching endpoint.
func RegisterMatchingRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	service := NewService(
		availability.NewAvailabilityRepository(db),
		location.NewLocationRepository(db),
		notification.NewNotificationRepository(db),
		appConfig.Matching.RadiusKm,
	)

	admin := router.Group("/admin/matching")
	admin.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db), middleware.AdminOnly())
	{
		admin.POST("/run", runPassHandler(service))
	}
}

// runPassHandler godoc
// @Summary Run one availability matching pass (admin)
// @Tags matching
// @Produce json
// @Success 200 {object} responses.SuccessResponse
// @Router /admin/matching/run [post]
// @Security Bearer
func runPassHandler(service *Service) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		stats, err := service.RunPass(ctx.Request.Context())
		if err != nil {
			responses.InternalServerError(ctx, "Matching pass failed")
			return
		}
		responses.SendSuccess(ctx, http.StatusOK, "Matching pass completed", stats)
	}
}
