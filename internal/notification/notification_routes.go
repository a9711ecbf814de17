package notification

import (
	"github.com/gin-gonic/gin"
	"github.com/jogajunto/backend/config"
	"github.com/jogajunto/backend/internal/middleware"
	"gorm.io/gorm"
)

// RegisterNotificationRoutes sets up the notification endpoints.
func RegisterNotificationRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	controller := NewNotificationController(NewNotificationRepository(db))

	notifications := router.Group("/notifications")
	notifications.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		notifications.GET("", controller.ListNotifications)
		notifications.PUT("/:id/read", controller.MarkRead)
		notifications.DELETE("", controller.ClearNotifications)
	}
}
