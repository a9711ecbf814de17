package notification

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jogajunto/backend/internal/middleware"
	"github.com/jogajunto/backend/pkg/responses"
)

// NotificationController handles notification HTTP requests.
type NotificationController struct {
	repo NotificationRepository
}

// NewNotificationController creates a new notification controller.
func NewNotificationController(repo NotificationRepository) *NotificationController {
	return &NotificationController{repo: repo}
}

// ListNotifications godoc
// @Summary List the caller's notifications, newest first
// @Tags notifications
// @Produce json
// @Param page query int false "Page" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} responses.PaginatedResponse
// @Router /notifications [get]
// @Security Bearer
func (c *NotificationController) ListNotifications(ctx *gin.Context) {
	playerID, err := middleware.GetPlayerIDFromContext(ctx)
	if err != nil {
		responses.Unauthorized(ctx, "")
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	list, total, err := c.repo.GetByPlayer(playerID, page, pageSize)
	if err != nil {
		responses.InternalServerError(ctx, "")
		return
	}
	responses.SendPaginated(ctx, http.StatusOK, "", list, total, page, pageSize)
}

// MarkRead godoc
// @Summary Mark a notification as read
// @Tags notifications
// @Param id path int true "Notification ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /notifications/{id}/read [put]
// @Security Bearer
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	playerID, err := middleware.GetPlayerIDFromContext(ctx)
	if err != nil {
		responses.Unauthorized(ctx, "")
		return
	}
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(ctx, "Invalid notification id")
		return
	}

	n, err := c.repo.GetByID(uint(id))
	if err != nil {
		responses.InternalServerError(ctx, "")
		return
	}
	if n == nil || n.PlayerID != playerID {
		responses.NotFound(ctx, "Notification")
		return
	}

	if err := c.repo.MarkRead(n.ID); err != nil {
		responses.InternalServerError(ctx, "Failed to update notification")
		return
	}
	responses.SendSuccess(ctx, http.StatusOK, "Notification marked as read", nil)
}

// ClearNotifications godoc
// @Summary Delete all of the caller's notifications
// @Tags notifications
// @Success 200 {object} responses.SuccessResponse
// @Router /notifications [delete]
// @Security Bearer
func (c *NotificationController) ClearNotifications(ctx *gin.Context) {
	playerID, err := middleware.GetPlayerIDFromContext(ctx)
	if err != nil {
		responses.Unauthorized(ctx, "")
		return
	}
	if err := c.repo.ClearForPlayer(playerID); err != nil {
		responses.InternalServerError(ctx, "Failed to clear notifications")
		return
	}
	responses.SendSuccess(ctx, http.StatusOK, "Notifications cleared", nil)
}
