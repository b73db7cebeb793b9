package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/alumnibridge/internal/app/models/dto"
	"github.com/yigit/alumnibridge/internal/app/services"
	"github.com/yigit/alumnibridge/internal/middleware"
	"github.com/yigit/alumnibridge/internal/pkg/sse"
)

// NotificationController handles the in-app notification feed
type NotificationController struct {
	notificationService *services.NotificationService
}

// NewNotificationController creates a new NotificationController
func NewNotificationController(notificationService *services.NotificationService) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
	}
}

// ListNotifications returns the caller's notifications
// @Summary List notifications
// @Description Retrieves the authenticated user's notifications, newest first
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Notification} "Notifications retrieved"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /notifications [get]
func (c *NotificationController) ListNotifications(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)

	notifications, err := c.notificationService.ListFor(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(notifications))
}

// MarkNotificationRead marks one notification as read
// @Summary Mark notification read
// @Description Marks a notification as read. Repeating the call has no further effect.
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Notification ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Marked read"
// @Failure 400 {object} dto.APIResponse "Invalid notification ID"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /notifications/{id}/read [patch]
func (c *NotificationController) MarkNotificationRead(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.notificationService.MarkRead(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Notification marked as read"}))
}

// StreamNotifications pushes new notifications over SSE
// @Summary Stream notifications
// @Description Opens a server-sent events stream delivering the caller's notifications as they are created
// @Tags notifications
// @Produce text/event-stream
// @Security BearerAuth
// @Success 200 {string} string "event stream"
// @Router /notifications/stream [get]
func (c *NotificationController) StreamNotifications(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)

	broker := c.notificationService.Broker()
	clientChan := make(chan sse.Event, 16)
	broker.Register(userID, clientChan)
	defer broker.Unregister(userID, clientChan)

	ctx.Writer.Header().Set("Content-Type", "text/event-stream")
	ctx.Writer.Header().Set("Cache-Control", "no-cache")
	ctx.Writer.Header().Set("Connection", "keep-alive")

	ctx.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-clientChan:
			if !ok {
				return false
			}
			ctx.SSEvent(event.Type, event.Data)
			return true
		case <-ctx.Request.Context().Done():
			return false
		}
	})
}
