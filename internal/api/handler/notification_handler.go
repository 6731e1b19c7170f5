package handler

import (
	"errors"

	"fanhub-go/internal/api/dto"
	"fanhub-go/internal/api/response"
	"fanhub-go/internal/service"
	"fanhub-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type NotificationHandler struct {
	notificationService *service.NotificationService
}

func NewNotificationHandler(notificationService *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// List GET /api/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	notifications, err := h.notificationService.List(c.Request.Context())
	if err != nil {
		logger.Error("List notifications failed", zap.Error(err))
		response.InternalError(c, "获取通知列表失败")
		return
	}
	response.OK(c, "获取通知列表成功", notifications)
}

// Create POST /api/notifications（管理员）
func (h *NotificationHandler) Create(c *gin.Context) {
	var req dto.NotificationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	notification, err := h.notificationService.Create(c.Request.Context(), &req)
	if err != nil {
		logger.Error("Create notification failed", zap.Error(err))
		response.InternalError(c, "创建通知失败")
		return
	}
	response.Created(c, "创建通知成功", notification)
}

// MarkRead PATCH /api/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "无效的通知ID")
		return
	}

	notification, err := h.notificationService.MarkRead(c.Request.Context(), id)
	if err != nil {
		handleNotificationError(c, err)
		return
	}
	response.OK(c, "通知已标记为已读", notification)
}

// Delete DELETE /api/notifications/:id（管理员）
func (h *NotificationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "无效的通知ID")
		return
	}

	if err := h.notificationService.Delete(c.Request.Context(), id); err != nil {
		handleNotificationError(c, err)
		return
	}
	response.OK(c, "删除通知成功", nil)
}

func handleNotificationError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrNotificationNotFound) {
		response.NotFound(c, "通知不存在")
		return
	}
	logger.Error("Notification operation failed", zap.Error(err))
	response.InternalError(c, "通知操作失败")
}
