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

type SubscriberHandler struct {
	subscriberService *service.SubscriberService
}

func NewSubscriberHandler(subscriberService *service.SubscriberService) *SubscriberHandler {
	return &SubscriberHandler{subscriberService: subscriberService}
}

// List GET /api/subscribers（管理员）
func (h *SubscriberHandler) List(c *gin.Context) {
	subscribers, err := h.subscriberService.List(c.Request.Context())
	if err != nil {
		logger.Error("List subscribers failed", zap.Error(err))
		response.InternalError(c, "获取订阅者列表失败")
		return
	}
	response.OK(c, "获取订阅者列表成功", subscribers)
}

// Subscribe POST /api/subscribers（公开）
func (h *SubscriberHandler) Subscribe(c *gin.Context) {
	var req dto.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	subscriber, err := h.subscriberService.Subscribe(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailSubscribed) {
			response.Conflict(c, "该邮箱已订阅")
			return
		}
		logger.Error("Subscribe failed", zap.String("email", req.Email), zap.Error(err))
		response.InternalError(c, "订阅失败")
		return
	}
	response.Created(c, "订阅成功", subscriber)
}

// Unsubscribe DELETE /api/subscribers/:id（管理员）
func (h *SubscriberHandler) Unsubscribe(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "无效的订阅者ID")
		return
	}

	if err := h.subscriberService.Unsubscribe(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrSubscriberNotFound) {
			response.NotFound(c, "订阅者不存在")
			return
		}
		logger.Error("Unsubscribe failed", zap.Int64("subscriber_id", id), zap.Error(err))
		response.InternalError(c, "取消订阅失败")
		return
	}
	response.OK(c, "取消订阅成功", nil)
}
