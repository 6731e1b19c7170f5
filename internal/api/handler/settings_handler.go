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

type SettingsHandler struct {
	settingsService *service.SettingsService
}

func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get GET /api/settings
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.Get(c.Request.Context())
	if err != nil {
		handleSettingsError(c, err)
		return
	}
	response.OK(c, "获取站点设置成功", settings)
}

// Update PUT /api/settings（管理员）
func (h *SettingsHandler) Update(c *gin.Context) {
	var req dto.SettingsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	settings, err := h.settingsService.Update(c.Request.Context(), &req)
	if err != nil {
		handleSettingsError(c, err)
		return
	}
	response.OK(c, "更新站点设置成功", settings)
}

// LiveStream GET /api/livestream
func (h *SettingsHandler) LiveStream(c *gin.Context) {
	settings, err := h.settingsService.LiveStream(c.Request.Context())
	if err != nil {
		handleSettingsError(c, err)
		return
	}
	response.OK(c, "获取直播状态成功", gin.H{
		"isLiveStreaming": settings.IsLiveStreaming,
		"liveStreamId":    settings.LiveStreamID,
	})
}

// UpdateLiveStream POST /api/livestream（管理员）
func (h *SettingsHandler) UpdateLiveStream(c *gin.Context) {
	var req dto.LiveStreamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	settings, err := h.settingsService.UpdateLiveStream(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrLiveStreamIDRequired) {
			response.BadRequest(c, "开播时必须提供直播视频ID")
			return
		}
		handleSettingsError(c, err)
		return
	}
	response.OK(c, "更新直播状态成功", settings)
}

func handleSettingsError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrSettingsNotFound) {
		response.NotFound(c, "站点设置不存在")
		return
	}
	logger.Error("Settings operation failed", zap.Error(err))
	response.InternalError(c, "站点设置操作失败")
}
