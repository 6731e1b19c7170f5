package handler

import (
	"errors"

	"fanhub-go/internal/api/response"
	"fanhub-go/internal/service"
	"fanhub-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type QRCodeHandler struct {
	qrcodeService *service.QRCodeService
}

func NewQRCodeHandler(qrcodeService *service.QRCodeService) *QRCodeHandler {
	return &QRCodeHandler{qrcodeService: qrcodeService}
}

// Channel GET /api/qrcode/channel
func (h *QRCodeHandler) Channel(c *gin.Context) {
	data, err := h.qrcodeService.Channel(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrChannelNotConfigured) {
			response.NotFound(c, "未配置YouTube频道")
			return
		}
		logger.Error("Generate channel QR code failed", zap.Error(err))
		response.InternalError(c, "生成二维码失败")
		return
	}
	response.OK(c, "生成二维码成功", data)
}

// Video GET /api/qrcode/video/:id
func (h *QRCodeHandler) Video(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	data, err := h.qrcodeService.Video(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrVideoNotFound) {
			response.NotFound(c, "视频不存在")
			return
		}
		logger.Error("Generate video QR code failed", zap.Int64("video_id", id), zap.Error(err))
		response.InternalError(c, "生成二维码失败")
		return
	}
	response.OK(c, "生成二维码成功", data)
}
