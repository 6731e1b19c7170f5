package handler

import (
	"fanhub-go/internal/api/dto"
	"fanhub-go/internal/api/response"
	"fanhub-go/internal/service"

	"github.com/gin-gonic/gin"
)

type LinkHandler struct {
	linkService *service.LinkService
}

func NewLinkHandler(linkService *service.LinkService) *LinkHandler {
	return &LinkHandler{linkService: linkService}
}

// Convert POST /api/convert-link
func (h *LinkHandler) Convert(c *gin.Context) {
	var req dto.ConvertLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	response.OK(c, "链接转换成功", h.linkService.Convert(&req))
}
