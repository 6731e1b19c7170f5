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

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	data, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredential) {
			response.Unauthorized(c, "用户名或密码错误")
			return
		}
		logger.Error("Login failed", zap.String("username", req.Username), zap.Error(err))
		response.InternalError(c, "登录失败")
		return
	}

	response.OK(c, "登录成功", data)
}
