package middleware

import (
	"crypto/subtle"
	"strings"

	"fanhub-go/internal/api/response"
	"fanhub-go/internal/config"

	"github.com/gin-gonic/gin"
)

const ContextKeyIsAdmin = "isAdmin"

// AdminRequired 管理接口认证中间件。请求须携带
// Authorization: Bearer <token>，token 与配置的管理令牌比对
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Unauthorized(c, "缺少认证令牌")
			c.Abort()
			return
		}

		expected := config.GetAuth().AdminToken
		if subtle.ConstantTimeCompare([]byte(token), []byte(expected)) != 1 {
			response.Unauthorized(c, "无效的认证令牌")
			c.Abort()
			return
		}

		c.Set(ContextKeyIsAdmin, true)
		c.Next()
	}
}

// IsAdmin 当前请求是否携带了有效管理令牌。
// 用于公开接口上的行为分支（如评论列表是否包含待审核评论）
func IsAdmin(c *gin.Context) bool {
	token := extractToken(c)
	if token == "" {
		return false
	}
	expected := config.GetAuth().AdminToken
	return subtle.ConstantTimeCompare([]byte(token), []byte(expected)) == 1
}

// extractToken 从 Authorization 头中提取 Bearer Token
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
