package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseID 解析路径中的整数ID参数
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
