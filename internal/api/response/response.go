// Package response 定义统一的 HTTP 响应包体。
// 成功响应为 {success, message, data}，错误响应为 {error: {code, message, type}}。
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Body 统一成功响应
type Body struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorBody 统一错误响应
type ErrorBody struct {
	Error ErrorInfo `json:"error"`
}

// ErrorInfo 错误详情，Code 与 HTTP 状态码一致
type ErrorInfo struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func ok(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Body{Success: true, Message: message, Data: data})
}

// OK 返回 200 成功响应
func OK(c *gin.Context, message string, data interface{}) {
	ok(c, http.StatusOK, message, data)
}

// Created 返回 201 成功响应
func Created(c *gin.Context, message string, data interface{}) {
	ok(c, http.StatusCreated, message, data)
}

// Fail 返回指定状态码的错误响应
func Fail(c *gin.Context, statusCode int, errType string, message string) {
	c.JSON(statusCode, ErrorBody{
		Error: ErrorInfo{Code: statusCode, Message: message, Type: errType},
	})
}

func BadRequest(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, "BadRequest", message)
}

func Unauthorized(c *gin.Context, message string) {
	Fail(c, http.StatusUnauthorized, "Unauthorized", message)
}

func Conflict(c *gin.Context, message string) {
	Fail(c, http.StatusConflict, "Conflict", message)
}

func NotFound(c *gin.Context, message string) {
	Fail(c, http.StatusNotFound, "NotFound", message)
}

func InternalError(c *gin.Context, message string) {
	Fail(c, http.StatusInternalServerError, "InternalServerError", message)
}

func ServiceUnavailable(c *gin.Context, message string) {
	Fail(c, http.StatusServiceUnavailable, "ServiceUnavailable", message)
}
