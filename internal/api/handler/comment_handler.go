package handler

import (
	"errors"

	"fanhub-go/internal/api/dto"
	"fanhub-go/internal/api/middleware"
	"fanhub-go/internal/api/response"
	"fanhub-go/internal/service"
	"fanhub-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// ListByVideo GET /api/videos/:id/comments
// 未认证请求只能看到审核通过的评论，管理员可以看到全部
func (h *CommentHandler) ListByVideo(c *gin.Context) {
	videoID, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	includeUnapproved := middleware.IsAdmin(c)
	comments, err := h.commentService.ListByVideo(c.Request.Context(), videoID, includeUnapproved)
	if err != nil {
		handleCommentError(c, err)
		return
	}
	response.OK(c, "获取评论列表成功", comments)
}

// Create POST /api/videos/:id/comments（公开，评论创建后待审核）
func (h *CommentHandler) Create(c *gin.Context) {
	videoID, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	var req dto.CommentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	comment, err := h.commentService.Create(c.Request.Context(), videoID, &req)
	if err != nil {
		handleCommentError(c, err)
		return
	}
	response.Created(c, "评论已提交，等待审核", comment)
}

// Approve POST /api/comments/:id/approve（管理员）
func (h *CommentHandler) Approve(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "无效的评论ID")
		return
	}

	comment, err := h.commentService.Approve(c.Request.Context(), id)
	if err != nil {
		handleCommentError(c, err)
		return
	}
	response.OK(c, "评论审核通过", comment)
}

// Delete DELETE /api/comments/:id（管理员）
func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "无效的评论ID")
		return
	}

	if err := h.commentService.Delete(c.Request.Context(), id); err != nil {
		handleCommentError(c, err)
		return
	}
	response.OK(c, "删除评论成功", nil)
}

func handleCommentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrVideoNotFound):
		response.NotFound(c, "视频不存在")
	case errors.Is(err, service.ErrCommentNotFound):
		response.NotFound(c, "评论不存在")
	default:
		logger.Error("Comment operation failed", zap.Error(err))
		response.InternalError(c, "评论操作失败")
	}
}
