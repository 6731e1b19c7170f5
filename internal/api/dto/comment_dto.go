package dto

// CommentCreateRequest 创建评论请求
type CommentCreateRequest struct {
	Author  string `json:"author" binding:"required,min=1,max=100"`
	Content string `json:"content" binding:"required,min=1"`
	UserID  *int64 `json:"userId"`
}
