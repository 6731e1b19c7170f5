package dto

// NotificationCreateRequest 创建通知请求
type NotificationCreateRequest struct {
	Title   string `json:"title" binding:"required,min=1,max=200"`
	Message string `json:"message" binding:"required,min=1"`
	Type    string `json:"type" binding:"required,oneof=video download announcement"`
}
