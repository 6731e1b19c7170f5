package dto

// SubscribeRequest 新增订阅者请求
type SubscribeRequest struct {
	Email            string `json:"email" binding:"required,email,max=255"`
	NotificationType string `json:"notificationType" binding:"omitempty,oneof=all videos downloads announcements"`
}
