package model

import "time"

// Notification 站内通知模型
type Notification struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:通知标识" json:"id" firestore:"id"`
	Title     string    `gorm:"size:200;not null;comment:通知标题" json:"title" firestore:"title"`
	Message   string    `gorm:"type:text;not null;comment:通知内容" json:"message" firestore:"message"`
	Type      string    `gorm:"size:20;not null;comment:通知类型 video/download/announcement" json:"type" firestore:"type"`
	Read      bool      `gorm:"not null;default:false;comment:已读标识" json:"read" firestore:"read"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_notifications_created_at;comment:创建时间" json:"createdAt" firestore:"createdAt"`
}

func (Notification) TableName() string {
	return "notifications"
}

// 通知类型枚举
const (
	NotificationTypeVideo        = "video"
	NotificationTypeDownload     = "download"
	NotificationTypeAnnouncement = "announcement"
)
