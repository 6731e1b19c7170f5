package model

import "time"

// Subscriber 邮件订阅者模型
type Subscriber struct {
	ID               int64     `gorm:"primaryKey;autoIncrement;comment:订阅者标识" json:"id" firestore:"id"`
	Email            string    `gorm:"size:255;not null;uniqueIndex;comment:邮箱地址" json:"email" firestore:"email"`
	NotificationType string    `gorm:"size:20;not null;default:'all';comment:订阅类型 all/videos/downloads/announcements" json:"notificationType" firestore:"notificationType"`
	CreatedAt        time.Time `gorm:"autoCreateTime;comment:订阅时间" json:"createdAt" firestore:"createdAt"`
}

func (Subscriber) TableName() string {
	return "subscribers"
}
