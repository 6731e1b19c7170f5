package model

import "time"

// Comment 视频评论模型（需管理员审核后对外可见）
type Comment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:评论标识" json:"id" firestore:"id"`
	VideoID   int64     `gorm:"not null;index:idx_comments_video_id;comment:被评论视频ID" json:"videoId" firestore:"videoId"`
	UserID    *int64    `gorm:"index:idx_comments_user_id;comment:评论用户ID（匿名为空）" json:"userId" firestore:"userId"`
	Author    string    `gorm:"size:100;not null;comment:评论者昵称" json:"author" firestore:"author"`
	Content   string    `gorm:"type:text;not null;comment:评论内容" json:"content" firestore:"content"`
	Approved  bool      `gorm:"not null;default:false;index:idx_comments_approved;comment:审核通过标识" json:"approved" firestore:"approved"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_comments_created_at;comment:评论时间" json:"createdAt" firestore:"createdAt"`

	// 关联关系
	Video Video `gorm:"foreignKey:VideoID" json:"video,omitempty" firestore:"-"`
	User  *User `gorm:"foreignKey:UserID" json:"user,omitempty" firestore:"-"`
}

func (Comment) TableName() string {
	return "comments"
}
