package model

import "time"

// Video 站点视频模型（关联 YouTube 视频）
type Video struct {
	ID           int64      `gorm:"primaryKey;autoIncrement;comment:视频标识" json:"id" firestore:"id"`
	YoutubeID    string     `gorm:"size:64;not null;index:idx_videos_youtube_id;comment:YouTube视频ID" json:"youtubeId" firestore:"youtubeId"`
	Title        string     `gorm:"size:200;not null;comment:视频标题" json:"title" firestore:"title"`
	Description  *string    `gorm:"type:text;comment:视频描述" json:"description" firestore:"description"`
	ThumbnailURL *string    `gorm:"size:500;comment:视频封面地址" json:"thumbnailUrl" firestore:"thumbnailUrl"`
	Duration     *string    `gorm:"size:20;comment:视频时长" json:"duration" firestore:"duration"`
	ViewCount    *int       `gorm:"comment:播放量" json:"viewCount" firestore:"viewCount"`
	UploadDate   *time.Time `gorm:"comment:发布时间" json:"uploadDate" firestore:"uploadDate"`
	Category     string     `gorm:"size:64;not null;default:'general';index:idx_videos_category;comment:视频分类" json:"category" firestore:"category"`
	IsFeatured   bool       `gorm:"not null;default:false;index:idx_videos_is_featured;comment:首页推荐标识" json:"isFeatured" firestore:"isFeatured"`
	CreatedAt    time.Time  `gorm:"autoCreateTime;index:idx_videos_created_at;comment:创建时间" json:"createdAt" firestore:"createdAt"`

	// 关联关系
	Comments []Comment `gorm:"foreignKey:VideoID" json:"comments,omitempty" firestore:"-"`
}

func (Video) TableName() string {
	return "videos"
}
