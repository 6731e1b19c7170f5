package model

import "time"

// Download 下载资源模型（游戏/模组/工具）
type Download struct {
	ID            int64     `gorm:"primaryKey;autoIncrement;comment:资源标识" json:"id" firestore:"id"`
	Title         string    `gorm:"size:200;not null;comment:资源标题" json:"title" firestore:"title"`
	Description   *string   `gorm:"type:text;comment:资源描述" json:"description" firestore:"description"`
	Type          string    `gorm:"size:20;not null;index:idx_downloads_type;comment:资源类型 game/mod/tool" json:"type" firestore:"type"`
	Version       string    `gorm:"size:50;not null;comment:版本号" json:"version" firestore:"version"`
	DownloadURL   string    `gorm:"size:500;not null;comment:下载地址" json:"downloadUrl" firestore:"downloadUrl"`
	ThumbnailURL  *string   `gorm:"size:500;comment:封面地址" json:"thumbnailUrl" firestore:"thumbnailUrl"`
	DownloadCount int       `gorm:"not null;default:0;comment:下载次数" json:"downloadCount" firestore:"downloadCount"`
	Rating        int       `gorm:"default:0;comment:评分" json:"rating" firestore:"rating"`
	RatingCount   int       `gorm:"default:0;comment:评分次数" json:"ratingCount" firestore:"ratingCount"`
	ReleaseDate   time.Time `gorm:"comment:发布日期" json:"releaseDate" firestore:"releaseDate"`
	CreatedAt     time.Time `gorm:"autoCreateTime;comment:创建时间" json:"createdAt" firestore:"createdAt"`
}

func (Download) TableName() string {
	return "downloads"
}

// 资源类型枚举
const (
	DownloadTypeGame = "game"
	DownloadTypeMod  = "mod"
	DownloadTypeTool = "tool"
)
