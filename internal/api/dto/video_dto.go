package dto

import "time"

// VideoCreateRequest 创建视频请求
type VideoCreateRequest struct {
	YoutubeID    string     `json:"youtubeId" binding:"required,min=1,max=64"`
	Title        string     `json:"title" binding:"required,min=1,max=200"`
	Description  *string    `json:"description"`
	ThumbnailURL *string    `json:"thumbnailUrl" binding:"omitempty,max=500"`
	Duration     *string    `json:"duration" binding:"omitempty,max=20"`
	ViewCount    *int       `json:"viewCount" binding:"omitempty,min=0"`
	UploadDate   *time.Time `json:"uploadDate"`
	Category     string     `json:"category" binding:"omitempty,max=64"`
	IsFeatured   bool       `json:"isFeatured"`
}

// VideoUpdateRequest 更新视频请求，nil 字段不修改
type VideoUpdateRequest struct {
	YoutubeID    *string    `json:"youtubeId" binding:"omitempty,min=1,max=64"`
	Title        *string    `json:"title" binding:"omitempty,min=1,max=200"`
	Description  *string    `json:"description"`
	ThumbnailURL *string    `json:"thumbnailUrl" binding:"omitempty,max=500"`
	Duration     *string    `json:"duration" binding:"omitempty,max=20"`
	ViewCount    *int       `json:"viewCount" binding:"omitempty,min=0"`
	UploadDate   *time.Time `json:"uploadDate"`
	Category     *string    `json:"category" binding:"omitempty,min=1,max=64"`
	IsFeatured   *bool      `json:"isFeatured"`
}
