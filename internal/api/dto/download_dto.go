package dto

import "time"

// DownloadCreateRequest 创建下载资源请求
type DownloadCreateRequest struct {
	Title        string     `json:"title" binding:"required,min=1,max=200"`
	Description  *string    `json:"description"`
	Type         string     `json:"type" binding:"required,oneof=game mod tool"`
	Version      string     `json:"version" binding:"required,min=1,max=32"`
	DownloadURL  string     `json:"downloadUrl" binding:"required,min=1,max=500"`
	ThumbnailURL *string    `json:"thumbnailUrl" binding:"omitempty,max=500"`
	ReleaseDate  *time.Time `json:"releaseDate"`
}

// DownloadUpdateRequest 更新下载资源请求，nil 字段不修改
type DownloadUpdateRequest struct {
	Title        *string    `json:"title" binding:"omitempty,min=1,max=200"`
	Description  *string    `json:"description"`
	Type         *string    `json:"type" binding:"omitempty,oneof=game mod tool"`
	Version      *string    `json:"version" binding:"omitempty,min=1,max=32"`
	DownloadURL  *string    `json:"downloadUrl" binding:"omitempty,min=1,max=500"`
	ThumbnailURL *string    `json:"thumbnailUrl" binding:"omitempty,max=500"`
	Rating       *int       `json:"rating" binding:"omitempty,min=0,max=5"`
	RatingCount  *int       `json:"ratingCount" binding:"omitempty,min=0"`
	ReleaseDate  *time.Time `json:"releaseDate"`
}

// IncrementData 下载计数响应数据
type IncrementData struct {
	ID            int64 `json:"id"`
	DownloadCount int   `json:"downloadCount"`
}

// ArtifactData 制品上传响应数据
type ArtifactData struct {
	ID          int64  `json:"id"`
	ObjectName  string `json:"objectName"`
	DownloadURL string `json:"downloadUrl"`
}
