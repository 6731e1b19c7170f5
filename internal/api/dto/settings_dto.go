package dto

// SettingsUpdateRequest 站点设置部分更新请求，nil 字段不修改
type SettingsUpdateRequest struct {
	YoutubeChannelID *string   `json:"youtubeChannelId" binding:"omitempty,max=64"`
	FeaturedVideoID  *string   `json:"featuredVideoId" binding:"omitempty,max=64"`
	NewsTickerItems  *[]string `json:"newsTickerItems" binding:"omitempty,min=1,dive,required"`
	IsLiveStreaming  *bool     `json:"isLiveStreaming"`
	LiveStreamID     *string   `json:"liveStreamId" binding:"omitempty,max=64"`
}

// LiveStreamRequest 直播状态更新请求
type LiveStreamRequest struct {
	IsLiveStreaming *bool  `json:"isLiveStreaming" binding:"required"`
	LiveStreamID    string `json:"liveStreamId" binding:"omitempty,max=64"`
}
