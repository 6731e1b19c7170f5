package dto

// YouTubeVideo YouTube Data API 代理返回的单条视频
type YouTubeVideo struct {
	VideoID      string `json:"videoId"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnailUrl"`
	PublishedAt  string `json:"publishedAt"`
}

// YouTubeVideoList YouTube 视频列表响应数据
type YouTubeVideoList struct {
	ChannelID string         `json:"channelId"`
	Videos    []YouTubeVideo `json:"videos"`
	Cached    bool           `json:"cached"`
}

// YouTubeChannelInfo 频道概览响应数据
type YouTubeChannelInfo struct {
	ChannelID       string `json:"channelId"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	ThumbnailURL    string `json:"thumbnailUrl"`
	SubscriberCount string `json:"subscriberCount"`
	VideoCount      string `json:"videoCount"`
	ViewCount       string `json:"viewCount"`
	Cached          bool   `json:"cached"`
}

// YouTubeVideoDetail 单条视频详情响应数据
type YouTubeVideoDetail struct {
	VideoID      string `json:"videoId"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnailUrl"`
	PublishedAt  string `json:"publishedAt"`
	Duration     string `json:"duration"`
	ViewCount    string `json:"viewCount"`
	LikeCount    string `json:"likeCount"`
	Cached       bool   `json:"cached"`
}
