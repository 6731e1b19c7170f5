package model

import "time"

// SiteSetting 站点全局设置（全系统只存在一条记录）
type SiteSetting struct {
	ID               int64      `gorm:"primaryKey;autoIncrement;comment:设置标识" json:"id" firestore:"id"`
	YoutubeChannelID *string    `gorm:"size:64;comment:YouTube频道ID" json:"youtubeChannelId" firestore:"youtubeChannelId"`
	FeaturedVideoID  *string    `gorm:"size:64;comment:首页嵌入的YouTube视频ID" json:"featuredVideoId" firestore:"featuredVideoId"`
	NewsTickerItems  []string   `gorm:"serializer:json;type:jsonb;comment:滚动公告条目" json:"newsTickerItems" firestore:"newsTickerItems"`
	IsLiveStreaming  bool       `gorm:"not null;default:false;comment:直播中标识" json:"isLiveStreaming" firestore:"isLiveStreaming"`
	LiveStreamID     *string    `gorm:"size:64;comment:直播视频ID" json:"liveStreamId" firestore:"liveStreamId"`
	LastUpdated      time.Time  `gorm:"comment:最后更新时间" json:"lastUpdated" firestore:"lastUpdated"`
}

func (SiteSetting) TableName() string {
	return "site_settings"
}
