package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"fanhub-go/internal/api/dto"
	"fanhub-go/internal/config"
	"fanhub-go/internal/storage"

	"github.com/skip2/go-qrcode"
)

var (
	ErrChannelNotConfigured = errors.New("未配置YouTube频道ID")
)

const qrCodeSize = 256

type QRCodeService struct {
	store storage.Storage
}

func NewQRCodeService(store storage.Storage) *QRCodeService {
	return &QRCodeService{store: store}
}

// Channel 生成频道主页二维码。优先使用站点设置中的频道ID，其次读配置
func (s *QRCodeService) Channel(ctx context.Context) (*dto.QRCodeData, error) {
	channelID := ""
	if settings, err := s.store.GetSiteSettings(ctx); err == nil && settings.YoutubeChannelID != nil {
		channelID = *settings.YoutubeChannelID
	}
	if channelID == "" {
		channelID = config.GetYouTube().ChannelID
	}
	if channelID == "" {
		return nil, ErrChannelNotConfigured
	}

	url := fmt.Sprintf("https://www.youtube.com/channel/%s", channelID)
	return encodeQR(url)
}

// Video 生成指定视频播放页二维码
func (s *QRCodeService) Video(ctx context.Context, id int64) (*dto.QRCodeData, error) {
	video, err := s.store.GetVideo(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	url := fmt.Sprintf("https://www.youtube.com/watch?v=%s", video.YoutubeID)
	return encodeQR(url)
}

func encodeQR(url string) (*dto.QRCodeData, error) {
	png, err := qrcode.Encode(url, qrcode.High, qrCodeSize)
	if err != nil {
		return nil, fmt.Errorf("生成二维码失败: %w", err)
	}
	return &dto.QRCodeData{
		URL:    url,
		QRCode: "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
	}, nil
}
