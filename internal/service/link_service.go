package service

import (
	"strings"

	"fanhub-go/internal/api/dto"
)

const directDownloadMarker = "download=1"

type LinkService struct{}

func NewLinkService() *LinkService {
	return &LinkService{}
}

// Convert 把云存储分享链接转换为尽力而为的直接下载链接
func (s *LinkService) Convert(req *dto.ConvertLinkRequest) *dto.ConvertLinkData {
	converted, ok := ConvertDownloadLink(req.URL)
	return &dto.ConvertLinkData{
		OriginalURL:  req.URL,
		ConvertedURL: converted,
		IsConverted:  ok,
	}
}

// ConvertDownloadLink 识别 OneDrive/SharePoint 分享链接并追加直接下载参数。
// 长链接先去掉原有查询参数再追加；1drv.ms 短链接没有有意义的查询串，
// 直接在末尾追加（不解析短链接的最终跳转地址）。
// 对任意输入重复应用结果不变（幂等），无法识别的链接原样返回。
func ConvertDownloadLink(rawURL string) (string, bool) {
	switch {
	case strings.Contains(rawURL, "1drv.ms"):
		if strings.Contains(rawURL, directDownloadMarker) {
			return rawURL, true
		}
		if strings.Contains(rawURL, "?") {
			return rawURL + "&" + directDownloadMarker, true
		}
		return rawURL + "?" + directDownloadMarker, true

	case strings.Contains(rawURL, "onedrive.live.com"),
		strings.Contains(rawURL, "sharepoint.com"):
		base := rawURL
		if idx := strings.Index(rawURL, "?"); idx >= 0 {
			base = rawURL[:idx]
		}
		return base + "?" + directDownloadMarker, true
	}

	return rawURL, false
}
