package dto

// ConvertLinkRequest 下载链接转换请求
type ConvertLinkRequest struct {
	URL string `json:"url" binding:"required,min=1,max=2000"`
}

// ConvertLinkData 下载链接转换响应数据
type ConvertLinkData struct {
	OriginalURL  string `json:"originalUrl"`
	ConvertedURL string `json:"convertedUrl"`
	IsConverted  bool   `json:"isConverted"`
}
