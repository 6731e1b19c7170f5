package dto

// QRCodeData 二维码响应数据，QRCode 为 PNG data-URI
type QRCodeData struct {
	URL    string `json:"url"`
	QRCode string `json:"qrCode"`
}
