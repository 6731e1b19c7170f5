package service

import (
	"testing"

	"fanhub-go/internal/api/dto"

	"github.com/stretchr/testify/assert"
)

func TestConvertDownloadLink(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		want      string
		converted bool
	}{
		{
			name:      "onedrive short link without query",
			url:       "https://1drv.ms/u/s!AbCdEf",
			want:      "https://1drv.ms/u/s!AbCdEf?download=1",
			converted: true,
		},
		{
			name:      "onedrive short link with query",
			url:       "https://1drv.ms/u/s!AbCdEf?e=xyz",
			want:      "https://1drv.ms/u/s!AbCdEf?e=xyz&download=1",
			converted: true,
		},
		{
			name:      "onedrive long link strips existing query",
			url:       "https://onedrive.live.com/abc?x=1",
			want:      "https://onedrive.live.com/abc?download=1",
			converted: true,
		},
		{
			name:      "onedrive long link without query",
			url:       "https://onedrive.live.com/download/file",
			want:      "https://onedrive.live.com/download/file?download=1",
			converted: true,
		},
		{
			name:      "sharepoint link",
			url:       "https://contoso.sharepoint.com/:u:/g/doc?e=abc&csf=1",
			want:      "https://contoso.sharepoint.com/:u:/g/doc?download=1",
			converted: true,
		},
		{
			name:      "unrelated url passes through",
			url:       "https://example.com/file.zip",
			want:      "https://example.com/file.zip",
			converted: false,
		},
		{
			name:      "empty string passes through",
			url:       "",
			want:      "",
			converted: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ConvertDownloadLink(tt.url)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.converted, ok)
		})
	}
}

// 转换结果再次转换不应产生变化
func TestConvertDownloadLinkIdempotent(t *testing.T) {
	urls := []string{
		"https://1drv.ms/u/s!AbCdEf",
		"https://1drv.ms/u/s!AbCdEf?e=xyz",
		"https://onedrive.live.com/abc?x=1",
		"https://contoso.sharepoint.com/:u:/g/doc?e=abc",
		"https://example.com/file.zip",
	}

	for _, url := range urls {
		once, okOnce := ConvertDownloadLink(url)
		twice, okTwice := ConvertDownloadLink(once)
		assert.Equal(t, once, twice, "second pass must not change %q", url)
		assert.Equal(t, okOnce, okTwice)
	}
}

func TestLinkServiceConvert(t *testing.T) {
	svc := NewLinkService()

	data := svc.Convert(&dto.ConvertLinkRequest{URL: "https://1drv.ms/u/s!AbCdEf"})
	assert.Equal(t, "https://1drv.ms/u/s!AbCdEf", data.OriginalURL)
	assert.Equal(t, "https://1drv.ms/u/s!AbCdEf?download=1", data.ConvertedURL)
	assert.True(t, data.IsConverted)
}
