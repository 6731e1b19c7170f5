package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"fanhub-go/internal/model"
	"fanhub-go/pkg/logger"

	"go.uber.org/zap"
)

// ESVideoDoc ES 视频文档结构
type ESVideoDoc struct {
	ID          int64  `json:"id"`
	YoutubeID   string `json:"youtube_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	IsFeatured  bool   `json:"is_featured"`
	ViewCount   int64  `json:"view_count"`
	UploadDate  string `json:"upload_date,omitempty"`
	CreatedAt   string `json:"created_at"`
}

func videoToESDoc(v *model.Video) *ESVideoDoc {
	doc := &ESVideoDoc{
		ID:         v.ID,
		YoutubeID:  v.YoutubeID,
		Title:      v.Title,
		Category:   v.Category,
		IsFeatured: v.IsFeatured,
		CreatedAt:  v.CreatedAt.Format(time.RFC3339),
	}
	if v.Description != nil {
		doc.Description = *v.Description
	}
	if v.ViewCount != nil {
		doc.ViewCount = int64(*v.ViewCount)
	}
	if v.UploadDate != nil {
		doc.UploadDate = v.UploadDate.Format(time.RFC3339)
	}
	return doc
}

// SyncVideo 同步单个视频到 ES
func SyncVideo(ctx context.Context, v *model.Video) error {
	doc := videoToESDoc(v)
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	resp, err := Index(ctx, VideoIndexName(), v.ID, bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("index document failed: %s", resp.String())
	}

	logger.Debug("Video synced to ES", zap.Int64("video_id", v.ID))
	return nil
}

// DeleteVideo 从 ES 删除视频
func DeleteVideo(ctx context.Context, videoID int64) error {
	resp, err := Delete(ctx, VideoIndexName(), videoID)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.IsError() && resp.StatusCode != 404 {
		return fmt.Errorf("delete document failed: %s", resp.String())
	}
	return nil
}

// BulkSyncVideos 批量同步视频到 ES（启动时全量重建用）
func BulkSyncVideos(ctx context.Context, videos []model.Video) (success, failed int, err error) {
	indexName := VideoIndexName()

	var buf strings.Builder
	for i := range videos {
		doc := videoToESDoc(&videos[i])
		docBody, _ := json.Marshal(doc)

		buf.WriteString(fmt.Sprintf(`{"index":{"_index":"%s","_id":"%d"}}`, indexName, videos[i].ID))
		buf.WriteString("\n")
		buf.Write(docBody)
		buf.WriteString("\n")
	}

	if buf.Len() == 0 {
		return 0, 0, nil
	}

	resp, err := Bulk(ctx, strings.NewReader(buf.String()))
	if err != nil {
		return 0, len(videos), err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return 0, len(videos), fmt.Errorf("bulk failed: %s", resp.String())
	}

	var bulkResp struct {
		Errors bool `json:"errors"`
		Items  []struct {
			Index struct {
				Status int `json:"status"`
			} `json:"index"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&bulkResp); err != nil {
		return len(videos), 0, nil
	}

	for _, item := range bulkResp.Items {
		if item.Index.Status >= 200 && item.Index.Status < 300 {
			success++
		} else {
			failed++
		}
	}

	logger.Info("Bulk sync to ES completed", zap.Int("success", success), zap.Int("failed", failed))
	return success, failed, nil
}
