package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	infraES "fanhub-go/internal/infra/elasticsearch"
	"fanhub-go/internal/model"
	"fanhub-go/internal/storage"
	"fanhub-go/pkg/logger"

	"go.uber.org/zap"
)

type SearchService struct {
	store storage.Storage
}

func NewSearchService(store storage.Storage) *SearchService {
	return &SearchService{store: store}
}

// SearchVideos 搜索视频（ES 优先，失败则降级到存储层扫描）
func (s *SearchService) SearchVideos(ctx context.Context, q string) ([]model.Video, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return s.store.ListVideos(ctx)
	}

	if infraES.Enabled() {
		videos, err := s.searchFromES(ctx, q)
		if err == nil {
			return videos, nil
		}
		logger.Warn("ES search failed, fallback to storage scan", zap.Error(err))
	}

	return s.searchFromStorage(ctx, q)
}

func (s *SearchService) searchFromES(ctx context.Context, q string) ([]model.Video, error) {
	query := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":    q,
				"fields":   []string{"title^3", "description^1"},
				"type":     "best_fields",
				"operator": "or",
			},
		},
		"_source": []string{"id"},
		"size":    50,
		"sort": []interface{}{
			map[string]interface{}{"_score": map[string]string{"order": "desc"}},
		},
	}

	queryJSON, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	resp, err := infraES.Search(ctx, infraES.VideoIndexName(), bytes.NewReader(queryJSON))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return nil, fmt.Errorf("ES search error: %s", resp.String())
	}

	var esResp struct {
		Hits struct {
			Hits []struct {
				Source struct {
					ID int64 `json:"id"`
				} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&esResp); err != nil {
		return nil, err
	}

	videos := make([]model.Video, 0, len(esResp.Hits.Hits))
	for _, h := range esResp.Hits.Hits {
		video, err := s.store.GetVideo(ctx, h.Source.ID)
		if err != nil {
			// 索引落后于存储，跳过已删除的视频
			continue
		}
		videos = append(videos, *video)
	}
	return videos, nil
}

// searchFromStorage 无 ES 时的兜底：全量扫描标题与描述做子串匹配
func (s *SearchService) searchFromStorage(ctx context.Context, q string) ([]model.Video, error) {
	all, err := s.store.ListVideos(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(q)
	videos := make([]model.Video, 0)
	for i := range all {
		if strings.Contains(strings.ToLower(all[i].Title), needle) {
			videos = append(videos, all[i])
			continue
		}
		if all[i].Description != nil && strings.Contains(strings.ToLower(*all[i].Description), needle) {
			videos = append(videos, all[i])
		}
	}
	return videos, nil
}
