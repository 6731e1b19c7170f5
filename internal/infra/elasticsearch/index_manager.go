package elasticsearch

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"fanhub-go/internal/config"
	"fanhub-go/pkg/logger"

	"go.uber.org/zap"
)

// VideoIndexName 返回视频索引名称
func VideoIndexName() string {
	cfg := config.GetElasticsearch()
	if name := cfg.Index["video"]; name != "" {
		return name
	}
	return "videos"
}

// GetVideoIndexMapping 返回视频索引的 mapping（含 IK 中文分词）
func GetVideoIndexMapping() string {
	return `{
		"settings": {
			"number_of_shards": 1,
			"number_of_replicas": 0,
			"analysis": {
				"analyzer": {
					"ik_max_word_analyzer": {
						"type": "custom",
						"tokenizer": "ik_max_word",
						"filter": ["lowercase"]
					},
					"ik_smart_analyzer": {
						"type": "custom",
						"tokenizer": "ik_smart",
						"filter": ["lowercase"]
					}
				}
			}
		},
		"mappings": {
			"properties": {
				"id": {"type": "long"},
				"youtube_id": {"type": "keyword"},
				"title": {
					"type": "text",
					"analyzer": "ik_max_word",
					"search_analyzer": "ik_smart",
					"fields": {"keyword": {"type": "keyword", "ignore_above": 200}}
				},
				"description": {
					"type": "text",
					"analyzer": "ik_max_word",
					"search_analyzer": "ik_smart"
				},
				"category": {"type": "keyword"},
				"is_featured": {"type": "boolean"},
				"view_count": {"type": "long"},
				"upload_date": {"type": "date", "format": "strict_date_optional_time||epoch_millis"},
				"created_at": {"type": "date", "format": "strict_date_optional_time||epoch_millis"}
			}
		}
	}`
}

// EnsureVideoIndex 确保视频索引存在，不存在则创建
func EnsureVideoIndex(ctx context.Context) error {
	indexName := VideoIndexName()

	exists, err := IndicesExists(ctx, indexName)
	if err != nil {
		return fmt.Errorf("check index exists: %w", err)
	}
	if exists {
		logger.Info("Elasticsearch video index already exists", zap.String("index", indexName))
		return nil
	}

	body := bytes.NewReader([]byte(GetVideoIndexMapping()))
	resp, err := IndicesCreate(ctx, indexName, body)
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("create index failed: %s", resp.String())
	}

	logger.Info("Elasticsearch video index created", zap.String("index", indexName))
	return nil
}

// InitIndexes 初始化所有索引（启动时调用）
func InitIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return EnsureVideoIndex(ctx)
}
