// Package elasticsearch 维护视频搜索索引。ES 不可用时搜索由存储层扫描兜底，
// 因此所有入口都先检查客户端是否初始化。
package elasticsearch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"fanhub-go/internal/config"
	"fanhub-go/pkg/logger"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"go.uber.org/zap"
)

const pingTimeout = 5 * time.Second

var (
	client *elasticsearch.Client

	errNotInitialized = errors.New("elasticsearch client not initialized")
)

// Init 初始化 Elasticsearch 客户端并确认集群可达
func Init(cfg *config.ElasticsearchConfig) error {
	hosts := make([]string, 0, len(cfg.Hosts))
	for _, h := range cfg.Hosts {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		if !strings.HasPrefix(h, "http") {
			h = "http://" + h
		}
		hosts = append(hosts, h)
	}
	if len(hosts) == 0 {
		return errors.New("elasticsearch hosts is empty")
	}

	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses:     hosts,
		RetryOnStatus: []int{502, 503, 504},
		MaxRetries:    3,
		RetryBackoff:  func(i int) time.Duration { return time.Duration(i) * time.Second },
	})
	if err != nil {
		return fmt.Errorf("create elasticsearch client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	resp, err := es.Ping(es.Ping.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("ping elasticsearch: %w", err)
	}
	defer resp.Body.Close()
	if resp.IsError() {
		return fmt.Errorf("elasticsearch ping failed: %s", resp.String())
	}

	client = es
	logger.Info("Elasticsearch connected", zap.Strings("hosts", hosts))
	return nil
}

// Enabled 客户端是否已初始化（未配置 ES 时搜索走存储层回退）
func Enabled() bool {
	return client != nil
}

// Search 在指定索引上执行搜索，body 为查询 DSL
func Search(ctx context.Context, index string, body io.Reader) (*esapi.Response, error) {
	if client == nil {
		return nil, errNotInitialized
	}
	return client.Search(
		client.Search.WithContext(ctx),
		client.Search.WithIndex(index),
		client.Search.WithBody(body),
	)
}

// Index 按文档ID写入（覆盖）单个文档
func Index(ctx context.Context, index string, id int64, body io.Reader) (*esapi.Response, error) {
	if client == nil {
		return nil, errNotInitialized
	}
	return client.Index(
		index,
		body,
		client.Index.WithContext(ctx),
		client.Index.WithDocumentID(strconv.FormatInt(id, 10)),
	)
}

// Delete 删除单个文档
func Delete(ctx context.Context, index string, id int64) (*esapi.Response, error) {
	if client == nil {
		return nil, errNotInitialized
	}
	return client.Delete(
		index,
		strconv.FormatInt(id, 10),
		client.Delete.WithContext(ctx),
	)
}

// Bulk 批量写入
func Bulk(ctx context.Context, body io.Reader) (*esapi.Response, error) {
	if client == nil {
		return nil, errNotInitialized
	}
	return client.Bulk(
		body,
		client.Bulk.WithContext(ctx),
	)
}

// IndicesCreate 创建索引
func IndicesCreate(ctx context.Context, index string, body io.Reader) (*esapi.Response, error) {
	if client == nil {
		return nil, errNotInitialized
	}
	return client.Indices.Create(
		index,
		client.Indices.Create.WithContext(ctx),
		client.Indices.Create.WithBody(body),
	)
}

// IndicesExists 检查索引是否存在
func IndicesExists(ctx context.Context, index string) (bool, error) {
	if client == nil {
		return false, errNotInitialized
	}
	resp, err := client.Indices.Exists(
		[]string{index},
		client.Indices.Exists.WithContext(ctx),
	)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	return resp.StatusCode == 200, nil
}

// Close 释放客户端
func Close() error {
	client = nil
	return nil
}
