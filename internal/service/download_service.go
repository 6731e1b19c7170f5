package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"time"

	"fanhub-go/internal/api/dto"
	infraMinio "fanhub-go/internal/infra/minio"
	"fanhub-go/internal/model"
	"fanhub-go/internal/storage"
	"fanhub-go/pkg/logger"

	"go.uber.org/zap"
)

var (
	ErrDownloadNotFound   = errors.New("下载资源不存在")
	ErrArtifactStorageOff = errors.New("制品存储未启用")
)

const artifactBucket = "artifacts"

type DownloadService struct {
	store storage.Storage
}

func NewDownloadService(store storage.Storage) *DownloadService {
	return &DownloadService{store: store}
}

// List 获取下载资源列表，downloadType 为空时返回全部
func (s *DownloadService) List(ctx context.Context, downloadType string) ([]model.Download, error) {
	if downloadType == "" {
		return s.store.ListDownloads(ctx)
	}
	return s.store.ListDownloadsByType(ctx, downloadType)
}

// Get 获取单个下载资源
func (s *DownloadService) Get(ctx context.Context, id int64) (*model.Download, error) {
	download, err := s.store.GetDownload(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrDownloadNotFound
		}
		return nil, err
	}
	return download, nil
}

// Create 创建下载资源，计数与评分从 0 开始
func (s *DownloadService) Create(ctx context.Context, req *dto.DownloadCreateRequest) (*model.Download, error) {
	download := &model.Download{
		Title:        req.Title,
		Description:  req.Description,
		Type:         req.Type,
		Version:      req.Version,
		DownloadURL:  req.DownloadURL,
		ThumbnailURL: req.ThumbnailURL,
	}
	if req.ReleaseDate != nil {
		download.ReleaseDate = *req.ReleaseDate
	} else {
		download.ReleaseDate = time.Now()
	}

	if err := s.store.CreateDownload(ctx, download); err != nil {
		return nil, err
	}
	return download, nil
}

// Update 部分更新下载资源
func (s *DownloadService) Update(ctx context.Context, id int64, req *dto.DownloadUpdateRequest) (*model.Download, error) {
	patch := &storage.DownloadUpdate{
		Title:        req.Title,
		Description:  req.Description,
		Type:         req.Type,
		Version:      req.Version,
		DownloadURL:  req.DownloadURL,
		ThumbnailURL: req.ThumbnailURL,
		Rating:       req.Rating,
		RatingCount:  req.RatingCount,
		ReleaseDate:  req.ReleaseDate,
	}

	download, err := s.store.UpdateDownload(ctx, id, patch)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrDownloadNotFound
		}
		return nil, err
	}
	return download, nil
}

// Delete 删除下载资源
func (s *DownloadService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteDownload(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrDownloadNotFound
		}
		return err
	}
	return nil
}

// Increment 下载次数 +1，返回新计数
func (s *DownloadService) Increment(ctx context.Context, id int64) (*dto.IncrementData, error) {
	count, err := s.store.IncrementDownloadCount(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrDownloadNotFound
		}
		return nil, err
	}
	return &dto.IncrementData{ID: id, DownloadCount: count}, nil
}

// UploadArtifact 上传资源制品到 MinIO 并把下载地址指向预签名 URL
func (s *DownloadService) UploadArtifact(ctx context.Context, id int64, reader io.Reader, size int64, filename, contentType string) (*dto.ArtifactData, error) {
	if !infraMinio.Enabled() {
		return nil, ErrArtifactStorageOff
	}

	download, err := s.store.GetDownload(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrDownloadNotFound
		}
		return nil, err
	}

	objectName := fmt.Sprintf("%d/%s-%s%s", download.ID, download.Type, download.Version, path.Ext(filename))

	uploadCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	if _, err := infraMinio.UploadFile(uploadCtx, artifactBucket, objectName, reader, size, contentType); err != nil {
		logger.Error("Upload artifact to MinIO failed",
			zap.Int64("download_id", id), zap.Error(err))
		return nil, fmt.Errorf("上传制品失败: %w", err)
	}

	url, err := infraMinio.GetPresignedURL(ctx, artifactBucket, objectName, 7*24*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("生成下载地址失败: %w", err)
	}

	if _, err := s.store.UpdateDownload(ctx, id, &storage.DownloadUpdate{DownloadURL: &url}); err != nil {
		return nil, err
	}

	logger.Info("Artifact uploaded",
		zap.Int64("download_id", id),
		zap.String("object", objectName),
		zap.Int64("size", size),
	)

	return &dto.ArtifactData{ID: id, ObjectName: objectName, DownloadURL: url}, nil
}
