package firestore

import (
	"context"
	"time"

	"fanhub-go/internal/model"
	"fanhub-go/internal/storage"
	"fanhub-go/pkg/logger"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
)

func (s *Store) ListVideos(ctx context.Context) ([]model.Video, error) {
	return s.collectVideos(s.client.Collection(colVideos).Documents(ctx))
}

func (s *Store) ListVideosByCategory(ctx context.Context, category string) ([]model.Video, error) {
	iter := s.client.Collection(colVideos).Where("category", "==", category).Documents(ctx)
	return s.collectVideos(iter)
}

func (s *Store) GetVideo(ctx context.Context, id int64) (*model.Video, error) {
	doc, err := s.client.Collection(colVideos).Doc(docID(id)).Get(ctx)
	if err != nil {
		return nil, wrapNotFound(err)
	}

	var video model.Video
	if err := doc.DataTo(&video); err != nil {
		return nil, err
	}
	return &video, nil
}

func (s *Store) CreateVideo(ctx context.Context, video *model.Video) error {
	if video.IsFeatured {
		if err := s.clearFeatured(ctx, 0); err != nil {
			return err
		}
	}

	id, err := s.nextID(ctx, colVideos)
	if err != nil {
		return err
	}

	video.ID = id
	video.CreatedAt = time.Now()
	if video.Category == "" {
		video.Category = "general"
	}

	_, err = s.client.Collection(colVideos).Doc(docID(id)).Set(ctx, video)
	return err
}

func (s *Store) UpdateVideo(ctx context.Context, id int64, patch *storage.VideoUpdate) (*model.Video, error) {
	ref := s.client.Collection(colVideos).Doc(docID(id))

	if _, err := ref.Get(ctx); err != nil {
		return nil, wrapNotFound(err)
	}

	if patch.IsFeatured != nil && *patch.IsFeatured {
		if err := s.clearFeatured(ctx, id); err != nil {
			return nil, err
		}
	}

	updates := videoUpdates(patch)
	if len(updates) > 0 {
		if _, err := ref.Update(ctx, updates); err != nil {
			return nil, wrapNotFound(err)
		}
	}

	return s.GetVideo(ctx, id)
}

func (s *Store) DeleteVideo(ctx context.Context, id int64) error {
	ref := s.client.Collection(colVideos).Doc(docID(id))
	if _, err := ref.Get(ctx); err != nil {
		return wrapNotFound(err)
	}
	_, err := ref.Delete(ctx)
	return err
}

func (s *Store) GetFeaturedVideo(ctx context.Context) (*model.Video, error) {
	iter := s.client.Collection(colVideos).
		Where("isFeatured", "==", true).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var video model.Video
	if err := doc.DataTo(&video); err != nil {
		return nil, err
	}
	return &video, nil
}

func (s *Store) SetFeaturedVideo(ctx context.Context, id int64) error {
	ref := s.client.Collection(colVideos).Doc(docID(id))
	if _, err := ref.Get(ctx); err != nil {
		return wrapNotFound(err)
	}

	if err := s.clearFeatured(ctx, id); err != nil {
		return err
	}

	_, err := ref.Update(ctx, []firestore.Update{{Path: "isFeatured", Value: true}})
	return wrapNotFound(err)
}

// clearFeatured 清除除 keep 之外所有视频的推荐标识。
// 逐文档写入，无事务保护：并发写入下可能短暂观察到两个推荐视频
func (s *Store) clearFeatured(ctx context.Context, keep int64) error {
	iter := s.client.Collection(colVideos).Where("isFeatured", "==", true).Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return err
		}
		if keep != 0 && doc.Ref.ID == docID(keep) {
			continue
		}
		if _, err := doc.Ref.Update(ctx, []firestore.Update{{Path: "isFeatured", Value: false}}); err != nil {
			logger.Error("Failed to clear featured flag",
				zap.String("doc", doc.Ref.ID), zap.Error(err))
			return err
		}
	}
}

func (s *Store) collectVideos(iter *firestore.DocumentIterator) ([]model.Video, error) {
	defer iter.Stop()

	videos := make([]model.Video, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			return videos, nil
		}
		if err != nil {
			return nil, err
		}

		var video model.Video
		if err := doc.DataTo(&video); err != nil {
			return nil, err
		}
		videos = append(videos, video)
	}
}

func videoUpdates(patch *storage.VideoUpdate) []firestore.Update {
	updates := make([]firestore.Update, 0)
	if patch.YoutubeID != nil {
		updates = append(updates, firestore.Update{Path: "youtubeId", Value: *patch.YoutubeID})
	}
	if patch.Title != nil {
		updates = append(updates, firestore.Update{Path: "title", Value: *patch.Title})
	}
	if patch.Description != nil {
		updates = append(updates, firestore.Update{Path: "description", Value: *patch.Description})
	}
	if patch.ThumbnailURL != nil {
		updates = append(updates, firestore.Update{Path: "thumbnailUrl", Value: *patch.ThumbnailURL})
	}
	if patch.Duration != nil {
		updates = append(updates, firestore.Update{Path: "duration", Value: *patch.Duration})
	}
	if patch.ViewCount != nil {
		updates = append(updates, firestore.Update{Path: "viewCount", Value: *patch.ViewCount})
	}
	if patch.UploadDate != nil {
		updates = append(updates, firestore.Update{Path: "uploadDate", Value: *patch.UploadDate})
	}
	if patch.Category != nil {
		updates = append(updates, firestore.Update{Path: "category", Value: *patch.Category})
	}
	if patch.IsFeatured != nil {
		updates = append(updates, firestore.Update{Path: "isFeatured", Value: *patch.IsFeatured})
	}
	return updates
}
