package memory

import (
	"context"
	"sort"
	"time"

	"fanhub-go/internal/model"
	"fanhub-go/internal/storage"
)

func (s *Store) ListVideos(_ context.Context) ([]model.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	videos := make([]model.Video, 0, len(s.videos))
	for _, v := range s.videos {
		videos = append(videos, *v)
	}
	sort.Slice(videos, func(i, j int) bool { return videos[i].ID < videos[j].ID })
	return videos, nil
}

func (s *Store) ListVideosByCategory(_ context.Context, category string) ([]model.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	videos := make([]model.Video, 0)
	for _, v := range s.videos {
		if v.Category == category {
			videos = append(videos, *v)
		}
	}
	sort.Slice(videos, func(i, j int) bool { return videos[i].ID < videos[j].ID })
	return videos, nil
}

func (s *Store) GetVideo(_ context.Context, id int64) (*model.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	video, ok := s.videos[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	v := *video
	return &v, nil
}

func (s *Store) CreateVideo(_ context.Context, video *model.Video) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// 新视频带推荐标识时先清除其他视频的推荐标识
	if video.IsFeatured {
		s.clearFeaturedLocked()
	}

	s.videoSeq++
	video.ID = s.videoSeq
	video.CreatedAt = time.Now()
	if video.Category == "" {
		video.Category = "general"
	}

	v := *video
	s.videos[video.ID] = &v
	return nil
}

func (s *Store) UpdateVideo(_ context.Context, id int64, patch *storage.VideoUpdate) (*model.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	video, ok := s.videos[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	if patch.IsFeatured != nil && *patch.IsFeatured {
		s.clearFeaturedLocked()
	}

	if patch.YoutubeID != nil {
		video.YoutubeID = *patch.YoutubeID
	}
	if patch.Title != nil {
		video.Title = *patch.Title
	}
	if patch.Description != nil {
		video.Description = patch.Description
	}
	if patch.ThumbnailURL != nil {
		video.ThumbnailURL = patch.ThumbnailURL
	}
	if patch.Duration != nil {
		video.Duration = patch.Duration
	}
	if patch.ViewCount != nil {
		video.ViewCount = patch.ViewCount
	}
	if patch.UploadDate != nil {
		video.UploadDate = patch.UploadDate
	}
	if patch.Category != nil {
		video.Category = *patch.Category
	}
	if patch.IsFeatured != nil {
		video.IsFeatured = *patch.IsFeatured
	}

	v := *video
	return &v, nil
}

func (s *Store) DeleteVideo(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.videos[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.videos, id)
	return nil
}

func (s *Store) GetFeaturedVideo(_ context.Context) (*model.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, video := range s.videos {
		if video.IsFeatured {
			v := *video
			return &v, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *Store) SetFeaturedVideo(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	target, ok := s.videos[id]
	if !ok {
		return storage.ErrNotFound
	}

	s.clearFeaturedLocked()
	target.IsFeatured = true
	return nil
}

// clearFeaturedLocked 清除所有视频的推荐标识，调用方需持写锁
func (s *Store) clearFeaturedLocked() {
	for _, video := range s.videos {
		video.IsFeatured = false
	}
}
