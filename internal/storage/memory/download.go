package memory

import (
	"context"
	"sort"
	"time"

	"fanhub-go/internal/model"
	"fanhub-go/internal/storage"
)

func (s *Store) ListDownloads(_ context.Context) ([]model.Download, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	downloads := make([]model.Download, 0, len(s.downloads))
	for _, d := range s.downloads {
		downloads = append(downloads, *d)
	}
	sort.Slice(downloads, func(i, j int) bool { return downloads[i].ID < downloads[j].ID })
	return downloads, nil
}

func (s *Store) ListDownloadsByType(_ context.Context, downloadType string) ([]model.Download, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	downloads := make([]model.Download, 0)
	for _, d := range s.downloads {
		if d.Type == downloadType {
			downloads = append(downloads, *d)
		}
	}
	sort.Slice(downloads, func(i, j int) bool { return downloads[i].ID < downloads[j].ID })
	return downloads, nil
}

func (s *Store) GetDownload(_ context.Context, id int64) (*model.Download, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	download, ok := s.downloads[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	d := *download
	return &d, nil
}

func (s *Store) CreateDownload(_ context.Context, download *model.Download) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.downloadSeq++
	download.ID = s.downloadSeq
	download.DownloadCount = 0
	download.Rating = 0
	download.RatingCount = 0
	download.CreatedAt = time.Now()
	if download.ReleaseDate.IsZero() {
		download.ReleaseDate = time.Now()
	}

	d := *download
	s.downloads[download.ID] = &d
	return nil
}

func (s *Store) UpdateDownload(_ context.Context, id int64, patch *storage.DownloadUpdate) (*model.Download, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	download, ok := s.downloads[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	if patch.Title != nil {
		download.Title = *patch.Title
	}
	if patch.Description != nil {
		download.Description = patch.Description
	}
	if patch.Type != nil {
		download.Type = *patch.Type
	}
	if patch.Version != nil {
		download.Version = *patch.Version
	}
	if patch.DownloadURL != nil {
		download.DownloadURL = *patch.DownloadURL
	}
	if patch.ThumbnailURL != nil {
		download.ThumbnailURL = patch.ThumbnailURL
	}
	if patch.Rating != nil {
		download.Rating = *patch.Rating
	}
	if patch.RatingCount != nil {
		download.RatingCount = *patch.RatingCount
	}
	if patch.ReleaseDate != nil {
		download.ReleaseDate = *patch.ReleaseDate
	}

	d := *download
	return &d, nil
}

func (s *Store) DeleteDownload(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.downloads[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.downloads, id)
	return nil
}

func (s *Store) IncrementDownloadCount(_ context.Context, id int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	download, ok := s.downloads[id]
	if !ok {
		return 0, storage.ErrNotFound
	}
	download.DownloadCount++
	return download.DownloadCount, nil
}
