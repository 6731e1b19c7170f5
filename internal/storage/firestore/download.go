package firestore

import (
	"context"
	"time"

	"fanhub-go/internal/model"
	"fanhub-go/internal/storage"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

func (s *Store) ListDownloads(ctx context.Context) ([]model.Download, error) {
	return s.collectDownloads(s.client.Collection(colDownloads).Documents(ctx))
}

func (s *Store) ListDownloadsByType(ctx context.Context, downloadType string) ([]model.Download, error) {
	iter := s.client.Collection(colDownloads).Where("type", "==", downloadType).Documents(ctx)
	return s.collectDownloads(iter)
}

func (s *Store) GetDownload(ctx context.Context, id int64) (*model.Download, error) {
	doc, err := s.client.Collection(colDownloads).Doc(docID(id)).Get(ctx)
	if err != nil {
		return nil, wrapNotFound(err)
	}

	var download model.Download
	if err := doc.DataTo(&download); err != nil {
		return nil, err
	}
	return &download, nil
}

func (s *Store) CreateDownload(ctx context.Context, download *model.Download) error {
	id, err := s.nextID(ctx, colDownloads)
	if err != nil {
		return err
	}

	download.ID = id
	download.DownloadCount = 0
	download.Rating = 0
	download.RatingCount = 0
	download.CreatedAt = time.Now()
	if download.ReleaseDate.IsZero() {
		download.ReleaseDate = time.Now()
	}

	_, err = s.client.Collection(colDownloads).Doc(docID(id)).Set(ctx, download)
	return err
}

func (s *Store) UpdateDownload(ctx context.Context, id int64, patch *storage.DownloadUpdate) (*model.Download, error) {
	ref := s.client.Collection(colDownloads).Doc(docID(id))

	if _, err := ref.Get(ctx); err != nil {
		return nil, wrapNotFound(err)
	}

	updates := downloadUpdates(patch)
	if len(updates) > 0 {
		if _, err := ref.Update(ctx, updates); err != nil {
			return nil, wrapNotFound(err)
		}
	}

	return s.GetDownload(ctx, id)
}

func (s *Store) DeleteDownload(ctx context.Context, id int64) error {
	ref := s.client.Collection(colDownloads).Doc(docID(id))
	if _, err := ref.Get(ctx); err != nil {
		return wrapNotFound(err)
	}
	_, err := ref.Delete(ctx)
	return err
}

// IncrementDownloadCount 在事务内读取-自增-写回，返回新计数
func (s *Store) IncrementDownloadCount(ctx context.Context, id int64) (int, error) {
	ref := s.client.Collection(colDownloads).Doc(docID(id))

	var newCount int
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			return err
		}

		current, err := doc.DataAt("downloadCount")
		if err != nil {
			return err
		}

		count, _ := current.(int64)
		newCount = int(count) + 1

		return tx.Update(ref, []firestore.Update{{Path: "downloadCount", Value: newCount}})
	})
	if err != nil {
		return 0, wrapNotFound(err)
	}
	return newCount, nil
}

func (s *Store) collectDownloads(iter *firestore.DocumentIterator) ([]model.Download, error) {
	defer iter.Stop()

	downloads := make([]model.Download, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			return downloads, nil
		}
		if err != nil {
			return nil, err
		}

		var download model.Download
		if err := doc.DataTo(&download); err != nil {
			return nil, err
		}
		downloads = append(downloads, download)
	}
}

func downloadUpdates(patch *storage.DownloadUpdate) []firestore.Update {
	updates := make([]firestore.Update, 0)
	if patch.Title != nil {
		updates = append(updates, firestore.Update{Path: "title", Value: *patch.Title})
	}
	if patch.Description != nil {
		updates = append(updates, firestore.Update{Path: "description", Value: *patch.Description})
	}
	if patch.Type != nil {
		updates = append(updates, firestore.Update{Path: "type", Value: *patch.Type})
	}
	if patch.Version != nil {
		updates = append(updates, firestore.Update{Path: "version", Value: *patch.Version})
	}
	if patch.DownloadURL != nil {
		updates = append(updates, firestore.Update{Path: "downloadUrl", Value: *patch.DownloadURL})
	}
	if patch.ThumbnailURL != nil {
		updates = append(updates, firestore.Update{Path: "thumbnailUrl", Value: *patch.ThumbnailURL})
	}
	if patch.Rating != nil {
		updates = append(updates, firestore.Update{Path: "rating", Value: *patch.Rating})
	}
	if patch.RatingCount != nil {
		updates = append(updates, firestore.Update{Path: "ratingCount", Value: *patch.RatingCount})
	}
	if patch.ReleaseDate != nil {
		updates = append(updates, firestore.Update{Path: "releaseDate", Value: *patch.ReleaseDate})
	}
	return updates
}
