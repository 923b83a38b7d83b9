package catalog

import (
	"context"
	"fmt"

	"id-reserve/feature/catalog/models"

	"gorm.io/gorm"
)

// SQLIndex implements Index over the content_entries table.
type SQLIndex struct {
	db *gorm.DB
}

// NewSQLIndex creates an index backed by the given database.
func NewSQLIndex(db *gorm.DB) *SQLIndex {
	return &SQLIndex{db: db}
}

func applyFilter(q *gorm.DB, ns Namespace, f Filter) *gorm.DB {
	q = q.Where("namespace = ?", string(ns))
	if len(f.IDs) > 0 {
		q = q.Where("content_id IN ?", f.IDs)
	}
	if len(f.PostIDs) > 0 {
		q = q.Where("post_id IN ?", f.PostIDs)
	}
	if f.Character != nil {
		q = q.Where("chara = ?", int32(*f.Character))
	}
	return q
}

// Query returns published entries of ns matching f, ordered by content ID.
func (i *SQLIndex) Query(ctx context.Context, ns Namespace, f Filter, limit int) ([]Hit, error) {
	q := applyFilter(i.db.WithContext(ctx).Model(&models.ContentEntry{}), ns, f).
		Order("content_id")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var entries []models.ContentEntry
	if err := q.Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("querying %s index: %w", ns, err)
	}

	hits := make([]Hit, 0, len(entries))
	for _, e := range entries {
		hits = append(hits, Hit{
			ID:        e.ContentID,
			PostID:    e.PostID,
			Character: Character(e.Chara),
		})
	}
	return hits, nil
}

// DeleteWhere removes entries of ns matching f.
func (i *SQLIndex) DeleteWhere(ctx context.Context, ns Namespace, f Filter) error {
	q := applyFilter(i.db.WithContext(ctx), ns, f)
	if err := q.Delete(&models.ContentEntry{}).Error; err != nil {
		return fmt.Errorf("deleting from %s index: %w", ns, err)
	}
	return nil
}
