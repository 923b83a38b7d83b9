package catalog

import (
	"context"
	"fmt"

	"id-reserve/feature/catalog/models"

	"gorm.io/gorm"
)

// SQLRegistry implements Registry over the post_authors table.
type SQLRegistry struct {
	db *gorm.DB
}

// NewSQLRegistry creates a registry backed by the given database.
func NewSQLRegistry(db *gorm.DB) *SQLRegistry {
	return &SQLRegistry{db: db}
}

// AuthorsOf returns the set of user IDs credited on the post. A post with
// no author rows yields an empty set.
func (r *SQLRegistry) AuthorsOf(ctx context.Context, postID int32) (map[int64]struct{}, error) {
	var rows []models.PostAuthor
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("loading authors of post %d: %w", postID, err)
	}

	authors := make(map[int64]struct{}, len(rows))
	for _, row := range rows {
		authors[row.UserID] = struct{}{}
	}
	return authors, nil
}

// PostsOf returns every post the user authors.
func (r *SQLRegistry) PostsOf(ctx context.Context, userID int64) ([]int32, error) {
	var rows []models.PostAuthor
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("post_id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("loading posts of user %d: %w", userID, err)
	}

	posts := make([]int32, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, row.PostID)
	}
	return posts, nil
}
