package reservation

import (
	"context"
	"fmt"
	"time"

	"id-reserve/core/rangeset"
	"id-reserve/feature/reservation/models"

	"gorm.io/gorm"
)

// Store persists reservation rows and labels.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store backed by the given database.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// overlapping constrains q to rows of typeCode intersecting
// [start, start+length).
func overlapping(q *gorm.DB, typeCode, start, length int32) *gorm.DB {
	return q.Where("reservation_type = ?", typeCode).
		Where("range_start + `length` > ? AND range_start < ?", start, start+length)
}

// OverlappingRows returns every row of typeCode, any owner, intersecting
// [start, start+length).
func (s *Store) OverlappingRows(ctx context.Context, typeCode, start, length int32) ([]models.Row, error) {
	var rows []models.Row
	err := overlapping(s.db.WithContext(ctx), typeCode, start, length).
		Order("range_start").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("loading overlapping reservations: %w", err)
	}
	return rows, nil
}

// UserRows returns every row of typeCode held by userID.
func (s *Store) UserRows(ctx context.Context, typeCode int32, userID int64) ([]models.Row, error) {
	var rows []models.Row
	err := s.db.WithContext(ctx).
		Where("reservation_type = ? AND user_id = ?", typeCode, userID).
		Order("range_start").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("loading reservations of user %d: %w", userID, err)
	}
	return rows, nil
}

// AllRows returns every row of typeCode.
func (s *Store) AllRows(ctx context.Context, typeCode int32) ([]models.Row, error) {
	var rows []models.Row
	err := s.db.WithContext(ctx).
		Where("reservation_type = ?", typeCode).
		Order("range_start").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("loading reservations of type %d: %w", typeCode, err)
	}
	return rows, nil
}

// HolderIDs returns every distinct user holding at least one row of
// typeCode.
func (s *Store) HolderIDs(ctx context.Context, typeCode int32) ([]int64, error) {
	var users []int64
	err := s.db.WithContext(ctx).
		Model(&models.Row{}).
		Where("reservation_type = ?", typeCode).
		Distinct().
		Order("user_id").
		Pluck("user_id", &users).Error
	if err != nil {
		return nil, fmt.Errorf("loading reservation holders: %w", err)
	}
	return users, nil
}

// InsertRows persists the given rows.
func (s *Store) InsertRows(ctx context.Context, rows []models.Row) error {
	if len(rows) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return fmt.Errorf("inserting reservations: %w", err)
	}
	return nil
}

// ReplaceOverlapping atomically deletes userID's rows of typeCode that
// intersect [start, start+length) and inserts newRows in their place.
func (s *Store) ReplaceOverlapping(ctx context.Context, typeCode int32, userID int64, start, length int32, newRows []models.Row) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := overlapping(tx.Where("user_id = ?", userID), typeCode, start, length).
			Delete(&models.Row{}).Error
		if err != nil {
			return err
		}
		if len(newRows) == 0 {
			return nil
		}
		return tx.Create(&newRows).Error
	})
	if err != nil {
		return fmt.Errorf("replacing overlapping reservations: %w", err)
	}
	return nil
}

// ReplaceUserRows atomically deletes every row of typeCode held by
// userID and inserts newRows in their place.
func (s *Store) ReplaceUserRows(ctx context.Context, typeCode int32, userID int64, newRows []models.Row) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("reservation_type = ? AND user_id = ?", typeCode, userID).
			Delete(&models.Row{}).Error
		if err != nil {
			return err
		}
		if len(newRows) == 0 {
			return nil
		}
		return tx.Create(&newRows).Error
	})
	if err != nil {
		return fmt.Errorf("replacing reservations of user %d: %w", userID, err)
	}
	return nil
}

// CoveringRowExists reports whether userID holds a row of typeCode
// covering id.
func (s *Store) CoveringRowExists(ctx context.Context, typeCode int32, userID int64, id int32) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Row{}).
		Where("reservation_type = ? AND user_id = ?", typeCode, userID).
		Where("range_start <= ? AND range_start + `length` > ?", id, id).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("checking covering reservation: %w", err)
	}
	return count > 0, nil
}

// DeleteLabels removes userID's labels of typeCode on the given IDs.
func (s *Store) DeleteLabels(ctx context.Context, typeCode int32, userID int64, ids []int32) error {
	if len(ids) == 0 {
		return nil
	}
	err := s.db.WithContext(ctx).
		Where("reservation_type = ? AND user_id = ? AND content_id IN ?", typeCode, userID, ids).
		Delete(&models.Label{}).Error
	if err != nil {
		return fmt.Errorf("deleting labels: %w", err)
	}
	return nil
}

// UpsertLabel sets the label text of (user, type, id), inserting the row
// when absent.
func (s *Store) UpsertLabel(ctx context.Context, label models.Label) error {
	res := s.db.WithContext(ctx).
		Model(&models.Label{}).
		Where("reservation_type = ? AND user_id = ? AND content_id = ?",
			label.ReservationType, label.UserID, label.ContentID).
		Update("label", label.Label)
	if res.Error != nil {
		return fmt.Errorf("updating label: %w", res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Create(&label).Error; err != nil {
		return fmt.Errorf("inserting label: %w", err)
	}
	return nil
}

// LabelsOf returns every label of typeCode, keyed by content ID per user.
func (s *Store) LabelsOf(ctx context.Context, typeCode int32) ([]models.Label, error) {
	var labels []models.Label
	err := s.db.WithContext(ctx).
		Where("reservation_type = ?", typeCode).
		Find(&labels).Error
	if err != nil {
		return nil, fmt.Errorf("loading labels of type %d: %w", typeCode, err)
	}
	return labels, nil
}

// rowsFromRuns converts merged runs back into persistable rows.
func rowsFromRuns(runs []rangeset.Run, typeCode int32, userID int64) []models.Row {
	rows := make([]models.Row, 0, len(runs))
	for _, run := range runs {
		if run.Length <= 0 {
			continue
		}
		rows = append(rows, models.Row{
			UserID:          userID,
			ReservationType: typeCode,
			RangeStart:      run.Start,
			Length:          run.Length,
			CreatedAt:       run.Time,
		})
	}
	return rows
}

// heldIDs expands rows into an id to creation-time map.
func heldIDs(rows []models.Row) map[int32]time.Time {
	ids := make(map[int32]time.Time)
	for _, row := range rows {
		for id := row.RangeStart; id < row.End(); id++ {
			ids[id] = row.CreatedAt
		}
	}
	return ids
}
