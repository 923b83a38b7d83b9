package reservation

import (
	"context"
	"errors"
	"fmt"

	"id-reserve/core/rangeset"

	"go.uber.org/zap"
)

// CompactType garbage-collects the rt namespace: for every user holding
// rows, IDs that have since been published under the user's own posts
// are dropped and the rest is merged into minimal runs. One user's
// failure does not stop the batch; failures are aggregated.
func (s *Service) CompactType(ctx context.Context, rt Type) error {
	holders, err := s.store.HolderIDs(ctx, rt.Code())
	if err != nil {
		return err
	}

	var errs []error
	for _, userID := range holders {
		if err := s.compactUser(ctx, rt, userID); err != nil {
			s.logger.Warn("compaction skipped for user",
				zap.Int64("user_id", userID),
				zap.String("type", rt.String()),
				zap.Error(err))
			errs = append(errs, fmt.Errorf("user %d: %w", userID, err))
		}
	}
	return errors.Join(errs...)
}

func (s *Service) compactUser(ctx context.Context, rt Type, userID int64) error {
	rows, err := s.store.UserRows(ctx, rt.Code(), userID)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}

	published, err := s.resolver.PublishedIDs(ctx, rt.Namespace(), rt.CharacterFilter(), userID)
	if err != nil {
		return err
	}

	held := heldIDs(rows)
	for id := range published {
		delete(held, id)
	}

	runs := rangeset.Merge(held)
	newRows := rowsFromRuns(runs, rt.Code(), userID)
	if len(newRows) == len(rows) {
		// Compare against the loaded rows; identical row sets skip the
		// rewrite to keep the common no-op case cheap.
		same := true
		for i := range rows {
			if rows[i].RangeStart != newRows[i].RangeStart || rows[i].Length != newRows[i].Length {
				same = false
				break
			}
		}
		if same {
			return nil
		}
	}

	if err := s.store.ReplaceUserRows(ctx, rt.Code(), userID, newRows); err != nil {
		return err
	}
	s.logger.Info("reservations compacted",
		zap.Int64("user_id", userID),
		zap.String("type", rt.String()),
		zap.Int("rows_before", len(rows)),
		zap.Int("rows_after", len(newRows)))
	return nil
}

// CompactAll runs CompactType for every reservation type, aggregating
// failures per type.
func (s *Service) CompactAll(ctx context.Context) error {
	var errs []error
	for _, rt := range AllTypes() {
		if err := s.CompactType(ctx, rt); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", rt, err))
		}
	}
	return errors.Join(errs...)
}
