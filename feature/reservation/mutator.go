package reservation

import (
	"context"
	"time"

	"id-reserve/core/rangeset"
	"id-reserve/feature/reservation/models"

	"go.uber.org/zap"
)

// CreateReservation validates and, when the decision allows, grants
// [start, start+length) of rt to userID. The decision is returned either
// way so callers can report rejections.
//
// A full grant inserts one row spanning the range. A partial grant
// inserts only the IDs the user does not already claim, merged into
// minimal runs, and then triggers compaction: the grant may have made
// other rows of the namespace collapsible.
func (s *Service) CreateReservation(ctx context.Context, userID int64, rt Type, start, length int32) (Decision, error) {
	decision, err := s.CheckReserveRange(ctx, rt, start, length, userID)
	if err != nil {
		return Decision{}, err
	}

	now := time.Now().UTC()
	switch decision.Kind {
	case DecisionValid:
		row := models.Row{
			UserID:          userID,
			ReservationType: rt.Code(),
			RangeStart:      start,
			Length:          length,
			CreatedAt:       now,
		}
		if err := s.store.InsertRows(ctx, []models.Row{row}); err != nil {
			return Decision{}, err
		}
		s.logger.Info("reservation granted",
			zap.Int64("user_id", userID),
			zap.String("type", rt.String()),
			zap.Int32("start", start),
			zap.Int32("length", length))

	case DecisionPartial:
		owned := make(map[int32]struct{}, len(decision.PartialIDs))
		for _, id := range decision.PartialIDs {
			owned[id] = struct{}{}
		}
		var newIDs []int32
		for id := start; id < start+length; id++ {
			if _, ok := owned[id]; !ok {
				newIDs = append(newIDs, id)
			}
		}
		runs := rangeset.MergeAt(newIDs, now)
		if err := s.store.InsertRows(ctx, rowsFromRuns(runs, rt.Code(), userID)); err != nil {
			return Decision{}, err
		}
		s.logger.Info("partial reservation granted",
			zap.Int64("user_id", userID),
			zap.String("type", rt.String()),
			zap.Int32("start", start),
			zap.Int32("length", length),
			zap.Int("already_owned", len(decision.PartialIDs)))
		s.triggerCompaction(ctx, rt)
	}
	return decision, nil
}

// DeleteReservation releases [start, start+length) of rt held by userID.
// Labels on the released IDs are removed. The requested IDs must all be
// held: releasing IDs the user does not hold is rejected with ErrNotHeld
// and nothing is released. Releasing the middle of a row splits it into
// two independent rows.
func (s *Service) DeleteReservation(ctx context.Context, userID int64, rt Type, start, length int32) error {
	if start < 1 || length < 1 {
		return ErrInvalidRange
	}

	requested := make([]int32, 0, length)
	for id := start; id < start+length; id++ {
		requested = append(requested, id)
	}
	if err := s.store.DeleteLabels(ctx, rt.Code(), userID, requested); err != nil {
		return err
	}

	rows, err := s.store.OverlappingRows(ctx, rt.Code(), start, length)
	if err != nil {
		return err
	}
	var mine []models.Row
	for _, row := range rows {
		if row.UserID == userID {
			mine = append(mine, row)
		}
	}

	held := heldIDs(mine)
	for _, id := range requested {
		if _, ok := held[id]; !ok {
			return ErrNotHeld
		}
	}
	for _, id := range requested {
		delete(held, id)
	}

	runs := rangeset.Merge(held)
	if err := s.store.ReplaceOverlapping(ctx, rt.Code(), userID, start, length, rowsFromRuns(runs, rt.Code(), userID)); err != nil {
		return err
	}
	s.logger.Info("reservation released",
		zap.Int64("user_id", userID),
		zap.String("type", rt.String()),
		zap.Int32("start", start),
		zap.Int32("length", length))
	return nil
}

// LabelReservation annotates one reserved ID with free text. The ID must
// be covered by an active row of (userID, rt).
func (s *Service) LabelReservation(ctx context.Context, userID int64, rt Type, id int32, text string) error {
	covered, err := s.store.CoveringRowExists(ctx, rt.Code(), userID, id)
	if err != nil {
		return err
	}
	if !covered {
		return ErrNoReservation
	}
	return s.store.UpsertLabel(ctx, models.Label{
		UserID:          userID,
		ReservationType: rt.Code(),
		ContentID:       id,
		Label:           text,
	})
}
