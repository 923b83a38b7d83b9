package reservation

import (
	"context"

	"id-reserve/core/rangeset"
)

// baseQuota is the number of IDs every user may hold per type with no
// published content.
const baseQuota = 50

// MaxReservations returns how many additional IDs of rt the user may
// reserve. Every user gets a floor of 50, plus a bonus of half their
// published ID count rounded up to a multiple of 10, minus the IDs they
// currently hold that have not shipped yet.
func (s *Service) MaxReservations(ctx context.Context, rt Type, userID int64) (int, error) {
	published, err := s.resolver.PublishedIDs(ctx, rt.Namespace(), rt.CharacterFilter(), userID)
	if err != nil {
		return 0, err
	}

	rows, err := s.store.UserRows(ctx, rt.Code(), userID)
	if err != nil {
		return 0, err
	}

	active := 0
	for id := range heldIDs(rows) {
		if _, ok := published[id]; !ok {
			active++
		}
	}

	bonus := int(rangeset.RoundUp(int32(len(published)/2), 10))
	quota := baseQuota + bonus - active
	if quota < 0 {
		quota = 0
	}
	return quota, nil
}
