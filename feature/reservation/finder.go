package reservation

import (
	"context"
	"sort"

	"id-reserve/core/rangeset"
)

// NoRange is returned by FindReservableRange when the request itself is
// unservable (degenerate length or over quota).
const NoRange int32 = -1

// FindReservableRange returns the lowest aligned start where userID
// could reserve length IDs of rt without conflicting with published
// content or any existing reservation. First fit keeps allocation order
// predictable and IDs low.
func (s *Service) FindReservableRange(ctx context.Context, rt Type, length int32, userID int64) (int32, error) {
	if length < 1 {
		return NoRange, nil
	}
	max, err := s.MaxReservations(ctx, rt, userID)
	if err != nil {
		return 0, err
	}
	if int(length) > max {
		return NoRange, nil
	}

	occupied := make(map[int32]struct{})
	published, err := s.resolver.NamespaceOwners(ctx, rt.Namespace(), rt.CharacterFilter())
	if err != nil {
		return 0, err
	}
	for id := range published {
		occupied[id] = struct{}{}
	}
	rows, err := s.store.AllRows(ctx, rt.Code())
	if err != nil {
		return 0, err
	}
	for _, row := range rows {
		for id := row.RangeStart; id < row.End(); id++ {
			occupied[id] = struct{}{}
		}
	}

	align := rangeset.Alignment(length)
	if len(occupied) == 0 {
		return rangeset.RoundUp(1, align), nil
	}

	ids := make([]int32, 0, len(occupied))
	for id := range occupied {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for i := 0; i+1 < len(ids); i++ {
		candidate := rangeset.RoundUp(ids[i]+1, align)
		if candidate+length <= ids[i+1] {
			return candidate, nil
		}
	}
	return rangeset.RoundUp(ids[len(ids)-1]+1, align), nil
}
