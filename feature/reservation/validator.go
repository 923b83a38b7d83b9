package reservation

import (
	"context"
	"math"
	"sort"

	"id-reserve/core/rangeset"
	"id-reserve/feature/catalog"
)

// CheckReserveRange classifies the request to reserve
// [start, start+length) of rt for userID. It is a pure decision: no
// writes happen here.
//
// Any ID in the range that is published unclaimed, published under
// someone else's post, or reserved by another user fails the whole
// request. Only the requester's own prior claims accumulate into a
// partial grant.
func (s *Service) CheckReserveRange(ctx context.Context, rt Type, start, length int32, userID int64) (Decision, error) {
	if start < 1 || length < 1 || start > math.MaxInt32-length {
		return Decision{Kind: DecisionInvalid}, nil
	}

	max, err := s.MaxReservations(ctx, rt, userID)
	if err != nil {
		return Decision{}, err
	}
	if int(length) > max {
		return Decision{Kind: DecisionInvalidLength, MaxLength: max}, nil
	}

	align := rangeset.Alignment(length)
	if start%align != 0 {
		return Decision{Kind: DecisionInvalidAlignment, Alignment: align}, nil
	}

	partial := make(map[int32]struct{})

	owners, err := s.resolver.ResolveOwners(ctx, rt.Namespace(), rt.CharacterFilter(), start, length)
	if err != nil {
		return Decision{}, err
	}
	authorCache := make(map[int32]map[int64]struct{})
	for id, post := range owners {
		if post == catalog.UnclaimedPost {
			return Decision{Kind: DecisionInvalid}, nil
		}
		authors, ok := authorCache[post]
		if !ok {
			authors, err = s.resolver.AuthorsOf(ctx, post)
			if err != nil {
				return Decision{}, err
			}
			authorCache[post] = authors
		}
		// A post with no known authors is owned by nobody, which
		// includes the requester.
		if _, mine := authors[userID]; !mine {
			return Decision{Kind: DecisionInvalid}, nil
		}
		partial[id] = struct{}{}
	}

	rows, err := s.store.OverlappingRows(ctx, rt.Code(), start, length)
	if err != nil {
		return Decision{}, err
	}
	for _, row := range rows {
		if row.UserID != userID {
			return Decision{Kind: DecisionInvalid}, nil
		}
		lo, hi := row.RangeStart, row.End()
		if lo < start {
			lo = start
		}
		if hi > start+length {
			hi = start + length
		}
		for id := lo; id < hi; id++ {
			partial[id] = struct{}{}
		}
	}

	if len(partial) == int(length) {
		// Everything in range is already the requester's; nothing to grant.
		return Decision{Kind: DecisionInvalid}, nil
	}
	if len(partial) > 0 {
		ids := make([]int32, 0, len(partial))
		for id := range partial {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		return Decision{Kind: DecisionPartial, PartialIDs: ids}, nil
	}
	return Decision{Kind: DecisionValid}, nil
}
