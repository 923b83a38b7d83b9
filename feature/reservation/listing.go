package reservation

import (
	"context"
	"time"
)

// ReservedID describes one currently reserved ID in a listing.
type ReservedID struct {
	User  int64     `json:"user"`
	Time  time.Time `json:"time"`
	Label *string   `json:"label,omitempty"`
}

// Listing is the merged view of one reservation namespace: who holds
// which IDs and which IDs are already published, keyed by content ID.
type Listing struct {
	Reserved  map[int32]ReservedID `json:"reserved"`
	Published map[int32]int32      `json:"published"`
}

// ListType returns the full namespace view for rt.
func (s *Service) ListType(ctx context.Context, rt Type) (Listing, error) {
	rows, err := s.store.AllRows(ctx, rt.Code())
	if err != nil {
		return Listing{}, err
	}
	labels, err := s.store.LabelsOf(ctx, rt.Code())
	if err != nil {
		return Listing{}, err
	}
	published, err := s.resolver.NamespaceOwners(ctx, rt.Namespace(), rt.CharacterFilter())
	if err != nil {
		return Listing{}, err
	}

	type labelKey struct {
		user int64
		id   int32
	}
	texts := make(map[labelKey]string, len(labels))
	for _, l := range labels {
		texts[labelKey{user: l.UserID, id: l.ContentID}] = l.Label
	}

	reserved := make(map[int32]ReservedID)
	for _, row := range rows {
		for id := row.RangeStart; id < row.End(); id++ {
			entry := ReservedID{User: row.UserID, Time: row.CreatedAt}
			if text, ok := texts[labelKey{user: row.UserID, id: id}]; ok {
				entry.Label = &text
			}
			reserved[id] = entry
		}
	}

	return Listing{Reserved: reserved, Published: published}, nil
}
