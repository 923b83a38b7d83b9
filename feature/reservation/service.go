package reservation

import (
	"context"
	"errors"
	"time"

	"id-reserve/core/queue"
	"id-reserve/feature/catalog"

	"go.uber.org/zap"
)

// Sentinel errors reported by the mutator. Each maps to a client
// mistake the caller can correct.
var (
	ErrInvalidRange  = errors.New("invalid reservation range")
	ErrNotHeld       = errors.New("range includes ids the user does not hold")
	ErrNoReservation = errors.New("no active reservation covers the id")
)

// OwnershipResolver answers who owns published content. Implemented by
// catalog.Resolver.
type OwnershipResolver interface {
	ResolveOwners(ctx context.Context, ns catalog.Namespace, chara *catalog.Character, start, length int32) (map[int32]int32, error)
	NamespaceOwners(ctx context.Context, ns catalog.Namespace, chara *catalog.Character) (map[int32]int32, error)
	PublishedIDs(ctx context.Context, ns catalog.Namespace, chara *catalog.Character, userID int64) (map[int32]struct{}, error)
	AuthorsOf(ctx context.Context, postID int32) (map[int64]struct{}, error)
}

// Service implements the reservation operations.
type Service struct {
	store    *Store
	resolver OwnershipResolver
	logger   *zap.Logger
	queue    queue.Config
}

// NewService creates a new reservation service.
func NewService(store *Store, resolver OwnershipResolver, logger *zap.Logger, queueCfg queue.Config) *Service {
	return &Service{
		store:    store,
		resolver: resolver,
		logger:   logger,
		queue:    queueCfg,
	}
}

// triggerCompaction schedules compaction of rt after a partial grant.
// With the broker enabled the event is published and handled by the
// consumer; otherwise compaction runs inline.
func (s *Service) triggerCompaction(ctx context.Context, rt Type) {
	if s.queue.Enabled {
		event := queue.CompactEvent{TypeCode: rt.Code(), RequestedAt: time.Now().UTC()}
		err := queue.PublishCompact(ctx, s.queue, event)
		if err == nil {
			return
		}
		s.logger.Warn("compaction publish failed, compacting inline",
			zap.String("type", rt.String()), zap.Error(err))
	}
	if err := s.CompactType(ctx, rt); err != nil {
		s.logger.Error("inline compaction failed",
			zap.String("type", rt.String()), zap.Error(err))
	}
}
