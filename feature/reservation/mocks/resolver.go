package mocks

import (
	"context"

	"id-reserve/feature/catalog"

	"github.com/stretchr/testify/mock"
)

// Resolver is a mock implementation of reservation.OwnershipResolver
type Resolver struct {
	mock.Mock
}

func (m *Resolver) ResolveOwners(ctx context.Context, ns catalog.Namespace, chara *catalog.Character, start, length int32) (map[int32]int32, error) {
	args := m.Called(ctx, ns, chara, start, length)
	if owners, ok := args.Get(0).(map[int32]int32); ok {
		return owners, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Resolver) NamespaceOwners(ctx context.Context, ns catalog.Namespace, chara *catalog.Character) (map[int32]int32, error) {
	args := m.Called(ctx, ns, chara)
	if owners, ok := args.Get(0).(map[int32]int32); ok {
		return owners, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Resolver) PublishedIDs(ctx context.Context, ns catalog.Namespace, chara *catalog.Character, userID int64) (map[int32]struct{}, error) {
	args := m.Called(ctx, ns, chara, userID)
	if ids, ok := args.Get(0).(map[int32]struct{}); ok {
		return ids, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Resolver) AuthorsOf(ctx context.Context, postID int32) (map[int64]struct{}, error) {
	args := m.Called(ctx, postID)
	if authors, ok := args.Get(0).(map[int64]struct{}); ok {
		return authors, args.Error(1)
	}
	return nil, args.Error(1)
}
