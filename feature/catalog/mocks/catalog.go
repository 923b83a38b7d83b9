package mocks

import (
	"context"

	"id-reserve/feature/catalog"

	"github.com/stretchr/testify/mock"
)

// Index is a mock implementation of catalog.Index
type Index struct {
	mock.Mock
}

func (m *Index) Query(ctx context.Context, ns catalog.Namespace, f catalog.Filter, limit int) ([]catalog.Hit, error) {
	args := m.Called(ctx, ns, f, limit)
	if hits, ok := args.Get(0).([]catalog.Hit); ok {
		return hits, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Index) DeleteWhere(ctx context.Context, ns catalog.Namespace, f catalog.Filter) error {
	args := m.Called(ctx, ns, f)
	return args.Error(0)
}

// Registry is a mock implementation of catalog.Registry
type Registry struct {
	mock.Mock
}

func (m *Registry) AuthorsOf(ctx context.Context, postID int32) (map[int64]struct{}, error) {
	args := m.Called(ctx, postID)
	if authors, ok := args.Get(0).(map[int64]struct{}); ok {
		return authors, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Registry) PostsOf(ctx context.Context, userID int64) ([]int32, error) {
	args := m.Called(ctx, userID)
	if posts, ok := args.Get(0).([]int32); ok {
		return posts, args.Error(1)
	}
	return nil, args.Error(1)
}
