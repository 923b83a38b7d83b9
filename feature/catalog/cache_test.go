package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubRegistry struct {
	authorCalls int
	postCalls   int
}

func (s *stubRegistry) AuthorsOf(ctx context.Context, postID int32) (map[int64]struct{}, error) {
	s.authorCalls++
	return map[int64]struct{}{int64(postID) * 10: {}}, nil
}

func (s *stubRegistry) PostsOf(ctx context.Context, userID int64) ([]int32, error) {
	s.postCalls++
	return []int32{1}, nil
}

func TestCachedRegistry_NilClientPassesThrough(t *testing.T) {
	stub := &stubRegistry{}
	cached := NewCachedRegistry(stub, nil, time.Minute, zap.NewNop())
	ctx := context.Background()

	authors, err := cached.AuthorsOf(ctx, 5)
	assert.NoError(t, err)
	assert.Contains(t, authors, int64(50))
	assert.Equal(t, 1, stub.authorCalls)

	posts, err := cached.PostsOf(ctx, 42)
	assert.NoError(t, err)
	assert.Equal(t, []int32{1}, posts)
	assert.Equal(t, 1, stub.postCalls)
}
