package catalog

import "context"

// Resolver answers ownership questions about published content by
// composing the index with the post registry.
type Resolver struct {
	index    Index
	registry Registry
}

// NewResolver creates a resolver over the given collaborators.
func NewResolver(index Index, registry Registry) *Resolver {
	return &Resolver{index: index, registry: registry}
}

// ResolveOwners maps every published ID in [start, start+length) of the
// namespace to the post that published it. IDs nothing published under
// are absent from the result.
func (r *Resolver) ResolveOwners(ctx context.Context, ns Namespace, chara *Character, start, length int32) (map[int32]int32, error) {
	ids := make([]int32, 0, length)
	for id := start; id < start+length; id++ {
		ids = append(ids, id)
	}
	hits, err := r.index.Query(ctx, ns, Filter{IDs: ids, Character: chara}, 0)
	if err != nil {
		return nil, err
	}
	return ownersOf(hits), nil
}

// NamespaceOwners maps every published ID of the namespace to its post.
func (r *Resolver) NamespaceOwners(ctx context.Context, ns Namespace, chara *Character) (map[int32]int32, error) {
	hits, err := r.index.Query(ctx, ns, Filter{Character: chara}, 0)
	if err != nil {
		return nil, err
	}
	return ownersOf(hits), nil
}

// PublishedIDs returns every ID of the namespace published under a post
// the user authors.
func (r *Resolver) PublishedIDs(ctx context.Context, ns Namespace, chara *Character, userID int64) (map[int32]struct{}, error) {
	posts, err := r.registry.PostsOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return map[int32]struct{}{}, nil
	}
	hits, err := r.index.Query(ctx, ns, Filter{PostIDs: posts, Character: chara}, 0)
	if err != nil {
		return nil, err
	}
	ids := make(map[int32]struct{}, len(hits))
	for _, h := range hits {
		ids[h.ID] = struct{}{}
	}
	return ids, nil
}

// AuthorsOf returns the set of users credited on the post.
func (r *Resolver) AuthorsOf(ctx context.Context, postID int32) (map[int64]struct{}, error) {
	return r.registry.AuthorsOf(ctx, postID)
}

func ownersOf(hits []Hit) map[int32]int32 {
	owners := make(map[int32]int32, len(hits))
	for _, h := range hits {
		owners[h.ID] = h.PostID
	}
	return owners
}
