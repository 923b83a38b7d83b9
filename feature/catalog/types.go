package catalog

import "context"

// Namespace identifies one content ID space in the index.
type Namespace string

const (
	NamespaceSongs     Namespace = "songs"
	NamespaceModules   Namespace = "modules"
	NamespaceCstmItems Namespace = "cstm_items"
	NamespaceCostumes  Namespace = "costumes"
)

// UnclaimedPost marks indexed content not attributable to any post.
// Unclaimed IDs always block reservation.
const UnclaimedPost int32 = -1

// Character is a playable character; costume IDs are unique per character.
type Character int32

const (
	CharaMiku Character = iota
	CharaRin
	CharaLen
	CharaLuka
	CharaNeru
	CharaHaku
	CharaKaito
	CharaMeiko
	CharaSakine
	CharaTeto

	characterCount
)

// Valid reports whether c is one of the ten playable characters.
func (c Character) Valid() bool {
	return c >= CharaMiku && c < characterCount
}

func (c Character) String() string {
	names := [...]string{"MIKU", "RIN", "LEN", "LUKA", "NERU", "HAKU", "KAITO", "MEIKO", "SAKINE", "TETO"}
	if !c.Valid() {
		return "UNKNOWN"
	}
	return names[c]
}

// Hit is one published content entry returned by the index.
type Hit struct {
	ID        int32
	PostID    int32
	Character Character
}

// Filter is a conjunction of equality constraints over index attributes.
// Zero-valued fields are unconstrained.
type Filter struct {
	IDs       []int32
	PostIDs   []int32
	Character *Character
}

// Index is the search/attribute index over published content.
type Index interface {
	// Query returns entries of the namespace matching the filter.
	// limit <= 0 means no limit.
	Query(ctx context.Context, ns Namespace, f Filter, limit int) ([]Hit, error)
	// DeleteWhere removes entries of the namespace matching the filter.
	DeleteWhere(ctx context.Context, ns Namespace, f Filter) error
}

// Registry resolves posts to authors and authors to posts.
type Registry interface {
	// AuthorsOf returns the set of user IDs credited on the post.
	AuthorsOf(ctx context.Context, postID int32) (map[int64]struct{}, error)
	// PostsOf returns every post the user authors.
	PostsOf(ctx context.Context, userID int64) ([]int32, error)
}
