package reservation

import (
	"fmt"

	"id-reserve/feature/catalog"
)

// Kind is the broad category of a reservation type.
type Kind int32

const (
	KindSong Kind = iota
	KindModule
	KindCstmItem
	KindCostume
)

// Wire codes for reservation types. Costumes occupy one code per
// character starting at CodeCostumeBase.
const (
	CodeSong        int32 = 0
	CodeModule      int32 = 1
	CodeCstmItem    int32 = 2
	CodeCostumeBase int32 = 10
)

// Type identifies one reservation namespace. Costume types carry the
// character whose costume slots they reserve.
type Type struct {
	Kind      Kind
	Character catalog.Character
}

var (
	TypeSong     = Type{Kind: KindSong}
	TypeModule   = Type{Kind: KindModule}
	TypeCstmItem = Type{Kind: KindCstmItem}
)

// TypeCostume returns the costume type for the given character.
func TypeCostume(c catalog.Character) Type {
	return Type{Kind: KindCostume, Character: c}
}

// TypeFromCode parses a wire code into a Type. Unknown codes are
// rejected rather than coerced to a default.
func TypeFromCode(code int32) (Type, error) {
	switch code {
	case CodeSong:
		return TypeSong, nil
	case CodeModule:
		return TypeModule, nil
	case CodeCstmItem:
		return TypeCstmItem, nil
	}
	if chara := catalog.Character(code - CodeCostumeBase); chara.Valid() {
		return TypeCostume(chara), nil
	}
	return Type{}, fmt.Errorf("unknown reservation type code %d", code)
}

// AllTypes returns every reservation type, used by batch compaction.
func AllTypes() []Type {
	types := []Type{TypeSong, TypeModule, TypeCstmItem}
	for c := catalog.CharaMiku; c <= catalog.CharaTeto; c++ {
		types = append(types, TypeCostume(c))
	}
	return types
}

// Code returns the wire code of the type.
func (t Type) Code() int32 {
	switch t.Kind {
	case KindSong:
		return CodeSong
	case KindModule:
		return CodeModule
	case KindCstmItem:
		return CodeCstmItem
	default:
		return CodeCostumeBase + int32(t.Character)
	}
}

// Namespace returns the index namespace the type's IDs live in.
func (t Type) Namespace() catalog.Namespace {
	switch t.Kind {
	case KindSong:
		return catalog.NamespaceSongs
	case KindModule:
		return catalog.NamespaceModules
	case KindCstmItem:
		return catalog.NamespaceCstmItems
	default:
		return catalog.NamespaceCostumes
	}
}

// CharacterFilter returns the character constraint for index queries,
// nil for non-costume types.
func (t Type) CharacterFilter() *catalog.Character {
	if t.Kind != KindCostume {
		return nil
	}
	c := t.Character
	return &c
}

func (t Type) String() string {
	switch t.Kind {
	case KindSong:
		return "SONG"
	case KindModule:
		return "MODULE"
	case KindCstmItem:
		return "CSTM_ITEM"
	default:
		return "COSTUME_" + t.Character.String()
	}
}

// DecisionKind classifies the outcome of validating a requested range.
type DecisionKind int32

const (
	// DecisionInvalid is the zero value so a forgotten assignment can
	// never read as a grant.
	DecisionInvalid DecisionKind = iota
	DecisionValid
	DecisionPartial
	DecisionInvalidLength
	DecisionInvalidAlignment
)

func (k DecisionKind) String() string {
	switch k {
	case DecisionValid:
		return "VALID_RANGE"
	case DecisionPartial:
		return "PARTIAL_VALID_RANGE"
	case DecisionInvalidLength:
		return "INVALID_LENGTH"
	case DecisionInvalidAlignment:
		return "INVALID_ALIGNMENT"
	default:
		return "INVALID_RANGE"
	}
}

// Decision is the result of validating a requested range.
//
// PartialIDs is set only for DecisionPartial and holds, sorted, the IDs
// inside the range the requester already legitimately claims. MaxLength
// accompanies DecisionInvalidLength, Alignment accompanies
// DecisionInvalidAlignment.
type Decision struct {
	Kind       DecisionKind
	PartialIDs []int32
	MaxLength  int
	Alignment  int32
}
