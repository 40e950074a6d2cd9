package ast

import "fmt"

// AttrKind identifies a declaration attribute. The set is closed; an
// attribute outside it cannot be represented and the exporter rejects
// it rather than guessing.
type AttrKind int

const (
	AnnotateAttr AttrKind = iota
	AlignedAttr
	CleanupAttr
	ConstAttr
	ConstructorAttr
	DeprecatedAttr
	DestructorAttr
	FormatAttr
	NoInlineAttr
	NonNullAttr
	NoReturnAttr
	PackedAttr
	PureAttr
	SentinelAttr
	UnavailableAttr
	UnusedAttr
	UsedAttr
	VisibilityAttr
	WarnUnusedResultAttr
	WeakAttr
)

var attrNames = map[AttrKind]string{
	AnnotateAttr:         "AnnotateAttr",
	AlignedAttr:          "AlignedAttr",
	CleanupAttr:          "CleanupAttr",
	ConstAttr:            "ConstAttr",
	ConstructorAttr:      "ConstructorAttr",
	DeprecatedAttr:       "DeprecatedAttr",
	DestructorAttr:       "DestructorAttr",
	FormatAttr:           "FormatAttr",
	NoInlineAttr:         "NoInlineAttr",
	NonNullAttr:          "NonNullAttr",
	NoReturnAttr:         "NoReturnAttr",
	PackedAttr:           "PackedAttr",
	PureAttr:             "PureAttr",
	SentinelAttr:         "SentinelAttr",
	UnavailableAttr:      "UnavailableAttr",
	UnusedAttr:           "UnusedAttr",
	UsedAttr:             "UsedAttr",
	VisibilityAttr:       "VisibilityAttr",
	WarnUnusedResultAttr: "WarnUnusedResultAttr",
	WeakAttr:             "WeakAttr",
}

// AttrKinds enumerates the known attribute kinds.
func AttrKinds() []AttrKind {
	return []AttrKind{
		AnnotateAttr, AlignedAttr, CleanupAttr, ConstAttr, ConstructorAttr,
		DeprecatedAttr, DestructorAttr, FormatAttr, NoInlineAttr, NonNullAttr,
		NoReturnAttr, PackedAttr, PureAttr, SentinelAttr, UnavailableAttr,
		UnusedAttr, UsedAttr, VisibilityAttr, WarnUnusedResultAttr, WeakAttr,
	}
}

func (k AttrKind) String() string {
	name, ok := attrNames[k]
	if !ok {
		return fmt.Sprintf("AttrKind(%d)", int(k))
	}
	return name
}

// Known reports whether k is a member of the closed attribute set.
func (k AttrKind) Known() bool {
	_, ok := attrNames[k]
	return ok
}

// Attr is an attribute attached to a declaration. Params hold the
// attribute's arguments rendered as strings; an argument that is itself
// a node is flattened to the "?" placeholder.
type Attr struct {
	Kind      AttrKind
	Range     SourceRange
	Params    []string
	Inherited bool
	Implicit  bool
}
