package nodeid

import (
	"slices"
	"strconv"
	"strings"
)

// String serializes the Address into its canonical path string representation.
func (a *Address) String() string {
	if a == nil {
		return ""
	}

	var sb strings.Builder
	for i, segment := range a.Path {
		if i > 0 {
			sb.WriteRune('.')
		}
		sb.WriteString(segment.String())
	}
	return sb.String()
}

// String renders a single segment, e.g. `walls[2]`.
func (ps PathSegment) String() string {
	if !ps.HasIndex() {
		return ps.Name
	}
	return ps.Name + "[" + strconv.Itoa(ps.Index) + "]"
}

// Equal checks for deep equality between two Address pointers.
func (a *Address) Equal(other *Address) bool {
	if a == nil || other == nil {
		return a == other
	}
	return slices.Equal(a.Path, other.Path)
}

// Child returns a new address extended by one segment. The receiver is not modified.
func (a *Address) Child(segment PathSegment) *Address {
	var path []PathSegment
	if a != nil {
		path = make([]PathSegment, 0, len(a.Path)+1)
		path = append(path, a.Path...)
	}
	return &Address{Path: append(path, segment)}
}

// Parent returns the address without its last segment, or nil for the root.
func (a *Address) Parent() *Address {
	if a == nil || len(a.Path) == 0 {
		return nil
	}
	return &Address{Path: slices.Clone(a.Path[:len(a.Path)-1])}
}

// IsRoot reports whether the address points at the scene root.
func (a *Address) IsRoot() bool {
	return a == nil || len(a.Path) == 0
}
