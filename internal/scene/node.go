package scene

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/vk/sceneforge/internal/nodeid"
)

// Node is a member of the editable scene tree.
type Node struct {
	// id is the stable identity handle, used by collaborators (renderers,
	// selection overlays) to refer to the node across rebuilds.
	id uuid.UUID
	// Name is the human-readable name from the scene file. Together with
	// Index it forms the node's path segment.
	Name string
	// Index is the instance index for nodes expanded by `count`, or -1.
	Index int

	parent   *Node
	children []*Node
	builder  Builder

	// content is the derived data written by the builder (profiles, meshes).
	content any
	// invalidated is the caller's request for the node to be regenerated.
	invalidated bool
}

// New creates a detached node with the given builder. A nil builder means
// the node uses Identity. New nodes start invalidated so their first pass
// generates content.
func New(name string, b Builder) *Node {
	return &Node{
		id:          uuid.New(),
		Name:        name,
		Index:       -1,
		builder:     b,
		invalidated: true,
	}
}

// NewIndexed creates a node for one instance of a counted block.
func NewIndexed(name string, index int, b Builder) *Node {
	n := New(name, b)
	n.Index = index
	return n
}

// ID returns the node's stable identity.
func (n *Node) ID() uuid.UUID { return n.id }

// Segment returns the path segment naming this node under its parent.
func (n *Node) Segment() nodeid.PathSegment {
	if n.Index >= 0 {
		return nodeid.NewPathSegmentWithIndex(n.Name, n.Index)
	}
	return nodeid.NewPathSegment(n.Name)
}

// Path returns the node's address from the root. The root has an empty path.
func (n *Node) Path() *nodeid.Address {
	var segments []nodeid.PathSegment
	for cur := n; cur.parent != nil; cur = cur.parent {
		segments = append(segments, cur.Segment())
	}
	slices.Reverse(segments)
	return &nodeid.Address{Path: segments}
}

// String returns the path, or the name for a root, for logs and errors.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.parent == nil {
		return n.Segment().String()
	}
	return n.Path().String()
}

// Builder returns the assigned builder, or Identity when none is assigned.
func (n *Node) Builder() Builder {
	if n.builder == nil {
		return Identity{}
	}
	return n.builder
}

// HasBuilder reports whether an explicit builder is assigned.
func (n *Node) HasBuilder() bool { return n.builder != nil }

// SetBuilder assigns a builder and invalidates the node.
func (n *Node) SetBuilder(b Builder) {
	n.builder = b
	n.invalidated = true
}

// Content returns the builder-produced content, or nil.
func (n *Node) Content() any { return n.content }

// SetContent stores builder-produced content. Only the node's own builder
// should call it, from Rebuild.
func (n *Node) SetContent(v any) { n.content = v }

// Invalidate flags the node for regeneration on the next pass.
func (n *Node) Invalidate() { n.invalidated = true }

// Invalidated reports whether the node awaits regeneration.
func (n *Node) Invalidated() bool { return n.invalidated }

// ClearInvalidation withdraws the regeneration request. The engine calls it
// once the node's builder has run.
func (n *Node) ClearInvalidation() { n.invalidated = false }

// Parent returns the parent node, or nil for a root or detached node.
func (n *Node) Parent() *Node { return n.parent }

// Root walks up to the top of the tree.
func (n *Node) Root() *Node {
	cur := n
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

// Children returns the ordered children. The slice must not be modified.
func (n *Node) Children() []*Node { return n.children }

// NumChildren returns the number of children.
func (n *Node) NumChildren() int { return len(n.children) }

// Child returns the child at index i.
func (n *Node) Child(i int) *Node { return n.children[i] }

// ChildBySegment returns the direct child with the given name and index.
func (n *Node) ChildBySegment(seg nodeid.PathSegment) (*Node, bool) {
	for _, c := range n.children {
		if c.Name == seg.Name && c.Index == seg.Index {
			return c, true
		}
	}
	return nil, false
}

// AddChild appends a detached node and invalidates n.
func (n *Node) AddChild(c *Node) error {
	return n.InsertChild(len(n.children), c)
}

// InsertChild inserts a detached node at position i and invalidates n.
func (n *Node) InsertChild(i int, c *Node) error {
	if c.parent != nil {
		return fmt.Errorf("node %q already has parent %q", c.Name, c.parent.String())
	}
	if i < 0 || i > len(n.children) {
		return fmt.Errorf("child index %d out of range [0,%d]", i, len(n.children))
	}
	for cur := n; cur != nil; cur = cur.parent {
		if cur == c {
			return fmt.Errorf("cannot add %q beneath itself", c.Name)
		}
	}
	if _, exists := n.ChildBySegment(c.Segment()); exists {
		return fmt.Errorf("node %q already has a child named %q", n.String(), c.Segment().String())
	}
	n.children = slices.Insert(n.children, i, c)
	c.parent = n
	n.invalidated = true
	return nil
}

// RemoveChild detaches c from n and invalidates n. It reports whether c was
// a child of n.
func (n *Node) RemoveChild(c *Node) bool {
	i := slices.Index(n.children, c)
	if i < 0 {
		return false
	}
	n.children = slices.Delete(n.children, i, i+1)
	c.parent = nil
	n.invalidated = true
	return true
}

// Clone deep-copies the subtree rooted at n. Builders are copied with
// Duplicate, clones get fresh identities, and every clone is invalidated.
// Content is not copied; the first pass regenerates it.
func (n *Node) Clone() *Node {
	var b Builder
	if n.builder != nil {
		b = n.builder.Duplicate()
	}
	c := New(n.Name, b)
	c.Index = n.Index
	for _, child := range n.children {
		cc := child.Clone()
		cc.parent = c
		c.children = append(c.children, cc)
	}
	return c
}
