package scene

import (
	"fmt"

	"github.com/vk/sceneforge/internal/nodeid"
)

// Walk visits n and its descendants in pre-order. Returning false from fn
// skips the visited node's descendants.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// Count returns the number of nodes in the subtree, n included.
func (n *Node) Count() int {
	count := 0
	n.Walk(func(*Node) bool {
		count++
		return true
	})
	return count
}

// Find resolves an address relative to n.
func (n *Node) Find(addr *nodeid.Address) (*Node, bool) {
	cur := n
	for _, seg := range addr.Path {
		next, ok := cur.ChildBySegment(seg)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Resolve looks up a path reference written in a scene file. The reference
// is tried against n's parent first, so siblings can refer to each other by
// name, then against the root.
func (n *Node) Resolve(ref string) (*Node, error) {
	addr, err := nodeid.Parse(ref)
	if err != nil {
		return nil, fmt.Errorf("invalid reference %q: %w", ref, err)
	}
	if n.parent != nil {
		if target, ok := n.parent.Find(addr); ok {
			return target, nil
		}
	}
	if target, ok := n.Root().Find(addr); ok {
		return target, nil
	}
	return nil, fmt.Errorf("reference %q from %q does not resolve to a node", ref, n.String())
}
