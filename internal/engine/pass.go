package engine

import (
	"context"
	"fmt"

	"github.com/vk/sceneforge/internal/builder"
	"github.com/vk/sceneforge/internal/ctxlog"
	"github.com/vk/sceneforge/internal/scene"
)

// visitState is the mark traversal state of a node.
type visitState uint8

const (
	unvisited visitState = iota
	inProgress
	visited
)

// entry is the per-pass scratch state of one node.
type entry struct {
	state visitState
	// dirty starts as the node's invalidation request, absorbs the dirtiness
	// of its dependencies during mark, and is consumed by build.
	dirty bool
	// failed is set when the node's own rebuild failed.
	failed bool
	// stale is set when something the node depends on, directly or
	// transitively, failed in this pass.
	stale bool
}

// Pass holds the state of one mark-and-build pass.
type Pass struct {
	ctx     context.Context
	root    *scene.Node
	entries map[*scene.Node]*entry
	// stack is the chain of nodes currently being marked, for cycle reports.
	stack  []*scene.Node
	result *Result
}

// NewPass seeds a pass over root: every node in root's subtree starts
// unvisited with its invalidation request as its dirty state. Nodes outside
// the subtree that builders depend on are seeded the same way on first
// contact.
func NewPass(ctx context.Context, root *scene.Node) *Pass {
	p := &Pass{
		ctx:     ctx,
		root:    root,
		entries: make(map[*scene.Node]*entry, root.Count()),
		result:  &Result{},
	}
	root.Walk(func(n *scene.Node) bool {
		p.entries[n] = &entry{dirty: n.Invalidated()}
		return true
	})
	return p
}

func (p *Pass) entry(n *scene.Node) *entry {
	e, ok := p.entries[n]
	if !ok {
		e = &entry{dirty: n.Invalidated()}
		p.entries[n] = e
	}
	return e
}

// Result returns the pass outcome accumulated so far.
func (p *Pass) Result() *Result { return p.result }

// Dirty reports whether the pass currently considers n dirty.
func (p *Pass) Dirty(n *scene.Node) bool { return p.entry(n).dirty }

// Mark propagates dirtiness from dependencies to dependents over everything
// reachable from n.
func (p *Pass) Mark(n *scene.Node) error {
	e := p.entry(n)
	switch e.state {
	case visited:
		return nil
	case inProgress:
		return p.cycle(n)
	}

	e.state = inProgress
	p.stack = append(p.stack, n)
	p.result.Marked++

	for _, dep := range n.Builder().DependenciesOf(n) {
		if err := p.Mark(dep); err != nil {
			return err
		}
		e.dirty = e.dirty || p.entry(dep).dirty
	}

	p.stack = p.stack[:len(p.stack)-1]
	e.state = visited
	return nil
}

// cycle builds the violation for a node reached while still in progress.
func (p *Pass) cycle(n *scene.Node) error {
	start := len(p.stack) - 1
	for start > 0 && p.stack[start] != n {
		start--
	}
	chain := append([]*scene.Node{}, p.stack[start:]...)
	return &ContractViolation{
		Cycle:  append(chain, n),
		Reason: "dependency cycle",
	}
}

// Build regenerates every dirty node reachable from n, dependencies first.
// It only returns an error when the dependency relation changed since Mark.
func (p *Pass) Build(n *scene.Node) error {
	e := p.entry(n)
	if e.state != visited {
		return &ContractViolation{Reason: fmt.Sprintf("node %s reached by build but not by mark; dependencies changed during the pass", n)}
	}
	if !e.dirty {
		return nil
	}
	e.dirty = false

	logger := ctxlog.FromContext(p.ctx)
	b := n.Builder()

	var staleBy *scene.Node
	for _, dep := range b.DependenciesOf(n) {
		if err := p.Build(dep); err != nil {
			return err
		}
		if de := p.entry(dep); (de.failed || de.stale) && staleBy == nil {
			staleBy = dep
		}
	}

	p.result.Invoked++
	changed, err := b.Rebuild(p.ctx, n)
	if err != nil {
		e.failed = true
		buildErr := builder.Fail(n, err)
		p.result.Errors = append(p.result.Errors, buildErr)
		logger.Warn("Rebuild failed.", "node", n.String(), "kind", b.Kind(), "error", buildErr.Cause)
		return nil
	}

	if staleBy != nil {
		e.stale = true
		p.result.Stale = append(p.result.Stale, n)
		logger.Debug("Rebuilt over a failed dependency.", "node", n.String(), "dependency", staleBy.String())
	}

	n.ClearInvalidation()
	if changed {
		p.result.Built = append(p.result.Built, n)
	}
	logger.Debug("Rebuilt node.", "node", n.String(), "kind", b.Kind(), "changed", changed)
	return nil
}
