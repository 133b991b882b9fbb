// Package reconcile merges a freshly loaded scene tree into the live one, so
// that a reloaded scene file only invalidates what actually changed.
//
// Children are matched by name and index. Matched nodes keep their identity
// and content; their builder is replaced only when its kind or parameters
// differ. Unmatched fresh nodes are moved into the live tree and unmatched
// live nodes are removed, which invalidates their parents.
package reconcile

import (
	"context"
	"fmt"
	"slices"

	"github.com/vk/sceneforge/internal/builder"
	"github.com/vk/sceneforge/internal/ctxlog"
	"github.com/vk/sceneforge/internal/scene"
)

// Stats lists the paths touched by a merge.
type Stats struct {
	Added     []string
	Removed   []string
	Updated   []string
	Reordered []string
}

// Changed reports whether the merge modified the live tree.
func (s *Stats) Changed() bool {
	return len(s.Added)+len(s.Removed)+len(s.Updated)+len(s.Reordered) > 0
}

// Merge makes live match fresh. fresh is consumed: nodes moved out of it
// become part of live.
func Merge(ctx context.Context, live, fresh *scene.Node) (*Stats, error) {
	stats := &Stats{}
	if err := merge(live, fresh, stats); err != nil {
		return stats, err
	}
	ctxlog.FromContext(ctx).Debug("Scene reconciled.",
		"added", len(stats.Added),
		"removed", len(stats.Removed),
		"updated", len(stats.Updated),
		"reordered", len(stats.Reordered),
	)
	return stats, nil
}

func merge(live, fresh *scene.Node, stats *Stats) error {
	same, err := sameBuilder(live, fresh)
	if err != nil {
		return err
	}
	if !same {
		var b scene.Builder
		if fresh.HasBuilder() {
			b = fresh.Builder()
		}
		live.SetBuilder(b)
		stats.Updated = append(stats.Updated, live.String())
	}

	wanted := slices.Clone(fresh.Children())

	for _, lc := range slices.Clone(live.Children()) {
		if _, ok := fresh.ChildBySegment(lc.Segment()); !ok {
			stats.Removed = append(stats.Removed, lc.String())
			live.RemoveChild(lc)
		}
	}

	for i, fc := range wanted {
		lc, ok := live.ChildBySegment(fc.Segment())
		if !ok {
			fresh.RemoveChild(fc)
			if err := live.InsertChild(min(i, live.NumChildren()), fc); err != nil {
				return err
			}
			stats.Added = append(stats.Added, fc.String())
			continue
		}
		if err := merge(lc, fc, stats); err != nil {
			return err
		}
	}

	return reorder(live, wanted, stats)
}

// reorder puts live's children in the order of the fresh children with the
// same segments.
func reorder(live *scene.Node, wanted []*scene.Node, stats *Stats) error {
	ordered := make([]*scene.Node, 0, len(wanted))
	for _, fc := range wanted {
		lc, ok := live.ChildBySegment(fc.Segment())
		if !ok {
			return fmt.Errorf("reconcile: child %s missing after merge", fc.Segment())
		}
		ordered = append(ordered, lc)
	}
	if slices.Equal(ordered, live.Children()) {
		return nil
	}

	for _, c := range ordered {
		live.RemoveChild(c)
	}
	for _, c := range ordered {
		if err := live.AddChild(c); err != nil {
			return err
		}
	}
	stats.Reordered = append(stats.Reordered, live.String())
	return nil
}

// sameBuilder reports whether two nodes carry builders of the same kind with
// equal parameter values.
func sameBuilder(a, b *scene.Node) (bool, error) {
	if a.HasBuilder() != b.HasBuilder() {
		return false, nil
	}
	if !a.HasBuilder() {
		return true, nil
	}
	ba, bb := a.Builder(), b.Builder()
	if ba.Kind() != bb.Kind() {
		return false, nil
	}

	pa, err := builder.Params(ba)
	if err != nil {
		return false, err
	}
	pb, err := builder.Params(bb)
	if err != nil {
		return false, err
	}
	if len(pa) != len(pb) {
		return false, nil
	}
	for i := range pa {
		va, err := pa[i].Value()
		if err != nil {
			return false, err
		}
		vb, err := pb[i].Value()
		if err != nil {
			return false, err
		}
		if pa[i].Name != pb[i].Name || !va.RawEquals(vb) {
			return false, nil
		}
	}
	return true, nil
}
