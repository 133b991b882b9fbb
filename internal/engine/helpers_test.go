package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/sceneforge/internal/builder"
	"github.com/vk/sceneforge/internal/ctxlog"
	"github.com/vk/sceneforge/internal/scene"
)

// recorder is a builder that records its invocations into a shared journal.
type recorder struct {
	builder.Base

	// deps overrides the default children dependencies when set.
	deps []*scene.Node
	// unchanged makes Rebuild report no observable change.
	unchanged bool
	err       error
	journal   *[]string
}

func (p *recorder) Kind() string { return "recorder" }

func (p *recorder) DependenciesOf(n *scene.Node) []*scene.Node {
	if p.deps != nil {
		return p.deps
	}
	return n.Children()
}

func (p *recorder) Rebuild(_ context.Context, n *scene.Node) (bool, error) {
	*p.journal = append(*p.journal, n.Name)
	if p.err != nil {
		return false, p.err
	}
	return !p.unchanged, nil
}

func (p *recorder) Duplicate() scene.Builder {
	c := *p
	return &c
}

var errBoom = errors.New("boom")

// world builds trees of recorder nodes that share one journal.
type world struct {
	journal []string
}

func (w *world) node(t *testing.T, name string, children ...*scene.Node) *scene.Node {
	t.Helper()
	n := scene.New(name, &recorder{journal: &w.journal})
	for _, c := range children {
		require.NoError(t, n.AddChild(c))
	}
	return n
}

func (w *world) reset() { w.journal = nil }

func recorderOf(n *scene.Node) *recorder { return n.Builder().(*recorder) }

func testCtx() context.Context { return ctxlog.Discard(context.Background()) }

// settle runs a first pass so every node starts the test clean.
func settle(t *testing.T, w *world, root *scene.Node) {
	t.Helper()
	res, err := MarkAndBuild(testCtx(), root)
	require.NoError(t, err)
	require.NoError(t, res.Err())
	w.reset()
}

func names(nodes []*scene.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Name
	}
	return out
}
