package group

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/sceneforge/internal/ctxlog"
	"github.com/vk/sceneforge/internal/registry"
	"github.com/vk/sceneforge/internal/scene"
)

func TestGroup(t *testing.T) {
	g := &Group{}
	n := scene.New("storey", g)
	child := scene.New("slab", nil)
	require.NoError(t, n.AddChild(child))

	changed, err := g.Rebuild(context.Background(), n)

	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, []*scene.Node{child}, g.DependenciesOf(n))
	assert.False(t, g.ProducesOwnContent(n))
	assert.True(t, g.ProducesOwnChildren(n))
	assert.IsType(t, &Group{}, g.Duplicate())
}

func TestModule_Register(t *testing.T) {
	r := registry.New(&Module{})

	b, err := r.New(Kind)

	require.NoError(t, err)
	assert.Equal(t, Kind, b.Kind())
	assert.NoError(t, r.ValidateRegistry(ctxlog.Discard(context.Background())))
}
