package app

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/sceneforge/internal/builder"
	"github.com/vk/sceneforge/internal/engine"
	"github.com/vk/sceneforge/internal/scene"
	"github.com/vk/sceneforge/modules/group"
	"github.com/vk/sceneforge/modules/profiles"
)

func TestRenderTree(t *testing.T) {
	// --- Arrange ---
	root := scene.New("scene", nil)
	storey := scene.New("storey", &group.Group{})
	outline := scene.New("outline", profiles.NewRectangle())
	column := scene.NewIndexed("column", 0, profiles.NewCircle())
	require.NoError(t, root.AddChild(storey))
	require.NoError(t, storey.AddChild(outline))
	require.NoError(t, storey.AddChild(column))
	res := &engine.Result{
		Built:  []*scene.Node{outline, storey},
		Errors: []*builder.BuildError{builder.Fail(column, errors.New("boom"))},
		Stale:  []*scene.Node{storey, root},
	}

	// --- Act ---
	out := renderTree(root, res)

	// --- Assert ---
	assert.Contains(t, out, "scene (identity) [stale]")
	assert.Contains(t, out, "storey (group) [built, stale]")
	assert.Contains(t, out, "outline (rectangle) [built]")
	assert.Contains(t, out, "column[0] (circle) [error: boom]")
}

func TestPrintPass(t *testing.T) {
	root := scene.New("scene", nil)
	var buf bytes.Buffer

	printPass(&buf, 4, root, &engine.Result{Invoked: 2})

	assert.Contains(t, buf.String(), "pass 4: 0 built, 0 failed, 0 stale, 2 rebuilds invoked")
}
