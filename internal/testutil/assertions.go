package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/sceneforge/internal/scene"
)

// MustFind returns the node at path or fails the test.
func MustFind(t *testing.T, root *scene.Node, path string) *scene.Node {
	t.Helper()

	n, err := root.Resolve(path)
	require.NoError(t, err, "node %q not found", path)
	return n
}
