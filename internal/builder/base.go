package builder

import (
	"fmt"

	"github.com/mitchellh/copystructure"
	"github.com/vk/sceneforge/internal/scene"
)

// Base supplies the common defaults of scene.Builder. Variants embed it and
// override what differs.
type Base struct{}

// DependenciesOf defaults to the node's children.
func (Base) DependenciesOf(n *scene.Node) []*scene.Node { return n.Children() }

// ProducesOwnContent defaults to true; most variants generate geometry.
func (Base) ProducesOwnContent(*scene.Node) bool { return true }

// ProducesOwnChildren defaults to false.
func (Base) ProducesOwnChildren(*scene.Node) bool { return false }

// Duplicate deep-copies a builder through its exported fields. Unexported
// fields are reset to their zero values in the copy.
func Duplicate[T scene.Builder](b T) T {
	copied, err := copystructure.Copy(b)
	if err != nil {
		// Builders hold plain parameter values; a copy failure is a bug in
		// the variant's field types.
		panic(fmt.Sprintf("builder: cannot duplicate %s: %v", b.Kind(), err))
	}
	return copied.(T)
}

// Store sets v as n's content and reports whether it differs from what n
// held before. Content equal to the previous value is left in place.
func Store[T interface{ Equal(T) bool }](n *scene.Node, v T) bool {
	if prev, ok := n.Content().(T); ok && prev.Equal(v) {
		return false
	}
	n.SetContent(v)
	return true
}
