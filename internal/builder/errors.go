package builder

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/vk/sceneforge/internal/scene"
)

// BuildError reports that one node's rebuild failed. The engine records it
// and keeps going with the rest of the pass.
type BuildError struct {
	// Node is the node whose builder failed.
	Node *scene.Node
	// NodeID and Path identify the node for collaborators that only see
	// serialized reports.
	NodeID uuid.UUID
	Path   string
	// Kind is the kind of the failing builder.
	Kind string
	// Cause is the underlying reason.
	Cause error
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	return fmt.Sprintf("rebuilding %s %q: %v", e.Kind, e.Path, e.Cause)
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *BuildError) Unwrap() error { return e.Cause }

// Fail wraps cause into a BuildError for n. A cause that already is a
// BuildError for the same node is returned unchanged.
func Fail(n *scene.Node, cause error) *BuildError {
	var be *BuildError
	if errors.As(cause, &be) && be.Node == n {
		return be
	}
	return &BuildError{
		Node:   n,
		NodeID: n.ID(),
		Path:   n.String(),
		Kind:   n.Builder().Kind(),
		Cause:  cause,
	}
}

// Failf is Fail with a formatted cause.
func Failf(n *scene.Node, format string, args ...any) *BuildError {
	return Fail(n, fmt.Errorf(format, args...))
}
