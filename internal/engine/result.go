package engine

import (
	"slices"

	"github.com/hashicorp/go-multierror"
	"github.com/vk/sceneforge/internal/builder"
	"github.com/vk/sceneforge/internal/scene"
)

// Result is the outcome of one rebuild pass.
type Result struct {
	// Built lists, in rebuild order, the nodes whose builder reported an
	// observable change. Collaborators refresh exactly these.
	Built []*scene.Node
	// Errors holds one entry per node whose builder failed.
	Errors []*builder.BuildError
	// Stale lists nodes that were rebuilt although something they depend on
	// failed in this pass. Their content reflects the failed dependency's
	// previous content.
	Stale []*scene.Node
	// Marked is the number of nodes the mark traversal visited.
	Marked int
	// Invoked is the number of builder invocations.
	Invoked int
}

// Err aggregates the build errors, or returns nil when every builder succeeded.
func (r *Result) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	var merr *multierror.Error
	for _, e := range r.Errors {
		merr = multierror.Append(merr, e)
	}
	return merr
}

// WasBuilt reports whether n is in Built.
func (r *Result) WasBuilt(n *scene.Node) bool {
	return slices.Contains(r.Built, n)
}
