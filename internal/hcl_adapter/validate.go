package hcl_adapter

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/vk/sceneforge/internal/dag"
	"github.com/vk/sceneforge/internal/scene"
)

// Validate checks a scene tree before its first pass: every path reference
// must resolve and the dependency relation must be acyclic. All dangling
// references are reported together.
func Validate(root *scene.Node) error {
	var merr *multierror.Error
	root.Walk(func(n *scene.Node) bool {
		ref, ok := n.Builder().(scene.Referencer)
		if !ok {
			return true
		}
		for _, r := range ref.References() {
			if _, err := n.Resolve(r); err != nil {
				merr = multierror.Append(merr, err)
			}
		}
		return true
	})
	if err := merr.ErrorOrNil(); err != nil {
		return fmt.Errorf("invalid scene references: %w", err)
	}
	return checkCycles(root)
}

// checkCycles mirrors the scene's dependency relation into a dag.Graph keyed
// by node path.
func checkCycles(root *scene.Node) error {
	g := dag.New()
	id := func(n *scene.Node) string {
		if n == root {
			return RootName
		}
		return n.String()
	}

	var edges [][2]*scene.Node
	root.Walk(func(n *scene.Node) bool {
		g.AddNode(id(n))
		for _, dep := range n.Builder().DependenciesOf(n) {
			edges = append(edges, [2]*scene.Node{dep, n})
		}
		return true
	})

	for _, e := range edges {
		g.AddNode(id(e[0]))
		if err := g.AddEdge(id(e[0]), id(e[1])); err != nil {
			return cycleError(err)
		}
	}
	return cycleError(g.DetectCycles())
}

func cycleError(err error) error {
	var cycle *dag.CycleError
	if errors.As(err, &cycle) {
		return fmt.Errorf("invalid scene dependencies: %w", err)
	}
	return err
}
