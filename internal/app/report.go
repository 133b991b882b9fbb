package app

import (
	"fmt"
	"io"

	"github.com/vk/sceneforge/internal/engine"
	"github.com/vk/sceneforge/internal/scene"
	"github.com/xlab/treeprint"
)

// renderTree draws the scene with each node's kind, content summary and,
// for nodes touched by res, the outcome of the pass.
func renderTree(root *scene.Node, res *engine.Result) string {
	status := make(map[*scene.Node]string)
	if res != nil {
		for _, n := range res.Built {
			status[n] = "built"
		}
		for _, n := range res.Stale {
			if status[n] != "" {
				status[n] += ", stale"
			} else {
				status[n] = "stale"
			}
		}
		for _, e := range res.Errors {
			status[e.Node] = "error: " + e.Cause.Error()
		}
	}

	tree := treeprint.NewWithRoot(nodeLabel(root, status))
	addBranches(tree, root, status)
	return tree.String()
}

func addBranches(tree treeprint.Tree, n *scene.Node, status map[*scene.Node]string) {
	for _, c := range n.Children() {
		if c.NumChildren() == 0 {
			tree.AddNode(nodeLabel(c, status))
			continue
		}
		addBranches(tree.AddBranch(nodeLabel(c, status)), c, status)
	}
}

func nodeLabel(n *scene.Node, status map[*scene.Node]string) string {
	label := fmt.Sprintf("%s (%s)", n.Segment(), n.Builder().Kind())
	if s, ok := n.Content().(fmt.Stringer); ok {
		label += " " + s.String()
	}
	if st, ok := status[n]; ok {
		label += " [" + st + "]"
	}
	return label
}

// printPass writes the tree and a one-line summary of the pass.
func printPass(w io.Writer, seq uint64, root *scene.Node, res *engine.Result) {
	fmt.Fprint(w, renderTree(root, res))
	fmt.Fprintf(w, "pass %d: %d built, %d failed, %d stale, %d rebuilds invoked\n",
		seq, len(res.Built), len(res.Errors), len(res.Stale), res.Invoked)
}
