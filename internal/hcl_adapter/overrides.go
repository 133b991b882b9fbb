package hcl_adapter

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/vk/sceneforge/internal/builder"
	"github.com/vk/sceneforge/internal/nodeid"
	"github.com/vk/sceneforge/internal/scene"
)

// Override is a parsed `path.param=expression` assignment.
type Override struct {
	Path  *nodeid.Address
	Param string
	Expr  hcl.Expression
	raw   string
}

// String returns the assignment as written.
func (o *Override) String() string { return o.raw }

// ParseOverride parses an assignment such as `storey.walls[1].height=2.5`.
// The right-hand side is an HCL expression; the left-hand side is a node
// path followed by a parameter name.
func ParseOverride(raw string) (*Override, error) {
	lhs, rhs, ok := strings.Cut(raw, "=")
	if !ok {
		return nil, fmt.Errorf("override %q: expected path.param=value", raw)
	}
	lhs = strings.TrimSpace(lhs)
	dot := strings.LastIndex(lhs, ".")
	if dot <= 0 || dot == len(lhs)-1 {
		return nil, fmt.Errorf("override %q: expected path.param=value", raw)
	}

	addr, err := nodeid.Parse(lhs[:dot])
	if err != nil {
		return nil, fmt.Errorf("override %q: %w", raw, err)
	}
	expr, diags := hclsyntax.ParseExpression([]byte(strings.TrimSpace(rhs)), "override", hcl.InitialPos)
	if diags.HasErrors() {
		return nil, fmt.Errorf("override %q: %w", raw, diags)
	}
	return &Override{Path: addr, Param: lhs[dot+1:], Expr: expr, raw: raw}, nil
}

// Apply assigns the override to its node's builder and invalidates the node.
// It returns the edited node.
func (o *Override) Apply(root *scene.Node) (*scene.Node, error) {
	n, ok := root.Find(o.Path)
	if !ok {
		return nil, fmt.Errorf("override %q: no node at %s", o.raw, o.Path)
	}
	if !n.HasBuilder() {
		return nil, fmt.Errorf("override %q: node %s has no parameters", o.raw, n)
	}
	val, diags := o.Expr.Value(newEvalContext())
	if diags.HasErrors() {
		return nil, fmt.Errorf("override %q: %w", o.raw, diags)
	}
	if err := builder.SetParam(n.Builder(), o.Param, val); err != nil {
		return nil, fmt.Errorf("override %q: %w", o.raw, err)
	}
	n.Invalidate()
	return n, nil
}
