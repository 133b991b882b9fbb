package config

import (
	"github.com/hashicorp/hcl/v2"
)

// Model is the unified, format-agnostic representation of a scene
// description, possibly merged from several files.
type Model struct {
	Scene *Scene
}

// Scene holds the top-level node definitions in declaration order.
type Scene struct {
	Nodes []*NodeDef
}

// InstancingMode defines how a node block is instantiated.
type InstancingMode int

const (
	// ModeSingular is the default: the block creates one node.
	ModeSingular InstancingMode = iota
	// ModeInstanced means the block carries `count` and creates indexed nodes.
	ModeInstanced
)

// NodeDef is the format-agnostic representation of a `node` block.
type NodeDef struct {
	Kind       string
	Name       string
	Count      hcl.Expression
	Instancing InstancingMode
	Arguments  map[string]hcl.Expression
	Children   []*NodeDef
	// Source names the file the block was read from, for diagnostics.
	Source string
}

// Walk visits every definition in the scene in pre-order.
func (s *Scene) Walk(fn func(def *NodeDef)) {
	var visit func(defs []*NodeDef)
	visit = func(defs []*NodeDef) {
		for _, d := range defs {
			fn(d)
			visit(d.Children)
		}
	}
	visit(s.Nodes)
}
