package hcl_adapter

import "github.com/hashicorp/hcl/v2"

// fileRoot is a struct used to decode all possible top-level blocks from any file.
type fileRoot struct {
	Nodes  []*NodeBlock `hcl:"node,block"`
	Remain hcl.Body     `hcl:",remain"`
}

// NodeBlock is the HCL schema of a `node` block.
type NodeBlock struct {
	Kind      string          `hcl:"kind,label"`
	Name      string          `hcl:"name,label"`
	Count     hcl.Expression  `hcl:"count,optional"`
	Arguments *ArgumentsBlock `hcl:"arguments,block"`
	Nodes     []*NodeBlock    `hcl:"node,block"`
}

// ArgumentsBlock holds the builder parameters of a node.
type ArgumentsBlock struct {
	Body hcl.Body `hcl:",remain"`
}
