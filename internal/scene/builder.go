package scene

import "context"

// Builder is the strategy a Node uses to regenerate its derived content.
type Builder interface {
	// Kind is the registry identifier of the builder variant, e.g. "rectangle".
	Kind() string

	// DependenciesOf lists the nodes whose content n's rebuild reads. The
	// common case is n's children; variants may instead depend on nothing or
	// on arbitrary other nodes. The result must be stable within one pass.
	DependenciesOf(n *Node) []*Node

	// Rebuild regenerates n's content from the builder parameters and the
	// already rebuilt dependencies. It reports whether n's observable content
	// changed. A failure should be reported as a *builder.BuildError.
	Rebuild(ctx context.Context, n *Node) (changed bool, err error)

	// ProducesOwnContent reports whether n carries geometry of its own.
	ProducesOwnContent(n *Node) bool

	// ProducesOwnChildren reports whether n's children are meaningful to edit.
	ProducesOwnChildren(n *Node) bool

	// Duplicate returns an independent copy with identical parameters.
	Duplicate() Builder
}

// Referencer is implemented by builders that depend on nodes outside their
// own children through path references. Loaders use it to validate scenes
// before the first pass.
type Referencer interface {
	References() []string
}

// IdentityKind is the kind reported by the identity builder.
const IdentityKind = "identity"

// Identity is the builder used for nodes that have none assigned. It depends
// on the node's children and never produces content.
type Identity struct{}

// Kind implements Builder.
func (Identity) Kind() string { return IdentityKind }

// DependenciesOf implements Builder.
func (Identity) DependenciesOf(n *Node) []*Node { return n.Children() }

// Rebuild implements Builder. Nothing is generated, so nothing changes.
func (Identity) Rebuild(context.Context, *Node) (bool, error) { return false, nil }

// ProducesOwnContent implements Builder.
func (Identity) ProducesOwnContent(*Node) bool { return false }

// ProducesOwnChildren implements Builder.
func (Identity) ProducesOwnChildren(*Node) bool { return true }

// Duplicate implements Builder.
func (Identity) Duplicate() Builder { return Identity{} }
