package registry

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/vk/sceneforge/internal/scene"
)

// ErrUnknownKind is returned when a scene names a kind nobody registered.
var ErrUnknownKind = errors.New("unknown builder kind")

// Module is the interface that all builder modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// RegisteredBuilder holds the constructor of one builder kind.
type RegisteredBuilder struct {
	// New returns a builder with default parameters.
	New func() scene.Builder
	// Description is a one-line summary shown in listings.
	Description string
}

// Registry holds all registered builder kinds for a single application instance.
type Registry struct {
	builders map[string]*RegisteredBuilder
}

// New creates and initializes a new Registry instance, registering the
// given modules.
func New(modules ...Module) *Registry {
	r := &Registry{builders: make(map[string]*RegisteredBuilder)}
	for _, m := range modules {
		m.Register(r)
	}
	return r
}

// Register adds a builder kind. Registering the same kind twice is a
// programming error and panics.
func (r *Registry) Register(kind string, rb *RegisteredBuilder) {
	if kind == "" {
		panic("builder kind must not be empty")
	}
	if rb == nil || rb.New == nil {
		panic(fmt.Sprintf("builder kind '%s' registered without a constructor", kind))
	}
	if _, exists := r.builders[kind]; exists {
		panic(fmt.Sprintf("builder kind '%s' already registered", kind))
	}
	slog.Debug("Registering builder kind.", "kind", kind)
	r.builders[kind] = rb
}

// New returns a fresh builder of the given kind.
func (r *Registry) New(kind string) (scene.Builder, error) {
	rb, ok := r.builders[kind]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, kind)
	}
	return rb.New(), nil
}

// Lookup returns the registration for a kind.
func (r *Registry) Lookup(kind string) (*RegisteredBuilder, bool) {
	rb, ok := r.builders[kind]
	return rb, ok
}

// Kinds returns all registered kinds, sorted.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.builders))
	for k := range r.builders {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
