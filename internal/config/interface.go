package config

import (
	"context"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/sceneforge/internal/scene"
	"github.com/zclconf/go-cty/cty"
)

// Loader is the interface for a format-specific scene loader.
type Loader interface {
	// Load reads scene descriptions from the given paths, translates them
	// into the format-agnostic model, and returns a matching Converter.
	Load(ctx context.Context, paths ...string) (*Model, Converter, error)
}

// Converter is the interface for a format-specific data binding and type
// conversion implementation. It bridges raw scene arguments and the
// parameter fields of builders.
type Converter interface {
	// DecodeArguments evaluates each argument expression and assigns it to
	// the builder parameter of the same name. Parameters without an
	// argument keep their defaults.
	DecodeArguments(
		ctx context.Context,
		b scene.Builder,
		args map[string]hcl.Expression,
		evalCtx *hcl.EvalContext,
	) error

	// ToCtyValue converts a native Go value into its equivalent cty.Value.
	ToCtyValue(v any) (cty.Value, error)
}
