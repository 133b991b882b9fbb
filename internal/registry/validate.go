package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/sceneforge/internal/builder"
	"github.com/vk/sceneforge/internal/ctxlog"
)

// ValidateRegistry checks that every registered constructor produces a
// builder of its own kind whose parameters can be decoded from scene files.
func (r *Registry) ValidateRegistry(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for _, kind := range r.Kinds() {
		b := r.builders[kind].New()
		if b == nil {
			errs = append(errs, fmt.Sprintf("kind '%s': constructor returned nil", kind))
			continue
		}
		if b.Kind() != kind {
			errs = append(errs, fmt.Sprintf("kind '%s': constructor returned a builder of kind '%s'", kind, b.Kind()))
		}

		params, err := builder.Params(b)
		if err != nil {
			errs = append(errs, fmt.Sprintf("kind '%s': %v", kind, err))
			continue
		}
		if len(params) == 0 {
			logger.Debug("Builder kind has no parameters.", "kind", kind)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
