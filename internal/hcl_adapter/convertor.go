package hcl_adapter

import (
	"context"
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/sceneforge/internal/builder"
	"github.com/vk/sceneforge/internal/ctxlog"
	"github.com/vk/sceneforge/internal/scene"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Converter is the HCL-specific implementation of the config.Converter interface.
type Converter struct{}

// NewConverter creates a new HCL converter.
func NewConverter() *Converter {
	return &Converter{}
}

// ToCtyValue converts a native Go value into its corresponding cty.Value.
func (c *Converter) ToCtyValue(v any) (cty.Value, error) {
	if v == nil {
		return cty.NilVal, nil
	}
	ty, err := gocty.ImpliedType(v)
	if err != nil {
		return cty.NilVal, fmt.Errorf("unable to infer cty.Type: %w", err)
	}
	return gocty.ToCtyValue(v, ty)
}

// DecodeArguments evaluates each argument and assigns it to the builder
// parameter of the same name. Every problem is reported as a diagnostic
// pointing at the offending expression.
func (c *Converter) DecodeArguments(
	ctx context.Context,
	b scene.Builder,
	args map[string]hcl.Expression,
	evalCtx *hcl.EvalContext,
) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Starting HCL argument decoding.", "kind", b.Kind(), "arguments", len(args))

	params, err := builder.Params(b)
	if err != nil {
		return err
	}
	byName := make(map[string]builder.Param, len(params))
	for _, p := range params {
		byName[p.Name] = p
	}

	names := make([]string, 0, len(args))
	for name := range args {
		names = append(names, name)
	}
	sort.Strings(names)

	var diags hcl.Diagnostics
	for _, name := range names {
		expr := args[name]
		p, ok := byName[name]
		if !ok {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Unsupported argument",
				Detail:   fmt.Sprintf("An argument named %q is not expected for builder kind %q.", name, b.Kind()),
				Subject:  expr.Range().Ptr(),
			})
			continue
		}

		val, valDiags := expr.Value(evalCtx)
		diags = append(diags, valDiags...)
		if valDiags.HasErrors() {
			continue
		}
		if err := p.Set(val); err != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid argument value",
				Detail:   err.Error(),
				Subject:  expr.Range().Ptr(),
			})
		}
	}

	if diags.HasErrors() {
		return diags
	}
	logger.Debug("Finished HCL argument decoding successfully.", "kind", b.Kind())
	return nil
}
