// This file contains the logic for translating HCL schema structs into the
// format-agnostic scene model defined in the config package.

package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/vk/sceneforge/internal/config"
	"github.com/vk/sceneforge/internal/ctxlog"
	"github.com/vk/sceneforge/internal/nodeid"
)

// translateNode converts a node block and its nested blocks into the agnostic model.
func (l *Loader) translateNode(ctx context.Context, b *NodeBlock, file string) (*config.NodeDef, error) {
	logger := ctxlog.FromContext(ctx).With("node_kind", b.Kind, "node_name", b.Name)
	ctx = ctxlog.WithLogger(ctx, logger)

	logger.Debug("Translating HCL node to internal config model.")

	if err := nodeid.ValidateName(b.Name); err != nil {
		return nil, fmt.Errorf("%s: node %q: %w", file, b.Name, err)
	}

	args, diags := extractBodyAttributes(b.Arguments)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%s: arguments of node %q: %w", file, b.Name, diags)
	}

	instancingMode := config.ModeSingular
	if isExprDefined(ctx, b.Count, "count") {
		logger.Debug("`count` attribute is defined. Marking node as instanced.")
		instancingMode = config.ModeInstanced
	}

	def := &config.NodeDef{
		Kind:       b.Kind,
		Name:       b.Name,
		Count:      b.Count,
		Instancing: instancingMode,
		Arguments:  args,
		Source:     file,
	}
	for _, child := range b.Nodes {
		childDef, err := l.translateNode(ctx, child, file)
		if err != nil {
			return nil, err
		}
		def.Children = append(def.Children, childDef)
	}
	return def, nil
}
