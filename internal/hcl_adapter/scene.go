package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/sceneforge/internal/config"
	"github.com/vk/sceneforge/internal/ctxlog"
	"github.com/vk/sceneforge/internal/registry"
	"github.com/vk/sceneforge/internal/scene"
)

// RootName is the name of the root node every scene is built under.
const RootName = "scene"

// BuildScene instantiates a loaded model into a live tree. Builders come
// from the registry and receive their decoded arguments; the result is
// validated so the first rebuild pass cannot hit a dangling reference or a
// dependency cycle. Every node of the returned tree is invalidated.
func BuildScene(ctx context.Context, model *config.Model, conv config.Converter, reg *registry.Registry) (*scene.Node, error) {
	logger := ctxlog.FromContext(ctx)

	root := scene.New(RootName, nil)
	evalCtx := newEvalContext()
	if model.Scene != nil {
		for _, def := range model.Scene.Nodes {
			if err := instantiate(ctx, root, def, conv, reg, evalCtx); err != nil {
				return nil, err
			}
		}
	}

	if err := Validate(root); err != nil {
		return nil, err
	}

	logger.Debug("Scene instantiated.", "nodes", root.Count())
	return root, nil
}

// instantiate creates the node(s) for one definition under parent.
func instantiate(
	ctx context.Context,
	parent *scene.Node,
	def *config.NodeDef,
	conv config.Converter,
	reg *registry.Registry,
	evalCtx *hcl.EvalContext,
) error {
	if def.Instancing == config.ModeSingular {
		return instantiateOne(ctx, parent, def, -1, conv, reg, evalCtx)
	}

	count, err := evalCount(def.Count, evalCtx)
	if err != nil {
		return fmt.Errorf("node %q: %w", def.Name, err)
	}
	ctxlog.FromContext(ctx).Debug("Expanding counted node.", "node", def.Name, "count", count)
	for i := 0; i < count; i++ {
		if err := instantiateOne(ctx, parent, def, i, conv, reg, withCountIndex(evalCtx, i)); err != nil {
			return err
		}
	}
	return nil
}

func instantiateOne(
	ctx context.Context,
	parent *scene.Node,
	def *config.NodeDef,
	index int,
	conv config.Converter,
	reg *registry.Registry,
	evalCtx *hcl.EvalContext,
) error {
	b, err := reg.New(def.Kind)
	if err != nil {
		return fmt.Errorf("%s: node %q: %w", def.Source, def.Name, err)
	}

	var n *scene.Node
	if index >= 0 {
		n = scene.NewIndexed(def.Name, index, b)
	} else {
		n = scene.New(def.Name, b)
	}
	if err := parent.AddChild(n); err != nil {
		return fmt.Errorf("%s: %w", def.Source, err)
	}

	if err := conv.DecodeArguments(ctx, b, def.Arguments, evalCtx); err != nil {
		return fmt.Errorf("node %s: %w", n, err)
	}

	for _, child := range def.Children {
		if err := instantiate(ctx, n, child, conv, reg, evalCtx); err != nil {
			return err
		}
	}
	return nil
}
