package engine

import (
	"context"

	"github.com/vk/sceneforge/internal/ctxlog"
	"github.com/vk/sceneforge/internal/scene"
)

// MarkAndBuild runs a full pass over root and reports what changed. Callers
// invalidate the nodes they edited before calling it.
//
// A non-nil error is always a *ContractViolation; builder failures are
// reported through Result.Errors instead.
func MarkAndBuild(ctx context.Context, root *scene.Node) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Rebuild pass started.", "root", root.String())

	p := NewPass(ctx, root)
	if err := p.Mark(root); err != nil {
		logger.Error("Rebuild pass aborted during mark.", "root", root.String(), "error", err)
		return nil, err
	}
	if err := p.Build(root); err != nil {
		logger.Error("Rebuild pass aborted during build.", "root", root.String(), "error", err)
		return p.Result(), err
	}

	res := p.Result()
	logger.Info("Rebuild pass finished.",
		"root", root.String(),
		"marked", res.Marked,
		"invoked", res.Invoked,
		"built", len(res.Built),
		"failed", len(res.Errors),
		"stale", len(res.Stale),
	)
	return res, nil
}
