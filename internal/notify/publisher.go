package notify

import (
	"context"

	"github.com/hashicorp/go-multierror"
	"github.com/vk/sceneforge/internal/ctxlog"
)

// Publisher delivers reports to a collaborator.
type Publisher interface {
	Publish(ctx context.Context, r *Report) error
	Close() error
}

// LogPublisher writes reports to the context logger.
type LogPublisher struct{}

// Publish implements Publisher.
func (LogPublisher) Publish(ctx context.Context, r *Report) error {
	logger := ctxlog.FromContext(ctx)
	for _, n := range r.Built {
		logger.Debug("Node rebuilt.", "path", n.Path, "kind", n.Kind, "summary", n.Summary)
	}
	for _, e := range r.Errors {
		logger.Error("Node failed to rebuild.", "path", e.Path, "kind", e.Kind, "error", e.Error)
	}
	logger.Info("Scene updated.",
		"sequence", r.Sequence,
		"built", len(r.Built),
		"failed", len(r.Errors),
		"stale", len(r.Stale),
	)
	return nil
}

// Close implements Publisher.
func (LogPublisher) Close() error { return nil }

// Multi publishes to every publisher and aggregates their errors.
type Multi []Publisher

// Publish implements Publisher.
func (m Multi) Publish(ctx context.Context, r *Report) error {
	var merr *multierror.Error
	for _, p := range m {
		if err := p.Publish(ctx, r); err != nil {
			merr = multierror.Append(merr, err)
		}
	}
	return merr.ErrorOrNil()
}

// Close implements Publisher.
func (m Multi) Close() error {
	var merr *multierror.Error
	for _, p := range m {
		if err := p.Close(); err != nil {
			merr = multierror.Append(merr, err)
		}
	}
	return merr.ErrorOrNil()
}
