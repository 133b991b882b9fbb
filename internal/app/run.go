package app

import (
	"context"
	"fmt"
	"time"

	"github.com/vk/sceneforge/internal/ctxlog"
	"github.com/vk/sceneforge/internal/engine"
	"github.com/vk/sceneforge/internal/hcl_adapter"
	"github.com/vk/sceneforge/internal/notify"
)

// Run builds the scene, applies the configured overrides and publishes
// each pass. In watch mode it then keeps rebuilding on file edits until
// ctx is cancelled. Outside watch mode a pass with failed nodes makes Run
// return their errors.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	publisher, err := a.setupPublishers(ctx)
	if err != nil {
		return err
	}
	a.publisher = publisher
	defer func() {
		if err := a.publisher.Close(); err != nil {
			a.logger.Warn("Failed to close publishers.", "error", err)
		}
	}()

	if a.config.ListenPort > 0 {
		if err := a.startServer(ctx); err != nil {
			return err
		}
		defer a.stopServer(ctx)
	}

	res, err := a.Pass(ctx)
	if err != nil {
		return err
	}

	if len(a.overrides) > 0 {
		if err := a.applyOverrides(ctx); err != nil {
			return err
		}
		if res, err = a.Pass(ctx); err != nil {
			return err
		}
	}

	if a.config.Watch {
		return a.watch(ctx)
	}

	if err := res.Err(); err != nil {
		return fmt.Errorf("scene has failed nodes: %w", err)
	}
	a.logger.Debug("App.Run method finished.")
	return nil
}

// setupPublishers assembles the report sinks for this run.
func (a *App) setupPublishers(ctx context.Context) (notify.Publisher, error) {
	pubs := notify.Multi{notify.LogPublisher{}}
	if a.config.ListenPort > 0 {
		pubs = append(pubs, a.hub)
	}
	if a.config.NotifyURL != "" {
		sio, err := notify.DialSocketIO(ctx, notify.SocketIOConfig{
			URL:       a.config.NotifyURL,
			Namespace: a.config.NotifyNamespace,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect notify backend: %w", err)
		}
		pubs = append(pubs, sio)
	}
	return pubs, nil
}

// applyOverrides assigns every override to the live tree. The edited
// nodes are invalidated and picked up by the next pass. An override can
// change a reference, so the tree is validated again afterwards.
func (a *App) applyOverrides(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, o := range a.overrides {
		n, err := o.Apply(a.root)
		if err != nil {
			return err
		}
		logger.Info("Override applied.", "node", n.String(), "param", o.Param)
	}
	if err := hcl_adapter.Validate(a.root); err != nil {
		return fmt.Errorf("scene is invalid after overrides: %w", err)
	}
	return nil
}

// Pass runs one mark-and-build pass over the live tree, prints the
// outcome and publishes it. Builder failures are part of the result; the
// error is reserved for contract violations.
func (a *App) Pass(ctx context.Context) (*engine.Result, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := a.logger
	a.mu.Lock()
	defer a.mu.Unlock()

	res, err := engine.MarkAndBuild(ctx, a.root)
	if err != nil {
		return res, fmt.Errorf("rebuild pass failed: %w", err)
	}
	a.seq++

	printPass(a.outW, a.seq, a.root, res)
	if a.publisher != nil {
		report := notify.NewReport(a.seq, time.Now(), res)
		if err := a.publisher.Publish(ctx, report); err != nil {
			logger.Warn("Failed to publish report.", "sequence", a.seq, "error", err)
		}
	}
	return res, nil
}
