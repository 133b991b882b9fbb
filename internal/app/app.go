package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"github.com/vk/sceneforge/internal/config"
	"github.com/vk/sceneforge/internal/ctxlog"
	"github.com/vk/sceneforge/internal/hcl_adapter"
	"github.com/vk/sceneforge/internal/notify"
	"github.com/vk/sceneforge/internal/registry"
	"github.com/vk/sceneforge/internal/scene"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	loader   config.Loader
	registry *registry.Registry

	overrides []*hcl_adapter.Override

	// mu serializes passes over root. The watcher and Run share it.
	mu   sync.Mutex
	root *scene.Node
	seq  uint64

	hub        *notify.Hub
	publisher  notify.Publisher
	httpServer *http.Server
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and registry, and
// the scene already loaded into a live tree that has not been built yet.
func NewApp(outW io.Writer, cfg *Config, loader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	if len(modules) == 0 {
		modules = coreModules
	}
	reg := registry.New(modules...)
	logger.Debug("All builder modules registered.", "count", len(modules), "kinds", reg.Kinds())

	if err := reg.ValidateRegistry(ctx); err != nil {
		// A builder that cannot be described to the loader is a programmer error.
		panic(err)
	}
	logger.Debug("Registry validation passed.")

	overrides := make([]*hcl_adapter.Override, 0, len(cfg.Overrides))
	for _, raw := range cfg.Overrides {
		o, err := hcl_adapter.ParseOverride(raw)
		if err != nil {
			panic(fmt.Errorf("failed to parse override: %w", err))
		}
		overrides = append(overrides, o)
	}

	a := &App{
		outW:      outW,
		logger:    logger,
		config:    cfg,
		loader:    loader,
		registry:  reg,
		overrides: overrides,
		hub:       notify.NewHub(logger),
	}

	root, err := a.loadScene(ctx)
	if err != nil {
		// A scene that cannot be loaded at startup is fatal.
		panic(fmt.Errorf("failed to load scene: %w", err))
	}
	a.root = root
	logger.Debug("Scene loaded.", "nodes", root.Count())

	return a
}

// loadScene reads the scene files into a fresh tree.
func (a *App) loadScene(ctx context.Context) (*scene.Node, error) {
	model, conv, err := a.loader.Load(ctx, a.config.ScenePath)
	if err != nil {
		return nil, err
	}
	return hcl_adapter.BuildScene(ctx, model, conv, a.registry)
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// ScenePath returns the scene file or directory the app loads.
func (a *App) ScenePath() string { return a.config.ScenePath }

// Root returns the live scene tree.
func (a *App) Root() *scene.Node {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.root
}
