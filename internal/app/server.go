package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/vk/sceneforge/internal/ctxlog"
)

// healthHandler answers liveness checks.
func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	a.logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

// router exposes the health check and the report stream.
func (a *App) router() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", a.healthHandler).Methods(http.MethodGet)
	r.Handle("/ws", a.hub)

	h := handlers.RecoveryHandler(handlers.PrintRecoveryStack(a.config.LogLevel == "debug"))(r)
	return handlers.LoggingHandler(a.outW, h)
}

// startServer binds the listen port and serves in the background.
func (a *App) startServer(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	addr := fmt.Sprintf(":%d", a.config.ListenPort)

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	a.httpServer = &http.Server{
		Handler:           a.router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting.", "health", fmt.Sprintf("http://localhost%s/health", addr), "stream", fmt.Sprintf("ws://localhost%s/ws", addr))
		// Serve returns ErrServerClosed on graceful shutdown.
		if err := a.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed unexpectedly.", "error", err)
		}
	}()
	return nil
}

// stopServer disconnects stream clients and shuts the server down.
func (a *App) stopServer(ctx context.Context) {
	logger := ctxlog.FromContext(ctx)
	if a.httpServer == nil {
		logger.Debug("HTTP server was not running.")
		return
	}

	_ = a.hub.Close()

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed.", "error", err)
		return
	}
	logger.Debug("HTTP server shut down gracefully.")
}
