package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/sceneforge/internal/engine"
	"github.com/vk/sceneforge/internal/notify"
)

func newServerApp(t *testing.T) *App {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)
	a := &App{
		outW:   io.Discard,
		logger: logger,
		config: &Config{LogLevel: "info"},
		hub:    notify.NewHub(logger),
	}
	t.Cleanup(func() { _ = a.hub.Close() })
	return a
}

func TestRouter_Health(t *testing.T) {
	// --- Arrange ---
	srv := httptest.NewServer(newServerApp(t).router())
	defer srv.Close()

	// --- Act ---
	resp, err := http.Get(srv.URL + "/health")

	// --- Assert ---
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK\n", string(body))
}

func TestRouter_HealthRejectsPost(t *testing.T) {
	srv := httptest.NewServer(newServerApp(t).router())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/health", "text/plain", nil)

	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestRouter_StreamReplaysLastReport(t *testing.T) {
	// --- Arrange ---
	a := newServerApp(t)
	srv := httptest.NewServer(a.router())
	defer srv.Close()
	require.NoError(t, a.hub.Publish(context.Background(), notify.NewReport(7, time.Now(), &engine.Result{Invoked: 3})))

	// --- Act ---
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	defer conn.Close()

	// --- Assert ---
	var got notify.Report
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, uint64(7), got.Sequence)
	assert.Equal(t, 3, got.Invoked)
}
