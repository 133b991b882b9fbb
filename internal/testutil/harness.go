// Package testutil provides a harness for tests that drive the whole
// application against scene files written to a temporary directory.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/sceneforge/internal/app"
	"github.com/vk/sceneforge/internal/hcl_adapter"
	"github.com/vk/sceneforge/internal/registry"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// WriteScene writes files, keyed by path relative to a fresh temporary
// directory, and returns that directory.
func WriteScene(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

// HarnessResult holds the outcomes of a harness run.
type HarnessResult struct {
	Output *SafeBuffer
	Err    error
	App    *app.App
}

// NewApp writes the scene files and constructs an application over them.
// Startup panics are recovered into Err. mutate, when non-nil, adjusts the
// configuration before it is validated.
func NewApp(t *testing.T, files map[string]string, mutate func(*app.Config), modules ...registry.Module) *HarnessResult {
	t.Helper()

	cfg := app.Config{
		ScenePath: WriteScene(t, files),
		LogLevel:  "debug",
		LogFormat: "text",
	}
	if mutate != nil {
		mutate(&cfg)
	}
	validated, err := app.NewConfig(cfg)
	require.NoError(t, err)

	out := &SafeBuffer{}
	res := &HarnessResult{Output: out}
	t.Cleanup(func() {
		if os.Getenv("SCENEFORGE_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), out.String())
		}
	})

	func() {
		defer func() {
			if r := recover(); r != nil {
				res.Err = fmt.Errorf("application startup panicked | %v", r)
			}
		}()
		res.App = app.NewApp(out, validated, hcl_adapter.NewLoader(), modules...)
	}()
	return res
}

// Run constructs the application and runs it to completion.
func Run(ctx context.Context, t *testing.T, files map[string]string, mutate func(*app.Config), modules ...registry.Module) *HarnessResult {
	t.Helper()

	res := NewApp(t, files, mutate, modules...)
	if res.Err != nil {
		return res
	}
	res.Err = res.App.Run(ctx)
	return res
}
