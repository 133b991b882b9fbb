package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/sceneforge/internal/cli"
	"github.com/vk/sceneforge/internal/testutil"
)

func TestRun_PanicRecovery(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A syntax error makes scene loading inside app.NewApp panic.
	invalidHCL := `
		node "rectangle" "A" {
			arguments {
		// Missing closing brace here
	`
	dir := testutil.WriteScene(t, map[string]string{"main.hcl": invalidHCL})
	out := &bytes.Buffer{}

	// --- Act ---
	runErr := run(context.Background(), out, []string{filepath.Join(dir, "main.hcl")})

	// --- Assert ---
	require.Error(t, runErr, "run() should have returned an error after recovering from a panic")
	require.Contains(t, runErr.Error(), "application startup panicked")
	require.Contains(t, runErr.Error(), "failed to parse")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, []string{"-h"})

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), "Usage:")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_BuildsScene(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := testutil.WriteScene(t, map[string]string{
		"walls.hcl": `
node "rectangle" "outline" {
  arguments {
    width  = 4
    height = 3
  }
}
node "extrude" "wall" {
  count = 2
  arguments {
    profile = "outline"
    depth   = 2.5
  }
}
`,
	})
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, []string{"-s", dir, "-set", "wall[1].depth=5"})

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), "pass 1: 3 built")
	require.Contains(t, out.String(), "pass 2: 1 built")
}
