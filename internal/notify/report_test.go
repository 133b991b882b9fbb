package notify

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/sceneforge/internal/builder"
	"github.com/vk/sceneforge/internal/ctxlog"
	"github.com/vk/sceneforge/internal/engine"
	"github.com/vk/sceneforge/internal/geom"
	"github.com/vk/sceneforge/internal/scene"
	"github.com/vk/sceneforge/modules/profiles"
)

var at = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func sampleResult(t *testing.T) *engine.Result {
	t.Helper()
	root := scene.New("scene", nil)
	ok := scene.New("ok", profiles.NewRectangle())
	bad := scene.New("bad", &profiles.Rectangle{Width: -1, Height: 1})
	require.NoError(t, root.AddChild(ok))
	require.NoError(t, root.AddChild(bad))
	res, err := engine.MarkAndBuild(ctxlog.Discard(context.Background()), root)
	require.NoError(t, err)
	return res
}

func TestNewReport(t *testing.T) {
	res := sampleResult(t)

	r := NewReport(7, at, res)

	assert.Equal(t, uint64(7), r.Sequence)
	assert.Equal(t, at, r.Time)
	require.Len(t, r.Built, 1)
	assert.Equal(t, "ok", r.Built[0].Path)
	assert.Equal(t, profiles.RectangleKind, r.Built[0].Kind)
	assert.Equal(t, res.Built[0].ID().String(), r.Built[0].ID)
	assert.Contains(t, r.Built[0].Summary, "profile(points=4")

	require.Len(t, r.Errors, 1)
	assert.Equal(t, "bad", r.Errors[0].Path)
	assert.ErrorIs(t, res.Errors[0], geom.ErrNonPositive)
	assert.Contains(t, r.Errors[0].Error, "dimension must be positive")

	require.Len(t, r.Stale, 1, "the root was rebuilt over the failed child")
	assert.Equal(t, "scene", r.Stale[0].Path)
	assert.False(t, r.OK())
}

func TestReport_Map(t *testing.T) {
	r := NewReport(1, at, &engine.Result{Built: []*scene.Node{scene.New("n", nil)}})

	m, err := r.Map()

	require.NoError(t, err)
	assert.Equal(t, float64(1), m["sequence"])
	built := m["built"].([]any)
	require.Len(t, built, 1)
	assert.Equal(t, "identity", built[0].(map[string]any)["kind"])
	assert.NotContains(t, m, "errors")
}

func TestLogPublisher(t *testing.T) {
	var buf bytes.Buffer
	ctx := ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(&buf, nil)))

	err := LogPublisher{}.Publish(ctx, NewReport(3, at, sampleResult(t)))

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, `msg="Scene updated."`)
	assert.Contains(t, out, "sequence=3")
	assert.Contains(t, out, `msg="Node failed to rebuild."`)
	assert.NoError(t, LogPublisher{}.Close())
}

type recordingPublisher struct {
	got    []*Report
	err    error
	closed bool
}

func (p *recordingPublisher) Publish(_ context.Context, r *Report) error {
	p.got = append(p.got, r)
	return p.err
}

func (p *recordingPublisher) Close() error {
	p.closed = true
	return p.err
}

func TestMulti(t *testing.T) {
	ok := &recordingPublisher{}
	failing := &recordingPublisher{err: errors.New("offline")}
	m := Multi{ok, failing}
	r := NewReport(1, at, &engine.Result{})

	err := m.Publish(context.Background(), r)

	assert.ErrorContains(t, err, "offline")
	assert.Equal(t, []*Report{r}, ok.got, "a failing publisher does not stop the others")
	assert.Equal(t, []*Report{r}, failing.got)

	assert.ErrorContains(t, m.Close(), "offline")
	assert.True(t, ok.closed)
	assert.NoError(t, Multi{ok}.Publish(context.Background(), r))
}

func TestNewReport_WithBuildError(t *testing.T) {
	n := scene.New("x", profiles.NewCircle())
	res := &engine.Result{Errors: []*builder.BuildError{builder.Failf(n, "broken")}}

	r := NewReport(2, at, res)

	require.Len(t, r.Errors, 1)
	assert.Equal(t, "broken", r.Errors[0].Error)
	assert.Equal(t, profiles.CircleKind, r.Errors[0].Kind)
}
