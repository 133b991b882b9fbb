package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/sceneforge/internal/builder"
	"github.com/vk/sceneforge/internal/scene"
)

func TestMarkAndBuild_FirstPassBuildsDependenciesFirst(t *testing.T) {
	// --- Arrange ---
	w := &world{}
	leaf := w.node(t, "leaf")
	mid := w.node(t, "mid", leaf)
	root := w.node(t, "root", mid)

	// --- Act ---
	res, err := MarkAndBuild(testCtx(), root)

	// --- Assert ---
	require.NoError(t, err)
	require.NoError(t, res.Err())
	assert.Equal(t, []string{"leaf", "mid", "root"}, w.journal)
	assert.Equal(t, []string{"leaf", "mid", "root"}, names(res.Built))
	assert.Equal(t, 3, res.Marked)
	assert.Equal(t, 3, res.Invoked)
	root.Walk(func(n *scene.Node) bool {
		assert.False(t, n.Invalidated(), "node %s should be clean", n)
		return true
	})
}

func TestMarkAndBuild_SecondPassIsIdle(t *testing.T) {
	// --- Arrange ---
	w := &world{}
	root := w.node(t, "root", w.node(t, "a", w.node(t, "a1")), w.node(t, "b"))
	settle(t, w, root)

	// --- Act ---
	res, err := MarkAndBuild(testCtx(), root)

	// --- Assert ---
	require.NoError(t, err)
	assert.Empty(t, res.Built)
	assert.Empty(t, w.journal)
	assert.Zero(t, res.Invoked)
	assert.Equal(t, 4, res.Marked)
}

func TestMarkAndBuild_PropagatesToAncestorsOnly(t *testing.T) {
	// --- Arrange ---
	w := &world{}
	a1 := w.node(t, "a1")
	a := w.node(t, "a", a1)
	b := w.node(t, "b", w.node(t, "b1"))
	root := w.node(t, "root", a, b)
	settle(t, w, root)

	// --- Act ---
	a1.Invalidate()
	res, err := MarkAndBuild(testCtx(), root)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "a", "root"}, w.journal)
	assert.Equal(t, []string{"a1", "a", "root"}, names(res.Built))
	assert.False(t, res.WasBuilt(b))
}

func TestMarkAndBuild_UnchangedNodesAreNotReported(t *testing.T) {
	// --- Arrange ---
	w := &world{}
	leaf := w.node(t, "leaf")
	root := w.node(t, "root", leaf)
	settle(t, w, root)
	recorderOf(leaf).unchanged = true

	// --- Act ---
	leaf.Invalidate()
	res, err := MarkAndBuild(testCtx(), root)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, []string{"leaf", "root"}, w.journal, "dependents still rebuild after a no-op rebuild")
	assert.Equal(t, []string{"root"}, names(res.Built))
	assert.False(t, leaf.Invalidated())
}

func TestMarkAndBuild_DiamondRebuildsSharedDependencyOnce(t *testing.T) {
	// --- Arrange ---
	w := &world{}
	shared := w.node(t, "shared")
	left := w.node(t, "left")
	right := w.node(t, "right")
	top := w.node(t, "top")
	root := w.node(t, "root", shared, left, right, top)
	recorderOf(left).deps = []*scene.Node{shared}
	recorderOf(right).deps = []*scene.Node{shared}
	recorderOf(top).deps = []*scene.Node{left, right}
	settle(t, w, root)

	// --- Act ---
	shared.Invalidate()
	res, err := MarkAndBuild(testCtx(), root)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, []string{"shared", "left", "right", "top", "root"}, w.journal)
	assert.Equal(t, 5, res.Invoked)
}

func TestMarkAndBuild_OutOfHierarchyDependency(t *testing.T) {
	// --- Arrange ---
	w := &world{}
	external := w.node(t, "external")
	otherRoot := w.node(t, "other", external)
	consumer := w.node(t, "consumer")
	recorderOf(consumer).deps = []*scene.Node{external}
	root := w.node(t, "root", consumer)
	settle(t, w, root)
	settle(t, w, otherRoot)

	// --- Act ---
	external.Invalidate()
	res, err := MarkAndBuild(testCtx(), root)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, []string{"external", "consumer", "root"}, w.journal)
	assert.True(t, res.WasBuilt(external))
	assert.False(t, external.Invalidated())
	assert.False(t, otherRoot.Invalidated(), "the other tree's root is not reachable from this pass")
}

func TestMarkAndBuild_ErrorIsolation(t *testing.T) {
	// --- Arrange ---
	w := &world{}
	bad := w.node(t, "bad")
	badParent := w.node(t, "badParent", bad)
	good := w.node(t, "good")
	goodParent := w.node(t, "goodParent", good)
	root := w.node(t, "root", badParent, goodParent)
	settle(t, w, root)

	recorderOf(bad).err = errBoom
	bad.Invalidate()
	good.Invalidate()

	// --- Act ---
	res, err := MarkAndBuild(testCtx(), root)

	// --- Assert ---
	require.NoError(t, err, "a builder failure must not abort the pass")
	require.Len(t, res.Errors, 1)
	assert.Same(t, bad, res.Errors[0].Node)
	assert.ErrorIs(t, res.Errors[0], errBoom)
	assert.Equal(t, "recorder", res.Errors[0].Kind)

	assert.Equal(t, []string{"bad", "badParent", "good", "goodParent", "root"}, w.journal,
		"dependents of a failed node are still rebuilt")
	assert.Equal(t, []string{"badParent", "good", "goodParent", "root"}, names(res.Built))
	assert.False(t, res.WasBuilt(bad))
	assert.Equal(t, []string{"badParent", "root"}, names(res.Stale))

	assert.True(t, bad.Invalidated(), "failed nodes keep their request for the next pass")
	assert.False(t, badParent.Invalidated())
	assert.False(t, good.Invalidated())

	var buildErr *builder.BuildError
	require.ErrorAs(t, res.Err(), &buildErr)
	assert.Same(t, bad, buildErr.Node)
}

func TestMarkAndBuild_RetriesFailedNodeAfterFix(t *testing.T) {
	// --- Arrange ---
	w := &world{}
	bad := w.node(t, "bad")
	root := w.node(t, "root", bad)
	recorderOf(bad).err = errBoom

	first, err := MarkAndBuild(testCtx(), root)
	require.NoError(t, err)
	require.Len(t, first.Errors, 1)
	w.reset()

	// --- Act ---
	recorderOf(bad).err = nil
	second, err := MarkAndBuild(testCtx(), root)

	// --- Assert ---
	require.NoError(t, err)
	assert.NoError(t, second.Err())
	assert.Equal(t, []string{"bad", "root"}, w.journal)
	assert.Empty(t, second.Stale)
}

func TestMarkAndBuild_DiamondWithFailedSharedDependency(t *testing.T) {
	// --- Arrange ---
	w := &world{}
	shared := w.node(t, "shared")
	left := w.node(t, "left")
	right := w.node(t, "right")
	root := w.node(t, "root", shared, left, right)
	recorderOf(left).deps = []*scene.Node{shared}
	recorderOf(right).deps = []*scene.Node{shared}
	recorderOf(shared).err = errBoom

	// --- Act ---
	res, err := MarkAndBuild(testCtx(), root)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, []string{"shared", "left", "right", "root"}, w.journal, "the failing builder runs once")
	assert.Len(t, res.Errors, 1)
	assert.Equal(t, []string{"left", "right", "root"}, names(res.Built))
	assert.Equal(t, []string{"left", "right", "root"}, names(res.Stale))
}

func TestMarkAndBuild_DependentOfFailedNodeCanFailOnItsOwn(t *testing.T) {
	// --- Arrange ---
	w := &world{}
	bad := w.node(t, "bad")
	consumer := w.node(t, "consumer", bad)
	root := w.node(t, "root", consumer)
	recorderOf(bad).err = errBoom
	recorderOf(consumer).err = errBoom

	// --- Act ---
	res, err := MarkAndBuild(testCtx(), root)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, []string{"bad", "consumer", "root"}, w.journal)
	require.Len(t, res.Errors, 2)
	assert.Same(t, consumer, res.Errors[1].Node)
	assert.Equal(t, []string{"root"}, names(res.Stale), "stale propagates through a failed dependent")
	assert.True(t, consumer.Invalidated())
}

func TestMarkAndBuild_CycleIsContractViolation(t *testing.T) {
	// --- Arrange ---
	w := &world{}
	a := w.node(t, "a")
	b := w.node(t, "b")
	root := w.node(t, "root", a, b)
	recorderOf(a).deps = []*scene.Node{b}
	recorderOf(b).deps = []*scene.Node{a}

	// --- Act ---
	res, err := MarkAndBuild(testCtx(), root)

	// --- Assert ---
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, ErrContractViolation))

	var violation *ContractViolation
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, []string{"a", "b", "a"}, names(violation.Cycle))
	assert.Contains(t, err.Error(), "dependency cycle: a -> b -> a")
	assert.Empty(t, w.journal, "no builder runs when the graph is invalid")
	assert.True(t, a.Invalidated())
}

func TestMarkAndBuild_SelfDependency(t *testing.T) {
	// --- Arrange ---
	w := &world{}
	loop := w.node(t, "loop")
	recorderOf(loop).deps = []*scene.Node{loop}
	root := w.node(t, "root", loop)

	// --- Act ---
	_, err := MarkAndBuild(testCtx(), root)

	// --- Assert ---
	var violation *ContractViolation
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, []string{"loop", "loop"}, names(violation.Cycle))
}

func TestMarkAndBuild_IdentityNodesTraverseChildren(t *testing.T) {
	// --- Arrange ---
	w := &world{}
	leaf := w.node(t, "leaf")
	group := scene.New("group", nil)
	require.NoError(t, group.AddChild(leaf))
	root := scene.New("root", nil)
	require.NoError(t, root.AddChild(group))
	settle(t, w, root)

	// --- Act ---
	leaf.Invalidate()
	res, err := MarkAndBuild(testCtx(), root)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, []string{"leaf"}, names(res.Built), "identity rebuilds never report a change")
	assert.Equal(t, 3, res.Invoked)
	assert.False(t, group.Invalidated())
}
