package executor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/renamer/internal/planner"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func testPlan(ops ...planner.Operation) *planner.Plan {
	return &planner.Plan{ID: uuid.New(), Project: "C123456", Ops: ops}
}

func op(src, dst string) planner.Operation {
	return planner.Operation{Source: src, Destination: dst, OriginalName: filepath.Base(src)}
}

func TestExecute_RenamesInOrder(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.jpg")
	b := filepath.Join(dir, "b.jpg")
	writeFile(t, a)
	writeFile(t, b)

	exec := New(zerolog.Nop())
	plan := testPlan(
		op(a, filepath.Join(dir, "C1234_L1_1.jpg")),
		op(b, filepath.Join(dir, "C1234_L1_2.jpg")),
	)

	report, err := exec.Execute(context.Background(), plan, nil)
	require.NoError(t, err)

	c := report.Counts()
	assert.Equal(t, 2, c.Succeeded)
	assert.Equal(t, 0, c.Failed)
	assert.NoFileExists(t, a)
	assert.FileExists(t, filepath.Join(dir, "C1234_L1_1.jpg"))
	assert.FileExists(t, filepath.Join(dir, "C1234_L1_2.jpg"))
}

func TestExecute_ChainedRenameReusesVacatedName(t *testing.T) {
	// a occupies the name b wants; a is renamed away first.
	dir := t.TempDir()
	a := filepath.Join(dir, "first.jpg")
	b := filepath.Join(dir, "second.jpg")
	writeFile(t, a)
	writeFile(t, b)

	exec := New(zerolog.Nop())
	plan := testPlan(
		op(a, filepath.Join(dir, "moved.jpg")),
		op(b, filepath.Join(dir, "first.jpg")),
	)

	report, err := exec.Execute(context.Background(), plan, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Counts().Succeeded)
	assert.FileExists(t, filepath.Join(dir, "moved.jpg"))
	assert.FileExists(t, filepath.Join(dir, "first.jpg"))
}

func TestExecute_PartialFailureIsolation(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.jpg")
	c := filepath.Join(dir, "c.jpg")
	writeFile(t, a)
	writeFile(t, c)
	// b never exists: operation 2 must fail without touching 1 or 3.

	exec := New(zerolog.Nop())
	plan := testPlan(
		op(a, filepath.Join(dir, "a2.jpg")),
		op(filepath.Join(dir, "b.jpg"), filepath.Join(dir, "b2.jpg")),
		op(c, filepath.Join(dir, "c2.jpg")),
	)

	report, err := exec.Execute(context.Background(), plan, nil)
	require.NoError(t, err)

	require.Len(t, report.Ops, 3)
	assert.Equal(t, planner.StatusSucceeded, report.Ops[0].Status)
	assert.Equal(t, planner.StatusFailed, report.Ops[1].Status)
	assert.Equal(t, planner.FailSourceMissing, report.Ops[1].Reason)
	assert.Equal(t, planner.StatusSucceeded, report.Ops[2].Status, "operations after a failure must still run")
	assert.FileExists(t, filepath.Join(dir, "a2.jpg"), "no cascading rollback")
}

func TestExecute_DestinationExists(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.jpg")
	dst := filepath.Join(dir, "dst.jpg")
	writeFile(t, src)
	writeFile(t, dst)

	exec := New(zerolog.Nop())
	report, err := exec.Execute(context.Background(), testPlan(op(src, dst)), nil)
	require.NoError(t, err)

	assert.Equal(t, planner.StatusFailed, report.Ops[0].Status)
	assert.Equal(t, planner.FailDestinationExists, report.Ops[0].Reason)
	assert.FileExists(t, src, "source must be left untouched")
}

func TestExecute_CaseCollidingDestinationIsNotOverwritten(t *testing.T) {
	// On a case-sensitive filesystem "photo.JPG" and "photo.jpg" are distinct
	// files; renaming onto the latter must fail, not clobber it.
	dir := t.TempDir()
	src := filepath.Join(dir, "photo.JPG")
	dst := filepath.Join(dir, "photo.jpg")
	require.NoError(t, os.WriteFile(src, []byte("source"), 0o644))
	require.NoError(t, os.WriteFile(dst, []byte("unrelated"), 0o644))

	si, err := os.Lstat(src)
	require.NoError(t, err)
	di, err := os.Lstat(dst)
	require.NoError(t, err)
	if os.SameFile(si, di) {
		t.Skip("filesystem is case-insensitive")
	}

	exec := New(zerolog.Nop())
	report, err := exec.Execute(context.Background(), testPlan(op(src, dst)), nil)
	require.NoError(t, err)

	assert.Equal(t, planner.StatusFailed, report.Ops[0].Status)
	assert.Equal(t, planner.FailDestinationExists, report.Ops[0].Reason)
	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "unrelated", string(got), "pre-existing destination must survive untouched")
	assert.FileExists(t, src)
}

func TestExecute_CaseOnlyRename(t *testing.T) {
	// Extension lower-casing produces destinations differing from the source
	// only by case; that rename must go through on any filesystem.
	dir := t.TempDir()
	src := filepath.Join(dir, "photo.JPG")
	writeFile(t, src)

	exec := New(zerolog.Nop())
	report, err := exec.Execute(context.Background(), testPlan(op(src, filepath.Join(dir, "photo.jpg"))), nil)
	require.NoError(t, err)

	assert.Equal(t, planner.StatusSucceeded, report.Ops[0].Status)
	assert.FileExists(t, filepath.Join(dir, "photo.jpg"))
}

func TestExecute_NoOpSkipped(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "C1234_L1.jpg")
	writeFile(t, src)

	exec := New(zerolog.Nop())
	o := op(src, src)
	o.NoOp = true
	report, err := exec.Execute(context.Background(), testPlan(o), nil)
	require.NoError(t, err)

	c := report.Counts()
	assert.Equal(t, 1, c.Skipped)
	assert.Equal(t, 0, c.Failed, "a no-op is not a failure")
	assert.FileExists(t, src)
}

func TestExecute_CancellationLeavesRestPending(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.jpg")
	b := filepath.Join(dir, "b.jpg")
	writeFile(t, a)
	writeFile(t, b)

	ctx, cancel := context.WithCancel(context.Background())
	exec := New(zerolog.Nop())
	plan := testPlan(
		op(a, filepath.Join(dir, "a2.jpg")),
		op(b, filepath.Join(dir, "b2.jpg")),
	)

	// Cancel after the first operation completes.
	progress := func(done, total int) {
		if done == 1 {
			cancel()
		}
	}
	report, err := exec.Execute(ctx, plan, progress)
	require.NoError(t, err)
	defer cancel()

	assert.True(t, report.Cancelled)
	assert.Equal(t, planner.StatusSucceeded, report.Ops[0].Status, "completed work is not rolled back")
	assert.Equal(t, planner.StatusPending, report.Ops[1].Status)
	assert.FileExists(t, filepath.Join(dir, "a2.jpg"))
	assert.FileExists(t, b)
}

func TestExecute_RejectsOverlappingRuns(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.jpg")
	writeFile(t, a)

	exec := New(zerolog.Nop())

	// Park a run inside its progress callback, then poke at the guard.
	started := make(chan struct{})
	release := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		plan := testPlan(op(a, filepath.Join(dir, "a2.jpg")))
		_, err := exec.Execute(context.Background(), plan, func(done, total int) {
			close(started)
			<-release
		})
		assert.NoError(t, err)
	}()

	<-started
	_, err := exec.Execute(context.Background(), testPlan(), nil)
	assert.ErrorIs(t, err, ErrBusy)
	_, err = exec.ExecuteReverse(context.Background(), nil, nil)
	assert.ErrorIs(t, err, ErrBusy)

	close(release)
	<-finished

	// The guard is released once the run finishes.
	b := filepath.Join(dir, "b.jpg")
	writeFile(t, b)
	_, err = exec.Execute(context.Background(), testPlan(op(b, filepath.Join(dir, "b2.jpg"))), nil)
	assert.NoError(t, err)
}

func TestExecuteReverse_RestoresInReverseOrder(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.jpg")
	b := filepath.Join(dir, "b.jpg")
	writeFile(t, a)
	writeFile(t, b)

	exec := New(zerolog.Nop())
	plan := testPlan(
		op(a, filepath.Join(dir, "r1.jpg")),
		op(b, filepath.Join(dir, "r2.jpg")),
	)
	forward, err := exec.Execute(context.Background(), plan, nil)
	require.NoError(t, err)
	require.Equal(t, 2, forward.Counts().Succeeded)

	reverse, err := exec.ExecuteReverse(context.Background(), forward.Succeeded(), nil)
	require.NoError(t, err)

	assert.Equal(t, Reverse, reverse.Direction)
	assert.Equal(t, 2, reverse.Counts().Succeeded)
	// Last renamed is restored first.
	assert.Equal(t, filepath.Join(dir, "r2.jpg"), reverse.Ops[0].Source)
	assert.FileExists(t, a)
	assert.FileExists(t, b)
}

func TestExecuteReverse_ToleratesDivergedState(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.jpg")
	b := filepath.Join(dir, "b.jpg")
	writeFile(t, a)
	writeFile(t, b)

	exec := New(zerolog.Nop())
	plan := testPlan(
		op(a, filepath.Join(dir, "r1.jpg")),
		op(b, filepath.Join(dir, "r2.jpg")),
	)
	forward, err := exec.Execute(context.Background(), plan, nil)
	require.NoError(t, err)

	// The user deleted one renamed file before undoing.
	require.NoError(t, os.Remove(filepath.Join(dir, "r1.jpg")))

	reverse, err := exec.ExecuteReverse(context.Background(), forward.Succeeded(), nil)
	require.NoError(t, err)

	c := reverse.Counts()
	assert.Equal(t, 1, c.Succeeded)
	assert.Equal(t, 1, c.Failed)
	assert.FileExists(t, b, "the surviving file is still restored")
}

func TestReportSummary(t *testing.T) {
	r := &Report{Ops: []planner.Operation{
		{Status: planner.StatusSucceeded},
		{Status: planner.StatusFailed, Reason: planner.FailSourceMissing},
		{Status: planner.StatusSkipped},
		{Status: planner.StatusPending},
	}}
	assert.Equal(t, "1 renamed, 1 failed, 1 skipped, 1 not attempted", r.Summary())

	r.Direction = Reverse
	assert.Equal(t, "1 restored, 1 failed, 1 skipped, 1 not attempted", r.Summary())
}
