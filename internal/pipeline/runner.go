package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/backmassage/renamer/internal/config"
	"github.com/backmassage/renamer/internal/display"
	"github.com/backmassage/renamer/internal/executor"
	"github.com/backmassage/renamer/internal/naming"
	"github.com/backmassage/renamer/internal/planner"
	"github.com/backmassage/renamer/internal/tags"
	"github.com/backmassage/renamer/internal/undo"
)

// Runner wires the planning and execution engine to the CLI: config in,
// rendered previews and reports out.
type Runner struct {
	Cfg  *config.Config
	Log  zerolog.Logger
	Out  io.Writer
	Exec *executor.Executor
	Undo *undo.Manager
}

// NewRunner returns a Runner with a fresh executor and an empty undo slot.
func NewRunner(cfg *config.Config, log zerolog.Logger, out io.Writer) *Runner {
	return &Runner{
		Cfg:  cfg,
		Log:  log,
		Out:  out,
		Exec: executor.New(log),
		Undo: undo.NewManager(),
	}
}

// BuildPlan discovers the batch for args and produces the plan plus the
// excluded list. Pure apart from discovery stats — nothing is renamed.
func (r *Runner) BuildPlan(args []string) (*planner.Plan, []planner.Excluded, error) {
	mode, err := r.Cfg.NamingMode()
	if err != nil {
		return nil, nil, err
	}

	order, err := r.tagOrder()
	if err != nil {
		return nil, nil, err
	}

	assignments, err := LoadAssignments(r.Cfg.AssignmentsFile)
	if err != nil {
		return nil, nil, err
	}

	files, err := Discover(args, r.Cfg.Recursive, r.Cfg.AcceptedExtensions())
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return nil, nil, fmt.Errorf("no files matched (accepted extensions: %v)", r.Cfg.Extensions)
	}
	r.Log.Info().Int("files", len(files)).Str("mode", string(mode)).Msg("batch discovered")

	items := BuildItems(files, r.Cfg, assignments)
	plan, excluded := planner.BuildPlan(items, r.Cfg.Project, mode, order)
	return plan, excluded, nil
}

// Preview renders the plan for args without touching the filesystem.
func (r *Runner) Preview(args []string) error {
	plan, excluded, err := r.BuildPlan(args)
	if err != nil {
		return err
	}
	display.RenderPreview(r.Out, plan, excluded)
	return nil
}

// Apply plans and executes a batch. The preview is always shown first; with
// DryRun set, execution is skipped entirely. A successful execution arms the
// undo slot; with RevertOnFailure set, any failed operation triggers an
// immediate undo of the successful subset.
func (r *Runner) Apply(ctx context.Context, args []string) (RunStats, error) {
	var stats RunStats

	plan, excluded, err := r.BuildPlan(args)
	if err != nil {
		return stats, err
	}
	stats.Discovered = len(plan.Ops) + len(excluded)
	stats.Planned = len(plan.Ops)
	stats.Excluded = len(excluded)

	display.RenderPreview(r.Out, plan, excluded)
	if plan.Empty() {
		return stats, nil
	}

	if r.Cfg.DryRun {
		r.Log.Info().Msg("dry run, no files renamed")
		return stats, nil
	}

	sizes := make(map[string]int64, len(plan.Ops))
	// Sizes are read before execution; afterwards the sources are gone.
	for _, op := range plan.Ops {
		sizes[op.Source] = sourceSize(op.Source)
	}

	report, err := r.Exec.Execute(ctx, plan, r.progress(len(plan.Ops)))
	if err != nil {
		return stats, err
	}
	display.RenderReport(r.Out, report)

	counts := report.Counts()
	stats.Renamed = counts.Succeeded
	stats.Failed = counts.Failed
	stats.Skipped = counts.Skipped
	for _, op := range report.Succeeded() {
		stats.BytesRenamed += sizes[op.Source]
	}
	if stats.BytesRenamed > 0 {
		r.Log.Info().Str("total", display.FormatBytes(stats.BytesRenamed)).Msg("renamed volume")
	}

	r.Undo.Arm(report)

	if r.Cfg.RevertOnFailure && counts.Failed > 0 && counts.Succeeded > 0 {
		r.Log.Warn().Int("failed", counts.Failed).Msg("reverting successful renames")
		reverted, err := r.Revert(ctx)
		if err != nil {
			return stats, err
		}
		stats.Reverted = reverted
	}

	return stats, nil
}

// Revert undoes the armed batch and renders its report. Returns the number
// of operations restored.
func (r *Runner) Revert(ctx context.Context) (int, error) {
	report, err := r.Undo.Undo(ctx, r.Exec, nil)
	if err != nil {
		return 0, err
	}
	display.RenderReport(r.Out, report)
	return report.Counts().Succeeded, nil
}

// progress returns the per-operation progress callback for a batch of total
// operations.
func (r *Runner) progress(total int) executor.Progress {
	return func(done, _ int) {
		r.Log.Debug().Int("done", done).Int("total", total).Msg("progress")
	}
}

// tagOrder builds the canonical tag ordering from the configured vocabulary,
// falling back to alphabetical when none is set. Batch-wide tags unknown to
// the vocabulary are worth a warning but not an error — the vocabulary is
// advisory, the resolved codes are authoritative.
func (r *Runner) tagOrder() (naming.TagOrder, error) {
	if r.Cfg.TagsFile == "" {
		return naming.AlphabeticalOrder, nil
	}

	vocab, err := tags.Load(r.Cfg.TagsFile)
	if err != nil {
		return nil, err
	}
	for _, t := range r.Cfg.Tags {
		if !vocab.Contains(t) {
			r.Log.Warn().Str("tag", t).Msg("tag not in vocabulary")
		}
	}
	return vocab.Order(), nil
}

// sourceSize returns the file size, or 0 when it cannot be read.
func sourceSize(path string) int64 {
	fi, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return fi.Size()
}
