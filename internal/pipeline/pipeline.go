// Package pipeline sequences the stages of a daily snapshot run:
// collect from Kalshi, then upload to Dune. Stages run strictly in
// order and the first failure aborts the run.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// A Stage is one unit of pipeline work, run to completion before the
// next stage starts.
type Stage struct {
	// Name identifies the stage in logs and errors.
	Name string

	// Run does the work. It must honor ctx cancellation.
	Run func(ctx context.Context) error
}

// Config holds orchestration settings.
type Config struct {
	// StageTimeout bounds each stage. Zero means no per-stage deadline.
	StageTimeout time.Duration
}

// Pipeline runs stages in order and stops at the first failure.
type Pipeline struct {
	cfg    Config
	stages []Stage
	logger *slog.Logger
}

// New creates a pipeline over the given stages.
func New(cfg Config, logger *slog.Logger, stages ...Stage) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		cfg:    cfg,
		stages: stages,
		logger: logger,
	}
}

// Result reports what a run did.
type Result struct {
	RunID     uuid.UUID
	Completed []string
	Failed    string // empty on success
	Duration  time.Duration
}

// Run executes the stages sequentially. There is no retry across
// stages and no rollback: a failed collect leaves yesterday's upload
// in place, a failed upload leaves today's CSVs on disk for a re-run.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	result := &Result{RunID: uuid.New()}
	logger := p.logger.With("run_id", result.RunID)

	logger.Info("pipeline run started", "stages", len(p.stages))

	for _, stage := range p.stages {
		if err := ctx.Err(); err != nil {
			result.Failed = stage.Name
			result.Duration = time.Since(start)
			return result, fmt.Errorf("stage %s: %w", stage.Name, err)
		}

		if err := p.runStage(ctx, logger, stage); err != nil {
			result.Failed = stage.Name
			result.Duration = time.Since(start)
			logger.Error("pipeline run failed",
				"stage", stage.Name,
				"error", err,
			)
			return result, fmt.Errorf("stage %s: %w", stage.Name, err)
		}
		result.Completed = append(result.Completed, stage.Name)
	}

	result.Duration = time.Since(start)
	logger.Info("pipeline run finished",
		"stages", len(result.Completed),
		"duration", result.Duration,
	)
	return result, nil
}

func (p *Pipeline) runStage(ctx context.Context, logger *slog.Logger, stage Stage) error {
	if p.cfg.StageTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.StageTimeout)
		defer cancel()
	}

	start := time.Now()
	logger.Info("stage started", "stage", stage.Name)

	if err := stage.Run(ctx); err != nil {
		return err
	}

	logger.Info("stage finished",
		"stage", stage.Name,
		"duration", time.Since(start),
	)
	return nil
}
