package workflow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jordanlanch/leadreach/ent"
	"github.com/jordanlanch/leadreach/ent/workflowrun"
	"github.com/jordanlanch/leadreach/ent/workflowstep"
	"github.com/jordanlanch/leadreach/pkg/logger"
)

// Runner drives durable, crash-resumable workflows. Every run keeps a
// completed-step log in the database: a step whose row exists is never
// re-executed on replay, its cached result is returned instead. A step that
// crashed mid-flight has no row and is retried from scratch, so step side
// effects must be safe to repeat or be a single terminal write.
type Runner struct {
	db          *ent.Client
	log         logger.Logger
	maxAttempts int
	backoff     time.Duration
	now         func() time.Time

	mu     sync.Mutex
	active map[int]context.CancelFunc
}

// NewRunner creates a workflow runner. Transient step errors are retried up
// to three times with a short backoff; fatal errors abort immediately.
func NewRunner(db *ent.Client, log logger.Logger) *Runner {
	return &Runner{
		db:          db,
		log:         log,
		maxAttempts: 3,
		backoff:     2 * time.Second,
		now:         time.Now,
		active:      make(map[int]context.CancelFunc),
	}
}

// Begin resumes the unfinished run for (kind, entityID) or starts a new one.
func (r *Runner) Begin(ctx context.Context, kind workflowrun.Kind, entityID int) (*ent.WorkflowRun, error) {
	run, err := r.db.WorkflowRun.Query().
		Where(
			workflowrun.KindEQ(kind),
			workflowrun.EntityIDEQ(entityID),
			workflowrun.StatusEQ(workflowrun.StatusRunning),
		).
		First(ctx)
	if err == nil {
		r.log.Info("resuming workflow run", "run_id", run.ID, "kind", kind, "entity_id", entityID)
		return run, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to look up workflow run: %w", err)
	}

	run, err = r.db.WorkflowRun.Create().
		SetKind(kind).
		SetEntityID(entityID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create workflow run: %w", err)
	}
	return run, nil
}

// Execute runs fn inside a cancellable execution registered for the run, then
// records the terminal run status.
func (r *Runner) Execute(ctx context.Context, run *ent.WorkflowRun, fn func(ctx context.Context, ex *Execution) error) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	r.mu.Lock()
	r.active[run.ID] = cancel
	r.mu.Unlock()
	defer func() {
		r.mu.Lock()
		delete(r.active, run.ID)
		r.mu.Unlock()
	}()

	ex := &Execution{runner: r, run: run}
	err := fn(runCtx, ex)

	// The terminal status write uses the parent context: the run context may
	// already be cancelled.
	switch {
	case err == nil:
		return r.finish(ctx, run, workflowrun.StatusCompleted, "")
	case errors.Is(err, ErrCancelled) || errors.Is(err, context.Canceled):
		r.log.Info("workflow run cancelled", "run_id", run.ID)
		return r.finish(ctx, run, workflowrun.StatusCancelled, "")
	default:
		r.log.Error("workflow run failed", "run_id", run.ID, "error", err)
		if ferr := r.finish(ctx, run, workflowrun.StatusFailed, err.Error()); ferr != nil {
			return errors.Join(err, ferr)
		}
		return err
	}
}

func (r *Runner) finish(ctx context.Context, run *ent.WorkflowRun, status workflowrun.Status, errMsg string) error {
	upd := r.db.WorkflowRun.UpdateOneID(run.ID).
		SetStatus(status).
		SetFinishedAt(r.now())
	if errMsg != "" {
		upd.SetErrorMessage(errMsg)
	}
	if _, err := upd.Save(ctx); err != nil {
		return fmt.Errorf("failed to finish workflow run %d: %w", run.ID, err)
	}
	return nil
}

// Cancel marks every running run for (kind, entityID) cancelled and signals
// any in-process execution. A crashed-and-not-yet-resumed run is covered by
// the status check each step performs on resume.
func (r *Runner) Cancel(ctx context.Context, kind workflowrun.Kind, entityID int) error {
	runs, err := r.db.WorkflowRun.Query().
		Where(
			workflowrun.KindEQ(kind),
			workflowrun.EntityIDEQ(entityID),
			workflowrun.StatusEQ(workflowrun.StatusRunning),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to list runs to cancel: %w", err)
	}

	for _, run := range runs {
		if err := r.finish(ctx, run, workflowrun.StatusCancelled, ""); err != nil {
			return err
		}
		r.mu.Lock()
		cancel, ok := r.active[run.ID]
		r.mu.Unlock()
		if ok {
			cancel()
		}
		r.log.Info("cancelled workflow run", "run_id", run.ID, "kind", kind, "entity_id", entityID)
	}
	return nil
}

// Execution is the per-run handle passed to workflow functions.
type Execution struct {
	runner *Runner
	run    *ent.WorkflowRun
}

// RunID returns the persistent run identifier.
func (ex *Execution) RunID() int {
	return ex.run.ID
}

// Step executes a named unit of work exactly once per run. If the step
// already completed in a previous attempt of this run, its cached result is
// decoded into out (when out is non-nil) and fn is not called. Transient
// errors are retried with backoff; fatal errors are persisted so a replay
// deterministically fails the same way.
func (ex *Execution) Step(ctx context.Context, name string, out any, fn func(ctx context.Context) (any, error)) error {
	if err := ex.checkCancelled(ctx); err != nil {
		return err
	}

	r := ex.runner
	cached, err := r.db.WorkflowStep.Query().
		Where(workflowstep.RunIDEQ(ex.run.ID), workflowstep.NameEQ(name)).
		Only(ctx)
	if err == nil {
		if cached.Status == workflowstep.StatusFailed {
			return Fatal(fmt.Errorf("step %q previously failed: %s", name, string(cached.Result)))
		}
		if out != nil && len(cached.Result) > 0 {
			if err := json.Unmarshal(cached.Result, out); err != nil {
				return fmt.Errorf("failed to decode cached result of step %q: %w", name, err)
			}
		}
		r.log.Debug("skipping completed step", "run_id", ex.run.ID, "step", name)
		return nil
	}
	if !ent.IsNotFound(err) {
		return fmt.Errorf("failed to look up step %q: %w", name, err)
	}

	var value any
	var attempts int
	for {
		attempts++
		value, err = fn(ctx)
		if err == nil {
			break
		}
		if IsFatal(err) {
			// Record the fatal outcome so replays do not retry a step that
			// can never succeed.
			_, serr := r.db.WorkflowStep.Create().
				SetRunID(ex.run.ID).
				SetName(name).
				SetStatus(workflowstep.StatusFailed).
				SetAttempts(attempts).
				SetResult([]byte(err.Error())).
				Save(ctx)
			if serr != nil {
				return errors.Join(err, fmt.Errorf("failed to record fatal step %q: %w", name, serr))
			}
			return err
		}
		if errors.Is(err, context.Canceled) {
			return ErrCancelled
		}
		if attempts >= r.maxAttempts {
			return fmt.Errorf("step %q exhausted %d attempts: %w", name, attempts, err)
		}
		r.log.Warn("retrying step", "run_id", ex.run.ID, "step", name, "attempt", attempts, "error", err)
		if err := sleep(ctx, r.backoff); err != nil {
			return ErrCancelled
		}
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode result of step %q: %w", name, err)
	}
	_, err = r.db.WorkflowStep.Create().
		SetRunID(ex.run.ID).
		SetName(name).
		SetStatus(workflowstep.StatusCompleted).
		SetAttempts(attempts).
		SetResult(payload).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to record step %q: %w", name, err)
	}

	if out != nil {
		if err := json.Unmarshal(payload, out); err != nil {
			return fmt.Errorf("failed to decode result of step %q: %w", name, err)
		}
	}
	return nil
}

// SleepUntil suspends the run until the given wall-clock time. The wake time
// is what gets persisted, so a replay after a crash resumes the remaining
// wait instead of restarting it, and a replay after the deadline returns
// immediately.
func (ex *Execution) SleepUntil(ctx context.Context, name string, until time.Time) error {
	var wake time.Time
	err := ex.Step(ctx, name, &wake, func(ctx context.Context) (any, error) {
		return until, nil
	})
	if err != nil {
		return err
	}

	remaining := wake.Sub(ex.runner.now())
	if remaining <= 0 {
		return nil
	}
	ex.runner.log.Info("workflow run suspended", "run_id", ex.run.ID, "until", wake)
	if err := sleep(ctx, remaining); err != nil {
		return ErrCancelled
	}
	return ex.checkCancelled(ctx)
}

// Pause blocks for a fixed interval, honoring cancellation. Unlike SleepUntil
// the pause is not persisted: it is used for the seconds-scale gap between
// outbound sends where restarting the wait after a crash is harmless.
func (ex *Execution) Pause(ctx context.Context, d time.Duration) error {
	if err := sleep(ctx, d); err != nil {
		return ErrCancelled
	}
	return nil
}

// checkCancelled consults both the in-process context and the persisted run
// status, so cancellation from another process takes effect at the next step
// boundary.
func (ex *Execution) checkCancelled(ctx context.Context) error {
	if ctx.Err() != nil {
		return ErrCancelled
	}
	status, err := ex.runner.db.WorkflowRun.Query().
		Where(workflowrun.IDEQ(ex.run.ID)).
		Select(workflowrun.FieldStatus).
		String(ctx)
	if err != nil {
		return fmt.Errorf("failed to check run status: %w", err)
	}
	if workflowrun.Status(status) == workflowrun.StatusCancelled {
		return ErrCancelled
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
