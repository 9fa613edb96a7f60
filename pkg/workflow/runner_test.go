package workflow

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jordanlanch/leadreach/ent"
	"github.com/jordanlanch/leadreach/ent/enttest"
	"github.com/jordanlanch/leadreach/ent/workflowrun"
	"github.com/jordanlanch/leadreach/ent/workflowstep"
	"github.com/jordanlanch/leadreach/pkg/logger"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	return client, func() { client.Close() }
}

func newTestRunner(client *ent.Client) *Runner {
	r := NewRunner(client, logger.Nop())
	r.backoff = time.Millisecond
	return r
}

func TestRunner_StepCaching(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	runner := newTestRunner(client)

	run, err := runner.Begin(ctx, workflowrun.KindCampaignSend, 1)
	require.NoError(t, err)

	calls := 0
	work := func(ex *Execution) error {
		var got string
		return ex.Step(ctx, "produce", &got, func(ctx context.Context) (any, error) {
			calls++
			return "value", nil
		})
	}

	t.Run("Success - First execution runs the step", func(t *testing.T) {
		err := runner.Execute(ctx, run, func(ctx context.Context, ex *Execution) error {
			return work(ex)
		})
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("Success - Replay returns cached result without re-running", func(t *testing.T) {
		// Simulate a crash-resume: new run handle for the same row, still in
		// running state.
		_, err := client.WorkflowRun.UpdateOneID(run.ID).
			SetStatus(workflowrun.StatusRunning).
			Save(ctx)
		require.NoError(t, err)

		resumed, err := runner.Begin(ctx, workflowrun.KindCampaignSend, 1)
		require.NoError(t, err)
		assert.Equal(t, run.ID, resumed.ID)

		var got string
		err = runner.Execute(ctx, resumed, func(ctx context.Context, ex *Execution) error {
			return ex.Step(ctx, "produce", &got, func(ctx context.Context) (any, error) {
				calls++
				return "other", nil
			})
		})
		require.NoError(t, err)
		assert.Equal(t, 1, calls, "cached step must not re-execute")
		assert.Equal(t, "value", got, "cached result is returned, not the new one")
	})
}

func TestRunner_StepRetry(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	runner := newTestRunner(client)

	run, err := runner.Begin(ctx, workflowrun.KindCampaignSend, 2)
	require.NoError(t, err)

	attempts := 0
	err = runner.Execute(ctx, run, func(ctx context.Context, ex *Execution) error {
		return ex.Step(ctx, "flaky", nil, func(ctx context.Context) (any, error) {
			attempts++
			if attempts < 3 {
				return nil, errors.New("transient")
			}
			return nil, nil
		})
	})
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)

	step, err := client.WorkflowStep.Query().
		Where(workflowstep.RunIDEQ(run.ID), workflowstep.NameEQ("flaky")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, workflowstep.StatusCompleted, step.Status)
	assert.Equal(t, 3, step.Attempts)
}

func TestRunner_StepExhaustsAttempts(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	runner := newTestRunner(client)

	run, err := runner.Begin(ctx, workflowrun.KindCampaignSend, 3)
	require.NoError(t, err)

	attempts := 0
	err = runner.Execute(ctx, run, func(ctx context.Context, ex *Execution) error {
		return ex.Step(ctx, "always-fails", nil, func(ctx context.Context) (any, error) {
			attempts++
			return nil, errors.New("still broken")
		})
	})
	require.Error(t, err)
	assert.Equal(t, 3, attempts)

	// No step row: the step may be retried on a future replay
	exists, err := client.WorkflowStep.Query().
		Where(workflowstep.RunIDEQ(run.ID), workflowstep.NameEQ("always-fails")).
		Exist(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	loaded, err := client.WorkflowRun.Get(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, workflowrun.StatusFailed, loaded.Status)
}

func TestRunner_FatalStep(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	runner := newTestRunner(client)

	run, err := runner.Begin(ctx, workflowrun.KindCampaignSend, 4)
	require.NoError(t, err)

	calls := 0
	fatal := func(ctx context.Context, ex *Execution) error {
		return ex.Step(ctx, "doomed", nil, func(ctx context.Context) (any, error) {
			calls++
			return nil, Fatal(errors.New("bad configuration"))
		})
	}

	err = runner.Execute(ctx, run, fatal)
	require.Error(t, err)
	assert.True(t, IsFatal(err))
	assert.Equal(t, 1, calls, "fatal errors are not retried")

	step, err := client.WorkflowStep.Query().
		Where(workflowstep.RunIDEQ(run.ID), workflowstep.NameEQ("doomed")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, workflowstep.StatusFailed, step.Status)

	// A replay fails the same way without calling fn again
	_, err = client.WorkflowRun.UpdateOneID(run.ID).
		SetStatus(workflowrun.StatusRunning).
		Save(ctx)
	require.NoError(t, err)

	resumed, err := runner.Begin(ctx, workflowrun.KindCampaignSend, 4)
	require.NoError(t, err)

	err = runner.Execute(ctx, resumed, fatal)
	require.Error(t, err)
	assert.True(t, IsFatal(err))
	assert.Contains(t, err.Error(), "previously failed")
	assert.Equal(t, 1, calls)
}

func TestRunner_Cancel(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	runner := newTestRunner(client)

	t.Run("Success - Persisted cancel stops the run at the next step", func(t *testing.T) {
		run, err := runner.Begin(ctx, workflowrun.KindCampaignSend, 5)
		require.NoError(t, err)

		secondCalled := false
		err = runner.Execute(ctx, run, func(ctx context.Context, ex *Execution) error {
			if err := ex.Step(ctx, "first", nil, func(ctx context.Context) (any, error) {
				// Side-channel cancel arrives while a step is in flight
				return nil, runner.Cancel(ctx, workflowrun.KindCampaignSend, 5)
			}); err != nil {
				return err
			}
			return ex.Step(ctx, "second", nil, func(ctx context.Context) (any, error) {
				secondCalled = true
				return nil, nil
			})
		})
		// Execute absorbs the cancellation after persisting the status
		require.NoError(t, err)
		assert.False(t, secondCalled, "steps after the cancel boundary must not run")

		loaded, err := client.WorkflowRun.Get(ctx, run.ID)
		require.NoError(t, err)
		assert.Equal(t, workflowrun.StatusCancelled, loaded.Status)
	})

	t.Run("Success - Cancel with no running run is a no-op", func(t *testing.T) {
		require.NoError(t, runner.Cancel(ctx, workflowrun.KindCampaignSend, 999))
	})
}

func TestRunner_SleepUntil(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	runner := newTestRunner(client)

	t.Run("Success - Past deadline returns immediately", func(t *testing.T) {
		run, err := runner.Begin(ctx, workflowrun.KindCampaignSend, 6)
		require.NoError(t, err)

		start := time.Now()
		err = runner.Execute(ctx, run, func(ctx context.Context, ex *Execution) error {
			return ex.SleepUntil(ctx, "wait", time.Now().Add(-time.Hour))
		})
		require.NoError(t, err)
		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("Success - Wake time is persisted, not the duration", func(t *testing.T) {
		run, err := runner.Begin(ctx, workflowrun.KindCampaignSend, 7)
		require.NoError(t, err)

		wake := time.Now().Add(50 * time.Millisecond)
		err = runner.Execute(ctx, run, func(ctx context.Context, ex *Execution) error {
			return ex.SleepUntil(ctx, "wait", wake)
		})
		require.NoError(t, err)
		assert.False(t, time.Now().Before(wake), "execution returns only after the wake time")

		step, err := client.WorkflowStep.Query().
			Where(workflowstep.RunIDEQ(run.ID), workflowstep.NameEQ("wait")).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, workflowstep.StatusCompleted, step.Status)
	})
}

func TestRunner_BeginResumesRunning(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	runner := newTestRunner(client)

	first, err := runner.Begin(ctx, workflowrun.KindCompanyEnrichment, 10)
	require.NoError(t, err)

	again, err := runner.Begin(ctx, workflowrun.KindCompanyEnrichment, 10)
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	// A finished run starts a fresh one
	require.NoError(t, runner.finish(ctx, first, workflowrun.StatusCompleted, ""))
	fresh, err := runner.Begin(ctx, workflowrun.KindCompanyEnrichment, 10)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, fresh.ID)
}
