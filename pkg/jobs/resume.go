package jobs

import (
	"context"
	"fmt"

	"github.com/jordanlanch/leadreach/ent"
	"github.com/jordanlanch/leadreach/ent/workflowrun"
	"github.com/jordanlanch/leadreach/pkg/campaigns"
	"github.com/jordanlanch/leadreach/pkg/enrichment"
	"github.com/jordanlanch/leadreach/pkg/logger"
)

// Resumer restarts durable workflow runs a previous process left in running,
// typically after a crash or redeploy. Each run's driver picks the existing
// run back up via its step log, so completed work is skipped, not repeated.
type Resumer struct {
	db        *ent.Client
	campaigns *campaigns.Service
	enricher  *enrichment.Service
	log       logger.Logger
}

// NewResumer creates a resumer over the campaign and enrichment drivers.
func NewResumer(db *ent.Client, campaignSvc *campaigns.Service, enricher *enrichment.Service, log logger.Logger) *Resumer {
	return &Resumer{
		db:        db,
		campaigns: campaignSvc,
		enricher:  enricher,
		log:       log,
	}
}

// ResumeInterrupted queries every run still marked running and drives each
// one to its next terminal state, sequentially. A resumed run that fails or
// gets cancelled is logged and never blocks the rest of the sweep. The
// caller decides whether the whole sweep runs in the background; it returns
// the number of runs it picked up.
func (r *Resumer) ResumeInterrupted(ctx context.Context) (int, error) {
	runs, err := r.db.WorkflowRun.Query().
		Where(workflowrun.StatusEQ(workflowrun.StatusRunning)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list interrupted workflow runs: %w", err)
	}

	for _, run := range runs {
		r.log.Info("resuming interrupted workflow run", "run_id", run.ID, "kind", run.Kind, "entity_id", run.EntityID)
		switch run.Kind {
		case workflowrun.KindCampaignSend:
			if err := r.campaigns.Run(ctx, run.EntityID); err != nil {
				r.log.Error("resumed campaign run failed", "campaign_id", run.EntityID, "error", err)
			}
		case workflowrun.KindCompanyEnrichment:
			if err := r.enricher.EnrichCompany(ctx, run.EntityID); err != nil {
				r.log.Error("resumed enrichment run failed", "company_id", run.EntityID, "error", err)
			}
		}
	}
	return len(runs), nil
}
