package enrichment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jordanlanch/leadreach/ent"
	"github.com/jordanlanch/leadreach/ent/company"
	"github.com/jordanlanch/leadreach/ent/workflowrun"
	"github.com/jordanlanch/leadreach/pkg/logger"
	"github.com/jordanlanch/leadreach/pkg/workflow"
)

// StalenessWindow is how long a company may sit in processing before it is
// considered stuck. Stuck companies are flagged for manual retry, never
// auto-healed.
const StalenessWindow = 5 * time.Minute

// IsStale reports whether a company's enrichment run is stuck: still
// processing with a start time older than the staleness window.
func IsStale(c *ent.Company, now time.Time) bool {
	if c.EnrichmentStatus != company.EnrichmentStatusProcessing {
		return false
	}
	if c.EnrichmentStartedAt == nil {
		return true
	}
	return now.Sub(*c.EnrichmentStartedAt) > StalenessWindow
}

// Service runs the company enrichment workflow: fetch company, mark
// processing, generate a subject/body pair, persist the result or the
// terminal failure. Concurrency across companies is capped to respect the
// generation API's rate limits.
type Service struct {
	db        *ent.Client
	runner    *workflow.Runner
	generator Generator
	validator Validator
	log       logger.Logger
	sem       chan struct{}
}

// NewService creates an enrichment service with at most workers concurrent
// enrichment runs. validator may be nil.
func NewService(db *ent.Client, runner *workflow.Runner, generator Generator, validator Validator, log logger.Logger, workers int) *Service {
	if workers <= 0 {
		workers = 3
	}
	return &Service{
		db:        db,
		runner:    runner,
		generator: generator,
		validator: validator,
		log:       log,
		sem:       make(chan struct{}, workers),
	}
}

// EnrichCompany runs the durable enrichment workflow for one company,
// blocking while the concurrency cap is saturated.
func (s *Service) EnrichCompany(ctx context.Context, companyID int) error {
	select {
	case s.sem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-s.sem }()

	run, err := s.runner.Begin(ctx, workflowrun.KindCompanyEnrichment, companyID)
	if err != nil {
		return err
	}

	err = s.runner.Execute(ctx, run, func(ctx context.Context, ex *workflow.Execution) error {
		return s.enrich(ctx, ex, companyID)
	})
	if err != nil && !errors.Is(err, workflow.ErrCancelled) {
		// Terminal failure is part of the company's visible state.
		uerr := s.db.Company.UpdateOneID(companyID).
			SetEnrichmentStatus(company.EnrichmentStatusFailed).
			SetEnrichmentError(err.Error()).
			Exec(context.WithoutCancel(ctx))
		if uerr != nil && !ent.IsNotFound(uerr) {
			s.log.Error("failed to record enrichment failure", "company_id", companyID, "error", uerr)
		}
	}
	return err
}

func (s *Service) enrich(ctx context.Context, ex *workflow.Execution, companyID int) error {
	var info struct {
		Name   string `json:"name"`
		Domain string `json:"domain"`
	}
	err := ex.Step(ctx, "load-company", &info, func(ctx context.Context) (any, error) {
		c, err := s.db.Company.Get(ctx, companyID)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, workflow.Fatal(fmt.Errorf("company %d does not exist", companyID))
			}
			return nil, err
		}
		return map[string]string{"name": c.Name, "domain": c.Domain}, nil
	})
	if err != nil {
		return err
	}

	err = ex.Step(ctx, "mark-processing", nil, func(ctx context.Context) (any, error) {
		return nil, s.db.Company.UpdateOneID(companyID).
			SetEnrichmentStatus(company.EnrichmentStatusProcessing).
			SetEnrichmentStartedAt(time.Now()).
			ClearEnrichmentError().
			Exec(ctx)
	})
	if err != nil {
		return err
	}

	var tpl Template
	err = ex.Step(ctx, "generate-template", &tpl, func(ctx context.Context) (any, error) {
		generated, err := s.generator.GenerateCompanyTemplate(ctx, info.Name, info.Domain)
		if err != nil {
			return nil, err
		}
		return generated, nil
	})
	if err != nil {
		return err
	}

	// Advisory only: a validation failure is logged and the pipeline keeps
	// going, so a flaky validator can never block enrichment.
	if s.validator != nil {
		if verr := s.validator.ValidateTemplate(ctx, &tpl); verr != nil {
			s.log.Warn("template validation flagged content", "company_id", companyID, "error", verr)
		}
	}

	err = ex.Step(ctx, "persist-template", nil, func(ctx context.Context) (any, error) {
		return nil, s.db.Company.UpdateOneID(companyID).
			SetEnrichmentStatus(company.EnrichmentStatusCompleted).
			SetEmailSubject(tpl.Subject).
			SetEmailTemplate(tpl.Body).
			ClearEnrichmentError().
			Exec(ctx)
	})
	if err != nil {
		return err
	}

	s.log.Info("company enriched", "company_id", companyID, "domain", info.Domain)
	return nil
}

// FindStale returns companies stuck in processing beyond the staleness
// window, for the operator-alert job.
func (s *Service) FindStale(ctx context.Context, now time.Time) ([]*ent.Company, error) {
	rows, err := s.db.Company.Query().
		Where(company.EnrichmentStatusEQ(company.EnrichmentStatusProcessing)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query processing companies: %w", err)
	}

	var stale []*ent.Company
	for _, c := range rows {
		if IsStale(c, now) {
			stale = append(stale, c)
		}
	}
	return stale, nil
}
