package jobs

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/jordanlanch/leadreach/ent"
	"github.com/jordanlanch/leadreach/ent/campaignlead"
	"github.com/jordanlanch/leadreach/ent/emailaccount"
	"github.com/jordanlanch/leadreach/pkg/email"
	"github.com/jordanlanch/leadreach/pkg/enrichment"
	"github.com/jordanlanch/leadreach/pkg/replies"
	"github.com/robfig/cron/v3"
)

// CronManager manages scheduled jobs
type CronManager struct {
	cron       *cron.Cron
	db         *ent.Client
	reconciler *replies.Service
	enricher   *enrichment.Service
	alerts     *email.Service
	logger     *log.Logger
}

// NewCronManager creates a new cron manager
func NewCronManager(db *ent.Client, reconciler *replies.Service, enricher *enrichment.Service, alerts *email.Service, logger *log.Logger) *CronManager {
	if logger == nil {
		logger = log.Default()
	}

	return &CronManager{
		cron:       cron.New(),
		db:         db,
		reconciler: reconciler,
		enricher:   enricher,
		alerts:     alerts,
		logger:     logger,
	}
}

// SetupJobs configures all scheduled jobs
func (cm *CronManager) SetupJobs() error {
	cm.logger.Println("Setting up cron jobs...")

	// Every 10 minutes: poll active mailboxes for replies. Webhooks are the
	// fast path, this is the safety net for notifications that never arrive.
	_, err := cm.cron.AddFunc("*/10 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 8*time.Minute)
		defer cancel()

		accounts, err := cm.db.EmailAccount.Query().
			Where(emailaccount.ActiveEQ(true)).
			All(ctx)
		if err != nil {
			cm.logger.Printf("❌ Failed to list active accounts: %v", err)
			return
		}

		for _, account := range accounts {
			if err := cm.reconciler.SyncAccount(ctx, account); err != nil {
				cm.logger.Printf("⚠️ Reply poll failed for %s: %v", account.Email, err)
			}
		}
	})
	if err != nil {
		return err
	}

	// Every 5 minutes: flag enrichment runs stuck in processing. Stuck runs
	// are reported, never auto-retried; a retry could double-spend tokens.
	_, err = cm.cron.AddFunc("*/5 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()

		stale, err := cm.enricher.FindStale(ctx, time.Now())
		if err != nil {
			cm.logger.Printf("❌ Failed to detect stale enrichment runs: %v", err)
			return
		}
		if len(stale) == 0 {
			return
		}

		domains := make([]string, 0, len(stale))
		for _, comp := range stale {
			domains = append(domains, comp.Domain)
		}

		cm.logger.Printf("⚠️ Found %d stale enrichment run(s): %v", len(stale), domains)
		sentry.CaptureMessage(fmt.Sprintf("%d enrichment run(s) stuck in processing: %v", len(stale), domains))

		if cm.alerts != nil {
			if err := cm.alerts.SendStaleEnrichmentAlert(domains); err != nil {
				cm.logger.Printf("❌ Failed to send stale enrichment alert: %v", err)
			}
		}
	})
	if err != nil {
		return err
	}

	// Daily at 4 AM: log send statistics
	_, err = cm.cron.AddFunc("0 4 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()

		since := time.Now().Add(-24 * time.Hour)
		sent, err := cm.db.CampaignLead.Query().
			Where(campaignlead.StatusEQ(campaignlead.StatusSent), campaignlead.SentAtGTE(since)).
			Count(ctx)
		if err != nil {
			cm.logger.Printf("❌ Failed to count sent emails: %v", err)
			return
		}
		replied, err := cm.db.CampaignLead.Query().
			Where(campaignlead.StatusEQ(campaignlead.StatusReplied), campaignlead.RepliedAtGTE(since)).
			Count(ctx)
		if err != nil {
			cm.logger.Printf("❌ Failed to count replies: %v", err)
			return
		}

		cm.logger.Printf("📊 Last 24h: %d emails sent, %d replies detected", sent, replied)
	})
	if err != nil {
		return err
	}

	cm.logger.Println("✅ Cron jobs configured successfully")
	cm.logger.Println("  - Every 10 minutes: poll mailboxes for replies")
	cm.logger.Println("  - Every 5 minutes: flag stale enrichment runs")
	cm.logger.Println("  - Daily at 4 AM: log send statistics")

	return nil
}

// Start starts the cron scheduler
func (cm *CronManager) Start() {
	cm.logger.Println("🚀 Starting cron scheduler...")
	cm.cron.Start()
}

// Stop stops the cron scheduler
func (cm *CronManager) Stop() {
	cm.logger.Println("🛑 Stopping cron scheduler...")
	cm.cron.Stop()
}
