package campaigns

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/jordanlanch/leadreach/ent"
	"github.com/jordanlanch/leadreach/ent/campaign"
	"github.com/jordanlanch/leadreach/ent/campaignlead"
	"github.com/jordanlanch/leadreach/ent/emailaccount"
	"github.com/jordanlanch/leadreach/ent/lead"
	"github.com/jordanlanch/leadreach/ent/workflowrun"
	"github.com/jordanlanch/leadreach/pkg/cache"
	"github.com/jordanlanch/leadreach/pkg/logger"
	"github.com/jordanlanch/leadreach/pkg/mailer"
	"github.com/jordanlanch/leadreach/pkg/metrics"
	"github.com/jordanlanch/leadreach/pkg/storage"
	"github.com/jordanlanch/leadreach/pkg/workflow"
)

// Service owns campaign lifecycle: creation with round-robin sender
// assignment, the durable send workflow, cancellation and stats.
type Service struct {
	db           *ent.Client
	runner       *workflow.Runner
	provider     mailer.Provider
	store        storage.Store
	cache        *cache.Client
	metrics      *metrics.Metrics
	log          logger.Logger
	sendInterval time.Duration
	baseURL      string
}

// Options carries the tunables for a campaign service.
type Options struct {
	SendInterval time.Duration
	BaseURL      string
}

// NewService creates a campaign service. store and cache may be nil when
// attachment storage or stats caching is not configured.
func NewService(db *ent.Client, runner *workflow.Runner, provider mailer.Provider, store storage.Store, c *cache.Client, m *metrics.Metrics, log logger.Logger, opts Options) *Service {
	if opts.SendInterval <= 0 {
		opts.SendInterval = 5 * time.Second
	}
	return &Service{
		db:           db,
		runner:       runner,
		provider:     provider,
		store:        store,
		cache:        c,
		metrics:      m,
		log:          log,
		sendInterval: opts.SendInterval,
		baseURL:      opts.BaseURL,
	}
}

// CreateCampaignRequest describes a new campaign.
type CreateCampaignRequest struct {
	Name           string     `json:"name" validate:"required"`
	AccountIDs     []int      `json:"account_ids" validate:"required,min=1"`
	LeadIDs        []int      `json:"lead_ids"`
	Tag            string     `json:"tag"`
	ScheduledAt    *time.Time `json:"scheduled_at"`
	AttachmentKeys []string   `json:"attachment_keys"`
}

// CreateCampaign creates a campaign in draft, fixes its sender rotation pool
// and bulk-creates one CampaignLead row per matched lead, assigning senders
// round robin over the pool. Leads are matched by explicit ids, by tag, or —
// absent both — the user's whole list.
func (s *Service) CreateCampaign(ctx context.Context, userID int, req CreateCampaignRequest) (*ent.Campaign, error) {
	accounts, err := s.db.EmailAccount.Query().
		Where(
			emailaccount.UserIDEQ(userID),
			emailaccount.IDIn(req.AccountIDs...),
			emailaccount.Active(true),
		).
		Order(ent.Asc(emailaccount.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve sender accounts: %w", err)
	}
	if len(accounts) != len(req.AccountIDs) {
		return nil, fmt.Errorf("campaign requires active sender accounts owned by the user: got %d of %d", len(accounts), len(req.AccountIDs))
	}

	leadQuery := s.db.Lead.Query().Where(lead.UserIDEQ(userID))
	if len(req.LeadIDs) > 0 {
		leadQuery = leadQuery.Where(lead.IDIn(req.LeadIDs...))
	} else if req.Tag != "" {
		leadQuery = leadQuery.Where(lead.TagEQ(req.Tag))
	}
	matched, err := leadQuery.Order(ent.Asc(lead.FieldID)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve campaign leads: %w", err)
	}
	if len(matched) == 0 {
		return nil, fmt.Errorf("no leads matched the campaign filter")
	}

	create := s.db.Campaign.Create().
		SetName(req.Name).
		SetUserID(userID).
		AddAccounts(accounts...)
	if req.ScheduledAt != nil {
		create.SetScheduledAt(*req.ScheduledAt)
	}
	if len(req.AttachmentKeys) > 0 {
		create.SetAttachmentKeys(req.AttachmentKeys)
	}
	cmp, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}

	pool := make([]int, len(accounts))
	for i, a := range accounts {
		pool[i] = a.ID
	}
	sort.Ints(pool)

	bulk := make([]*ent.CampaignLeadCreate, len(matched))
	for i, l := range matched {
		bulk[i] = s.db.CampaignLead.Create().
			SetCampaignID(cmp.ID).
			SetLeadID(l.ID).
			SetAccountID(AssignAccount(pool, i))
	}
	if _, err := s.db.CampaignLead.CreateBulk(bulk...).Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to create campaign leads: %w", err)
	}

	s.log.Info("campaign created", "campaign_id", cmp.ID, "leads", len(matched), "accounts", len(pool))
	return cmp, nil
}

// Launch moves a draft campaign into scheduled and returns it. The actual
// send workflow is started separately (Run), usually in a background
// goroutine owned by the caller.
func (s *Service) Launch(ctx context.Context, userID, campaignID int) (*ent.Campaign, error) {
	cmp, err := s.db.Campaign.Query().
		Where(campaign.IDEQ(campaignID), campaign.UserIDEQ(userID)).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("campaign %d: %w", campaignID, err)
	}
	if cmp.Status != campaign.StatusDraft {
		return nil, fmt.Errorf("campaign %d cannot launch from status %s", campaignID, cmp.Status)
	}

	cmp, err = s.db.Campaign.UpdateOneID(campaignID).
		SetStatus(campaign.StatusScheduled).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to schedule campaign: %w", err)
	}
	return cmp, nil
}

// Cancel is the side-channel cancellation action. It is idempotent: a second
// call on an already-cancelled campaign is a no-op. An in-flight single send
// is allowed to finish; every not-yet-attempted recipient ends cancelled.
func (s *Service) Cancel(ctx context.Context, userID, campaignID int) error {
	cmp, err := s.db.Campaign.Query().
		Where(campaign.IDEQ(campaignID), campaign.UserIDEQ(userID)).
		Only(ctx)
	if err != nil {
		return fmt.Errorf("campaign %d: %w", campaignID, err)
	}

	switch cmp.Status {
	case campaign.StatusCancelled:
		return nil
	case campaign.StatusScheduled, campaign.StatusRunning:
	default:
		return fmt.Errorf("campaign %d cannot be cancelled from status %s", campaignID, cmp.Status)
	}

	if err := s.runner.Cancel(ctx, workflowrun.KindCampaignSend, campaignID); err != nil {
		return err
	}

	if _, err := s.db.Campaign.UpdateOneID(campaignID).
		SetStatus(campaign.StatusCancelled).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to mark campaign cancelled: %w", err)
	}

	n, err := s.db.CampaignLead.Update().
		Where(
			campaignlead.CampaignIDEQ(campaignID),
			campaignlead.StatusEQ(campaignlead.StatusPending),
		).
		SetStatus(campaignlead.StatusCancelled).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to cancel pending recipients: %w", err)
	}

	s.metrics.CampaignsCancelled.Inc()
	s.log.Info("campaign cancelled", "campaign_id", campaignID, "pending_cancelled", n)
	return nil
}

// Stats are the per-campaign send counters.
type Stats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Sent      int `json:"sent"`
	Failed    int `json:"failed"`
	Opened    int `json:"opened"`
	Replied   int `json:"replied"`
	Cancelled int `json:"cancelled"`
}

// GetStats returns recipient status counts, cached briefly since dashboards
// poll it.
func (s *Service) GetStats(ctx context.Context, userID, campaignID int) (*Stats, error) {
	cacheKey := fmt.Sprintf("campaign_stats:%d", campaignID)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != "" {
			var stats Stats
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return &stats, nil
			}
		}
	}

	if _, err := s.db.Campaign.Query().
		Where(campaign.IDEQ(campaignID), campaign.UserIDEQ(userID)).
		Only(ctx); err != nil {
		return nil, fmt.Errorf("campaign %d: %w", campaignID, err)
	}

	var stats Stats
	rows, err := s.db.CampaignLead.Query().
		Where(campaignlead.CampaignIDEQ(campaignID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load campaign leads: %w", err)
	}
	for _, row := range rows {
		stats.Total++
		switch row.Status {
		case campaignlead.StatusPending:
			stats.Pending++
		case campaignlead.StatusSent:
			stats.Sent++
		case campaignlead.StatusFailed:
			stats.Failed++
		case campaignlead.StatusOpened:
			stats.Opened++
		case campaignlead.StatusReplied:
			stats.Replied++
		case campaignlead.StatusCancelled:
			stats.Cancelled++
		}
	}

	if s.cache != nil {
		if payload, err := json.Marshal(stats); err == nil {
			_ = s.cache.Set(ctx, cacheKey, payload, 30*time.Second)
		}
	}
	return &stats, nil
}

// ListCampaigns returns the user's campaigns, newest first.
func (s *Service) ListCampaigns(ctx context.Context, userID int) ([]*ent.Campaign, error) {
	return s.db.Campaign.Query().
		Where(campaign.UserIDEQ(userID)).
		Order(ent.Desc(campaign.FieldCreatedAt)).
		All(ctx)
}

// GetCampaign returns one campaign scoped to its owner.
func (s *Service) GetCampaign(ctx context.Context, userID, campaignID int) (*ent.Campaign, error) {
	cmp, err := s.db.Campaign.Query().
		Where(campaign.IDEQ(campaignID), campaign.UserIDEQ(userID)).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("campaign %d: %w", campaignID, err)
	}
	return cmp, nil
}
