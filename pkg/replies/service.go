package replies

import (
	"context"
	"fmt"
	"time"

	"github.com/jordanlanch/leadreach/ent"
	"github.com/jordanlanch/leadreach/ent/campaignlead"
	"github.com/jordanlanch/leadreach/ent/emailaccount"
	"github.com/jordanlanch/leadreach/ent/reply"
	"github.com/jordanlanch/leadreach/pkg/logger"
	"github.com/jordanlanch/leadreach/pkg/mailer"
	"github.com/jordanlanch/leadreach/pkg/metrics"
)

// Service reconciles inbound mail with tracked campaign threads. It is
// invoked after a provider push notification for a mailbox, and also
// speculatively from the poll-fallback cron: notification payloads are not
// trusted for content, only as a hint to poll.
type Service struct {
	db        *ent.Client
	provider  mailer.Provider
	metrics   *metrics.Metrics
	log       logger.Logger
	pollCount int
}

// NewService creates a reply reconciliation service. pollCount bounds how
// many recent inbox messages each sync inspects.
func NewService(db *ent.Client, provider mailer.Provider, m *metrics.Metrics, log logger.Logger, pollCount int) *Service {
	if pollCount <= 0 {
		pollCount = 10
	}
	return &Service{
		db:        db,
		provider:  provider,
		metrics:   m,
		log:       log,
		pollCount: pollCount,
	}
}

// SyncMailbox short-polls the mailbox's recent inbox messages and flips
// matched sends to replied. Unknown mailboxes are a logged no-op; a failure
// on one message never aborts the rest of the batch; re-processing a message
// id is a no-op thanks to the unique Reply message id.
func (s *Service) SyncMailbox(ctx context.Context, emailAddress string) error {
	account, err := s.db.EmailAccount.Query().
		Where(emailaccount.EmailEQ(emailAddress), emailaccount.Active(true)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			s.log.Info("notification for untracked mailbox, skipping", "email", emailAddress)
			return nil
		}
		return fmt.Errorf("failed to resolve mailbox %s: %w", emailAddress, err)
	}

	return s.SyncAccount(ctx, account)
}

// SyncAccount runs the reconciliation poll for one connected account.
func (s *Service) SyncAccount(ctx context.Context, account *ent.EmailAccount) error {
	summaries, err := s.provider.ListRecentInbox(ctx, account, s.pollCount)
	if err != nil {
		return fmt.Errorf("failed to list inbox for %s: %w", account.Email, err)
	}

	var processed, matched int
	for _, summary := range summaries {
		ok, err := s.processMessage(ctx, account, summary.ID)
		if err != nil {
			// Per-message isolation: record and keep going.
			s.log.Warn("failed to process inbound message", "account", account.Email, "message_id", summary.ID, "error", err)
			continue
		}
		processed++
		if ok {
			matched++
		}
	}

	if matched > 0 {
		s.log.Info("reply sync finished", "account", account.Email, "inspected", processed, "replies", matched)
	}
	return nil
}

// processMessage handles one inbound message; it reports whether the message
// was recorded as a new reply.
func (s *Service) processMessage(ctx context.Context, account *ent.EmailAccount, messageID string) (bool, error) {
	// Append-only idempotency check: a message already recorded is done.
	exists, err := s.db.Reply.Query().
		Where(reply.MessageIDEQ(messageID)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check reply %s: %w", messageID, err)
	}
	if exists {
		return false, nil
	}

	detail, err := s.provider.GetMessage(ctx, account, messageID)
	if err != nil {
		return false, fmt.Errorf("failed to fetch message %s: %w", messageID, err)
	}
	if detail.ThreadID == "" {
		return false, nil
	}

	// Threads we never sent in are not ours to touch.
	row, err := s.db.CampaignLead.Query().
		Where(campaignlead.ThreadIDEQ(detail.ThreadID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to match thread %s: %w", detail.ThreadID, err)
	}

	// The send's own provider message lives in the same thread; only a new
	// message id counts as a reply.
	if row.MessageID == messageID {
		return false, nil
	}

	_, err = s.db.Reply.Create().
		SetLeadID(row.LeadID).
		SetCampaignLeadID(row.ID).
		SetThreadID(detail.ThreadID).
		SetMessageID(messageID).
		SetSubject(detail.Subject).
		SetSnippet(detail.Snippet).
		SetReceivedAt(detail.ReceivedAt).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// A concurrent sync recorded it first.
			return false, nil
		}
		return false, fmt.Errorf("failed to record reply %s: %w", messageID, err)
	}

	if _, err := s.db.CampaignLead.UpdateOneID(row.ID).
		SetStatus(campaignlead.StatusReplied).
		SetRepliedAt(time.Now()).
		Save(ctx); err != nil {
		return false, fmt.Errorf("failed to mark campaign lead %d replied: %w", row.ID, err)
	}

	s.metrics.RepliesDetected.Inc()
	s.log.Info("reply detected", "campaign_lead_id", row.ID, "thread_id", detail.ThreadID, "from", detail.From)
	return true, nil
}
