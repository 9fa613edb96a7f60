package campaigns

import (
	"context"
	"fmt"
	"time"

	"github.com/jordanlanch/leadreach/ent"
	"github.com/jordanlanch/leadreach/ent/campaign"
	"github.com/jordanlanch/leadreach/ent/campaignlead"
	"github.com/jordanlanch/leadreach/ent/emailaccount"
	"github.com/jordanlanch/leadreach/ent/workflowrun"
	"github.com/jordanlanch/leadreach/pkg/mailer"
	"github.com/jordanlanch/leadreach/pkg/templates"
	"github.com/jordanlanch/leadreach/pkg/workflow"
)

// campaignInfo is the cached result of the load-campaign step.
type campaignInfo struct {
	ID             int        `json:"id"`
	UserID         int        `json:"user_id"`
	ScheduledAt    *time.Time `json:"scheduled_at,omitempty"`
	AttachmentKeys []string   `json:"attachment_keys,omitempty"`
}

// recipientRow is the typed join shape for one pending recipient: campaign
// lead, lead fields and the company template, decoded at the store boundary
// so the send loop never inspects dynamic shapes.
type recipientRow struct {
	CampaignLeadID  int               `json:"campaign_lead_id"`
	AccountID       int               `json:"account_id"`
	Email           string            `json:"email"`
	Name            string            `json:"name"`
	Role            string            `json:"role"`
	Custom          map[string]string `json:"custom,omitempty"`
	CompanyName     string            `json:"company_name,omitempty"`
	CompanySubject  string            `json:"company_subject,omitempty"`
	CompanyTemplate string            `json:"company_template,omitempty"`
}

// fallbackTemplate is the owner's default subject/body pair, used when a
// recipient's company has no enriched template.
type fallbackTemplate struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// sendOutcome is the terminal per-recipient result cached by the send step.
type sendOutcome struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type attachmentData struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"data"`
}

const missingTemplateErr = "Missing email template: company has no enriched template and no default is configured"

// Run executes the campaign send workflow to completion, resuming any
// crashed run for the same campaign. Setup failures mark the campaign as
// error; individual recipient failures never abort the run.
func (s *Service) Run(ctx context.Context, campaignID int) error {
	run, err := s.runner.Begin(ctx, workflowrun.KindCampaignSend, campaignID)
	if err != nil {
		return err
	}

	err = s.runner.Execute(ctx, run, func(ctx context.Context, ex *workflow.Execution) error {
		return s.orchestrate(ctx, ex, campaignID)
	})
	if err != nil && workflow.IsFatal(err) {
		// Setup failures are surfaced on the campaign itself; that is the
		// user-visible failure surface.
		_, uerr := s.db.Campaign.UpdateOneID(campaignID).
			SetStatus(campaign.StatusError).
			SetErrorMessage(err.Error()).
			Save(context.WithoutCancel(ctx))
		if uerr != nil && !ent.IsNotFound(uerr) {
			s.log.Error("failed to record campaign setup failure", "campaign_id", campaignID, "error", uerr)
		}
	}
	return err
}

func (s *Service) orchestrate(ctx context.Context, ex *workflow.Execution, campaignID int) error {
	var info campaignInfo
	err := ex.Step(ctx, "load-campaign", &info, func(ctx context.Context) (any, error) {
		cmp, err := s.db.Campaign.Get(ctx, campaignID)
		if err != nil {
			if ent.IsNotFound(err) {
				// Data integrity violation, not a transient fault.
				return nil, workflow.Fatal(fmt.Errorf("campaign %d does not exist", campaignID))
			}
			return nil, err
		}
		return campaignInfo{
			ID:             cmp.ID,
			UserID:         cmp.UserID,
			ScheduledAt:    cmp.ScheduledAt,
			AttachmentKeys: cmp.AttachmentKeys,
		}, nil
	})
	if err != nil {
		return err
	}

	if info.ScheduledAt != nil {
		if err := ex.SleepUntil(ctx, "wait-until-scheduled", *info.ScheduledAt); err != nil {
			return err
		}
	}

	// Idempotent overwrite: a replay that already marked the campaign
	// running writes the same value again.
	err = ex.Step(ctx, "mark-running", nil, func(ctx context.Context) (any, error) {
		return nil, s.db.Campaign.UpdateOneID(campaignID).
			SetStatus(campaign.StatusRunning).
			Exec(ctx)
	})
	if err != nil {
		return err
	}

	var pool []int
	err = ex.Step(ctx, "resolve-accounts", &pool, func(ctx context.Context) (any, error) {
		ids, err := s.db.Campaign.Query().
			Where(campaign.IDEQ(campaignID)).
			QueryAccounts().
			Order(ent.Asc(emailaccount.FieldID)).
			IDs(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve campaign accounts: %w", err)
		}
		if len(ids) == 0 {
			// Configuration error: the campaign cannot possibly send.
			return nil, workflow.Fatal(fmt.Errorf("campaign %d has no sender accounts attached", campaignID))
		}
		return ids, nil
	})
	if err != nil {
		return err
	}

	var recipients []recipientRow
	err = ex.Step(ctx, "resolve-recipients", &recipients, func(ctx context.Context) (any, error) {
		rows, err := s.db.CampaignLead.Query().
			Where(
				campaignlead.CampaignIDEQ(campaignID),
				campaignlead.StatusEQ(campaignlead.StatusPending),
			).
			WithLead(func(q *ent.LeadQuery) {
				q.WithCompany()
			}).
			Order(ent.Asc(campaignlead.FieldID)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve pending recipients: %w", err)
		}

		out := make([]recipientRow, 0, len(rows))
		for _, row := range rows {
			l := row.Edges.Lead
			if l == nil {
				continue
			}
			r := recipientRow{
				CampaignLeadID: row.ID,
				AccountID:      row.AccountID,
				Email:          l.Email,
				Name:           l.Name,
				Role:           l.Role,
				Custom:         l.CustomFields,
			}
			if c := l.Edges.Company; c != nil {
				r.CompanyName = c.Name
				r.CompanySubject = c.EmailSubject
				r.CompanyTemplate = c.EmailTemplate
			}
			out = append(out, r)
		}
		return out, nil
	})
	if err != nil {
		return err
	}

	var fallback fallbackTemplate
	err = ex.Step(ctx, "load-default-template", &fallback, func(ctx context.Context) (any, error) {
		owner, err := s.db.User.Get(ctx, info.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to load campaign owner: %w", err)
		}
		return fallbackTemplate{
			Subject: owner.DefaultEmailSubject,
			Body:    owner.DefaultEmailTemplate,
		}, nil
	})
	if err != nil {
		return err
	}

	var attachments []attachmentData
	err = ex.Step(ctx, "load-attachments", &attachments, func(ctx context.Context) (any, error) {
		if len(info.AttachmentKeys) == 0 {
			return []attachmentData{}, nil
		}
		if s.store == nil {
			return nil, workflow.Fatal(fmt.Errorf("campaign %d has attachments but no storage is configured", campaignID))
		}
		out := make([]attachmentData, 0, len(info.AttachmentKeys))
		for _, key := range info.AttachmentKeys {
			obj, err := s.store.Fetch(ctx, key)
			if err != nil {
				return nil, err
			}
			out = append(out, attachmentData{
				Filename:    obj.Filename,
				ContentType: obj.ContentType,
				Data:        obj.Data,
			})
		}
		return out, nil
	})
	if err != nil {
		return err
	}

	// Recipients are processed strictly sequentially with a pause between
	// sends to stay under provider rate limits. Cancellation takes effect at
	// the next step boundary, so an in-flight send always finishes.
	for i, r := range recipients {
		r := r
		stepName := fmt.Sprintf("send-recipient-%d", r.CampaignLeadID)
		var outcome sendOutcome
		err = ex.Step(ctx, stepName, &outcome, func(ctx context.Context) (any, error) {
			return s.sendToRecipient(ctx, r, fallback, attachments)
		})
		if err != nil {
			return err
		}
		if i < len(recipients)-1 {
			if err := ex.Pause(ctx, s.sendInterval); err != nil {
				return err
			}
		}
	}

	err = ex.Step(ctx, "complete", nil, func(ctx context.Context) (any, error) {
		return nil, s.db.Campaign.UpdateOneID(campaignID).
			SetStatus(campaign.StatusCompleted).
			Exec(ctx)
	})
	if err != nil {
		return err
	}

	s.metrics.CampaignsCompleted.Inc()
	s.log.Info("campaign run completed", "campaign_id", campaignID, "recipients", len(recipients))
	return nil
}

// sendToRecipient attempts one send and writes the recipient's terminal
// status before returning. A failure is recorded on the row and swallowed:
// per-recipient isolation means the campaign keeps going.
func (s *Service) sendToRecipient(ctx context.Context, r recipientRow, fallback fallbackTemplate, attachments []attachmentData) (*sendOutcome, error) {
	// Attempt only while still pending: a replayed step after a crash that
	// already wrote a terminal status must not send twice.
	row, err := s.db.CampaignLead.Get(ctx, r.CampaignLeadID)
	if err != nil {
		return nil, fmt.Errorf("failed to load campaign lead %d: %w", r.CampaignLeadID, err)
	}
	if row.Status != campaignlead.StatusPending {
		return &sendOutcome{Status: string(row.Status)}, nil
	}

	subject, body := r.CompanySubject, r.CompanyTemplate
	if subject == "" || body == "" {
		subject, body = fallback.Subject, fallback.Body
	}
	if subject == "" || body == "" {
		return s.recordFailure(ctx, r.CampaignLeadID, missingTemplateErr)
	}

	// The subject is rendered without the company variable on purpose: only
	// the body gets company substitution.
	subjectVars := templates.Vars(r.Name, r.Email, r.Role, "", r.Custom)
	bodyVars := templates.Vars(r.Name, r.Email, r.Role, r.CompanyName, r.Custom)
	renderedSubject := templates.Render(subject, subjectVars)
	renderedBody := templates.Render(body, bodyVars) + s.trackingPixel(r.CampaignLeadID)

	account, err := s.db.EmailAccount.Get(ctx, r.AccountID)
	if err != nil {
		return s.recordFailure(ctx, r.CampaignLeadID, fmt.Sprintf("sender account %d unavailable: %v", r.AccountID, err))
	}

	msg := mailer.Message{
		To:       r.Email,
		Subject:  renderedSubject,
		HTMLBody: renderedBody,
	}
	for _, att := range attachments {
		msg.Attachments = append(msg.Attachments, mailer.Attachment{
			Filename:    att.Filename,
			ContentType: att.ContentType,
			Data:        att.Data,
		})
	}

	result, err := s.provider.Send(ctx, account, msg)
	if err != nil {
		return s.recordFailure(ctx, r.CampaignLeadID, err.Error())
	}

	// The terminal write must land even when cancellation arrived mid-send:
	// the email is already out, and losing the thread id here would make its
	// replies unmatchable.
	_, err = s.db.CampaignLead.UpdateOneID(r.CampaignLeadID).
		SetStatus(campaignlead.StatusSent).
		SetSentAt(time.Now()).
		SetThreadID(result.ThreadID).
		SetMessageID(result.MessageID).
		Save(context.WithoutCancel(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to record sent status for campaign lead %d: %w", r.CampaignLeadID, err)
	}

	s.metrics.EmailsSent.Inc()
	s.log.Info("email sent", "campaign_lead_id", r.CampaignLeadID, "to", r.Email, "account", account.Email)
	return &sendOutcome{Status: string(campaignlead.StatusSent)}, nil
}

func (s *Service) recordFailure(ctx context.Context, campaignLeadID int, message string) (*sendOutcome, error) {
	_, err := s.db.CampaignLead.UpdateOneID(campaignLeadID).
		SetStatus(campaignlead.StatusFailed).
		SetErrorMessage(message).
		Save(context.WithoutCancel(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to record failure for campaign lead %d: %w", campaignLeadID, err)
	}

	s.metrics.EmailsFailed.Inc()
	s.log.Warn("email send failed", "campaign_lead_id", campaignLeadID, "error", message)
	return &sendOutcome{Status: string(campaignlead.StatusFailed), Error: message}, nil
}

func (s *Service) trackingPixel(campaignLeadID int) string {
	return fmt.Sprintf(`<img src="%s/t/open.gif?id=%d" width="1" height="1" alt="" style="display:none">`, s.baseURL, campaignLeadID)
}
