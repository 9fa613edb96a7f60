package jobs

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jordanlanch/leadreach/ent"
	"github.com/jordanlanch/leadreach/ent/campaign"
	"github.com/jordanlanch/leadreach/ent/campaignlead"
	"github.com/jordanlanch/leadreach/ent/company"
	"github.com/jordanlanch/leadreach/ent/enttest"
	"github.com/jordanlanch/leadreach/ent/workflowrun"
	"github.com/jordanlanch/leadreach/pkg/campaigns"
	"github.com/jordanlanch/leadreach/pkg/enrichment"
	"github.com/jordanlanch/leadreach/pkg/logger"
	"github.com/jordanlanch/leadreach/pkg/mailer"
	"github.com/jordanlanch/leadreach/pkg/metrics"
	"github.com/jordanlanch/leadreach/pkg/workflow"
	_ "github.com/mattn/go-sqlite3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	return client, func() { client.Close() }
}

type countingProvider struct {
	mu    sync.Mutex
	sends int
}

func (p *countingProvider) Send(ctx context.Context, account *ent.EmailAccount, msg mailer.Message) (*mailer.SendResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sends++
	return &mailer.SendResult{
		MessageID: fmt.Sprintf("msg-%d", p.sends),
		ThreadID:  fmt.Sprintf("thread-%d", p.sends),
	}, nil
}

func (p *countingProvider) ListRecentInbox(ctx context.Context, account *ent.EmailAccount, max int) ([]mailer.MessageSummary, error) {
	return nil, nil
}

func (p *countingProvider) GetMessage(ctx context.Context, account *ent.EmailAccount, id string) (*mailer.MessageDetail, error) {
	return nil, errors.New("not implemented")
}

func (p *countingProvider) sendCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sends
}

type cannedGenerator struct{}

func (cannedGenerator) GenerateCompanyTemplate(ctx context.Context, name, domain string) (*enrichment.Template, error) {
	return &enrichment.Template{Subject: "s", Body: "b"}, nil
}

func newResumerFixture(client *ent.Client, provider mailer.Provider) *Resumer {
	runner := workflow.NewRunner(client, logger.Nop())
	campaignSvc := campaigns.NewService(client, runner, provider, nil, nil,
		metrics.NewWith(prometheus.NewRegistry()), logger.Nop(), campaigns.Options{
			SendInterval: time.Millisecond,
			BaseURL:      "http://test.local",
		})
	enrichSvc := enrichment.NewService(client, runner, cannedGenerator{}, nil, logger.Nop(), 3)
	return NewResumer(client, campaignSvc, enrichSvc, logger.Nop())
}

// seedInterruptedCampaign models a process that died mid-run: the campaign is
// running, its workflow run row is still marked running, and its recipients
// are pending.
func seedInterruptedCampaign(t *testing.T, client *ent.Client, leads int) *ent.Campaign {
	ctx := context.Background()

	user, err := client.User.Create().
		SetEmail("owner@test.com").
		SetPasswordHash("x").
		SetName("Owner").
		Save(ctx)
	require.NoError(t, err)

	account, err := client.EmailAccount.Create().
		SetUserID(user.ID).
		SetEmail("sender@test.com").
		SetProvider("gmail").
		SetAccessToken("token").
		SetRefreshToken("refresh").
		SetTokenExpiresAt(time.Now().Add(time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	cmp, err := client.Campaign.Create().
		SetName("Interrupted").
		SetUserID(user.ID).
		SetStatus(campaign.StatusRunning).
		AddAccounts(account).
		Save(ctx)
	require.NoError(t, err)

	for i := 0; i < leads; i++ {
		l, err := client.Lead.Create().
			SetUserID(user.ID).
			SetEmail(fmt.Sprintf("lead%d@acme.com", i)).
			SetName(fmt.Sprintf("Lead %d", i)).
			Save(ctx)
		require.NoError(t, err)
		_, err = client.CampaignLead.Create().
			SetCampaignID(cmp.ID).
			SetLeadID(l.ID).
			SetAccountID(account.ID).
			Save(ctx)
		require.NoError(t, err)
	}

	_, err = client.User.UpdateOneID(user.ID).
		SetDefaultEmailSubject("Hi {{name}}").
		SetDefaultEmailTemplate("<p>Hello {{name}}</p>").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.WorkflowRun.Create().
		SetKind(workflowrun.KindCampaignSend).
		SetEntityID(cmp.ID).
		Save(ctx)
	require.NoError(t, err)

	return cmp
}

func TestResumeInterrupted_CampaignRun(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	provider := &countingProvider{}
	resumer := newResumerFixture(client, provider)
	cmp := seedInterruptedCampaign(t, client, 3)

	// The crash happened after the first recipient went out
	first, err := client.CampaignLead.Query().
		Where(campaignlead.CampaignIDEQ(cmp.ID)).
		Order(ent.Asc(campaignlead.FieldID)).
		First(ctx)
	require.NoError(t, err)
	_, err = client.CampaignLead.UpdateOneID(first.ID).
		SetStatus(campaignlead.StatusSent).
		SetSentAt(time.Now()).
		SetThreadID("thread-before-crash").
		SetMessageID("msg-before-crash").
		Save(ctx)
	require.NoError(t, err)

	resumed, err := resumer.ResumeInterrupted(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, resumed)

	loaded, err := client.Campaign.Get(ctx, cmp.ID)
	require.NoError(t, err)
	assert.Equal(t, campaign.StatusCompleted, loaded.Status, "resumed campaign runs to completion")

	assert.Equal(t, 2, provider.sendCount(), "only the recipients still pending go out")

	sent, err := client.CampaignLead.Query().
		Where(campaignlead.CampaignIDEQ(cmp.ID), campaignlead.StatusEQ(campaignlead.StatusSent)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, sent)

	reloaded, err := client.CampaignLead.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "thread-before-crash", reloaded.ThreadID, "the pre-crash send is untouched")
}

func TestResumeInterrupted_EnrichmentRun(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	resumer := newResumerFixture(client, &countingProvider{})

	comp, err := client.Company.Create().
		SetDomain("acme.com").
		SetName("Acme").
		SetEnrichmentStatus(company.EnrichmentStatusProcessing).
		SetEnrichmentStartedAt(time.Now().Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.WorkflowRun.Create().
		SetKind(workflowrun.KindCompanyEnrichment).
		SetEntityID(comp.ID).
		Save(ctx)
	require.NoError(t, err)

	resumed, err := resumer.ResumeInterrupted(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, resumed)

	loaded, err := client.Company.Get(ctx, comp.ID)
	require.NoError(t, err)
	assert.Equal(t, company.EnrichmentStatusCompleted, loaded.EnrichmentStatus, "resumed enrichment runs to completion")
}

func TestResumeInterrupted_NothingToResume(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	resumer := newResumerFixture(client, &countingProvider{})

	resumed, err := resumer.ResumeInterrupted(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, resumed)
}
