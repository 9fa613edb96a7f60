package campaigns

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jordanlanch/leadreach/ent"
	"github.com/jordanlanch/leadreach/ent/campaign"
	"github.com/jordanlanch/leadreach/ent/campaignlead"
	"github.com/jordanlanch/leadreach/ent/enttest"
	"github.com/jordanlanch/leadreach/ent/workflowrun"
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

// fakeProvider records outbound sends instead of talking to Gmail/Outlook
type fakeProvider struct {
	mu      sync.Mutex
	sends   []mailer.Message
	senders []string
	failFor map[string]error
	onSend  func(sendCount int)
}

func (f *fakeProvider) Send(ctx context.Context, account *ent.EmailAccount, msg mailer.Message) (*mailer.SendResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err, ok := f.failFor[msg.To]; ok {
		return nil, err
	}

	f.sends = append(f.sends, msg)
	f.senders = append(f.senders, account.Email)
	n := len(f.sends)
	if f.onSend != nil {
		f.onSend(n)
	}
	return &mailer.SendResult{
		MessageID: fmt.Sprintf("msg-%d", n),
		ThreadID:  fmt.Sprintf("thread-%d", n),
	}, nil
}

func (f *fakeProvider) ListRecentInbox(ctx context.Context, account *ent.EmailAccount, max int) ([]mailer.MessageSummary, error) {
	return nil, nil
}

func (f *fakeProvider) GetMessage(ctx context.Context, account *ent.EmailAccount, id string) (*mailer.MessageDetail, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeProvider) sendCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sends)
}

func createTestUser(t *testing.T, client *ent.Client, email string) *ent.User {
	u, err := client.User.Create().
		SetEmail(email).
		SetPasswordHash("x").
		SetName("Test User").
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func createTestAccount(t *testing.T, client *ent.Client, userID int, email string) *ent.EmailAccount {
	a, err := client.EmailAccount.Create().
		SetUserID(userID).
		SetEmail(email).
		SetProvider("gmail").
		SetAccessToken("token").
		SetRefreshToken("refresh").
		SetTokenExpiresAt(time.Now().Add(time.Hour)).
		Save(context.Background())
	require.NoError(t, err)
	return a
}

func createEnrichedCompany(t *testing.T, client *ent.Client, domain string) *ent.Company {
	c, err := client.Company.Create().
		SetDomain(domain).
		SetName(strings.TrimSuffix(domain, ".com")).
		SetEnrichmentStatus("completed").
		SetEmailSubject("About {{name}}").
		SetEmailTemplate("<p>Hi {{name}} at {{company}}</p>").
		Save(context.Background())
	require.NoError(t, err)
	return c
}

func createTestLead(t *testing.T, client *ent.Client, userID int, email string, companyID *int) *ent.Lead {
	create := client.Lead.Create().
		SetUserID(userID).
		SetEmail(email).
		SetName("Lead " + email).
		SetRole("CTO")
	if companyID != nil {
		create.SetCompanyID(*companyID)
	}
	l, err := create.Save(context.Background())
	require.NoError(t, err)
	return l
}

func newTestService(client *ent.Client, provider mailer.Provider) *Service {
	runner := workflow.NewRunner(client, logger.Nop())
	m := metrics.NewWith(prometheus.NewRegistry())
	return NewService(client, runner, provider, nil, nil, m, logger.Nop(), Options{
		SendInterval: time.Millisecond,
		BaseURL:      "http://test.local",
	})
}

func TestRun_SendsAllRecipients(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	provider := &fakeProvider{}
	service := newTestService(client, provider)

	user := createTestUser(t, client, "owner@test.com")
	a1 := createTestAccount(t, client, user.ID, "sender-a@test.com")
	a2 := createTestAccount(t, client, user.ID, "sender-b@test.com")

	var leadIDs []int
	for i := 0; i < 3; i++ {
		comp := createEnrichedCompany(t, client, fmt.Sprintf("acme%d.com", i))
		l := createTestLead(t, client, user.ID, fmt.Sprintf("lead%d@acme%d.com", i, i), &comp.ID)
		leadIDs = append(leadIDs, l.ID)
	}

	cmp, err := service.CreateCampaign(ctx, user.ID, CreateCampaignRequest{
		Name:       "Launch",
		AccountIDs: []int{a1.ID, a2.ID},
		LeadIDs:    leadIDs,
	})
	require.NoError(t, err)

	require.NoError(t, service.Run(ctx, cmp.ID))

	loaded, err := client.Campaign.Get(ctx, cmp.ID)
	require.NoError(t, err)
	assert.Equal(t, campaign.StatusCompleted, loaded.Status)

	assert.Equal(t, 3, provider.sendCount())
	// Round robin over the sorted pool: a, b, a
	assert.Equal(t, []string{"sender-a@test.com", "sender-b@test.com", "sender-a@test.com"}, provider.senders)

	rows, err := client.CampaignLead.Query().
		Where(campaignlead.CampaignIDEQ(cmp.ID)).
		All(ctx)
	require.NoError(t, err)
	for _, row := range rows {
		assert.Equal(t, campaignlead.StatusSent, row.Status)
		assert.NotEmpty(t, row.ThreadID)
		assert.NotEmpty(t, row.MessageID)
		assert.NotNil(t, row.SentAt)
	}

	// Body rendered with lead and company vars, plus the tracking pixel
	assert.Contains(t, provider.sends[0].HTMLBody, "Lead lead0@acme0.com at acme0")
	assert.Contains(t, provider.sends[0].HTMLBody, "http://test.local/t/open.gif?id=")
}

func TestRun_SubjectSkipsCompanyVariable(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	provider := &fakeProvider{}
	service := newTestService(client, provider)

	user := createTestUser(t, client, "owner@test.com")
	account := createTestAccount(t, client, user.ID, "sender@test.com")

	comp, err := client.Company.Create().
		SetDomain("acme.com").
		SetName("Acme").
		SetEnrichmentStatus("completed").
		SetEmailSubject("News for {{company}} and {{name}}").
		SetEmailTemplate("<p>{{company}} body</p>").
		Save(ctx)
	require.NoError(t, err)
	l := createTestLead(t, client, user.ID, "lead@acme.com", &comp.ID)

	cmp, err := service.CreateCampaign(ctx, user.ID, CreateCampaignRequest{
		Name:       "Subject test",
		AccountIDs: []int{account.ID},
		LeadIDs:    []int{l.ID},
	})
	require.NoError(t, err)
	require.NoError(t, service.Run(ctx, cmp.ID))

	require.Equal(t, 1, provider.sendCount())
	// The company variable is only rendered in the body
	assert.Equal(t, "News for {{company}} and Lead lead@acme.com", provider.sends[0].Subject)
	assert.Contains(t, provider.sends[0].HTMLBody, "Acme body")
}

func TestRun_MixedTemplateAvailability(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	provider := &fakeProvider{}
	service := newTestService(client, provider)

	// Owner has no default template configured
	user := createTestUser(t, client, "owner@test.com")
	account := createTestAccount(t, client, user.ID, "sender@test.com")

	var leadIDs []int
	for i := 0; i < 3; i++ {
		comp := createEnrichedCompany(t, client, fmt.Sprintf("good%d.com", i))
		l := createTestLead(t, client, user.ID, fmt.Sprintf("ok%d@good%d.com", i, i), &comp.ID)
		leadIDs = append(leadIDs, l.ID)
	}
	for i := 0; i < 2; i++ {
		l := createTestLead(t, client, user.ID, fmt.Sprintf("bare%d@nowhere.com", i), nil)
		leadIDs = append(leadIDs, l.ID)
	}

	cmp, err := service.CreateCampaign(ctx, user.ID, CreateCampaignRequest{
		Name:       "Mixed",
		AccountIDs: []int{account.ID},
		LeadIDs:    leadIDs,
	})
	require.NoError(t, err)

	// Recipient failures never fail the run
	require.NoError(t, service.Run(ctx, cmp.ID))

	loaded, err := client.Campaign.Get(ctx, cmp.ID)
	require.NoError(t, err)
	assert.Equal(t, campaign.StatusCompleted, loaded.Status)

	assert.Equal(t, 3, provider.sendCount())

	sent, err := client.CampaignLead.Query().
		Where(campaignlead.CampaignIDEQ(cmp.ID), campaignlead.StatusEQ(campaignlead.StatusSent)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, sent)

	failed, err := client.CampaignLead.Query().
		Where(campaignlead.CampaignIDEQ(cmp.ID), campaignlead.StatusEQ(campaignlead.StatusFailed)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, failed, 2)
	for _, row := range failed {
		assert.Equal(t, missingTemplateErr, row.ErrorMessage)
	}
}

func TestRun_UsesOwnerDefaultTemplate(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	provider := &fakeProvider{}
	service := newTestService(client, provider)

	user, err := client.User.Create().
		SetEmail("owner@test.com").
		SetPasswordHash("x").
		SetName("Owner").
		SetDefaultEmailSubject("Quick question, {{name}}").
		SetDefaultEmailTemplate("<p>Hello {{name}}</p>").
		Save(ctx)
	require.NoError(t, err)

	account := createTestAccount(t, client, user.ID, "sender@test.com")
	l := createTestLead(t, client, user.ID, "lead@nowhere.com", nil)

	cmp, err := service.CreateCampaign(ctx, user.ID, CreateCampaignRequest{
		Name:       "Default",
		AccountIDs: []int{account.ID},
		LeadIDs:    []int{l.ID},
	})
	require.NoError(t, err)
	require.NoError(t, service.Run(ctx, cmp.ID))

	require.Equal(t, 1, provider.sendCount())
	assert.Equal(t, "Quick question, Lead lead@nowhere.com", provider.sends[0].Subject)
	assert.Contains(t, provider.sends[0].HTMLBody, "Hello Lead lead@nowhere.com")
}

func TestRun_ProviderFailureIsIsolated(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	provider := &fakeProvider{
		failFor: map[string]error{"lead1@acme1.com": errors.New("mailbox over quota")},
	}
	service := newTestService(client, provider)

	user := createTestUser(t, client, "owner@test.com")
	account := createTestAccount(t, client, user.ID, "sender@test.com")

	var leadIDs []int
	for i := 0; i < 3; i++ {
		comp := createEnrichedCompany(t, client, fmt.Sprintf("acme%d.com", i))
		l := createTestLead(t, client, user.ID, fmt.Sprintf("lead%d@acme%d.com", i, i), &comp.ID)
		leadIDs = append(leadIDs, l.ID)
	}

	cmp, err := service.CreateCampaign(ctx, user.ID, CreateCampaignRequest{
		Name:       "Isolation",
		AccountIDs: []int{account.ID},
		LeadIDs:    leadIDs,
	})
	require.NoError(t, err)
	require.NoError(t, service.Run(ctx, cmp.ID))

	loaded, err := client.Campaign.Get(ctx, cmp.ID)
	require.NoError(t, err)
	assert.Equal(t, campaign.StatusCompleted, loaded.Status)

	assert.Equal(t, 2, provider.sendCount())

	failed, err := client.CampaignLead.Query().
		Where(campaignlead.CampaignIDEQ(cmp.ID), campaignlead.StatusEQ(campaignlead.StatusFailed)).
		Only(ctx)
	require.NoError(t, err)
	assert.Contains(t, failed.ErrorMessage, "mailbox over quota")
}

func TestRun_ReplayDoesNotResend(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	provider := &fakeProvider{}
	service := newTestService(client, provider)

	user := createTestUser(t, client, "owner@test.com")
	account := createTestAccount(t, client, user.ID, "sender@test.com")

	var leadIDs []int
	for i := 0; i < 3; i++ {
		comp := createEnrichedCompany(t, client, fmt.Sprintf("acme%d.com", i))
		l := createTestLead(t, client, user.ID, fmt.Sprintf("lead%d@acme%d.com", i, i), &comp.ID)
		leadIDs = append(leadIDs, l.ID)
	}

	cmp, err := service.CreateCampaign(ctx, user.ID, CreateCampaignRequest{
		Name:       "Replay",
		AccountIDs: []int{account.ID},
		LeadIDs:    leadIDs,
	})
	require.NoError(t, err)
	require.NoError(t, service.Run(ctx, cmp.ID))
	require.Equal(t, 3, provider.sendCount())

	// Simulate a crash after completion was lost: flip the run back to
	// running and replay the workflow from its step log.
	run, err := client.WorkflowRun.Query().
		Where(workflowrun.KindEQ(workflowrun.KindCampaignSend), workflowrun.EntityIDEQ(cmp.ID)).
		Only(ctx)
	require.NoError(t, err)
	_, err = client.WorkflowRun.UpdateOneID(run.ID).
		SetStatus(workflowrun.StatusRunning).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, service.Run(ctx, cmp.ID))

	// Every send step replays from cache; no duplicate emails go out
	assert.Equal(t, 3, provider.sendCount())

	loaded, err := client.Campaign.Get(ctx, cmp.ID)
	require.NoError(t, err)
	assert.Equal(t, campaign.StatusCompleted, loaded.Status)
}

func TestRun_CancellationStopsPendingSends(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	provider := &fakeProvider{}
	service := newTestService(client, provider)

	user := createTestUser(t, client, "owner@test.com")
	account := createTestAccount(t, client, user.ID, "sender@test.com")

	var leadIDs []int
	for i := 0; i < 4; i++ {
		comp := createEnrichedCompany(t, client, fmt.Sprintf("acme%d.com", i))
		l := createTestLead(t, client, user.ID, fmt.Sprintf("lead%d@acme%d.com", i, i), &comp.ID)
		leadIDs = append(leadIDs, l.ID)
	}

	cmp, err := service.CreateCampaign(ctx, user.ID, CreateCampaignRequest{
		Name:       "Cancel",
		AccountIDs: []int{account.ID},
		LeadIDs:    leadIDs,
	})
	require.NoError(t, err)

	_, err = service.Launch(ctx, user.ID, cmp.ID)
	require.NoError(t, err)

	// Cancel arrives while the second send is in flight: that send is allowed
	// to finish and is durably recorded, nothing after it starts.
	provider.onSend = func(sendCount int) {
		if sendCount == 2 {
			require.NoError(t, service.Cancel(context.Background(), user.ID, cmp.ID))
		}
	}

	require.NoError(t, service.Run(ctx, cmp.ID))

	assert.Equal(t, 2, provider.sendCount(), "no sends start after cancellation")

	loaded, err := client.Campaign.Get(ctx, cmp.ID)
	require.NoError(t, err)
	assert.Equal(t, campaign.StatusCancelled, loaded.Status)

	sent, err := client.CampaignLead.Query().
		Where(campaignlead.CampaignIDEQ(cmp.ID), campaignlead.StatusEQ(campaignlead.StatusSent)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, sent, 2, "every attempted recipient keeps its terminal status")
	for _, row := range sent {
		assert.NotEmpty(t, row.ThreadID, "delivered emails must stay matchable to replies")
		assert.NotEmpty(t, row.MessageID)
	}

	cancelled, err := client.CampaignLead.Query().
		Where(campaignlead.CampaignIDEQ(cmp.ID), campaignlead.StatusEQ(campaignlead.StatusCancelled)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, cancelled)
}

func TestRun_MissingAccountsIsFatal(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	provider := &fakeProvider{}
	service := newTestService(client, provider)

	user := createTestUser(t, client, "owner@test.com")
	comp := createEnrichedCompany(t, client, "acme.com")
	l := createTestLead(t, client, user.ID, "lead@acme.com", &comp.ID)

	// Bypass CreateCampaign validation to model a corrupted campaign
	cmp, err := client.Campaign.Create().
		SetName("Broken").
		SetUserID(user.ID).
		Save(ctx)
	require.NoError(t, err)
	account := createTestAccount(t, client, user.ID, "sender@test.com")
	_, err = client.CampaignLead.Create().
		SetCampaignID(cmp.ID).
		SetLeadID(l.ID).
		SetAccountID(account.ID).
		Save(ctx)
	require.NoError(t, err)

	err = service.Run(ctx, cmp.ID)
	require.Error(t, err)
	assert.True(t, workflow.IsFatal(err))

	loaded, err := client.Campaign.Get(ctx, cmp.ID)
	require.NoError(t, err)
	assert.Equal(t, campaign.StatusError, loaded.Status)
	assert.Contains(t, loaded.ErrorMessage, "no sender accounts")
}
