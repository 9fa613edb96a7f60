package replies

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jordanlanch/leadreach/ent"
	"github.com/jordanlanch/leadreach/ent/campaignlead"
	"github.com/jordanlanch/leadreach/ent/enttest"
	"github.com/jordanlanch/leadreach/ent/reply"
	"github.com/jordanlanch/leadreach/pkg/logger"
	"github.com/jordanlanch/leadreach/pkg/mailer"
	"github.com/jordanlanch/leadreach/pkg/metrics"
	_ "github.com/mattn/go-sqlite3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	return client, func() { client.Close() }
}

// fakeInbox serves a canned set of inbox messages
type fakeInbox struct {
	summaries []mailer.MessageSummary
	messages  map[string]*mailer.MessageDetail
	fetchErr  map[string]error
	fetches   int
}

func (f *fakeInbox) Send(ctx context.Context, account *ent.EmailAccount, msg mailer.Message) (*mailer.SendResult, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeInbox) ListRecentInbox(ctx context.Context, account *ent.EmailAccount, max int) ([]mailer.MessageSummary, error) {
	if len(f.summaries) > max {
		return f.summaries[:max], nil
	}
	return f.summaries, nil
}

func (f *fakeInbox) GetMessage(ctx context.Context, account *ent.EmailAccount, id string) (*mailer.MessageDetail, error) {
	f.fetches++
	if err, ok := f.fetchErr[id]; ok {
		return nil, err
	}
	detail, ok := f.messages[id]
	if !ok {
		return nil, errors.New("message not found")
	}
	return detail, nil
}

type fixture struct {
	account *ent.EmailAccount
	row     *ent.CampaignLead
}

// seedSentCampaign creates one user, one connected mailbox and one sent
// campaign recipient tracked under threadID/sentMessageID.
func seedSentCampaign(t *testing.T, client *ent.Client, threadID, sentMessageID string) fixture {
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

	l, err := client.Lead.Create().
		SetUserID(user.ID).
		SetEmail("lead@acme.com").
		SetName("Lead").
		Save(ctx)
	require.NoError(t, err)

	cmp, err := client.Campaign.Create().
		SetName("Campaign").
		SetUserID(user.ID).
		AddAccounts(account).
		Save(ctx)
	require.NoError(t, err)

	row, err := client.CampaignLead.Create().
		SetCampaignID(cmp.ID).
		SetLeadID(l.ID).
		SetAccountID(account.ID).
		SetStatus(campaignlead.StatusSent).
		SetSentAt(time.Now()).
		SetThreadID(threadID).
		SetMessageID(sentMessageID).
		Save(ctx)
	require.NoError(t, err)

	return fixture{account: account, row: row}
}

func newTestService(client *ent.Client, provider mailer.Provider) *Service {
	return NewService(client, provider, metrics.NewWith(prometheus.NewRegistry()), logger.Nop(), 10)
}

func TestSyncMailbox_RecordsReply(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	fx := seedSentCampaign(t, client, "thread-1", "sent-1")

	inbox := &fakeInbox{
		summaries: []mailer.MessageSummary{{ID: "reply-1"}},
		messages: map[string]*mailer.MessageDetail{
			"reply-1": {
				ID:         "reply-1",
				ThreadID:   "thread-1",
				Subject:    "Re: hello",
				From:       "lead@acme.com",
				Snippet:    "Sounds interesting",
				ReceivedAt: time.Now(),
			},
		},
	}
	service := newTestService(client, inbox)

	require.NoError(t, service.SyncMailbox(ctx, fx.account.Email))

	recorded, err := client.Reply.Query().Where(reply.MessageIDEQ("reply-1")).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "thread-1", recorded.ThreadID)
	assert.Equal(t, fx.row.ID, recorded.CampaignLeadID)
	assert.Equal(t, "Sounds interesting", recorded.Snippet)

	row, err := client.CampaignLead.Get(ctx, fx.row.ID)
	require.NoError(t, err)
	assert.Equal(t, campaignlead.StatusReplied, row.Status)
	assert.NotNil(t, row.RepliedAt)
}

func TestSyncMailbox_Idempotent(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	fx := seedSentCampaign(t, client, "thread-1", "sent-1")

	inbox := &fakeInbox{
		summaries: []mailer.MessageSummary{{ID: "reply-1"}},
		messages: map[string]*mailer.MessageDetail{
			"reply-1": {ID: "reply-1", ThreadID: "thread-1", ReceivedAt: time.Now()},
		},
	}
	service := newTestService(client, inbox)

	require.NoError(t, service.SyncMailbox(ctx, fx.account.Email))
	require.NoError(t, service.SyncMailbox(ctx, fx.account.Email))

	count, err := client.Reply.Query().Where(reply.MessageIDEQ("reply-1")).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "re-processing a known message id records nothing new")

	// Second pass short-circuits on the stored reply before fetching
	assert.Equal(t, 1, inbox.fetches)
}

func TestSyncMailbox_UnknownMailboxIsNoOp(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := newTestService(client, &fakeInbox{})
	require.NoError(t, service.SyncMailbox(context.Background(), "stranger@nowhere.com"))
}

func TestSyncMailbox_SkipsOwnMessageAndForeignThreads(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	fx := seedSentCampaign(t, client, "thread-1", "sent-1")

	inbox := &fakeInbox{
		summaries: []mailer.MessageSummary{
			{ID: "sent-1"},     // our own outbound message in the tracked thread
			{ID: "personal"},   // a thread no campaign ever sent in
			{ID: "threadless"}, // no thread id at all
		},
		messages: map[string]*mailer.MessageDetail{
			"sent-1":     {ID: "sent-1", ThreadID: "thread-1", ReceivedAt: time.Now()},
			"personal":   {ID: "personal", ThreadID: "thread-other", ReceivedAt: time.Now()},
			"threadless": {ID: "threadless", ReceivedAt: time.Now()},
		},
	}
	service := newTestService(client, inbox)

	require.NoError(t, service.SyncMailbox(ctx, fx.account.Email))

	count, err := client.Reply.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	row, err := client.CampaignLead.Get(ctx, fx.row.ID)
	require.NoError(t, err)
	assert.Equal(t, campaignlead.StatusSent, row.Status, "own message never counts as a reply")
}

func TestSyncMailbox_MessageFailureIsIsolated(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	fx := seedSentCampaign(t, client, "thread-1", "sent-1")

	inbox := &fakeInbox{
		summaries: []mailer.MessageSummary{{ID: "broken"}, {ID: "reply-1"}},
		messages: map[string]*mailer.MessageDetail{
			"reply-1": {ID: "reply-1", ThreadID: "thread-1", ReceivedAt: time.Now()},
		},
		fetchErr: map[string]error{"broken": errors.New("transient provider error")},
	}
	service := newTestService(client, inbox)

	// The failing message is logged and skipped; the rest of the batch runs.
	require.NoError(t, service.SyncMailbox(ctx, fx.account.Email))

	count, err := client.Reply.Query().Where(reply.MessageIDEQ("reply-1")).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
