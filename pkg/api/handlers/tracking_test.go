package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jordanlanch/leadreach/ent"
	"github.com/jordanlanch/leadreach/ent/campaignlead"
	"github.com/jordanlanch/leadreach/ent/enttest"
	"github.com/jordanlanch/leadreach/pkg/logger"
	"github.com/jordanlanch/leadreach/pkg/metrics"
	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	return client, func() { client.Close() }
}

func seedRecipient(t *testing.T, client *ent.Client, status campaignlead.Status) *ent.CampaignLead {
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
		SetStatus(status).
		Save(ctx)
	require.NoError(t, err)
	return row
}

func servePixel(t *testing.T, client *ent.Client, query string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/t/open.gif"+query, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewTrackingHandler(client, metrics.NewWith(prometheus.NewRegistry()), logger.Nop())
	require.NoError(t, handler.OpenPixel(c))
	return rec
}

func TestOpenPixel(t *testing.T) {
	t.Run("Success - Sent recipient moves to opened", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		row := seedRecipient(t, client, campaignlead.StatusSent)

		rec := servePixel(t, client, fmt.Sprintf("?id=%d", row.ID))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/gif", rec.Header().Get(echo.HeaderContentType))

		loaded, err := client.CampaignLead.Get(context.Background(), row.ID)
		require.NoError(t, err)
		assert.Equal(t, campaignlead.StatusOpened, loaded.Status)
		assert.NotNil(t, loaded.OpenedAt)
	})

	t.Run("Success - Pending recipient moves to opened", func(t *testing.T) {
		// The pixel can fire before the terminal sent write lands
		client, cleanup := setupTestDB(t)
		defer cleanup()
		row := seedRecipient(t, client, campaignlead.StatusPending)

		servePixel(t, client, fmt.Sprintf("?id=%d", row.ID))

		loaded, err := client.CampaignLead.Get(context.Background(), row.ID)
		require.NoError(t, err)
		assert.Equal(t, campaignlead.StatusOpened, loaded.Status)
	})

	t.Run("Success - Replied recipient keeps its status", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		row := seedRecipient(t, client, campaignlead.StatusReplied)

		servePixel(t, client, fmt.Sprintf("?id=%d", row.ID))

		loaded, err := client.CampaignLead.Get(context.Background(), row.ID)
		require.NoError(t, err)
		assert.Equal(t, campaignlead.StatusReplied, loaded.Status)
	})

	t.Run("Success - Pixel served for unknown and malformed ids", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()

		rec := servePixel(t, client, "?id=999999")
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = servePixel(t, client, "?id=not-a-number")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, pixelGIF, rec.Body.Bytes())
	})
}
