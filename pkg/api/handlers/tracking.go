package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/jordanlanch/leadreach/ent"
	"github.com/jordanlanch/leadreach/ent/campaignlead"
	"github.com/jordanlanch/leadreach/pkg/logger"
	"github.com/jordanlanch/leadreach/pkg/metrics"
	"github.com/labstack/echo/v4"
)

// transparent 1x1 GIF
var pixelGIF = []byte{
	0x47, 0x49, 0x46, 0x38, 0x39, 0x61, 0x01, 0x00, 0x01, 0x00, 0x80, 0x00,
	0x00, 0x00, 0x00, 0x00, 0xff, 0xff, 0xff, 0x21, 0xf9, 0x04, 0x01, 0x00,
	0x00, 0x00, 0x00, 0x2c, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00,
	0x00, 0x02, 0x02, 0x44, 0x01, 0x00, 0x3b,
}

// TrackingHandler serves the open-tracking pixel
type TrackingHandler struct {
	db      *ent.Client
	metrics *metrics.Metrics
	log     logger.Logger
}

// NewTrackingHandler creates a new tracking handler
func NewTrackingHandler(db *ent.Client, m *metrics.Metrics, log logger.Logger) *TrackingHandler {
	return &TrackingHandler{db: db, metrics: m, log: log}
}

// OpenPixel records an email open and serves the pixel. It always returns
// the image, whatever happens on the write path, so broken ids or db
// hiccups never surface in the recipient's mail client.
func (h *TrackingHandler) OpenPixel(c echo.Context) error {
	if id, err := strconv.Atoi(c.QueryParam("id")); err == nil {
		h.recordOpen(c.Request().Context(), id)
	}

	c.Response().Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
	return c.Blob(http.StatusOK, "image/gif", pixelGIF)
}

func (h *TrackingHandler) recordOpen(ctx context.Context, campaignLeadID int) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// A pending row can see an open when the pixel fires before the sent
	// status lands; terminal and replied rows never move backwards.
	n, err := h.db.CampaignLead.Update().
		Where(
			campaignlead.IDEQ(campaignLeadID),
			campaignlead.StatusIn(campaignlead.StatusPending, campaignlead.StatusSent),
		).
		SetStatus(campaignlead.StatusOpened).
		SetOpenedAt(time.Now()).
		Save(ctx)
	if err != nil {
		h.log.Warn("failed to record open", "campaign_lead_id", campaignLeadID, "error", err)
		return
	}
	if n > 0 {
		h.metrics.OpensTracked.Inc()
	}
}
