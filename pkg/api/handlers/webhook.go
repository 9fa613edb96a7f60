package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/jordanlanch/leadreach/pkg/cache"
	"github.com/jordanlanch/leadreach/pkg/logger"
	"github.com/jordanlanch/leadreach/pkg/models"
	"github.com/jordanlanch/leadreach/pkg/replies"
	"github.com/labstack/echo/v4"
)

// dedupTTL collapses webhook bursts for the same mailbox into one poll
const dedupTTL = 30 * time.Second

// WebhookHandler handles inbound mail notifications from providers
type WebhookHandler struct {
	reconciler *replies.Service
	cache      *cache.Client
	log        logger.Logger
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(reconciler *replies.Service, c *cache.Client, log logger.Logger) *WebhookHandler {
	return &WebhookHandler{reconciler: reconciler, cache: c, log: log}
}

type inboundNotification struct {
	EmailAddress string `json:"email_address"`
}

// Inbound acknowledges a provider's new-mail notification and kicks off a
// mailbox poll in the background. Providers retry on non-2xx, so this
// always answers 200 — a bad payload is logged, not bounced.
func (h *WebhookHandler) Inbound(c echo.Context) error {
	var payload inboundNotification
	if err := c.Bind(&payload); err != nil || payload.EmailAddress == "" {
		h.log.Warn("inbound webhook with unusable payload", "error", err)
		return c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
	}

	if h.cache != nil {
		ok, err := h.cache.Acquire(c.Request().Context(), "reply_sync:"+payload.EmailAddress, dedupTTL)
		if err == nil && !ok {
			// A poll for this mailbox is already underway
			return c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
		}
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if err := h.reconciler.SyncMailbox(ctx, payload.EmailAddress); err != nil {
			h.log.Error("reply sync failed", "mailbox", payload.EmailAddress, "error", err)
		}
	}()

	return c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}
