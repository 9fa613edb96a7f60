package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jordanlanch/leadreach/ent"
	"github.com/jordanlanch/leadreach/pkg/api/errors"
	"github.com/jordanlanch/leadreach/pkg/campaigns"
	"github.com/jordanlanch/leadreach/pkg/models"
	"github.com/labstack/echo/v4"
)

// CampaignHandler handles campaign endpoints
type CampaignHandler struct {
	db        *ent.Client
	service   *campaigns.Service
	validator *validator.Validate
}

// NewCampaignHandler creates a new campaign handler
func NewCampaignHandler(db *ent.Client, service *campaigns.Service) *CampaignHandler {
	return &CampaignHandler{
		db:        db,
		service:   service,
		validator: validator.New(),
	}
}

// Create creates a draft campaign
func (h *CampaignHandler) Create(c echo.Context) error {
	userID := c.Get("user_id").(int)

	var req campaigns.CreateCampaignRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	campaign, err := h.service.CreateCampaign(c.Request().Context(), userID, req)
	if err != nil {
		return errors.BadRequestError(c, err.Error())
	}

	return c.JSON(http.StatusCreated, campaignResponse(campaign))
}

// List returns the user's campaigns
func (h *CampaignHandler) List(c echo.Context) error {
	userID := c.Get("user_id").(int)

	list, err := h.service.ListCampaigns(c.Request().Context(), userID)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	resp := make([]models.CampaignResponse, 0, len(list))
	for _, cp := range list {
		resp = append(resp, campaignResponse(cp))
	}

	return c.JSON(http.StatusOK, resp)
}

// Get returns a single campaign
func (h *CampaignHandler) Get(c echo.Context) error {
	userID := c.Get("user_id").(int)

	campaignID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.BadRequestError(c, "Invalid campaign id")
	}

	campaign, err := h.service.GetCampaign(c.Request().Context(), userID, campaignID)
	if err != nil {
		if ent.IsNotFound(err) {
			return errors.NotFoundError(c, "campaign")
		}
		return errors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, campaignResponse(campaign))
}

// Stats returns per-recipient status counts for a campaign
func (h *CampaignHandler) Stats(c echo.Context) error {
	userID := c.Get("user_id").(int)

	campaignID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.BadRequestError(c, "Invalid campaign id")
	}

	stats, err := h.service.GetStats(c.Request().Context(), userID, campaignID)
	if err != nil {
		if ent.IsNotFound(err) {
			return errors.NotFoundError(c, "campaign")
		}
		return errors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, stats)
}

// Launch schedules a draft campaign and starts its send run
func (h *CampaignHandler) Launch(c echo.Context) error {
	userID := c.Get("user_id").(int)

	campaignID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.BadRequestError(c, "Invalid campaign id")
	}

	campaign, err := h.service.Launch(c.Request().Context(), userID, campaignID)
	if err != nil {
		if ent.IsNotFound(err) {
			return errors.NotFoundError(c, "campaign")
		}
		return errors.BadRequestError(c, err.Error())
	}

	// The send run outlives the HTTP request
	go func() {
		_ = h.service.Run(context.Background(), campaign.ID)
	}()

	return c.JSON(http.StatusOK, campaignResponse(campaign))
}

// Cancel stops a scheduled or running campaign
func (h *CampaignHandler) Cancel(c echo.Context) error {
	userID := c.Get("user_id").(int)

	campaignID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.BadRequestError(c, "Invalid campaign id")
	}

	if err := h.service.Cancel(c.Request().Context(), userID, campaignID); err != nil {
		if ent.IsNotFound(err) {
			return errors.NotFoundError(c, "campaign")
		}
		return errors.BadRequestError(c, err.Error())
	}

	return c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "Campaign cancelled",
	})
}

func campaignResponse(cp *ent.Campaign) models.CampaignResponse {
	resp := models.CampaignResponse{
		ID:        cp.ID,
		Name:      cp.Name,
		Status:    string(cp.Status),
		CreatedAt: cp.CreatedAt.Format(time.RFC3339),
	}
	if cp.ScheduledAt != nil {
		resp.ScheduledAt = cp.ScheduledAt.Format(time.RFC3339)
	}
	if cp.Edges.CampaignLeads != nil {
		resp.Recipients = len(cp.Edges.CampaignLeads)
	}
	return resp
}
