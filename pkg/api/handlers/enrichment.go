package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jordanlanch/leadreach/ent"
	"github.com/jordanlanch/leadreach/ent/company"
	"github.com/jordanlanch/leadreach/pkg/api/errors"
	"github.com/jordanlanch/leadreach/pkg/enrichment"
	"github.com/jordanlanch/leadreach/pkg/logger"
	"github.com/jordanlanch/leadreach/pkg/models"
	"github.com/labstack/echo/v4"
)

// EnrichmentHandler handles company template generation endpoints
type EnrichmentHandler struct {
	db        *ent.Client
	service   *enrichment.Service
	log       logger.Logger
	validator *validator.Validate
}

// NewEnrichmentHandler creates a new enrichment handler
func NewEnrichmentHandler(db *ent.Client, service *enrichment.Service, log logger.Logger) *EnrichmentHandler {
	return &EnrichmentHandler{
		db:        db,
		service:   service,
		log:       log,
		validator: validator.New(),
	}
}

type companyStatusResponse struct {
	ID              int    `json:"id"`
	Domain          string `json:"domain"`
	Name            string `json:"name"`
	Status          string `json:"status"`
	EmailSubject    string `json:"email_subject,omitempty"`
	EmailTemplate   string `json:"email_template,omitempty"`
	EnrichmentError string `json:"enrichment_error,omitempty"`
}

// Enrich registers a company (if new) and starts template generation
func (h *EnrichmentHandler) Enrich(c echo.Context) error {
	var req models.EnrichCompanyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	comp, err := h.db.Company.Query().
		Where(company.DomainEQ(req.Domain)).
		Only(ctx)
	if ent.IsNotFound(err) {
		name := req.Name
		if name == "" {
			name = req.Domain
		}
		comp, err = h.db.Company.Create().
			SetDomain(req.Domain).
			SetName(name).
			Save(ctx)
	}
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if err := h.service.EnrichCompany(ctx, comp.ID); err != nil {
			h.log.Error("enrichment failed", "company_id", comp.ID, "error", err)
		}
	}()

	return c.JSON(http.StatusAccepted, companyStatus(comp))
}

// Get returns a company's enrichment state and generated template
func (h *EnrichmentHandler) Get(c echo.Context) error {
	companyID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.BadRequestError(c, "Invalid company id")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	comp, err := h.db.Company.Get(ctx, companyID)
	if err != nil {
		if ent.IsNotFound(err) {
			return errors.NotFoundError(c, "company")
		}
		return errors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, companyStatus(comp))
}

func companyStatus(comp *ent.Company) companyStatusResponse {
	return companyStatusResponse{
		ID:              comp.ID,
		Domain:          comp.Domain,
		Name:            comp.Name,
		Status:          string(comp.EnrichmentStatus),
		EmailSubject:    comp.EmailSubject,
		EmailTemplate:   comp.EmailTemplate,
		EnrichmentError: comp.EnrichmentError,
	}
}
