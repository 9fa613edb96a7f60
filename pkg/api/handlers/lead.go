package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jordanlanch/leadreach/ent"
	"github.com/jordanlanch/leadreach/ent/company"
	"github.com/jordanlanch/leadreach/ent/lead"
	"github.com/jordanlanch/leadreach/pkg/api/errors"
	"github.com/jordanlanch/leadreach/pkg/models"
	"github.com/labstack/echo/v4"
)

// LeadHandler handles lead endpoints
type LeadHandler struct {
	db        *ent.Client
	validator *validator.Validate
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(db *ent.Client) *LeadHandler {
	return &LeadHandler{
		db:        db,
		validator: validator.New(),
	}
}

// Create adds a lead to the user's list
func (h *LeadHandler) Create(c echo.Context) error {
	userID := c.Get("user_id").(int)

	var req models.CreateLeadRequest
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

	create := h.db.Lead.Create().
		SetUserID(userID).
		SetEmail(req.Email).
		SetName(req.Name).
		SetRole(req.Role).
		SetTag(req.Tag)
	if len(req.CustomFields) > 0 {
		create.SetCustomFields(req.CustomFields)
	}

	// A company domain links the lead to an existing company or creates one
	if req.CompanyDomain != "" {
		comp, err := h.db.Company.Query().
			Where(company.DomainEQ(req.CompanyDomain)).
			Only(ctx)
		if ent.IsNotFound(err) {
			comp, err = h.db.Company.Create().
				SetDomain(req.CompanyDomain).
				SetName(req.CompanyDomain).
				Save(ctx)
		}
		if err != nil {
			return errors.DatabaseError(c, err)
		}
		create.SetCompanyID(comp.ID)
	}

	l, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return errors.ConflictError(c, "Lead with this email already exists")
		}
		return errors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusCreated, models.LeadResponse{
		ID:      l.ID,
		Email:   l.Email,
		Name:    l.Name,
		Role:    l.Role,
		Tag:     l.Tag,
		Company: req.CompanyDomain,
	})
}

// List returns the user's leads, optionally filtered by tag
func (h *LeadHandler) List(c echo.Context) error {
	userID := c.Get("user_id").(int)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	query := h.db.Lead.Query().
		Where(lead.UserIDEQ(userID)).
		WithCompany().
		Order(ent.Asc(lead.FieldID))
	if tag := c.QueryParam("tag"); tag != "" {
		query = query.Where(lead.TagEQ(tag))
	}

	leads, err := query.All(ctx)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	resp := make([]models.LeadResponse, 0, len(leads))
	for _, l := range leads {
		r := models.LeadResponse{
			ID:    l.ID,
			Email: l.Email,
			Name:  l.Name,
			Role:  l.Role,
			Tag:   l.Tag,
		}
		if l.Edges.Company != nil {
			r.Company = l.Edges.Company.Domain
		}
		resp = append(resp, r)
	}

	return c.JSON(http.StatusOK, resp)
}
