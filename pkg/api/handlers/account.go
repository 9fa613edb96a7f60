package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jordanlanch/leadreach/ent"
	"github.com/jordanlanch/leadreach/ent/emailaccount"
	"github.com/jordanlanch/leadreach/pkg/api/errors"
	"github.com/jordanlanch/leadreach/pkg/models"
	"github.com/labstack/echo/v4"
)

// AccountHandler handles connected mailbox endpoints
type AccountHandler struct {
	db        *ent.Client
	validator *validator.Validate
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(db *ent.Client) *AccountHandler {
	return &AccountHandler{
		db:        db,
		validator: validator.New(),
	}
}

// Create connects an email account for sending
func (h *AccountHandler) Create(c echo.Context) error {
	userID := c.Get("user_id").(int)

	var req models.CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	expiresAt := time.Now()
	if req.ExpiresAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.ExpiresAt)
		if err != nil {
			return errors.BadRequestError(c, "expires_at must be RFC3339")
		}
		expiresAt = parsed
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	account, err := h.db.EmailAccount.Create().
		SetUserID(userID).
		SetEmail(req.Email).
		SetProvider(emailaccount.Provider(req.Provider)).
		SetAccessToken(req.AccessToken).
		SetRefreshToken(req.RefreshToken).
		SetTokenExpiresAt(expiresAt).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return errors.ConflictError(c, "This mailbox is already connected")
		}
		return errors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusCreated, models.AccountResponse{
		ID:       account.ID,
		Email:    account.Email,
		Provider: string(account.Provider),
		Active:   account.Active,
	})
}

// List returns the user's connected mailboxes
func (h *AccountHandler) List(c echo.Context) error {
	userID := c.Get("user_id").(int)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	accounts, err := h.db.EmailAccount.Query().
		Where(emailaccount.UserIDEQ(userID)).
		Order(ent.Asc(emailaccount.FieldID)).
		All(ctx)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	resp := make([]models.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		resp = append(resp, models.AccountResponse{
			ID:       a.ID,
			Email:    a.Email,
			Provider: string(a.Provider),
			Active:   a.Active,
		})
	}

	return c.JSON(http.StatusOK, resp)
}
