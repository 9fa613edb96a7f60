package models

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,min=2"`
}

// AuthResponse represents an authentication response
type AuthResponse struct {
	Token string    `json:"token"`
	User  *UserInfo `json:"user"`
}

// UserInfo represents user information in responses
type UserInfo struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// SuccessResponse represents a success response
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// CreateAccountRequest represents a request to connect an email account
type CreateAccountRequest struct {
	Email        string `json:"email" validate:"required,email"`
	Provider     string `json:"provider" validate:"required,oneof=gmail outlook"`
	AccessToken  string `json:"access_token" validate:"required"`
	RefreshToken string `json:"refresh_token" validate:"required"`
	ExpiresAt    string `json:"expires_at,omitempty"`
}

// AccountResponse represents a connected email account in responses
type AccountResponse struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	Provider string `json:"provider"`
	Active   bool   `json:"active"`
}

// CreateLeadRequest represents a request to create a lead
type CreateLeadRequest struct {
	Email         string            `json:"email" validate:"required,email"`
	Name          string            `json:"name,omitempty"`
	Role          string            `json:"role,omitempty"`
	Tag           string            `json:"tag,omitempty"`
	CompanyDomain string            `json:"company_domain,omitempty"`
	CustomFields  map[string]string `json:"custom_fields,omitempty"`
}

// LeadResponse represents a lead in responses
type LeadResponse struct {
	ID      int    `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Tag     string `json:"tag,omitempty"`
	Company string `json:"company,omitempty"`
}

// CampaignResponse represents a campaign in responses
type CampaignResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	ScheduledAt string `json:"scheduled_at,omitempty"`
	Recipients  int    `json:"recipients"`
	CreatedAt   string `json:"created_at"`
}

// EnrichCompanyRequest represents a request to enrich a company
type EnrichCompanyRequest struct {
	Domain string `json:"domain" validate:"required,fqdn"`
	Name   string `json:"name,omitempty"`
}
