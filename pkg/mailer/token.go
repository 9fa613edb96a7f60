package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// tokenSkew is how close to expiry a token is still considered usable.
const tokenSkew = time.Minute

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// accessToken returns a usable access token for the account, refreshing and
// persisting it when the stored one is expired or about to expire.
func (c *Client) accessToken(ctx context.Context, accountID int) (string, error) {
	account, err := c.db.EmailAccount.Get(ctx, accountID)
	if err != nil {
		return "", fmt.Errorf("failed to load email account %d: %w", accountID, err)
	}

	if time.Until(account.TokenExpiresAt) > tokenSkew {
		return account.AccessToken, nil
	}

	tokenURL := c.tokenURLs[string(account.Provider)]
	form := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {account.RefreshToken},
	}
	switch account.Provider {
	case "outlook":
		form.Set("client_id", c.app.MicrosoftClientID)
		form.Set("client_secret", c.app.MicrosoftClientSecret)
		form.Set("scope", "https://graph.microsoft.com/.default offline_access")
	default:
		form.Set("client_id", c.app.GoogleClientID)
		form.Set("client_secret", c.app.GoogleClientSecret)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build token refresh request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("token refresh request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token refresh for %s returned status %d", account.Email, resp.StatusCode)
	}

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("token refresh for %s returned an empty access token", account.Email)
	}

	expiresAt := time.Now().Add(time.Duration(tok.ExpiresIn) * time.Second)
	_, err = c.db.EmailAccount.UpdateOneID(account.ID).
		SetAccessToken(tok.AccessToken).
		SetTokenExpiresAt(expiresAt).
		Save(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to persist refreshed token: %w", err)
	}

	c.log.Info("refreshed oauth token", "account", account.Email, "provider", account.Provider)
	return tok.AccessToken, nil
}

// authorizedRequest builds a request carrying the account's bearer token.
func (c *Client) authorizedRequest(ctx context.Context, accountID int, method, url string, body *strings.Reader) (*http.Request, error) {
	token, err := c.accessToken(ctx, accountID)
	if err != nil {
		return nil, err
	}

	var req *http.Request
	if body != nil {
		req, err = http.NewRequestWithContext(ctx, method, url, body)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, url, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return req, nil
}
