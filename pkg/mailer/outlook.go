package mailer

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jordanlanch/leadreach/ent"
)

// Outlook sends go through a create-draft-then-send pair: the Graph sendMail
// endpoint returns no body, so the draft roundtrip is the only way to learn
// the message and conversation ids needed for reply tracking.
func (c *Client) sendOutlook(ctx context.Context, account *ent.EmailAccount, msg Message) (*SendResult, error) {
	draft := map[string]any{
		"subject": msg.Subject,
		"body": map[string]string{
			"contentType": "HTML",
			"content":     msg.HTMLBody,
		},
		"toRecipients": []map[string]any{
			{"emailAddress": map[string]string{"address": msg.To}},
		},
	}
	if len(msg.Attachments) > 0 {
		attachments := make([]map[string]any, 0, len(msg.Attachments))
		for _, att := range msg.Attachments {
			contentType := att.ContentType
			if contentType == "" {
				contentType = "application/octet-stream"
			}
			attachments = append(attachments, map[string]any{
				"@odata.type":  "#microsoft.graph.fileAttachment",
				"name":         att.Filename,
				"contentType":  contentType,
				"contentBytes": base64.StdEncoding.EncodeToString(att.Data),
			})
		}
		draft["attachments"] = attachments
	}

	payload, err := json.Marshal(draft)
	if err != nil {
		return nil, fmt.Errorf("failed to encode draft payload: %w", err)
	}

	req, err := c.authorizedRequest(ctx, account.ID, http.MethodPost, c.graphBaseURL+"/me/messages", strings.NewReader(string(payload)))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("outlook draft creation failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("outlook draft for %s returned status %d", account.Email, resp.StatusCode)
	}

	var created struct {
		ID             string `json:"id"`
		ConversationID string `json:"conversationId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("failed to decode draft response: %w", err)
	}

	sendReq, err := c.authorizedRequest(ctx, account.ID, http.MethodPost, c.graphBaseURL+"/me/messages/"+created.ID+"/send", strings.NewReader(""))
	if err != nil {
		return nil, err
	}

	sendResp, err := c.http.Do(sendReq)
	if err != nil {
		return nil, fmt.Errorf("outlook send failed: %w", err)
	}
	defer sendResp.Body.Close()

	if sendResp.StatusCode != http.StatusAccepted {
		return nil, fmt.Errorf("outlook send for %s returned status %d", account.Email, sendResp.StatusCode)
	}

	return &SendResult{MessageID: created.ID, ThreadID: created.ConversationID}, nil
}

func (c *Client) listOutlook(ctx context.Context, account *ent.EmailAccount, max int) ([]MessageSummary, error) {
	url := fmt.Sprintf("%s/me/mailFolders/inbox/messages?$top=%d&$select=id&$orderby=receivedDateTime desc", c.graphBaseURL, max)
	req, err := c.authorizedRequest(ctx, account.ID, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("outlook list failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("outlook list for %s returned status %d", account.Email, resp.StatusCode)
	}

	var out struct {
		Value []struct {
			ID string `json:"id"`
		} `json:"value"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode outlook list response: %w", err)
	}

	summaries := make([]MessageSummary, 0, len(out.Value))
	for _, m := range out.Value {
		summaries = append(summaries, MessageSummary{ID: m.ID})
	}
	return summaries, nil
}

func (c *Client) getOutlook(ctx context.Context, account *ent.EmailAccount, id string) (*MessageDetail, error) {
	url := fmt.Sprintf("%s/me/messages/%s?$select=id,conversationId,subject,bodyPreview,from,receivedDateTime", c.graphBaseURL, id)
	req, err := c.authorizedRequest(ctx, account.ID, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("outlook get failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("outlook get %s for %s returned status %d", id, account.Email, resp.StatusCode)
	}

	var out struct {
		ID               string `json:"id"`
		ConversationID   string `json:"conversationId"`
		Subject          string `json:"subject"`
		BodyPreview      string `json:"bodyPreview"`
		ReceivedDateTime string `json:"receivedDateTime"`
		From             struct {
			EmailAddress struct {
				Address string `json:"address"`
			} `json:"emailAddress"`
		} `json:"from"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode outlook message: %w", err)
	}

	detail := &MessageDetail{
		ID:         out.ID,
		ThreadID:   out.ConversationID,
		Subject:    out.Subject,
		From:       out.From.EmailAddress.Address,
		Snippet:    out.BodyPreview,
		ReceivedAt: time.Now(),
	}
	if t, err := time.Parse(time.RFC3339, out.ReceivedDateTime); err == nil {
		detail.ReceivedAt = t
	}
	return detail, nil
}
