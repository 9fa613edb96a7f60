package mailer

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/jordanlanch/leadreach/ent"
)

// buildRawMIME assembles the RFC 2822 payload Gmail expects. With attachments
// the message is a multipart/mixed structure, otherwise a bare HTML part.
func buildRawMIME(from, fromName string, msg Message) (string, error) {
	var buf bytes.Buffer

	fromHeader := from
	if fromName != "" {
		fromHeader = fmt.Sprintf("%s <%s>", fromName, from)
	}
	fmt.Fprintf(&buf, "From: %s\r\n", fromHeader)
	fmt.Fprintf(&buf, "To: %s\r\n", msg.To)
	fmt.Fprintf(&buf, "Subject: %s\r\n", msg.Subject)
	buf.WriteString("MIME-Version: 1.0\r\n")

	if len(msg.Attachments) == 0 {
		buf.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
		buf.WriteString(msg.HTMLBody)
		return base64.URLEncoding.EncodeToString(buf.Bytes()), nil
	}

	writer := multipart.NewWriter(&buf)
	fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%s\r\n\r\n", writer.Boundary())

	htmlHeader := textproto.MIMEHeader{}
	htmlHeader.Set("Content-Type", "text/html; charset=UTF-8")
	htmlPart, err := writer.CreatePart(htmlHeader)
	if err != nil {
		return "", fmt.Errorf("failed to create html part: %w", err)
	}
	if _, err := htmlPart.Write([]byte(msg.HTMLBody)); err != nil {
		return "", fmt.Errorf("failed to write html part: %w", err)
	}

	for _, att := range msg.Attachments {
		header := textproto.MIMEHeader{}
		contentType := att.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		header.Set("Content-Type", contentType)
		header.Set("Content-Transfer-Encoding", "base64")
		header.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", att.Filename))
		part, err := writer.CreatePart(header)
		if err != nil {
			return "", fmt.Errorf("failed to create attachment part: %w", err)
		}
		if _, err := part.Write([]byte(base64.StdEncoding.EncodeToString(att.Data))); err != nil {
			return "", fmt.Errorf("failed to write attachment %s: %w", att.Filename, err)
		}
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize mime payload: %w", err)
	}

	return base64.URLEncoding.EncodeToString(buf.Bytes()), nil
}

func (c *Client) sendGmail(ctx context.Context, account *ent.EmailAccount, msg Message) (*SendResult, error) {
	raw, err := buildRawMIME(account.Email, account.DisplayName, msg)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(map[string]string{"raw": raw})
	if err != nil {
		return nil, fmt.Errorf("failed to encode send payload: %w", err)
	}

	url := c.gmailBaseURL + "/users/me/messages/send"
	req, err := c.authorizedRequest(ctx, account.ID, http.MethodPost, url, strings.NewReader(string(payload)))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gmail send failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gmail send for %s returned status %d", account.Email, resp.StatusCode)
	}

	var out struct {
		ID       string `json:"id"`
		ThreadID string `json:"threadId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode gmail send response: %w", err)
	}

	return &SendResult{MessageID: out.ID, ThreadID: out.ThreadID}, nil
}

func (c *Client) listGmail(ctx context.Context, account *ent.EmailAccount, max int) ([]MessageSummary, error) {
	url := fmt.Sprintf("%s/users/me/messages?maxResults=%d&labelIds=INBOX", c.gmailBaseURL, max)
	req, err := c.authorizedRequest(ctx, account.ID, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gmail list failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gmail list for %s returned status %d", account.Email, resp.StatusCode)
	}

	var out struct {
		Messages []struct {
			ID string `json:"id"`
		} `json:"messages"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode gmail list response: %w", err)
	}

	summaries := make([]MessageSummary, 0, len(out.Messages))
	for _, m := range out.Messages {
		summaries = append(summaries, MessageSummary{ID: m.ID})
	}
	return summaries, nil
}

func (c *Client) getGmail(ctx context.Context, account *ent.EmailAccount, id string) (*MessageDetail, error) {
	url := fmt.Sprintf("%s/users/me/messages/%s?format=metadata&metadataHeaders=Subject&metadataHeaders=From&metadataHeaders=Date", c.gmailBaseURL, id)
	req, err := c.authorizedRequest(ctx, account.ID, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gmail get failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gmail get %s for %s returned status %d", id, account.Email, resp.StatusCode)
	}

	var out struct {
		ID           string `json:"id"`
		ThreadID     string `json:"threadId"`
		Snippet      string `json:"snippet"`
		InternalDate string `json:"internalDate"`
		Payload      struct {
			Headers []struct {
				Name  string `json:"name"`
				Value string `json:"value"`
			} `json:"headers"`
		} `json:"payload"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode gmail message: %w", err)
	}

	detail := &MessageDetail{
		ID:         out.ID,
		ThreadID:   out.ThreadID,
		Snippet:    out.Snippet,
		ReceivedAt: time.Now(),
	}
	for _, h := range out.Payload.Headers {
		switch strings.ToLower(h.Name) {
		case "subject":
			detail.Subject = h.Value
		case "from":
			detail.From = h.Value
		case "date":
			if t, err := parseRFC2822Date(h.Value); err == nil {
				detail.ReceivedAt = t
			}
		}
	}
	return detail, nil
}

func parseRFC2822Date(v string) (time.Time, error) {
	for _, layout := range []string{time.RFC1123Z, time.RFC1123, "Mon, 2 Jan 2006 15:04:05 -0700"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %s", v)
}
