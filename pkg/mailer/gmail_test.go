package mailer

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRawMIME_PlainHTML(t *testing.T) {
	raw, err := buildRawMIME("sender@test.com", "Sender Name", Message{
		To:       "lead@acme.com",
		Subject:  "Quick question",
		HTMLBody: "<p>Hello</p>",
	})
	require.NoError(t, err)

	decoded, err := base64.URLEncoding.DecodeString(raw)
	require.NoError(t, err)
	payload := string(decoded)

	assert.Contains(t, payload, "From: Sender Name <sender@test.com>\r\n")
	assert.Contains(t, payload, "To: lead@acme.com\r\n")
	assert.Contains(t, payload, "Subject: Quick question\r\n")
	assert.Contains(t, payload, "Content-Type: text/html; charset=UTF-8\r\n\r\n<p>Hello</p>")
	assert.NotContains(t, payload, "multipart/mixed")
}

func TestBuildRawMIME_NoDisplayName(t *testing.T) {
	raw, err := buildRawMIME("sender@test.com", "", Message{
		To:       "lead@acme.com",
		Subject:  "s",
		HTMLBody: "b",
	})
	require.NoError(t, err)

	decoded, err := base64.URLEncoding.DecodeString(raw)
	require.NoError(t, err)
	assert.Contains(t, string(decoded), "From: sender@test.com\r\n")
}

func TestBuildRawMIME_WithAttachment(t *testing.T) {
	raw, err := buildRawMIME("sender@test.com", "Sender", Message{
		To:       "lead@acme.com",
		Subject:  "Deck attached",
		HTMLBody: "<p>See attached</p>",
		Attachments: []Attachment{
			{Filename: "deck.pdf", ContentType: "application/pdf", Data: []byte("%PDF-fake")},
		},
	})
	require.NoError(t, err)

	decoded, err := base64.URLEncoding.DecodeString(raw)
	require.NoError(t, err)
	payload := string(decoded)

	assert.Contains(t, payload, "Content-Type: multipart/mixed; boundary=")
	assert.Contains(t, payload, "<p>See attached</p>")
	assert.Contains(t, payload, `attachment; filename="deck.pdf"`)
	assert.Contains(t, payload, base64.StdEncoding.EncodeToString([]byte("%PDF-fake")))
}

func TestParseRFC2822Date(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"Mon, 02 Jan 2006 15:04:05 -0700", time.Date(2006, 1, 2, 15, 4, 5, 0, time.FixedZone("", -7*3600))},
		{"Mon, 02 Jan 2006 15:04:05 MST", time.Date(2006, 1, 2, 15, 4, 5, 0, time.FixedZone("MST", 0))},
		{"Mon, 2 Jan 2006 15:04:05 -0700", time.Date(2006, 1, 2, 15, 4, 5, 0, time.FixedZone("", -7*3600))},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseRFC2822Date(tt.in)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v want %v", got, tt.want)
		})
	}

	_, err := parseRFC2822Date("yesterday-ish")
	assert.Error(t, err)

	_, err = parseRFC2822Date(strings.Repeat("x", 10))
	assert.Error(t, err)
}
