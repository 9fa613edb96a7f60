package email

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Service sends operational alert emails to the team inbox.
// Outreach emails to leads go through pkg/mailer, never through here.
type Service struct {
	fromEmail   string
	fromName    string
	alertEmail  string
	sendGridKey string
	useSendGrid bool
}

// NewService creates a new email service. When sendGridKey is empty,
// alerts are logged to the console instead of sent (development mode).
func NewService(fromEmail, fromName, alertEmail, sendGridKey string) *Service {
	return &Service{
		fromEmail:   fromEmail,
		fromName:    fromName,
		alertEmail:  alertEmail,
		sendGridKey: sendGridKey,
		useSendGrid: sendGridKey != "",
	}
}

// SendStaleEnrichmentAlert notifies the team that enrichment runs are stuck
func (s *Service) SendStaleEnrichmentAlert(domains []string) error {
	subject := fmt.Sprintf("⚠️ %d enrichment run(s) appear stuck", len(domains))

	body := "The following companies have been in 'processing' for longer than expected:\n\n"
	for _, d := range domains {
		body += fmt.Sprintf("  - %s\n", d)
	}
	body += "\nThese runs may have crashed mid-flight. Check the workflow_runs table.\n"

	return s.send(subject, body)
}

// SendCampaignErrorAlert notifies the team that a campaign run failed fatally
func (s *Service) SendCampaignErrorAlert(campaignID int, campaignName, reason string) error {
	subject := fmt.Sprintf("🚨 Campaign %q (id=%d) stopped with an error", campaignName, campaignID)
	body := fmt.Sprintf("Campaign %d stopped:\n\n  %s\n\nThe campaign is marked 'error' and will not resume on its own.\n", campaignID, reason)

	return s.send(subject, body)
}

func (s *Service) send(subject, body string) error {
	if !s.useSendGrid {
		log.Printf("📧 [ALERT] To: %s", s.alertEmail)
		log.Printf("   Subject: %s", subject)
		log.Printf("   %s", body)
		log.Printf("   ⚠️  Email NOT sent (development mode)")
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail("", s.alertEmail)
	message := mail.NewSingleEmail(from, subject, to, body, "")

	client := sendgrid.NewSendClient(s.sendGridKey)
	response, err := client.Send(message)
	if err != nil {
		log.Printf("❌ SendGrid error: %v", err)
		return fmt.Errorf("failed to send alert email: %w", err)
	}

	if response.StatusCode >= 400 {
		log.Printf("❌ SendGrid returned error status %d: %s", response.StatusCode, response.Body)
		return fmt.Errorf("sendgrid returned error status: %d", response.StatusCode)
	}

	return nil
}
