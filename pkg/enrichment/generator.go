package enrichment

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Template is a generated company-specific email.
type Template struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Generator produces a company-specific email template.
type Generator interface {
	GenerateCompanyTemplate(ctx context.Context, name, domain string) (*Template, error)
}

// Validator scores generated content. Validation is advisory: a failed or
// erroring validation never blocks the pipeline.
type Validator interface {
	ValidateTemplate(ctx context.Context, tpl *Template) error
}

const generateSystemPrompt = `You are an outreach copywriter. Given a company name and domain,
write a short, personal cold email pitching a product demo. Respond with a JSON object:
{"subject": "...", "body": "..."}. The body is HTML and may use {{name}} and {{role}}
placeholders for the recipient. Keep it under 120 words.`

// OpenAIGenerator generates templates via the OpenAI chat API.
type OpenAIGenerator struct {
	client *openai.Client
	model  string
}

// NewOpenAIGenerator creates a generator. Model defaults to gpt-4-turbo-preview.
func NewOpenAIGenerator(apiKey, model string) *OpenAIGenerator {
	if model == "" {
		model = "gpt-4-turbo-preview"
	}
	return &OpenAIGenerator{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// GenerateCompanyTemplate asks the model for a subject/body pair.
func (g *OpenAIGenerator) GenerateCompanyTemplate(ctx context.Context, name, domain string) (*Template, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Temperature: 0.7,
		MaxTokens:   800,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: generateSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf("Company: %s\nDomain: %s", name, domain)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai chat failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from openai")
	}

	var tpl Template
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(content), &tpl); err != nil {
		return nil, fmt.Errorf("failed to parse generated template: %w", err)
	}
	if tpl.Subject == "" || tpl.Body == "" {
		return nil, fmt.Errorf("generated template is incomplete")
	}
	return &tpl, nil
}

const validateSystemPrompt = `You review cold outreach emails. Answer with the single word PASS
if the email is professional, personalized and free of spam patterns, otherwise FAIL followed
by a short reason.`

// ValidateTemplate asks the model to review the generated copy.
func (g *OpenAIGenerator) ValidateTemplate(ctx context.Context, tpl *Template) error {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     g.model,
		MaxTokens: 120,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: validateSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf("Subject: %s\n\n%s", tpl.Subject, tpl.Body)},
		},
	})
	if err != nil {
		return fmt.Errorf("validation call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return fmt.Errorf("no validation response")
	}
	verdict := strings.TrimSpace(resp.Choices[0].Message.Content)
	if !strings.HasPrefix(strings.ToUpper(verdict), "PASS") {
		return fmt.Errorf("validation rejected template: %s", verdict)
	}
	return nil
}
