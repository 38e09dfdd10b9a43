// Package insight talks to an OpenAI-compatible chat-completions API
// (DeepSeek by default) for the two best-effort AI collaborations: domain
// classification against the closed category list, and the short appraisal
// insight paragraph.
package insight

import (
	"context"
	"fmt"
	"strings"
	"time"

	"DomainWorth/internal/domain/models"

	openai "github.com/sashabaranov/go-openai"
)

const (
	DefaultBaseURL = "https://api.deepseek.com/v1"
	DefaultModel   = "deepseek-chat"

	defaultClassifyTimeout = 8 * time.Second
	defaultInsightTimeout  = 10 * time.Second

	classifyMaxTokens = 30
	insightMaxTokens  = 100

	// InsightUnavailable is what callers show when the insight call fails.
	InsightUnavailable = "Insight not available at this time."
)

type Client struct {
	client          *openai.Client
	model           string
	classifyTimeout time.Duration
	insightTimeout  time.Duration
}

type ClientConfig struct {
	APIKey          string
	BaseURL         string
	Model           string
	ClassifyTimeout time.Duration
	InsightTimeout  time.Duration
}

func NewClient(cfg ClientConfig) *Client {
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	} else {
		oc.BaseURL = DefaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	classifyTimeout := cfg.ClassifyTimeout
	if classifyTimeout <= 0 {
		classifyTimeout = defaultClassifyTimeout
	}
	insightTimeout := cfg.InsightTimeout
	if insightTimeout <= 0 {
		insightTimeout = defaultInsightTimeout
	}
	return &Client{
		client:          openai.NewClientWithConfig(oc),
		model:           model,
		classifyTimeout: classifyTimeout,
		insightTimeout:  insightTimeout,
	}
}

// Classify asks the model to pick exactly one category. The reply is
// matched strictly against the closed list first, then by substring in
// either direction. No match returns "" and nil, which callers treat as
// "fall back to Generic".
func (c *Client) Classify(ctx context.Context, domain string, categories []string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.classifyTimeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: classificationPrompt(domain, categories)},
		},
		Temperature: 0,
		MaxTokens:   classifyMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("classify %s: %w", domain, err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}

	return matchCategory(resp.Choices[0].Message.Content, categories), nil
}

// matchCategory cleans the raw model reply and resolves it against the
// allowed list. Out-of-list replies with no fuzzy match resolve to "".
func matchCategory(raw string, categories []string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.Trim(cleaned, `"'`)
	cleaned = strings.Trim(cleaned, ".,!?;:")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return ""
	}

	for _, cat := range categories {
		if cleaned == cat {
			return cat
		}
	}
	lowered := strings.ToLower(cleaned)
	for _, cat := range categories {
		lc := strings.ToLower(cat)
		if strings.Contains(lc, lowered) || strings.Contains(lowered, lc) {
			return cat
		}
	}
	return ""
}

// Insight asks for a 30-50 word buyer-facing paragraph about a finished
// appraisal. Price is deliberately kept out of the prompt instructions.
func (c *Client) Insight(ctx context.Context, result models.AppraisalResult) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.insightTimeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: insightPrompt(result)},
		},
		Temperature: 0.7,
		MaxTokens:   insightMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("insight %s: %w", result.Domain, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("insight %s: empty response", result.Domain)
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func classificationPrompt(domain string, categories []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a domain name expert.\nGiven the domain name: %q\n\n", domain)
	b.WriteString("Choose the SINGLE most appropriate category from the following list:\n\n")
	for _, cat := range categories {
		fmt.Fprintf(&b, "- %s\n", cat)
	}
	b.WriteString("\nRespond ONLY with the exact category name. Do not add explanations, punctuation, or extra text.\n")
	b.WriteString("If none match perfectly, choose the closest one.")
	return b.String()
}

func insightPrompt(result models.AppraisalResult) string {
	var b strings.Builder
	b.WriteString("You are a domain name valuation expert.\n")
	fmt.Fprintf(&b, "The domain %q belongs to the %q category.\n", result.Domain, result.Category)
	fmt.Fprintf(&b, "Key factors: %s.", strings.Join(result.Reasons, ", "))
	if len(result.ListingComparables) > 0 {
		listed := result.ListingComparables
		if len(listed) > 2 {
			listed = listed[:2]
		}
		names := make([]string, 0, len(listed))
		for _, l := range listed {
			names = append(names, fmt.Sprintf("%s ($%.0f)", l.Domain, l.Price))
		}
		fmt.Fprintf(&b, " Similar domains are currently listed on Atom: %s.", strings.Join(names, ", "))
	}
	b.WriteString("\nProvide a short paragraph (30-50 words) explaining:\n")
	b.WriteString("- Why this domain might be attractive to buyers\n")
	b.WriteString("- Which industry or use case it best fits\n")
	b.WriteString("- Do not mention the price. Be realistic and professional.")
	return b.String()
}
