// Package azure implements llm.LLMProvider against an Azure OpenAI
// chat-completions deployment. The response is decoded defensively:
// hosted model versions have shipped several choice shapes, so the
// reply text is pulled out by an ordered list of extractors rather
// than a single struct.
package azure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"olyph-ai-be/pkg/llm"
)

type AzureProvider struct {
	Endpoint   string
	APIKey     string
	APIVersion string
	Deployment string
	Client     *http.Client
}

var _ llm.LLMProvider = &AzureProvider{}

func NewAzureProvider(endpoint, apiKey, apiVersion, deployment string) *AzureProvider {
	if apiVersion == "" {
		apiVersion = "2024-02-15-preview"
	}
	return &AzureProvider{
		Endpoint:   strings.TrimRight(endpoint, "/"),
		APIKey:     apiKey,
		APIVersion: apiVersion,
		Deployment: deployment,
		Client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// --- Request/Response structs (internal to this package) ---

type chatRequest struct {
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Choices are kept raw so the extractors below can probe each shape.
type chatResponse struct {
	Choices []json.RawMessage `json:"choices"`
}

// choiceExtractor pulls reply text out of one choice shape, returning
// "" when the shape does not apply.
type choiceExtractor func(raw json.RawMessage) string

// Extraction order is part of the contract: current message.content
// shape first, then a loosely-typed message object, then the legacy
// flat text field. The first non-empty result wins.
var choiceExtractors = []choiceExtractor{
	extractMessageContent,
	extractMessageMap,
	extractLegacyText,
}

func extractMessageContent(raw json.RawMessage) string {
	var c struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	}
	if err := json.Unmarshal(raw, &c); err != nil {
		return ""
	}
	return c.Message.Content
}

func extractMessageMap(raw json.RawMessage) string {
	var c struct {
		Message map[string]interface{} `json:"message"`
	}
	if err := json.Unmarshal(raw, &c); err != nil {
		return ""
	}
	if content, ok := c.Message["content"].(string); ok {
		return content
	}
	return ""
}

func extractLegacyText(raw json.RawMessage) string {
	var c struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(raw, &c); err != nil {
		return ""
	}
	return c.Text
}

// ExtractReply applies the extractors in order and returns the first
// non-empty reply text, or "" when no shape matched.
func ExtractReply(raw json.RawMessage) string {
	for _, extract := range choiceExtractors {
		if text := extract(raw); text != "" {
			return text
		}
	}
	return ""
}

// --- Interface implementation ---

func (p *AzureProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := &llm.Options{
		Temperature: 0.2,
	}
	for _, opt := range opts {
		opt(options)
	}

	messages := make([]chatMessage, len(history))
	for i, msg := range history {
		role := msg.Role
		if role == "model" {
			role = "assistant"
		}
		messages[i] = chatMessage{Role: role, Content: msg.Content}
	}

	deployment := p.Deployment
	if options.Model != "" {
		deployment = options.Model
	}

	payload, err := json.Marshal(chatRequest{
		Messages:    messages,
		Temperature: options.Temperature,
		MaxTokens:   options.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf(
		"%s/openai/deployments/%s/chat/completions?api-version=%s",
		p.Endpoint, deployment, p.APIVersion,
	)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", p.APIKey)

	resp, err := p.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("azure chat request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("azure chat error: status %d, body %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return "", nil
	}

	return strings.TrimSpace(ExtractReply(chatResp.Choices[0])), nil
}

func (p *AzureProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}
