package embedding

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// AzureProvider implements Provider against an Azure OpenAI embeddings
// deployment. Any transport error or unexpected response shape surfaces
// as an error so the caller can fall back to bag-of-words. No retries.
type AzureProvider struct {
	client     *openai.Client
	deployment string
}

var _ Provider = &AzureProvider{}

// NewAzureProvider builds an embeddings client for the given Azure
// endpoint, key and deployment name.
func NewAzureProvider(endpoint, apiKey, apiVersion, deployment string) *AzureProvider {
	cfg := openai.DefaultAzureConfig(apiKey, endpoint)
	if apiVersion != "" {
		cfg.APIVersion = apiVersion
	}
	return &AzureProvider{
		client:     openai.NewClientWithConfig(cfg),
		deployment: deployment,
	}
}

// Generate embeds a single text. Empty input returns ErrEmptyText
// without calling the API.
func (p *AzureProvider) Generate(ctx context.Context, text string) ([]float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}

	resp, err := p.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.EmbeddingModel(p.deployment),
	})
	if err != nil {
		return nil, fmt.Errorf("azure embedding call: %w", err)
	}
	if len(resp.Data) == 0 || len(resp.Data[0].Embedding) == 0 {
		return nil, fmt.Errorf("azure embedding: response carried no vector")
	}

	vec := make([]float64, len(resp.Data[0].Embedding))
	for i, v := range resp.Data[0].Embedding {
		vec[i] = float64(v)
	}
	return vec, nil
}
