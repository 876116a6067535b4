// Package embedding provides the vector embedding client used by the job
// matching engine. Vectors from one client share a single dimensionality.
package embedding

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultModel is the embedding model used when none is configured.
const DefaultModel = "text-embedding-004"

// Client is an abstraction over the vector embedding provider.
// One outbound call per invocation; no caching, no retries.
type Client interface {
	// Embed converts text into a fixed-length vector
	Embed(ctx context.Context, text string) ([]float32, error)
	// Close releases any resources held by the client
	Close() error
}

// GeminiEmbedder implements Client for the Gemini embedding API
type GeminiEmbedder struct {
	client *genai.Client
	model  string
}

// NewGeminiEmbedder creates the Gemini-backed embedding client.
// An empty model name selects DefaultModel.
func NewGeminiEmbedder(ctx context.Context, apiKey, model string) (*GeminiEmbedder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create embedding client: %w", err)
	}

	return &GeminiEmbedder{client: client, model: model}, nil
}

// Embed converts text into a fixed-length vector.
// Service failures and malformed responses surface as *UnavailableError.
func (e *GeminiEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &UnavailableError{Message: "input text is empty"}
	}

	resp, err := e.client.EmbeddingModel(e.model).EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, &UnavailableError{Message: "embed content call failed", Cause: err}
	}

	if resp.Embedding == nil || len(resp.Embedding.Values) == 0 {
		return nil, &UnavailableError{Message: "empty embedding in response"}
	}

	return resp.Embedding.Values, nil
}

// Close releases resources held by the client
func (e *GeminiEmbedder) Close() error {
	if e.client != nil {
		return e.client.Close()
	}
	return nil
}
