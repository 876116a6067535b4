package matching

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/career-coach/internal/embedding"
	"github.com/jonathan/career-coach/internal/llm"
	"github.com/jonathan/career-coach/internal/types"
)

// MockEmbedder implements embedding.Client for testing
type MockEmbedder struct {
	EmbedFunc func(ctx context.Context, text string) ([]float32, error)
}

func (m *MockEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if m.EmbedFunc != nil {
		return m.EmbedFunc(ctx, text)
	}
	return []float32{1, 0, 0}, nil
}

func (m *MockEmbedder) Close() error { return nil }

// MockLLMClient implements llm.Client for testing
type MockLLMClient struct {
	GenerateContentFunc func(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
	GenerateJSONFunc    func(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
}

func (m *MockLLMClient) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier, _ ...llm.GenerateOption) (string, error) {
	if m.GenerateContentFunc != nil {
		return m.GenerateContentFunc(ctx, prompt, tier)
	}
	return "", nil
}

func (m *MockLLMClient) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier, _ ...llm.GenerateOption) (string, error) {
	if m.GenerateJSONFunc != nil {
		return m.GenerateJSONFunc(ctx, prompt, tier)
	}
	return `{"reasoning": "mock", "matchingSkills": [], "missingSkills": [], "recommendations": []}`, nil
}

func (m *MockLLMClient) GetModel(_ llm.ModelTier) string { return "mock-model" }

func (m *MockLLMClient) Close() error { return nil }

func testProfile() *types.CandidateProfile {
	return &types.CandidateProfile{
		Skills:     []string{"go", "postgres"},
		Experience: []string{"3 years backend development"},
		Education:  []string{"BSc Computer Science"},
		Projects:   []string{"payments service"},
	}
}

func TestMatchJob_HappyPath(t *testing.T) {
	embedder := &MockEmbedder{
		EmbedFunc: func(_ context.Context, _ string) ([]float32, error) {
			return []float32{1, 0}, nil
		},
	}
	client := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return `{
				"reasoning": "Strong backend alignment",
				"matchingSkills": ["go"],
				"missingSkills": ["kubernetes"],
				"recommendations": ["Learn kubernetes basics", "Highlight the payments service", "Mention postgres tuning"]
			}`, nil
		},
	}

	engine := NewEngine(embedder, client, zap.NewNop())
	result, err := engine.MatchJob(context.Background(), testProfile(), "Backend Engineer", "Go and Kubernetes")

	require.NoError(t, err)
	// Identical vectors: cosine 1.0 -> score 100
	assert.Equal(t, 100, result.Score)
	assert.Equal(t, "Strong backend alignment", result.Reasoning)
	assert.Equal(t, []string{"go"}, result.MatchingSkills)
	assert.Equal(t, []string{"kubernetes"}, result.MissingSkills)
	assert.Len(t, result.Recommendations, 3)
}

func TestMatchJob_EmbeddingFailureFallsBack(t *testing.T) {
	embedder := &MockEmbedder{
		EmbedFunc: func(_ context.Context, _ string) ([]float32, error) {
			return nil, &embedding.UnavailableError{Message: "service down"}
		},
	}
	client := &MockLLMClient{}

	engine := NewEngine(embedder, client, zap.NewNop())
	result, err := engine.MatchJob(context.Background(), testProfile(), "Backend Engineer", "We use Go daily")

	require.NoError(t, err)
	require.NotNil(t, result)
	// Keyword fallback: "go" matches, "postgres" does not -> round(0.5*85)+5
	assert.Equal(t, 48, result.Score)
	assert.Equal(t, []string{"go"}, result.MatchingSkills)
	assert.Equal(t, []string{"postgres"}, result.MissingSkills)
}

func TestMatchJob_GenerationFailureKeepsScore(t *testing.T) {
	embedder := &MockEmbedder{
		EmbedFunc: func(_ context.Context, _ string) ([]float32, error) {
			return []float32{0.3, 0.7, -0.2}, nil
		},
	}
	client := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return "", &llm.UnavailableError{Message: "timeout"}
		},
	}

	engine := NewEngine(embedder, client, zap.NewNop())
	result, err := engine.MatchJob(context.Background(), testProfile(), "Backend Engineer", "Go services")

	require.NoError(t, err)
	// Identical vectors -> 100, qualitative fields fall back to defaults
	assert.Equal(t, 100, result.Score)
	assert.Equal(t, defaultReasoning, result.Reasoning)
	assert.Empty(t, result.MatchingSkills)
	assert.Empty(t, result.MissingSkills)
	assert.Len(t, result.Recommendations, 3)
}

func TestMatchJob_MalformedAnalysisKeepsScore(t *testing.T) {
	embedder := &MockEmbedder{}
	client := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return "I am unable to produce JSON today.", nil
		},
	}

	engine := NewEngine(embedder, client, zap.NewNop())
	result, err := engine.MatchJob(context.Background(), testProfile(), "Backend Engineer", "Go services")

	require.NoError(t, err)
	assert.Equal(t, 100, result.Score)
	assert.Equal(t, defaultReasoning, result.Reasoning)
}

func TestMatchJob_NilProfile(t *testing.T) {
	engine := NewEngine(&MockEmbedder{}, &MockLLMClient{}, zap.NewNop())

	_, err := engine.MatchJob(context.Background(), nil, "title", "description")

	assert.Error(t, err)
}

func TestMatchJob_EmptyJobDescriptionIsNotAnError(t *testing.T) {
	embedder := &MockEmbedder{
		EmbedFunc: func(_ context.Context, _ string) ([]float32, error) {
			return nil, &embedding.UnavailableError{Message: "down"}
		},
	}

	engine := NewEngine(embedder, &MockLLMClient{}, zap.NewNop())
	result, err := engine.MatchJob(context.Background(), testProfile(), "", "")

	require.NoError(t, err)
	assert.Equal(t, 5, result.Score)
}

func TestFlattenProfile(t *testing.T) {
	text := flattenProfile(testProfile())

	assert.Contains(t, text, "Skills: go, postgres")
	assert.Contains(t, text, "Experience: 3 years backend development")
	assert.Contains(t, text, "Projects: payments service")
}
