package coach

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/career-coach/internal/llm"
	"github.com/jonathan/career-coach/internal/types"
)

// MockLLMClient implements llm.Client for testing
type MockLLMClient struct {
	GenerateContentFunc func(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
}

func (m *MockLLMClient) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier, _ ...llm.GenerateOption) (string, error) {
	if m.GenerateContentFunc != nil {
		return m.GenerateContentFunc(ctx, prompt, tier)
	}
	return "Keep building depth in your current stack.", nil
}

func (m *MockLLMClient) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier, _ ...llm.GenerateOption) (string, error) {
	return "{}", nil
}

func (m *MockLLMClient) GetModel(_ llm.ModelTier) string { return "mock-model" }

func (m *MockLLMClient) Close() error { return nil }

func testCareerProfile() *types.CareerProfile {
	return &types.CareerProfile{
		CurrentRole: "Backend Engineer",
		Skills:      []string{"go", "postgres"},
		Goals:       []string{"become a staff engineer"},
	}
}

func TestSetProfile_PrependsWelcome(t *testing.T) {
	session := NewSession(&MockLLMClient{}, zap.NewNop())
	ctx := context.Background()

	welcome, err := session.SetProfile(ctx, testCareerProfile())
	require.NoError(t, err)
	assert.Equal(t, types.RoleAssistant, welcome.Role)

	_, err = session.SendMessage(ctx, "hello")
	require.NoError(t, err)
	_, err = session.SendMessage(ctx, "what next?")
	require.NoError(t, err)

	history := session.History()
	require.Len(t, history, 5)

	// Welcome first, then user/assistant pairs in call order
	assert.Equal(t, welcome.ID, history[0].ID)
	assert.Equal(t, types.RoleUser, history[1].Role)
	assert.Equal(t, "hello", history[1].Content)
	assert.Equal(t, types.RoleAssistant, history[2].Role)
	assert.Equal(t, types.RoleUser, history[3].Role)
	assert.Equal(t, "what next?", history[3].Content)
	assert.Equal(t, types.RoleAssistant, history[4].Role)
}

func TestSetProfile_ReplacementPrependsAgain(t *testing.T) {
	session := NewSession(&MockLLMClient{}, zap.NewNop())
	ctx := context.Background()

	_, err := session.SetProfile(ctx, testCareerProfile())
	require.NoError(t, err)
	_, err = session.SendMessage(ctx, "hello")
	require.NoError(t, err)

	second, err := session.SetProfile(ctx, testCareerProfile())
	require.NoError(t, err)

	history := session.History()
	assert.Equal(t, second.ID, history[0].ID)
	assert.Len(t, history, 4)
}

func TestSetProfile_NilProfile(t *testing.T) {
	session := NewSession(&MockLLMClient{}, zap.NewNop())

	_, err := session.SetProfile(context.Background(), nil)

	assert.Error(t, err)
}

func TestSendMessage_EmptyText(t *testing.T) {
	session := NewSession(&MockLLMClient{}, zap.NewNop())

	_, err := session.SendMessage(context.Background(), "")

	assert.Error(t, err)
}

func TestSendMessage_GenerationFailureApologizes(t *testing.T) {
	client := &MockLLMClient{
		GenerateContentFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return "", &llm.UnavailableError{Message: "timeout"}
		},
	}
	session := NewSession(client, zap.NewNop())

	reply, err := session.SendMessage(context.Background(), "help me")

	require.NoError(t, err)
	assert.Equal(t, apologyReply, reply.Content)

	history := session.History()
	require.Len(t, history, 2)
	assert.Equal(t, apologyReply, history[1].Content)
}

func TestSendMessage_ContextWindowBounded(t *testing.T) {
	var captured string
	client := &MockLLMClient{
		GenerateContentFunc: func(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
			captured = prompt
			return "Stay the course.", nil
		},
	}
	session := NewSession(client, zap.NewNop())
	ctx := context.Background()

	// 10 turns -> 20 stored history entries
	for i := 0; i < 10; i++ {
		_, err := session.SendMessage(ctx, "turn")
		require.NoError(t, err)
	}
	require.Len(t, session.History(), 20)

	_, err := session.SendMessage(ctx, "latest question")
	require.NoError(t, err)

	contextLines := 0
	for _, line := range strings.Split(captured, "\n") {
		if strings.HasPrefix(line, "User: ") || strings.HasPrefix(line, "Coach: ") {
			contextLines++
		}
	}
	assert.Equal(t, contextWindow, contextLines)
	assert.Contains(t, captured, "The user says: latest question")
}

func TestClearHistory_RetainsProfile(t *testing.T) {
	session := NewSession(&MockLLMClient{}, zap.NewNop())
	ctx := context.Background()

	_, err := session.SetProfile(ctx, testCareerProfile())
	require.NoError(t, err)
	_, err = session.SendMessage(ctx, "hello")
	require.NoError(t, err)

	session.ClearHistory()

	assert.Empty(t, session.History())
	require.NotNil(t, session.Profile())
	assert.Equal(t, "Backend Engineer", session.Profile().CurrentRole)
}

func TestHistory_DefensiveCopy(t *testing.T) {
	session := NewSession(&MockLLMClient{}, zap.NewNop())
	ctx := context.Background()

	_, err := session.SendMessage(ctx, "hello")
	require.NoError(t, err)

	history := session.History()
	history[0].Content = "tampered"

	assert.Equal(t, "hello", session.History()[0].Content)
}

func TestSessionsAreIsolated(t *testing.T) {
	a := NewSession(&MockLLMClient{}, zap.NewNop())
	b := NewSession(&MockLLMClient{}, zap.NewNop())
	ctx := context.Background()

	_, err := a.SendMessage(ctx, "only in a")
	require.NoError(t, err)

	assert.Len(t, a.History(), 2)
	assert.Empty(t, b.History())
}
