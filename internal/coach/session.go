// Package coach maintains per-user conversational state for career coaching
// sessions. A Session is the unit of isolation: one per conversation, created
// and discarded by the caller, never shared across users.
package coach

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/career-coach/internal/llm"
	"github.com/jonathan/career-coach/internal/logger"
	"github.com/jonathan/career-coach/internal/prompts"
	"github.com/jonathan/career-coach/internal/types"
)

// contextWindow bounds how many prior history entries are included in each
// prompt. Older turns stay in the stored history but are dropped from context.
const contextWindow = 5

// apologyReply is returned when the generation service fails. A coaching
// conversation always produces a reply.
const apologyReply = "I'm sorry, I'm having trouble responding right now. Please try again in a moment."

const logPreviewLimit = 200

// Session holds one user's ordered conversation history and career profile.
// Turns within a session are serialized; separate sessions are independent.
type Session struct {
	mu      sync.Mutex
	client  llm.Client
	logger  *zap.Logger
	profile *types.CareerProfile
	history []types.CareerCoachMessage
}

// NewSession creates an empty session. The logger may be zap.NewNop().
func NewSession(client llm.Client, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{client: client, logger: log}
}

// SetProfile attaches (or replaces) the session's career profile and
// synthesizes a welcome message. The welcome is the session's opening line,
// so it is prepended at position 0 rather than appended.
func (s *Session) SetProfile(ctx context.Context, profile *types.CareerProfile) (types.CareerCoachMessage, error) {
	if profile == nil {
		return types.CareerCoachMessage{}, fmt.Errorf("profile is required")
	}
	profile.Normalize()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile = profile

	prompt := buildWelcomePrompt(profile)
	reply := s.generate(ctx, prompt)

	welcome := s.newMessage(types.RoleAssistant, reply, classifyReply(reply))
	s.history = append([]types.CareerCoachMessage{welcome}, s.history...)
	return welcome, nil
}

// SendMessage records the user's message, generates a coaching reply from a
// bounded context window, classifies it, appends it to history, and returns
// it. Generation failures degrade to a fixed apology; they never surface.
func (s *Session) SendMessage(ctx context.Context, text string) (types.CareerCoachMessage, error) {
	if text == "" {
		return types.CareerCoachMessage{}, fmt.Errorf("message text is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	recent := s.history
	if len(recent) > contextWindow {
		recent = recent[len(recent)-contextWindow:]
	}

	userMsg := s.newMessage(types.RoleUser, text, "")
	s.history = append(s.history, userMsg)

	prompt := buildPrompt(s.profile, recent, text)
	reply := s.generate(ctx, prompt)

	assistantMsg := s.newMessage(types.RoleAssistant, reply, classifyReply(reply))
	s.history = append(s.history, assistantMsg)
	return assistantMsg, nil
}

// ClearHistory empties the conversation history. The profile is retained.
func (s *Session) ClearHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
}

// History returns a copy of the full ordered conversation history.
func (s *Session) History() []types.CareerCoachMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]types.CareerCoachMessage, len(s.history))
	copy(out, s.history)
	return out
}

// Profile returns a copy of the session's profile, or nil if none is set.
func (s *Session) Profile() *types.CareerProfile {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.profile == nil {
		return nil
	}
	p := *s.profile
	return &p
}

// generate calls the generation client and substitutes the apology reply on
// failure. Caller holds the session lock.
func (s *Session) generate(ctx context.Context, prompt string) string {
	reply, err := s.client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		s.logger.Warn("coach reply generation failed", zap.Error(err))
		return apologyReply
	}

	s.logger.Debug("coach reply",
		zap.String("preview", logger.TruncateForLog(reply, logPreviewLimit)))
	return reply
}

func (s *Session) newMessage(role types.MessageRole, content string, msgType types.MessageType) types.CareerCoachMessage {
	return types.CareerCoachMessage{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now().UTC(),
		Type:      msgType,
	}
}

func buildWelcomePrompt(profile *types.CareerProfile) string {
	return prompts.MustGet("coach.json", "persona") +
		"\n\nUser profile:\n" + profileSummary(profile) +
		"\n\n" + prompts.MustGet("coach.json", "welcome-instruction")
}
