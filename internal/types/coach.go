package types

import "time"

// MessageRole identifies which side of the conversation produced a message.
type MessageRole string

// Conversation roles
const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// MessageType classifies an assistant reply by its conversational intent.
type MessageType string

// Reply classifications, in heuristic precedence order
const (
	TypeQuestion   MessageType = "question"
	TypeInsight    MessageType = "insight"
	TypeSuggestion MessageType = "suggestion"
	TypeAdvice     MessageType = "advice"
)

// CareerCoachMessage is one immutable entry in a coaching session's history.
// Insertion order is chronological order.
type CareerCoachMessage struct {
	ID        string      `json:"id"`
	Role      MessageRole `json:"role"`
	Content   string      `json:"content"`
	Timestamp time.Time   `json:"timestamp"`
	Type      MessageType `json:"type"`
}
