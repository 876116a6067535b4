package coach

import (
	"strings"

	"github.com/jonathan/career-coach/internal/prompts"
	"github.com/jonathan/career-coach/internal/types"
)

// buildPrompt assembles the coaching prompt: persona preamble, serialized
// profile (when set), the bounded recent history, and the new user message.
func buildPrompt(profile *types.CareerProfile, recent []types.CareerCoachMessage, text string) string {
	var sb strings.Builder

	sb.WriteString(prompts.MustGet("coach.json", "persona"))
	sb.WriteString("\n\n")

	if profile != nil {
		sb.WriteString("User profile:\n")
		sb.WriteString(profileSummary(profile))
		sb.WriteString("\n\n")
	}

	if len(recent) > 0 {
		sb.WriteString("Recent conversation:\n")
		for _, msg := range recent {
			switch msg.Role {
			case types.RoleUser:
				sb.WriteString("User: ")
			case types.RoleAssistant:
				sb.WriteString("Coach: ")
			}
			sb.WriteString(msg.Content)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("The user says: ")
	sb.WriteString(text)
	sb.WriteString("\n\nReply as the coach.")
	return sb.String()
}

// profileSummary serializes a career profile into prompt text. Empty sections
// are omitted.
func profileSummary(p *types.CareerProfile) string {
	var sb strings.Builder

	sb.WriteString("Current role: ")
	sb.WriteString(p.CurrentRole)
	sb.WriteString("\n")

	writeLine(&sb, "Experience", p.Experience)
	writeLine(&sb, "Skills", p.Skills)
	writeLine(&sb, "Interests", p.Interests)
	writeLine(&sb, "Goals", p.Goals)
	writeLine(&sb, "Education", p.Education)
	writeLine(&sb, "Challenges", p.Challenges)
	writeLine(&sb, "Achievements", p.Achievements)

	return strings.TrimSpace(sb.String())
}

func writeLine(sb *strings.Builder, name string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(name)
	sb.WriteString(": ")
	sb.WriteString(strings.Join(items, "; "))
	sb.WriteString("\n")
}
