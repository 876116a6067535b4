package matching

import (
	"math"
	"strings"

	"github.com/jonathan/career-coach/internal/types"
)

// Fallback score shape: matched ratio scaled into [5, 90] so a keyword-only
// score never claims a perfect match.
const (
	fallbackScoreScale = 85
	fallbackScoreFloor = 5
)

// KeywordMatchFallback computes a match result from case-insensitive substring
// matching of skills against the job description. It is the terminal branch of
// MatchJob and can never fail.
func KeywordMatchFallback(skills []string, jobDescription string) *types.JobMatchResult {
	descLower := strings.ToLower(jobDescription)

	matched := make([]string, 0, len(skills))
	missing := make([]string, 0, len(skills))
	for _, skill := range skills {
		if skill == "" {
			continue
		}
		if strings.Contains(descLower, strings.ToLower(skill)) {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	score := fallbackScoreFloor
	if len(skills) > 0 {
		ratio := float64(len(matched)) / float64(len(skills))
		score = int(math.Round(ratio*fallbackScoreScale)) + fallbackScoreFloor
	}
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	return &types.JobMatchResult{
		Score:           score,
		Reasoning:       "Match estimated from keyword overlap between your skills and the job description",
		MatchingSkills:  matched,
		MissingSkills:   missing,
		Recommendations: genericRecommendations(),
	}
}

// genericRecommendations returns the fixed advice used when no job-specific
// analysis is available.
func genericRecommendations() []string {
	return []string{
		"Add the missing keywords from the job description to your profile where they genuinely apply",
		"Highlight projects that demonstrate the skills this role asks for",
		"Tailor your resume summary to mirror the language of the job description",
	}
}
