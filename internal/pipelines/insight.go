package pipelines

import (
	"context"

	"go.uber.org/zap"

	"github.com/jonathan/career-coach/internal/llm"
	"github.com/jonathan/career-coach/internal/prompts"
	"github.com/jonathan/career-coach/internal/types"
)

// InsightPipeline generates career insights from a profile. It never fails:
// without a profile it returns a single synthetic insight asking the user to
// complete their profile, and service failures degrade the same way.
type InsightPipeline struct {
	client llm.Client
	logger *zap.Logger
}

// NewInsightPipeline creates an insight pipeline. The logger may be zap.NewNop().
func NewInsightPipeline(client llm.Client, log *zap.Logger) *InsightPipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &InsightPipeline{client: client, logger: log}
}

// Generate produces 3-5 insights for the given profile, or the default
// insight set when no profile is attached or generation degrades.
func (p *InsightPipeline) Generate(ctx context.Context, profile *types.CareerProfile) []types.CareerInsight {
	if profile == nil {
		return defaultInsights()
	}

	prompt := prompts.Format(prompts.MustGet("pipelines.json", "career-insights"), map[string]string{
		"ProfileText": profileText(profile),
	})

	var insights []types.CareerInsight
	if err := generateInto(ctx, p.client, llm.TierStandard, prompt, insightsSchema, &insights); err != nil {
		logDegraded(p.logger, "insights", err)
		return defaultInsights()
	}

	return insights
}

// defaultInsights is the safe fallback: a single synthetic, actionable insight.
func defaultInsights() []types.CareerInsight {
	return []types.CareerInsight{
		{
			Category:    "profile",
			Title:       "Complete your profile",
			Description: "Add your experience, skills, and goals so we can generate insights tailored to your career.",
			Priority:    types.PriorityHigh,
			Actionable:  true,
		},
	}
}
