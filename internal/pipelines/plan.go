package pipelines

import (
	"context"

	"go.uber.org/zap"

	"github.com/jonathan/career-coach/internal/llm"
	"github.com/jonathan/career-coach/internal/prompts"
	"github.com/jonathan/career-coach/internal/types"
)

// PlanPipeline generates a full career plan. Unlike insights, a plan without
// a profile is meaningless and a partial plan is not useful, so both
// conditions surface as caller-visible errors.
type PlanPipeline struct {
	client llm.Client
	logger *zap.Logger
}

// NewPlanPipeline creates a plan pipeline. The logger may be zap.NewNop().
func NewPlanPipeline(client llm.Client, log *zap.Logger) *PlanPipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &PlanPipeline{client: client, logger: log}
}

// Generate produces a career plan for the given profile.
// Returns *ProfileRequiredError when profile is nil and
// *PlanGenerationFailedError when the service fails or returns a malformed plan.
func (p *PlanPipeline) Generate(ctx context.Context, profile *types.CareerProfile) (*types.CareerPlan, error) {
	if profile == nil {
		return nil, &ProfileRequiredError{Operation: "career plan generation"}
	}

	prompt := prompts.Format(prompts.MustGet("pipelines.json", "career-plan"), map[string]string{
		"ProfileText": profileText(profile),
	})

	var plan types.CareerPlan
	if err := generateInto(ctx, p.client, llm.TierAdvanced, prompt, planSchema, &plan); err != nil {
		p.logger.Warn("plan generation failed", zap.Error(err))
		return nil, &PlanGenerationFailedError{Cause: err}
	}

	plan.Normalize()
	return &plan, nil
}
