package pipelines

import (
	"context"

	"go.uber.org/zap"

	"github.com/jonathan/career-coach/internal/llm"
	"github.com/jonathan/career-coach/internal/prompts"
	"github.com/jonathan/career-coach/internal/types"
)

// LearningPathPipeline generates a curriculum toward a target role. Like
// insights, it degrades to a safe default path rather than failing.
type LearningPathPipeline struct {
	client llm.Client
	logger *zap.Logger
}

// NewLearningPathPipeline creates a learning path pipeline.
func NewLearningPathPipeline(client llm.Client, log *zap.Logger) *LearningPathPipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &LearningPathPipeline{client: client, logger: log}
}

// Generate produces a learning path from the profile toward targetRole.
// Without a profile, or when generation degrades, a minimal default path is
// returned.
func (p *LearningPathPipeline) Generate(ctx context.Context, profile *types.CareerProfile, targetRole string) *types.LearningPath {
	if profile == nil {
		return defaultLearningPath(targetRole)
	}

	prompt := prompts.Format(prompts.MustGet("pipelines.json", "learning-path"), map[string]string{
		"ProfileText": profileText(profile),
		"TargetRole":  targetRole,
	})

	var path types.LearningPath
	if err := generateInto(ctx, p.client, llm.TierStandard, prompt, learningPathSchema, &path); err != nil {
		logDegraded(p.logger, "learning-path", err)
		return defaultLearningPath(targetRole)
	}

	path.Normalize()
	return &path
}

func defaultLearningPath(targetRole string) *types.LearningPath {
	return &types.LearningPath{
		TargetRole: targetRole,
		Duration:   "self-paced",
		Modules: []types.LearningModule{
			{
				Title:       "Map your starting point",
				Description: "Complete your profile and list the skills you already have so the path can be tailored to the gap.",
				Duration:    "1 week",
				Skills:      []string{},
				Resources:   []string{},
			},
		},
	}
}
