// Package pipelines provides stateless generators that turn a career profile
// or market query into typed domain objects via the generation service. Every
// pipeline follows one template: build a prompt asking for a specific JSON
// shape, generate, parse through the structured chokepoint, and on failure
// apply a pipeline-specific safe default.
package pipelines

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/jonathan/career-coach/internal/llm"
	"github.com/jonathan/career-coach/internal/structured"
	"github.com/jonathan/career-coach/internal/types"
)

// generateInto runs one generate-and-parse round trip against a schema.
func generateInto(ctx context.Context, client llm.Client, tier llm.ModelTier, prompt, schema string, v any) error {
	raw, err := client.GenerateJSON(ctx, prompt, tier)
	if err != nil {
		return err
	}
	return structured.Parse(raw, schema, v)
}

// profileText serializes a profile for prompt embedding. JSON keeps field
// boundaries unambiguous for the model.
func profileText(profile *types.CareerProfile) string {
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return ""
	}
	return string(data)
}

// logDegraded records that a pipeline fell back to its safe default.
func logDegraded(log *zap.Logger, pipeline string, err error) {
	log.Warn("pipeline degraded to fallback",
		zap.String("pipeline", pipeline),
		zap.Error(err),
	)
}
