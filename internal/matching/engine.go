// Package matching scores a candidate profile against a job posting using
// vector embeddings, with a deterministic keyword fallback when the embedding
// service is down. A match request always terminates with a valid result.
package matching

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-coach/internal/embedding"
	"github.com/jonathan/career-coach/internal/llm"
	"github.com/jonathan/career-coach/internal/logger"
	"github.com/jonathan/career-coach/internal/prompts"
	"github.com/jonathan/career-coach/internal/structured"
	"github.com/jonathan/career-coach/internal/types"
	"github.com/jonathan/career-coach/internal/vectormath"
)

// defaultReasoning fills in when the qualitative analysis is unavailable.
// The numeric score is the reliable signal and is kept regardless.
const defaultReasoning = "Analysis based on skills and experience alignment"

const logPreviewLimit = 200

// Engine composes the embedding client, vector math, the generation client,
// and the structured output parser into one match operation.
type Engine struct {
	embedder embedding.Client
	llm      llm.Client
	logger   *zap.Logger
}

// NewEngine creates a match engine. Both clients are required; the logger
// may be zap.NewNop().
func NewEngine(embedder embedding.Client, llmClient llm.Client, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{embedder: embedder, llm: llmClient, logger: log}
}

// matchAnalysis is the shape requested from the generation service.
type matchAnalysis struct {
	Reasoning       string   `json:"reasoning"`
	MatchingSkills  []string `json:"matchingSkills"`
	MissingSkills   []string `json:"missingSkills"`
	Recommendations []string `json:"recommendations"`
}

// MatchJob produces a JobMatchResult for the given profile and posting.
//
// Service failures never escape: an embedding failure degrades to the keyword
// fallback, and a generation or parse failure keeps the embedding score with
// generic qualitative fields. The only error returned is a nil profile.
func (e *Engine) MatchJob(ctx context.Context, profile *types.CandidateProfile, jobTitle, jobDescription string) (*types.JobMatchResult, error) {
	if profile == nil {
		return nil, fmt.Errorf("profile is required")
	}
	profile.Normalize()

	profileText := flattenProfile(profile)
	jobText := flattenJob(jobTitle, jobDescription)

	// The two embedding calls are independent; issue them concurrently.
	var profileVec, jobVec []float32
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profileVec, err = e.embedder.Embed(gctx, profileText)
		return err
	})
	g.Go(func() error {
		var err error
		jobVec, err = e.embedder.Embed(gctx, jobText)
		return err
	})

	if err := g.Wait(); err != nil {
		e.logger.Warn("embedding failed, using keyword fallback", zap.Error(err))
		return KeywordMatchFallback(profile.Skills, jobDescription), nil
	}

	score := vectormath.ToPercentScore(vectormath.CosineSimilarity(profileVec, jobVec))

	result := &types.JobMatchResult{
		Score:           score,
		Reasoning:       defaultReasoning,
		MatchingSkills:  []string{},
		MissingSkills:   []string{},
		Recommendations: genericRecommendations(),
	}

	analysis, err := e.analyze(ctx, profileText, jobText)
	if err != nil {
		// Keep the embedding score; only the qualitative explanation degraded.
		e.logger.Warn("match analysis degraded", zap.Error(err))
		return result, nil
	}

	result.Reasoning = analysis.Reasoning
	result.MatchingSkills = analysis.MatchingSkills
	result.MissingSkills = analysis.MissingSkills
	result.Recommendations = analysis.Recommendations
	result.Normalize()
	return result, nil
}

func (e *Engine) analyze(ctx context.Context, profileText, jobText string) (*matchAnalysis, error) {
	prompt := prompts.Format(prompts.MustGet("matching.json", "analyze-match"), map[string]string{
		"ProfileText": profileText,
		"JobText":     jobText,
	})

	raw, err := e.llm.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("match analysis response",
		zap.String("preview", logger.TruncateForLog(raw, logPreviewLimit)))

	var analysis matchAnalysis
	if err := structured.Parse(raw, matchAnalysisSchema, &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

// flattenProfile serializes the candidate profile fields into one text block
// for embedding and analysis.
func flattenProfile(p *types.CandidateProfile) string {
	var sb strings.Builder
	writeSection(&sb, "Skills", p.Skills)
	writeSection(&sb, "Experience", p.Experience)
	writeSection(&sb, "Education", p.Education)
	writeSection(&sb, "Projects", p.Projects)
	return strings.TrimSpace(sb.String())
}

func flattenJob(title, description string) string {
	return strings.TrimSpace(title + "\n" + description)
}

func writeSection(sb *strings.Builder, name string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(name)
	sb.WriteString(": ")
	sb.WriteString(strings.Join(items, ", "))
	sb.WriteString("\n")
}
