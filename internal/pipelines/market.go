package pipelines

import (
	"context"

	"go.uber.org/zap"

	"github.com/jonathan/career-coach/internal/llm"
	"github.com/jonathan/career-coach/internal/prompts"
	"github.com/jonathan/career-coach/internal/types"
)

// MarketTrendPipeline generates market, industry, and competitive analyses.
// Every operation degrades to a static safe default on failure.
type MarketTrendPipeline struct {
	client llm.Client
	logger *zap.Logger
}

// NewMarketTrendPipeline creates a market trend pipeline.
func NewMarketTrendPipeline(client llm.Client, log *zap.Logger) *MarketTrendPipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &MarketTrendPipeline{client: client, logger: log}
}

// MarketData summarizes current demand for a role in a location.
func (p *MarketTrendPipeline) MarketData(ctx context.Context, role, location string) *types.JobMarketData {
	prompt := prompts.Format(prompts.MustGet("pipelines.json", "market-data"), map[string]string{
		"Role":     role,
		"Location": location,
	})

	var data types.JobMarketData
	if err := generateInto(ctx, p.client, llm.TierStandard, prompt, marketDataSchema, &data); err != nil {
		logDegraded(p.logger, "market-data", err)
		return defaultMarketData(role, location)
	}

	data.Normalize()
	return &data
}

// IndustryAnalysis describes the state and direction of one industry.
func (p *MarketTrendPipeline) IndustryAnalysis(ctx context.Context, industry string) *types.IndustryAnalysis {
	prompt := prompts.Format(prompts.MustGet("pipelines.json", "industry-analysis"), map[string]string{
		"Industry": industry,
	})

	var analysis types.IndustryAnalysis
	if err := generateInto(ctx, p.client, llm.TierStandard, prompt, industryAnalysisSchema, &analysis); err != nil {
		logDegraded(p.logger, "industry-analysis", err)
		return defaultIndustryAnalysis(industry)
	}

	analysis.Normalize()
	return &analysis
}

// CompetitiveAnalysis positions the candidate against the market for a role.
// Without a profile the static default is returned; there is nothing to
// position.
func (p *MarketTrendPipeline) CompetitiveAnalysis(ctx context.Context, profile *types.CareerProfile, targetRole string) *types.CompetitiveAnalysis {
	if profile == nil {
		return defaultCompetitiveAnalysis(targetRole)
	}

	prompt := prompts.Format(prompts.MustGet("pipelines.json", "competitive-analysis"), map[string]string{
		"ProfileText": profileText(profile),
		"TargetRole":  targetRole,
	})

	var analysis types.CompetitiveAnalysis
	if err := generateInto(ctx, p.client, llm.TierAdvanced, prompt, competitiveAnalysisSchema, &analysis); err != nil {
		logDegraded(p.logger, "competitive-analysis", err)
		return defaultCompetitiveAnalysis(targetRole)
	}

	analysis.Normalize()
	return &analysis
}

func defaultMarketData(role, location string) *types.JobMarketData {
	return &types.JobMarketData{
		Role:           role,
		Location:       location,
		DemandLevel:    "unknown",
		SalaryRange:    "unavailable",
		GrowthOutlook:  "Market data is temporarily unavailable",
		TopSkills:      []string{},
		TopEmployers:   []string{},
		EmergingTrends: []string{},
	}
}

func defaultIndustryAnalysis(industry string) *types.IndustryAnalysis {
	return &types.IndustryAnalysis{
		Industry:        industry,
		Summary:         "Industry analysis is temporarily unavailable",
		GrowthAreas:     []string{},
		DecliningAreas:  []string{},
		KeyTechnologies: []string{},
		Opportunities:   []string{},
	}
}

func defaultCompetitiveAnalysis(targetRole string) *types.CompetitiveAnalysis {
	return &types.CompetitiveAnalysis{
		TargetRole:      targetRole,
		MarketPosition:  "Complete your profile to see how you compare against the market for this role",
		Strengths:       []string{},
		Gaps:            []string{},
		Differentiators: []string{},
		ActionItems:     []string{},
	}
}
