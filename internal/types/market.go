package types

// JobMarketData summarizes demand and compensation for one role in one market.
type JobMarketData struct {
	Role           string   `json:"role"`
	Location       string   `json:"location"`
	DemandLevel    string   `json:"demandLevel"`
	SalaryRange    string   `json:"salaryRange"`
	GrowthOutlook  string   `json:"growthOutlook"`
	TopSkills      []string `json:"topSkills"`
	TopEmployers   []string `json:"topEmployers"`
	EmergingTrends []string `json:"emergingTrends"`
}

// Normalize replaces nil slices with empty ones.
func (d *JobMarketData) Normalize() {
	d.TopSkills = ensure(d.TopSkills)
	d.TopEmployers = ensure(d.TopEmployers)
	d.EmergingTrends = ensure(d.EmergingTrends)
}

// IndustryAnalysis describes the state and direction of one industry.
type IndustryAnalysis struct {
	Industry      string   `json:"industry"`
	Summary       string   `json:"summary"`
	GrowthAreas   []string `json:"growthAreas"`
	DecliningAreas []string `json:"decliningAreas"`
	KeyTechnologies []string `json:"keyTechnologies"`
	Opportunities []string `json:"opportunities"`
}

// Normalize replaces nil slices with empty ones.
func (a *IndustryAnalysis) Normalize() {
	a.GrowthAreas = ensure(a.GrowthAreas)
	a.DecliningAreas = ensure(a.DecliningAreas)
	a.KeyTechnologies = ensure(a.KeyTechnologies)
	a.Opportunities = ensure(a.Opportunities)
}

// CompetitiveAnalysis positions a candidate against the market for a role.
type CompetitiveAnalysis struct {
	TargetRole     string   `json:"targetRole"`
	MarketPosition string   `json:"marketPosition"`
	Strengths      []string `json:"strengths"`
	Gaps           []string `json:"gaps"`
	Differentiators []string `json:"differentiators"`
	ActionItems    []string `json:"actionItems"`
}

// Normalize replaces nil slices with empty ones.
func (a *CompetitiveAnalysis) Normalize() {
	a.Strengths = ensure(a.Strengths)
	a.Gaps = ensure(a.Gaps)
	a.Differentiators = ensure(a.Differentiators)
	a.ActionItems = ensure(a.ActionItems)
}
