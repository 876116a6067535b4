package types

// InsightPriority ranks how urgently an insight should be acted on.
type InsightPriority string

// Insight priorities
const (
	PriorityHigh   InsightPriority = "high"
	PriorityMedium InsightPriority = "medium"
	PriorityLow    InsightPriority = "low"
)

// CareerInsight is a single generated observation about a user's career.
// Generated fresh on each request; never cached by this subsystem.
type CareerInsight struct {
	Category    string          `json:"category"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Priority    InsightPriority `json:"priority"`
	Actionable  bool            `json:"actionable"`
}

// CareerPlan lays out short-, medium-, and long-term career steps.
type CareerPlan struct {
	ShortTerm  []string    `json:"shortTerm"`
	MediumTerm []string    `json:"mediumTerm"`
	LongTerm   []string    `json:"longTerm"`
	Milestones []Milestone `json:"milestones"`
}

// Milestone is a named checkpoint within a career plan.
type Milestone struct {
	Title       string `json:"title"`
	Timeframe   string `json:"timeframe"`
	Description string `json:"description"`
}

// Normalize replaces nil slices with empty ones.
func (p *CareerPlan) Normalize() {
	p.ShortTerm = ensure(p.ShortTerm)
	p.MediumTerm = ensure(p.MediumTerm)
	p.LongTerm = ensure(p.LongTerm)
	if p.Milestones == nil {
		p.Milestones = []Milestone{}
	}
}

// LearningPath is a generated curriculum toward a target role.
type LearningPath struct {
	TargetRole string           `json:"targetRole"`
	Duration   string           `json:"duration"`
	Modules    []LearningModule `json:"modules"`
}

// LearningModule is one unit within a learning path.
type LearningModule struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Skills      []string `json:"skills"`
	Resources   []string `json:"resources"`
}

// Normalize replaces nil slices with empty ones, recursively.
func (p *LearningPath) Normalize() {
	if p.Modules == nil {
		p.Modules = []LearningModule{}
	}
	for i := range p.Modules {
		p.Modules[i].Skills = ensure(p.Modules[i].Skills)
		p.Modules[i].Resources = ensure(p.Modules[i].Resources)
	}
}
