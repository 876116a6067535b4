// Package types provides type definitions for the structured data exchanged
// between the matching engine, the career coach, and the generation pipelines.
package types

import (
	"github.com/go-playground/validator/v10"
)

// CareerProfile describes a user's career background for coaching and
// plan/insight generation. All slice fields are always non-nil so downstream
// consumers can iterate unconditionally.
type CareerProfile struct {
	CurrentRole  string   `json:"currentRole" validate:"required,min=1"`
	Experience   []string `json:"experience"`
	Skills       []string `json:"skills"`
	Interests    []string `json:"interests"`
	Goals        []string `json:"goals"`
	Education    []string `json:"education"`
	Challenges   []string `json:"challenges"`
	Achievements []string `json:"achievements"`
}

// Validate validates the CareerProfile using the validator.
func (p *CareerProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// Normalize replaces nil slices with empty ones.
func (p *CareerProfile) Normalize() {
	p.Experience = ensure(p.Experience)
	p.Skills = ensure(p.Skills)
	p.Interests = ensure(p.Interests)
	p.Goals = ensure(p.Goals)
	p.Education = ensure(p.Education)
	p.Challenges = ensure(p.Challenges)
	p.Achievements = ensure(p.Achievements)
}

// CandidateProfile is the slice of a user profile the job matching engine
// consumes. It is request-shaped: built by the caller per match request.
type CandidateProfile struct {
	Skills     []string `json:"skills"`
	Experience []string `json:"experience"`
	Education  []string `json:"education"`
	Projects   []string `json:"projects"`
}

// Normalize replaces nil slices with empty ones.
func (p *CandidateProfile) Normalize() {
	p.Skills = ensure(p.Skills)
	p.Experience = ensure(p.Experience)
	p.Education = ensure(p.Education)
	p.Projects = ensure(p.Projects)
}

func ensure(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
