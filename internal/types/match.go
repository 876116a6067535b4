package types

// JobMatchResult is the outcome of matching a candidate profile against one
// job posting. Produced once per match request and never persisted here.
type JobMatchResult struct {
	// Score is the overall fit in [0, 100]
	Score int `json:"score"`
	// Reasoning is a short qualitative explanation of the score
	Reasoning string `json:"reasoning"`
	// MatchingSkills are candidate skills found relevant to the posting
	MatchingSkills []string `json:"matchingSkills"`
	// MissingSkills are posting requirements the candidate lacks
	MissingSkills []string `json:"missingSkills"`
	// Recommendations are ordered next steps for improving the match
	Recommendations []string `json:"recommendations"`
}

// Normalize replaces nil slices with empty ones.
func (r *JobMatchResult) Normalize() {
	r.MatchingSkills = ensure(r.MatchingSkills)
	r.MissingSkills = ensure(r.MissingSkills)
	r.Recommendations = ensure(r.Recommendations)
}
