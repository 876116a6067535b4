package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCareerProfile_Validate(t *testing.T) {
	profile := &CareerProfile{CurrentRole: "Backend Engineer"}
	require.NoError(t, profile.Validate())

	empty := &CareerProfile{}
	assert.Error(t, empty.Validate())
}

func TestCareerProfile_NormalizeFillsNilSlices(t *testing.T) {
	profile := &CareerProfile{CurrentRole: "Backend Engineer"}
	profile.Normalize()

	assert.NotNil(t, profile.Experience)
	assert.NotNil(t, profile.Skills)
	assert.NotNil(t, profile.Interests)
	assert.NotNil(t, profile.Goals)
	assert.NotNil(t, profile.Education)
	assert.NotNil(t, profile.Challenges)
	assert.NotNil(t, profile.Achievements)
}

func TestCareerProfile_NormalizePreservesValues(t *testing.T) {
	profile := &CareerProfile{
		CurrentRole: "Backend Engineer",
		Skills:      []string{"go", "postgres"},
	}
	profile.Normalize()

	assert.Equal(t, []string{"go", "postgres"}, profile.Skills)
}

func TestJobMatchResult_Normalize(t *testing.T) {
	result := &JobMatchResult{Score: 50}
	result.Normalize()

	assert.NotNil(t, result.MatchingSkills)
	assert.NotNil(t, result.MissingSkills)
	assert.NotNil(t, result.Recommendations)
}

func TestCareerPlan_Normalize(t *testing.T) {
	plan := &CareerPlan{}
	plan.Normalize()

	assert.NotNil(t, plan.ShortTerm)
	assert.NotNil(t, plan.MediumTerm)
	assert.NotNil(t, plan.LongTerm)
	assert.NotNil(t, plan.Milestones)
}

func TestLearningPath_NormalizeRecurses(t *testing.T) {
	path := &LearningPath{Modules: []LearningModule{{Title: "Foundations"}}}
	path.Normalize()

	require.Len(t, path.Modules, 1)
	assert.NotNil(t, path.Modules[0].Skills)
	assert.NotNil(t, path.Modules[0].Resources)
}
