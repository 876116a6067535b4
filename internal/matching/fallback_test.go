package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordMatchFallback_PartialMatch(t *testing.T) {
	result := KeywordMatchFallback([]string{"react", "node"}, "We need a React developer")

	// round((1/2)*85) + 5
	assert.Equal(t, 48, result.Score)
	assert.Equal(t, []string{"react"}, result.MatchingSkills)
	assert.Equal(t, []string{"node"}, result.MissingSkills)
	assert.Len(t, result.Recommendations, 3)
}

func TestKeywordMatchFallback_EmptySkills(t *testing.T) {
	result := KeywordMatchFallback([]string{}, "anything")

	assert.Equal(t, 5, result.Score)
	assert.Empty(t, result.MatchingSkills)
	assert.Empty(t, result.MissingSkills)
}

func TestKeywordMatchFallback_NilSkills(t *testing.T) {
	result := KeywordMatchFallback(nil, "anything")

	assert.Equal(t, 5, result.Score)
}

func TestKeywordMatchFallback_AllMatched(t *testing.T) {
	result := KeywordMatchFallback([]string{"go", "sql"}, "Go and SQL required")

	assert.Equal(t, 90, result.Score)
	assert.Len(t, result.MatchingSkills, 2)
	assert.Empty(t, result.MissingSkills)
}

func TestKeywordMatchFallback_CaseInsensitive(t *testing.T) {
	result := KeywordMatchFallback([]string{"PostgreSQL"}, "experience with postgresql a plus")

	assert.Equal(t, []string{"PostgreSQL"}, result.MatchingSkills)
}

func TestKeywordMatchFallback_EmptyJobDescription(t *testing.T) {
	result := KeywordMatchFallback([]string{"go"}, "")

	require.NotNil(t, result)
	assert.Equal(t, 5, result.Score)
	assert.Equal(t, []string{"go"}, result.MissingSkills)
}

func TestKeywordMatchFallback_NeverNilSequences(t *testing.T) {
	result := KeywordMatchFallback(nil, "")

	assert.NotNil(t, result.MatchingSkills)
	assert.NotNil(t, result.MissingSkills)
	assert.NotNil(t, result.Recommendations)
}
