package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock_JSONFence(t *testing.T) {
	input := "```json\n{\"score\": 80}\n```"
	assert.Equal(t, `{"score": 80}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_GenericFence(t *testing.T) {
	input := "```\n{\"score\": 80}\n```"
	assert.Equal(t, `{"score": 80}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_FenceWithLanguageID(t *testing.T) {
	input := "```javascript\n{\"score\": 80}\n```"
	assert.Equal(t, `{"score": 80}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_NoFence(t *testing.T) {
	input := `  {"score": 80}  `
	assert.Equal(t, `{"score": 80}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_Empty(t *testing.T) {
	assert.Equal(t, "", CleanJSONBlock(""))
	assert.Equal(t, "", CleanJSONBlock("   "))
}
