package matching

// matchAnalysisSchema is the JSON Schema the generated match analysis must
// satisfy before it is trusted.
const matchAnalysisSchema = `{
	"type": "object",
	"required": ["reasoning", "matchingSkills", "missingSkills", "recommendations"],
	"properties": {
		"reasoning": {"type": "string"},
		"matchingSkills": {"type": "array", "items": {"type": "string"}},
		"missingSkills": {"type": "array", "items": {"type": "string"}},
		"recommendations": {"type": "array", "items": {"type": "string"}}
	}
}`
