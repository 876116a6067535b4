package pipelines

// JSON Schemas the generated payloads must satisfy before they are trusted.
const (
	insightsSchema = `{
	"type": "array",
	"minItems": 1,
	"items": {
		"type": "object",
		"required": ["category", "title", "description", "priority", "actionable"],
		"properties": {
			"category": {"type": "string"},
			"title": {"type": "string"},
			"description": {"type": "string"},
			"priority": {"type": "string", "enum": ["high", "medium", "low"]},
			"actionable": {"type": "boolean"}
		}
	}
}`

	planSchema = `{
	"type": "object",
	"required": ["shortTerm", "mediumTerm", "longTerm", "milestones"],
	"properties": {
		"shortTerm": {"type": "array", "items": {"type": "string"}},
		"mediumTerm": {"type": "array", "items": {"type": "string"}},
		"longTerm": {"type": "array", "items": {"type": "string"}},
		"milestones": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["title", "timeframe", "description"],
				"properties": {
					"title": {"type": "string"},
					"timeframe": {"type": "string"},
					"description": {"type": "string"}
				}
			}
		}
	}
}`

	learningPathSchema = `{
	"type": "object",
	"required": ["targetRole", "duration", "modules"],
	"properties": {
		"targetRole": {"type": "string"},
		"duration": {"type": "string"},
		"modules": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["title", "description", "duration"],
				"properties": {
					"title": {"type": "string"},
					"description": {"type": "string"},
					"duration": {"type": "string"},
					"skills": {"type": "array", "items": {"type": "string"}},
					"resources": {"type": "array", "items": {"type": "string"}}
				}
			}
		}
	}
}`

	marketDataSchema = `{
	"type": "object",
	"required": ["role", "location", "demandLevel", "salaryRange", "growthOutlook"],
	"properties": {
		"role": {"type": "string"},
		"location": {"type": "string"},
		"demandLevel": {"type": "string"},
		"salaryRange": {"type": "string"},
		"growthOutlook": {"type": "string"},
		"topSkills": {"type": "array", "items": {"type": "string"}},
		"topEmployers": {"type": "array", "items": {"type": "string"}},
		"emergingTrends": {"type": "array", "items": {"type": "string"}}
	}
}`

	industryAnalysisSchema = `{
	"type": "object",
	"required": ["industry", "summary"],
	"properties": {
		"industry": {"type": "string"},
		"summary": {"type": "string"},
		"growthAreas": {"type": "array", "items": {"type": "string"}},
		"decliningAreas": {"type": "array", "items": {"type": "string"}},
		"keyTechnologies": {"type": "array", "items": {"type": "string"}},
		"opportunities": {"type": "array", "items": {"type": "string"}}
	}
}`

	competitiveAnalysisSchema = `{
	"type": "object",
	"required": ["targetRole", "marketPosition"],
	"properties": {
		"targetRole": {"type": "string"},
		"marketPosition": {"type": "string"},
		"strengths": {"type": "array", "items": {"type": "string"}},
		"gaps": {"type": "array", "items": {"type": "string"}},
		"differentiators": {"type": "array", "items": {"type": "string"}},
		"actionItems": {"type": "array", "items": {"type": "string"}}
	}
}`
)
