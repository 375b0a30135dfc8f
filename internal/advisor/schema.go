package advisor

import "github.com/welltegra/welllab/internal/llm"

var stringArray = map[string]any{
	"type":  "array",
	"items": map[string]any{"type": "string"},
}

// CareerPathSchema defines the career mapping output.
var CareerPathSchema = &llm.Schema{
	Name:        "career-path",
	Description: "A three-stage career progression into well engineering",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"startRole": map[string]any{
				"type":        "string",
				"description": "Entry role on the rig or in the office",
			},
			"midPath": map[string]any{
				"type":        "string",
				"description": "Intermediate role after 3-5 years",
			},
			"endGoal": map[string]any{
				"type":        "string",
				"description": "Senior well engineering role",
			},
			"skills": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    1,
				"description": "Certifications and skills to acquire (IADC/IWCF levels where relevant)",
			},
			"justification": map[string]any{
				"type":        "string",
				"description": "Why this path fits the candidate",
			},
		},
		"required":             []any{"startRole", "midPath", "endGoal", "skills", "justification"},
		"additionalProperties": false,
	},
}

// ConceptTranslationSchema defines the concept bridge output.
var ConceptTranslationSchema = &llm.Schema{
	Name:        "concept-translation",
	Description: "A technical bridge between a drilling concept and a familiar domain",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"physicsExplanation": map[string]any{"type": "string"},
			"hobbyAnalogy":       map[string]any{"type": "string"},
			"mathematicalLogic":  map[string]any{"type": "string"},
			"keyTakeaway":        map[string]any{"type": "string"},
			"realWorldScenario":  map[string]any{"type": "string"},
		},
		"required":             []any{"physicsExplanation", "hobbyAnalogy", "mathematicalLogic", "keyTakeaway", "realWorldScenario"},
		"additionalProperties": false,
	},
}

// KnowledgeCheckSchema wraps the question list in an object so every
// provider's structured-output mode accepts it.
var KnowledgeCheckSchema = &llm.Schema{
	Name:        "knowledge-check",
	Description: "Multiple-choice questions testing a lesson",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question":     map[string]any{"type": "string"},
						"options":      stringArray,
						"correctIndex": map[string]any{"type": "integer"},
						"explanation":  map[string]any{"type": "string"},
					},
					"required":             []any{"question", "options", "correctIndex", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

// BackgroundAnalysisSchema defines the skill audit output.
var BackgroundAnalysisSchema = &llm.Schema{
	Name:        "background-analysis",
	Description: "Competency gap analysis for a candidate entering well engineering",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"transferabilityScore": map[string]any{
				"type":        "number",
				"description": "0-100 estimate of how well existing experience transfers",
			},
			"strengthsDeepDive":  map[string]any{"type": "string"},
			"gapAnalysis":        map[string]any{"type": "string"},
			"transitionStrategy": map[string]any{"type": "string"},
			"recommendedFocus":   stringArray,
		},
		"required":             []any{"transferabilityScore", "strengthsDeepDive", "gapAnalysis", "transitionStrategy", "recommendedFocus"},
		"additionalProperties": false,
	},
}
