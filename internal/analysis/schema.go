package analysis

import "github.com/lumina-labs/lumina/internal/llm"

// NarrativeSchema constrains the LLM output to the Analysis shape.
var NarrativeSchema = &llm.Schema{
	Name:        "result-narrative",
	Description: "Narrative analysis of a completed self-assessment result",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Creative title for this result",
			},
			"summary": map[string]any{
				"type":        "string",
				"description": "Two sentence summary",
			},
			"keyTraits": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Four bullet points of traits",
			},
			"recommendations": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Four actionable advice items",
			},
			"detailedAnalysis": map[string]any{
				"type":        "string",
				"description": "A paragraph of roughly 100 words of deep insight",
			},
		},
		"required": []any{"title", "summary", "keyTraits", "recommendations", "detailedAnalysis"},
	},
}
