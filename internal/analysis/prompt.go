package analysis

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lumina-labs/lumina/internal/assessment"
	"github.com/lumina-labs/lumina/internal/scoring"
)

const narrativeSystemPrompt = `You are a thoughtful psychologist writing for a general audience.
Given a completed self-assessment result, produce a warm, professional narrative analysis.
Be specific to the result you are given. Never diagnose; for clinical-style screenings,
recommend professional help where the severity warrants it. Return JSON only.`

// buildPrompt renders the result into the user message for the LLM.
func buildPrompt(res *scoring.Result) string {
	var ctx string
	switch res.Kind {
	case assessment.TypeMBTI:
		ctx = fmt.Sprintf("Assessment: MBTI. Result: %s. Dimension percentages: %s",
			res.MBTI.Type, compactJSON(res.MBTI.Percentages))
	case assessment.TypeHolland:
		ctx = fmt.Sprintf("Assessment: Holland Code (Career). Result code: %s. Scores: %s",
			res.Holland.Code, compactJSON(res.Holland.Scores))
	case assessment.TypeSCL90:
		ctx = fmt.Sprintf("Assessment: SCL-90 (Psychological Health). Severity: %s. Average: %.2f. Factors: %s",
			res.SCL90.Severity, res.SCL90.AverageScore, compactJSON(res.SCL90.FactorScores))
	case assessment.TypeIQ:
		ctx = fmt.Sprintf("Assessment: IQ Test. Level: %s. Score: %.0f of %.0f.",
			res.IQ.Level, res.IQ.Score, res.IQ.Total)
	case assessment.TypeEQ:
		ctx = fmt.Sprintf("Assessment: EQ Test. Level: %s. Score: %.0f of %.0f.",
			res.EQ.Level, res.EQ.Score, res.EQ.Total)
	case assessment.TypeSpiritual:
		ctx = fmt.Sprintf("Assessment: Spiritual Needs. Dominant need: %s. Scores: %s",
			res.Spiritual.Dominant, compactJSON(res.Spiritual.Scores))
	default:
		ctx = fmt.Sprintf("Assessment: %s.", res.Kind)
	}

	var b strings.Builder
	b.WriteString(ctx)
	b.WriteString("\n\nProvide a professional psychological analysis of this result.\n")
	b.WriteString("Structure:\n")
	b.WriteString("- title: creative title for this result\n")
	b.WriteString("- summary: 2 sentence summary\n")
	b.WriteString("- keyTraits: 4 bullet points of traits\n")
	b.WriteString("- recommendations: 4 actionable advice items\n")
	b.WriteString("- detailedAnalysis: a paragraph (approx 100 words) of deep insight\n")
	return b.String()
}

func compactJSON(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(raw)
}
