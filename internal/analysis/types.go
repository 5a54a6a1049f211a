// Package analysis turns a computed result into a narrative: an
// LLM-generated report when a provider is configured, or a static
// lookup when it is not. The narrative is always optional; a result is
// shown with or without it.
package analysis

// Analysis is the narrative record attached to a result.
type Analysis struct {
	Title            string   `json:"title"`
	Summary          string   `json:"summary"`
	KeyTraits        []string `json:"keyTraits"`
	Recommendations  []string `json:"recommendations"`
	DetailedAnalysis string   `json:"detailedAnalysis"`
}
