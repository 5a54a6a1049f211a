package scoring

import (
	"github.com/lumina-labs/lumina/internal/assessment"
)

// Result is the immutable scored output of a completed quiz, tagged by
// assessment kind. Exactly one kind-specific field is set.
type Result struct {
	Kind      assessment.Type  `json:"kind"`
	MBTI      *MBTIResult      `json:"mbti,omitempty"`
	Holland   *HollandResult   `json:"holland,omitempty"`
	SCL90     *SCL90Result     `json:"scl90,omitempty"`
	IQ        *ScaleResult     `json:"iq,omitempty"`
	EQ        *ScaleResult     `json:"eq,omitempty"`
	Spiritual *SpiritualResult `json:"spiritual,omitempty"`
}

// MBTIResult holds the four-letter type, the eight pole counters, and the
// per-pair percentages keyed "EI", "SN", "TF", "JP".
type MBTIResult struct {
	Type        string             `json:"type"`
	Scores      map[string]float64 `json:"scores"`
	Percentages map[string]int     `json:"percentages"`
}

// HollandResult holds the three-letter RIASEC code and the six counters.
type HollandResult struct {
	Code   string         `json:"code"`
	Scores map[string]int `json:"scores"`
}

// Severity is the SCL-90 severity band.
type Severity string

const (
	SeverityNormal   Severity = "Normal"
	SeverityMild     Severity = "Mild"
	SeverityModerate Severity = "Moderate"
	SeveritySevere   Severity = "Severe"
)

// SCL90Result holds the aggregate and per-factor scores.
type SCL90Result struct {
	TotalScore   float64            `json:"totalScore"`
	AverageScore float64            `json:"averageScore"`
	FactorScores map[string]float64 `json:"factorScores"`
	Severity     Severity           `json:"severity"`
}

// ScaleResult is the shared shape for IQ and EQ outcomes. Total is the
// question count for IQ and the maximum possible score for EQ.
type ScaleResult struct {
	Score      float64 `json:"score"`
	Total      float64 `json:"total"`
	Level      string  `json:"level"`
	Percentile int     `json:"percentile"`
}

// SpiritualResult holds per-need sums, the grand total, and the dominant
// need.
type SpiritualResult struct {
	Scores   map[string]float64 `json:"scores"`
	Total    float64            `json:"total"`
	Dominant string             `json:"dominant"`
}
