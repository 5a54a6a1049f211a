package scoring

import (
	"testing"

	"github.com/lumina-labs/lumina/internal/assessment"
)

func TestIQPerfectScore(t *testing.T) {
	c, err := assessment.Load(assessment.TypeIQ, assessment.VersionPro)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	answers := assessment.AnswerMap{}
	for i := range c.Questions {
		answers[c.Questions[i].ID] = "1"
	}

	r, err := Score(assessment.TypeIQ, c, answers)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	iq := r.IQ
	if iq.Score != iq.Total {
		t.Errorf("Score = %v, Total = %v, want equal", iq.Score, iq.Total)
	}
	if iq.Level != "High Distinction" {
		t.Errorf("Level = %q, want High Distinction", iq.Level)
	}
	if iq.Percentile != 100 {
		t.Errorf("Percentile = %d, want 100", iq.Percentile)
	}
}

func TestIQLevelBands(t *testing.T) {
	tests := []struct {
		percentage float64
		want       string
	}{
		{0.9, "High Distinction"},
		{0.8, "High Distinction"},
		{0.7, "Above Average"},
		{0.6, "Above Average"},
		{0.5, "Average"},
		{0.4, "Average"},
		{0.39, "Below Average"},
		{0, "Below Average"},
	}
	for _, tt := range tests {
		if got := iqLevel(tt.percentage); got != tt.want {
			t.Errorf("iqLevel(%v) = %q, want %q", tt.percentage, got, tt.want)
		}
	}
}

func TestEQWeightedCeiling(t *testing.T) {
	c, err := assessment.Load(assessment.TypeEQ, assessment.VersionPro)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	// Every question tops out at 4, so the ceiling is 4 per question.
	answers := assessment.AnswerMap{1: "4", 2: "3", 3: "4", 4: "2", 5: "4", 6: "3"}

	r, err := Score(assessment.TypeEQ, c, answers)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	eq := r.EQ
	if eq.Total != float64(4*c.Len()) {
		t.Errorf("Total = %v, want %v", eq.Total, 4*c.Len())
	}
	if eq.Score != 20 {
		t.Errorf("Score = %v, want 20", eq.Score)
	}
	// 20/24 = 0.833 lands in the top band.
	if eq.Level != "High EQ" {
		t.Errorf("Level = %q, want High EQ", eq.Level)
	}
	if eq.Percentile != 83 {
		t.Errorf("Percentile = %d, want 83", eq.Percentile)
	}
}

func TestEQLevelBands(t *testing.T) {
	tests := []struct {
		percentage float64
		want       string
	}{
		{1, "High EQ"},
		{0.8, "High EQ"},
		{0.6, "Above Average"},
		{0.5, "Average"},
		{0.4, "Average"},
		{0.2, "Developing"},
	}
	for _, tt := range tests {
		if got := eqLevel(tt.percentage); got != tt.want {
			t.Errorf("eqLevel(%v) = %q, want %q", tt.percentage, got, tt.want)
		}
	}
}

func TestEQEmptyAnswers(t *testing.T) {
	c, err := assessment.Load(assessment.TypeEQ, assessment.VersionLite)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	r, err := Score(assessment.TypeEQ, c, assessment.AnswerMap{})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if r.EQ.Score != 0 {
		t.Errorf("Score = %v, want 0", r.EQ.Score)
	}
	if r.EQ.Level != "Developing" {
		t.Errorf("Level = %q, want Developing", r.EQ.Level)
	}
}
