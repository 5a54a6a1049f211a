package scoring

import (
	"testing"

	"github.com/lumina-labs/lumina/internal/assessment"
)

func TestSpiritualDominantNeed(t *testing.T) {
	c, err := assessment.Load(assessment.TypeSpiritual, assessment.VersionPro)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	// Meaning 1,2; Connection 3,4; Peace 5,6.
	answers := assessment.AnswerMap{
		1: "1", 2: "3", // Meaning = 4
		3: "5", 4: "5", // Connection = 10
		5: "3", 6: "3", // Peace = 6
	}

	r, err := Score(assessment.TypeSpiritual, c, answers)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	s := r.Spiritual

	if s.Dominant != "Connection" {
		t.Errorf("Dominant = %q, want Connection", s.Dominant)
	}
	if s.Total != 20 {
		t.Errorf("Total = %v, want 20", s.Total)
	}
	want := map[string]float64{"Meaning": 4, "Connection": 10, "Peace": 6}
	for name, w := range want {
		if got := s.Scores[name]; got != w {
			t.Errorf("Scores[%s] = %v, want %v", name, got, w)
		}
	}
}

func TestSpiritualTieGoesToEarliestCategory(t *testing.T) {
	c, err := assessment.Load(assessment.TypeSpiritual, assessment.VersionPro)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	answers := assessment.AnswerMap{
		1: "3", 2: "3",
		3: "3", 4: "3",
		5: "3", 6: "3",
	}

	r, err := Score(assessment.TypeSpiritual, c, answers)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if r.Spiritual.Dominant != "Meaning" {
		t.Errorf("Dominant = %q, want Meaning (first catalog category)", r.Spiritual.Dominant)
	}
}

func TestSpiritualEmptyAnswers(t *testing.T) {
	c, err := assessment.Load(assessment.TypeSpiritual, assessment.VersionLite)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	r, err := Score(assessment.TypeSpiritual, c, assessment.AnswerMap{})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if r.Spiritual.Total != 0 {
		t.Errorf("Total = %v, want 0", r.Spiritual.Total)
	}
	if r.Spiritual.Dominant != "Meaning" {
		t.Errorf("Dominant = %q, want Meaning", r.Spiritual.Dominant)
	}
	for name, v := range r.Spiritual.Scores {
		if v != 0 {
			t.Errorf("Scores[%s] = %v, want 0", name, v)
		}
	}
}
