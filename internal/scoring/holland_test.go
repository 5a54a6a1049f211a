package scoring

import (
	"testing"

	"github.com/lumina-labs/lumina/internal/assessment"
)

func hollandCatalog(t *testing.T) *assessment.Catalog {
	t.Helper()
	c, err := assessment.Load(assessment.TypeHolland, assessment.VersionPro)
	if err != nil {
		t.Fatalf("load Holland catalog: %v", err)
	}
	return c
}

func TestHollandCountsOnlyYesAnswers(t *testing.T) {
	c := hollandCatalog(t)
	// Questions 1,2 are R; 3,4 are I. Only the "1" answers count.
	answers := assessment.AnswerMap{
		1: "1", 2: "1", // R = 2
		3: "1", 4: "0", // I = 1
		5: "0", 6: "0", 7: "0", 8: "0", 9: "0", 10: "0", 11: "0", 12: "0",
	}

	r, err := Score(assessment.TypeHolland, c, answers)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}

	sum := 0
	for _, v := range r.Holland.Scores {
		sum += v
	}
	if sum != 3 {
		t.Errorf("counter sum = %d, want 3 (count of yes answers)", sum)
	}
	if r.Holland.Scores["R"] != 2 || r.Holland.Scores["I"] != 1 {
		t.Errorf("Scores = %v, want R=2 I=1", r.Holland.Scores)
	}
}

func TestHollandCodeSortedDescending(t *testing.T) {
	c := hollandCatalog(t)
	answers := assessment.AnswerMap{
		// S twice, E twice, C once; everything else no.
		7: "1", 8: "1", 9: "1", 10: "1", 11: "1",
		1: "0", 2: "0", 3: "0", 4: "0", 5: "0", 6: "0", 12: "0",
	}

	r, err := Score(assessment.TypeHolland, c, answers)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	// S and E tie at 2: S precedes E in the fixed R,I,A,S,E,C order.
	if r.Holland.Code != "SEC" {
		t.Errorf("Code = %q, want SEC", r.Holland.Code)
	}
}

func TestHollandAllZeroFallsBackToFixedOrder(t *testing.T) {
	c := hollandCatalog(t)
	r, err := Score(assessment.TypeHolland, c, assessment.AnswerMap{})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if r.Holland.Code != "RIA" {
		t.Errorf("Code = %q, want RIA (stable tie-break order)", r.Holland.Code)
	}
}

func TestHollandIgnoresNonYesValues(t *testing.T) {
	c := hollandCatalog(t)
	answers := assessment.AnswerMap{1: "2", 2: "0.5", 3: "yes"}

	r, err := Score(assessment.TypeHolland, c, answers)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	for cat, v := range r.Holland.Scores {
		if v != 0 {
			t.Errorf("Scores[%s] = %d, want 0", cat, v)
		}
	}
}
