package scoring

import (
	"errors"
	"testing"

	"github.com/lumina-labs/lumina/internal/assessment"
)

func mbtiCatalog(t *testing.T) *assessment.Catalog {
	t.Helper()
	c, err := assessment.Load(assessment.TypeMBTI, assessment.VersionLite)
	if err != nil {
		t.Fatalf("load MBTI catalog: %v", err)
	}
	return c
}

func TestMBTIAllFirstPoles(t *testing.T) {
	c := mbtiCatalog(t)
	answers := assessment.AnswerMap{1: "E", 2: "S", 3: "T", 4: "J"}

	r, err := Score(assessment.TypeMBTI, c, answers)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if r.Kind != assessment.TypeMBTI || r.MBTI == nil {
		t.Fatalf("result not tagged MBTI: %+v", r)
	}

	if r.MBTI.Type != "ESTJ" {
		t.Errorf("Type = %q, want ESTJ", r.MBTI.Type)
	}
	for _, pair := range []string{"EI", "SN", "TF", "JP"} {
		if r.MBTI.Percentages[pair] != 100 {
			t.Errorf("Percentages[%s] = %d, want 100", pair, r.MBTI.Percentages[pair])
		}
	}
}

func TestMBTINeutralSplitsAndTiesResolveToFirstPole(t *testing.T) {
	c := mbtiCatalog(t)
	answers := assessment.AnswerMap{}
	for _, q := range c.Questions {
		answers[q.ID] = assessment.Neutral
	}

	r, err := Score(assessment.TypeMBTI, c, answers)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}

	if r.MBTI.Type != "ESTJ" {
		t.Errorf("all-neutral Type = %q, want ESTJ (first-pole tie-break)", r.MBTI.Type)
	}
	for pair, pct := range r.MBTI.Percentages {
		if pct != 50 {
			t.Errorf("Percentages[%s] = %d, want 50", pair, pct)
		}
	}
	for _, pole := range []string{"E", "I", "S", "N", "T", "F", "J", "P"} {
		if r.MBTI.Scores[pole] != 0.5 {
			t.Errorf("Scores[%s] = %v, want 0.5", pole, r.MBTI.Scores[pole])
		}
	}
}

func TestMBTIPercentagePairsSumTo100(t *testing.T) {
	c := mbtiCatalog(t)
	answerSets := []assessment.AnswerMap{
		{1: "E", 2: "N", 3: "F", 4: "P"},
		{1: "I", 2: assessment.Neutral, 3: "T", 4: "J"},
		{1: assessment.Neutral, 2: assessment.Neutral, 3: "F", 4: assessment.Neutral},
	}

	for _, answers := range answerSets {
		r, err := Score(assessment.TypeMBTI, c, answers)
		if err != nil {
			t.Fatalf("Score: %v", err)
		}
		for _, pair := range []string{"EI", "SN", "TF", "JP"} {
			pct := r.MBTI.Percentages[pair]
			if pct < 0 || pct > 100 {
				t.Errorf("Percentages[%s] = %d, out of range", pair, pct)
			}
			x, y := string(pair[0]), string(pair[1])
			if r.MBTI.Scores[x]+r.MBTI.Scores[y] > 0 {
				other := pairPercent(r.MBTI.Scores[y], r.MBTI.Scores[x])
				if pct+other != 100 {
					t.Errorf("pair %s: %d + %d != 100", pair, pct, other)
				}
			}
		}
	}
}

func TestMBTIEmptyAnswersYieldsZeroPercentages(t *testing.T) {
	c := mbtiCatalog(t)
	r, err := Score(assessment.TypeMBTI, c, assessment.AnswerMap{})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	// Zero denominator is guarded to 1, so percentages are 0, not NaN.
	for pair, pct := range r.MBTI.Percentages {
		if pct != 0 {
			t.Errorf("Percentages[%s] = %d, want 0", pair, pct)
		}
	}
	if r.MBTI.Type != "ESTJ" {
		t.Errorf("Type = %q, want ESTJ", r.MBTI.Type)
	}
}

func TestMBTIIgnoresUnknownQuestionIDs(t *testing.T) {
	c := mbtiCatalog(t)
	answers := assessment.AnswerMap{1: "E", 999: "I"}

	r, err := Score(assessment.TypeMBTI, c, answers)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if r.MBTI.Scores["I"] != 0 {
		t.Errorf("Scores[I] = %v, want 0 (id 999 not in catalog)", r.MBTI.Scores["I"])
	}
}

func TestMBTINeutralWithoutCategoryFailsLoudly(t *testing.T) {
	c := &assessment.Catalog{
		Type: assessment.TypeMBTI,
		Questions: []assessment.Question{
			{ID: 1, Text: "q", Options: []assessment.Option{
				{Text: "a", Value: "E"}, {Text: "b", Value: "I"},
			}},
		},
	}

	_, err := Score(assessment.TypeMBTI, c, assessment.AnswerMap{1: assessment.Neutral})
	if err == nil {
		t.Fatal("expected configuration error")
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("error type = %T, want *ConfigError", err)
	}
}

func TestScoreUnknownType(t *testing.T) {
	c := mbtiCatalog(t)
	if _, err := Score(assessment.Type("TAROT"), c, assessment.AnswerMap{}); err == nil {
		t.Error("expected error for unknown assessment type")
	}
}
