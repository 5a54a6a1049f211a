package result

import (
	"strings"
	"testing"

	"github.com/lumina-labs/lumina/internal/assessment"
	"github.com/lumina-labs/lumina/internal/scoring"
)

func TestRenderScoresMBTIUsesPairPercentages(t *testing.T) {
	res := &scoring.Result{
		Kind: assessment.TypeMBTI,
		MBTI: &scoring.MBTIResult{
			Type: "ENTJ",
			Percentages: map[string]int{
				"EI": 75, "SN": 40, "TF": 60, "JP": 100,
			},
		},
	}

	out := renderScores(res)

	for _, want := range []string{
		"E  75%  vs  I  25%",
		"S  40%  vs  N  60%",
		"T  60%  vs  F  40%",
		"J 100%  vs  P   0%",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("renderScores missing %q in:\n%s", want, out)
		}
	}
}

func TestRenderScoresMBTIAllFirstPole(t *testing.T) {
	res := &scoring.Result{
		Kind: assessment.TypeMBTI,
		MBTI: &scoring.MBTIResult{
			Type: "ESTJ",
			Percentages: map[string]int{
				"EI": 100, "SN": 100, "TF": 100, "JP": 100,
			},
		},
	}

	out := renderScores(res)

	if strings.Contains(out, "E   0%") {
		t.Errorf("first pole rendered as 0%% for a fully first-pole result:\n%s", out)
	}
	for _, want := range []string{"E 100%", "S 100%", "T 100%", "J 100%"} {
		if !strings.Contains(out, want) {
			t.Errorf("renderScores missing %q in:\n%s", want, out)
		}
	}
}
