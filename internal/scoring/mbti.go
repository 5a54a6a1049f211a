package scoring

import (
	"math"
	"strings"

	"github.com/lumina-labs/lumina/internal/assessment"
)

// polePairs lists the four MBTI dimension pairs. The first pole of each
// pair wins ties, so an all-neutral run resolves to ESTJ.
var polePairs = [4]string{"EI", "SN", "TF", "JP"}

func scoreMBTI(c *assessment.Catalog, answers assessment.AnswerMap) (*MBTIResult, error) {
	scores := map[string]float64{
		"E": 0, "I": 0, "S": 0, "N": 0, "T": 0, "F": 0, "J": 0, "P": 0,
	}

	for id, val := range answers {
		q := c.ByID(id)
		if q == nil {
			continue
		}
		if val == assessment.Neutral {
			if len(q.Category) != 2 {
				return nil, &ConfigError{QuestionID: id, Reason: "neutral answer needs a dimension pair category"}
			}
			scores[string(q.Category[0])] += 0.5
			scores[string(q.Category[1])] += 0.5
			continue
		}
		scores[string(val)]++
	}

	percentages := make(map[string]int, len(polePairs))
	var typ strings.Builder
	for _, pair := range polePairs {
		x, y := string(pair[0]), string(pair[1])
		percentages[pair] = pairPercent(scores[x], scores[y])
		if scores[x] >= scores[y] {
			typ.WriteString(x)
		} else {
			typ.WriteString(y)
		}
	}

	return &MBTIResult{
		Type:        typ.String(),
		Scores:      scores,
		Percentages: percentages,
	}, nil
}

// pairPercent returns the share of the first pole as a rounded percentage,
// guarding the zero denominator so an unanswered pair yields 0, not NaN.
func pairPercent(x, y float64) int {
	denom := x + y
	if denom == 0 {
		denom = 1
	}
	return int(math.Round(100 * x / denom))
}
