package scoring

import (
	"math"

	"github.com/lumina-labs/lumina/internal/assessment"
)

func scoreIQ(c *assessment.Catalog, answers assessment.AnswerMap) (*ScaleResult, error) {
	var raw float64
	for id, val := range answers {
		if c.ByID(id) == nil {
			continue
		}
		score, err := numericAnswer(id, val)
		if err != nil {
			return nil, err
		}
		raw += score
	}

	total := float64(c.Len())
	percentage := raw / total

	return &ScaleResult{
		Score:      raw,
		Total:      total,
		Level:      iqLevel(percentage),
		Percentile: int(math.Round(percentage * 100)),
	}, nil
}

func iqLevel(p float64) string {
	switch {
	case p >= 0.8:
		return "High Distinction"
	case p >= 0.6:
		return "Above Average"
	case p < 0.4:
		return "Below Average"
	default:
		return "Average"
	}
}
