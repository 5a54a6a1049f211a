package scoring

import (
	"math"

	"github.com/lumina-labs/lumina/internal/assessment"
)

func scoreEQ(c *assessment.Catalog, answers assessment.AnswerMap) (*ScaleResult, error) {
	// The ceiling score is the sum of each question's best option.
	var maxPossible float64
	for i := range c.Questions {
		max, err := c.Questions[i].MaxOptionValue()
		if err != nil {
			return nil, &ConfigError{QuestionID: c.Questions[i].ID, Reason: err.Error()}
		}
		maxPossible += max
	}

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

	denom := maxPossible
	if denom == 0 {
		denom = 1
	}
	percentage := raw / denom

	return &ScaleResult{
		Score:      raw,
		Total:      maxPossible,
		Level:      eqLevel(percentage),
		Percentile: int(math.Round(percentage * 100)),
	}, nil
}

func eqLevel(p float64) string {
	switch {
	case p >= 0.8:
		return "High EQ"
	case p >= 0.6:
		return "Above Average"
	case p < 0.4:
		return "Developing"
	default:
		return "Average"
	}
}
