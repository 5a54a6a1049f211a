package scoring

import (
	"github.com/lumina-labs/lumina/internal/assessment"
)

func scoreSpiritual(c *assessment.Catalog, answers assessment.AnswerMap) (*SpiritualResult, error) {
	// Category order follows first appearance in the catalog, so the
	// dominant-need tie-break is deterministic.
	var order []string
	scores := make(map[string]float64)
	for i := range c.Questions {
		cat := c.Questions[i].Category
		if cat == "" {
			return nil, &ConfigError{QuestionID: c.Questions[i].ID, Reason: "missing need category"}
		}
		if _, ok := scores[cat]; !ok {
			order = append(order, cat)
			scores[cat] = 0
		}
	}

	var total float64
	for id, val := range answers {
		q := c.ByID(id)
		if q == nil {
			continue
		}
		score, err := numericAnswer(id, val)
		if err != nil {
			return nil, err
		}
		total += score
		scores[q.Category] += score
	}

	dominant := order[0]
	for _, cat := range order[1:] {
		if scores[cat] > scores[dominant] {
			dominant = cat
		}
	}

	return &SpiritualResult{
		Scores:   scores,
		Total:    total,
		Dominant: dominant,
	}, nil
}
