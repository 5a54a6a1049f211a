package scoring

import (
	"sort"
	"strings"

	"github.com/lumina-labs/lumina/internal/assessment"
)

// hollandOrder fixes the RIASEC category order used for tie-breaking:
// when two categories score equally, the earlier one sorts first.
var hollandOrder = [6]string{"R", "I", "A", "S", "E", "C"}

func scoreHolland(c *assessment.Catalog, answers assessment.AnswerMap) (*HollandResult, error) {
	scores := make(map[string]int, len(hollandOrder))
	for _, cat := range hollandOrder {
		scores[cat] = 0
	}

	for id, val := range answers {
		q := c.ByID(id)
		if q == nil {
			continue
		}
		// Only an explicit "yes" counts; there is no partial credit.
		if val != "1" {
			continue
		}
		if _, ok := scores[q.Category]; !ok {
			return nil, &ConfigError{QuestionID: id, Reason: "category is not a RIASEC letter"}
		}
		scores[q.Category]++
	}

	order := make([]string, len(hollandOrder))
	copy(order, hollandOrder[:])
	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})

	var code strings.Builder
	for _, cat := range order[:3] {
		code.WriteString(cat)
	}

	return &HollandResult{Code: code.String(), Scores: scores}, nil
}
