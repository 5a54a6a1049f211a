package scoring

import (
	"github.com/lumina-labs/lumina/internal/assessment"
)

func scoreSCL90(c *assessment.Catalog, answers assessment.AnswerMap) (*SCL90Result, error) {
	var total float64
	var count int
	type bucket struct {
		sum   float64
		count int
	}
	factors := make(map[string]*bucket)

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
		count++

		if q.Category == "" {
			return nil, &ConfigError{QuestionID: id, Reason: "missing factor category"}
		}
		b := factors[q.Category]
		if b == nil {
			b = &bucket{}
			factors[q.Category] = b
		}
		b.sum += score
		b.count++
	}

	factorScores := make(map[string]float64, len(factors))
	for name, b := range factors {
		factorScores[name] = round2(b.sum / float64(b.count))
	}

	denom := count
	if denom == 0 {
		denom = 1
	}
	// Band on the exact mean: rounding first would promote 1.999 to 2.00
	// and shift it into the Mild band.
	average := total / float64(denom)

	return &SCL90Result{
		TotalScore:   total,
		AverageScore: round2(average),
		FactorScores: factorScores,
		Severity:     severityFor(average),
	}, nil
}

// severityFor bands an average score, evaluated highest-first with
// inclusive lower bounds: exactly 3.0 is Severe, not Moderate.
func severityFor(average float64) Severity {
	switch {
	case average >= 3.0:
		return SeveritySevere
	case average >= 2.5:
		return SeverityModerate
	case average >= 2.0:
		return SeverityMild
	default:
		return SeverityNormal
	}
}
