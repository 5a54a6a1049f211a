// Package scoring converts a completed answer map into a typed result.
// Every scorer is a pure function over (catalog, answers): no state is
// shared between calls. Answer ids absent from the catalog are ignored;
// a catalog missing a category tag the scorer needs is a configuration
// error and fails loudly rather than silently dropping data.
package scoring

import (
	"fmt"
	"math"

	"github.com/lumina-labs/lumina/internal/assessment"
)

// ConfigError reports a malformed catalog discovered during scoring.
type ConfigError struct {
	QuestionID int
	Reason     string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("catalog configuration error on question %d: %s", e.QuestionID, e.Reason)
}

// Score computes the result for a completed answer map.
// It fails on an unknown assessment type and on malformed catalogs.
func Score(t assessment.Type, c *assessment.Catalog, answers assessment.AnswerMap) (*Result, error) {
	switch t {
	case assessment.TypeMBTI:
		r, err := scoreMBTI(c, answers)
		if err != nil {
			return nil, err
		}
		return &Result{Kind: t, MBTI: r}, nil
	case assessment.TypeHolland:
		r, err := scoreHolland(c, answers)
		if err != nil {
			return nil, err
		}
		return &Result{Kind: t, Holland: r}, nil
	case assessment.TypeSCL90:
		r, err := scoreSCL90(c, answers)
		if err != nil {
			return nil, err
		}
		return &Result{Kind: t, SCL90: r}, nil
	case assessment.TypeIQ:
		r, err := scoreIQ(c, answers)
		if err != nil {
			return nil, err
		}
		return &Result{Kind: t, IQ: r}, nil
	case assessment.TypeEQ:
		r, err := scoreEQ(c, answers)
		if err != nil {
			return nil, err
		}
		return &Result{Kind: t, EQ: r}, nil
	case assessment.TypeSpiritual:
		r, err := scoreSpiritual(c, answers)
		if err != nil {
			return nil, err
		}
		return &Result{Kind: t, Spiritual: r}, nil
	}
	return nil, fmt.Errorf("unknown assessment type: %q", t)
}

// round2 rounds to 2 decimal places.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// numericAnswer parses an answer value, attributing failures to the
// question for error reporting.
func numericAnswer(id int, v assessment.Value) (float64, error) {
	f, err := v.Float()
	if err != nil {
		return 0, fmt.Errorf("question %d: %w", id, err)
	}
	return f, nil
}
