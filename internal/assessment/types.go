package assessment

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Type identifies an assessment kind.
type Type string

const (
	TypeMBTI      Type = "MBTI"
	TypeHolland   Type = "HOLLAND"
	TypeSCL90     Type = "SCL90"
	TypeIQ        Type = "IQ"
	TypeEQ        Type = "EQ"
	TypeSpiritual Type = "SPIRITUAL"
)

// AllTypes returns every assessment type in dashboard order.
func AllTypes() []Type {
	return []Type{TypeMBTI, TypeHolland, TypeSCL90, TypeIQ, TypeEQ, TypeSpiritual}
}

// ParseType converts a string to a Type.
func ParseType(s string) (Type, error) {
	for _, t := range AllTypes() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown assessment type: %q", s)
}

// Version selects the short or full question set for an assessment.
type Version string

const (
	VersionLite Version = "LITE"
	VersionPro  Version = "PRO"
)

// Neutral is the reserved answer value meaning "no preference".
// Scoring splits it equally between the two poles of the question's
// dimension pair.
const Neutral Value = "NEUTRAL"

// Value is an answer or option value in canonical string form.
// Numeric values are stored as their decimal rendering ("1", "0.5") so a
// single representation survives JSON persistence round-trips.
type Value string

// UnmarshalJSON accepts either a JSON string or a JSON number,
// normalizing numbers to their canonical decimal form.
func (v *Value) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*v = Value(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("option value must be a string or number: %s", b)
	}
	*v = Value(strconv.FormatFloat(f, 'f', -1, 64))
	return nil
}

// Float parses the value as a number.
func (v Value) Float() (float64, error) {
	f, err := strconv.ParseFloat(string(v), 64)
	if err != nil {
		return 0, fmt.Errorf("non-numeric answer value %q", string(v))
	}
	return f, nil
}

// IsNumeric reports whether the value parses as a number.
func (v Value) IsNumeric() bool {
	_, err := strconv.ParseFloat(string(v), 64)
	return err == nil
}

// Option is one selectable answer for a question.
type Option struct {
	Text  string `json:"text"`
	Value Value  `json:"value"`
}

// Question is a single catalog entry. Category carries the scoring bucket:
// a dimension pair for MBTI ("EI"), a single Holland letter ("R"), a named
// factor for SCL-90, or a named need for Spiritual.
type Question struct {
	ID       int      `json:"id"`
	Text     string   `json:"text"`
	Category string   `json:"category,omitempty"`
	Options  []Option `json:"options"`
}

// MaxOptionValue returns the largest numeric option value, or an error if
// any option is non-numeric.
func (q *Question) MaxOptionValue() (float64, error) {
	if len(q.Options) == 0 {
		return 0, fmt.Errorf("question %d has no options", q.ID)
	}
	max := 0.0
	for i, o := range q.Options {
		f, err := o.Value.Float()
		if err != nil {
			return 0, fmt.Errorf("question %d option %d: %w", q.ID, i, err)
		}
		if i == 0 || f > max {
			max = f
		}
	}
	return max, nil
}

// AnswerMap maps question id to the selected answer value.
type AnswerMap map[int]Value
