package assessment

import (
	"embed"
	"fmt"
	"strings"

	"encoding/json"
)

//go:embed data/*.json
var dataFS embed.FS

// Catalog is the ordered question set for one assessment type and version.
type Catalog struct {
	Type      Type       `json:"type"`
	Version   Version    `json:"version"`
	Questions []Question `json:"questions"`
}

// Len returns the number of questions.
func (c *Catalog) Len() int {
	return len(c.Questions)
}

// Question returns the question at index i, or nil if out of range.
func (c *Catalog) Question(i int) *Question {
	if i < 0 || i >= len(c.Questions) {
		return nil
	}
	return &c.Questions[i]
}

// ByID returns the question with the given id, or nil if absent.
func (c *Catalog) ByID(id int) *Question {
	for i := range c.Questions {
		if c.Questions[i].ID == id {
			return &c.Questions[i]
		}
	}
	return nil
}

// Load reads and validates the embedded catalog for the given type and
// version.
func Load(t Type, v Version) (*Catalog, error) {
	name := fmt.Sprintf("data/%s_%s.json", strings.ToLower(string(t)), strings.ToLower(string(v)))
	b, err := dataFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", name, err)
	}

	var questions []Question
	if err := json.Unmarshal(b, &questions); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", name, err)
	}

	c := &Catalog{Type: t, Version: v, Questions: questions}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", name, err)
	}
	return c, nil
}

// Validate checks the catalog invariants: non-empty, unique question ids,
// non-empty option sets, and the per-type category requirements.
func (c *Catalog) Validate() error {
	if len(c.Questions) == 0 {
		return fmt.Errorf("catalog has no questions")
	}

	seen := make(map[int]bool, len(c.Questions))
	for i := range c.Questions {
		q := &c.Questions[i]
		if seen[q.ID] {
			return fmt.Errorf("duplicate question id %d", q.ID)
		}
		seen[q.ID] = true

		if len(q.Options) == 0 {
			return fmt.Errorf("question %d has no options", q.ID)
		}
		if err := c.validateQuestion(q); err != nil {
			return err
		}
	}
	return nil
}

func (c *Catalog) validateQuestion(q *Question) error {
	switch c.Type {
	case TypeMBTI:
		if len(q.Category) != 2 {
			return fmt.Errorf("question %d: MBTI category must be a dimension pair, got %q", q.ID, q.Category)
		}
		if len(q.Options) != 2 {
			return fmt.Errorf("question %d: MBTI questions need exactly 2 options, got %d", q.ID, len(q.Options))
		}
		poles := string(q.Category)
		for _, o := range q.Options {
			if len(o.Value) != 1 || !strings.Contains(poles, string(o.Value)) {
				return fmt.Errorf("question %d: option value %q is not a pole of %q", q.ID, o.Value, q.Category)
			}
		}

	case TypeHolland:
		if len(q.Category) != 1 || !strings.Contains("RIASEC", q.Category) {
			return fmt.Errorf("question %d: Holland category must be one of R,I,A,S,E,C, got %q", q.ID, q.Category)
		}
		return requireNumericOptions(q)

	case TypeSCL90, TypeSpiritual:
		if q.Category == "" {
			return fmt.Errorf("question %d: missing category", q.ID)
		}
		return requireNumericOptions(q)

	case TypeIQ, TypeEQ:
		return requireNumericOptions(q)
	}
	return nil
}

func requireNumericOptions(q *Question) error {
	for _, o := range q.Options {
		if !o.Value.IsNumeric() {
			return fmt.Errorf("question %d: option value %q is not numeric", q.ID, o.Value)
		}
	}
	return nil
}
