// Package quiz drives a single assessment session: one question visible
// at a time, free movement between questions, and a snapshot written
// after every answer so an interrupted session can resume.
package quiz

import (
	"context"
	"fmt"
	"os"

	"github.com/lumina-labs/lumina/internal/assessment"
	"github.com/lumina-labs/lumina/internal/store"
)

// Machine holds the state of one quiz session. It is not safe for
// concurrent use; the UI drives it from a single goroutine.
type Machine struct {
	typ       assessment.Type
	catalog   *assessment.Catalog
	index     int
	answers   assessment.AnswerMap
	completed bool

	sink   ProgressSink
	writer *progressWriter
}

// New starts a session for catalog c. If snap is non-nil the session
// resumes from it: its answers are kept verbatim (entries for question
// ids no longer in the catalog are tolerated and simply never scored)
// and its index is clamped to the catalog bounds. A nil sink disables
// persistence.
func New(t assessment.Type, c *assessment.Catalog, snap *store.ProgressSnapshot, sink ProgressSink) *Machine {
	m := &Machine{
		typ:     t,
		catalog: c,
		answers: assessment.AnswerMap{},
		sink:    sink,
	}
	if snap != nil {
		for id, v := range snap.Answers {
			m.answers[id] = v
		}
		m.index = snap.CurrentIndex
		if m.index < 0 {
			m.index = 0
		}
		if m.index > c.Len()-1 {
			m.index = c.Len() - 1
		}
	}
	if sink != nil {
		m.writer = newProgressWriter(t, sink)
	}
	return m
}

// Type returns the assessment type of this session.
func (m *Machine) Type() assessment.Type { return m.typ }

// Index returns the zero-based index of the current question.
func (m *Machine) Index() int { return m.index }

// Len returns the number of questions in the session.
func (m *Machine) Len() int { return m.catalog.Len() }

// Question returns the current question.
func (m *Machine) Question() *assessment.Question {
	return m.catalog.Question(m.index)
}

// Answer returns the recorded answer for question id, if any.
func (m *Machine) Answer(id int) (assessment.Value, bool) {
	v, ok := m.answers[id]
	return v, ok
}

// Answered returns how many catalog questions have an answer.
func (m *Machine) Answered() int {
	n := 0
	for i := range m.catalog.Questions {
		if _, ok := m.answers[m.catalog.Questions[i].ID]; ok {
			n++
		}
	}
	return n
}

// Completed reports whether Submit has succeeded.
func (m *Machine) Completed() bool { return m.completed }

// SelectAnswer records v for the current question, overwriting any
// previous answer, and schedules a snapshot write in the background.
func (m *Machine) SelectAnswer(v assessment.Value) {
	if m.completed {
		return
	}
	m.answers[m.Question().ID] = v
	m.persist()
}

// Next advances to the following question. At the last question it is
// a no-op.
func (m *Machine) Next() {
	if m.index < m.catalog.Len()-1 {
		m.index++
		m.persist()
	}
}

// Prev moves back one question. At the first question it is a no-op.
func (m *Machine) Prev() {
	if m.index > 0 {
		m.index--
		m.persist()
	}
}

// JumpTo moves directly to question index i.
func (m *Machine) JumpTo(i int) error {
	if i < 0 || i >= m.catalog.Len() {
		return &OutOfRangeError{Index: i, Max: m.catalog.Len() - 1}
	}
	m.index = i
	m.persist()
	return nil
}

// Submit finalizes the session. Every catalog question must be
// answered; otherwise it returns an IncompleteAnswersError naming the
// first unanswered question and the session stays open. On success the
// saved snapshot is removed (best effort) and the full answer map is
// returned.
func (m *Machine) Submit(ctx context.Context) (assessment.AnswerMap, error) {
	answered := m.Answered()
	for i := range m.catalog.Questions {
		id := m.catalog.Questions[i].ID
		if _, ok := m.answers[id]; !ok {
			return nil, &IncompleteAnswersError{
				QuestionID: id,
				Answered:   answered,
				Total:      m.catalog.Len(),
			}
		}
	}

	m.completed = true
	if m.writer != nil {
		m.writer.close()
		m.writer = nil
	}
	// Removing the snapshot is best effort. A storage failure must not
	// block scoring; the stale snapshot just offers a resume next time.
	if m.sink != nil {
		if err := m.sink.Clear(ctx, m.typ); err != nil {
			fmt.Fprintf(os.Stderr, "warning: clear progress for %s: %v\n", m.typ, err)
		}
	}

	out := make(assessment.AnswerMap, len(m.answers))
	for id, v := range m.answers {
		out[id] = v
	}
	return out, nil
}

// Close flushes any pending snapshot write. Call it when abandoning a
// session without submitting.
func (m *Machine) Close() {
	if m.writer != nil {
		m.writer.close()
		m.writer = nil
	}
}

func (m *Machine) persist() {
	if m.writer == nil {
		return
	}
	snap := store.ProgressSnapshot{
		CurrentIndex: m.index,
		Answers:      make(assessment.AnswerMap, len(m.answers)),
	}
	for id, v := range m.answers {
		snap.Answers[id] = v
	}
	m.writer.enqueue(snap)
}
