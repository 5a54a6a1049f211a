package quiz

import "fmt"

// OutOfRangeError reports a jump to a question index outside the catalog.
type OutOfRangeError struct {
	Index int
	Max   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("question index %d out of range [0, %d]", e.Index, e.Max)
}

// IncompleteAnswersError reports a submit attempt with unanswered
// questions. QuestionID is the first unanswered question in catalog order.
type IncompleteAnswersError struct {
	QuestionID int
	Answered   int
	Total      int
}

func (e *IncompleteAnswersError) Error() string {
	return fmt.Sprintf("cannot submit: %d of %d questions answered, first missing question %d",
		e.Answered, e.Total, e.QuestionID)
}
