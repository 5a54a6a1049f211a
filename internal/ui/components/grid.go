package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/lumina-labs/lumina/internal/ui/theme"
)

// QuestionGrid renders question numbers in rows, marking answered ones
// and highlighting the current position. It is display-only; the quiz
// screen owns the cursor.
type QuestionGrid struct {
	Total    int
	Current  int
	Answered map[int]bool // by question index
	Columns  int
}

// NewQuestionGrid creates a grid for total questions.
func NewQuestionGrid(total, current int, answered map[int]bool) QuestionGrid {
	return QuestionGrid{
		Total:    total,
		Current:  current,
		Answered: answered,
		Columns:  10,
	}
}

// View renders the grid.
func (g QuestionGrid) View() string {
	if g.Total == 0 {
		return ""
	}
	cols := g.Columns
	if cols <= 0 {
		cols = 10
	}

	var rows []string
	var cells []string
	for i := 0; i < g.Total; i++ {
		cell := fmt.Sprintf("%2d", i+1)
		switch {
		case i == g.Current:
			cell = theme.Selected.Render("[" + cell + "]")
		case g.Answered[i]:
			cell = theme.Answered.Render(" " + cell + " ")
		default:
			cell = theme.Unanswered.Render(" " + cell + " ")
		}
		cells = append(cells, cell)

		if len(cells) == cols {
			rows = append(rows, strings.Join(cells, " "))
			cells = nil
		}
	}
	if len(cells) > 0 {
		rows = append(rows, strings.Join(cells, " "))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
