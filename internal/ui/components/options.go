package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lumina-labs/lumina/internal/ui/theme"
)

// Option is one selectable answer.
type Option struct {
	Label string
	Value string
}

// OptionList is the answer selector for a quiz question. There is no
// right answer to reveal; the previously chosen option is marked so
// revisiting a question shows the earlier choice.
type OptionList struct {
	Question string
	Options  []Option
	Cursor   int
	Chosen   int // index of the recorded answer, -1 if unanswered
}

// NewOptionList creates an answer selector. chosen is the index of an
// already-recorded answer, or -1.
func NewOptionList(question string, options []Option, chosen int) OptionList {
	cursor := 0
	if chosen >= 0 && chosen < len(options) {
		cursor = chosen
	}
	return OptionList{
		Question: question,
		Options:  options,
		Cursor:   cursor,
		Chosen:   chosen,
	}
}

// ChosenMsg reports that the user picked an option.
type ChosenMsg struct {
	Value string
}

// Update handles keyboard navigation and selection.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Options)-1 {
			o.Cursor++
		}
	case "enter":
		o.Chosen = o.Cursor
		value := o.Options[o.Cursor].Value
		return o, func() tea.Msg { return ChosenMsg{Value: value} }
	}

	return o, nil
}

// View renders the question and its options.
func (o OptionList) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(o.Question) + "\n\n"

	for i, opt := range o.Options {
		prefix := "  "
		if i == o.Cursor {
			prefix = "▸ "
		}
		mark := " "
		if i == o.Chosen {
			mark = "●"
		}

		line := fmt.Sprintf("%s%s %s", prefix, mark, opt.Label)

		switch {
		case i == o.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		case i == o.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Success).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}
