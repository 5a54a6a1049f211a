// Package quiz is the question-answering screen: one question at a
// time, free navigation, a jump grid, and an explicit submit.
package quiz

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lumina-labs/lumina/internal/analysis"
	"github.com/lumina-labs/lumina/internal/assessment"
	engine "github.com/lumina-labs/lumina/internal/quiz"
	"github.com/lumina-labs/lumina/internal/router"
	"github.com/lumina-labs/lumina/internal/scoring"
	"github.com/lumina-labs/lumina/internal/screen"
	"github.com/lumina-labs/lumina/internal/screens/result"
	"github.com/lumina-labs/lumina/internal/store"
	"github.com/lumina-labs/lumina/internal/ui/components"
	"github.com/lumina-labs/lumina/internal/ui/layout"
	"github.com/lumina-labs/lumina/internal/ui/theme"
)

type phase int

const (
	phaseResumePrompt phase = iota
	phaseActive
	phaseGrid
)

// QuizScreen drives one assessment session.
type QuizScreen struct {
	typ       assessment.Type
	version   assessment.Version
	catalog   *assessment.Catalog
	st        *store.Store
	narrative *analysis.Service

	machine *engine.Machine
	snap    *store.ProgressSnapshot

	phase      phase
	prompt     components.Menu
	options    components.OptionList
	gridCursor int
	errMsg     string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.EscHandler = (*QuizScreen)(nil)

// New creates the quiz screen for one assessment. A saved session, if
// any, triggers a resume-or-restart prompt before the first question.
func New(t assessment.Type, version assessment.Version, st *store.Store, narrative *analysis.Service) (*QuizScreen, error) {
	catalog, err := assessment.Load(t, version)
	if err != nil {
		return nil, err
	}

	s := &QuizScreen{
		typ:       t,
		version:   version,
		catalog:   catalog,
		st:        st,
		narrative: narrative,
	}

	if st != nil {
		if snap, ok, err := st.Progress().Load(context.Background(), t); err == nil && ok {
			s.snap = &snap
		}
	}

	if s.snap != nil {
		s.phase = phaseResumePrompt
		s.prompt = components.NewMenu([]components.MenuItem{
			{Label: "Resume where I left off", Action: func() tea.Cmd {
				return func() tea.Msg { return resumeChoiceMsg{resume: true} }
			}},
			{Label: "Start over", Action: func() tea.Cmd {
				return func() tea.Msg { return resumeChoiceMsg{resume: false} }
			}},
		})
	} else {
		s.start(nil)
	}

	return s, nil
}

type resumeChoiceMsg struct {
	resume bool
}

// start creates the state machine, optionally from a snapshot.
func (s *QuizScreen) start(snap *store.ProgressSnapshot) {
	var sink engine.ProgressSink
	if s.st != nil {
		sink = s.st.Progress()
	}
	s.machine = engine.New(s.typ, s.catalog, snap, sink)
	s.phase = phaseActive
	s.gridCursor = s.machine.Index()
	s.rebuildOptions()
}

// rebuildOptions refreshes the option list for the current question.
func (s *QuizScreen) rebuildOptions() {
	q := s.machine.Question()

	opts := make([]components.Option, 0, len(q.Options)+1)
	for _, o := range q.Options {
		opts = append(opts, components.Option{Label: o.Text, Value: string(o.Value)})
	}
	if s.typ == assessment.TypeMBTI {
		opts = append(opts, components.Option{
			Label: "Neutral / can't decide",
			Value: string(assessment.Neutral),
		})
	}

	chosen := -1
	if v, ok := s.machine.Answer(q.ID); ok {
		for i, o := range opts {
			if o.Value == string(v) {
				chosen = i
				break
			}
		}
	}

	question := fmt.Sprintf("Q%d. %s", s.machine.Index()+1, q.Text)
	s.options = components.NewOptionList(question, opts, chosen)
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch s.phase {
	case phaseResumePrompt:
		return s.updatePrompt(msg)
	case phaseGrid:
		return s.updateGrid(msg)
	default:
		return s.updateActive(msg)
	}
}

func (s *QuizScreen) updatePrompt(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if choice, ok := msg.(resumeChoiceMsg); ok {
		if choice.resume {
			s.start(s.snap)
		} else {
			if s.st != nil {
				if err := s.st.Progress().Clear(context.Background(), s.typ); err != nil {
					fmt.Fprintf(os.Stderr, "warning: clear progress: %v\n", err)
				}
			}
			s.start(nil)
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.prompt, cmd = s.prompt.Update(msg)
	return s, cmd
}

func (s *QuizScreen) updateActive(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case components.ChosenMsg:
		s.errMsg = ""
		s.machine.SelectAnswer(assessment.Value(msg.Value))
		// Move on automatically, except on the final question.
		if s.machine.Index() < s.machine.Len()-1 {
			s.machine.Next()
		}
		s.rebuildOptions()
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			s.errMsg = ""
			s.machine.Prev()
			s.rebuildOptions()
			return s, nil
		case "right", "l":
			s.errMsg = ""
			s.machine.Next()
			s.rebuildOptions()
			return s, nil
		case "g":
			s.gridCursor = s.machine.Index()
			s.phase = phaseGrid
			return s, nil
		case "s":
			return s.submit()
		}
	}

	var cmd tea.Cmd
	s.options, cmd = s.options.Update(msg)
	return s, cmd
}

func (s *QuizScreen) updateGrid(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	cols := 10
	switch kmsg.String() {
	case "left", "h":
		if s.gridCursor > 0 {
			s.gridCursor--
		}
	case "right", "l":
		if s.gridCursor < s.machine.Len()-1 {
			s.gridCursor++
		}
	case "up", "k":
		if s.gridCursor-cols >= 0 {
			s.gridCursor -= cols
		}
	case "down", "j":
		if s.gridCursor+cols < s.machine.Len() {
			s.gridCursor += cols
		}
	case "enter":
		if err := s.machine.JumpTo(s.gridCursor); err == nil {
			s.rebuildOptions()
		}
		s.phase = phaseActive
	case "g":
		s.phase = phaseActive
	}
	return s, nil
}

func (s *QuizScreen) submit() (screen.Screen, tea.Cmd) {
	answers, err := s.machine.Submit(context.Background())
	if err != nil {
		var inc *engine.IncompleteAnswersError
		if errors.As(err, &inc) {
			s.errMsg = fmt.Sprintf("Question %d is not answered yet (%d of %d done).",
				inc.QuestionID, inc.Answered, inc.Total)
			// Take the user straight to the gap.
			for i := range s.catalog.Questions {
				if s.catalog.Questions[i].ID == inc.QuestionID {
					if jumpErr := s.machine.JumpTo(i); jumpErr == nil {
						s.rebuildOptions()
					}
					break
				}
			}
			return s, nil
		}
		s.errMsg = err.Error()
		return s, nil
	}

	res, err := scoring.Score(s.typ, s.catalog, answers)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: result.New(res, s.version, s.st, s.narrative),
		}
	}
}

// HandleEsc closes the grid overlay if open, otherwise flushes pending
// progress writes and lets the router pop back to the dashboard.
func (s *QuizScreen) HandleEsc() (bool, tea.Cmd) {
	if s.phase == phaseGrid {
		s.phase = phaseActive
		return true, nil
	}
	if s.machine != nil {
		s.machine.Close()
	}
	return false, nil
}

func (s *QuizScreen) Title() string {
	cfg := assessment.ConfigFor(s.typ)
	if cfg == nil {
		return string(s.typ)
	}
	return cfg.Title
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseResumePrompt:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Confirm"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseGrid:
		return []layout.KeyHint{
			{Key: "←→↑↓", Description: "Move"},
			{Key: "Enter", Description: "Jump"},
			{Key: "g", Description: "Close"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Answer"},
			{Key: "←→", Description: "Prev/Next"},
			{Key: "g", Description: "Grid"},
			{Key: "s", Description: "Submit"},
			{Key: "Esc", Description: "Save & exit"},
		}
	}
}

func (s *QuizScreen) View(width, height int) string {
	if s.phase == phaseResumePrompt {
		box := theme.Card.Render(lipgloss.JoinVertical(
			lipgloss.Left,
			theme.Title.Render("Pick up where you left off?"),
			"",
			theme.Body.Render(fmt.Sprintf("You have a saved session with %d answered.", len(s.snap.Answers))),
			"",
			s.prompt.View(),
		))
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
	}

	answered := make(map[int]bool, s.machine.Len())
	for i := range s.catalog.Questions {
		if _, ok := s.machine.Answer(s.catalog.Questions[i].ID); ok {
			answered[i] = true
		}
	}

	var sections []string

	bar := components.NewProgressBar(
		fmt.Sprintf("%d/%d", s.machine.Answered(), s.machine.Len()),
		float64(s.machine.Answered())/float64(s.machine.Len()),
		false,
		min(width-8, 48),
	)
	sections = append(sections, bar.View(), "")

	if s.phase == phaseGrid {
		grid := components.NewQuestionGrid(s.machine.Len(), s.gridCursor, answered)
		sections = append(sections,
			theme.Subtitle.Render("Jump to a question"),
			"",
			grid.View(),
		)
	} else {
		sections = append(sections, s.options.View())
	}

	if s.errMsg != "" {
		sections = append(sections, "", theme.Warning.Render(s.errMsg))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
