// Package history lists past results, newest first, with expandable
// detail for each record.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lumina-labs/lumina/internal/analysis"
	"github.com/lumina-labs/lumina/internal/assessment"
	"github.com/lumina-labs/lumina/internal/router"
	"github.com/lumina-labs/lumina/internal/scoring"
	"github.com/lumina-labs/lumina/internal/screen"
	"github.com/lumina-labs/lumina/internal/store"
	"github.com/lumina-labs/lumina/internal/ui/layout"
	"github.com/lumina-labs/lumina/internal/ui/theme"
)

type loadedMsg struct {
	Records []store.HistoryRecord
	Err     error
}

// HistoryScreen displays past assessment results.
type HistoryScreen struct {
	st       *store.Store
	records  []store.HistoryRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(st *store.Store) *HistoryScreen {
	return &HistoryScreen{
		st:       st,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		if s.st == nil {
			return loadedMsg{}
		}
		records, err := s.st.History().List(context.Background())
		return loadedMsg{Records: records, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.records = msg.Records
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.records)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Warning.Render("Could not load history: "+s.errMsg))
	}
	if !s.loaded {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Loading..."))
	}
	if len(s.records) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No results yet. Finish an assessment to see it here."))
	}

	var lines []string
	for i, rec := range s.records {
		line := summaryLine(rec)
		if i == s.selected {
			line = theme.Selected.Render("▸ " + line)
		} else {
			line = theme.Body.Render("  " + line)
		}
		lines = append(lines, line)

		if s.expanded[i] {
			lines = append(lines, detailBlock(rec, min(width-12, 64))...)
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func summaryLine(rec store.HistoryRecord) string {
	name := string(rec.Type)
	if cfg := assessment.ConfigFor(rec.Type); cfg != nil {
		name = cfg.Title
	}
	when := time.UnixMilli(rec.TakenAt).Format("2006-01-02 15:04")
	return fmt.Sprintf("%s  %-24s %s", when, name, outcome(&rec.Result))
}

// outcome is the short result string shown in the list.
func outcome(res *scoring.Result) string {
	switch res.Kind {
	case assessment.TypeMBTI:
		return res.MBTI.Type
	case assessment.TypeHolland:
		return res.Holland.Code
	case assessment.TypeSCL90:
		return string(res.SCL90.Severity)
	case assessment.TypeIQ:
		return res.IQ.Level
	case assessment.TypeEQ:
		return res.EQ.Level
	case assessment.TypeSpiritual:
		return res.Spiritual.Dominant
	default:
		return string(res.Kind)
	}
}

func detailBlock(rec store.HistoryRecord, width int) []string {
	wrap := lipgloss.NewStyle().Width(width).Foreground(theme.TextDim)

	var lines []string
	lines = append(lines, wrap.Render("    "+string(rec.Version)+" edition"))

	if len(rec.Analysis) > 0 {
		var a analysis.Analysis
		if err := json.Unmarshal(rec.Analysis, &a); err == nil {
			lines = append(lines, wrap.Render("    "+a.Title))
			lines = append(lines, wrap.Render("    "+a.Summary))
		}
	}
	lines = append(lines, "")
	return lines
}
