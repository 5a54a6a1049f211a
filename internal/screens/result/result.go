// Package result shows the computed outcome of an assessment, enriched
// with a narrative once the analysis service resolves. The computed
// result is never held back waiting on the narrative.
package result

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
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

const pollInterval = 150 * time.Millisecond

type pollMsg struct{}

// ResultScreen displays a scored assessment.
type ResultScreen struct {
	res       *scoring.Result
	version   assessment.Version
	st        *store.Store
	narrative *analysis.Service

	spin      spinner.Model
	pending   bool
	report    analysis.Analysis
	generated bool // narrative came from the LLM, not the static table
	saved     bool
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates the result screen and kicks off narrative generation.
func New(res *scoring.Result, version assessment.Version, st *store.Store, narrative *analysis.Service) *ResultScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	return &ResultScreen{
		res:       res,
		version:   version,
		st:        st,
		narrative: narrative,
		spin:      sp,
		pending:   true,
	}
}

func (s *ResultScreen) Init() tea.Cmd {
	if s.narrative != nil {
		s.narrative.Request(context.Background(), s.res)
	} else {
		s.resolve(nil)
	}
	return tea.Batch(s.spin.Tick, pollCmd())
}

func pollCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(time.Time) tea.Msg { return pollMsg{} })
}

// resolve fixes the narrative to show: the generated one if available,
// otherwise the static fallback. It then records the result in history.
func (s *ResultScreen) resolve(a *analysis.Analysis) {
	s.pending = false
	if a != nil {
		s.report = *a
		s.generated = true
	} else {
		s.report = analysis.Fallback(s.res)
	}
	s.save()
}

func (s *ResultScreen) save() {
	if s.saved || s.st == nil {
		return
	}
	s.saved = true

	rec := store.HistoryRecord{
		Type:    s.res.Kind,
		Version: s.version,
		Result:  *s.res,
	}
	if s.generated {
		if raw, err := json.Marshal(s.report); err == nil {
			rec.Analysis = raw
		}
	}
	if _, err := s.st.History().Append(context.Background(), rec); err != nil {
		fmt.Fprintf(os.Stderr, "warning: save history: %v\n", err)
	}
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case pollMsg:
		if !s.pending {
			return s, nil
		}
		if a, ok := s.narrative.Consume(); ok {
			s.resolve(a)
			return s, nil
		}
		return s, pollCmd()

	case spinner.TickMsg:
		if !s.pending {
			return s, nil
		}
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		if msg.String() == "enter" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	return s, nil
}

func (s *ResultScreen) Title() string {
	cfg := assessment.ConfigFor(s.res.Kind)
	if cfg == nil {
		return "Result"
	}
	return cfg.Title
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Done"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ResultScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Render(headline(s.res)))
	sections = append(sections, "", renderScores(s.res))

	if s.pending {
		sections = append(sections, "",
			s.spin.View()+theme.Hint.Render(" Writing your analysis..."))
	} else {
		sections = append(sections, "", renderNarrative(s.report, s.generated, min(width-8, 72)))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// headline is the one-line statement of the outcome.
func headline(res *scoring.Result) string {
	switch res.Kind {
	case assessment.TypeMBTI:
		return "Your type: " + res.MBTI.Type
	case assessment.TypeHolland:
		return "Your career code: " + res.Holland.Code
	case assessment.TypeSCL90:
		return "Screening level: " + string(res.SCL90.Severity)
	case assessment.TypeIQ:
		return "Result: " + res.IQ.Level
	case assessment.TypeEQ:
		return "Result: " + res.EQ.Level
	case assessment.TypeSpiritual:
		return "Dominant need: " + res.Spiritual.Dominant
	default:
		return "Result"
	}
}

// renderScores renders the per-kind score breakdown.
func renderScores(res *scoring.Result) string {
	var lines []string
	switch res.Kind {
	case assessment.TypeMBTI:
		// Percentages are keyed by dimension pair; the value is the
		// first pole's share.
		for _, pair := range []string{"EI", "SN", "TF", "JP"} {
			pct := res.MBTI.Percentages[pair]
			lines = append(lines, fmt.Sprintf("%c %3d%%  vs  %c %3d%%",
				pair[0], pct, pair[1], 100-pct))
		}
	case assessment.TypeHolland:
		for _, c := range []string{"R", "I", "A", "S", "E", "C"} {
			lines = append(lines, fmt.Sprintf("%s  %d", c, res.Holland.Scores[c]))
		}
	case assessment.TypeSCL90:
		lines = append(lines, fmt.Sprintf("Average %.2f  ·  Total %.0f",
			res.SCL90.AverageScore, res.SCL90.TotalScore))
		names := make([]string, 0, len(res.SCL90.FactorScores))
		for name := range res.SCL90.FactorScores {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			lines = append(lines, fmt.Sprintf("%s  %.2f", name, res.SCL90.FactorScores[name]))
		}
	case assessment.TypeIQ:
		lines = append(lines, fmt.Sprintf("Score %.0f / %.0f  ·  %d%%",
			res.IQ.Score, res.IQ.Total, res.IQ.Percentile))
	case assessment.TypeEQ:
		lines = append(lines, fmt.Sprintf("Score %.0f / %.0f  ·  %d%%",
			res.EQ.Score, res.EQ.Total, res.EQ.Percentile))
	case assessment.TypeSpiritual:
		names := make([]string, 0, len(res.Spiritual.Scores))
		for name := range res.Spiritual.Scores {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			lines = append(lines, fmt.Sprintf("%s  %.0f", name, res.Spiritual.Scores[name]))
		}
	}
	return theme.Body.Render(strings.Join(lines, "\n"))
}

// renderNarrative renders the analysis block.
func renderNarrative(a analysis.Analysis, generated bool, width int) string {
	wrap := lipgloss.NewStyle().Width(width)

	var b strings.Builder
	b.WriteString(theme.Selected.Render(a.Title) + "\n\n")
	b.WriteString(wrap.Foreground(theme.Text).Render(a.Summary) + "\n\n")

	if len(a.KeyTraits) > 0 {
		b.WriteString(theme.Subtitle.Render("Key traits") + "\n")
		for _, tr := range a.KeyTraits {
			b.WriteString(theme.Body.Render("  • "+tr) + "\n")
		}
		b.WriteString("\n")
	}
	if len(a.Recommendations) > 0 {
		b.WriteString(theme.Subtitle.Render("Suggestions") + "\n")
		for _, r := range a.Recommendations {
			b.WriteString(theme.Body.Render("  • "+r) + "\n")
		}
		b.WriteString("\n")
	}
	if a.DetailedAnalysis != "" {
		b.WriteString(wrap.Foreground(theme.Text).Render(a.DetailedAnalysis) + "\n")
	}
	if !generated {
		b.WriteString("\n" + theme.Hint.Render("Offline reference analysis"))
	}

	return theme.Card.Render(b.String())
}
