// Package app wires the stores and services together and runs the TUI.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lumina-labs/lumina/internal/analysis"
	"github.com/lumina-labs/lumina/internal/assessment"
	"github.com/lumina-labs/lumina/internal/llm"
	"github.com/lumina-labs/lumina/internal/router"
	"github.com/lumina-labs/lumina/internal/screen"
	"github.com/lumina-labs/lumina/internal/screens/home"
	"github.com/lumina-labs/lumina/internal/screens/quiz"
	"github.com/lumina-labs/lumina/internal/store"
	"github.com/lumina-labs/lumina/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

func newAppModel(st *store.Store, narrative *analysis.Service, version assessment.Version) AppModel {
	return AppModel{
		router: router.New(home.New(st, narrative, version)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.EscHandler); ok {
				if handled, cmd := h.HandleEsc(); handled {
					return m, cmd
				}
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Options configures a TUI run.
type Options struct {
	// Version selects the lite or pro question catalogs.
	Version assessment.Version

	// DBPath overrides the default database location when non-empty.
	DBPath string

	// Start, when non-empty, opens that assessment immediately instead
	// of landing on the dashboard.
	Start assessment.Type
}

// Run opens the stores, builds the narrative service, and starts the
// Bubble Tea program. A missing database or LLM key degrades to an
// in-memory session without narratives rather than failing.
func Run(opts Options) error {
	path := opts.DBPath
	var err error
	if path == "" {
		if path, err = store.DefaultDBPath(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: resolve database path: %v\n", err)
			path = ""
		}
	}

	var st *store.Store
	if path != "" {
		if st, err = store.Open(path); err != nil {
			fmt.Fprintf(os.Stderr, "warning: open database: %v\n", err)
			st = nil
		}
	}
	if st != nil {
		defer st.Close()
	}

	narrative := analysis.NewService(buildProvider(), analysis.DefaultConfig())

	model := newAppModel(st, narrative, opts.Version)
	if opts.Start != "" {
		s, err := quiz.New(opts.Start, opts.Version, st, narrative)
		if err != nil {
			return fmt.Errorf("start assessment %s: %w", opts.Start, err)
		}
		model.router.Push(s)
	}

	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

// buildProvider resolves an LLM provider from the environment:
// LUMINA_* variables first, then standard API key discovery.
// Returns nil when nothing is configured.
func buildProvider() llm.Provider {
	cfg := llm.ConfigFromEnv()
	if cfg.Validate() != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return nil
		}
		cfg = discovered
	}

	provider, err := llm.NewProvider(context.Background(), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: LLM provider: %v\n", err)
		return nil
	}
	return provider
}
