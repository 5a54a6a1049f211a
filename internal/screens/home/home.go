// Package home is the dashboard: one entry per assessment, plus
// history. Assessments with a saved in-flight session are marked so the
// user knows they can resume.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lumina-labs/lumina/internal/analysis"
	"github.com/lumina-labs/lumina/internal/assessment"
	"github.com/lumina-labs/lumina/internal/router"
	"github.com/lumina-labs/lumina/internal/screen"
	"github.com/lumina-labs/lumina/internal/screens/history"
	"github.com/lumina-labs/lumina/internal/screens/quiz"
	"github.com/lumina-labs/lumina/internal/store"
	"github.com/lumina-labs/lumina/internal/ui/components"
	"github.com/lumina-labs/lumina/internal/ui/theme"
)

// HomeScreen is the main dashboard of the application.
type HomeScreen struct {
	menu      components.Menu
	version   assessment.Version
	resumable map[assessment.Type]bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the dashboard. version selects the LITE or PRO catalogs
// for every assessment started from here.
func New(st *store.Store, narrative *analysis.Service, version assessment.Version) *HomeScreen {
	resumable := make(map[assessment.Type]bool)
	if st != nil {
		progress := st.Progress()
		for _, t := range assessment.AllTypes() {
			if _, ok, err := progress.Load(context.Background(), t); err == nil && ok {
				resumable[t] = true
			}
		}
	}

	var items []components.MenuItem
	for _, cfg := range assessment.Configs() {
		cfg := cfg
		label := cfg.Title
		if resumable[cfg.Type] {
			label += "  ⏸ in progress"
		}
		items = append(items, components.MenuItem{
			Label:  label,
			Detail: fmt.Sprintf("%s · %s", cfg.Description, cfg.Duration(version)),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					s, err := quiz.New(cfg.Type, version, st, narrative)
					if err != nil {
						return nil
					}
					return router.PushScreenMsg{Screen: s}
				}
			},
		})
	}

	items = append(items, components.MenuItem{
		Label: "History",
		Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(st)}
			}
		},
	})
	items = append(items, components.MenuItem{
		Label: "Quit",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})

	return &HomeScreen{
		menu:      components.NewMenu(items),
		version:   version,
		resumable: resumable,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := theme.Title.Render("Know yourself a little better")
	subtitle := theme.Subtitle.Render(fmt.Sprintf("Six short self-assessments · %s edition", strings.ToLower(string(h.version))))

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		subtitle,
		"",
		h.menu.View(),
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
