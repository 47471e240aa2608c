// Package tui is the interactive terminal front end: a dashboard of saved
// itineraries and the four-step itinerary editor.
package tui

import (
	"itinerary-studio/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type Options struct {
	// ExportDir receives PDFs exported from the dashboard.
	ExportDir string
	Logger    *zap.Logger
}

func Run(repo *store.Repo, opt Options) error {
	applyThemePreference()
	applyColorProfilePreference()
	m := newAppModel(repo, opt)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
