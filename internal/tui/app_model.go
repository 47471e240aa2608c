package tui

import (
	"strings"

	"itinerary-studio/internal/model"
	"itinerary-studio/internal/publish"
	"itinerary-studio/internal/store"
	"itinerary-studio/internal/wizard"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

type view int

const (
	viewDashboard view = iota
	viewEditor
)

type appModel struct {
	repo *store.Repo
	opt  Options
	log  *zap.Logger

	width  int
	height int

	view    view
	list    list.Model
	editor  *editorModel
	preview bool

	// Set while a delete waits for y/n.
	confirmDeleteID string

	flash    string
	flashErr bool
}

func newAppModel(repo *store.Repo, opt Options) appModel {
	log := opt.Logger
	if log == nil {
		log = zap.NewNop()
	}
	m := appModel{
		repo:   repo,
		opt:    opt,
		log:    log,
		width:  100,
		height: 30,
		view:   viewDashboard,
		list:   newList(itineraryItems(repo.Itineraries())),
	}
	m.resize()
	return m
}

func (m appModel) Init() tea.Cmd { return nil }

func (m *appModel) resize() {
	listW := m.width
	if m.preview {
		listW = m.width / 2
	}
	m.list.SetSize(listW, max(m.height-4, 3))
	if m.editor != nil {
		m.editor.resize(m.width, m.height)
	}
}

// refreshList reloads the dashboard and reselects selectID when present.
func (m *appModel) refreshList(selectID string) {
	its := m.repo.Itineraries()
	m.list.SetItems(itineraryItems(its))
	for i, it := range its {
		if it.ID == selectID {
			m.list.Select(i)
			return
		}
	}
	if m.list.Index() >= len(its) && len(its) > 0 {
		m.list.Select(len(its) - 1)
	}
}

func (m appModel) selected() (model.Itinerary, bool) {
	it, ok := m.list.SelectedItem().(itineraryItem)
	if !ok {
		return model.Itinerary{}, false
	}
	return it.it, true
}

func (m *appModel) setFlash(msg string, isErr bool) {
	m.flash = msg
	m.flashErr = isErr
}

func (m *appModel) openEditor(sess *wizard.Session) {
	m.editor = newEditorModel(sess, m.log, m.width, m.height)
	m.view = viewEditor
	m.setFlash("", false)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if m.view == viewEditor && m.editor != nil {
			cmd, res := m.editor.Update(msg)
			switch res {
			case editorQuit:
				return m, tea.Quit
			case editorClose:
				var id string
				if m.editor.sess.Editing() {
					id = m.editor.sess.Draft().ID
				}
				if m.editor.dirty {
					m.setFlash("Closed without saving the last changes", true)
				}
				m.editor = nil
				m.view = viewDashboard
				m.refreshList(id)
			}
			return m, cmd
		}
		return m.updateDashboard(msg)
	}

	if m.view == viewDashboard {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	if m.confirmDeleteID != "" {
		id := m.confirmDeleteID
		m.confirmDeleteID = ""
		if msg.String() == "y" {
			if err := m.repo.DeleteItinerary(id); err != nil {
				m.setFlash(err.Error(), true)
			} else {
				m.setFlash("Deleted", false)
			}
			m.refreshList("")
			return m, nil
		}
		m.setFlash("Delete cancelled", false)
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "n":
		m.openEditor(wizard.NewSession(m.repo, wizard.WithLogger(m.log)))
		return m, nil
	case "enter", "e":
		it, ok := m.selected()
		if !ok {
			return m, nil
		}
		sess, err := wizard.OpenSession(m.repo, it.ID, wizard.WithLogger(m.log))
		if err != nil {
			m.setFlash(err.Error(), true)
			return m, nil
		}
		m.openEditor(sess)
		return m, nil
	case "d":
		it, ok := m.selected()
		if !ok {
			return m, nil
		}
		cp, err := m.repo.DuplicateItinerary(it.ID)
		if err != nil {
			m.setFlash(err.Error(), true)
			return m, nil
		}
		m.refreshList(cp.ID)
		m.setFlash("Duplicated as "+cp.ItineraryCode, false)
		return m, nil
	case "x":
		it, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.confirmDeleteID = it.ID
		m.setFlash("Delete "+it.ItineraryCode+"? (y/n)", true)
		return m, nil
	case "p":
		m.preview = !m.preview
		m.resize()
		return m, nil
	case "E":
		it, ok := m.selected()
		if !ok {
			return m, nil
		}
		dir := m.opt.ExportDir
		if strings.TrimSpace(dir) == "" {
			dir = "."
		}
		res, err := publish.Export(it, model.Company, dir, publish.ExportOptions{Format: publish.FormatPDF})
		if err != nil {
			m.log.Warn("export failed", zap.String("code", it.ItineraryCode), zap.Error(err))
			m.setFlash(err.Error(), true)
			return m, nil
		}
		m.setFlash("Exported "+res.Path, false)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m appModel) View() string {
	if m.view == viewEditor && m.editor != nil {
		return m.editor.View()
	}

	header := styleTitle().Render(model.Company.Name + " · Itineraries")
	var body string
	if len(m.list.Items()) == 0 {
		body = styleMuted().Render("No itineraries yet. Press n to create one.")
	} else {
		body = m.list.View()
	}
	if m.preview {
		if it, ok := m.selected(); ok {
			pane := publish.RenderTerminal(it, model.Company, m.width-m.width/2-2, publish.PreviewStyle(previewStyleName()))
			pane = strings.Join(firstLines(strings.Split(pane, "\n"), m.height-4), "\n")
			body = lipgloss.JoinHorizontal(lipgloss.Top, lipgloss.NewStyle().Width(m.width/2).Render(body), pane)
		}
	}

	footer := "n: new   enter: edit   d: duplicate   x: delete   p: preview   E: export pdf   /: filter   q: quit"
	out := []string{header, "", body, ""}
	if m.flash != "" {
		out = append(out, styleStatus(m.flashErr).Render(m.flash))
	}
	out = append(out, styleMuted().Render(footer))
	return strings.Join(out, "\n")
}

func firstLines(lines []string, n int) []string {
	if n < 1 {
		n = 1
	}
	if len(lines) > n {
		return lines[:n]
	}
	return lines
}
