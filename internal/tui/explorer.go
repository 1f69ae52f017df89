// Package tui provides the interactive explorer for normalized benchmark
// records: cascading filters, list and aggregate views, paging, and export.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/evalscope/internal/explore"
	"github.com/mwiater/evalscope/internal/export"
	"github.com/mwiater/evalscope/internal/notify"
	"github.com/mwiater/evalscope/internal/results"
	"github.com/mwiater/evalscope/internal/util"
)

// viewState represents the current view or screen of the application.
type viewState int

const (
	// viewLoading is the state while the document is read and normalized.
	viewLoading viewState = iota
	// viewBrowse is the main exploration screen.
	viewBrowse
	// viewPicker is the state where the user picks a filter value.
	viewPicker
)

// documentLoadedMsg is sent when the store has (re)loaded the document.
type documentLoadedMsg struct{}

// model is the main application model for the Bubble Tea UI.
type model struct {
	store    *results.Store
	exporter *export.Exporter
	notices  *notify.Recorder

	engine *explore.Engine
	pager  *explore.Pager

	state      viewState
	focus      int
	picker     list.Model
	pickerDim  explore.Dimension
	pageInput  textinput.Model
	typingPage bool
	spinner    spinner.Model
	status     string

	width, height int
}

// item represents a selectable filter value in the picker list.
type item struct {
	value string
	count int
}

// Title returns the value of the list item.
func (i item) Title() string { return i.value }

// Description reports how many records carry the value.
func (i item) Description() string {
	if i.count < 0 {
		return "remove this filter"
	}
	return fmt.Sprintf("%d records", i.count)
}

// FilterValue returns the value of the item, used for filtering.
func (i item) FilterValue() string { return i.value }

// initialModel creates and initializes a new model with default values.
func initialModel(store *results.Store, exporter *export.Exporter, notices *notify.Recorder) *model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	ti := textinput.New()
	ti.Placeholder = "page"
	ti.CharLimit = 6
	ti.Width = 6
	ti.Prompt = "Go to page: "

	return &model{
		store:     store,
		exporter:  exporter,
		notices:   notices,
		engine:    explore.NewEngine(nil),
		pager:     explore.NewPager(),
		state:     viewLoading,
		picker:    list.New(nil, list.NewDefaultDelegate(), 0, 0),
		pageInput: ti,
		spinner:   s,
	}
}

// loadDocumentCmd reads and normalizes the document off the update loop.
func loadDocumentCmd(store *results.Store) tea.Cmd {
	return func() tea.Msg {
		store.Load()
		return documentLoadedMsg{}
	}
}

// Init starts the spinner and kicks off the document load.
func (m *model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadDocumentCmd(m.store))
}

// drainStatus surfaces the most recent notice in the status line.
func (m *model) drainStatus() {
	for _, n := range m.notices.Drain() {
		if n.Description != "" {
			m.status = fmt.Sprintf("[%s] %s: %s", n.Severity, n.Title, n.Description)
		} else {
			m.status = fmt.Sprintf("[%s] %s", n.Severity, n.Title)
		}
	}
}

// openPicker populates the value list for the focused dimension.
func (m *model) openPicker(d explore.Dimension) {
	m.pickerDim = d
	counts := m.engine.OptionCounts(d)

	items := []list.Item{item{value: explore.All, count: -1}}
	for _, opt := range m.engine.Options(d) {
		items = append(items, item{value: opt, count: counts[opt]})
	}
	m.picker.SetItems(items)
	m.picker.Title = fmt.Sprintf("Filter by %s", d)
	m.picker.Select(0)
	m.picker.SetSize(m.width-2, m.height-4)
	m.state = viewPicker
}

// Update is the central update function for the Bubble Tea model.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.picker.SetSize(msg.Width-2, msg.Height-4)
		return m, nil

	case documentLoadedMsg:
		m.engine.SetRecords(m.store.Records())
		m.pager = explore.NewPager()
		m.state = viewBrowse
		m.drainStatus()
		return m, nil

	case spinner.TickMsg:
		if m.state == viewLoading {
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch m.state {
	case viewLoading:
		return m, nil

	case viewPicker:
		if key, ok := msg.(tea.KeyMsg); ok {
			switch key.String() {
			case "esc":
				m.state = viewBrowse
				return m, nil
			case "enter":
				if chosen, ok := m.picker.SelectedItem().(item); ok {
					m.engine.Select(m.pickerDim, chosen.value)
					m.state = viewBrowse
				}
				return m, nil
			case "ctrl+c":
				return m, tea.Quit
			}
		}
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd

	case viewBrowse:
		if m.typingPage {
			return m.updatePageInput(msg)
		}
		if key, ok := msg.(tea.KeyMsg); ok {
			return m.handleBrowseKey(key)
		}
	}

	return m, tea.Batch(cmds...)
}

// updatePageInput runs the go-to-page control: non-digit characters are
// discarded as typed, enter commits, esc or an empty commit reverts.
func (m *model) updatePageInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.typingPage = false
			m.pageInput.Blur()
			m.pageInput.Reset()
			return m, nil
		case "enter":
			n := len(m.engine.FullView())
			m.pager.Goto(m.pageInput.Value(), n)
			m.typingPage = false
			m.pageInput.Blur()
			m.pageInput.Reset()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.pageInput, cmd = m.pageInput.Update(msg)
	m.pageInput.SetValue(util.DigitsOnly(m.pageInput.Value()))
	return m, cmd
}

// handleBrowseKey dispatches the main exploration keys.
func (m *model) handleBrowseKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.engine.FullView())

	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "left", "h":
		if m.focus > 0 {
			m.focus--
		}
	case "right", "l":
		if m.focus < len(explore.DimensionOrder)-1 {
			m.focus++
		}
	case "enter":
		m.openPicker(explore.DimensionOrder[m.focus])

	case "v":
		if m.engine.Mode() == explore.ViewList {
			m.engine.SetMode(explore.ViewAggregate)
		} else {
			m.engine.SetMode(explore.ViewList)
		}
	case "s":
		if m.engine.Mode() == explore.ViewList {
			m.engine.ToggleSort()
		}

	case "[", "pgup":
		m.pager.Prev(n)
	case "]", "pgdown":
		m.pager.Next(n)
	case "g":
		if n > 0 {
			m.typingPage = true
			m.pageInput.Reset()
			m.pageInput.Focus()
		}

	case "j":
		_, _ = m.exporter.ExportJSON(m.engine.FullView())
		m.drainStatus()
	case "c":
		_, _ = m.exporter.ExportCSV(m.engine.FullView())
		m.drainStatus()

	case "r":
		m.state = viewLoading
		return m, tea.Batch(m.spinner.Tick, loadDocumentCmd(m.store))
	}
	return m, nil
}

// Run loads the document and starts the explorer.
func Run(store *results.Store, exporter *export.Exporter, notices *notify.Recorder) error {
	program := tea.NewProgram(initialModel(store, exporter, notices), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
