// Package tui implements the interactive config browser: categories on the
// first screen, the category's options on the second, and an inline editor
// for the selected option.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/madeye/ghostty-config/internal/app"
	"github.com/madeye/ghostty-config/internal/schema"
)

type mode int

const (
	modeCategories mode = iota
	modeOptions
	modeEdit
)

// Model is the bubbletea model for the config browser.
type Model struct {
	app *app.App

	mode       mode
	categories []schema.Category
	catCursor  int

	options   []*schema.Option
	optCursor int

	input  textinput.Model
	status string

	width  int
	height int
}

// New creates the browser model over shared editing state.
func New(a *app.App) Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 50

	return Model{
		app:        a,
		categories: schema.Categories(),
		input:      ti,
	}
}

// Run starts the interactive browser.
func Run(a *app.App) error {
	p := tea.NewProgram(New(a), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeEdit {
			return m.updateEdit(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "esc":
		if m.mode == modeOptions {
			m.mode = modeCategories
			m.status = ""
		}
		return m, nil

	case "up", "k":
		m.moveCursor(-1)
		return m, nil

	case "down", "j":
		m.moveCursor(1)
		return m, nil

	case "enter", "l":
		return m.enter()

	case "d":
		// Reset the selected option to its default
		if m.mode == modeOptions && len(m.options) > 0 {
			opt := m.options[m.optCursor]
			m.app.Remove(opt.Key)
			m.status = fmt.Sprintf("Reset %s to default (unsaved)", opt.Key)
		}
		return m, nil

	case "s":
		if err := m.app.Save(); err != nil {
			m.status = errorStyle.Render(fmt.Sprintf("Save failed: %v", err))
		} else {
			m.status = "Saved"
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) moveCursor(delta int) {
	switch m.mode {
	case modeCategories:
		m.catCursor = clamp(m.catCursor+delta, 0, len(m.categories)-1)
	case modeOptions:
		m.optCursor = clamp(m.optCursor+delta, 0, len(m.options)-1)
	}
}

func (m Model) enter() (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeCategories:
		cat := m.categories[m.catCursor]
		m.options = m.app.Schema.OptionsForCategory(cat)
		m.optCursor = 0
		m.mode = modeOptions
		m.status = ""
		return m, nil

	case modeOptions:
		if len(m.options) == 0 {
			return m, nil
		}
		opt := m.options[m.optCursor]
		m.input.SetValue(m.app.DisplayValue(opt.Key))
		m.input.CursorEnd()
		m.input.Focus()
		m.mode = modeEdit
		m.status = ""
		return m, textinput.Blink
	}
	return m, nil
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.input.Blur()
		m.mode = modeOptions
		m.status = ""
		return m, nil

	case "enter":
		opt := m.options[m.optCursor]
		m.app.SetValue(opt.Key, m.input.Value())
		m.input.Blur()
		m.mode = modeOptions
		m.status = fmt.Sprintf("Updated %s (unsaved)", opt.Key)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
