// Package tui provides the Bubble Tea password generator interface.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/genpass/internal/clipboard"
	"github.com/verte-zerg/genpass/internal/generator"
	"github.com/verte-zerg/genpass/internal/model"
)

// Focus positions, top to bottom.
const (
	focusLetters = iota
	focusUppercase
	focusSymbols
	focusNumbers
	focusGenerate
	focusCopy
	focusQuit
)

const (
	focusFields = 4
	focusMax    = focusQuit
)

const statusDuration = 2 * time.Second

const (
	statusCopied      = "Copied to clipboard."
	statusUnavailable = "Clipboard unavailable."
)

// statusExpiredMsg carries the tick time so the model only clears a status
// whose recorded deadline has actually passed.
type statusExpiredMsg struct {
	at time.Time
}

// Model implements the Bubble Tea password generator UI.
type Model struct {
	config model.Config
	gen    *generator.Generator
	copier clipboard.Copier

	focus    int
	password string
	strength generator.Strength

	status      string
	statusUntil time.Time

	gauge progress.Model

	width  int
	height int
}

// NewModel constructs the UI model and generates the initial password.
func NewModel(cfg model.Config, gen *generator.Generator, copier clipboard.Copier) *Model {
	m := &Model{
		config: cfg,
		gen:    gen,
		copier: copier,
		gauge:  progress.New(progress.WithoutPercentage(), progress.WithWidth(gaugeWidth)),
	}
	m.regenerate()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case statusExpiredMsg:
		m.clearStatusIfExpired(msg.at)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Up):
		if m.focus > 0 {
			m.focus--
		}
	case key.Matches(msg, keys.Down):
		if m.focus < focusMax {
			m.focus++
		}
	case key.Matches(msg, keys.Decrement):
		m.adjustValue(-1)
	case key.Matches(msg, keys.Increment):
		m.adjustValue(1)
	case key.Matches(msg, keys.Regenerate):
		m.regenerate()
	case key.Matches(msg, keys.Copy):
		return m, m.copyPassword()
	case key.Matches(msg, keys.Confirm):
		return m.confirm()
	}
	return m, nil
}

func (m *Model) confirm() (tea.Model, tea.Cmd) {
	switch m.focus {
	case focusCopy:
		return m, m.copyPassword()
	case focusQuit:
		return m, tea.Quit
	default:
		// Confirming on a count field regenerates, same as Generate.
		m.regenerate()
		return m, nil
	}
}

func (m *Model) adjustValue(delta int) {
	switch m.focus {
	case focusLetters:
		m.config.Letters = model.ClampValue(m.config.Letters + delta)
	case focusUppercase:
		m.config.Uppercase = model.ClampValue(m.config.Uppercase + delta)
	case focusSymbols:
		m.config.Symbols = model.ClampValue(m.config.Symbols + delta)
	case focusNumbers:
		m.config.Numbers = model.ClampValue(m.config.Numbers + delta)
	}
}

func (m *Model) regenerate() {
	m.password = m.gen.Generate(m.config)
	m.strength = generator.Score(m.password)
}

// copyPassword invokes the clipboard synchronously and schedules the status
// expiry tick. The returned command only delivers the tick.
func (m *Model) copyPassword() tea.Cmd {
	if m.copier.Copy(m.password) {
		m.status = statusCopied
	} else {
		m.status = statusUnavailable
	}
	m.statusUntil = time.Now().Add(statusDuration)
	return tea.Tick(statusDuration, func(t time.Time) tea.Msg {
		return statusExpiredMsg{at: t}
	})
}

func (m *Model) clearStatusIfExpired(at time.Time) {
	if m.statusUntil.IsZero() || at.Before(m.statusUntil) {
		return
	}
	m.status = ""
	m.statusUntil = time.Time{}
}
