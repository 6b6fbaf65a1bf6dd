package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/genpass/internal/generator"
)

const gaugeWidth = 40

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	focusedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	blurredStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	sectionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0")).Bold(true)
	passwordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C678DD"))

	strongStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	moderateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	weakStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	dangerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
)

var fieldLabels = [focusFields]string{"Letters", "Uppercase", "Symbols", "Numbers"}

var actionLabels = []string{"Generate", "Copy to clipboard", "Quit"}

// View implements tea.Model. It never mutates the model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Password Generator"))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("Use arrows (h, j, k, l) or +/- to adjust. Enter to generate."))
	b.WriteString("\n\n")

	values := [focusFields]int{m.config.Letters, m.config.Uppercase, m.config.Symbols, m.config.Numbers}
	for i, label := range fieldLabels {
		line := fmt.Sprintf("%-10s %3d", label, values[i])
		if i == m.focus {
			b.WriteString(focusedStyle.Render(line))
		} else {
			b.WriteString(blurredStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	for i, label := range actionLabels {
		line := "> " + label
		if m.focus == focusGenerate+i {
			b.WriteString(focusedStyle.Render(line))
		} else {
			b.WriteString(blurredStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Generated Password"))
	b.WriteString("\n")
	b.WriteString(passwordStyle.Render(m.displayPassword()))
	b.WriteString("\n")
	b.WriteString(strengthStyle(m.strength).Render("Strength: " + m.strength.String()))
	b.WriteString("\n")
	b.WriteString(m.renderGauge())
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	return b.String()
}

func (m *Model) displayPassword() string {
	if m.width <= 0 {
		return m.password
	}
	contentWidth := m.width - 2
	if contentWidth < 10 {
		contentWidth = 10
	}
	return runewidth.Truncate(m.password, contentWidth, "…")
}

func (m *Model) renderGauge() string {
	gauge := m.gauge
	gauge.FullColor = strengthColor(m.strength)
	return gauge.ViewAs(strengthRatio(m.strength))
}

func strengthRatio(s generator.Strength) float64 {
	switch s {
	case generator.StrengthStrong:
		return 1.0
	case generator.StrengthModerate:
		return 0.6
	case generator.StrengthWeak:
		return 0.3
	default:
		return 0.0
	}
}

func strengthColor(s generator.Strength) string {
	switch s {
	case generator.StrengthStrong:
		return "#52C41A"
	case generator.StrengthModerate:
		return "#C89A3A"
	case generator.StrengthWeak:
		return "#FF4D4F"
	default:
		return "#8C8C8C"
	}
}

func strengthStyle(s generator.Strength) lipgloss.Style {
	switch s {
	case generator.StrengthStrong:
		return strongStyle
	case generator.StrengthModerate:
		return moderateStyle
	case generator.StrengthWeak:
		return weakStyle
	default:
		return dangerStyle
	}
}
