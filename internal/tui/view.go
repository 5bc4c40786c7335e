package tui

import (
	"fmt"
	"strings"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.header())
	b.WriteString("\n\n")

	switch m.mode {
	case modeCategories:
		b.WriteString(m.viewCategories())
	case modeOptions, modeEdit:
		b.WriteString(m.viewOptions())
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
	}

	b.WriteString("\n")
	b.WriteString(m.help())
	return b.String()
}

func (m Model) header() string {
	title := titleStyle.Render(" Ghostty Config ")
	if n := m.app.UnsavedCount(); n > 0 {
		return title + " " + badgeStyle.Render(fmt.Sprintf("%d unsaved", n))
	}
	return title
}

func (m Model) viewCategories() string {
	var b strings.Builder
	for i, cat := range m.categories {
		line := fmt.Sprintf("%s %s  %s",
			cat.Icon(),
			cat.DisplayName(),
			dimStyle.Render(fmt.Sprintf("(%d)", len(m.app.Schema.OptionsForCategory(cat)))))

		if i == m.catCursor {
			b.WriteString(cursorStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewOptions() string {
	var b strings.Builder

	cat := m.categories[m.catCursor]
	b.WriteString(dimStyle.Render(cat.DisplayName()))
	b.WriteString("\n\n")

	if len(m.options) == 0 {
		b.WriteString(dimStyle.Render("  no options in this category"))
		b.WriteString("\n")
		return b.String()
	}

	for i, opt := range m.options {
		value, set := m.app.Value(opt.Key)
		display := value
		if !set {
			display = dimStyle.Render(opt.DefaultValue)
		} else {
			display = setStyle.Render(value)
		}

		line := fmt.Sprintf("%-32s %s", opt.Key, display)
		if i == m.optCursor {
			b.WriteString(cursorStyle.Render("> "))
			b.WriteString(line)
			if m.mode == modeEdit {
				b.WriteString("\n\n  ")
				b.WriteString(m.input.View())
				b.WriteString("\n")
				b.WriteString(m.optionHint(i))
			}
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// optionHint shows the type and allowed values while editing.
func (m Model) optionHint(i int) string {
	opt := m.options[i]
	hint := fmt.Sprintf("  %s", opt.Type.Kind)
	if len(opt.Type.EnumValues) > 0 {
		hint += ": " + strings.Join(opt.Type.EnumValues, ", ")
	}
	if opt.DefaultValue != "" {
		hint += fmt.Sprintf("  (default %s)", opt.DefaultValue)
	}
	return dimStyle.Render(hint)
}

func (m Model) help() string {
	switch m.mode {
	case modeEdit:
		return helpStyle.Render("enter apply · esc cancel")
	case modeOptions:
		return helpStyle.Render("↑/↓ move · enter edit · d reset · s save · esc back · q quit")
	default:
		return helpStyle.Render("↑/↓ move · enter open · s save · q quit")
	}
}
