// Package ui holds the terminal output styling for the apm CLI. Commands go
// through these helpers so success/warning/error markers and colors stay
// consistent across commands.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Color palette.
var (
	colorPrimary = lipgloss.Color("#7C3AED") // Purple
	colorSuccess = lipgloss.Color("#10B981") // Green
	colorDanger  = lipgloss.Color("#EF4444") // Red
	colorWarning = lipgloss.Color("#F59E0B") // Amber
	colorMuted   = lipgloss.Color("#6B7280") // Gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorDanger)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	nameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F3F4F6"))
)

// Header renders a bold section header.
func Header(text string) string {
	return headerStyle.Render(text)
}

// Success renders a green check line.
func Success(text string) string {
	return successStyle.Render("✓ ") + text
}

// Warning renders an amber warning line.
func Warning(text string) string {
	return warningStyle.Render("⚠ " + text)
}

// Error renders a red cross line.
func Error(text string) string {
	return errorStyle.Render("✗ " + text)
}

// Muted renders dim secondary text.
func Muted(text string) string {
	return mutedStyle.Render(text)
}

// Name renders an agent or skill name.
func Name(text string) string {
	return nameStyle.Render(text)
}

// Bullet renders an indented list item.
func Bullet(text string) string {
	return "  " + mutedStyle.Render("•") + " " + text
}

// KeyValue renders an aligned "key: value" row for metadata tables.
func KeyValue(key, value string, width int) string {
	padded := fmt.Sprintf("%-*s", width, key+":")
	return "  " + mutedStyle.Render(padded) + " " + value
}

// ListRow renders one registry listing row: name, version badge, description.
func ListRow(name, version, description string) string {
	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(nameStyle.Render(name))
	if version != "" {
		b.WriteString(" ")
		b.WriteString(mutedStyle.Render("v" + version))
	}
	if description != "" {
		b.WriteString("\n    ")
		b.WriteString(mutedStyle.Render(description))
	}
	return b.String()
}

// RenderMarkdown renders markdown for terminal display. On renderer failure
// the raw text is returned so output is never lost.
func RenderMarkdown(text string, width int) string {
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return out
}
