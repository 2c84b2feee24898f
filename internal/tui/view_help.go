package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderHelp() string {
	var b strings.Builder

	// Title
	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Help")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	// Commands
	commands := []string{
		"  /help, /h             Show this help",
		"  /quit, /q             Quit (or type exit, quit, bye)",
		"  /learn <key>: <value> Teach me something to remember",
		"  /recall <key>         Ask what I remember",
		"  /caption <topic>      Caption in your configured style",
	}

	commandsBox := styleBox.
		Width(56).
		Render(strings.Join(commands, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, commandsBox))
	b.WriteString("\n\n")

	// Things to ask for
	examples := []string{
		"  \"Create a caption about travel\"",
		"  \"Suggest hashtags for fitness\"",
		"  \"Give me content ideas\"",
		"  \"Engagement tips\" / \"Current trends\"",
		"  \"Tell me a joke\" / \"What time is it\"",
	}

	examplesTitle := styleSubtitle.Render("Ask Me For")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, examplesTitle))
	b.WriteString("\n\n")

	examplesBox := styleBox.
		Width(56).
		Render(strings.Join(examples, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, examplesBox))
	b.WriteString("\n\n")

	// Instructions
	instructions := styleStatusBar.Render("[Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}
