package tui

import "github.com/charmbracelet/lipgloss"

const logo = `
 ██╗     ██╗ █████╗
 ██║     ██║██╔══██╗
 ██║     ██║███████║
 ██║     ██║██╔══██║
 ███████╗██║██║  ██║
 ╚══════╝╚═╝╚═╝  ╚═╝
`

func (a *App) renderWelcome() string {
	logoRendered := styleLogo.Render(logo)

	subtitle := styleSubtitle.Render("Looply Content Assistant")

	instructions := styleSubtitle.Render("\nSay hello, ask for a caption about anything, or type /help")

	inputBox := styleBox.
		Width(64).
		Render(a.state.input.View())

	statusBar := styleStatusBar.Render("[Enter] Send  [Esc] Quit")

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		logoRendered,
		subtitle,
		instructions,
		"",
		inputBox,
	)

	mainArea := lipgloss.Place(
		a.width,
		a.height-2,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)

	statusLine := lipgloss.PlaceHorizontal(a.width, lipgloss.Center, statusBar)

	return lipgloss.JoinVertical(lipgloss.Left, mainArea, statusLine)
}
