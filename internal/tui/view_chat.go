package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderChat() string {
	boxWidth := min(70, a.width-4)
	leftPad := (a.width - boxWidth) / 2
	if leftPad < 2 {
		leftPad = 2
	}
	indent := strings.Repeat(" ", leftPad)

	headerHeight := 3 // title + subtitle + blank line
	inputHeight := 4  // input box + status bar

	availableHeight := a.height - headerHeight - inputHeight
	if availableHeight < 5 {
		availableHeight = 5
	}

	// === BUILD HEADER ===
	var header strings.Builder
	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render(a.bot.Name())
	header.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	header.WriteString("\n")

	subtitle := lipgloss.NewStyle().
		Foreground(colorMuted).
		Render("Looply Content Assistant")
	header.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, subtitle))
	header.WriteString("\n\n")

	// === BUILD ALL MESSAGE LINES ===
	var messageLines []string

	for _, msg := range a.state.history {
		content := wrapText(msg.content, boxWidth-4)
		lines := strings.Split(content, "\n")

		if msg.role == "user" {
			for j, line := range lines {
				prefix := "> "
				if j > 0 {
					prefix = "  "
				}
				styled := lipgloss.NewStyle().
					Foreground(colorSecondary).
					Render(prefix + line)
				messageLines = append(messageLines, indent+styled)
			}
		} else {
			for _, line := range lines {
				styled := lipgloss.NewStyle().
					Foreground(colorWhite).
					Render("  " + line)
				messageLines = append(messageLines, indent+styled)
			}
		}
		messageLines = append(messageLines, "") // blank line between messages
	}

	// === APPLY SCROLL ===
	totalLines := len(messageLines)

	maxScroll := totalLines - availableHeight
	if maxScroll < 0 {
		maxScroll = 0
	}
	if a.state.scrollOffset > maxScroll {
		a.state.scrollOffset = maxScroll
	}
	if a.state.scrollOffset < 0 {
		a.state.scrollOffset = 0
	}

	// Visible range, scrolled from the bottom.
	endIdx := totalLines - a.state.scrollOffset
	startIdx := endIdx - availableHeight
	if startIdx < 0 {
		startIdx = 0
	}
	if endIdx > totalLines {
		endIdx = totalLines
	}

	var visibleLines []string
	if startIdx < endIdx {
		visibleLines = messageLines[startIdx:endIdx]
	}

	// === BUILD INPUT/STATUS ===
	var footer strings.Builder

	inputBox := styleBox.
		Width(boxWidth).
		BorderForeground(colorMuted).
		Render(a.state.input.View())
	footer.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, inputBox))
	footer.WriteString("\n")

	var statusParts []string
	if a.state.scrollOffset > 0 {
		statusParts = append(statusParts, "[scroll]")
	}
	statusParts = append(statusParts, "[↑/↓] Scroll  [Esc] Quit  /help for commands")
	status := styleStatusBar.Render(strings.Join(statusParts, "  "))
	footer.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	// === COMBINE WITH FIXED LAYOUT ===
	var messageArea strings.Builder
	for i, line := range visibleLines {
		messageArea.WriteString(line)
		if i < len(visibleLines)-1 {
			messageArea.WriteString("\n")
		}
	}

	// Pad message area to fill the available height.
	messagePadding := availableHeight - len(visibleLines)
	if messagePadding > 0 {
		if len(visibleLines) > 0 {
			messageArea.WriteString("\n")
		}
		messageArea.WriteString(strings.Repeat("\n", messagePadding-1))
	}

	return header.String() + messageArea.String() + "\n" + footer.String()
}

// wrapText wraps text to fit within maxWidth, preserving words and the
// paragraph breaks the responder puts in its longer replies.
func wrapText(text string, maxWidth int) string {
	if maxWidth <= 0 {
		maxWidth = 60
	}

	var out []string
	for _, paragraph := range strings.Split(text, "\n") {
		if len(paragraph) <= maxWidth {
			out = append(out, paragraph)
			continue
		}

		var b strings.Builder
		lineLen := 0
		for i, word := range strings.Fields(paragraph) {
			if i > 0 {
				if lineLen+1+len(word) > maxWidth {
					b.WriteString("\n")
					lineLen = 0
				} else {
					b.WriteString(" ")
					lineLen++
				}
			}
			b.WriteString(word)
			lineLen += len(word)
		}
		out = append(out, b.String())
	}

	return strings.Join(out, "\n")
}
