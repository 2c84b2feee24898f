package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// smokeQueries exercises one utterance per major intent.
var smokeQueries = []string{
	"hello",
	"create a caption about travel",
	"suggest hashtags for fitness",
	"give me content ideas",
	"engagement tips",
	"current trends",
}

var (
	styleQuery = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#22D3EE")).
			Bold(true)
	styleDivider = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

// runSmoke prints each canned query and the live reply, for a quick
// eyeball check that the responder is wired up.
func runSmoke() {
	cfg := loadConfig()
	bot := newResponder(cfg)

	fmt.Println("Testing " + cfg.Name + " functionality...")
	divider := styleDivider.Render(strings.Repeat("-", 50))

	for _, query := range smokeQueries {
		fmt.Println()
		fmt.Println(styleQuery.Render("You: " + query))
		fmt.Println(cfg.Name + ": " + bot.Respond(query))
		fmt.Println(divider)
	}
}
