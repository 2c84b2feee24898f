package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/looply/lia/internal/config"
	"github.com/looply/lia/internal/responder"
)

type state struct {
	config *config.Config
	style  responder.Style

	input        textinput.Model
	history      []message
	scrollOffset int
}

type message struct {
	role    string
	content string
}

func newState(cfg *config.Config) *state {
	input := textinput.New()
	input.Placeholder = "Say hello, or ask for captions, hashtags, ideas..."
	input.CharLimit = 500
	input.Width = 60
	input.Focus()

	return &state{
		config: cfg,
		style:  responder.ParseStyle(cfg.CaptionStyle),
		input:  input,
	}
}
