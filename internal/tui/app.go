package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/looply/lia/internal/config"
	"github.com/looply/lia/internal/responder"
)

type view int

const (
	viewWelcome view = iota
	viewChat
	viewHelp
)

// exitWords end the session when typed on their own, matching the plain
// chat convention alongside the key bindings.
var exitWords = []string{"exit", "quit", "bye"}

type App struct {
	width    int
	height   int
	view     view
	state    *state
	bot      *responder.Responder
	quitting bool

	// respond is the chat entry point; a field so tests can stand in for it.
	respond func(input string) string
}

func NewApp(cfg *config.Config, bot *responder.Responder) *App {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &App{
		view:    viewWelcome,
		state:   newState(cfg),
		bot:     bot,
		respond: bot.Respond,
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(tea.WindowSize(), textinput.Blink)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd := a.handleKey(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
	}

	if a.view == viewWelcome || a.view == viewChat {
		var cmd tea.Cmd
		a.state.input, cmd = a.state.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Quit):
		if a.view == viewHelp {
			a.view = viewChat
			return nil
		}
		a.quitting = true
		return tea.Quit

	case key.Matches(msg, keys.Enter):
		if a.view == viewWelcome || a.view == viewChat {
			return a.handleInput()
		}

	case key.Matches(msg, keys.Up):
		if a.view == viewChat {
			a.state.scrollOffset++
		}

	case key.Matches(msg, keys.Down):
		if a.view == viewChat && a.state.scrollOffset > 0 {
			a.state.scrollOffset--
		}
	}

	return nil
}

func (a *App) handleInput() tea.Cmd {
	input := strings.TrimSpace(a.state.input.Value())
	if input == "" {
		return nil
	}
	a.state.input.Reset()

	lower := strings.ToLower(input)
	for _, word := range exitWords {
		if lower == word {
			a.quitting = true
			return tea.Quit
		}
	}

	if strings.HasPrefix(input, "/") {
		return a.handleCommand(input)
	}

	a.say(input, a.safeRespond(input))
	return nil
}

// handleCommand dispatches slash commands; /learn and /recall reach the
// responder's direct memory API, which the conversational intents don't.
func (a *App) handleCommand(input string) tea.Cmd {
	cmd, rest, _ := strings.Cut(input, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(cmd) {
	case "/help", "/h":
		a.view = viewHelp
		return nil

	case "/quit", "/q":
		a.quitting = true
		return tea.Quit

	case "/learn":
		keyPart, value, ok := strings.Cut(rest, ":")
		keyPart = strings.TrimSpace(keyPart)
		value = strings.TrimSpace(value)
		if !ok || keyPart == "" || value == "" {
			a.say(input, "Use: /learn <key>: <value>  (e.g. /learn my niche: fitness)")
			return nil
		}
		a.say(input, a.bot.Learn(keyPart, value))
		return nil

	case "/recall":
		if rest == "" {
			a.say(input, "Use: /recall <key>")
			return nil
		}
		a.say(input, a.bot.Recall(rest))
		return nil

	case "/caption":
		topic := rest
		if topic == "" {
			topic = "your experience"
		}
		a.say(input, a.bot.GenerateCaption(topic, a.state.style))
		return nil

	default:
		a.say(input, "Unknown command. Type /help for the list.")
		return nil
	}
}

// say records one exchange and switches to the chat view.
func (a *App) say(userLine, reply string) {
	a.view = viewChat
	a.state.history = append(a.state.history,
		message{role: "user", content: userLine},
		message{role: "assistant", content: reply},
	)
	a.state.scrollOffset = 0
}

// safeRespond treats a responder panic as a non-fatal bad reply so the
// session survives.
func (a *App) safeRespond(input string) (reply string) {
	defer func() {
		if rec := recover(); rec != nil {
			reply = fmt.Sprintf("❌ Oops! Something went wrong: %v. Try asking for help or content suggestions!", rec)
		}
	}()
	return a.respond(input)
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewChat:
		return a.renderChat()
	case viewHelp:
		return a.renderHelp()
	default:
		return a.renderWelcome()
	}
}
