package tui

import (
	"math/rand"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/looply/lia/internal/config"
	"github.com/looply/lia/internal/responder"
)

func newTestApp() *App {
	bot := responder.New(responder.WithRand(rand.New(rand.NewSource(1))))
	return NewApp(config.DefaultConfig(), bot)
}

func submit(a *App, line string) tea.Cmd {
	a.state.input.SetValue(line)
	return a.handleInput()
}

func lastReply(t *testing.T, a *App) string {
	t.Helper()
	if len(a.state.history) == 0 {
		t.Fatal("empty history")
	}
	last := a.state.history[len(a.state.history)-1]
	if last.role != "assistant" {
		t.Fatalf("last message is %q, want assistant", last.role)
	}
	return last.content
}

func TestSubmitUtterance(t *testing.T) {
	a := newTestApp()

	submit(a, "tell me a joke")

	if a.view != viewChat {
		t.Error("submitting should switch to the chat view")
	}
	if len(a.state.history) != 2 {
		t.Fatalf("history has %d messages, want 2", len(a.state.history))
	}
	if a.state.history[0].role != "user" || a.state.history[0].content != "tell me a joke" {
		t.Errorf("user message not recorded: %+v", a.state.history[0])
	}
	if lastReply(t, a) == "" {
		t.Error("empty reply recorded")
	}
}

func TestSubmitEmptyIgnored(t *testing.T) {
	a := newTestApp()

	submit(a, "   ")
	if len(a.state.history) != 0 {
		t.Errorf("blank input produced history: %+v", a.state.history)
	}
}

func TestExitWords(t *testing.T) {
	for _, word := range []string{"exit", "QUIT", "Bye"} {
		a := newTestApp()
		if cmd := submit(a, word); cmd == nil || !a.quitting {
			t.Errorf("%q should quit the session", word)
		}
	}
}

func TestRespondPanicIsNonFatal(t *testing.T) {
	a := newTestApp()
	a.respond = func(string) string { panic("bad template") }

	submit(a, "hello")

	if a.quitting {
		t.Fatal("panic should not end the session")
	}
	if got := lastReply(t, a); !strings.Contains(got, "Something went wrong") {
		t.Errorf("panic reply = %q, want error line", got)
	}

	// The session keeps working afterwards.
	a.respond = func(string) string { return "back to normal" }
	submit(a, "hello again")
	if got := lastReply(t, a); got != "back to normal" {
		t.Errorf("reply after recovery = %q", got)
	}
}

func TestLearnRecallCommands(t *testing.T) {
	a := newTestApp()

	submit(a, "/learn my niche: fitness")
	if got := lastReply(t, a); !strings.Contains(got, "my niche") {
		t.Errorf("/learn reply = %q, want key echoed", got)
	}

	submit(a, "/recall my niche")
	if got := lastReply(t, a); got != "fitness" {
		t.Errorf("/recall reply = %q, want %q", got, "fitness")
	}
}

func TestLearnCommandBadSyntax(t *testing.T) {
	a := newTestApp()

	submit(a, "/learn just words")
	if got := lastReply(t, a); !strings.Contains(got, "Use: /learn") {
		t.Errorf("bad /learn reply = %q, want usage hint", got)
	}
}

func TestCaptionCommandUsesConfiguredStyle(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.CaptionStyle = "creative"
	bot := responder.New(responder.WithRand(rand.New(rand.NewSource(1))))
	a := NewApp(cfg, bot)

	submit(a, "/caption coffee")
	if got := lastReply(t, a); !strings.HasPrefix(got, "🎨 ") {
		t.Errorf("creative caption = %q, want 🎨 prefix", got)
	}
}

func TestUnknownCommand(t *testing.T) {
	a := newTestApp()

	submit(a, "/bogus")
	if got := lastReply(t, a); !strings.Contains(got, "Unknown command") {
		t.Errorf("unknown command reply = %q", got)
	}
}

func TestHelpCommandSwitchesView(t *testing.T) {
	a := newTestApp()

	submit(a, "/help")
	if a.view != viewHelp {
		t.Error("/help should open the help view")
	}
}
