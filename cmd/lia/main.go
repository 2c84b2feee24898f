package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/looply/lia/internal/config"
	"github.com/looply/lia/internal/responder"
	"github.com/looply/lia/internal/server"
	"github.com/looply/lia/internal/tui"
)

var version = "dev"

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		runInteractive()
		return
	}

	switch args[0] {
	case "server":
		port := 0
		if len(args) > 1 {
			p, err := strconv.Atoi(args[1])
			if err != nil || p <= 0 {
				fmt.Fprintf(os.Stderr, "invalid port %q\n", args[1])
				os.Exit(1)
			}
			port = p
		}
		runServer(port)

	case "test":
		runSmoke()

	default:
		usage()
	}
}

func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: bad config, using defaults: %v\n", err)
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return cfg
}

func newResponder(cfg *config.Config) *responder.Responder {
	return responder.New(responder.WithName(cfg.Name))
}

func runInteractive() {
	cfg := loadConfig()
	app := tui.NewApp(cfg, newResponder(cfg))

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runServer(port int) {
	cfg := loadConfig()
	if port == 0 {
		port = cfg.ServerPort
	}

	srv := server.New(fmt.Sprintf(":%d", port), newResponder(cfg))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("%s server %s listening on http://localhost:%d", cfg.Name, version, port)
	if err := srv.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Println("Usage: lia [server [port] | test]")
	fmt.Println("  (no args)      interactive assistant")
	fmt.Println("  server [port]  HTTP chat endpoint (default port from config, else 8000)")
	fmt.Println("  test           run the built-in smoke queries")
}
