package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Valdivia94x/app-legal-olea/internal/config"
	"github.com/Valdivia94x/app-legal-olea/internal/logging"
	"github.com/Valdivia94x/app-legal-olea/internal/tui"
)

var version = "dev"

func main() {
	log := logging.Nop()
	if cfg, err := config.Load(); err == nil && cfg != nil {
		if l, err := logging.New(cfg.LogPath()); err == nil {
			log = l
			defer l.Sync()
		}
	}

	app := tui.NewApp(log)
	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
