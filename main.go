package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"carousel/internal/config"
	"carousel/internal/eventbus"
	"carousel/internal/ui"
)

func main() {
	// Parse command line arguments
	var configPath string
	flag.StringVar(&configPath, "config", "", "Deck file to present (.toml or .yaml)")
	flag.StringVar(&configPath, "c", "", "Deck file to present (shorthand)")
	flag.Parse()

	if configPath == "" && flag.NArg() > 0 {
		configPath = flag.Arg(0)
	}
	if configPath == "" {
		configPath = config.DefaultFileName
	}

	// Set up logging
	logFile, err := os.OpenFile("carousel.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bus := eventbus.New()
	defer bus.Close()

	configSvc := config.NewConfigServiceWithBus(configPath, bus)
	deck, _ := config.OpenDeck(configSvc, bus)
	cfg := deck.Config()

	// Settings toggled in the UI are written back to the deck file
	bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigChangedEvent); ok {
			_ = deck.ApplyChange(event)
		}
	})

	model := ui.NewModel(bus, cfg, deck)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	model.SetProgram(p)

	forward := func(e eventbus.DomainEvent) { p.Send(ui.EventMsg{Event: e}) }
	bus.Subscribe(eventbus.EventError, forward)
	bus.Subscribe(eventbus.EventConfigSaved, forward)

	log.Printf("Starting UI with %d slides from %s", len(cfg.Slides), configPath)

	g, gctx := errgroup.WithContext(ctx)

	watcher, err := config.NewWatcher(configPath, func(path string) {
		reloaded, err := deck.Load()
		p.Send(ui.ConfigReloadedMsg{Config: reloaded, Err: err})
	})
	if err != nil {
		log.Printf("Deck watcher disabled: %v", err)
	} else {
		g.Go(func() error {
			defer watcher.Close()
			return watcher.Run(gctx)
		})
	}

	if os.Getenv("CAROUSEL_E2E_TEST") == "1" {
		fmt.Println("__READY__")
	}

	_, runErr := p.Run()
	stop()

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("Watcher stopped: %v", err)
	}
	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		log.Printf("Error running program: %v", runErr)
		fmt.Printf("Error running program: %v\n", runErr)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}
