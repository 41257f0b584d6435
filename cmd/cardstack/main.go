package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/natefinch/lumberjack.v2"

	"cardstack/internal/config"
	"cardstack/internal/deck"
	"cardstack/internal/domain"
	"cardstack/internal/eventbus"
	"cardstack/internal/source"
	"cardstack/internal/ui"
)

func main() {
	var configPath string
	var pagesFlag string
	flag.StringVar(&configPath, "config", "", "Path to a config file")
	flag.StringVar(&configPath, "c", "", "Path to a config file (shorthand)")
	flag.StringVar(&pagesFlag, "pages", "", "Comma-separated page names, overriding the config")
	flag.Parse()

	// Set up logging with rotation so long sessions don't grow an unbounded file
	log.SetOutput(&lumberjack.Logger{
		Filename:   "cardstack.log",
		MaxSize:    5, // megabytes
		MaxBackups: 2,
		MaxAge:     14, // days
	})

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create event bus
	bus := eventbus.New()

	// Load configuration with event bus support
	configSvc := config.NewConfigServiceWithBus(bus)
	cfg, cfgPath := loadConfig(configSvc, configPath)

	if pagesFlag != "" {
		cfg.Pages = splitPages(pagesFlag)
	}
	if len(cfg.Pages) == 0 {
		fmt.Println("No pages configured")
		os.Exit(1)
	}

	// Build the page source from configured pages
	pages := make([]domain.PageID, len(cfg.Pages))
	for i, p := range cfg.Pages {
		pages[i] = domain.PageID(p)
	}
	src := source.NewMemoryPageSource(pages)

	// Seed the deck machine on the remembered selection, falling back to the
	// first page when the remembered one is gone
	machine := deck.NewMachine(src, bus)
	selection := domain.PageID(cfg.SelectedPage)
	if src.IndexOf(selection) < 0 {
		selection = pages[0]
	}
	if err := machine.Init(selection); err != nil {
		fmt.Printf("Error initializing deck: %v\n", err)
		os.Exit(1)
	}

	// Subscribe to config changes to save automatically
	bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigChangedEvent); ok {
			cfg.SelectedPage = string(event.SelectedPage)
			if err := saveConfig(configSvc, cfg, cfgPath); err != nil {
				log.Printf("Failed to save config: %v", err)
			} else {
				log.Printf("Config saved")
			}
		}
	})

	// Create UI model
	uiModel := ui.NewModel(bus, machine, src, deckStyle(cfg))

	// Create Bubble Tea program with mouse reporting for the drag gesture
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseCellMotion())
	uiModel.SetProgram(p)

	// Create event channel for UI
	eventChan := make(chan eventbus.DomainEvent, 100)

	forwardEvent := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}

	// Forward the events the UI reacts to
	for _, t := range []eventbus.EventType{
		eventbus.EventSelectionChanged,
		eventbus.EventWindowRebuilt,
		eventbus.EventTransitionCancelled,
	} {
		bus.Subscribe(t, forwardEvent)
	}

	// Start forwarding events to UI in background
	go func() {
		for {
			select {
			case event := <-eventChan:
				p.Send(ui.EventMsg{Event: event})
			case <-ctx.Done():
				return
			}
		}
	}()

	// Run the UI
	log.Printf("Starting UI with %d pages, selection %q", len(pages), selection)
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")

	// The quit-time ConfigChanged publication is asynchronous; save once more
	// here so the final selection always lands on disk
	cfg.SelectedPage = string(machine.Selection())
	if err := saveConfig(configSvc, cfg, cfgPath); err != nil {
		log.Printf("Failed to save config on exit: %v", err)
	}
}

// loadConfig resolves the config to use: an explicit -config path, then a
// .cardstack.toml in the working directory, then the per-user config file.
// The returned path is where saves should go; empty means the user config.
func loadConfig(configSvc config.ConfigService, explicit string) (*config.Config, string) {
	if explicit != "" {
		abs, err := filepath.Abs(explicit)
		if err == nil {
			explicit = abs
		}
		cfg, err := configSvc.LoadFromPath(explicit)
		if err != nil {
			log.Printf("Failed to load config from %s: %v, using defaults", explicit, err)
			return config.DefaultConfig(), explicit
		}
		log.Printf("Loaded config from %s", explicit)
		return cfg, explicit
	}

	localPath := ".cardstack.toml"
	if _, err := os.Stat(localPath); err == nil {
		if cfg, err := configSvc.LoadFromPath(localPath); err == nil {
			log.Printf("Loaded config from %s", localPath)
			return cfg, localPath
		}
	}

	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Failed to load config: %v, using defaults", err)
		return config.DefaultConfig(), ""
	}
	return cfg, ""
}

// saveConfig writes the config back to where it was loaded from
func saveConfig(configSvc config.ConfigService, cfg *config.Config, path string) error {
	if path == "" {
		return configSvc.Save(cfg)
	}
	return configSvc.SaveToPath(cfg, path)
}

// deckStyle maps config settings onto the deck style
func deckStyle(cfg *config.Config) deck.Style {
	style := deck.DefaultStyle()
	style.CornerRadius = cfg.Deck.CornerRadius
	style.EnableRotation = cfg.Deck.EnableRotation
	if cfg.Deck.ScaleStep > 0 {
		style.ScaleStep = cfg.Deck.ScaleStep
	}
	if cfg.Deck.ShowShadow {
		style.Shadow = deck.ShadowVisible
	} else {
		style.Shadow = deck.ShadowHidden
	}
	return style
}

func splitPages(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
