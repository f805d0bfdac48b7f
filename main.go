package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"palette/internal/config"
	"palette/internal/dispatch"
	"palette/internal/extension"
	"palette/internal/extensions/apps"
	"palette/internal/extensions/clipboard"
	"palette/internal/extensions/helper"
	"palette/internal/extensions/panes"
	"palette/internal/extensions/settings"
	"palette/internal/extensions/window"
	"palette/internal/store"
	"palette/internal/ui"
	"palette/internal/usage"
)

func main() {
	// Set up logging
	logFile, err := os.OpenFile("palette.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

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

	configSvc := config.NewConfigService()
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Failed to load config, using defaults: %v", err)
		cfg = config.DefaultConfig()
	}

	st, err := store.Open(dataPath())
	if err != nil {
		fmt.Printf("Error opening data store: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	tracker := usage.NewTracker(st)

	screenW, screenH := screenSize()
	registry := extension.NewRegistry()
	registry.Register(window.New(window.NewWmctrlManager(screenW, screenH)))
	registry.Register(clipboard.New(st, cfg.Clipboard.MaxItems))
	registry.Register(helper.New(cfg.Helper.Path, time.Duration(cfg.Helper.TimeoutSeconds)*time.Second))
	registry.Register(apps.New())
	registry.Register(panes.New())
	registry.Register(settings.New(registry))

	monitor := clipboard.NewMonitor(st,
		time.Duration(cfg.Clipboard.PollIntervalMS)*time.Millisecond,
		cfg.Clipboard.MaxItems)
	go monitor.Run(ctx)

	rootView := func() extension.ViewSpec {
		return extension.ViewSpec{
			Title: "Palette",
			Items: commandItems(tracker.Rank(registry.AllCommands())),
		}
	}

	dispatcher := dispatch.NewDispatcher(rootView, dispatch.NoopFocus{}, tracker)

	log.Printf("Creating UI model...")
	model := ui.NewModel(dispatcher, ui.NewStyles(cfg.UI.AccentColor), cfg.UI.MaxVisibleRows)

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	model.SetProgram(p)

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}

// commandItems turns ranked commands into searchable rows. The icon is
// display only; matching runs against the plain title.
func commandItems(commands []extension.Command) []extension.Item {
	items := make([]extension.Item, 0, len(commands))
	for _, cmd := range commands {
		action := cmd.Action
		title := cmd.Title
		if cmd.Icon != "" {
			title = cmd.Icon + "  " + title
		}
		items = append(items, extension.Item{
			Title:     title,
			Subtitle:  cmd.Subtitle,
			Key:       cmd.Title,
			CommandID: cmd.ID,
			OnActivate: func() extension.ActionResult {
				if action == nil {
					return extension.Done()
				}
				return action()
			},
		})
	}
	return items
}

// dataPath is where usage history and clipboard history live.
func dataPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = "."
	}
	return filepath.Join(configDir, "palette", "palette.db")
}

// screenSize reads the screen dimensions used for window placement from
// PALETTE_SCREEN (e.g. "2560x1440"), defaulting to 1920x1080.
func screenSize() (int, int) {
	w, h := 1920, 1080
	if v := os.Getenv("PALETTE_SCREEN"); v != "" {
		var pw, ph int
		if _, err := fmt.Sscanf(strings.TrimSpace(v), "%dx%d", &pw, &ph); err == nil && pw > 0 && ph > 0 {
			w, h = pw, ph
		} else {
			log.Printf("Ignoring malformed PALETTE_SCREEN=%q", v)
		}
	}
	return w, h
}
