package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/shoplight/shoplight/internal/backend"
	"github.com/shoplight/shoplight/internal/cache"
	"github.com/shoplight/shoplight/internal/catalog"
	"github.com/shoplight/shoplight/internal/config"
	"github.com/shoplight/shoplight/internal/domain"
	"github.com/shoplight/shoplight/internal/log"
	"github.com/shoplight/shoplight/internal/search"
	"github.com/shoplight/shoplight/internal/store"
	"github.com/shoplight/shoplight/internal/tui"
	"github.com/shoplight/shoplight/internal/visitor"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var showVersion bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.Parse()

	if showVersion {
		fmt.Printf("shoplight %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := log.Setup(cfg.Logging.File, cfg.Logging.Level)
	if err != nil {
		// Fall back to a null logger if file logging fails
		logger = log.Null()
	}
	slog.SetDefault(logger)

	logger.Info("starting shoplight", "version", Version)

	if !cfg.IsConfigured() {
		return runSetupFlow(cfg)
	}

	localStore, err := store.Open(cfg.Cache.DataDir, logger)
	if err != nil {
		return fmt.Errorf("failed to open local store: %w", err)
	}
	defer localStore.Close()

	client := backend.NewClient(cfg.Backend.URL, cfg.Backend.Token, logger)

	qc := cache.New(logger, cache.WithStaleAfter(cfg.Cache.StaleAfter))
	cat := catalog.New(client, qc, logger, catalog.WithSnapshots(localStore))
	searchSvc := search.NewService(qc, logger)

	// Resolve the backend handle before the TUI starts; a failed probe
	// still launches the app with degraded reads.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := client.Ping(ctx); err != nil {
		logger.Warn("backend unreachable", "error", err)
		cat.SetState(domain.Failed)
	} else {
		cat.SetState(domain.Ready)
	}
	cancel()

	// Daily unique visitor report, off the startup path. Admins are
	// never counted; an unknown admin check skips the report entirely.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		tracker := visitor.New(localStore, client, logger)
		tracker.Track(ctx, cat.AdminStatus(ctx))
	}()

	model := tui.NewModel(cat, searchSvc, logger)
	p := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info("starting TUI")
	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// runSetupFlow prompts for backend credentials when none are configured
func runSetupFlow(cfg *config.Config) error {
	fmt.Println()
	fmt.Println("Welcome to Shoplight!")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)

	var backendURL string
	for {
		fmt.Print("Enter your backend URL (e.g., https://api.example.com): ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		backendURL = strings.TrimSpace(input)
		if backendURL != "" {
			break
		}
		fmt.Println("Backend URL cannot be empty. Please try again.")
	}

	fmt.Print("Enter your API token: ")
	tokenBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("failed to read token: %w", err)
	}
	token := strings.TrimSpace(string(tokenBytes))
	if token == "" {
		return fmt.Errorf("token cannot be empty")
	}

	// Probe before saving so a typo is caught here, not at next launch
	client := backend.NewClient(backendURL, token, log.Null())
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := client.Ping(ctx); err != nil {
		return fmt.Errorf("could not reach backend: %w", err)
	}

	if err := config.SaveCredentials(backendURL, token); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	fmt.Println("✓ Configuration saved!")
	fmt.Println()
	fmt.Println("Run shoplight again to start the application.")
	return nil
}
