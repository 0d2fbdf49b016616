package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"

	"github.com/brensch/snekmatrix/clock"
	"github.com/brensch/snekmatrix/ledmatrix"
	"github.com/brensch/snekmatrix/logging"
	"github.com/brensch/snekmatrix/rules"
	"github.com/brensch/snekmatrix/tui"
)

func main() {
	// A missing .env is fine; flags and the environment still apply.
	_ = godotenv.Load()

	def := rules.DefaultConfig
	ui := flag.String("ui", getEnvOrDefault("SNAKE_UI", "tea"), "Front-end: tea (Bubble Tea) or tcell (full-screen LED matrix)")
	width := flag.Int("width", getEnvIntOrDefault("SNAKE_WIDTH", def.Width), "Board width in cells")
	height := flag.Int("height", getEnvIntOrDefault("SNAKE_HEIGHT", def.Height), "Board height in cells")
	maxLength := flag.Int("max-length", getEnvIntOrDefault("SNAKE_MAX_LENGTH", def.MaxSnakeLength), "Maximum snake length (0 = whole board)")
	wrap := flag.Bool("wrap", getEnvBoolOrDefault("SNAKE_WRAP", def.Wrap), "Wrap around the board edges instead of dying")
	legacyCorner := flag.Bool("legacy-rat-corner", getEnvBoolOrDefault("SNAKE_LEGACY_RAT_CORNER", def.LegacyRatCorner), "Apply the legacy rat corner exclusion rule")
	seed := flag.Int64("seed", int64(getEnvIntOrDefault("SNAKE_SEED", 0)), "Random seed (0 = seed from the clock)")
	tick := flag.Duration("tick", getEnvDurationOrDefault("SNAKE_TICK", clock.DefaultInterval), "Wall time of one game tick")
	logFile := flag.String("log-file", getEnvOrDefault("SNAKE_LOG_FILE", "snake.log"), "File to append logs to (empty discards logs)")
	logFormat := flag.String("log-format", getEnvOrDefault("SNAKE_LOG_FORMAT", logging.FormatText), "Log format: text, json or pretty")
	logLevel := flag.String("log-level", getEnvOrDefault("SNAKE_LOG_LEVEL", "info"), "Log level: debug, info, warn or error")
	flag.Parse()

	cfg := def
	cfg.Width = *width
	cfg.Height = *height
	cfg.MaxSnakeLength = *maxLength
	cfg.Wrap = *wrap
	cfg.LegacyRatCorner = *legacyCorner
	cfg.Seed = *seed
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid game config: %v", err)
	}

	// Logs go to a file so they do not tear up the terminal UI.
	var out io.Writer
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		out = f
	}
	logger, err := logging.New(out, logging.Options{Format: *logFormat, Level: *logLevel})
	if err != nil {
		log.Fatalf("Failed to configure logging: %v", err)
	}
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src := clock.NewSource(*tick)
	src.Start(ctx)
	defer src.Stop()

	logger.Info("starting snake", "ui", *ui, "width", cfg.Width, "height", cfg.Height, "tick", tick.String())

	switch *ui {
	case "tea":
		err = runTea(ctx, cfg, src, frameInterval(cfg, *tick), logger)
	case "tcell":
		err = runTcell(ctx, cfg, src, frameInterval(cfg, *tick), logger)
	default:
		err = fmt.Errorf("unknown ui %q", *ui)
	}
	if err != nil {
		log.Fatalf("Snake exited: %v", err)
	}
}

func runTea(ctx context.Context, cfg rules.Config, clk clock.Clock, frame time.Duration, logger *slog.Logger) error {
	m, err := tui.New(cfg, clk, tui.Options{Logger: logger, TickInterval: frame})
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}

func runTcell(ctx context.Context, cfg rules.Config, clk clock.Clock, frame time.Duration, logger *slog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	g, err := ledmatrix.NewGame(screen, cfg, clk)
	if err != nil {
		return err
	}
	g.Logger = logger
	g.Engine().Logger = logger
	g.FrameInterval = frame

	if err := g.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("run led matrix: %w", err)
	}
	return nil
}

// frameInterval polls the engine well inside the fastest move delay.
func frameInterval(cfg rules.Config, tick time.Duration) time.Duration {
	return max(time.Millisecond, time.Duration(cfg.MinMoveDelay)*tick/10)
}

// Environment variable helpers
func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvIntOrDefault(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		var i int
		if _, err := fmt.Sscanf(val, "%d", &i); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDurationOrDefault(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

func getEnvBoolOrDefault(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		return val == "true" || val == "1" || val == "yes"
	}
	return defaultVal
}
