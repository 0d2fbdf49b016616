package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/brensch/snekmatrix/logging"
	"github.com/brensch/snekmatrix/rules"
	"github.com/brensch/snekmatrix/selfplay"
)

func main() {
	_ = godotenv.Load()

	def := rules.DefaultConfig
	workers := flag.Int("workers", getEnvIntOrDefault("SIM_WORKERS", 4), "Number of self-play workers")
	games := flag.Int("games", getEnvIntOrDefault("SIM_GAMES", 100), "Games to play across all workers (0 = until interrupted)")
	seed := flag.Int64("seed", int64(getEnvIntOrDefault("SIM_SEED", 1)), "Base random seed (0 = from the wall clock)")
	policy := flag.String("policy", getEnvOrDefault("SIM_POLICY", "greedy"), "Autopilot: greedy or random")
	width := flag.Int("width", getEnvIntOrDefault("SNAKE_WIDTH", def.Width), "Board width in cells")
	height := flag.Int("height", getEnvIntOrDefault("SNAKE_HEIGHT", def.Height), "Board height in cells")
	wrap := flag.Bool("wrap", getEnvBoolOrDefault("SNAKE_WRAP", def.Wrap), "Wrap around the board edges")
	maxMoves := flag.Int("max-moves", getEnvIntOrDefault("SIM_MAX_MOVES", selfplay.DefaultMaxMoves), "Abandon a game after this many moves")
	trace := flag.Bool("trace", getEnvBoolOrDefault("SIM_TRACE", false), "Print the board after every move (use with -workers 1)")
	logFormat := flag.String("log-format", getEnvOrDefault("SNAKE_LOG_FORMAT", logging.FormatPretty), "Log format: text, json or pretty")
	logLevel := flag.String("log-level", getEnvOrDefault("SNAKE_LOG_LEVEL", "warn"), "Log level: debug, info, warn or error")
	flag.Parse()

	cfg := def
	cfg.Width = *width
	cfg.Height = *height
	cfg.Wrap = *wrap
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid game config: %v", err)
	}

	logger, err := logging.New(os.Stderr, logging.Options{Format: *logFormat, Level: *logLevel})
	if err != nil {
		log.Fatalf("Failed to configure logging: %v", err)
	}

	opts := selfplay.Options{
		Config:   cfg,
		MaxMoves: *maxMoves,
		Logger:   logger,
	}
	switch *policy {
	case "greedy":
		opts.Policy = selfplay.Greedy{}
	case "random":
		opts.Policy = selfplay.Random
	default:
		log.Fatalf("Unknown policy %q", *policy)
	}
	if *trace {
		opts.Trace = os.Stdout
	}

	var totalMoves atomic.Int64
	opts.OnMove = func() { totalMoves.Add(1) }

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("Starting self-play: %d workers, %d games, policy %s, board %dx%d", *workers, *games, *policy, cfg.Width, cfg.Height)
	start := time.Now()

	results, err := selfplay.Run(ctx, *workers, *games, *seed, opts, func(r selfplay.GameResult) {
		log.Printf("Worker %d: %v", r.WorkerID, r)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Self-play failed: %v", err)
	}

	printSummary(os.Stdout, results, totalMoves.Load(), time.Since(start))
}

func printSummary(w io.Writer, results []selfplay.GameResult, moves int64, elapsed time.Duration) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No games finished.")
		return
	}
	var lengthSum, scoreSum, bestScore, bestLength, abandoned int
	for _, r := range results {
		lengthSum += r.Length
		scoreSum += r.Score
		bestScore = max(bestScore, r.Score)
		bestLength = max(bestLength, r.Length)
		if !r.Completed {
			abandoned++
		}
	}
	n := float64(len(results))
	fmt.Fprintf(w, "Games:        %d (%d abandoned)\n", len(results), abandoned)
	fmt.Fprintf(w, "Avg length:   %.2f (best %d)\n", float64(lengthSum)/n, bestLength)
	fmt.Fprintf(w, "Avg score:    %.2f (best %d)\n", float64(scoreSum)/n, bestScore)
	fmt.Fprintf(w, "Total moves:  %d\n", moves)
	fmt.Fprintf(w, "Duration:     %s\n", elapsed.Round(time.Millisecond))
	if s := elapsed.Seconds(); s > 0 {
		fmt.Fprintf(w, "Moves/Sec:    %.0f\n", float64(moves)/s)
	}
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

func getEnvBoolOrDefault(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		return val == "true" || val == "1" || val == "yes"
	}
	return defaultVal
}
