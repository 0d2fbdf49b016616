// Package selfplay plays whole games without a display or a real clock,
// steering the snake with a Policy. It is used for soak testing the engine
// and for batch statistics.
package selfplay

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/brensch/snekmatrix/clock"
	"github.com/brensch/snekmatrix/render"
	"github.com/brensch/snekmatrix/rules"
)

// DefaultMaxMoves stops a game that a policy keeps alive forever, e.g. a
// snake circling at its maximum length.
const DefaultMaxMoves = 20000

type GameResult struct {
	GameID    uuid.UUID
	WorkerID  int
	Seed      int64
	Length    int
	Score     int
	Moves     int
	Ticks     clock.Ticks
	Completed bool
}

func (r GameResult) String() string {
	return fmt.Sprintf("game %s: length %d, score %d, moves %d, ticks %d",
		r.GameID, r.Length, r.Score, r.Moves, r.Ticks)
}

type Options struct {
	Config   rules.Config
	Policy   Policy
	MaxMoves int
	Logger   *slog.Logger
	// Trace, when set, receives a board dump after every move.
	Trace io.Writer
	// OnMove is called after every snake move.
	OnMove func()
}

func (o Options) withDefaults() Options {
	if o.Policy == nil {
		o.Policy = Greedy{}
	}
	if o.MaxMoves <= 0 {
		o.MaxMoves = DefaultMaxMoves
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// PlayGame plays one game to the end on a manual clock. The returned result
// is partial, with Completed false, when ctx is cancelled or the move cap
// is hit.
func PlayGame(ctx context.Context, workerID int, seed int64, opts Options) (GameResult, error) {
	opts = opts.withDefaults()
	clk := clock.NewManual(0)
	frame := render.NewFrame(opts.Config.Board())
	engine, err := rules.NewEngine(opts.Config, clk, frame)
	if err != nil {
		return GameResult{}, fmt.Errorf("create engine: %w", err)
	}
	engine.Logger = opts.Logger.With("worker", workerID)
	engine.Rng = rand.New(rand.NewSource(seed))
	policyRng := rand.New(rand.NewSource(seed ^ 0x5eed))

	engine.NewGame()
	start := clk.Now()
	st := engine.State()
	wrap := opts.Config.Wrap

	result := func(completed bool) GameResult {
		return GameResult{
			GameID:    engine.GameID(),
			WorkerID:  workerID,
			Seed:      seed,
			Length:    engine.SnakeLength(),
			Score:     engine.Score(),
			Moves:     engine.Moves(),
			Ticks:     clk.Now().Since(start),
			Completed: completed,
		}
	}

	for {
		select {
		case <-ctx.Done():
			return result(false), ctx.Err()
		default:
		}
		if engine.Moves() >= opts.MaxMoves {
			opts.Logger.Warn("move cap reached", "worker", workerID, "game_id", engine.GameID().String())
			return result(false), nil
		}

		engine.SetDirection(opts.Policy.Choose(st, wrap, policyRng))
		clk.Advance(engine.MoveDelay())
		alive := engine.Tick()

		if opts.OnMove != nil {
			opts.OnMove()
		}
		if opts.Trace != nil {
			PrintBoard(opts.Trace, engine, frame)
		}
		if !alive {
			return result(true), nil
		}
	}
}

// Run plays games across workers until ctx is cancelled or games results
// have been produced (games <= 0 means no limit). onResult, when set, is
// called from the worker goroutines as each game finishes.
func Run(ctx context.Context, workers, games int, baseSeed int64, opts Options, onResult func(GameResult)) ([]GameResult, error) {
	if workers <= 0 {
		workers = 1
	}
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	var (
		claimed  atomic.Int64
		mu       sync.Mutex
		results  []GameResult
		firstErr error
		wg       sync.WaitGroup
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for {
				if ctx.Err() != nil {
					return
				}
				n := claimed.Add(1)
				if games > 0 && n > int64(games) {
					return
				}
				seed := baseSeed + n*1000003
				res, err := PlayGame(ctx, workerID, seed, opts)
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					return
				}
				mu.Lock()
				results = append(results, res)
				mu.Unlock()
				if onResult != nil {
					onResult(res)
				}
			}
		}(i)
	}
	wg.Wait()
	return results, firstErr
}
