// Package rules runs a snake game: it schedules snake and rat movement from
// a tick clock, interprets each move and keeps the display in step with the
// entity state.
package rules

import (
	"log/slog"
	"math/rand"

	"github.com/google/uuid"

	"github.com/brensch/snekmatrix/clock"
	"github.com/brensch/snekmatrix/game"
	"github.com/brensch/snekmatrix/render"
)

// Engine owns the state of one game at a time. It is driven by a single
// control loop calling Tick and is not safe for concurrent use; run one
// Engine per goroutine for parallel games.
type Engine struct {
	// Logger receives game lifecycle events. Defaults to slog.Default().
	// It may be swapped at any time; the game_id attribute is reattached.
	Logger *slog.Logger
	// Rng overrides the random source for every game. When nil each game
	// seeds math/rand from Config.Seed, or from the clock when Seed is zero.
	Rng game.Rand

	cfg   Config
	clock clock.Clock
	sink  render.Sink

	state *game.State
	timer SuperFoodTimer
	rng   game.Rand

	// log is logBase with the game_id attached.
	log     *slog.Logger
	logBase *slog.Logger

	gameID uuid.UUID
	games  int

	moveDelay   clock.Ticks
	lastMove    clock.Ticks
	lastRatStep clock.Ticks
	superShown  bool

	score    int
	moves    int
	over     bool
	paused   bool
	pausedAt clock.Ticks
}

// NewEngine validates cfg and allocates the game state. Call NewGame before
// the first Tick. A nil sink discards paints.
func NewEngine(cfg Config, clk clock.Clock, sink render.Sink) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if sink == nil {
		sink = render.Discard
	}
	return &Engine{
		cfg:   cfg,
		clock: clk,
		sink:  sink,
		state: game.NewState(cfg.Board(), cfg.maxLength(), cfg.FoodSlots),
		timer: SuperFoodTimer{Interval: cfg.SuperFoodInterval, Lifetime: cfg.SuperFoodLifetime},
		over:  true,
	}, nil
}

// logger returns the base logger with the current game's id attached,
// rebuilding it when Logger was replaced since it was last derived.
func (e *Engine) logger() *slog.Logger {
	if e.log == nil || e.logBase != e.Logger {
		base := e.Logger
		if base == nil {
			base = slog.Default()
		}
		e.logBase = e.Logger
		e.log = base.With("game_id", e.gameID.String())
	}
	return e.log
}

func (e *Engine) paint(p game.Position, c render.Colour) {
	if p.Valid() {
		e.sink.SetCellColour(p, c)
	}
}

// NewGame resets every store and the move delay, seeds the random source,
// places the snake, three food items and the rat, and paints them.
func (e *Engine) NewGame() {
	now := e.clock.Now()
	e.games++
	e.gameID = uuid.New()

	e.rng = e.Rng
	if e.rng == nil {
		seed := e.cfg.Seed
		if seed == 0 {
			seed = int64(now)
		} else {
			seed += int64(e.games - 1)
		}
		e.rng = rand.New(rand.NewSource(seed))
	}

	e.log = nil

	tail, head := e.cfg.startCells()
	e.state.Reset(tail, head, game.Right)

	e.moveDelay = e.cfg.InitialMoveDelay
	e.lastMove = now
	e.lastRatStep = now
	e.timer.Reset(now)
	e.superShown = false
	e.score = 0
	e.moves = 0
	e.over = false
	e.paused = false

	e.clearDisplay()
	e.paint(head, render.SnakeHead)
	e.paint(tail, render.SnakeBody)

	for i := 0; i < e.state.Food.Slots(); i++ {
		e.placeFood()
	}
	if p := e.state.PlaceRat(e.rng); p.Valid() {
		e.paint(p, render.RatColour)
	} else {
		e.logger().Debug("rat placement gave up")
	}

	e.logger().Info("game started",
		"width", e.cfg.Width,
		"height", e.cfg.Height,
		"food", e.state.Food.Count(),
		"move_delay", e.moveDelay)
}

func (e *Engine) clearDisplay() {
	if c, ok := e.sink.(render.Clearer); ok {
		c.Clear()
		return
	}
	e.state.Board.Cells(func(p game.Position) {
		e.sink.SetCellColour(p, render.Background)
	})
}

// Repaint draws every cell from the current state, e.g. after the display
// was resized or lost its contents.
func (e *Engine) Repaint() {
	st := e.state
	head := st.Snake.Head()
	st.Board.Cells(func(p game.Position) {
		c := render.Background
		switch st.OccupantAt(p) {
		case game.SnakeCell:
			c = render.SnakeBody
			if p == head {
				c = render.SnakeHead
			}
		case game.FoodCell:
			c = render.FoodColour
		case game.SuperFoodCell:
			c = render.SuperFoodColour
		case game.RatCell:
			c = render.RatColour
		}
		e.sink.SetCellColour(p, c)
	})
}

// SetDirection records the direction for the next snake move. The last call
// before a move wins.
func (e *Engine) SetDirection(d game.Direction) {
	if e.over || e.paused {
		return
	}
	e.state.Snake.SetDirection(d)
}

// Pause freezes game time: Tick does nothing until Resume.
func (e *Engine) Pause() {
	if e.over || e.paused {
		return
	}
	e.paused = true
	e.pausedAt = e.clock.Now()
	e.logger().Debug("game paused")
}

// Resume continues a paused game. Time spent paused is skipped, so the
// snake, rat and super-food pick up exactly where they stopped.
func (e *Engine) Resume() {
	if !e.paused {
		return
	}
	d := e.clock.Now().Since(e.pausedAt)
	e.lastMove += d
	e.lastRatStep += d
	e.timer.Shift(d)
	e.paused = false
	e.logger().Debug("game resumed", "paused_ticks", d)
}

// TogglePause pauses a running game or resumes a paused one.
func (e *Engine) TogglePause() {
	if e.paused {
		e.Resume()
		return
	}
	e.Pause()
}

// Tick runs one pass of the control loop and reports whether the game
// continues. It reconciles the super-food with its timer, steps the rat when
// its interval has elapsed and moves the snake when the move delay has
// elapsed. A blocked move ends the game.
func (e *Engine) Tick() bool {
	if e.over {
		return false
	}
	if e.paused {
		return true
	}
	now := e.clock.Now()

	e.reconcileSuperFood(now)

	if now.Since(e.lastRatStep) >= e.cfg.RatInterval {
		e.moveRat()
		e.lastRatStep = now
	}

	if now.Since(e.lastMove) >= e.moveDelay {
		if !e.moveSnake(now) {
			e.over = true
			e.logger().Info("game over",
				"length", e.state.Snake.Len(),
				"score", e.score,
				"moves", e.moves,
				"head", e.state.Snake.Head().String(),
				"direction", e.state.Snake.Pending().String())
			return false
		}
		e.lastMove = now
	}
	return true
}

// reconcileSuperFood acts only when the timer's show flag changes, so a
// failed placement is not retried every tick while the flag stays up.
func (e *Engine) reconcileSuperFood(now clock.Ticks) {
	show := e.timer.Show(now)
	if show == e.superShown {
		return
	}
	e.superShown = show

	exists := e.state.Super.Exists()
	switch {
	case show && !exists:
		if p := e.state.PlaceSuperFood(e.rng); p.Valid() {
			e.paint(p, render.SuperFoodColour)
		} else {
			e.logger().Debug("super-food placement gave up")
		}
	case !show && exists:
		p := e.removeSuperFood(now)
		e.paint(p, render.Background)
	}
}

func (e *Engine) removeSuperFood(now clock.Ticks) game.Position {
	p := e.state.Super.Remove()
	e.timer.Reset(now)
	e.superShown = false
	return p
}

func (e *Engine) moveRat() {
	st := e.state
	from := st.Rat.Position()
	if !from.Valid() {
		if p := st.PlaceRat(e.rng); p.Valid() {
			e.paint(p, render.RatColour)
		}
		return
	}
	to := st.StepRat(e.rng, e.cfg.LegacyRatCorner)
	if to == from {
		return
	}
	e.paint(from, render.Background)
	e.paint(to, render.RatColour)
}

func (e *Engine) placeFood() {
	slot, p := e.state.PlaceFood(e.rng)
	if !p.Valid() {
		if slot >= 0 {
			e.logger().Debug("food placement gave up", "slot", slot)
		}
		return
	}
	e.paint(p, render.FoodColour)
}

// moveSnake advances the snake one cell and applies the consequences.
// It returns false when the move was blocked.
func (e *Engine) moveSnake(now clock.Ticks) bool {
	st := e.state
	prevHead := st.Snake.Head()

	result := st.AdvanceHead(e.cfg.Wrap)
	if result == game.Blocked {
		return false
	}
	e.moves++
	head := st.Snake.Head()

	if result.Ate() {
		e.speedUp()
		e.consume(result, head, now)
	}

	if result.AdvancesTail() {
		if vacated := st.Snake.AdvanceTail(); vacated != head {
			e.paint(vacated, render.Background)
		}
	}

	e.paint(prevHead, render.SnakeBody)
	e.paint(head, render.SnakeHead)
	return true
}

func (e *Engine) speedUp() {
	if e.moveDelay >= e.cfg.MinMoveDelay+e.cfg.MoveDelayStep {
		e.moveDelay -= e.cfg.MoveDelayStep
	} else {
		e.moveDelay = e.cfg.MinMoveDelay
	}
}

// consume removes whatever was eaten at head and spawns its replacement.
// The eaten item is not repainted: the snake head now covers that cell.
func (e *Engine) consume(result game.MoveResult, head game.Position, now clock.Ticks) {
	st := e.state
	if result == game.AteFoodCantGrow {
		result = e.eatenAt(head)
	}

	switch result {
	case game.AteSuperFood:
		e.removeSuperFood(now)
		e.score += e.cfg.SuperFoodScore
	case game.AteRat:
		e.score += e.cfg.RatScore
		if p := st.PlaceRat(e.rng); p.Valid() {
			e.paint(p, render.RatColour)
		} else {
			e.logger().Debug("rat re-placement gave up")
		}
	case game.AteFood:
		if slot, ok := st.FoodAt(head); ok {
			st.Food.Remove(slot)
		}
		e.score += e.cfg.FoodScore
		e.placeFood()
	}
}

// eatenAt identifies what sits under the new head.
func (e *Engine) eatenAt(head game.Position) game.MoveResult {
	st := e.state
	switch {
	case st.IsSuperFoodAt(head):
		return game.AteSuperFood
	case st.IsRatAt(head):
		return game.AteRat
	}
	if _, ok := st.FoodAt(head); ok {
		return game.AteFood
	}
	return game.MoveOK
}

// Over reports whether the current game has ended (or none has started).
func (e *Engine) Over() bool {
	return e.over
}

func (e *Engine) Paused() bool {
	return e.paused
}

func (e *Engine) SnakeLength() int {
	return e.state.Snake.Len()
}

// MoveDelay is the current number of ticks between snake moves.
func (e *Engine) MoveDelay() clock.Ticks {
	return e.moveDelay
}

func (e *Engine) HeadPosition() game.Position {
	return e.state.Snake.Head()
}

func (e *Engine) TailPosition() game.Position {
	return e.state.Snake.Tail()
}

func (e *Engine) Score() int {
	return e.score
}

// Moves is the number of successful snake moves this game.
func (e *Engine) Moves() int {
	return e.moves
}

func (e *Engine) GameID() uuid.UUID {
	return e.gameID
}

func (e *Engine) Config() Config {
	return e.cfg
}

// State exposes the entity stores for read-only inspection. Mutating it
// bypasses the display and can break the engine's invariants.
func (e *Engine) State() *game.State {
	return e.state
}
