package ledmatrix

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/brensch/snekmatrix/clock"
	"github.com/brensch/snekmatrix/game"
	"github.com/brensch/snekmatrix/rules"
)

// DefaultFrameInterval is the control loop period: the engine is ticked and
// the screen flushed this often.
const DefaultFrameInterval = 10 * time.Millisecond

var (
	statusStyle = tcell.StyleDefault.Bold(true)
	overStyle   = tcell.StyleDefault.Bold(true).Foreground(tcell.ColorRed)
)

// Game couples an engine to a tcell screen.
type Game struct {
	FrameInterval time.Duration
	Logger        *slog.Logger

	screen  tcell.Screen
	display *Screen
	engine  *rules.Engine
}

// NewGame wires an engine to screen, which must already be initialised.
func NewGame(screen tcell.Screen, cfg rules.Config, clk clock.Clock) (*Game, error) {
	display := NewScreen(screen, cfg.Board())
	engine, err := rules.NewEngine(cfg, clk, display)
	if err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}
	return &Game{
		FrameInterval: DefaultFrameInterval,
		screen:        screen,
		display:       display,
		engine:        engine,
	}, nil
}

func (g *Game) Engine() *rules.Engine {
	return g.engine
}

// HandleEvent applies one input event. It returns false when the player
// asked to quit.
func (g *Game) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			g.engine.SetDirection(game.Up)
		case tcell.KeyDown:
			g.engine.SetDirection(game.Down)
		case tcell.KeyLeft:
			g.engine.SetDirection(game.Left)
		case tcell.KeyRight:
			g.engine.SetDirection(game.Right)
		case tcell.KeyEnter:
			if g.engine.Over() {
				g.newGame()
			}
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'w':
				g.engine.SetDirection(game.Up)
			case 's':
				g.engine.SetDirection(game.Down)
			case 'a':
				g.engine.SetDirection(game.Left)
			case 'd':
				g.engine.SetDirection(game.Right)
			case 'p', ' ':
				g.engine.TogglePause()
			case 'n':
				g.newGame()
			}
		}
	case *tcell.EventResize:
		g.screen.Clear()
		g.display.Layout()
		g.engine.Repaint()
		g.screen.Sync()
	}
	return true
}

func (g *Game) newGame() {
	g.engine.NewGame()
	g.logger().Info("new game", "game_id", g.engine.GameID().String())
}

func (g *Game) logger() *slog.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return slog.Default()
}

// Step runs one frame: tick the engine, draw the status line and flush.
func (g *Game) Step() {
	e := g.engine
	if !e.Over() {
		e.Tick()
	}
	switch {
	case e.Over():
		g.display.Status(fmt.Sprintf("GAME OVER  length %d  score %d  n: new game  q: quit",
			e.SnakeLength(), e.Score()), overStyle)
	case e.Paused():
		g.display.Status(fmt.Sprintf("PAUSED  length %d  score %d", e.SnakeLength(), e.Score()), statusStyle)
	default:
		g.display.Status(fmt.Sprintf("length %d  score %d", e.SnakeLength(), e.Score()), statusStyle)
	}
	g.display.Show()
}

// Run starts a game and loops until ctx is cancelled or the player quits.
func (g *Game) Run(ctx context.Context) error {
	g.newGame()

	interval := g.FrameInterval
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(events)
		for {
			// PollEvent returns nil once the screen is finalised.
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !g.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			g.Step()
		}
	}
}
