// Package tui plays the game in a terminal through Bubble Tea. The engine
// paints into a render.Frame and View draws the frame with lipgloss.
package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/brensch/snekmatrix/clock"
	"github.com/brensch/snekmatrix/game"
	"github.com/brensch/snekmatrix/render"
	"github.com/brensch/snekmatrix/rules"
)

// DefaultTickInterval is how often the model runs the engine's control loop.
// It only needs to be finer than the shortest move delay.
const DefaultTickInterval = 10 * time.Millisecond

type TickMsg time.Time

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

var (
	styleBoard  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8"))
	styleStatus = lipgloss.NewStyle().Bold(true)
	styleOver   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	styleHelp   = lipgloss.NewStyle().Faint(true)
)

// Options tunes the front-end.
type Options struct {
	TickInterval time.Duration
	Logger       *slog.Logger
}

// Model is the Bubble Tea model. The engine and frame are shared by every
// copy of the model, so only one program may drive them.
type Model struct {
	engine   *rules.Engine
	frame    *render.Frame
	cells    map[render.Colour]string
	interval time.Duration

	best     int
	quitting bool
}

// New builds an engine on a fresh frame and starts the first game.
func New(cfg rules.Config, clk clock.Clock, opts Options) (Model, error) {
	frame := render.NewFrame(cfg.Board())
	engine, err := rules.NewEngine(cfg, clk, frame)
	if err != nil {
		return Model{}, fmt.Errorf("create engine: %w", err)
	}
	if opts.Logger != nil {
		engine.Logger = opts.Logger
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = DefaultTickInterval
	}

	cells := make(map[render.Colour]string)
	for _, c := range []render.Colour{render.Background, render.SnakeHead, render.SnakeBody,
		render.FoodColour, render.SuperFoodColour, render.RatColour} {
		// Two columns per cell keeps the board roughly square.
		cells[c] = lipgloss.NewStyle().
			Background(lipgloss.Color(c.Hex())).
			Foreground(lipgloss.Color("0")).
			Render(string([]rune{c.Rune(), ' '}))
	}

	engine.NewGame()
	return Model{
		engine:   engine,
		frame:    frame,
		cells:    cells,
		interval: opts.TickInterval,
	}, nil
}

// Engine exposes the engine driven by the model.
func (m Model) Engine() *rules.Engine {
	return m.engine
}

func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

var keyDirections = map[string]game.Direction{
	"up": game.Up, "w": game.Up, "k": game.Up,
	"down": game.Down, "s": game.Down, "j": game.Down,
	"left": game.Left, "a": game.Left, "h": game.Left,
	"right": game.Right, "d": game.Right, "l": game.Right,
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		if d, ok := keyDirections[key]; ok {
			m.engine.SetDirection(d)
			return m, nil
		}
		switch key {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "p", " ":
			m.engine.TogglePause()
		case "n", "enter":
			if m.engine.Over() || key == "n" {
				m.engine.NewGame()
			}
		}
	case TickMsg:
		if !m.engine.Over() {
			m.engine.Tick()
		}
		if s := m.engine.Score(); s > m.best {
			m.best = s
		}
		return m, tickCmd(m.interval)
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	b := m.frame.Board()
	var sb strings.Builder
	for row := b.Height - 1; row >= 0; row-- {
		for col := 0; col < b.Width; col++ {
			sb.WriteString(m.cells[m.frame.At(b.Position(col, row))])
		}
		if row > 0 {
			sb.WriteByte('\n')
		}
	}

	e := m.engine
	status := styleStatus.Render(fmt.Sprintf("length %d  score %d  best %d  delay %dms",
		e.SnakeLength(), e.Score(), m.best, e.MoveDelay()))

	var banner string
	switch {
	case e.Over():
		banner = styleOver.Render("GAME OVER") + "  press n for a new game"
	case e.Paused():
		banner = styleStatus.Render("PAUSED")
	}

	parts := []string{styleBoard.Render(sb.String()), status}
	if banner != "" {
		parts = append(parts, banner)
	}
	parts = append(parts, styleHelp.Render("arrows/wasd move  p pause  n new game  q quit"))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
