package rules

import (
	"errors"
	"fmt"

	"github.com/brensch/snekmatrix/clock"
	"github.com/brensch/snekmatrix/game"
)

// Config holds the board size and every gameplay tunable. Durations are in
// clock ticks (milliseconds with the default clock source).
type Config struct {
	Width  int
	Height int

	// MaxSnakeLength caps the body. Zero means the whole board.
	MaxSnakeLength int
	FoodSlots      int

	// Wrap lets the snake leave one edge and re-enter on the opposite one.
	Wrap bool

	InitialMoveDelay clock.Ticks
	MoveDelayStep    clock.Ticks
	MinMoveDelay     clock.Ticks

	RatInterval clock.Ticks
	// LegacyRatCorner applies game.Board.RatCornerExcluded to rat steps.
	LegacyRatCorner bool

	// SuperFood is hidden for SuperFoodInterval ticks, then shown for
	// SuperFoodLifetime ticks, counting from the last reset.
	SuperFoodInterval clock.Ticks
	SuperFoodLifetime clock.Ticks

	FoodScore      int
	SuperFoodScore int
	RatScore       int

	// Seed fixes the random source. Zero seeds each game from the clock.
	Seed int64
}

// DefaultConfig matches the 16x8 LED matrix game: 600ms start delay, 20ms
// faster per item eaten down to 100ms, rat moves every second.
var DefaultConfig = Config{
	Width:             16,
	Height:            8,
	FoodSlots:         game.DefaultFoodSlots,
	InitialMoveDelay:  600,
	MoveDelayStep:     20,
	MinMoveDelay:      100,
	RatInterval:       1000,
	SuperFoodInterval: 10000,
	SuperFoodLifetime: 5000,
	FoodScore:         1,
	SuperFoodScore:    5,
	RatScore:          2,
}

// Board returns the playing field.
func (c Config) Board() game.Board {
	return game.Board{Width: c.Width, Height: c.Height}
}

func (c Config) maxLength() int {
	if c.MaxSnakeLength <= 0 || c.MaxSnakeLength > c.Width*c.Height {
		return c.Width * c.Height
	}
	return c.MaxSnakeLength
}

// startCells is where every game's snake is seeded: two cells on the middle
// row, heading right.
func (c Config) startCells() (tail, head game.Position) {
	b := c.Board()
	row := c.Height / 2
	return b.Position(0, row), b.Position(1, row)
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate rejects configurations the engine cannot run.
func (c Config) Validate() error {
	if c.Width < 2 || c.Height < 1 {
		return fmt.Errorf("%w: board %dx%d too small: need at least 2x1", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Width > game.MaxDimension || c.Height > game.MaxDimension {
		return fmt.Errorf("%w: board %dx%d too large: max dimension is %d", ErrInvalidConfig, c.Width, c.Height, game.MaxDimension)
	}
	if c.MaxSnakeLength != 0 && c.MaxSnakeLength < 2 {
		return fmt.Errorf("%w: max snake length %d: must be 0 or at least 2", ErrInvalidConfig, c.MaxSnakeLength)
	}
	if c.FoodSlots < 0 {
		return fmt.Errorf("%w: food slots %d: must not be negative", ErrInvalidConfig, c.FoodSlots)
	}
	if c.MinMoveDelay == 0 {
		return fmt.Errorf("%w: min move delay must be positive", ErrInvalidConfig)
	}
	if c.InitialMoveDelay < c.MinMoveDelay {
		return fmt.Errorf("%w: initial move delay %d below minimum %d", ErrInvalidConfig, c.InitialMoveDelay, c.MinMoveDelay)
	}
	if c.RatInterval == 0 {
		return fmt.Errorf("%w: rat interval must be positive", ErrInvalidConfig)
	}
	return nil
}
