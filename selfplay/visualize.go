package selfplay

import (
	"fmt"
	"io"

	"github.com/brensch/snekmatrix/render"
	"github.com/brensch/snekmatrix/rules"
)

// PrintBoard writes the frame with a one-line header describing the move.
func PrintBoard(w io.Writer, engine *rules.Engine, frame *render.Frame) {
	fmt.Fprintf(w, "=== move %d length %d score %d delay %d head %v ===\n%s\n",
		engine.Moves(), engine.SnakeLength(), engine.Score(), engine.MoveDelay(),
		engine.HeadPosition(), frame)
}
