package robot

import (
	"fmt"
	"io"
)

// Display draws the board with the robot on it. The top row is the north edge.
func (r *Robot) Display(w io.Writer) {
	for y := r.board.Height - 1; y >= 0; y-- {
		for x := 0; x < r.board.Width; x++ {
			if r.pos != nil && r.pos.X == x && r.pos.Y == y {
				fmt.Fprint(w, r.facing.glyph()+" ")
			} else {
				fmt.Fprint(w, ". ")
			}
		}
		fmt.Fprintln(w)
	}
}
