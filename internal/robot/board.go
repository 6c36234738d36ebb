package robot

// Board is the rectangular table the robot lives on.
// Cells run from (0,0) in the south-west corner to (Width-1, Height-1).
type Board struct {
	Width  int
	Height int
}

// NewBoard validates the dimensions and returns the board.
func NewBoard(width, height int) (Board, error) {
	if width <= 0 || height <= 0 {
		return Board{}, &InvalidBoundsError{Width: width, Height: height}
	}
	return Board{Width: width, Height: height}, nil
}

func (b Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// check returns an OutOfBoundsError for cells that are not on the board.
func (b Board) check(x, y int) error {
	if !b.InBounds(x, y) {
		return &OutOfBoundsError{X: x, Y: y}
	}
	return nil
}
