package robot

import "fmt"

// InvalidBoundsError is returned when a board is created with a non-positive dimension.
type InvalidBoundsError struct {
	Width, Height int
}

func (e *InvalidBoundsError) Error() string {
	return fmt.Sprintf("minimum board size is 1 x 1, got %d x %d", e.Width, e.Height)
}

// OutOfBoundsError is returned when a placement or a move targets a cell outside the board.
type OutOfBoundsError struct {
	X, Y int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("location %d, %d is out of bound", e.X, e.Y)
}
