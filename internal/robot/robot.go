package robot

import "fmt"

// Position is a cell on the board.
type Position struct {
	X, Y int
}

// Report is a snapshot of a robot that is on the board.
type Report struct {
	X, Y   int
	Facing Orientation
}

// String formats the snapshot as x,y,FACING.
func (r Report) String() string {
	return fmt.Sprintf("%d,%d,%s", r.X, r.Y, r.Facing)
}

// Robot represents the robot on a bounded board.
// A nil position means the robot has not been placed yet and every
// command except Place is ignored.
type Robot struct {
	board  Board
	pos    *Position
	facing Orientation
}

func New(width, height int) (*Robot, error) {
	board, err := NewBoard(width, height)
	if err != nil {
		return nil, err
	}
	return &Robot{board: board}, nil
}

func (r *Robot) Board() Board {
	return r.board
}

func (r *Robot) IsOnBoard() bool {
	return r.pos != nil
}

// Place puts the robot on (x,y) facing f. The robot may be placed again at any time.
// Nothing changes when the cell is outside the board.
func (r *Robot) Place(x, y int, f Orientation) error {
	if err := r.board.check(x, y); err != nil {
		return err
	}
	r.pos = &Position{X: x, Y: y}
	r.facing = f
	return nil
}

// Move steps one cell forward. A move that would leave the board is refused.
func (r *Robot) Move() error {
	if r.pos == nil {
		return nil
	}
	dx, dy := r.facing.delta()
	nx, ny := r.pos.X+dx, r.pos.Y+dy
	if err := r.board.check(nx, ny); err != nil {
		return err
	}
	r.pos = &Position{X: nx, Y: ny}
	return nil
}

func (r *Robot) Left() {
	if r.pos == nil {
		return
	}
	r.facing = r.facing.Left()
}

func (r *Robot) Right() {
	if r.pos == nil {
		return
	}
	r.facing = r.facing.Right()
}

// Report returns the current snapshot, or false when the robot is not placed.
func (r *Robot) Report() (Report, bool) {
	if r.pos == nil {
		return Report{}, false
	}
	return Report{X: r.pos.X, Y: r.pos.Y, Facing: r.facing}, true
}

func (r *Robot) String() string {
	if rep, ok := r.Report(); ok {
		return fmt.Sprintf("(%s)", rep)
	}
	return "(off board)"
}
