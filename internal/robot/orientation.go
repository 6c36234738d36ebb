package robot

import (
	"fmt"

	"github.com/samber/lo"
)

// Orientation is the facing of the robot. Values are in clockwise order.
type Orientation int

const (
	North Orientation = iota
	East
	South
	West
)

var orientationNames = []string{"NORTH", "EAST", "SOUTH", "WEST"}

// Orientations lists every facing in clockwise order starting at North.
func Orientations() []Orientation {
	return lo.Times(len(orientationNames), func(i int) Orientation { return Orientation(i) })
}

// ParseOrientation converts an upper-case facing name into an Orientation.
func ParseOrientation(name string) (Orientation, error) {
	idx := lo.IndexOf(orientationNames, name)
	if idx < 0 {
		return North, fmt.Errorf("unknown orientation %q", name)
	}
	return Orientation(idx), nil
}

func (o Orientation) String() string {
	if o < North || o > West {
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
	return orientationNames[o]
}

// Left is the facing after a 90 degree counter-clockwise turn.
func (o Orientation) Left() Orientation {
	return (o + 3) % 4
}

// Right is the facing after a 90 degree clockwise turn.
func (o Orientation) Right() Orientation {
	return (o + 1) % 4
}

// delta returns the one-step offset for the facing.
func (o Orientation) delta() (dx, dy int) {
	switch o {
	case North:
		return 0, 1
	case East:
		return 1, 0
	case South:
		return 0, -1
	case West:
		return -1, 0
	}
	return 0, 0
}

// glyph is used when drawing the board.
func (o Orientation) glyph() string {
	switch o {
	case North:
		return "^"
	case East:
		return ">"
	case South:
		return "v"
	case West:
		return "<"
	}
	return "R"
}
