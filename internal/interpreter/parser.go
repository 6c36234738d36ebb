package interpreter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"toyrobot/internal/robot"
	"toyrobot/internal/source"
)

// Command is one parsed input line. Exactly one field is set.
type Command struct {
	Place  *Place `parser:"  @@"`
	Move   bool   `parser:"| @'MOVE'"`
	Left   bool   `parser:"| @'LEFT'"`
	Right  bool   `parser:"| @'RIGHT'"`
	Report bool   `parser:"| @'REPORT'"`
}

// Place is PLACE x,y,F. Whitespace is a token so the single space is enforced.
type Place struct {
	X      Coord  `parser:"'PLACE' Space @Int"`
	Y      Coord  `parser:"Comma @Int"`
	Facing Facing `parser:"Comma @('NORTH'|'EAST'|'SOUTH'|'WEST')"`
}

// Coord captures a decimal board coordinate.
type Coord int

func (c *Coord) Capture(values []string) error {
	n, err := strconv.Atoi(values[0])
	if err != nil {
		return err
	}
	*c = Coord(n)
	return nil
}

// Facing captures an orientation name.
type Facing robot.Orientation

func (f *Facing) Capture(values []string) error {
	o, err := robot.ParseOrientation(values[0])
	if err != nil {
		return err
	}
	*f = Facing(o)
	return nil
}

var commandLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Word", Pattern: `[A-Z_]+`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Space", Pattern: ` `},
})

var parser = participle.MustBuild[Command](participle.Lexer(commandLexer))

const placeKeyword = "PLACE"

// Parse turns a raw line into a Command. Keywords are matched case-insensitively.
// Lines starting with PLACE that do not parse are malformed placements,
// everything else that does not parse is unrecognized.
func Parse(line string) (*Command, error) {
	text := strings.ToUpper(strings.TrimSpace(line))
	if len(line) > source.MaxLineLength {
		return nil, rejectLine(line, text)
	}
	cmd, err := parser.ParseString("", text)
	if err != nil {
		return nil, rejectLine(line, text)
	}
	if cmd.Name() == "" {
		return nil, &UnrecognizedCommandError{Line: line}
	}
	return cmd, nil
}

func rejectLine(line, text string) error {
	if strings.HasPrefix(text, placeKeyword) {
		return &MalformedPlaceCommandError{Line: line}
	}
	return &UnrecognizedCommandError{Line: line}
}

// Name is the keyword of the command.
func (c *Command) Name() string {
	switch {
	case c.Place != nil:
		return placeKeyword
	case c.Move:
		return "MOVE"
	case c.Left:
		return "LEFT"
	case c.Right:
		return "RIGHT"
	case c.Report:
		return "REPORT"
	}
	return ""
}

func (c *Command) String() string {
	if c.Place != nil {
		return fmt.Sprintf("%s %d,%d,%s", placeKeyword, c.Place.X, c.Place.Y, robot.Orientation(c.Place.Facing))
	}
	return c.Name()
}
