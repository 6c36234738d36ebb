package interpreter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toyrobot/internal/robot"
	"toyrobot/internal/source"
)

func TestParse_Commands(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"MOVE", "MOVE"},
		{"move", "MOVE"},
		{"  Left ", "LEFT"},
		{"RIGHT", "RIGHT"},
		{"report", "REPORT"},
		{"PLACE 1,2,EAST", "PLACE 1,2,EAST"},
		{"place 0,0,north", "PLACE 0,0,NORTH"},
		{"PLACE 10,007,West", "PLACE 10,7,WEST"},
		{"PLACE 09,010,EAST", "PLACE 9,10,EAST"},
		{"PLACE 3,3,SOUTH\r", "PLACE 3,3,SOUTH"},
	}
	for _, tc := range tests {
		t.Run(tc.line, func(t *testing.T) {
			cmd, err := Parse(tc.line)
			require.NoError(t, err)
			assert.Equal(t, tc.want, cmd.String())
		})
	}
}

func TestParse_PlaceFields(t *testing.T) {
	cmd, err := Parse("PLACE 4,2,WEST")
	require.NoError(t, err)
	require.NotNil(t, cmd.Place)
	assert.Equal(t, Coord(4), cmd.Place.X)
	assert.Equal(t, Coord(2), cmd.Place.Y)
	assert.Equal(t, robot.West, robot.Orientation(cmd.Place.Facing))
	assert.Equal(t, "PLACE", cmd.Name())
}

func TestParse_MalformedPlace(t *testing.T) {
	lines := []string{
		"PLACE",
		"PLACE 1,1",
		"PLACE 1,1,",
		"PLACE 1,1,UP",
		"PLACE 1;1;NORTH",
		"PLACE -1,1,NORTH",
		"PLACE a,1,NORTH",
		"PLACE  1,1,NORTH",
		"PLACE\t1,1,NORTH",
		"PLACE 1, 1,NORTH",
		"PLACE 1,1,NORTH EXTRA",
		"PLACE 1,1,NORTHWEST",
		"PLACE1,1,NORTH",
		"PLACE 99999999999999999999999,1,NORTH",
	}
	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			_, err := Parse(line)
			var malformed *MalformedPlaceCommandError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, line, malformed.Line)
		})
	}
}

func TestParse_Unrecognized(t *testing.T) {
	lines := []string{"FOO", "", "   ", "MOVE MOVE", "MOVES", "JUMP 1,1", "LEFT!", "REPORT 1", "INVALID"}
	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			_, err := Parse(line)
			var unrecognized *UnrecognizedCommandError
			require.ErrorAs(t, err, &unrecognized)
			assert.Equal(t, line, unrecognized.Line)
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "invalid place command parameter: PLACE 1,1",
		(&MalformedPlaceCommandError{Line: "PLACE 1,1"}).Error())
	assert.Equal(t, "received unexpected command: INVALID",
		(&UnrecognizedCommandError{Line: "INVALID"}).Error())
	assert.Equal(t, "MOVE error: location 6, -1 is out of bound",
		(&CommandError{Command: "MOVE", Err: &robot.OutOfBoundsError{X: 6, Y: -1}}).Error())
}

func TestIsLineError(t *testing.T) {
	assert.True(t, IsLineError(&MalformedPlaceCommandError{Line: "PLACE"}))
	assert.True(t, IsLineError(&UnrecognizedCommandError{Line: "FOO"}))
	assert.True(t, IsLineError(&CommandError{Command: "MOVE", Err: &robot.OutOfBoundsError{}}))
	assert.False(t, IsLineError(&robot.OutOfBoundsError{}))
	assert.False(t, IsLineError(nil))
}

func TestParse_OverlongLine(t *testing.T) {
	_, err := Parse("PLACE 1,1,NORTH" + strings.Repeat(" ", source.MaxLineLength))
	var malformed *MalformedPlaceCommandError
	require.ErrorAs(t, err, &malformed)

	_, err = Parse(strings.Repeat("MOVE", source.MaxLineLength))
	var unrecognized *UnrecognizedCommandError
	require.ErrorAs(t, err, &unrecognized)
}
