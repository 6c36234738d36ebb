package console

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toyrobot/internal/robot"
)

func TestConsole_Plain(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, false)

	c.Report(robot.Report{X: 3, Y: 3, Facing: robot.North})
	c.Diagnostic(errors.New("received unexpected command: FOO"))
	c.Notice("input from file: %s", "cmds.txt")

	assert.Equal(t,
		"Output: 3,3,NORTH\n"+
			"received unexpected command: FOO\n"+
			"input from file: cmds.txt\n",
		buf.String())
}

func TestConsole_Board(t *testing.T) {
	r, err := robot.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, r.Place(0, 0, robot.West))

	var buf bytes.Buffer
	New(&buf, false).Board(r)
	assert.Equal(t, ". . \n< . \n\n", buf.String())
}
