package interpreter

import (
	"errors"
	"fmt"
)

// MalformedPlaceCommandError is returned for a PLACE line whose arguments do not parse.
type MalformedPlaceCommandError struct {
	Line string
}

func (e *MalformedPlaceCommandError) Error() string {
	return fmt.Sprintf("invalid place command parameter: %s", e.Line)
}

// UnrecognizedCommandError is returned for a line that is not a known command.
type UnrecognizedCommandError struct {
	Line string
}

func (e *UnrecognizedCommandError) Error() string {
	return fmt.Sprintf("received unexpected command: %s", e.Line)
}

// CommandError wraps a failure of the robot while running a parsed command.
type CommandError struct {
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s error: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// IsLineError reports whether err came from a single input line rather
// than from the session itself.
func IsLineError(err error) bool {
	var (
		malformed    *MalformedPlaceCommandError
		unrecognized *UnrecognizedCommandError
		cmdErr       *CommandError
	)
	return errors.As(err, &malformed) || errors.As(err, &unrecognized) || errors.As(err, &cmdErr)
}
