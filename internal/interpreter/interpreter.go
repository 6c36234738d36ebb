package interpreter

import (
	"go.uber.org/zap"

	"toyrobot/internal/robot"
)

// Agent is the robot as seen by the interpreter.
type Agent interface {
	Place(x, y int, f robot.Orientation) error
	Move() error
	Left()
	Right()
	Report() (robot.Report, bool)
}

// Output receives report lines and one diagnostic per failed line.
type Output interface {
	Report(r robot.Report)
	Diagnostic(err error)
}

// Interpreter applies text commands to a single agent.
// It keeps no state between lines besides the agent itself.
type Interpreter struct {
	agent  Agent
	out    Output
	logger *zap.Logger
}

func New(agent Agent, out Output, logger *zap.Logger) *Interpreter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Interpreter{agent: agent, out: out, logger: logger}
}

// Execute parses and runs one line. The returned error is one of
// *MalformedPlaceCommandError, *UnrecognizedCommandError or a *CommandError
// wrapping the robot failure. A diagnostic is written for every error.
func (in *Interpreter) Execute(line string) error {
	err := in.execute(line)
	if err != nil {
		in.logger.Warn("command failed", zap.String("line", line), zap.Error(err))
		in.out.Diagnostic(err)
	}
	return err
}

func (in *Interpreter) execute(line string) error {
	cmd, err := Parse(line)
	if err != nil {
		return err
	}
	in.logger.Debug("command", zap.Stringer("cmd", cmd))

	switch {
	case cmd.Place != nil:
		p := cmd.Place
		if err := in.agent.Place(int(p.X), int(p.Y), robot.Orientation(p.Facing)); err != nil {
			return &CommandError{Command: cmd.Name(), Err: err}
		}
	case cmd.Move:
		if err := in.agent.Move(); err != nil {
			return &CommandError{Command: cmd.Name(), Err: err}
		}
	case cmd.Left:
		in.agent.Left()
	case cmd.Right:
		in.agent.Right()
	case cmd.Report:
		if rep, ok := in.agent.Report(); ok {
			in.out.Report(rep)
		}
	}
	return nil
}
