// Package console writes robot reports and diagnostics for a person to read.
package console

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"toyrobot/internal/robot"
)

// ReportPrefix starts every report line.
const ReportPrefix = "Output: "

// Console is the output sink of the interpreter.
type Console struct {
	out    io.Writer
	styled *termenv.Output
}

// New writes to w. Diagnostics are colored when color is set and w is a terminal.
func New(w io.Writer, color bool) *Console {
	opts := []termenv.OutputOption{}
	if !color {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	return &Console{out: w, styled: termenv.NewOutput(w, opts...)}
}

func (c *Console) Report(r robot.Report) {
	fmt.Fprintln(c.out, ReportPrefix+r.String())
}

func (c *Console) Diagnostic(err error) {
	fmt.Fprintln(c.out, c.styled.String(err.Error()).Foreground(c.styled.Color("9")).String())
}

// Notice prints an informational line, dimmed.
func (c *Console) Notice(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(c.out, c.styled.String(msg).Foreground(c.styled.Color("8")).String())
}

// Board draws the robot's board.
func (c *Console) Board(r *robot.Robot) {
	r.Display(c.out)
	fmt.Fprintln(c.out)
}
