package interpreter

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"toyrobot/internal/source"
)

// SessionOptions control how a session reacts to the stream.
type SessionOptions struct {
	// StopOnError stops reading after the first failed line.
	// By default every line is applied and the first failure is only recorded.
	StopOnError bool

	// Prompt is written to PromptOut before each line is awaited.
	Prompt    string
	PromptOut io.Writer

	// AfterLine is called once every line has been applied.
	AfterLine func(line string, err error)
}

// Session feeds a line source to an interpreter in order.
type Session struct {
	interp *Interpreter
	opts   SessionOptions
	logger *zap.Logger
}

func NewSession(interp *Interpreter, opts SessionOptions, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{interp: interp, opts: opts, logger: logger}
}

// Run consumes src until end of input and settles done: it is rejected with
// the first failed line's error, or resolved at end of input when no line failed.
// Run returns the settled outcome, or a read error from the source.
// When ctx is cancelled Run returns ctx.Err() without waiting for the next line.
func (s *Session) Run(ctx context.Context, src *source.Source, done *Completion) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		readErr <- src.Scan(ctx, lines)
	}()

	s.logger.Info("session started", zap.String("source", src.Name()))
	count := 0
	for {
		s.prompt()
		var line string
		var ok bool
		select {
		case <-ctx.Done():
			done.Reject(ctx.Err())
			s.logger.Info("session cancelled", zap.Int("lines", count))
			return ctx.Err()
		case line, ok = <-lines:
		}
		if !ok {
			break
		}
		count++

		err := s.interp.Execute(line)
		if s.opts.AfterLine != nil {
			s.opts.AfterLine(line, err)
		}
		if err == nil {
			continue
		}
		done.Reject(err)
		if s.opts.StopOnError {
			s.logger.Info("session stopped on error", zap.Int("lines", count))
			return done.Err()
		}
	}

	if err := <-readErr; err != nil {
		err = fmt.Errorf("read %s: %w", src.Name(), err)
		done.Reject(err)
		return err
	}
	done.Resolve()
	s.logger.Info("session finished", zap.Int("lines", count), zap.Error(done.Err()))
	return done.Err()
}

func (s *Session) prompt() {
	if s.opts.PromptOut == nil || s.opts.Prompt == "" {
		return
	}
	fmt.Fprint(s.opts.PromptOut, s.opts.Prompt)
}
