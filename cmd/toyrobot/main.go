// toyrobot moves a robot around a square table following commands read
// from a file or typed on standard input.
//
//	toyrobot [flags] [commands-file]
//
// Commands are PLACE x,y,F, MOVE, LEFT, RIGHT and REPORT, one per line.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"toyrobot/internal/config"
	"toyrobot/internal/console"
	"toyrobot/internal/interpreter"
	"toyrobot/internal/robot"
	"toyrobot/internal/source"
)

// reportedError is an error whose diagnostic has already been printed on the console.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// stdinSource opens standard input. Tests replace it.
var stdinSource = source.Stdin

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := run(ctx, os.Stdout, os.Stderr, os.Args[1:])
	if err == nil {
		return
	}
	stop()
	if errors.Is(err, context.Canceled) {
		os.Exit(130)
	}
	var re *reportedError
	if !errors.As(err, &re) {
		fmt.Fprintf(os.Stderr, "toyrobot: %v\n", err)
	}
	os.Exit(1)
}

type flags struct {
	configPath  string
	width       int
	height      int
	logLevel    string
	logFile     string
	stopOnError bool
	trace       bool
	noColor     bool
}

func run(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	var f flags
	flagSet := pflag.NewFlagSet("toyrobot", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&f.configPath, "config", "", "config `file` (default "+config.DefaultPath()+")")
	flagSet.IntVar(&f.width, "width", 5, "board width")
	flagSet.IntVar(&f.height, "height", 5, "board height")
	flagSet.StringVar(&f.logLevel, "log-level", "warn", "log `level` ("+strings.Join(config.LevelNames(), ", ")+")")
	flagSet.StringVar(&f.logFile, "log-file", "", "write logs to `file` instead of stderr")
	flagSet.BoolVar(&f.stopOnError, "stop-on-error", false, "stop reading after the first failing command")
	flagSet.BoolVar(&f.trace, "trace", false, "draw the board after every command")
	flagSet.BoolVar(&f.noColor, "no-color", false, "disable colored diagnostics")
	flagSet.Usage = func() {
		fmt.Fprintln(stderr, "Usage: toyrobot [flags] [commands-file]")
		fmt.Fprintln(stderr, "Reads commands from standard input when no file (or -) is given.")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if flagSet.NArg() > 1 {
		flagSet.Usage()
		return fmt.Errorf("expected at most one commands file, got %d", flagSet.NArg())
	}

	cfg, err := config.NewLoader(nil).Load(f.configPath)
	if err != nil {
		return err
	}
	applyFlags(flagSet, &f, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := cfg.Log.NewLogger()
	if err != nil {
		return err
	}
	defer logger.Sync() // Flush any buffered log entries

	table, err := robot.New(cfg.Board.Width, cfg.Board.Height)
	if err != nil {
		return err
	}

	con := console.New(stdout, cfg.Console.Color)

	src, err := openSource(con, flagSet.Arg(0))
	if err != nil {
		return err
	}
	defer src.Close()

	opts := interpreter.SessionOptions{StopOnError: cfg.Session.StopOnError}
	if src.Interactive() {
		opts.Prompt = cfg.Console.Prompt
		opts.PromptOut = stdout
	}
	if cfg.Session.Trace {
		opts.AfterLine = func(string, error) { con.Board(table) }
	}

	logger.Info("starting",
		zap.Int("width", cfg.Board.Width),
		zap.Int("height", cfg.Board.Height),
		zap.String("source", src.Name()),
	)

	interp := interpreter.New(table, con, logger)
	done := interpreter.NewCompletion()
	if err := interpreter.NewSession(interp, opts, logger).Run(ctx, src, done); err != nil {
		if interpreter.IsLineError(err) {
			return &reportedError{err: err}
		}
		return err
	}
	return nil
}

// openSource announces a commands file before opening it and prints a
// missing file on the console like any other diagnostic.
func openSource(con *console.Console, path string) (*source.Source, error) {
	if path == "" || path == source.StdinName {
		return stdinSource(), nil
	}
	con.Notice("input from file: %s", path)
	src, err := source.Open(path)
	var nf *source.NotFoundError
	if errors.As(err, &nf) {
		con.Diagnostic(err)
		return nil, &reportedError{err: err}
	}
	return src, err
}

// applyFlags lets explicitly set flags win over the config file.
func applyFlags(fs *pflag.FlagSet, f *flags, cfg *config.Config) {
	if fs.Changed("width") {
		cfg.Board.Width = f.width
	}
	if fs.Changed("height") {
		cfg.Board.Height = f.height
	}
	if fs.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if fs.Changed("log-file") {
		cfg.Log.File = f.logFile
	}
	if fs.Changed("stop-on-error") {
		cfg.Session.StopOnError = f.stopOnError
	}
	if fs.Changed("trace") {
		cfg.Session.Trace = f.trace
	}
	if f.noColor {
		cfg.Console.Color = false
	}
}
