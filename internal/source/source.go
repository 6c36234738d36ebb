// Package source produces command lines from a file or from standard input.
package source

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/term"
)

// StdinName is the path that selects standard input.
const StdinName = "-"

// MaxLineLength is the longest line delivered whole. Longer lines are cut to
// MaxLineLength+1 bytes so a reader can still tell they were too long.
const MaxLineLength = 64 * 1024

// NotFoundError is returned by Open when the input file does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

// Source is an ordered stream of text lines.
type Source struct {
	name        string
	r           io.Reader
	closer      io.Closer
	interactive bool
}

// Open returns a file source for path, or standard input when path is empty or "-".
func Open(path string) (*Source, error) {
	if path == "" || path == StdinName {
		return Stdin(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &Source{name: path, r: f, closer: f}, nil
}

// Stdin reads from standard input. It is interactive when stdin is a terminal.
func Stdin() *Source {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return FromTerminal("stdin", os.Stdin)
	}
	return FromReader("stdin", os.Stdin)
}

// FromTerminal wraps a reader a person types into.
func FromTerminal(name string, r io.Reader) *Source {
	return &Source{name: name, r: r, interactive: true}
}

// FromReader wraps an arbitrary reader.
func FromReader(name string, r io.Reader) *Source {
	return &Source{name: name, r: r}
}

func (s *Source) Name() string {
	return s.name
}

// Interactive reports whether a person is typing the lines.
func (s *Source) Interactive() bool {
	return s.interactive
}

// IsFile reports whether the lines come from a named file.
func (s *Source) IsFile() bool {
	return s.closer != nil
}

func (s *Source) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// Scan sends every line to lines in order and closes lines when done.
// Line endings are dropped and lines longer than MaxLineLength are truncated.
// It returns the read error, ctx.Err() when cancelled, or nil at end of input.
func (s *Source) Scan(ctx context.Context, lines chan<- string) error {
	defer close(lines)

	reader := bufio.NewReader(s.r)
	for {
		line, err := readLine(reader)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		select {
		case lines <- strings.TrimSuffix(line, "\r"):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// readLine reads one line, keeping at most MaxLineLength+1 bytes of it.
func readLine(r *bufio.Reader) (string, error) {
	var buf []byte
	started := false
	for {
		chunk, isPrefix, err := r.ReadLine()
		if err != nil {
			if err == io.EOF && started {
				return string(buf), nil
			}
			return "", err
		}
		started = true
		if room := MaxLineLength + 1 - len(buf); room > 0 {
			buf = append(buf, chunk[:min(room, len(chunk))]...)
		}
		if !isPrefix {
			return string(buf), nil
		}
	}
}
