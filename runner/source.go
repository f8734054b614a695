// Package runner: input sources.
package runner

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Source supplies the raw text lines for a puzzle's input.
type Source interface {
	Lines(year, day int) ([]string, error)
}

// DirSource reads inputs from the on-disk cache layout the harness has
// always used: <Root>/<year>/day<DD>.txt. A trailing newline is trimmed;
// interior blank lines are preserved, since many puzzles use blank-line
// separated record groups.
type DirSource struct {
	Root string
}

// Lines reads and splits the cached input file. A missing file maps to
// ErrNoInput so callers can distinguish "never downloaded" from genuine
// I/O failures.
func (d DirSource) Lines(year, day int) ([]string, error) {
	path := filepath.Join(d.Root, strconv.Itoa(year), fmt.Sprintf("day%02d.txt", day))

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		slog.Debug("input cache miss", slog.String("path", path))

		return nil, fmt.Errorf("%w: %s", ErrNoInput, path)
	}
	if err != nil {
		return nil, fmt.Errorf("runner: reading %s: %w", path, err)
	}

	return SplitLines(string(raw)), nil
}

// LinesLiteral is a Source over a fixed string, for tests and for the
// worked examples embedded in puzzle statements.
type LinesLiteral string

// Lines splits the literal regardless of year and day.
func (l LinesLiteral) Lines(int, int) ([]string, error) {
	return SplitLines(string(l)), nil
}

// SplitLines splits raw puzzle text into lines: accepts both \n and \r\n,
// trims exactly one trailing newline, keeps interior blanks.
func SplitLines(raw string) []string {
	raw = strings.TrimSuffix(raw, "\n")
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}
