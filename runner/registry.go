// Package runner implements the puzzle registry and dispatcher.
package runner

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"
)

// Sentinel errors for registration and dispatch.
var (
	// ErrNotRegistered indicates no puzzle is registered for the requested
	// year and day.
	ErrNotRegistered = errors.New("runner: no puzzle registered")
	// ErrBadPart indicates a part selector other than 1 or 2.
	ErrBadPart = errors.New("runner: part must be 1 or 2")
	// ErrNoInput indicates the input source has nothing for the requested
	// year and day.
	ErrNoInput = errors.New("runner: no input available")
)

// Puzzle is one day's solution: two parts, each mapping raw input lines to
// a printable answer. Parsing the lines is the puzzle's own business.
type Puzzle interface {
	Part1(lines []string) (string, error)
	Part2(lines []string) (string, error)
}

// ID names a registered puzzle.
type ID struct {
	Year int
	Day  int
}

func (id ID) String() string { return fmt.Sprintf("%d day %02d", id.Year, id.Day) }

var (
	registryMu sync.RWMutex
	registry   = map[ID]Puzzle{}
)

// Register adds a puzzle to the global registry. It is meant to be called
// from init functions and panics on a duplicate (year, day), since two
// solutions claiming the same slot is a programming error worth failing
// loudly at startup.
func Register(year, day int, p Puzzle) {
	registryMu.Lock()
	defer registryMu.Unlock()

	id := ID{Year: year, Day: day}
	if _, dup := registry[id]; dup {
		panic(fmt.Sprintf("runner: duplicate registration for %s", id))
	}
	registry[id] = p
}

// Lookup returns the puzzle registered for (year, day), if any.
func Lookup(year, day int) (Puzzle, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	p, ok := registry[ID{Year: year, Day: day}]

	return p, ok
}

// Puzzles returns every registered ID, ordered by year then day.
func Puzzles() []ID {
	registryMu.RLock()
	defer registryMu.RUnlock()

	ids := make([]ID, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if ids[i].Year != ids[j].Year {
			return ids[i].Year < ids[j].Year
		}

		return ids[i].Day < ids[j].Day
	})

	return ids
}

// Run dispatches one puzzle part: resolve the puzzle, pull its input from
// src, call the part, and log the timing. The answer comes back as the
// puzzle's printable string.
func Run(year, day, part int, src Source) (string, error) {
	if part != 1 && part != 2 {
		return "", fmt.Errorf("%w: got %d", ErrBadPart, part)
	}

	p, ok := Lookup(year, day)
	if !ok {
		return "", fmt.Errorf("%w: %d day %02d", ErrNotRegistered, year, day)
	}

	lines, err := src.Lines(year, day)
	if err != nil {
		return "", fmt.Errorf("runner: input for %d day %02d: %w", year, day, err)
	}

	started := time.Now()
	var answer string
	if part == 1 {
		answer, err = p.Part1(lines)
	} else {
		answer, err = p.Part2(lines)
	}
	elapsed := time.Since(started)

	if err != nil {
		slog.Error("puzzle failed",
			slog.Int("year", year),
			slog.Int("day", day),
			slog.Int("part", part),
			slog.Duration("elapsed", elapsed),
			slog.Any("error", err),
		)

		return "", fmt.Errorf("runner: %d day %02d part %d: %w", year, day, part, err)
	}

	slog.Info("puzzle solved",
		slog.Int("year", year),
		slog.Int("day", day),
		slog.Int("part", part),
		slog.Duration("elapsed", elapsed),
	)

	return answer, nil
}
