// Package tape implements the byte cell memory that programs execute
// against: a fixed-capacity contiguous buffer of unsigned 8-bit cells
// addressed by a movable cursor. Every cursor move is bounds checked;
// there is no way to read or write outside the allocated range.
package tape

import (
	"errors"
	"fmt"
)

// DefaultSize is the tape capacity used when none is given.
const DefaultSize = 1024

// Bounds errors returned by Move. Callers distinguish the two ends with
// errors.Is.
var (
	ErrOverflow  = errors.New("tape overflow")
	ErrUnderflow = errors.New("tape underflow")
)

// Tape is a zero-initialized cell buffer with a cursor starting at cell 0.
type Tape struct {
	cells []byte
	cur   int
}

// New allocates a tape of size cells, all zero, cursor at cell 0.
// A size < 1 falls back to DefaultSize.
func New(size int) *Tape {
	if size < 1 {
		size = DefaultSize
	}
	return &Tape{cells: make([]byte, size)}
}

// Move shifts the cursor by delta cells, failing with ErrOverflow or
// ErrUnderflow if the resulting position would leave the tape. The cursor
// is unchanged on failure.
func (t *Tape) Move(delta int) error {
	pos := t.cur + delta
	if pos < 0 {
		return rangeError{pos, len(t.cells), ErrUnderflow}
	}
	if pos >= len(t.cells) {
		return rangeError{pos, len(t.cells), ErrOverflow}
	}
	t.cur = pos
	return nil
}

// Get returns the cell under the cursor.
func (t *Tape) Get() byte { return t.cells[t.cur] }

// Set stores b into the cell under the cursor.
func (t *Tape) Set(b byte) { t.cells[t.cur] = b }

// Add adds delta to the cell under the cursor, wrapping modulo 256.
func (t *Tape) Add(delta int) { t.cells[t.cur] += byte(delta) }

// Pos returns the cursor position.
func (t *Tape) Pos() int { return t.cur }

// Len returns the tape capacity in cells.
func (t *Tape) Len() int { return len(t.cells) }

// Used returns the prefix of the tape up to and including the last nonzero
// cell or the cursor, whichever is further along.
func (t *Tape) Used() []byte {
	n := t.cur + 1
	for i := len(t.cells) - 1; i >= n; i-- {
		if t.cells[i] != 0 {
			n = i + 1
			break
		}
	}
	return t.cells[:n]
}

type rangeError struct {
	pos  int
	size int
	err  error
}

func (re rangeError) Error() string {
	return fmt.Sprintf("%v: cursor %v outside [0, %v)", re.err, re.pos, re.size)
}

func (re rangeError) Unwrap() error { return re.err }
