// Package source provides forward-only byte scanning over program text with
// location tracking, so that parse errors can name a file, line, and column.
package source

import (
	"bufio"
	"fmt"
	"io"
)

// Location names a byte in a scanned input.
type Location struct {
	Name string
	Line int
	Col  int
}

func (loc Location) String() string {
	if loc.Name == "" {
		return fmt.Sprintf("%v:%v", loc.Line, loc.Col)
	}
	return fmt.Sprintf("%v:%v:%v", loc.Name, loc.Line, loc.Col)
}

// Scanner reads bytes one at a time, tracking the location of the byte most
// recently returned. A single byte of pushback supports one-symbol lookahead.
type Scanner struct {
	br   io.ByteReader
	next Location
	loc  Location

	unread bool
	last   byte
}

// NewScanner wraps r for scanning; name labels locations (typically the file
// path, empty for anonymous input).
func NewScanner(name string, r io.Reader) *Scanner {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Scanner{
		br:   br,
		next: Location{Name: name, Line: 1, Col: 1},
	}
}

// ReadByte returns the next input byte, or io.EOF when the input is
// exhausted.
func (sc *Scanner) ReadByte() (byte, error) {
	if sc.unread {
		sc.unread = false
		return sc.last, nil
	}
	b, err := sc.br.ReadByte()
	if err != nil {
		return 0, err
	}
	sc.loc = sc.next
	if b == '\n' {
		sc.next.Line++
		sc.next.Col = 1
	} else {
		sc.next.Col++
	}
	sc.last = b
	return b, nil
}

// Unread pushes the most recently read byte back so that the next ReadByte
// returns it again. Only one byte of pushback is held; a second Unread
// without an intervening read is a no-op.
func (sc *Scanner) Unread() {
	sc.unread = true
}

// Loc returns the location of the byte most recently returned by ReadByte.
func (sc *Scanner) Loc() Location { return sc.loc }
