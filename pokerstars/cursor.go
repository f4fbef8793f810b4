package pokerstars

import (
	"bufio"
	"io"
	"strings"
)

// headerPrefix marks the first line of every hand in the log.
const headerPrefix = "PokerStars"

// cursor owns the forward-only line stream shared by the section
// parsers. Each parser consumes zero or more lines starting at the
// current position and leaves the cursor at the first unconsumed line.
// Reaching end of stream is a normal observable state, not an error.
type cursor struct {
	sc   *bufio.Scanner
	line string
	eof  bool
}

func newCursor(r io.Reader) *cursor {
	return &cursor{sc: bufio.NewScanner(r)}
}

// advance reads the next line into line, or sets the empty sentinel and
// the eof flag at end of stream.
func (c *cursor) advance() {
	if c.eof {
		c.line = ""
		return
	}
	if c.sc.Scan() {
		c.line = strings.TrimRight(c.sc.Text(), "\r")
		return
	}
	c.line = ""
	c.eof = true
}

// err reports a read failure from the underlying stream, nil on clean EOF.
func (c *cursor) err() error {
	return c.sc.Err()
}

// seekNextHeader advances until the current line begins with the room's
// header prefix, skipping blank lines and any other fragments between
// hands. It reports whether a header was found before end of stream.
func (c *cursor) seekNextHeader() bool {
	for !strings.HasPrefix(c.line, headerPrefix) {
		if c.eof {
			return false
		}
		c.advance()
	}
	return true
}
