package nmea

import "strings"

// Cursor walks the fields of one sentence in order. It cannot be rewound.
type Cursor struct {
	rest string
	done bool
	pos  int
}

// NewCursor returns a cursor over the fields of an already preprocessed sentence.
func NewCursor(sentence string) *Cursor {
	return &Cursor{rest: sentence}
}

// Next returns the next field. ok is false once the fields are exhausted.
func (c *Cursor) Next() (tok string, ok bool) {
	if c.done {
		return "", false
	}
	i := strings.IndexByte(c.rest, Separator)
	if i < 0 {
		tok = c.rest
		c.rest = ""
		c.done = true
	} else {
		tok, c.rest = c.rest[:i], c.rest[i+1:]
	}
	c.pos++
	return tok, true
}

// Pos is the number of fields consumed so far.
func (c *Cursor) Pos() int {
	return c.pos
}

// Remaining counts the fields not consumed yet.
func (c *Cursor) Remaining() int {
	if c.done {
		return 0
	}
	return strings.Count(c.rest, string(Separator)) + 1
}

// isEmpty reports whether a field carries no information.
func isEmpty(tok string) bool {
	return tok == "" || (len(tok) == 1 && tok[0] == Placeholder)
}
