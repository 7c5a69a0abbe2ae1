// Package runes implements a forward-only position over the runes of a
// UTF-8 encoded string.
//
// Invalid UTF-8 is read one byte at a time as utf8.RuneError, the same way
// a range loop over the string would.
package runes

import (
	"unicode/utf8"

	cyclic "github.com/indev29/cyclic-iterator"
)

// Cursor is a byte offset into a string that always sits on a rune
// boundary.
type Cursor struct {
	s   string
	off int
}

// Begin returns a cursor at the first rune of s.
func Begin(s string) Cursor {
	return Cursor{s: s}
}

// End returns the cursor one past the last rune of s.
func End(s string) Cursor {
	return Cursor{s: s, off: len(s)}
}

// Bounds returns the begin and end cursors of s.
func Bounds(s string) (Cursor, Cursor) {
	return Begin(s), End(s)
}

// Cycle returns a cyclic cursor over the runes of s.
func Cycle(s string) cyclic.Forward[Cursor, rune] {
	return cyclic.New[Cursor, rune](Bounds(s))
}

// Offset returns the byte offset of the cursor.
func (c Cursor) Offset() int {
	return c.off
}

// Get returns the rune under the cursor.
func (c Cursor) Get() rune {
	r, _ := utf8.DecodeRuneInString(c.s[c.off:])
	return r
}

// Next returns the cursor at the following rune.
func (c Cursor) Next() Cursor {
	_, size := utf8.DecodeRuneInString(c.s[c.off:])
	c.off += size
	return c
}

// Equal reports whether both cursors are at the same byte offset.
func (c Cursor) Equal(other Cursor) bool {
	return c.off == other.off
}
