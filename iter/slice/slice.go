// Package slice implements a random access position over a generic slice
// of elements, suitable for wrapping in a cyclic.RandomAccess cursor.
package slice

import (
	"unsafe"

	cyclic "github.com/indev29/cyclic-iterator"
)

// Cursor is a position in a slice of elements of type T.  It is a small
// value that can be copied freely.  The zero value is not usable.
//
// Cursors are only ordered and subtracted meaningfully when they come from
// the same slice.
type Cursor[T any] struct {
	s   []T
	pos int
}

// Begin returns a cursor at the first element of s.
func Begin[T any](s []T) Cursor[T] {
	return Cursor[T]{s: s}
}

// End returns a cursor one past the last element of s.
func End[T any](s []T) Cursor[T] {
	return Cursor[T]{s: s, pos: len(s)}
}

// Bounds returns the begin and end cursors of s.
func Bounds[T any](s []T) (Cursor[T], Cursor[T]) {
	return Begin(s), End(s)
}

// At returns a cursor at index i of s.  i may be len(s).
func At[T any](s []T, i int) Cursor[T] {
	return Cursor[T]{s: s, pos: i}
}

// Cycle returns a cyclic cursor over every element of s.
func Cycle[T any](s []T) cyclic.RandomAccess[Cursor[T], T] {
	return cyclic.NewRandomAccess[Cursor[T], T](Bounds(s))
}

// Index returns the index of the cursor in the slice.
func (c Cursor[T]) Index() int {
	return c.pos
}

// Get returns the element under the cursor.  It panics if the cursor is
// not at an element.
func (c Cursor[T]) Get() T {
	return c.s[c.pos]
}

// Ptr returns a pointer to the element under the cursor, through which the
// element can be modified in place.
func (c Cursor[T]) Ptr() *T {
	return &c.s[c.pos]
}

// Next returns the cursor one element forward.
func (c Cursor[T]) Next() Cursor[T] {
	c.pos++
	return c
}

// Prev returns the cursor one element backward.
func (c Cursor[T]) Prev() Cursor[T] {
	c.pos--
	return c
}

// Equal reports whether both cursors are at the same index of slices that
// share the same backing array start.
func (c Cursor[T]) Equal(other Cursor[T]) bool {
	return c.pos == other.pos && unsafe.SliceData(c.s) == unsafe.SliceData(other.s)
}

// At returns the element n positions from the cursor.
func (c Cursor[T]) At(n int) T {
	return c.s[c.pos+n]
}

// Add returns the cursor moved by n elements.
func (c Cursor[T]) Add(n int) Cursor[T] {
	c.pos += n
	return c
}

// Sub returns the number of elements between other and c.
func (c Cursor[T]) Sub(other Cursor[T]) int {
	return c.pos - other.pos
}

// Less reports whether c is before other.
func (c Cursor[T]) Less(other Cursor[T]) bool {
	return c.pos < other.pos
}
