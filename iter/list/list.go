// Package list implements a bidirectional position over a container/list
// List whose elements all hold values of type T.
//
// The end position of a list is represented by a nil element; stepping
// backward from it lands on the last element, which is what a
// cyclic.Bidirectional cursor relies on to wrap backward.
package list

import (
	"container/list"

	cyclic "github.com/indev29/cyclic-iterator"
)

// Cursor is a position in a list.List.  Get panics if the element under the
// cursor does not hold a T.
type Cursor[T any] struct {
	l *list.List
	e *list.Element
}

// Begin returns a cursor at the front of l.
func Begin[T any](l *list.List) Cursor[T] {
	return Cursor[T]{l: l, e: l.Front()}
}

// End returns the cursor one past the back of l.
func End[T any](l *list.List) Cursor[T] {
	return Cursor[T]{l: l}
}

// Bounds returns the begin and end cursors of l.
func Bounds[T any](l *list.List) (Cursor[T], Cursor[T]) {
	return Begin[T](l), End[T](l)
}

// Cycle returns a cyclic cursor over every element of l.
func Cycle[T any](l *list.List) cyclic.Bidirectional[Cursor[T], T] {
	return cyclic.NewBidirectional[Cursor[T], T](Bounds[T](l))
}

// Element returns the list element under the cursor, or nil at the end.
func (c Cursor[T]) Element() *list.Element {
	return c.e
}

// Get returns the value held by the element under the cursor.
func (c Cursor[T]) Get() T {
	return c.e.Value.(T)
}

// Next returns the cursor one element forward.
func (c Cursor[T]) Next() Cursor[T] {
	c.e = c.e.Next()
	return c
}

// Prev returns the cursor one element backward.  From the end it moves to
// the back of the list.
func (c Cursor[T]) Prev() Cursor[T] {
	if c.e == nil {
		c.e = c.l.Back()
	} else {
		c.e = c.e.Prev()
	}

	return c
}

// Equal reports whether both cursors are at the same element of the same
// list.
func (c Cursor[T]) Equal(other Cursor[T]) bool {
	return c.l == other.l && c.e == other.e
}
