package cyclic

import (
	"context"
)

// Iterator is a generic interface for one-directional, pull style traversal
// through a stream of items.  Unlike the cyclic cursors it can end, either
// because a limit was reached or because the context was cancelled.
type Iterator[T any] interface {
	// Next traverses the iterator to the next element
	// Returns true if the iterator advanced, or false if there are no more
	// elements or if an error occured (see Error() below)
	Next(ctx context.Context) bool

	// Get returns current value referred to by the iterator
	Get() T

	// Error returns a non-nil value if an error occured processing Next()
	Error() error
}

// Size is an interface that can be implemented by an iterator that
// knows the number of elements it will return when it is initialized
type Size interface {
	Size() uint
}
