/*
Package cyclic provides cursor adapters that wrap around the end of a
finite sequence instead of stopping there.

A cyclic cursor is built from a begin/end pair of positions over some
sequence the caller owns.  Stepping past the last element brings the cursor
back to the first one, so the traversal never ends.  The adapter comes in
three tiers that mirror the capabilities of the wrapped position type:

  - Forward wraps a ForwardPosition and can only step forward
  - Bidirectional wraps a BidirectionalPosition and can also step backward
  - RandomAccess wraps a RandomAccessPosition and can seek by an arbitrary
    offset, measure distances and order cursors

Positions that cannot be copied and compared (single-pass readers such as
a channel) do not satisfy ForwardPosition, so no adapter can be built over
them.

The adapters hold no resources of their own.  They must not outlive the
sequence their positions refer to, and a single adapter must not be moved
from more than one goroutine at a time.
*/
package cyclic

// ForwardPosition is a multipass position in a sequence of elements of type
// T.  Positions are values: Next returns the following position and leaves
// the receiver untouched.
type ForwardPosition[P any, T any] interface {
	// Get returns the element at the position
	Get() T

	// Next returns the position one step forward
	Next() P

	// Equal reports whether both values denote the same position
	Equal(P) bool
}

// BidirectionalPosition is a ForwardPosition that can also step backward.
type BidirectionalPosition[P any, T any] interface {
	ForwardPosition[P, T]

	// Prev returns the position one step backward
	Prev() P
}

// RandomAccessPosition is a BidirectionalPosition that can move by an
// arbitrary offset in constant time.
type RandomAccessPosition[P any, T any] interface {
	BidirectionalPosition[P, T]

	// At returns the element n steps away from the position
	At(n int) T

	// Add returns the position n steps away (backward if n is negative)
	Add(n int) P

	// Sub returns the number of steps from other to the receiver
	Sub(other P) int

	// Less reports whether the receiver comes before other
	Less(other P) bool
}
