package cyclic

import "math"

// RandomAccess is a cyclic cursor over a position type that can move by any
// offset in constant time.  Offsets may be larger than the domain in either
// direction; the cursor wraps as many times as needed.
//
// Distance and the ordering methods compare raw underlying positions and
// know nothing about how many times a cursor has wrapped.  Two cursors with
// the same current position but different bounds are neither equal nor
// ordered.
type RandomAccess[P RandomAccessPosition[P, T], T any] struct {
	begin P
	cur   P
	end   P
}

// NewRandomAccess returns a RandomAccess cursor over [begin, end),
// positioned at begin.  The same preconditions as New apply.
//
//	xs := []int{1, 2, 3}
//	c := cyclic.NewRandomAccess(slice.Bounds(xs))
func NewRandomAccess[P RandomAccessPosition[P, T], T any](begin, end P) RandomAccess[P, T] {
	return RandomAccess[P, T]{
		begin: begin,
		cur:   begin,
		end:   end,
	}
}

// Base returns the current underlying position.
func (c RandomAccess[P, T]) Base() P {
	return c.cur
}

// Begin returns the inclusive lower bound of the cursor's domain.
func (c RandomAccess[P, T]) Begin() P {
	return c.begin
}

// End returns the exclusive upper bound of the cursor's domain.
func (c RandomAccess[P, T]) End() P {
	return c.end
}

// Empty reports whether the domain has no elements.
func (c RandomAccess[P, T]) Empty() bool {
	return c.begin.Equal(c.end)
}

// Len returns the number of elements in the domain.
func (c RandomAccess[P, T]) Len() int {
	return c.end.Sub(c.begin)
}

// Get returns the element under the cursor.
func (c RandomAccess[P, T]) Get() T {
	return c.cur.Get()
}

// At returns the element n underlying steps from the current position.  It
// does not wrap: the offset is passed straight to the underlying position.
// Use Peek for a wrapping lookup.
func (c RandomAccess[P, T]) At(n int) T {
	return c.cur.At(n)
}

// Peek returns the element n cyclic steps from the current position without
// moving the cursor.
func (c RandomAccess[P, T]) Peek(n int) T {
	return c.Add(n).Get()
}

// Next moves the cursor one step forward, wrapping to begin after the last
// element, and returns the cursor itself.
func (c *RandomAccess[P, T]) Next() *RandomAccess[P, T] {
	c.cur = stepForward[P, T](c.begin, c.cur, c.end)
	return c
}

// PostNext moves the cursor one step forward and returns a copy of the
// cursor as it was before the step.
func (c *RandomAccess[P, T]) PostNext() RandomAccess[P, T] {
	prev := *c
	c.Next()
	return prev
}

// Prev moves the cursor one step backward, wrapping to the last element
// when at begin, and returns the cursor itself.
func (c *RandomAccess[P, T]) Prev() *RandomAccess[P, T] {
	c.cur = stepBackward[P, T](c.begin, c.cur, c.end)
	return c
}

// PostPrev moves the cursor one step backward and returns a copy of the
// cursor as it was before the step.
func (c *RandomAccess[P, T]) PostPrev() RandomAccess[P, T] {
	prev := *c
	c.Prev()
	return prev
}

// Advance moves the cursor n steps, forward if n is positive and backward if
// it is negative, and returns the cursor itself.
func (c *RandomAccess[P, T]) Advance(n int) *RandomAccess[P, T] {
	c.advance(n)
	return c
}

// Retreat moves the cursor n steps backward and returns the cursor itself.
func (c *RandomAccess[P, T]) Retreat(n int) *RandomAccess[P, T] {
	if n == math.MinInt {
		// -MinInt overflows; split it into two representable moves
		c.advance(math.MaxInt)
		c.advance(1)
		return c
	}

	c.advance(-n)
	return c
}

// Add returns a copy of the cursor moved n steps.
func (c RandomAccess[P, T]) Add(n int) RandomAccess[P, T] {
	return *c.Advance(n)
}

// Sub returns a copy of the cursor moved n steps backward.
func (c RandomAccess[P, T]) Sub(n int) RandomAccess[P, T] {
	return *c.Retreat(n)
}

// Distance returns the number of underlying steps from other to c.  It is
// the plain difference of the current positions, not a cyclic distance.
func (c RandomAccess[P, T]) Distance(other RandomAccess[P, T]) int {
	return c.cur.Sub(other.cur)
}

// Less reports whether the current position of c is before that of other.
func (c RandomAccess[P, T]) Less(other RandomAccess[P, T]) bool {
	return c.cur.Less(other.cur)
}

// Greater reports whether the current position of c is after that of other.
func (c RandomAccess[P, T]) Greater(other RandomAccess[P, T]) bool {
	return other.cur.Less(c.cur)
}

// LessEqual reports whether the current position of c is not after that of
// other.
func (c RandomAccess[P, T]) LessEqual(other RandomAccess[P, T]) bool {
	return !other.cur.Less(c.cur)
}

// GreaterEqual reports whether the current position of c is not before that
// of other.
func (c RandomAccess[P, T]) GreaterEqual(other RandomAccess[P, T]) bool {
	return !c.cur.Less(other.cur)
}

// Equal reports whether both cursors share the same bounds and current
// position.
func (c RandomAccess[P, T]) Equal(other RandomAccess[P, T]) bool {
	return sameTriple[P, T](c.begin, c.cur, c.end, other.begin, other.cur, other.end)
}

// NotEqual is the negation of Equal.
func (c RandomAccess[P, T]) NotEqual(other RandomAccess[P, T]) bool {
	return !c.Equal(other)
}

// Bidirectional returns a cursor without the random access operations, with
// the same bounds and position.
func (c RandomAccess[P, T]) Bidirectional() Bidirectional[P, T] {
	return Bidirectional[P, T]{
		begin: c.begin,
		cur:   c.cur,
		end:   c.end,
	}
}

// Forward returns a forward-only cursor with the same bounds and position.
func (c RandomAccess[P, T]) Forward() Forward[P, T] {
	return Forward[P, T]{
		begin: c.begin,
		cur:   c.cur,
		end:   c.end,
	}
}

// Stream returns a Stream that reads elements from a copy of the cursor.
func (c RandomAccess[P, T]) Stream(opts ...StreamOption) *Stream[T] {
	return newStream(
		func() T { return c.Get() },
		func() { c.Next() },
		c.Len,
		c.Empty(),
		opts...)
}

// advance moves cur by n steps.  Small moves that stay inside the domain go
// straight to the underlying position; anything that crosses begin or end is
// reduced modulo the domain size, measured from the boundary it crosses.
func (c *RandomAccess[P, T]) advance(n int) {
	if n >= 0 {
		tail := c.end.Sub(c.cur)
		if n < tail {
			c.cur = c.cur.Add(n)
			return
		}

		size := c.end.Sub(c.begin)
		if size == 0 {
			return
		}

		c.cur = c.begin.Add((n - tail) % size)
		return
	}

	tail := c.begin.Sub(c.cur) - 1
	if n > tail {
		c.cur = c.cur.Add(n)
		return
	}

	size := c.end.Sub(c.begin)
	if size <= 1 {
		return
	}

	c.cur = c.end.Add(-1 - (tail-n)%size)
}
