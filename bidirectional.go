package cyclic

// Bidirectional is a cyclic cursor over a position type that can step in
// both directions.  Stepping backward from begin moves the cursor to the
// last element of the domain.
type Bidirectional[P BidirectionalPosition[P, T], T any] struct {
	begin P
	cur   P
	end   P
}

// NewBidirectional returns a Bidirectional cursor over [begin, end),
// positioned at begin.  The same preconditions as New apply.
func NewBidirectional[P BidirectionalPosition[P, T], T any](begin, end P) Bidirectional[P, T] {
	return Bidirectional[P, T]{
		begin: begin,
		cur:   begin,
		end:   end,
	}
}

// Base returns the current underlying position.
func (c Bidirectional[P, T]) Base() P {
	return c.cur
}

// Begin returns the inclusive lower bound of the cursor's domain.
func (c Bidirectional[P, T]) Begin() P {
	return c.begin
}

// End returns the exclusive upper bound of the cursor's domain.
func (c Bidirectional[P, T]) End() P {
	return c.end
}

// Empty reports whether the domain has no elements.
func (c Bidirectional[P, T]) Empty() bool {
	return c.begin.Equal(c.end)
}

// Get returns the element under the cursor.
func (c Bidirectional[P, T]) Get() T {
	return c.cur.Get()
}

// Next moves the cursor one step forward, wrapping to begin after the last
// element, and returns the cursor itself.
func (c *Bidirectional[P, T]) Next() *Bidirectional[P, T] {
	c.cur = stepForward[P, T](c.begin, c.cur, c.end)
	return c
}

// PostNext moves the cursor one step forward and returns a copy of the
// cursor as it was before the step.
func (c *Bidirectional[P, T]) PostNext() Bidirectional[P, T] {
	prev := *c
	c.Next()
	return prev
}

// Prev moves the cursor one step backward, wrapping to the last element
// when at begin, and returns the cursor itself.
func (c *Bidirectional[P, T]) Prev() *Bidirectional[P, T] {
	c.cur = stepBackward[P, T](c.begin, c.cur, c.end)
	return c
}

// PostPrev moves the cursor one step backward and returns a copy of the
// cursor as it was before the step.
func (c *Bidirectional[P, T]) PostPrev() Bidirectional[P, T] {
	prev := *c
	c.Prev()
	return prev
}

// Equal reports whether both cursors share the same bounds and current
// position.
func (c Bidirectional[P, T]) Equal(other Bidirectional[P, T]) bool {
	return sameTriple[P, T](c.begin, c.cur, c.end, other.begin, other.cur, other.end)
}

// NotEqual is the negation of Equal.
func (c Bidirectional[P, T]) NotEqual(other Bidirectional[P, T]) bool {
	return !c.Equal(other)
}

// Forward returns a forward-only cursor with the same bounds and position.
func (c Bidirectional[P, T]) Forward() Forward[P, T] {
	return Forward[P, T]{
		begin: c.begin,
		cur:   c.cur,
		end:   c.end,
	}
}

// Stream returns a Stream that reads elements from a copy of the cursor.
func (c Bidirectional[P, T]) Stream(opts ...StreamOption) *Stream[T] {
	return c.Forward().Stream(opts...)
}

// stepBackward is the mirror of stepForward: at begin the cursor first
// jumps to end, then steps back onto the last element.
func stepBackward[P BidirectionalPosition[P, T], T any](begin, cur, end P) P {
	if begin.Equal(end) {
		return cur
	}

	if cur.Equal(begin) {
		cur = end
	}

	return cur.Prev()
}
