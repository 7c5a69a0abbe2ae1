package cyclic

// Forward is a cyclic cursor over a forward-only position type P.  Stepping
// forward from the last element of [begin, end) moves the cursor back to
// begin.
type Forward[P ForwardPosition[P, T], T any] struct {
	begin P
	cur   P
	end   P
}

// New returns a Forward cursor over [begin, end), positioned at begin.
// Both positions must come from the same sequence and end must be reachable
// from begin; this is not checked.
//
// The element type is inferred from P, so no type arguments are needed:
//
//	c := cyclic.New(runes.Bounds("abc"))
func New[P ForwardPosition[P, T], T any](begin, end P) Forward[P, T] {
	return Forward[P, T]{
		begin: begin,
		cur:   begin,
		end:   end,
	}
}

// Base returns the current underlying position.
func (c Forward[P, T]) Base() P {
	return c.cur
}

// Begin returns the inclusive lower bound of the cursor's domain.
func (c Forward[P, T]) Begin() P {
	return c.begin
}

// End returns the exclusive upper bound of the cursor's domain.
func (c Forward[P, T]) End() P {
	return c.end
}

// Empty reports whether the domain has no elements.
func (c Forward[P, T]) Empty() bool {
	return c.begin.Equal(c.end)
}

// Get returns the element under the cursor.  Calling Get on a cursor with
// an empty domain has the same outcome as reading the underlying end
// position.
func (c Forward[P, T]) Get() T {
	return c.cur.Get()
}

// Next moves the cursor one step forward, wrapping to begin after the last
// element, and returns the cursor itself.
func (c *Forward[P, T]) Next() *Forward[P, T] {
	c.cur = stepForward[P, T](c.begin, c.cur, c.end)
	return c
}

// PostNext moves the cursor one step forward and returns a copy of the
// cursor as it was before the step.
func (c *Forward[P, T]) PostNext() Forward[P, T] {
	prev := *c
	c.Next()
	return prev
}

// Equal reports whether both cursors share the same bounds and current
// position.  Comparing the bounds keeps equal cursors equal after the same
// number of steps.
func (c Forward[P, T]) Equal(other Forward[P, T]) bool {
	return sameTriple[P, T](c.begin, c.cur, c.end, other.begin, other.cur, other.end)
}

// NotEqual is the negation of Equal.
func (c Forward[P, T]) NotEqual(other Forward[P, T]) bool {
	return !c.Equal(other)
}

// Stream returns a Stream that reads elements from a copy of the cursor.
func (c Forward[P, T]) Stream(opts ...StreamOption) *Stream[T] {
	return newStream(
		func() T { return c.Get() },
		func() { c.Next() },
		func() int { return lapLength[P, T](c.begin, c.end) },
		c.Empty(),
		opts...)
}

// stepForward returns the position after cur, wrapping to begin at end.  An
// empty domain is left alone since end cannot be stepped over.
func stepForward[P ForwardPosition[P, T], T any](begin, cur, end P) P {
	if begin.Equal(end) {
		return cur
	}

	cur = cur.Next()
	if cur.Equal(end) {
		cur = begin
	}

	return cur
}

// lapLength counts the elements in [begin, end) by walking them.
func lapLength[P ForwardPosition[P, T], T any](begin, end P) int {
	n := 0
	for p := begin; !p.Equal(end); p = p.Next() {
		n++
	}

	return n
}

func sameTriple[P ForwardPosition[P, T], T any](b1, c1, e1, b2, c2, e2 P) bool {
	return b1.Equal(b2) && c1.Equal(c2) && e1.Equal(e2)
}
