package cyclic_test

import (
	"testing"

	cyclic "github.com/indev29/cyclic-iterator"
	"github.com/indev29/cyclic-iterator/iter/runes"
	"github.com/indev29/cyclic-iterator/iter/slice"
	"github.com/stretchr/testify/assert"
)

// a singly linked list gives a position that can only move forward
type node struct {
	v    int
	next *node
}

type fwdPos struct {
	n *node
}

func (p fwdPos) Get() int            { return p.n.v }
func (p fwdPos) Next() fwdPos        { return fwdPos{p.n.next} }
func (p fwdPos) Equal(o fwdPos) bool { return p.n == o.n }

func linked(vals ...int) (fwdPos, fwdPos) {
	var head *node
	for i := len(vals) - 1; i >= 0; i-- {
		head = &node{v: vals[i], next: head}
	}

	return fwdPos{head}, fwdPos{}
}

func TestForward(t *testing.T) {
	assert := assert.New(t)

	v := []int{1, 2, 3}
	b, e := slice.Bounds(v)
	c := cyclic.New(b, e)

	assert.True(c.Base().Equal(b))
	assert.Equal(1, c.Get())
	assert.Equal(1, *c.Base().Ptr())

	r := c.Next()
	assert.Same(&c, r)
	assert.Equal(1, c.Base().Index())
	assert.Equal(2, c.Get())

	prev := c.PostNext()
	assert.Equal(1, prev.Base().Index())
	assert.Equal(2, c.Base().Index())
	assert.Equal(3, c.Get())

	c.Next()
	assert.True(c.Base().Equal(b))
	assert.Equal(1, c.Get())

	assert.True(c.Begin().Equal(b))
	assert.True(c.End().Equal(e))
	assert.False(c.Empty())
}

func TestForwardOnly(t *testing.T) {
	assert := assert.New(t)

	c := cyclic.New(linked(4, 5, 6))

	got := []int{}
	for i := 0; i < 7; i++ {
		got = append(got, c.Get())
		c.Next()
	}

	assert.Equal([]int{4, 5, 6, 4, 5, 6, 4}, got)
}

func TestForwardChained(t *testing.T) {
	assert := assert.New(t)

	c := runes.Cycle("héllo")
	assert.Equal('l', c.Next().Next().Get())
	assert.Equal('h', c.Next().Next().Next().Get())
}

func TestForwardComparison(t *testing.T) {
	assert := assert.New(t)

	v := []int{1, 2, 3}
	b, e := slice.Bounds(v)

	it := cyclic.New(b, e)
	it2 := cyclic.New(b, e)
	it3 := cyclic.New(slice.At(v, 1), e)

	assert.True(it.Equal(it2))
	assert.True(it.NotEqual(it3))

	it.Next()

	assert.True(it.NotEqual(it2))
	// same current position, different begin
	assert.True(it.Base().Equal(it3.Base()))
	assert.True(it.NotEqual(it3))

	it.Next()

	assert.True(it.NotEqual(it2))
	assert.True(it.NotEqual(it3))

	it.Next()

	assert.True(it.Equal(it2))
	assert.True(it.NotEqual(it3))
}

func TestForwardEqualityMultipass(t *testing.T) {
	assert := assert.New(t)

	a := cyclic.New(linked(1, 2, 3, 4))
	b := a

	for i := 0; i < 9; i++ {
		assert.True(a.Next().Equal(*b.Next()), "step %d", i)
	}
}

func TestForwardFixedPoints(t *testing.T) {
	tests := []struct {
		name  string
		input []int
	}{
		{name: "empty", input: []int{}},
		{name: "nil", input: nil},
		{name: "single element", input: []int{42}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)

			c := cyclic.New(slice.Bounds(tt.input))
			start := c

			for i := 0; i < 5; i++ {
				c.Next()
				assert.True(c.Equal(start))
				assert.Equal(0, c.PostNext().Base().Index())
			}

			assert.Equal(len(tt.input) == 0, c.Empty())
		})
	}
}
