package cyclic_test

import (
	"testing"

	cyclic "github.com/indev29/cyclic-iterator"
	"github.com/indev29/cyclic-iterator/iter/slice"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// positiveMod returns n mod m in [0, m)
func positiveMod(n, m int) int {
	return ((n % m) + m) % m
}

// drawCursor draws a non-empty slice and a cyclic cursor positioned
// somewhere inside it
func drawCursor(t *rapid.T) (cyclic.RandomAccess[slice.Cursor[int], int], int) {
	xs := rapid.SliceOfN(rapid.Int(), 1, 40).Draw(t, "xs")
	start := rapid.IntRange(0, len(xs)-1).Draw(t, "start")

	c := slice.Cycle(xs)
	c.Advance(start)
	require.Equal(t, start, c.Base().Index())

	return c, len(xs)
}

func TestLawWraparound(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c, size := drawCursor(t)
		start := c

		for i := 0; i < size; i++ {
			c.Next()
		}
		require.True(t, c.Equal(start), "forward lap from %d ended at %d", start.Base().Index(), c.Base().Index())

		for i := 0; i < size; i++ {
			c.Prev()
		}
		require.True(t, c.Equal(start), "backward lap from %d ended at %d", start.Base().Index(), c.Base().Index())
	})
}

func TestLawInverse(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c, _ := drawCursor(t)
		start := c

		require.True(t, c.Next().Prev().Equal(start))
		require.True(t, c.Prev().Next().Equal(start))

		n := rapid.Int().Draw(t, "n")
		require.True(t, c.Add(n).Sub(n).Equal(start))
	})
}

func TestLawAdvanceModulo(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c, size := drawCursor(t)
		n := rapid.Int().Draw(t, "n")

		want := positiveMod(c.Base().Index()+positiveMod(n, size), size)
		require.Equal(t, want, c.Add(n).Base().Index())

		begin := slice.Cycle(make([]int, size))
		require.True(t, begin.Add(n).Equal(begin.Add(positiveMod(n, size))))
	})
}

func TestLawAdvanceMatchesSteps(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c, _ := drawCursor(t)
		n := rapid.IntRange(-200, 200).Draw(t, "n")

		stepped := c
		for i := 0; i < n; i++ {
			stepped.Next()
		}
		for i := 0; i > n; i-- {
			stepped.Prev()
		}

		require.True(t, c.Add(n).Equal(stepped))
		require.True(t, c.Sub(-n).Equal(stepped))
	})
}

func TestLawFixedPoints(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		xs := rapid.SliceOfN(rapid.Int(), 0, 1).Draw(t, "xs")
		n := rapid.Int().Draw(t, "n")

		c := slice.Cycle(xs)
		start := c

		require.True(t, c.Add(n).Equal(start))
		require.True(t, c.Sub(n).Equal(start))
		require.True(t, c.Advance(n).Equal(start))
		require.True(t, c.Retreat(n).Equal(start))
		require.True(t, c.Next().Equal(start))
		require.True(t, c.Prev().Equal(start))
	})
}

func TestLawEquality(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		xs := rapid.SliceOfN(rapid.Int(), 2, 40).Draw(t, "xs")
		lo := rapid.IntRange(0, len(xs)-1).Draw(t, "lo")
		hi := rapid.IntRange(lo+1, len(xs)).Draw(t, "hi")

		a := cyclic.NewRandomAccess(slice.At(xs, lo), slice.At(xs, hi))
		b := cyclic.NewRandomAccess(slice.At(xs, lo), slice.At(xs, hi))
		require.True(t, a.Equal(b))

		// multipass: equal cursors stay equal after the same steps
		steps := rapid.IntRange(0, 100).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			require.True(t, a.Next().Equal(*b.Next()))
		}

		// equal current position, different bounds
		if hi < len(xs) {
			wider := cyclic.NewRandomAccess(slice.At(xs, lo), slice.At(xs, hi+1))
			wider.Advance(a.Base().Index() - lo)
			require.True(t, wider.Base().Equal(a.Base()))
			require.False(t, wider.Equal(a))
		}
	})
}

func TestLawRawDistance(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c, size := drawCursor(t)
		i := rapid.Int().Draw(t, "i")
		j := rapid.Int().Draw(t, "j")

		a, b := c.Add(i), c.Add(j)
		require.Equal(t, a.Base().Index()-b.Base().Index(), a.Distance(b))
		require.Equal(t, a.Base().Index() < b.Base().Index(), a.Less(b))
		require.Less(t, a.Base().Index(), size)
	})
}
