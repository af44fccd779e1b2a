package pcg128

import (
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/pcg"

	"github.com/zeebo/pcg128/uint128"
)

func u(v uint64) uint128.T { return uint128.From64(v) }

func randomT(next func() uint32) uint128.T {
	return uint128.T{
		H: uint64(next())<<32 | uint64(next()),
		L: uint64(next())<<32 | uint64(next()),
	}
}

func TestGen(t *testing.T) {
	t.Run("Vectors", func(t *testing.T) {
		g := New()
		assert.Equal(t, g.Rand(), uint64(18017628057179154148))
		assert.Equal(t, g.Rand(), uint64(16104348561580308422))
		assert.Equal(t, g.Rand(), uint64(16084428887790382274))

		g = New()
		g.Skip(u(32))
		assert.Equal(t, g.Rand(), uint64(2947149625353530425))

		g = New()
		g.Reseed(uint128.Zero, uint128.Zero)
		assert.Equal(t, g.Rand(), uint64(15347903478529588745))

		g = New()
		g.Skip(uint128.Shl(uint128.One, 100))
		assert.Equal(t, g.Rand(), uint64(6236512609300836995))
	})

	t.Run("Reseed", func(t *testing.T) {
		g := Seeded(u(42), u(54))
		_, inc := g.State()
		assert.Equal(t, inc, u(0x6d))
		assert.Equal(t, g.Rand(), uint64(9705778491962043240))
		assert.Equal(t, g.Rand(), uint64(1370407407632858425))
		assert.Equal(t, g.Rand(), uint64(11774395822783136600))

		h := New()
		h.Reseed(u(42), u(54))
		assert.That(t, h == Seeded(u(42), u(54)))
	})

	t.Run("IncAlwaysOdd", func(t *testing.T) {
		rng := pcg.New(0)
		for i := 0; i < 100; i++ {
			g := Seeded(randomT(rng.Uint32), randomT(rng.Uint32))
			_, inc := g.State()
			assert.That(t, inc.Odd())
		}

		_, inc := New().State()
		assert.That(t, inc.Odd())
	})

	t.Run("FromString", func(t *testing.T) {
		a, b := FromString("orangey"), FromString("orangey")
		assert.That(t, a == b)
		assert.Equal(t, a.Rand(), b.Rand())

		c := FromString("orange")
		assert.That(t, a != c)

		_, inc := c.State()
		assert.That(t, inc.Odd())
	})

	t.Run("SkipMatchesStepping", func(t *testing.T) {
		stepped := New()
		for k := uint64(0); k < 1000; k++ {
			want := stepped.Rand()

			g := New()
			g.Skip(u(k))
			assert.Equal(t, g.Rand(), want)
		}
	})

	t.Run("SkipZero", func(t *testing.T) {
		g := New()
		g.Skip(uint128.Zero)
		assert.That(t, g == New())
	})

	t.Run("SkipComposes", func(t *testing.T) {
		rng := pcg.New(1)
		for i := 0; i < 100; i++ {
			a, b := randomT(rng.Uint32), randomT(rng.Uint32)

			g := New()
			g.Skip(a)
			g.Skip(b)

			h := New()
			h.Skip(uint128.Add(a, b))

			assert.That(t, g == h)
		}
	})

	t.Run("Back", func(t *testing.T) {
		g := New()
		g.Back(uint128.One)
		assert.Equal(t, g.Rand(), output(defaultState))

		rng := pcg.New(2)
		for i := 0; i < 100; i++ {
			delta := randomT(rng.Uint32)

			g := New()
			g.Skip(delta)
			g.Back(delta)
			assert.That(t, g == New())
		}
	})

	t.Run("Peek", func(t *testing.T) {
		g := New()
		assert.Equal(t, g.Peek(u(32)), uint64(2947149625353530425))
		assert.That(t, g == New())

		for k := uint64(0); k < 100; k++ {
			assert.Equal(t, g.Peek(uint128.Zero), g.Peek(uint128.Zero))
			assert.Equal(t, g.Peek(uint128.Zero), g.Rand())
		}
	})

	t.Run("PeekMatchesRand", func(t *testing.T) {
		g, stepped := New(), New()
		for k := uint64(0); k < 1000; k++ {
			assert.Equal(t, g.Peek(u(k)), stepped.Rand())
		}
		assert.That(t, g == New())
	})

	t.Run("CopyIsIndependent", func(t *testing.T) {
		g := New()
		h := g
		h.Rand()
		h.Skip(u(100))
		assert.That(t, g == New())
	})
}

func BenchmarkGen(b *testing.B) {
	b.Run("Rand", func(b *testing.B) {
		g := New()
		for i := 0; i < b.N; i++ {
			g.Rand()
		}
	})

	b.Run("Skip", func(b *testing.B) {
		g := New()
		delta := uint128.T{H: 0x0123456789abcdef, L: 0xfedcba9876543210}
		for i := 0; i < b.N; i++ {
			g.Skip(delta)
		}
	})

	b.Run("Peek", func(b *testing.B) {
		g := New()
		delta := u(1 << 40)
		for i := 0; i < b.N; i++ {
			g.Peek(delta)
		}
	})
}
