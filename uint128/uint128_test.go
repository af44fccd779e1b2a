package uint128

import (
	"math/big"
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/pcg"
)

var mod = new(big.Int).Lsh(big.NewInt(1), 128)

func random(next func() uint32) T {
	return T{
		H: uint64(next())<<32 | uint64(next()),
		L: uint64(next())<<32 | uint64(next()),
	}
}

func wrap(b *big.Int) T {
	b.Mod(b, mod)
	return T{
		H: new(big.Int).Rsh(b, 64).Uint64(),
		L: new(big.Int).And(b, new(big.Int).SetUint64(^uint64(0))).Uint64(),
	}
}

func TestArithmetic(t *testing.T) {
	rng := pcg.New(0)

	t.Run("Add", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			s, u := random(rng.Uint32), random(rng.Uint32)
			assert.Equal(t, Add(s, u), wrap(new(big.Int).Add(s.Big(), u.Big())))
		}
	})

	t.Run("Sub", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			s, u := random(rng.Uint32), random(rng.Uint32)
			assert.Equal(t, Sub(s, u), wrap(new(big.Int).Sub(s.Big(), u.Big())))
		}
	})

	t.Run("Mul", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			s, u := random(rng.Uint32), random(rng.Uint32)
			assert.Equal(t, Mul(s, u), wrap(new(big.Int).Mul(s.Big(), u.Big())))
		}
	})

	t.Run("Wraparound", func(t *testing.T) {
		max := T{H: ^uint64(0), L: ^uint64(0)}
		assert.Equal(t, Add(max, One), Zero)
		assert.Equal(t, Sub(Zero, One), max)
		assert.Equal(t, Neg(One), max)
		assert.Equal(t, Mul(max, max), One)
	})

	t.Run("Shifts", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			s := random(rng.Uint32)
			for _, n := range []uint{0, 1, 7, 63, 64, 65, 100, 127, 128, 200} {
				assert.Equal(t, Shl(s, n), wrap(new(big.Int).Lsh(s.Big(), n)))
				assert.Equal(t, Shr(s, n), wrap(new(big.Int).Rsh(s.Big(), n)))
			}
		}
	})
}

func TestParse(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		for in, exp := range map[string]T{
			"0":  Zero,
			"42": From64(42),
			"0xce84809586cf8d1f17e1e9805a1b4141": {H: 0xce84809586cf8d1f, L: 0x17e1e9805a1b4141},
			"18446744073709551616":               {H: 1},
			"0xffff_ffff":                        From64(0xffffffff),
		} {
			got, err := Parse(in)
			assert.NoError(t, err)
			assert.Equal(t, got, exp)
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, in := range []string{
			"",
			"nope",
			"-1",
			"0x1_0000_0000_0000_0000_0000_0000_0000_0000",
		} {
			_, err := Parse(in)
			assert.Error(t, err)
			assert.That(t, Error.Has(err))
		}
	})

	t.Run("String", func(t *testing.T) {
		rng := pcg.New(1)
		for i := 0; i < 100; i++ {
			s := random(rng.Uint32)
			got, err := Parse(s.String())
			assert.NoError(t, err)
			assert.Equal(t, got, s)
		}
	})
}

func TestHash(t *testing.T) {
	assert.Equal(t, HashString("orange"), HashString("orange"))
	assert.That(t, HashString("orange") != HashString("orangey"))
}

func BenchmarkMul(b *testing.B) {
	s := T{H: 0x2360ed051fc65da4, L: 0x4385df649fccf645}
	u := s
	for i := 0; i < b.N; i++ {
		u = Mul(u, s)
	}
	_ = u
}
