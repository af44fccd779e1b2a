// Package uint128 implements unsigned 128 bit integers with wrapping
// arithmetic.
package uint128

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/zeebo/errs"
	"github.com/zeebo/xxh3"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("uint128")

// T is an unsigned 128 bit integer. All arithmetic wraps modulo 2^128.
type T struct {
	H uint64
	L uint64
}

// Zero and One are the obvious constants.
var (
	Zero = T{}
	One  = T{L: 1}
)

// From64 returns v as a T.
func From64(v uint64) T { return T{L: v} }

// IsZero returns true if t is zero.
func (t T) IsZero() bool { return t.H|t.L == 0 }

// Odd returns true if the lowest bit of t is set.
func (t T) Odd() bool { return t.L&1 == 1 }

// Add returns s + t.
func Add(s, t T) T {
	l, c := bits.Add64(s.L, t.L, 0)
	h, _ := bits.Add64(s.H, t.H, c)
	return T{H: h, L: l}
}

// Sub returns s - t.
func Sub(s, t T) T {
	l, b := bits.Sub64(s.L, t.L, 0)
	h, _ := bits.Sub64(s.H, t.H, b)
	return T{H: h, L: l}
}

// Mul returns the low 128 bits of s * t.
func Mul(s, t T) T {
	// the cross terms only contribute to the high word, and their own high
	// words fall off the end.
	h, l := bits.Mul64(s.L, t.L)
	h += s.H*t.L + s.L*t.H
	return T{H: h, L: l}
}

// Neg returns -t, the two's complement of t.
func Neg(t T) T { return Sub(Zero, t) }

// Or returns s | t.
func Or(s, t T) T { return T{H: s.H | t.H, L: s.L | t.L} }

// Shl returns t << n. Shifts of 128 or more return zero.
func Shl(t T, n uint) T {
	switch {
	case n >= 128:
		return Zero
	case n >= 64:
		return T{H: t.L << (n - 64)}
	case n == 0:
		return t
	}
	return T{H: t.H<<n | t.L>>(64-n), L: t.L << n}
}

// Shr returns t >> n. Shifts of 128 or more return zero.
func Shr(t T, n uint) T {
	switch {
	case n >= 128:
		return Zero
	case n >= 64:
		return T{L: t.H >> (n - 64)}
	case n == 0:
		return t
	}
	return T{H: t.H >> n, L: t.L>>n | t.H<<(64-n)}
}

// Big returns t as a big.Int.
func (t T) Big() *big.Int {
	b := new(big.Int).SetUint64(t.H)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(t.L))
}

// String returns the hex representation of t with a 0x prefix.
func (t T) String() string {
	if t.H == 0 {
		return fmt.Sprintf("%#x", t.L)
	}
	return fmt.Sprintf("%#x%016x", t.H, t.L)
}

// Parse parses a decimal, 0x prefixed hex, 0o octal or 0b binary string
// into a T. Underscores are allowed between digits.
func Parse(s string) (T, error) {
	b, ok := new(big.Int).SetString(s, 0)
	switch {
	case !ok:
		return Zero, Error.New("invalid integer: %q", s)
	case b.Sign() < 0:
		return Zero, Error.New("negative integer: %q", s)
	case b.BitLen() > 128:
		return Zero, Error.New("integer overflows 128 bits: %q", s)
	}

	mask := new(big.Int).SetUint64(^uint64(0))
	return T{
		H: new(big.Int).Rsh(b, 64).Uint64(),
		L: new(big.Int).And(b, mask).Uint64(),
	}, nil
}

// HashString returns the 128 bit xxh3 hash of data.
func HashString(data string) T {
	h := xxh3.HashString128(data)
	return T{H: h.Hi, L: h.Lo}
}
