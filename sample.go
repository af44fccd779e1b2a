package pcg128

import (
	"math"
	"math/bits"

	"github.com/zeebo/pcg128/uint128"
)

const (
	doubleMantissa = 0x000FFFFFFFFFFFFF
	doubleOne      = 0x3FF0000000000000

	// the smallest exponent that can still contribute a subnormal double.
	minExponent = -1074
)

// RandRange returns a uint64 uniformly in the half open range [min, max).
// The bounds may be given in either order. If they are equal, that value is
// returned without advancing the generator.
func (g *Gen) RandRange(min, max uint64) uint64 {
	if min > max {
		min, max = max, min
	}
	width := max - min
	if width == 0 {
		return min
	}

	if width&(width-1) == 0 {
		return g.Rand()&(width-1) + min
	}

	// limit is 2^64 mod width. values below it would bias the result, so
	// they are drawn and thrown away. the generator ends up past exactly the
	// rejected draws and the accepted one.
	limit := -width % width
	for {
		if r := g.Rand(); r >= limit {
			return min + r%width
		}
	}
}

// UniformDouble returns a float64 uniformly in [0, 1) with a granularity of
// 2^-52. It does not reach every representable float in that range: use
// AllDoubles for that.
func (g *Gen) UniformDouble() float64 {
	return math.Float64frombits(g.Rand()&doubleMantissa|doubleOne) - 1
}

// AllDoubles returns a float64 in [0, 1) where every representable float,
// including subnormals, can be produced. Values are uniform in linear
// probability but keep full precision near zero. The first draw is scaled
// by 2^-64, so results are 2^64 times those of generators that scale it by
// 2^-128 and would otherwise never exceed 2^-64.
func (g *Gen) AllDoubles() float64 {
	return allDoubles(g.Rand, func() uint64 { return g.Peek(uint128.One) })
}

// allDoubles builds a float out of successive 64 bit chunks of binary
// fraction returned by draw, topping up the low bits after normalization
// with fill.
func allDoubles(draw, fill func() uint64) float64 {
	exponent := 0
	var significand uint64
	for {
		exponent -= 64
		if exponent < minExponent {
			return 0
		}
		if significand = draw(); significand != 0 {
			break
		}
	}

	if shift := bits.LeadingZeros64(significand); shift != 0 {
		exponent -= shift
		significand <<= uint(shift)
		significand |= fill() >> uint(64-shift)
	}

	// a set low bit keeps rounding to 53 bits from ever landing on a tie.
	significand |= 1

	f := math.Ldexp(float64(significand), exponent)
	if f >= 1 {
		// only when rounding carries out of the top binade.
		return math.Nextafter(1, 0)
	}
	return f
}

// Gaussian returns a float64 derived from a uniform draw scaled by the
// polar transform. The scale factor is peeked rather than drawn, so the
// generator only advances by the draws spent on the first uniform, and
// consecutive results are correlated. Use GaussianIndependent for standard
// normal values.
func (g *Gen) Gaussian() float64 {
	var rsq float64
	for rsq == 0 {
		rsq = g.UniformDouble()
	}
	return g.PeekUniformDouble(uint128.One) * math.Sqrt(-2*math.Log(rsq)/rsq)
}

// Poisson runs Knuth's multiplicative method with expected value ev, where
// every factor after the first is peeked rather than drawn. The generator
// advances by exactly one draw. Use PoissonIndependent for poisson
// distributed values. ev must be finite and non-negative.
func (g *Gen) Poisson(ev float64) (n uint64) {
	em := math.Exp(-ev)
	x := g.UniformDouble()
	for x > em {
		n++
		x *= g.PeekUniformDouble(uint128.One)
	}
	return n
}

// GaussianIndependent returns a standard normal float64 using the
// Box-Muller transform on two consumed uniform draws.
func (g *Gen) GaussianIndependent() float64 {
	var u float64
	for u == 0 {
		u = g.UniformDouble()
	}
	v := g.UniformDouble()
	return math.Sqrt(-2*math.Log(u)) * math.Cos(2*math.Pi*v)
}

// PoissonIndependent returns a poisson distributed value with expected
// value ev using Knuth's multiplicative method, consuming one draw per
// factor. It takes O(ev) draws. ev must be finite and non-negative.
func (g *Gen) PoissonIndependent(ev float64) (n uint64) {
	em := math.Exp(-ev)
	x := g.UniformDouble()
	for x > em {
		n++
		x *= g.UniformDouble()
	}
	return n
}

//
// peek variants. each works on a copy of the generator, so none of them
// advance it.
//

// PeekRange returns what RandRange(min, max) would return after delta
// further steps of the generator.
func (g Gen) PeekRange(delta uint128.T, min, max uint64) uint64 {
	g.Skip(delta)
	return g.RandRange(min, max)
}

// PeekUniformDouble returns what UniformDouble would return after delta
// further steps of the generator.
func (g Gen) PeekUniformDouble(delta uint128.T) float64 {
	g.Skip(delta)
	return g.UniformDouble()
}

// PeekAllDoubles returns what AllDoubles would return after delta further
// steps of the generator.
func (g Gen) PeekAllDoubles(delta uint128.T) float64 {
	g.Skip(delta)
	return g.AllDoubles()
}

// PeekGaussian returns what Gaussian would return after delta further steps
// of the generator.
func (g Gen) PeekGaussian(delta uint128.T) float64 {
	g.Skip(delta)
	return g.Gaussian()
}

// PeekPoisson returns what Poisson(ev) would return after delta further
// steps of the generator.
func (g Gen) PeekPoisson(delta uint128.T, ev float64) uint64 {
	g.Skip(delta)
	return g.Poisson(ev)
}

// PeekGaussianIndependent returns what GaussianIndependent would return
// after delta further steps of the generator.
func (g Gen) PeekGaussianIndependent(delta uint128.T) float64 {
	g.Skip(delta)
	return g.GaussianIndependent()
}

// PeekPoissonIndependent returns what PoissonIndependent(ev) would return
// after delta further steps of the generator.
func (g Gen) PeekPoissonIndependent(delta uint128.T, ev float64) uint64 {
	g.Skip(delta)
	return g.PoissonIndependent(ev)
}
