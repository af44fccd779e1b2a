// Package pcg128 implements a 128 bit state permuted congruential generator
// with 64 bit outputs, logarithmic time jumps in either direction through the
// stream, and a family of samplers that can all be peeked at without
// advancing the generator.
//
// A Gen is not safe for concurrent use. Copying a Gen by value produces an
// independent generator at the same point in the stream.
package pcg128

import (
	"math/bits"

	"github.com/zeebo/pcg128/uint128"
)

// mul is the LCG multiplier.
var mul = uint128.T{H: 0x2360ed051fc65da4, L: 0x4385df649fccf645}

// default stream constants used by New.
var (
	defaultState = uint128.T{H: 0xce84809586cf8d1f, L: 0x17e1e9805a1b4141}
	defaultInc   = uint128.T{H: 0xb0a3e85a992afe5a, L: 0x280af6fdeecf029f}
)

// Gen is a pcg generator. The zero value is invalid: use New, Seeded or
// FromString.
type Gen struct {
	state uint128.T
	inc   uint128.T // always odd
}

// New returns a generator on the default stream.
func New() Gen {
	return Gen{state: defaultState, inc: defaultInc}
}

// Seeded returns a generator reseeded with the given state and sequence.
func Seeded(initState, initSeq uint128.T) Gen {
	var g Gen
	g.Reseed(initState, initSeq)
	return g
}

// FromString returns a generator whose state and sequence are derived from
// the xxh3 hash of key. The same key always selects the same stream.
func FromString(key string) Gen {
	return Seeded(uint128.HashString(key), uint128.HashString("seq:"+key))
}

// Reseed sets the generator to the start of the stream selected by initSeq,
// offset by initState. Only the low 127 bits of initSeq matter.
func (g *Gen) Reseed(initState, initSeq uint128.T) {
	g.inc = uint128.Or(uint128.Shl(initSeq, 1), uint128.One)
	g.state = uint128.Zero
	g.step()
	g.state = uint128.Add(g.state, initState)
	g.step()
}

// State returns the current state and increment of the generator.
func (g Gen) State() (state, inc uint128.T) { return g.state, g.inc }

// step performs a single LCG update.
func (g *Gen) step() {
	g.state = uint128.Add(uint128.Mul(g.state, mul), g.inc)
}

// output applies the xor fold and random rotation to a state.
func output(state uint128.T) uint64 {
	return bits.RotateLeft64(state.H^state.L, -int(state.H>>58))
}

// Rand advances the generator and returns a random uint64.
func (g *Gen) Rand() uint64 {
	g.step()
	return output(g.state)
}

// Skip jumps the generator delta steps ahead in the stream.
func (g *Gen) Skip(delta uint128.T) {
	g.state = advance(g.state, delta, g.inc)
}

// Back jumps the generator delta steps back in the stream. The stream has
// period 2^128 so this is the same as skipping 2^128 - delta steps.
func (g *Gen) Back(delta uint128.T) {
	g.Skip(uint128.Neg(delta))
}

// Peek returns the value that the delta'th call to Rand after the next
// one would return. Peek(0) is the value of the next Rand call.
func (g Gen) Peek(delta uint128.T) uint64 {
	return output(advance(g.state, uint128.Add(delta, uint128.One), g.inc))
}

// advance returns the state after delta steps of the LCG with multiplier
// mul and increment inc starting from state. It composes the affine map
// x -> mul*x + inc with itself by squaring, so it runs in O(log delta).
//
// See "Random Number Generation with Arbitrary Strides" by F. Brown.
func advance(state, delta, inc uint128.T) uint128.T {
	curMul, curPlus := mul, inc
	accMul, accPlus := uint128.One, uint128.Zero

	for !delta.IsZero() {
		if delta.Odd() {
			accMul = uint128.Mul(accMul, curMul)
			accPlus = uint128.Add(uint128.Mul(accPlus, curMul), curPlus)
		}
		curPlus = uint128.Mul(uint128.Add(curMul, uint128.One), curPlus)
		curMul = uint128.Mul(curMul, curMul)
		delta = uint128.Shr(delta, 1)
	}

	return uint128.Add(uint128.Mul(accMul, state), accPlus)
}
