package pcg128

import (
	"iter"

	"github.com/zeebo/pcg128/uint128"
)

//
// consuming sequences
//

// Seq is an unbounded lazy sequence of values produced by repeatedly calling
// a sampler on a live generator. Each value advances the generator. A Seq
// is not safe for concurrent use and cannot be restarted: make a new one.
type Seq[T any] struct {
	g  *Gen
	fn func(*Gen) T
}

// SeqOf returns a Seq that calls fn on g for every value.
func SeqOf[T any](g *Gen, fn func(*Gen) T) *Seq[T] {
	return &Seq[T]{g: g, fn: fn}
}

// Next advances the generator and returns the next value.
func (s *Seq[T]) Next() T { return s.fn(s.g) }

// Take returns the next n values.
func (s *Seq[T]) Take(n int) []T { return take(n, s.Next) }

// All returns an iterator over the sequence. It never stops on its own.
func (s *Seq[T]) All() iter.Seq[T] { return all(s.Next) }

// RandSeq returns a sequence of Rand values.
func (g *Gen) RandSeq() *Seq[uint64] {
	return SeqOf(g, (*Gen).Rand)
}

// RangeSeq returns a sequence of RandRange(min, max) values.
func (g *Gen) RangeSeq(min, max uint64) *Seq[uint64] {
	return SeqOf(g, func(g *Gen) uint64 { return g.RandRange(min, max) })
}

// UniformDoubleSeq returns a sequence of UniformDouble values.
func (g *Gen) UniformDoubleSeq() *Seq[float64] {
	return SeqOf(g, (*Gen).UniformDouble)
}

// AllDoublesSeq returns a sequence of AllDoubles values.
func (g *Gen) AllDoublesSeq() *Seq[float64] {
	return SeqOf(g, (*Gen).AllDoubles)
}

// GaussianSeq returns a sequence of Gaussian values.
func (g *Gen) GaussianSeq() *Seq[float64] {
	return SeqOf(g, (*Gen).Gaussian)
}

// PoissonSeq returns a sequence of Poisson(ev) values.
func (g *Gen) PoissonSeq(ev float64) *Seq[uint64] {
	return SeqOf(g, func(g *Gen) uint64 { return g.Poisson(ev) })
}

//
// peeking sequences
//

// PeekSeq is an unbounded lazy sequence of peeked values. The n'th call to
// Next returns the sampler's value peeked at offset n, so the sequence walks
// the future of the generator without advancing it. The generator is
// borrowed: advancing it moves the point the offsets are relative to.
type PeekSeq[T any] struct {
	g      *Gen
	offset uint128.T
	fn     func(Gen, uint128.T) T
}

// PeekSeqOf returns a PeekSeq that calls fn with a copy of g and the current
// offset for every value.
func PeekSeqOf[T any](g *Gen, fn func(Gen, uint128.T) T) *PeekSeq[T] {
	return &PeekSeq[T]{g: g, fn: fn}
}

// Next returns the value at the current offset and increments the offset.
func (s *PeekSeq[T]) Next() T {
	v := s.fn(*s.g, s.offset)
	s.offset = uint128.Add(s.offset, uint128.One)
	return v
}

// Offset returns the offset the next call to Next will peek at.
func (s *PeekSeq[T]) Offset() uint128.T { return s.offset }

// Seek sets the offset the next call to Next will peek at.
func (s *PeekSeq[T]) Seek(offset uint128.T) { s.offset = offset }

// Take returns the next n values.
func (s *PeekSeq[T]) Take(n int) []T { return take(n, s.Next) }

// All returns an iterator over the sequence. It never stops on its own.
func (s *PeekSeq[T]) All() iter.Seq[T] { return all(s.Next) }

// PeekRandSeq returns a sequence of Peek values.
func (g *Gen) PeekRandSeq() *PeekSeq[uint64] {
	return PeekSeqOf(g, Gen.Peek)
}

// PeekRangeSeq returns a sequence of PeekRange(_, min, max) values.
func (g *Gen) PeekRangeSeq(min, max uint64) *PeekSeq[uint64] {
	return PeekSeqOf(g, func(g Gen, delta uint128.T) uint64 {
		return g.PeekRange(delta, min, max)
	})
}

// PeekUniformDoubleSeq returns a sequence of PeekUniformDouble values.
func (g *Gen) PeekUniformDoubleSeq() *PeekSeq[float64] {
	return PeekSeqOf(g, Gen.PeekUniformDouble)
}

// PeekAllDoublesSeq returns a sequence of PeekAllDoubles values.
func (g *Gen) PeekAllDoublesSeq() *PeekSeq[float64] {
	return PeekSeqOf(g, Gen.PeekAllDoubles)
}

// PeekGaussianSeq returns a sequence of PeekGaussian values.
func (g *Gen) PeekGaussianSeq() *PeekSeq[float64] {
	return PeekSeqOf(g, Gen.PeekGaussian)
}

// PeekPoissonSeq returns a sequence of PeekPoisson(_, ev) values.
func (g *Gen) PeekPoissonSeq(ev float64) *PeekSeq[uint64] {
	return PeekSeqOf(g, func(g Gen, delta uint128.T) uint64 {
		return g.PeekPoisson(delta, ev)
	})
}

//
// helpers
//

func take[T any](n int, next func() T) []T {
	if n < 0 {
		n = 0
	}
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, next())
	}
	return out
}

func all[T any](next func() T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for yield(next()) {
		}
	}
}
