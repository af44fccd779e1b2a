package main

import (
	"sort"
	"strings"

	"github.com/zeebo/pcg128"
	"github.com/zeebo/pcg128/uint128"
)

// params are the sampler arguments taken from the flags.
type params struct {
	min, max uint64
	ev       float64
	peek     bool
}

func (a *app) params() params {
	return params{
		min:  a.v.GetUint64("min"),
		max:  a.v.GetUint64("max"),
		ev:   a.v.GetFloat64("ev"),
		peek: a.v.GetBool("peek"),
	}
}

// uintSamplers build a "next" function for the samplers with integer
// results, either consuming or peeking depending on p.peek.
var uintSamplers = map[string]func(g *pcg128.Gen, p params) func() uint64{
	"rand": func(g *pcg128.Gen, p params) func() uint64 {
		if p.peek {
			return g.PeekRandSeq().Next
		}
		return g.RandSeq().Next
	},
	"range": func(g *pcg128.Gen, p params) func() uint64 {
		if p.peek {
			return g.PeekRangeSeq(p.min, p.max).Next
		}
		return g.RangeSeq(p.min, p.max).Next
	},
	"poisson": func(g *pcg128.Gen, p params) func() uint64 {
		if p.peek {
			return g.PeekPoissonSeq(p.ev).Next
		}
		return g.PoissonSeq(p.ev).Next
	},
	"poisson-independent": func(g *pcg128.Gen, p params) func() uint64 {
		if p.peek {
			return pcg128.PeekSeqOf(g, func(g pcg128.Gen, delta uint128.T) uint64 {
				return g.PeekPoissonIndependent(delta, p.ev)
			}).Next
		}
		return pcg128.SeqOf(g, func(g *pcg128.Gen) uint64 {
			return g.PoissonIndependent(p.ev)
		}).Next
	},
}

// floatSamplers are like uintSamplers for the samplers with float results.
var floatSamplers = map[string]func(g *pcg128.Gen, p params) func() float64{
	"uniform": func(g *pcg128.Gen, p params) func() float64 {
		if p.peek {
			return g.PeekUniformDoubleSeq().Next
		}
		return g.UniformDoubleSeq().Next
	},
	"all": func(g *pcg128.Gen, p params) func() float64 {
		if p.peek {
			return g.PeekAllDoublesSeq().Next
		}
		return g.AllDoublesSeq().Next
	},
	"gaussian": func(g *pcg128.Gen, p params) func() float64 {
		if p.peek {
			return g.PeekGaussianSeq().Next
		}
		return g.GaussianSeq().Next
	},
	"gaussian-independent": func(g *pcg128.Gen, p params) func() float64 {
		if p.peek {
			return pcg128.PeekSeqOf(g, pcg128.Gen.PeekGaussianIndependent).Next
		}
		return pcg128.SeqOf(g, (*pcg128.Gen).GaussianIndependent).Next
	},
}

// samplerNames returns the sorted names of every sampler.
func samplerNames() []string {
	names := make([]string, 0, len(uintSamplers)+len(floatSamplers))
	for name := range uintSamplers {
		names = append(names, name)
	}
	for name := range floatSamplers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func unknownSampler(name string) error {
	return cmdError.New("unknown sampler %q: expected one of %s",
		name, strings.Join(samplerNames(), ", "))
}
