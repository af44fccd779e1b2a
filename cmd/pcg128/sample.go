package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSampleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sample <sampler>",
		Short: "Print values from one sampler.",
		Long: `Print values from one sampler, one per line.
Samplers: rand, range, uniform, all, gaussian, gaussian-independent, poisson,
poisson-independent.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: samplerNames(),
		RunE:      a.runSample,
	}
}

func (a *app) runSample(cmd *cobra.Command, args []string) error {
	g, err := a.gen()
	if err != nil {
		return err
	}
	before, p, n := g, a.params(), a.v.GetInt("count")
	out := cmd.OutOrStdout()

	if next, ok := uintSamplers[args[0]]; ok {
		next := next(&g, p)
		for i := 0; i < n; i++ {
			fmt.Fprintln(out, next())
		}
	} else if next, ok := floatSamplers[args[0]]; ok {
		next := next(&g, p)
		for i := 0; i < n; i++ {
			fmt.Fprintln(out, next())
		}
	} else {
		return unknownSampler(args[0])
	}

	a.log.Debug().
		Str("sampler", args[0]).
		Int("count", n).
		Bool("peek", p.peek).
		Bool("advanced", g != before).
		Msg("sampled")

	return nil
}
