package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/zeebo/pcg128/internal/tally"
)

var quantiles = []float64{0, .01, .25, .5, .75, .99, 1}

func newSummaryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary <sampler>",
		Short: "Print summary statistics for one sampler.",
		Long: `Draw values from one sampler and print their mean, variance and
quantiles.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: samplerNames(),
		RunE:      a.runSummary,
	}
}

func (a *app) runSummary(cmd *cobra.Command, args []string) error {
	g, err := a.gen()
	if err != nil {
		return err
	}
	p, n := a.params(), a.v.GetInt("count")
	if n <= 0 {
		return cmdError.New("count must be positive: %d", n)
	}
	out := cmd.OutOrStdout()

	xs := make([]float64, 0, n)
	if next, ok := uintSamplers[args[0]]; ok {
		next := next(&g, p)
		var his tally.Histogram
		for i := 0; i < n; i++ {
			v := next()
			his.Observe(v)
			xs = append(xs, float64(v))
		}
		printMoments(out, args[0], xs)

		// the histogram estimates are exact for values below 64.
		avg, variance := his.Variance()
		fmt.Fprintf(out, "bucketed %d\n", his.Total())
		fmt.Fprintf(out, "est mean %v\n", avg)
		fmt.Fprintf(out, "est var  %v\n", variance)
		for _, q := range quantiles {
			fmt.Fprintf(out, "q%-5v %d\n", q, his.Quantile(q))
		}
		if dropped := his.Dropped(); dropped > 0 {
			a.log.Warn().Uint64("dropped", dropped).Msg("values too large for quantiles")
		}

	} else if next, ok := floatSamplers[args[0]]; ok {
		next := next(&g, p)
		for i := 0; i < n; i++ {
			xs = append(xs, next())
		}
		printMoments(out, args[0], xs)
		sort.Float64s(xs)
		for _, q := range quantiles {
			fmt.Fprintf(out, "q%-5v %v\n", q, stat.Quantile(q, stat.Empirical, xs, nil))
		}

	} else {
		return unknownSampler(args[0])
	}

	return nil
}

func printMoments(out io.Writer, name string, xs []float64) {
	mean, variance := stat.MeanVariance(xs, nil)
	fmt.Fprintf(out, "sampler  %s\n", name)
	fmt.Fprintf(out, "count    %d\n", len(xs))
	fmt.Fprintf(out, "mean     %v\n", mean)
	fmt.Fprintf(out, "variance %v\n", variance)
}
