package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/zeebo/errs"
	"golang.org/x/term"

	"github.com/zeebo/pcg128"
	"github.com/zeebo/pcg128/internal/logger"
	"github.com/zeebo/pcg128/uint128"
)

// cmdError is the class of errors returned by the commands.
var cmdError = errs.Class("pcg128")

// app holds the state shared by every command.
type app struct {
	v       *viper.Viper
	log     zerolog.Logger
	bindErr error // from binding the flags, reported by setup
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "pcg128",
		Short: "Jumpable 128 bit pcg generator.",
		Long: `Jumpable 128 bit pcg generator.
Without a subcommand, prints a few values from every sampler, starting each
from a fresh generator. For example:
  pcg128
  pcg128 sample range --min=64 --max=128 -n 5
  pcg128 sample gaussian --key=orange --skip=1000 --peek
  pcg128 summary poisson-independent --ev=4 -n 100000`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.runDemo,
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (default is $HOME/.pcg128.yaml)")
	flags.String("log-level", "info", "log level")
	flags.Bool("log-json", false, "log json lines instead of console output")
	flags.Bool("no-color", false, "disable colors in console logs (default when stderr is not a terminal)")
	flags.String("state", "", "reseed with this 128 bit initial state")
	flags.String("seq", "", "reseed with this 128 bit sequence")
	flags.String("key", "", "seed from the hash of this string")
	flags.String("skip", "0", "jump this many steps ahead before sampling")
	flags.Uint64("min", 0, "inclusive lower bound for range")
	flags.Uint64("max", 100, "exclusive upper bound for range")
	flags.Float64("ev", 1, "expected value for poisson")
	flags.IntP("count", "n", 10, "number of values")
	flags.Bool("peek", false, "peek at values without advancing the generator")
	a.bindErr = a.v.BindPFlags(flags)

	root.AddCommand(
		newSampleCmd(a),
		newSummaryCmd(a),
	)

	return root
}

// setup reads the config and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if a.bindErr != nil {
		return cmdError.Wrap(a.bindErr)
	}

	a.v.SetEnvPrefix("PCG128")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if cfgFile := a.v.GetString("config"); cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return cmdError.Wrap(err)
		}
		a.v.AddConfigPath(home)
		a.v.SetConfigName(".pcg128")
		a.v.SetConfigType("yaml")
	}

	readErr := a.v.ReadInConfig()

	stderr := cmd.ErrOrStderr()
	log, err := logger.New(stderr, logger.Options{
		Level:   a.v.GetString("log-level"),
		JSON:    a.v.GetBool("log-json"),
		NoColor: a.v.GetBool("no-color") || !isTerminal(stderr),
	})
	if err != nil {
		return err
	}
	a.log = log

	switch {
	case readErr == nil:
		a.log.Debug().Str("file", a.v.ConfigFileUsed()).Msg("using config file")
	case a.v.GetString("config") != "":
		return cmdError.Wrap(readErr)
	default:
		if _, ok := readErr.(viper.ConfigFileNotFoundError); !ok {
			a.log.Warn().Err(readErr).Msg("unable to read config file")
		}
	}

	return nil
}

// isTerminal returns true if w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// gen builds the generator described by the flags.
func (a *app) gen() (g pcg128.Gen, err error) {
	switch key, state, seq := a.v.GetString("key"), a.v.GetString("state"), a.v.GetString("seq"); {
	case key != "":
		g = pcg128.FromString(key)
		a.log.Debug().Str("key", key).Msg("seeded from key")

	case state != "" || seq != "":
		initState, err := parseOptional(state)
		if err != nil {
			return g, cmdError.New("state: %v", err)
		}
		initSeq, err := parseOptional(seq)
		if err != nil {
			return g, cmdError.New("seq: %v", err)
		}
		g = pcg128.Seeded(initState, initSeq)
		a.log.Debug().Stringer("state", initState).Stringer("seq", initSeq).Msg("reseeded")

	default:
		g = pcg128.New()
	}

	skip, err := parseOptional(a.v.GetString("skip"))
	if err != nil {
		return g, cmdError.New("skip: %v", err)
	}
	g.Skip(skip)

	state, inc := g.State()
	a.log.Debug().
		Stringer("skip", skip).
		Stringer("state", state).
		Stringer("inc", inc).
		Msg("generator ready")

	return g, nil
}

func parseOptional(s string) (uint128.T, error) {
	if s == "" {
		return uint128.Zero, nil
	}
	return uint128.Parse(s)
}

// runDemo prints three values from every sampler, each from a fresh
// generator.
func (a *app) runDemo(cmd *cobra.Command, args []string) error {
	base, err := a.gen()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	g := base
	for i := 0; i < 3; i++ {
		fmt.Fprintf(out, "(%2d) rng.Rand():                   %016x\n", i, g.Rand())
	}
	g = base
	for i := 0; i < 3; i++ {
		fmt.Fprintf(out, "(%2d) rng.RandRange(64, 128):       %d\n", i, g.RandRange(64, 128))
	}
	g = base
	for i := 0; i < 3; i++ {
		fmt.Fprintf(out, "(%2d) rng.UniformDouble():          %v\n", i, g.UniformDouble())
	}
	g = base
	for i := 0; i < 3; i++ {
		fmt.Fprintf(out, "(%2d) rng.AllDoubles():             %v\n", i, g.AllDoubles())
	}
	g = base
	for i := 0; i < 3; i++ {
		fmt.Fprintf(out, "(%2d) rng.Gaussian():               %v\n", i, g.Gaussian())
	}
	g = base
	for i := 0; i < 3; i++ {
		fmt.Fprintf(out, "(%2d) rng.Poisson(1.33333333):      %d\n", i, g.Poisson(1.33333333))
	}

	return nil
}
