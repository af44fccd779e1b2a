// Package logger configures the zerolog logger used by the command line
// tools.
package logger

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("logger")

// ansi color codes.
const (
	colorRed     = 31
	colorGreen   = 32
	colorYellow  = 33
	colorMagenta = 35
)

// levelStyle is how a level is shown by the console writer.
type levelStyle struct {
	abbrev string
	color  int
	bold   bool
}

var levelStyles = map[string]levelStyle{
	"trace": {"TRC", colorMagenta, false},
	"debug": {"DBG", colorYellow, false},
	"info":  {"INF", colorGreen, false},
	"warn":  {"WRN", colorRed, false},
	"error": {"ERR", colorRed, true},
	"fatal": {"FTL", colorRed, true},
	"panic": {"PNC", colorRed, true},
}

// Options controls how New builds a logger.
type Options struct {
	Level   string // a zerolog level name. empty means info.
	JSON    bool   // write json lines instead of console output
	NoColor bool
}

// New returns a logger writing to w.
func New(w io.Writer, opts Options) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if opts.Level != "" {
		var err error
		level, err = zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return zerolog.Nop(), Error.Wrap(err)
		}
	}

	if opts.JSON {
		return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
	}

	return zerolog.New(zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
		cw.Out = w
		cw.NoColor = opts.NoColor
		cw.FormatLevel = formatLevel(opts.NoColor)
		cw.TimeFormat = "15:04:05.000"
	})).Level(level).With().Timestamp().Logger(), nil
}

// formatLevel returns a zerolog formatter that renders levels as short
// colored tags. Unknown levels render as "???".
func formatLevel(noColor bool) zerolog.Formatter {
	return func(i interface{}) string {
		name, _ := i.(string)
		style, ok := levelStyles[name]
		if !ok {
			style = levelStyle{abbrev: "???", bold: true}
		}
		if noColor {
			return style.abbrev
		}

		out := style.abbrev
		if style.color != 0 {
			out = fmt.Sprintf("\x1b[%dm%s\x1b[0m", style.color, out)
		}
		if style.bold {
			out = "\x1b[1m" + out + "\x1b[0m"
		}
		return out
	}
}
