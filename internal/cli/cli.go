// Package cli parses command-line arguments into a Config and carries
// process-level concerns like exit codes.
package cli

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/CozmicSnipez/aoe-4414-a04-q19/internal/astro"
	"github.com/CozmicSnipez/aoe-4414-a04-q19/internal/logging"
	"github.com/CozmicSnipez/aoe-4414-a04-q19/internal/version"
)

// positionalNames lists the positional values in command-line order.
var positionalNames = []string{
	"year", "month", "day", "hour", "minute", "second",
	"ecef_x_km", "ecef_y_km", "ecef_z_km",
}

// ExitError is an error that carries a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Config is the parsed command line.
type Config struct {
	LogLevel string
	Strict   bool
	Summary  bool
	Live     bool

	Time astro.CalendarTime
	ECEF astro.Vec3
}

// UsageLine returns the one-line usage message for the given program name.
func UsageLine(prog string) string {
	return fmt.Sprintf("Usage: %s year month day hour minute second ecef_x_km ecef_y_km ecef_z_km", prog)
}

// Parse processes command-line arguments (without the program name). It
// returns the Config, whether the program should exit cleanly without doing
// any work, or an error. Usage and version text go to out, flag diagnostics
// to errOut.
//
// Flags must come before the positional values. An argument that parses as a
// number ends flag parsing, so negative coordinates are never mistaken for
// flags; "--" ends it explicitly. If the flags do not parse, every argument
// is treated as a positional value.
func Parse(prog string, args []string, out, errOut io.Writer) (*Config, bool, error) {
	fs := flag.NewFlagSet(prog, flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.Usage = func() {}

	logLevel := fs.String("log-level", "warn", "Log level (debug, info, warn, error)")
	strict := fs.Bool("strict", false, "Reject out-of-range calendar fields")
	summary := fs.Bool("summary", false, "Print a labelled report instead of three bare values")
	live := fs.Bool("live", false, "Show a live view advancing the epoch in real time")
	showVersion := fs.Bool("version", false, "Print version and exit")

	positional := args
	if len(args) > 0 && !isNumber(args[0]) {
		err := fs.Parse(args)
		switch {
		case err == flag.ErrHelp:
			fmt.Fprintln(out, UsageLine(prog))
			fmt.Fprintln(out, "\nOptions:")
			fs.SetOutput(out)
			fs.PrintDefaults()
			return nil, true, nil
		case err != nil:
			// Flags set before the bad token are dropped along with it.
			*logLevel, *strict, *summary, *live, *showVersion = "warn", false, false, false, false
		default:
			positional = fs.Args()
		}
	}

	if *showVersion {
		fmt.Fprintf(out, "%s v%s\n", prog, version.Version)
		return nil, true, nil
	}

	if len(positional) != len(positionalNames) {
		fmt.Fprintln(out, UsageLine(prog))
		return nil, true, nil
	}

	if !logging.ValidLevel(*logLevel) {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	if *live && *summary {
		return nil, false, &ExitError{Code: 2, Message: "-live and -summary cannot be combined"}
	}

	cfg := &Config{
		LogLevel: *logLevel,
		Strict:   *strict,
		Summary:  *summary,
		Live:     *live,
	}

	ints := make([]int, 5)
	for i := range ints {
		v, err := strconv.Atoi(positional[i])
		if err != nil {
			return nil, false, fmt.Errorf("invalid %s: %w", positionalNames[i], err)
		}
		ints[i] = v
	}

	floats := make([]float64, 4)
	for i := range floats {
		idx := len(ints) + i
		v, err := strconv.ParseFloat(positional[idx], 64)
		if err != nil {
			return nil, false, fmt.Errorf("invalid %s: %w", positionalNames[idx], err)
		}
		floats[i] = v
	}

	cfg.Time = astro.CalendarTime{
		Year:   ints[0],
		Month:  ints[1],
		Day:    ints[2],
		Hour:   ints[3],
		Minute: ints[4],
		Second: floats[0],
	}
	cfg.ECEF = astro.Vec3{X: floats[1], Y: floats[2], Z: floats[3]}

	if cfg.Strict {
		if err := cfg.Time.Validate(); err != nil {
			return nil, false, fmt.Errorf("invalid timestamp: %w", err)
		}
	}

	return cfg, false, nil
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
