// Command ecef2eci converts an Earth-fixed (ECEF) position to the inertial
// (ECI) frame at a UTC epoch using a simplified Greenwich sidereal rotation.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/CozmicSnipez/aoe-4414-a04-q19/internal/astro"
	"github.com/CozmicSnipez/aoe-4414-a04-q19/internal/cli"
	"github.com/CozmicSnipez/aoe-4414-a04-q19/internal/logging"
	"github.com/CozmicSnipez/aoe-4414-a04-q19/internal/ui"
)

func main() {
	prog := filepath.Base(os.Args[0])
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	if err := run(prog, os.Args[1:], os.Stdout, os.Stderr, isTTY); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "%s: %v\n", prog, err)
		os.Exit(1)
	}
}

// run parses args and performs one conversion, writing results to stdout and
// logs to stderr. isTTY reports whether stdout is a terminal.
func run(prog string, args []string, stdout, stderr io.Writer, isTTY bool) error {
	cfg, shouldExit, err := cli.Parse(prog, args, stdout, stderr)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := logging.New(stderr, logging.ParseLevel(cfg.LogLevel))

	if cfg.Live {
		if !isTTY {
			return errors.New("-live needs a terminal on stdout")
		}
		logger.Info("starting live view", "epoch", cfg.Time.String())
		p := tea.NewProgram(ui.NewLiveModel(cfg.Time, cfg.ECEF, logger), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("live view: %w", err)
		}
		return nil
	}

	res := astro.Convert(cfg.Time, cfg.ECEF)
	logger.Debug("converted", "epoch", res.Time.String(), "jd", res.JD, "gst_rad", res.GST)

	if cfg.Summary {
		fmt.Fprint(stdout, ui.RenderSummary(res))
		return nil
	}

	fmt.Fprintln(stdout, res.ECI.X)
	fmt.Fprintln(stdout, res.ECI.Y)
	fmt.Fprintln(stdout, res.ECI.Z)
	return nil
}
