// Package commands implements CLI command handlers for expknap.
package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/katalvlaran/expknap/config"
	"github.com/katalvlaran/expknap/instance"
)

// ErrArgs indicates malformed positional arguments.
var ErrArgs = errors.New("invalid arguments")

// GlobalOptions holds the persistent root flags.
type GlobalOptions struct {
	ConfigPath string
	Verbose    bool
	Quiet      bool

	// logOutput overrides stderr in tests.
	logOutput io.Writer
}

// load reads the configuration and builds the logger. --verbose forces
// debug logging, --quiet limits it to errors.
func (g *GlobalOptions) load() (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadConfig(g.ConfigPath)
	if err != nil {
		return nil, nil, err
	}

	switch {
	case g.Quiet:
		cfg.Logging.Level = "error"
	case g.Verbose:
		cfg.Logging.Level = "debug"
	}

	w := g.logOutput
	if w == nil {
		w = os.Stderr
	}

	return cfg, cfg.Logging.NewLogger(w), nil
}

// parseShape parses the "n r type" positional triple.
func parseShape(args []string) (n, r int, typ instance.Type, err error) {
	n, err = strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: n %q: %w", ErrArgs, args[0], err)
	}

	r, err = strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: r %q: %w", ErrArgs, args[1], err)
	}

	typ, err = instance.ParseType(args[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %w", ErrArgs, err)
	}

	return n, r, typ, nil
}
