// Package config loads the settings of the expknap command from defaults,
// an optional YAML file and EXPKNAP_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/katalvlaran/expknap/instance"
	"github.com/katalvlaran/expknap/knapsack"
)

// Config is the top-level configuration struct.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Run     RunConfig     `mapstructure:"run"`
	Solver  SolverConfig  `mapstructure:"solver"`
	Trace   TraceConfig   `mapstructure:"trace"`
	Logging LoggingConfig `mapstructure:"logging"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// RunConfig describes one benchmark series. Instance v (1-based) is drawn
// with seed Seed+v.
type RunConfig struct {
	Items int    `mapstructure:"items"`
	Range int    `mapstructure:"range"`
	Type  string `mapstructure:"type"`
	Tests int    `mapstructure:"tests"`
	Seed  int64  `mapstructure:"seed"`
}

// SolverConfig mirrors knapsack.Options.
type SolverConfig struct {
	NodeLimit  int64         `mapstructure:"node_limit"`
	TimeLimit  time.Duration `mapstructure:"time_limit"`
	StackDepth int           `mapstructure:"stack_depth"`
	Verify     bool          `mapstructure:"verify"`
}

// TraceConfig controls the appended YAML trace of run summaries.
type TraceConfig struct {
	Path    string `mapstructure:"path"`
	Enabled bool   `mapstructure:"enabled"`
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// MetricsConfig toggles collection of solver metrics.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Default values.
const (
	DefaultRunItems       = 1000
	DefaultRunRange       = 1000
	DefaultRunType        = "uncorrelated"
	DefaultRunTests       = 50
	DefaultRunSeed        = 0
	DefaultSolverVerify   = true
	DefaultTracePath      = "trace.yaml"
	DefaultTraceEnabled   = false
	DefaultLoggingLevel   = "info"
	DefaultLoggingFormat  = "text"
	DefaultMetricsEnabled = false
)

// Logging formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Sentinel errors for configuration validation.
var (
	// ErrInvalidItems indicates run.items is not positive.
	ErrInvalidItems = errors.New("run.items must be positive")
	// ErrInvalidRange indicates run.range is not positive.
	ErrInvalidRange = errors.New("run.range must be positive")
	// ErrInvalidType indicates run.type names no instance family.
	ErrInvalidType = errors.New("run.type must be 1-4 or a family name")
	// ErrInvalidTests indicates run.tests is not positive.
	ErrInvalidTests = errors.New("run.tests must be positive")
	// ErrInvalidSeed indicates run.seed is negative.
	ErrInvalidSeed = errors.New("run.seed must be non-negative")
	// ErrInvalidNodeLimit indicates solver.node_limit is negative.
	ErrInvalidNodeLimit = errors.New("solver.node_limit must be non-negative")
	// ErrInvalidTimeLimit indicates solver.time_limit is negative.
	ErrInvalidTimeLimit = errors.New("solver.time_limit must be non-negative")
	// ErrInvalidStackDepth indicates solver.stack_depth is negative.
	ErrInvalidStackDepth = errors.New("solver.stack_depth must be non-negative")
	// ErrInvalidTracePath indicates tracing is enabled without a path.
	ErrInvalidTracePath = errors.New("trace.path must be set when tracing is enabled")
	// ErrInvalidLogLevel indicates an unknown logging.level.
	ErrInvalidLogLevel = errors.New("logging.level must be debug, info, warn or error")
	// ErrInvalidLogFormat indicates an unknown logging.format.
	ErrInvalidLogFormat = errors.New("logging.format must be text or json")
)

// Validate checks Config invariants and returns the first error found.
func (c *Config) Validate() error {
	runErr := c.validateRun()
	if runErr != nil {
		return runErr
	}

	solverErr := c.validateSolver()
	if solverErr != nil {
		return solverErr
	}

	if c.Trace.Enabled && strings.TrimSpace(c.Trace.Path) == "" {
		return ErrInvalidTracePath
	}

	if _, err := parseLevel(c.Logging.Level); err != nil {
		return err
	}

	switch strings.ToLower(c.Logging.Format) {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Logging.Format)
	}

	return nil
}

func (c *Config) validateRun() error {
	if c.Run.Items < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidItems, c.Run.Items)
	}

	if c.Run.Range < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidRange, c.Run.Range)
	}

	if _, err := instance.ParseType(c.Run.Type); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidType, err)
	}

	if c.Run.Tests < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidTests, c.Run.Tests)
	}

	if c.Run.Seed < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSeed, c.Run.Seed)
	}

	return nil
}

func (c *Config) validateSolver() error {
	if c.Solver.NodeLimit < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidNodeLimit, c.Solver.NodeLimit)
	}

	if c.Solver.TimeLimit < 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTimeLimit, c.Solver.TimeLimit)
	}

	if c.Solver.StackDepth < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidStackDepth, c.Solver.StackDepth)
	}

	return nil
}

// InstanceType returns the parsed run.type. Call after Validate.
func (r RunConfig) InstanceType() instance.Type {
	t, _ := instance.ParseType(r.Type)
	return t
}

// Options converts the solver section into knapsack options.
func (s SolverConfig) Options() []knapsack.Option {
	return []knapsack.Option{
		knapsack.WithNodeLimit(s.NodeLimit),
		knapsack.WithTimeLimit(s.TimeLimit),
		knapsack.WithStackDepth(s.StackDepth),
		knapsack.WithVerify(s.Verify),
	}
}

// NewLogger builds a slog.Logger writing to w. Call after Validate.
func (l LoggingConfig) NewLogger(w io.Writer) *slog.Logger {
	level, _ := parseLevel(l.Level)
	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(l.Format, FormatJSON) {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, s)
	}

	return level, nil
}
