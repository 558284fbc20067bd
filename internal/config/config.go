// Package config provides the rule-set definitions of the supported chess
// variants and the configuration of the chessrules command.
package config

import (
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Verbosity levels for diagnostics written to LogFile.
const (
	Silent     = 0 // errors only
	Summary    = 1 // one line per command
	Commentary = 2 // per-move running commentary
)

// Config holds all program configuration.
type Config struct {
	Verbosity int

	// Variant is the rule set positions are created with.
	Variant *Variant

	Output OutputConfig
	Perft  PerftConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Summary,
		Variant:    Standard(),
		Output:     *NewOutputConfig(),
		Perft:      *NewPerftConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the stream results are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the stream diagnostics are written to.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	if c.Verbosity < Silent || c.Verbosity > Commentary {
		return errors.Wrapf(errors.ErrInvalidConfig, "verbosity %d out of range %d-%d",
			c.Verbosity, Silent, Commentary)
	}
	if c.Variant == nil {
		return errors.Wrap(errors.ErrInvalidConfig, "no variant selected")
	}
	if err := c.Variant.Validate(); err != nil {
		return err
	}
	return c.Perft.Validate()
}

// FenNotation returns the FEN dialect output should use: the override if
// one is set, otherwise the variant's own.
func (c *Config) FenNotation() FenNotation {
	if c.Output.ForceFenNotation {
		return c.Output.FenNotation
	}
	if c.Variant == nil {
		return XFen
	}
	return c.Variant.FenNotation
}
