package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MaxPerftDepth bounds the depth accepted on the command line.
const MaxPerftDepth = 12

// PerftConfig holds settings for move-path enumeration.
type PerftConfig struct {
	// Depth is the number of plies to enumerate; 0 disables perft.
	Depth int

	// Divide prints the node count below each root move.
	Divide bool

	// Workers is the number of goroutines used for the root moves.
	// 1 runs serially.
	Workers int

	// Verify cross-checks the counts against the reference generator.
	Verify bool
}

// NewPerftConfig creates a PerftConfig with default values.
// Perft is disabled by default.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers: runtime.NumCPU(),
	}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 || p.Depth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d out of range 0-%d: %w",
			p.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("worker count (%d) must be positive: %w",
			p.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
