// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

var (
	// Position options
	variantName = flag.String("variant", "standard", "Rule set: standard, chess960, capablanca")
	fenString   = flag.String("fen", "", "Start from this FEN (default: the variant's starting position)")
	chess960Num = flag.Int("chess960", -1, "Start from Chess960 position N (0-959); implies -variant chess960")

	// Move input
	moveList = flag.String("moves", "", "Space-separated moves to apply to the start position")
	lanMode  = flag.Bool("lan", false, "Read and write moves in long algebraic notation (e2e4)")

	// Reports
	listLegal  = flag.Bool("legal", false, "List the legal moves of the final position")
	showResult = flag.Bool("result", false, "Print the game result of the final position")
	noFEN      = flag.Bool("nofen", false, "Don't print the FEN of the final position")
	shredder   = flag.Bool("shredder", false, "Write castling rights in Shredder-FEN")

	// Perft
	perftDepth = flag.Int("perft", 0, "Count move paths to this depth")
	divide     = flag.Bool("divide", false, "With -perft, print the count below each root move")
	workers    = flag.Int("workers", 0, "Goroutines for -divide (0 = one per CPU core)")
	verify     = flag.Bool("verify", false, "With -perft, compare counts against the reference generator")

	// Output and logging
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	logFile    = flag.String("l", "", "Write diagnostics to log file")
	verbosity  = flag.Int("v", config.Summary, "Diagnostics level: 0 silent, 1 summary, 2 per-move commentary")
	quiet      = flag.Bool("s", false, "Silent mode (same as -v 0)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration and
// validates the result.
func applyFlags(cfg *config.Config) error {
	if err := applyVariantFlags(cfg); err != nil {
		return err
	}
	applyOutputFlags(cfg)
	applyPerftFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = config.Silent
	}
	return cfg.Validate()
}

// applyVariantFlags selects the rule set.
func applyVariantFlags(cfg *config.Config) error {
	name := *variantName
	if *chess960Num >= 0 {
		name = "chess960"
	}
	v, err := config.VariantByName(name)
	if err != nil {
		return err
	}
	cfg.Variant = v
	return nil
}

// applyOutputFlags configures notation and reports.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.Notation = config.SAN
	if *lanMode {
		cfg.Output.Notation = config.LAN
	}
	if *shredder {
		cfg.Output.FenNotation = config.ShredderFen
		cfg.Output.ForceFenNotation = true
	}
	cfg.Output.ShowFEN = !*noFEN
	cfg.Output.ListLegal = *listLegal
	cfg.Output.ShowResult = *showResult
}

// applyPerftFlags configures move-path counting.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	cfg.Perft.Divide = *divide
	cfg.Perft.Verify = *verify
	if *workers > 0 {
		cfg.Perft.Workers = *workers
	}
}

// startingFEN returns the FEN the command starts from.
func startingFEN(cfg *config.Config) (string, error) {
	if *chess960Num >= 0 {
		if *fenString != "" {
			return "", errors.Wrap(errors.ErrInvalidConfig, "-fen and -chess960 are mutually exclusive")
		}
		return engine.Chess960FEN(*chess960Num)
	}
	if *fenString != "" {
		return *fenString, nil
	}
	return cfg.Variant.StartingFEN, nil
}
