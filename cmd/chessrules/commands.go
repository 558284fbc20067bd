// commands.go - Position set-up, move application and reports
package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/perft"
)

// run builds the position described by fen, applies moves and writes the
// requested reports to cfg.OutputFile.
func run(ctx context.Context, cfg *config.Config, fen, moves string) error {
	p, err := engine.NewPositionFromFEN(cfg.Variant, fen)
	if err != nil {
		return err
	}
	if cfg.Verbosity >= config.Summary {
		fmt.Fprintf(cfg.LogFile, "Variant %s, start %s\n", cfg.Variant.Name, p.FENWithNotation(cfg.FenNotation()))
	}

	if err := applyMoves(cfg, p, moves); err != nil {
		return err
	}

	if cfg.Output.ShowFEN {
		fmt.Fprintln(cfg.OutputFile, p.FENWithNotation(cfg.FenNotation()))
	}
	if cfg.Output.ListLegal {
		writeLegalMoves(cfg, p)
	}
	if cfg.Output.ShowResult {
		writeResult(cfg, p)
	}
	if cfg.Perft.Depth > 0 {
		return runPerft(ctx, cfg, p)
	}
	return nil
}

// parseMove reads one move in the configured notation.
func parseMove(cfg *config.Config, p *engine.Position, text string) (chess.Move, error) {
	if cfg.Output.Notation == config.LAN {
		return p.MoveFromLAN(text)
	}
	return p.MoveFromSAN(text)
}

// formatMove writes one move in the configured notation.
func formatMove(cfg *config.Config, p *engine.Position, m chess.Move) string {
	if cfg.Output.Notation == config.LAN {
		return p.MoveToLAN(m)
	}
	return p.MoveToSAN(m)
}

// applyMoves plays the space-separated moves of text in order. A move that
// fails to parse is reported as a MoveError carrying its ply and text; the
// moves before it stay applied.
func applyMoves(cfg *config.Config, p *engine.Position, text string) error {
	for _, tok := range strings.Fields(text) {
		m, err := parseMove(cfg, p, tok)
		if err != nil {
			var merr *errors.MoveError
			if errors.As(err, &merr) {
				return err
			}
			return &errors.MoveError{Err: err, Ply: p.Ply() + 1, MoveText: tok}
		}

		if cfg.Verbosity >= config.Commentary {
			fmt.Fprintf(cfg.LogFile, "%d. %s %s\n", p.Ply()/2+1, p.SideToMove(), formatMove(cfg, p, m))
		}
		p.MakeMove(m)
	}

	if cfg.Verbosity >= config.Summary && text != "" {
		fmt.Fprintf(cfg.LogFile, "Applied %d move(s)\n", p.Ply())
	}
	return nil
}

// writeLegalMoves prints the sorted legal moves of p on one line.
func writeLegalMoves(cfg *config.Config, p *engine.Position) {
	moves := p.LegalMoves()
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, formatMove(cfg, p, m))
	}
	slices.Sort(out)
	fmt.Fprintf(cfg.OutputFile, "%d legal move(s): %s\n", len(out), strings.Join(out, " "))
}

// writeResult prints the result in PGN form with its description.
func writeResult(cfg *config.Config, p *engine.Position) {
	r := p.Result()
	fmt.Fprintf(cfg.OutputFile, "%s {%s}\n", r, r.Description())
}

// runPerft counts move paths and, when asked, checks them against the
// reference generator.
func runPerft(ctx context.Context, cfg *config.Config, p *engine.Position) error {
	depth := cfg.Perft.Depth
	start := time.Now()

	var nodes uint64
	if cfg.Perft.Divide {
		entries, err := divideEntries(ctx, cfg, p, depth)
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Fprintf(cfg.OutputFile, "%s: %d\n", e.LAN, e.Nodes)
		}
		fmt.Fprintln(cfg.OutputFile)
		nodes = perft.Total(entries)
	} else {
		nodes = perft.Count(p, depth)
	}
	fmt.Fprintf(cfg.OutputFile, "Nodes searched: %d\n", nodes)

	if cfg.Verbosity >= config.Summary {
		elapsed := time.Since(start)
		fmt.Fprintf(cfg.LogFile, "perft(%d) = %d in %v\n", depth, nodes, elapsed.Round(time.Millisecond))
	}

	if cfg.Perft.Verify {
		return verifyPerft(cfg, p, depth)
	}
	return nil
}

// divideEntries runs divide serially or on the worker pool.
func divideEntries(ctx context.Context, cfg *config.Config, p *engine.Position, depth int) ([]perft.Entry, error) {
	if cfg.Perft.Workers <= 1 {
		return perft.Divide(p, depth), nil
	}
	return perft.ParallelDivide(ctx, p, depth, cfg.Perft.Workers)
}

// verifyPerft compares the divide of p with the reference generator and
// logs every disagreement.
func verifyPerft(cfg *config.Config, p *engine.Position, depth int) error {
	mismatches, err := perft.Verify(p, depth)
	if err != nil {
		return err
	}
	for _, m := range mismatches {
		fmt.Fprintf(cfg.LogFile, "Mismatch %s\n", m)
	}
	if len(mismatches) > 0 {
		return fmt.Errorf("perft(%d) disagrees with the reference generator in %d root move(s)", depth, len(mismatches))
	}
	if cfg.Verbosity >= config.Summary {
		fmt.Fprintf(cfg.LogFile, "Verified against the reference generator\n")
	}
	return nil
}
