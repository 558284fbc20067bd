// Package perft enumerates move paths of a position to a fixed depth.
// Counts are the standard check for a move generator: they are compared
// against published numbers and against an independent generator.
package perft

import (
	"context"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// Entry is the node count below one root move.
type Entry struct {
	Move  chess.Move
	LAN   string
	Nodes uint64
}

// Count returns the number of leaf nodes of the legal move tree of p at
// depth plies. p is left unchanged.
func Count(p *engine.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := p.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		p.MakeMove(m)
		nodes += Count(p, depth-1)
		p.UnmakeMove()
	}
	return nodes
}

// Divide returns the node count below every root move, sorted by LAN.
func Divide(p *engine.Position, depth int) []Entry {
	if depth <= 0 {
		return nil
	}
	moves := p.LegalMoves()
	entries := make([]Entry, 0, len(moves))
	for _, m := range moves {
		lan := p.MoveToLAN(m)
		p.MakeMove(m)
		entries = append(entries, Entry{Move: m, LAN: lan, Nodes: Count(p, depth-1)})
		p.UnmakeMove()
	}
	sortEntries(entries)
	return entries
}

// ParallelDivide is Divide with the root moves spread over workers
// goroutines. Each root move is counted on its own clone of p, so p is
// never shared. Cancelling ctx stops outstanding root moves and returns
// the context's error.
func ParallelDivide(ctx context.Context, p *engine.Position, depth, workers int) ([]Entry, error) {
	if depth <= 0 {
		return nil, nil
	}
	moves := p.LegalMoves()
	if workers > len(moves) {
		workers = len(moves)
	}

	pool := worker.NewPool(func(item worker.WorkItem) worker.ProcessResult {
		if err := ctx.Err(); err != nil {
			return worker.ProcessResult{Move: item.Move, Index: item.Index, Error: err}
		}
		return worker.ProcessResult{
			Move:  item.Move,
			Index: item.Index,
			Nodes: Count(item.Position, item.Depth),
		}
	}, worker.WithWorkers(workers), worker.WithBufferSize(len(moves)+1))
	pool.Start()

	entries := make([]Entry, len(moves))
	for i, m := range moves {
		entries[i] = Entry{Move: m, LAN: p.MoveToLAN(m)}
		child := p.Clone()
		child.MakeMove(m)
		pool.Submit(worker.WorkItem{Position: child, Move: m, Depth: depth - 1, Index: i})
	}
	go pool.Close()

	var firstErr error
	for r := range pool.Results() {
		if r.Error != nil {
			if firstErr == nil {
				firstErr = r.Error
				pool.Stop()
			}
			continue
		}
		entries[r.Index].Nodes = r.Nodes
	}
	if firstErr == nil {
		firstErr = ctx.Err()
	}
	if firstErr != nil {
		return nil, firstErr
	}

	sortEntries(entries)
	return entries, nil
}

// Total sums the node counts of entries.
func Total(entries []Entry) uint64 {
	var n uint64
	for _, e := range entries {
		n += e.Nodes
	}
	return n
}

func sortEntries(entries []Entry) {
	slices.SortFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.LAN, b.LAN)
	})
}
