package perft

import (
	"fmt"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Mismatch is a root move whose count differs from the reference
// generator. A move missing on one side has a zero count there.
type Mismatch struct {
	LAN       string
	Nodes     uint64
	Reference uint64
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: %d, reference %d", m.LAN, m.Nodes, m.Reference)
}

// ReferenceSupported reports whether the reference generator can count p:
// orthodox pieces on an 8x8 board, castling from the usual squares and
// castling written as a king move in LAN.
func ReferenceSupported(p *engine.Position) bool {
	v := p.Variant()
	std := config.Standard()
	return v.Width == 8 && v.Height == 8 &&
		v.KingCanCapture && v.UpperCaseSide == chess.White && !v.Random &&
		slices.Equal(v.Pieces, std.Pieces) &&
		p.HasStandardCastling()
}

// ReferenceCount counts the leaf nodes of fen at depth with dragontoothmg.
// fen must describe an orthodox chess position.
func ReferenceCount(fen string, depth int) uint64 {
	b := dragontoothmg.ParseFen(fen)
	return referenceCount(&b, depth)
}

func referenceCount(b *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		undo := b.Apply(m)
		nodes += referenceCount(b, depth-1)
		undo()
	}
	return nodes
}

// ReferenceDivide returns the dragontoothmg count below each root move of
// fen, keyed by LAN.
func ReferenceDivide(fen string, depth int) map[string]uint64 {
	b := dragontoothmg.ParseFen(fen)
	out := make(map[string]uint64)
	if depth <= 0 {
		return out
	}
	for _, m := range b.GenerateLegalMoves() {
		undo := b.Apply(m)
		out[m.String()] = referenceCount(&b, depth-1)
		undo()
	}
	return out
}

// Verify divides p at depth and compares every root move with the
// reference generator. It returns the mismatches sorted by LAN; an empty
// slice means the generators agree.
func Verify(p *engine.Position, depth int) ([]Mismatch, error) {
	if !ReferenceSupported(p) {
		return nil, errors.Wrapf(errors.ErrInvalidConfig,
			"variant %q position is outside the reference generator's rules", p.Variant().Name)
	}

	ref := ReferenceDivide(p.FENWithNotation(config.XFen), depth)
	ours := make(map[string]uint64)
	for _, e := range Divide(p, depth) {
		ours[e.LAN] = e.Nodes
	}

	keys := make([]string, 0, len(ours))
	for lan := range ours {
		keys = append(keys, lan)
	}
	for lan := range ref {
		if _, ok := ours[lan]; !ok {
			keys = append(keys, lan)
		}
	}
	slices.Sort(keys)

	var mismatches []Mismatch
	for _, lan := range keys {
		if ours[lan] != ref[lan] {
			mismatches = append(mismatches, Mismatch{LAN: lan, Nodes: ours[lan], Reference: ref[lan]})
		}
	}
	return mismatches, nil
}
