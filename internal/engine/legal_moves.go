package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// IsLegal reports whether a pseudo-legal move leaves the mover's king safe.
// Castling also requires that the king does not start on, pass over or
// land on an attacked square.
func (p *Position) IsLegal(m chess.Move) bool {
	side := p.side
	if m.IsNull() {
		return false
	}
	if !p.variant.KingCanCapture && m.Source == p.kings[side] && p.isCapture(m) {
		return false
	}
	if wing := p.castlingWing(m); wing != chess.NoCastlingSide && !p.castlingPathSafe(wing) {
		return false
	}

	p.MakeMove(m)
	legal := !p.InCheck(side)
	p.UnmakeMove()
	return legal
}

// IsLegalMove reports whether an arbitrary move is one of the legal moves
// of the position.
func (p *Position) IsLegalMove(m chess.Move) bool {
	if m.IsNull() || m.IsDrop() {
		return false
	}
	piece := p.board.Get(m.Source)
	if piece.Side() != p.side {
		return false
	}
	moves := p.GenerateMovesForPiece(piece.Type(), m.Source)
	return slices.Contains(moves, m) && p.IsLegal(m)
}

// LegalMoves returns all legal moves of the side to move.
func (p *Position) LegalMoves() []chess.Move {
	moves := p.PseudoLegalMoves()
	legal := moves[:0]
	for _, m := range moves {
		if p.IsLegal(m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// CanMove returns true if the side to move has at least one legal move.
func (p *Position) CanMove() bool {
	for _, m := range p.PseudoLegalMoves() {
		if p.IsLegal(m) {
			return true
		}
	}
	return false
}
