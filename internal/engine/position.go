// Package engine provides chess move generation, validation and board
// manipulation for any variant described by a config.Variant.
package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// Position is a board together with the state needed to continue a game
// from it: side to move, castling rights, en-passant square, the
// reversible-move counter and the history of applied moves.
//
// A Position is not safe for concurrent use. Use Clone to hand a copy to
// another goroutine.
type Position struct {
	variant  *config.Variant
	geometry chess.Geometry
	zobrist  *hashing.ZobristTable
	board    *chess.Board

	// movement caches the variant's piece table, indexed by piece type
	movement   [chess.NumPieceTypes]chess.Movement
	promotions []chess.PieceType
	arwidth    int

	side chess.Side
	// sign is +1 when White is to move and -1 when Black is to move
	sign int
	// castling holds the rook square of each right, 0 when the right is gone
	castling   [2][2]chess.Square
	kings      [2]chess.Square
	enpassant  chess.Square
	reversible int

	history []undoRecord
	key     uint64
}

// newPosition creates an empty board for the variant with White to move.
func newPosition(v *config.Variant) *Position {
	g := v.Geometry()
	p := &Position{
		variant:    v,
		geometry:   g,
		zobrist:    hashing.Tables(g),
		board:      chess.NewBoard(g),
		promotions: v.PromotionTypes(),
		arwidth:    g.ArrayWidth(),
		side:       chess.White,
		sign:       1,
	}
	for _, d := range v.Pieces {
		p.movement[d.Type] = d.Movement
	}
	return p
}

// Clone returns an independent deep copy of the position, history included.
func (p *Position) Clone() *Position {
	c := *p
	c.board = p.board.Copy()
	c.history = slices.Clone(p.history)
	return &c
}

// Variant returns the rule set of the position.
func (p *Position) Variant() *config.Variant {
	return p.variant
}

// Geometry returns the board geometry.
func (p *Position) Geometry() chess.Geometry {
	return p.geometry
}

// SideToMove returns the side whose turn it is.
func (p *Position) SideToMove() chess.Side {
	return p.side
}

// PieceAt returns the piece on a square. Off-board squares hold Wall.
func (p *Position) PieceAt(sq chess.Square) chess.Piece {
	return p.board.Get(sq)
}

// KingSquare returns the square of side's king.
func (p *Position) KingSquare(side chess.Side) chess.Square {
	return p.kings[side]
}

// EnPassantSquare returns the current en-passant target, or NoSquare.
func (p *Position) EnPassantSquare() chess.Square {
	return p.enpassant
}

// CastlingRookSquare returns the square of the rook side may castle with
// on the given wing, or NoSquare if the right is gone.
func (p *Position) CastlingRookSquare(side chess.Side, wing chess.CastlingSide) chess.Square {
	return p.castling[side][wing]
}

// ReversibleMoveCount returns the number of plies since the last capture,
// pawn move, drop, castling move or move of a castling rook.
func (p *Position) ReversibleMoveCount() int {
	return p.reversible
}

// Key returns the Zobrist key of the position.
func (p *Position) Key() uint64 {
	return p.key
}

// Ply returns the number of moves applied since the position was created.
func (p *Position) Ply() int {
	return len(p.history)
}

// LastMove returns the most recently applied move, or the null move.
func (p *Position) LastMove() chess.Move {
	if len(p.history) == 0 {
		return chess.NullMove
	}
	return p.history[len(p.history)-1].move
}

// hasMovement reports whether piece type t moves with capability m.
func (p *Position) hasMovement(t chess.PieceType, m chess.Movement) bool {
	return p.movement[t].Has(m)
}

// setSquare places a piece and updates the key.
func (p *Position) setSquare(sq chess.Square, piece chess.Piece) {
	old := p.board.Get(sq)
	if old == piece {
		return
	}
	p.key ^= p.zobrist.Piece(old, sq)
	p.key ^= p.zobrist.Piece(piece, sq)
	p.board.Set(sq, piece)
}

// setEnpassantSquare changes the en-passant target and updates the key.
func (p *Position) setEnpassantSquare(sq chess.Square) {
	if sq == p.enpassant {
		return
	}
	p.key ^= p.zobrist.EnPassant(p.enpassant)
	p.key ^= p.zobrist.EnPassant(sq)
	p.enpassant = sq
}

// setCastlingSquare changes one castling right and updates the key.
func (p *Position) setCastlingSquare(side chess.Side, wing chess.CastlingSide, sq chess.Square) {
	rs := p.castling[side][wing]
	if rs == sq {
		return
	}
	p.key ^= p.zobrist.Castling(side, rs)
	p.key ^= p.zobrist.Castling(side, sq)
	p.castling[side][wing] = sq
}

// removeCastlingRights revokes the right tied to a rook on sq, if any.
func (p *Position) removeCastlingRights(sq chess.Square) {
	piece := p.board.Get(sq)
	if piece.Type() != chess.Rook {
		return
	}
	side := piece.Side()
	switch sq {
	case p.castling[side][chess.QueenSide]:
		p.setCastlingSquare(side, chess.QueenSide, chess.NoSquare)
	case p.castling[side][chess.KingSide]:
		p.setCastlingSquare(side, chess.KingSide, chess.NoSquare)
	}
}

// flipSide passes the move to the other side.
func (p *Position) flipSide() {
	p.side = p.side.Opposite()
	p.sign = -p.sign
	p.key ^= p.zobrist.Side()
}

// computeKey hashes the position from scratch.
func (p *Position) computeKey() uint64 {
	var key uint64
	for i, piece := range p.board.Squares {
		key ^= p.zobrist.Piece(piece, chess.Square(i))
	}
	if p.side == chess.Black {
		key ^= p.zobrist.Side()
	}
	for _, side := range []chess.Side{chess.White, chess.Black} {
		for _, rs := range p.castling[side] {
			key ^= p.zobrist.Castling(side, rs)
		}
	}
	key ^= p.zobrist.EnPassant(p.enpassant)
	return key
}
