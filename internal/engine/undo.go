package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// undoKind identifies how a move changed the board, and so how to revert it.
type undoKind uint8

const (
	normalMove undoKind = iota
	captureMove
	castleMove
	enPassantMove
	promotionMove // with or without a capture
	dropMove
)

func (k undoKind) String() string {
	switch k {
	case normalMove:
		return "normal"
	case captureMove:
		return "capture"
	case castleMove:
		return "castle"
	case enPassantMove:
		return "en passant"
	case promotionMove:
		return "promotion"
	case dropMove:
		return "drop"
	default:
		return "unknown"
	}
}

// undoRecord is everything MakeMove destroys. Records form a stack in
// Position.history; UnmakeMove pops exactly one.
type undoRecord struct {
	kind    undoKind
	move    chess.Move
	capture chess.Piece // piece on the target before the move; Empty for castling
	// wing is the castling wing for castleMove records
	wing       chess.CastlingSide
	enpassant  chess.Square
	castling   [2][2]chess.Square
	reversible int
	// key is the position key before the move, used for repetition checks
	key uint64
}
