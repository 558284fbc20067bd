package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// GenerateMovesForPiece returns the pseudo-legal moves of a piece of type
// t standing on sq for the side to move. Pseudo-legal moves obey movement
// and blocking but may leave the mover's king in check.
func (p *Position) GenerateMovesForPiece(t chess.PieceType, sq chess.Square) []chess.Move {
	return p.appendMovesForPiece(nil, t, sq)
}

func (p *Position) appendMovesForPiece(moves []chess.Move, t chess.PieceType, sq chess.Square) []chess.Move {
	switch t {
	case chess.Pawn:
		return p.appendPawnMoves(moves, sq)
	case chess.King:
		moves = p.appendHoppingMoves(moves, sq, p.geometry.BishopOffsets())
		moves = p.appendHoppingMoves(moves, sq, p.geometry.RookOffsets())
		return p.appendCastlingMoves(moves)
	}

	if p.hasMovement(t, chess.KnightMovement) {
		moves = p.appendHoppingMoves(moves, sq, p.geometry.KnightOffsets())
	}
	if p.hasMovement(t, chess.BishopMovement) {
		moves = p.appendSlidingMoves(moves, sq, p.geometry.BishopOffsets())
	}
	if p.hasMovement(t, chess.RookMovement) {
		moves = p.appendSlidingMoves(moves, sq, p.geometry.RookOffsets())
	}
	return moves
}

// GenerateMoves returns the pseudo-legal moves of every piece of type t
// belonging to the side to move. NoPieceType selects all pieces.
func (p *Position) GenerateMoves(t chess.PieceType) []chess.Move {
	moves := make([]chess.Move, 0, 64)
	for i, piece := range p.board.Squares {
		if piece.Side() != p.side {
			continue
		}
		if t != chess.NoPieceType && piece.Type() != t {
			continue
		}
		moves = p.appendMovesForPiece(moves, piece.Type(), chess.Square(i))
	}
	return moves
}

// PseudoLegalMoves returns the pseudo-legal moves of the side to move.
func (p *Position) PseudoLegalMoves() []chess.Move {
	return p.GenerateMoves(chess.NoPieceType)
}
