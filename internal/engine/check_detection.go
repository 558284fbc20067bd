package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// InCheck returns true if side's king is attacked.
func (p *Position) InCheck(side chess.Side) bool {
	return p.IsAttacked(side, p.kings[side])
}

// IsAttacked returns true if sq would be attacked by the opponent of side.
// The piece on sq itself is ignored.
func (p *Position) IsAttacked(side chess.Side, sq chess.Square) bool {
	opSide := side.Opposite()
	if sq == chess.NoSquare {
		return false
	}

	// Pawn attacks
	opPawn := chess.MakePiece(opSide, chess.Pawn)
	step := chess.Square(p.arwidth)
	if side == chess.White {
		step = -step
	}
	if p.board.Get(sq+step-1) == opPawn || p.board.Get(sq+step+1) == opPawn {
		return true
	}

	// Knight, archbishop, chancellor attacks
	for _, offset := range p.geometry.KnightOffsets() {
		piece := p.board.Get(sq + chess.Square(offset))
		if piece.Side() == opSide && p.hasMovement(piece.Type(), chess.KnightMovement) {
			return true
		}
	}

	// Bishop, queen, archbishop, king attacks
	if p.rayAttacked(sq, opSide, p.geometry.BishopOffsets(), chess.BishopMovement) {
		return true
	}
	// Rook, queen, chancellor, king attacks
	return p.rayAttacked(sq, opSide, p.geometry.RookOffsets(), chess.RookMovement)
}

// rayAttacked scans each offset from sq for the first piece. The enemy
// king only counts when adjacent and kings may capture.
func (p *Position) rayAttacked(sq chess.Square, opSide chess.Side, offsets []int, m chess.Movement) bool {
	opKing := p.kings[opSide]
	for _, offset := range offsets {
		target := sq + chess.Square(offset)
		if p.variant.KingCanCapture && target == opKing {
			return true
		}
		for {
			piece := p.board.Get(target)
			if piece.IsEmpty() {
				target += chess.Square(offset)
				continue
			}
			if piece.Side() == opSide && p.hasMovement(piece.Type(), m) {
				return true
			}
			break
		}
	}
	return false
}
