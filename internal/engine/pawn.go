package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// appendPromotions adds one move per promotion type of the variant.
func (p *Position) appendPromotions(moves []chess.Move, source, target chess.Square) []chess.Move {
	for _, t := range p.promotions {
		moves = append(moves, chess.Move{Source: source, Target: target, Promotion: t})
	}
	return moves
}

// appendPawnMoves adds pushes, double pushes, captures, en-passant
// captures and promotions of the pawn on source.
func (p *Position) appendPawnMoves(moves []chess.Move, source chess.Square) []chess.Move {
	step := chess.Square(p.sign * p.arwidth)
	// The pawn promotes when the square beyond its target is a wall.
	isPromotion := p.board.Get(source - step*2).IsWall()

	// One square ahead
	target := source - step
	if p.board.Get(target).IsEmpty() {
		if isPromotion {
			moves = p.appendPromotions(moves, source, target)
		} else {
			moves = append(moves, chess.Move{Source: source, Target: target})

			// Two squares ahead, only from the starting rank
			if p.board.Get(source + step*2).IsWall() {
				target -= step
				if p.board.Get(target).IsEmpty() {
					moves = append(moves, chess.Move{Source: source, Target: target})
				}
			}
		}
	}

	// Captures, including en-passant moves
	opSide := p.side.Opposite()
	for _, i := range []chess.Square{-1, 1} {
		target = source - step + i
		if p.board.Get(target).Side() == opSide || (target == p.enpassant && p.enpassant != chess.NoSquare) {
			if isPromotion {
				moves = p.appendPromotions(moves, source, target)
			} else {
				moves = append(moves, chess.Move{Source: source, Target: target})
			}
		}
	}
	return moves
}
