package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// appendHoppingMoves adds one step along each offset, onto an empty square
// or an enemy piece.
func (p *Position) appendHoppingMoves(moves []chess.Move, sq chess.Square, offsets []int) []chess.Move {
	opSide := p.side.Opposite()
	for _, offset := range offsets {
		target := sq + chess.Square(offset)
		piece := p.board.Get(target)
		if piece.IsEmpty() || piece.Side() == opSide {
			moves = append(moves, chess.Move{Source: sq, Target: target})
		}
	}
	return moves
}

// appendSlidingMoves walks each offset until a wall or a piece. An enemy
// piece ends the ray as a capture.
func (p *Position) appendSlidingMoves(moves []chess.Move, sq chess.Square, offsets []int) []chess.Move {
	opSide := p.side.Opposite()
	for _, offset := range offsets {
		target := sq + chess.Square(offset)
		for {
			piece := p.board.Get(target)
			if piece.IsEmpty() {
				moves = append(moves, chess.Move{Source: sq, Target: target})
				target += chess.Square(offset)
				continue
			}
			if piece.Side() == opSide {
				moves = append(moves, chess.Move{Source: sq, Target: target})
			}
			break
		}
	}
	return moves
}
