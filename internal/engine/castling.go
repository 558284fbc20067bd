package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// CanCastle reports whether the side to move keeps the castling right on
// wing and the back rank between king, rook and their destinations is
// clear. Attacked squares are checked by IsLegal, not here.
func (p *Position) CanCastle(wing chess.CastlingSide) bool {
	side := p.side
	rookSq := p.castling[side][wing]
	if rookSq == chess.NoSquare {
		return false
	}

	kingSq := p.kings[side]
	target := p.geometry.CastleTarget(side, wing)
	rookTarget := p.geometry.CastleRookTarget(side, wing)

	// The smallest back-rank interval holding the king, the rook and both
	// destination squares must contain no other pieces.
	left := min(kingSq, rookSq, target, rookTarget)
	right := max(kingSq, rookSq, target, rookTarget)
	for sq := left; sq <= right; sq++ {
		if sq != kingSq && sq != rookSq && !p.board.Get(sq).IsEmpty() {
			return false
		}
	}
	return true
}

// appendCastlingMoves adds king-takes-own-rook moves for each wing the
// side to move can castle on.
func (p *Position) appendCastlingMoves(moves []chess.Move) []chess.Move {
	source := p.kings[p.side]
	for _, wing := range []chess.CastlingSide{chess.QueenSide, chess.KingSide} {
		if p.CanCastle(wing) {
			moves = append(moves, chess.Move{Source: source, Target: p.castling[p.side][wing]})
		}
	}
	return moves
}

// castlingPathSafe reports whether no square from the king's source to its
// castling destination, both included, is attacked.
func (p *Position) castlingPathSafe(wing chess.CastlingSide) bool {
	side := p.side
	source := p.kings[side]
	target := p.geometry.CastleTarget(side, wing)
	step := chess.Square(1)
	if target < source {
		step = -1
	}
	for sq := source; ; sq += step {
		if p.IsAttacked(side, sq) {
			return false
		}
		if sq == target {
			return true
		}
	}
}
