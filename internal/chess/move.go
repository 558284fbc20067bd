package chess

// Move is a source/target pair with an optional promotion type.
//
// Castling is encoded as the king moving onto its own rook's square; the
// king's real destination is derived when the move is applied or printed.
// A move with Source == NoSquare is a drop of the Promotion piece type.
// The zero Move is the null move and is never legal.
type Move struct {
	Source    Square
	Target    Square
	Promotion PieceType
}

// NullMove is the empty move used to signal "no move".
var NullMove = Move{}

// IsNull returns true if this is the null move.
func (m Move) IsNull() bool {
	return m.Target == NoSquare
}

// IsDrop returns true if the move places a new piece on the board.
func (m Move) IsDrop() bool {
	return m.Source == NoSquare && m.Target != NoSquare
}

// IsPromotion returns true if the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Source != NoSquare && m.Promotion != NoPieceType
}
