package chess

// Board is the square array of a position. Every border cell holds Wall,
// so move generation can step through offsets without bounds checks.
type Board struct {
	Geometry Geometry
	Squares  []Piece
}

// NewBoard creates an empty board of the given geometry.
func NewBoard(g Geometry) *Board {
	b := &Board{
		Geometry: g,
		Squares:  make([]Piece, g.ArraySize()),
	}
	for i := range b.Squares {
		if g.IsPlayable(Square(i)) {
			b.Squares[i] = Empty
		} else {
			b.Squares[i] = Wall
		}
	}
	return b
}

// Get returns the piece on a square. Indices outside the array read as Wall.
func (b *Board) Get(sq Square) Piece {
	if sq < 0 || int(sq) >= len(b.Squares) {
		return Wall
	}
	return b.Squares[sq]
}

// Set places a piece on a square. Walls cannot be overwritten.
func (b *Board) Set(sq Square, piece Piece) {
	if b.Squares[sq] == Wall {
		return
	}
	b.Squares[sq] = piece
}

// GetAt returns the piece at a 0-based file and rank.
func (b *Board) GetAt(file, rank int) Piece {
	return b.Get(b.Geometry.Square(file, rank))
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{Geometry: b.Geometry}
	newBoard.Squares = make([]Piece, len(b.Squares))
	copy(newBoard.Squares, b.Squares)
	return newBoard
}

// Find returns the squares holding piece, in array order.
func (b *Board) Find(piece Piece) []Square {
	var squares []Square
	for i, p := range b.Squares {
		if p == piece {
			squares = append(squares, Square(i))
		}
	}
	return squares
}
