package chess

import "strconv"

// Square is an index into a board array. Square 0 is the null square and
// always holds a wall.
type Square int

// NoSquare is the null square.
const NoSquare Square = 0

// WallRows is the number of wall rows above and below the playable area.
// Two rows keep vertical knight leaps inside the array; one column on each
// side is enough horizontally because a row's right wall and the next
// row's left wall are adjacent in the linear layout.
const WallRows = 2

// Geometry describes a rectangular board surrounded by walls.
type Geometry struct {
	Width  int
	Height int
}

// ArrayWidth returns the width of one array row, walls included.
func (g Geometry) ArrayWidth() int {
	return g.Width + 2
}

// ArraySize returns the number of cells in the board array.
func (g Geometry) ArraySize() int {
	return g.ArrayWidth() * (g.Height + 2*WallRows)
}

// Contains reports whether file and rank lie on the playable board.
func (g Geometry) Contains(file, rank int) bool {
	return file >= 0 && file < g.Width && rank >= 0 && rank < g.Height
}

// Square converts a 0-based file and rank to an array index. Rank 0 is
// White's back rank and sits at the bottom of the array.
func (g Geometry) Square(file, rank int) Square {
	if !g.Contains(file, rank) {
		return NoSquare
	}
	row := g.Height - 1 - rank + WallRows
	return Square(row*g.ArrayWidth() + file + 1)
}

// FileRank converts an array index back to a 0-based file and rank.
// The result is only meaningful for playable squares.
func (g Geometry) FileRank(sq Square) (file, rank int) {
	w := g.ArrayWidth()
	file = int(sq)%w - 1
	rank = g.Height - 1 - (int(sq)/w - WallRows)
	return file, rank
}

// IsPlayable reports whether sq is a square inside the walls.
func (g Geometry) IsPlayable(sq Square) bool {
	if sq <= 0 || int(sq) >= g.ArraySize() {
		return false
	}
	return g.Contains(g.FileRank(sq))
}

// SquareString returns the algebraic name of sq, e.g. "e4" or "a10".
func (g Geometry) SquareString(sq Square) string {
	if !g.IsPlayable(sq) {
		return "-"
	}
	file, rank := g.FileRank(sq)
	return string(rune('a'+file)) + strconv.Itoa(rank+1)
}

// ParseSquare converts an algebraic square name to an index. It returns
// NoSquare for malformed or off-board names.
func (g Geometry) ParseSquare(s string) Square {
	if len(s) < 2 || s[0] < 'a' || s[0] > 'z' {
		return NoSquare
	}
	for i := 1; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return NoSquare
		}
	}
	if s[1] == '0' {
		return NoSquare
	}
	rank, err := strconv.Atoi(s[1:])
	if err != nil {
		return NoSquare
	}
	return g.Square(int(s[0]-'a'), rank-1)
}

// BackRank returns the 0-based rank on which side's pieces start.
func (g Geometry) BackRank(side Side) int {
	if side == White {
		return 0
	}
	return g.Height - 1
}

// KnightOffsets returns the eight knight leaps as index offsets.
func (g Geometry) KnightOffsets() []int {
	w := g.ArrayWidth()
	return []int{-2*w - 1, -2*w + 1, -w - 2, -w + 2, w - 2, w + 2, 2*w - 1, 2*w + 1}
}

// BishopOffsets returns the four diagonal steps as index offsets.
func (g Geometry) BishopOffsets() []int {
	w := g.ArrayWidth()
	return []int{-w - 1, -w + 1, w - 1, w + 1}
}

// RookOffsets returns the four orthogonal steps as index offsets.
func (g Geometry) RookOffsets() []int {
	w := g.ArrayWidth()
	return []int{-w, -1, 1, w}
}

// CastleTarget returns the square the king lands on when castling.
func (g Geometry) CastleTarget(side Side, wing CastlingSide) Square {
	file := 2
	if wing == KingSide {
		file = g.Width - 2
	}
	return g.Square(file, g.BackRank(side))
}

// CastleRookTarget returns the square the rook lands on when castling. It
// is adjacent to the king's target on the inner side.
func (g Geometry) CastleRookTarget(side Side, wing CastlingSide) Square {
	target := g.CastleTarget(side, wing)
	if wing == QueenSide {
		return target + 1
	}
	return target - 1
}
