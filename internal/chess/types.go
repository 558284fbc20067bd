// Package chess provides the core types shared by the rules engine: sides,
// piece types, packed pieces, board geometry and moves.
package chess

// Side represents the owner of a piece or the player to move.
type Side int

const (
	White Side = iota
	Black
	NoSide
)

// String returns the string representation of a side.
func (s Side) String() string {
	switch s {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoSide"
	}
}

// Opposite returns the opposing side. NoSide has no opposite.
func (s Side) Opposite() Side {
	switch s {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoSide
	}
}

// PieceType identifies the kind of a piece independent of its side.
type PieceType int

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	Archbishop // knight + bishop
	Chancellor // knight + rook
	NumPieceTypes
)

// String returns the string representation of a piece type.
func (t PieceType) String() string {
	names := []string{"NoPiece", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King", "Archbishop", "Chancellor"}
	if t >= 0 && int(t) < len(names) {
		return names[t]
	}
	return "Unknown"
}

// Movement is a bitset of movement capabilities. Piece types combine
// these primitives, so a queen is simply BishopMovement|RookMovement.
type Movement uint8

const (
	KnightMovement Movement = 1 << iota
	BishopMovement
	RookMovement
)

// Has reports whether all bits of m are set.
func (mv Movement) Has(m Movement) bool {
	return mv&m == m && m != 0
}

// Piece packs a side and a piece type into one byte.
type Piece uint8

// PieceShift is used for encoding sided pieces.
const PieceShift = 1

const (
	// Empty is an empty playable square.
	Empty Piece = 0
	// Wall is the sentinel stored on every border cell.
	Wall Piece = 0xFF
)

// MakePiece creates a sided piece value.
func MakePiece(side Side, t PieceType) Piece {
	if t == NoPieceType || side == NoSide {
		return Empty
	}
	return Piece(int(t)<<PieceShift | int(side))
}

// W creates a white piece.
func W(t PieceType) Piece {
	return MakePiece(White, t)
}

// B creates a black piece.
func B(t PieceType) Piece {
	return MakePiece(Black, t)
}

// Type extracts the piece type. Empty squares and walls have NoPieceType.
func (p Piece) Type() PieceType {
	if p == Wall {
		return NoPieceType
	}
	return PieceType(p >> PieceShift)
}

// Side extracts the side. Empty squares and walls belong to NoSide.
func (p Piece) Side() Side {
	if p == Wall || p == Empty {
		return NoSide
	}
	return Side(p & 1)
}

// IsWall reports whether p is the border sentinel.
func (p Piece) IsWall() bool {
	return p == Wall
}

// IsEmpty reports whether p is an empty playable square.
func (p Piece) IsEmpty() bool {
	return p == Empty
}

// IsValid reports whether p is a real piece.
func (p Piece) IsValid() bool {
	return p != Empty && p != Wall
}

// String returns a human readable description such as "White Knight".
func (p Piece) String() string {
	switch p {
	case Empty:
		return "Empty"
	case Wall:
		return "Wall"
	}
	return p.Side().String() + " " + p.Type().String()
}

// CastlingSide is the wing a castling move is made on.
type CastlingSide int

const (
	QueenSide CastlingSide = iota
	KingSide
	NoCastlingSide
)

// String returns the string representation of a castling side.
func (c CastlingSide) String() string {
	switch c {
	case QueenSide:
		return "QueenSide"
	case KingSide:
		return "KingSide"
	default:
		return "NoCastlingSide"
	}
}
