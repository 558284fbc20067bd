// Package hashing provides Zobrist keys for positions of any board geometry.
package hashing

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// seed is the starting state of the key stream. Keys depend only on the
// geometry, so a position's key is stable across runs.
const seed = uint64(0x9E3779B97F4A7C15)

// ZobristTable holds the random keys for one board geometry. It is
// immutable after construction and safe to share between goroutines.
type ZobristTable struct {
	geometry chess.Geometry
	side     uint64
	// pieces is indexed by [side][piece type][square]
	pieces [2][chess.NumPieceTypes][]uint64
	// castling is indexed by [side][rook square]
	castling [2][]uint64
	// enpassant is indexed by file
	enpassant []uint64
}

// splitmix64 is a small deterministic generator.
type splitmix64 uint64

func (s *splitmix64) next() uint64 {
	*s += splitmix64(seed)
	z := uint64(*s)
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// NewZobristTable generates the keys for a geometry.
func NewZobristTable(g chess.Geometry) *ZobristTable {
	rng := splitmix64(seed ^ uint64(g.Width)<<32 ^ uint64(g.Height))
	size := g.ArraySize()

	zt := &ZobristTable{geometry: g}
	zt.side = rng.next()
	for side := 0; side < 2; side++ {
		for t := chess.Pawn; t < chess.NumPieceTypes; t++ {
			keys := make([]uint64, size)
			for sq := range keys {
				keys[sq] = rng.next()
			}
			zt.pieces[side][t] = keys
		}
		zt.castling[side] = make([]uint64, size)
		for sq := range zt.castling[side] {
			zt.castling[side][sq] = rng.next()
		}
	}
	zt.enpassant = make([]uint64, g.Width)
	for f := range zt.enpassant {
		zt.enpassant[f] = rng.next()
	}
	return zt
}

// Geometry returns the geometry the table was built for.
func (zt *ZobristTable) Geometry() chess.Geometry {
	return zt.geometry
}

// Side returns the key toggled when the side to move changes.
func (zt *ZobristTable) Side() uint64 {
	return zt.side
}

// Piece returns the key of a piece on a square. Empty squares and walls
// have key 0.
func (zt *ZobristTable) Piece(p chess.Piece, sq chess.Square) uint64 {
	if !p.IsValid() {
		return 0
	}
	t := p.Type()
	if t <= chess.NoPieceType || t >= chess.NumPieceTypes {
		return 0
	}
	keys := zt.pieces[p.Side()][t]
	if sq <= 0 || int(sq) >= len(keys) {
		return 0
	}
	return keys[sq]
}

// Castling returns the key of a castling right, identified by the side
// and the square of its rook.
func (zt *ZobristTable) Castling(side chess.Side, rookSq chess.Square) uint64 {
	if side != chess.White && side != chess.Black {
		return 0
	}
	keys := zt.castling[side]
	if rookSq <= 0 || int(rookSq) >= len(keys) {
		return 0
	}
	return keys[rookSq]
}

// EnPassant returns the key of an en-passant target square. Only the file
// contributes.
func (zt *ZobristTable) EnPassant(sq chess.Square) uint64 {
	if !zt.geometry.IsPlayable(sq) {
		return 0
	}
	file, _ := zt.geometry.FileRank(sq)
	return zt.enpassant[file]
}
