package config

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// FenNotation selects how castling rights are written in FEN strings.
type FenNotation int

const (
	// XFen writes K/Q/k/q unless the castling rook is ambiguous, in which
	// case the rook's file letter is used.
	XFen FenNotation = iota
	// ShredderFen always writes the castling rook's file letter.
	ShredderFen
)

// String returns the string representation of a FEN notation.
func (n FenNotation) String() string {
	if n == ShredderFen {
		return "Shredder-FEN"
	}
	return "X-FEN"
}

// PieceDef describes one piece type of a variant.
type PieceDef struct {
	Type       chess.PieceType
	Name       string
	Symbol     byte // upper-case FEN/SAN letter
	Movement   chess.Movement
	Promotable bool // a pawn may promote to this type
}

// Variant is the immutable rule set a position is played under. Board
// size, king-capture rule, piece table and FEN dialect are data here
// rather than behaviour, so every variant shares one move generator.
type Variant struct {
	Name           string
	Width          int
	Height         int
	KingCanCapture bool
	UpperCaseSide  chess.Side
	FenNotation    FenNotation
	// Random marks Fischer-random style variants, whose castling moves
	// are written king-takes-rook in LAN.
	Random      bool
	StartingFEN string
	Pieces      []PieceDef
}

// Geometry returns the board geometry of the variant.
func (v *Variant) Geometry() chess.Geometry {
	return chess.Geometry{Width: v.Width, Height: v.Height}
}

// Piece returns the definition of a piece type, or nil.
func (v *Variant) Piece(t chess.PieceType) *PieceDef {
	i := slices.IndexFunc(v.Pieces, func(d PieceDef) bool { return d.Type == t })
	if i < 0 {
		return nil
	}
	return &v.Pieces[i]
}

// Symbol returns the upper-case letter of a piece type, or 0.
func (v *Variant) Symbol(t chess.PieceType) byte {
	if d := v.Piece(t); d != nil {
		return d.Symbol
	}
	return 0
}

// TypeFromSymbol returns the piece type written as c, ignoring case.
func (v *Variant) TypeFromSymbol(c byte) chess.PieceType {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	for _, d := range v.Pieces {
		if d.Symbol == c {
			return d.Type
		}
	}
	return chess.NoPieceType
}

// HasMovement reports whether piece type t moves with capability m.
func (v *Variant) HasMovement(t chess.PieceType, m chess.Movement) bool {
	if d := v.Piece(t); d != nil {
		return d.Movement.Has(m)
	}
	return false
}

// PromotionTypes returns the piece types a pawn may promote to, in table order.
func (v *Variant) PromotionTypes() []chess.PieceType {
	var types []chess.PieceType
	for _, d := range v.Pieces {
		if d.Promotable {
			types = append(types, d.Type)
		}
	}
	return types
}

// Validate checks that the variant can be played by the engine.
func (v *Variant) Validate() error {
	if v.Width < 3 || v.Width > 26 {
		return errors.Wrapf(errors.ErrInvalidConfig, "variant %q: width %d out of range 3-26", v.Name, v.Width)
	}
	if v.Height < 4 || v.Height > 99 {
		return errors.Wrapf(errors.ErrInvalidConfig, "variant %q: height %d out of range 4-99", v.Name, v.Height)
	}
	if v.UpperCaseSide != chess.White && v.UpperCaseSide != chess.Black {
		return errors.Wrapf(errors.ErrInvalidConfig, "variant %q: upper-case side must be White or Black", v.Name)
	}
	if v.Piece(chess.King) == nil || v.Piece(chess.Pawn) == nil {
		return errors.Wrapf(errors.ErrInvalidConfig, "variant %q: pawn and king are required", v.Name)
	}

	seen := make(map[byte]chess.PieceType)
	for _, d := range v.Pieces {
		if d.Symbol < 'A' || d.Symbol > 'Z' {
			return errors.Wrapf(errors.ErrInvalidConfig, "variant %q: %s symbol must be an upper-case letter", v.Name, d.Type)
		}
		if other, dup := seen[d.Symbol]; dup {
			return errors.Wrapf(errors.ErrInvalidConfig, "variant %q: symbol %c used by %s and %s", v.Name, d.Symbol, other, d.Type)
		}
		seen[d.Symbol] = d.Type
		if d.Promotable && (d.Type == chess.Pawn || d.Type == chess.King) {
			return errors.Wrapf(errors.ErrInvalidConfig, "variant %q: cannot promote to %s", v.Name, d.Type)
		}
	}
	if len(v.PromotionTypes()) == 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "variant %q: no promotion types", v.Name)
	}
	return nil
}

// String returns a short description of the variant.
func (v *Variant) String() string {
	return fmt.Sprintf("%s (%dx%d)", v.Name, v.Width, v.Height)
}

// westernPieces is the orthodox piece table.
func westernPieces() []PieceDef {
	return []PieceDef{
		{Type: chess.Pawn, Name: "pawn", Symbol: 'P'},
		{Type: chess.Knight, Name: "knight", Symbol: 'N', Movement: chess.KnightMovement, Promotable: true},
		{Type: chess.Bishop, Name: "bishop", Symbol: 'B', Movement: chess.BishopMovement, Promotable: true},
		{Type: chess.Rook, Name: "rook", Symbol: 'R', Movement: chess.RookMovement, Promotable: true},
		{Type: chess.Queen, Name: "queen", Symbol: 'Q', Movement: chess.BishopMovement | chess.RookMovement, Promotable: true},
		{Type: chess.King, Name: "king", Symbol: 'K'},
	}
}

// StandardFEN is the starting position of orthodox chess.
const StandardFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// CapablancaFEN is the starting position of Capablanca chess.
const CapablancaFEN = "rnabqkbcnr/pppppppppp/10/10/10/10/PPPPPPPPPP/RNABQKBCNR w KQkq - 0 1"

// Standard returns the rules of orthodox chess.
func Standard() *Variant {
	return &Variant{
		Name:           "standard",
		Width:          8,
		Height:         8,
		KingCanCapture: true,
		UpperCaseSide:  chess.White,
		FenNotation:    XFen,
		StartingFEN:    StandardFEN,
		Pieces:         westernPieces(),
	}
}

// Chess960 returns the rules of Fischer-random chess.
func Chess960() *Variant {
	v := Standard()
	v.Name = "chess960"
	v.Random = true
	v.FenNotation = ShredderFen
	v.StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w HAha - 0 1"
	return v
}

// Capablanca returns the rules of Capablanca chess on a 10x8 board.
func Capablanca() *Variant {
	v := Standard()
	v.Name = "capablanca"
	v.Width = 10
	v.StartingFEN = CapablancaFEN
	v.Pieces = append(v.Pieces,
		PieceDef{Type: chess.Archbishop, Name: "archbishop", Symbol: 'A', Movement: chess.KnightMovement | chess.BishopMovement, Promotable: true},
		PieceDef{Type: chess.Chancellor, Name: "chancellor", Symbol: 'C', Movement: chess.KnightMovement | chess.RookMovement, Promotable: true},
	)
	return v
}

var builtinVariants = map[string]func() *Variant{
	"standard":   Standard,
	"chess960":   Chess960,
	"capablanca": Capablanca,
}

// VariantNames returns the names of the built-in variants, sorted.
func VariantNames() []string {
	names := make([]string, 0, len(builtinVariants))
	for name := range builtinVariants {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// VariantByName returns a fresh copy of a built-in variant.
func VariantByName(name string) (*Variant, error) {
	ctor, ok := builtinVariants[strings.ToLower(name)]
	if !ok {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "unknown variant %q (known: %s)",
			name, strings.Join(VariantNames(), ", "))
	}
	return ctor(), nil
}
