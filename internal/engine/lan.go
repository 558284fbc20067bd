package engine

import (
	"strings"
	"unicode"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MoveToLAN returns the long algebraic (UCI style) form of a move, e.g.
// "e2e4", "e7e8q" or "Q@e4" for a drop. Castling is written as the king's
// two-square hop except in Fischer-random variants, where it is written
// king-takes-rook.
func (p *Position) MoveToLAN(m chess.Move) string {
	g := p.geometry
	if m.IsDrop() {
		return string(p.variant.Symbol(m.Promotion)) + "@" + g.SquareString(m.Target)
	}

	target := m.Target
	if wing := p.castlingWing(m); wing != chess.NoCastlingSide && !p.variant.Random {
		target = g.CastleTarget(p.side, wing)
	}

	s := g.SquareString(m.Source) + g.SquareString(target)
	if m.Promotion != chess.NoPieceType {
		s += string(unicode.ToLower(rune(p.variant.Symbol(m.Promotion))))
	}
	return s
}

func lanError(s string, field, expected string) error {
	return &errors.ParseError{Err: errors.ErrInvalidLAN, Input: s, Field: field, Expected: expected, Got: s}
}

func lanSquareError(s, field string) error {
	return &errors.ParseError{Err: errors.InvalidSquare(errors.ErrInvalidLAN), Input: s, Field: field, Expected: "a square", Got: s}
}

// parseLAN turns a LAN string into a move without checking legality.
func (p *Position) parseLAN(s string) (chess.Move, error) {
	g := p.geometry

	// Drop: piece letter, '@', target square
	if i := strings.IndexByte(s, '@'); i >= 0 {
		if i != 1 {
			return chess.NullMove, lanError(s, "drop", "piece letter before @")
		}
		t := p.variant.TypeFromSymbol(s[0])
		if t == chess.NoPieceType {
			return chess.NullMove, lanError(s, "drop", "a piece letter before @")
		}
		target := g.ParseSquare(s[2:])
		if target == chess.NoSquare {
			return chess.NullMove, lanSquareError(s, "drop")
		}
		return chess.Move{Target: target, Promotion: t}, nil
	}

	from, n := scanSquare(s)
	source := g.ParseSquare(from)
	if source == chess.NoSquare {
		return chess.NullMove, lanSquareError(s, "source")
	}
	to, m := scanSquare(s[n:])
	target := g.ParseSquare(to)
	if target == chess.NoSquare {
		return chess.NullMove, lanSquareError(s, "target")
	}

	move := chess.Move{Source: source, Target: target}
	switch rest := s[n+m:]; len(rest) {
	case 0:
	case 1:
		move.Promotion = p.variant.TypeFromSymbol(rest[0])
		if move.Promotion == chess.NoPieceType {
			return chess.NullMove, lanError(s, "promotion", "a piece letter")
		}
	default:
		return chess.NullMove, lanError(s, "promotion", "at most one piece letter")
	}
	return move, nil
}

// MoveFromLAN parses a move in long algebraic notation. Both castling
// encodings are accepted: the king's two-square hop and king-takes-rook.
func (p *Position) MoveFromLAN(s string) (chess.Move, error) {
	move, err := p.parseLAN(s)
	if err != nil {
		return chess.NullMove, err
	}

	side := p.side
	if move.Source == p.kings[side] && move.Promotion == chess.NoPieceType && abs(move.Source-move.Target) != 1 {
		rooks := p.castling[side]
		rookSq := chess.NoSquare
		switch move.Target {
		case p.geometry.CastleTarget(side, chess.QueenSide):
			rookSq = rooks[chess.QueenSide]
		case p.geometry.CastleTarget(side, chess.KingSide):
			rookSq = rooks[chess.KingSide]
		}
		if rookSq != chess.NoSquare {
			castle := chess.Move{Source: move.Source, Target: rookSq}
			// A plain king step to the castling square stays a king step.
			if p.IsLegalMove(castle) || !p.IsLegalMove(move) {
				move = castle
			}
		}
	}

	if !p.IsLegalMove(move) {
		return chess.NullMove, &errors.MoveError{Err: errors.ErrIllegalMove, Ply: p.Ply() + 1, MoveText: s}
	}
	return move, nil
}
