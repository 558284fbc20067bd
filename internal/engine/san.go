package engine

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MoveToSAN returns the Standard Algebraic Notation of a legal move,
// including check (+) and mate (#) suffixes.
func (p *Position) MoveToSAN(m chess.Move) string {
	g := p.geometry
	source := m.Source
	target := m.Target
	piece := p.board.Get(source)
	capture := p.board.Get(target)
	side := p.side

	var checkOrMate string
	p.MakeMove(m)
	if p.InCheck(p.side) {
		if p.CanMove() {
			checkOrMate = "+"
		} else {
			checkOrMate = "#"
		}
	}
	p.UnmakeMove()

	if m.IsDrop() {
		return p.MoveToLAN(m) + checkOrMate
	}

	var sb strings.Builder
	needFile, needRank := false, false
	file, rank := g.FileRank(source)

	switch piece.Type() {
	case chess.Pawn:
		if target == p.enpassant && p.enpassant != chess.NoSquare {
			capture = chess.MakePiece(side.Opposite(), chess.Pawn)
		}
		if capture.Side() == side.Opposite() {
			needFile = true
		}
	case chess.King:
		if wing := p.castlingWing(m); wing != chess.NoCastlingSide {
			if wing == chess.QueenSide {
				return "O-O-O" + checkOrMate
			}
			return "O-O" + checkOrMate
		}
		sb.WriteByte(p.variant.Symbol(chess.King))
	default:
		sb.WriteByte(p.variant.Symbol(piece.Type()))
		for _, m2 := range p.GenerateMoves(piece.Type()) {
			if m2.Source == source || m2.Target != target {
				continue
			}
			if !p.IsLegal(m2) {
				continue
			}
			file2, rank2 := g.FileRank(m2.Source)
			if file2 != file {
				needFile = true
			} else if rank2 != rank {
				needRank = true
			}
		}
	}

	if needFile {
		sb.WriteByte(byte('a' + file))
	}
	if needRank {
		sb.WriteString(g.SquareString(source)[1:])
	}
	if capture.Side() == side.Opposite() {
		sb.WriteByte('x')
	}
	sb.WriteString(g.SquareString(target))
	if m.Promotion != chess.NoPieceType {
		sb.WriteByte('=')
		sb.WriteByte(p.variant.Symbol(m.Promotion))
	}
	sb.WriteString(checkOrMate)
	return sb.String()
}

func sanError(s, field, expected string) error {
	return &errors.ParseError{Err: errors.ErrInvalidSAN, Input: s, Field: field, Expected: expected, Got: s}
}

func sanSquareError(s, field string) error {
	return &errors.ParseError{Err: errors.InvalidSquare(errors.ErrInvalidSAN), Input: s, Field: field, Expected: "a square", Got: s}
}

// sanMove is a SAN string broken into its parts.
type sanMove struct {
	piece      chess.PieceType
	sourceFile int // -1 when not given
	sourceRank int // -1 when not given
	target     chess.Square
	capture    bool
	promotion  chess.PieceType
}

// MoveFromSAN parses a move in Standard Algebraic Notation. Check, mate
// and annotation glyphs are ignored. A string matching more than one legal
// move is rejected with ErrAmbiguousMove.
func (p *Position) MoveFromSAN(s string) (chess.Move, error) {
	str := strings.TrimRight(s, "+#!?")
	if len(str) < 2 {
		return chess.NullMove, sanError(s, "move", "at least two characters")
	}

	if castle := strings.ReplaceAll(str, "0", "O"); strings.HasPrefix(castle, "O-O") {
		return p.castleFromSAN(s, castle)
	}

	sm, err := p.parseSAN(s, str)
	if err != nil {
		return chess.NullMove, err
	}

	// The string must agree with the position about capturing.
	isCapture := p.board.Get(sm.target).Side() == p.side.Opposite() ||
		(sm.piece == chess.Pawn && sm.target == p.enpassant && p.enpassant != chess.NoSquare)
	if isCapture != sm.capture {
		return chess.NullMove, &errors.MoveError{Err: errors.ErrIllegalMove, Ply: p.Ply() + 1, MoveText: s}
	}

	g := p.geometry
	ownRook := chess.MakePiece(p.side, chess.Rook)
	match := chess.NullMove
	for _, m := range p.GenerateMoves(sm.piece) {
		if m.Target != sm.target || m.Promotion != sm.promotion {
			continue
		}
		file, rank := g.FileRank(m.Source)
		if sm.sourceFile >= 0 && file != sm.sourceFile {
			continue
		}
		if sm.sourceRank >= 0 && rank != sm.sourceRank {
			continue
		}
		// Castling moves were handled earlier
		if p.board.Get(m.Target) == ownRook {
			continue
		}
		if !p.IsLegal(m) {
			continue
		}
		if !match.IsNull() {
			return chess.NullMove, &errors.MoveError{Err: errors.ErrAmbiguousMove, Ply: p.Ply() + 1, MoveText: s}
		}
		match = m
	}

	if match.IsNull() {
		return chess.NullMove, &errors.MoveError{Err: errors.ErrIllegalMove, Ply: p.Ply() + 1, MoveText: s}
	}
	return match, nil
}

// castleFromSAN resolves "O-O" and "O-O-O".
func (p *Position) castleFromSAN(s, castle string) (chess.Move, error) {
	var wing chess.CastlingSide
	switch castle {
	case "O-O":
		wing = chess.KingSide
	case "O-O-O":
		wing = chess.QueenSide
	default:
		return chess.NullMove, sanError(s, "castling", "O-O or O-O-O")
	}

	m := chess.Move{Source: p.kings[p.side], Target: p.castling[p.side][wing]}
	if m.Target == chess.NoSquare || !p.IsLegalMove(m) {
		return chess.NullMove, &errors.MoveError{Err: errors.ErrIllegalMove, Ply: p.Ply() + 1, MoveText: s}
	}
	return m, nil
}

// parseSAN splits a non-castling SAN string:
// [piece][file][rank][x]target[=promotion].
func (p *Position) parseSAN(s, str string) (sanMove, error) {
	sm := sanMove{piece: chess.Pawn, sourceFile: -1, sourceRank: -1}
	g := p.geometry

	// Piece letters are upper case; a lower-case letter is a pawn's file.
	if c := str[0]; c >= 'A' && c <= 'Z' {
		sm.piece = p.variant.TypeFromSymbol(c)
		if sm.piece == chess.NoPieceType || sm.piece == chess.Pawn {
			return sm, sanError(s, "piece", "a piece letter other than the pawn")
		}
		str = str[1:]
	}

	// Promotion suffix: "=Q", "(Q)" or a bare "Q"
	if n := len(str); n > 0 {
		var letter byte
		switch {
		case n >= 3 && str[n-1] == ')' && str[n-3] == '(':
			letter, str = str[n-2], str[:n-3]
		case n >= 2 && str[n-2] == '=':
			letter, str = str[n-1], str[:n-2]
		case str[n-1] >= 'A' && str[n-1] <= 'Z':
			letter, str = str[n-1], str[:n-1]
		}
		if letter != 0 {
			sm.promotion = p.variant.TypeFromSymbol(letter)
			if sm.promotion == chess.NoPieceType || letter < 'A' || letter > 'Z' {
				return sm, sanError(s, "promotion", "an upper-case piece letter")
			}
		}
	}

	// Target square: the trailing file letter and rank digits
	i := len(str)
	for i > 0 && str[i-1] >= '0' && str[i-1] <= '9' {
		i--
	}
	if i == len(str) || i == 0 {
		return sm, sanError(s, "target", "a square")
	}
	i--
	sm.target = g.ParseSquare(str[i:])
	if sm.target == chess.NoSquare {
		return sm, sanSquareError(s, "target")
	}
	prefix := str[:i]

	if strings.HasSuffix(prefix, "x") {
		sm.capture = true
		prefix = prefix[:len(prefix)-1]
	}

	// Disambiguation: an optional file followed by an optional rank
	if prefix != "" && prefix[0] >= 'a' && prefix[0] <= 'z' {
		sm.sourceFile = int(prefix[0] - 'a')
		if sm.sourceFile >= g.Width {
			return sm, sanError(s, "source", "a file on the board")
		}
		prefix = prefix[1:]
	}
	if prefix != "" {
		for j := 0; j < len(prefix); j++ {
			if prefix[j] < '0' || prefix[j] > '9' {
				return sm, sanError(s, "source", "a file and/or rank")
			}
		}
		rank := 0
		for j := 0; j < len(prefix); j++ {
			rank = rank*10 + int(prefix[j]-'0')
		}
		if prefix[0] == '0' || rank < 1 || rank > g.Height {
			return sm, sanError(s, "source", "a rank on the board")
		}
		sm.sourceRank = rank - 1
	}

	if sm.piece == chess.Pawn && sm.capture && sm.sourceFile < 0 {
		return sm, sanError(s, "source", "the capturing pawn's file")
	}
	return sm, nil
}
