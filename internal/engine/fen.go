package engine

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// fenError builds a ParseError for a FEN field.
func fenError(fen, field string, column int, expected, got string) error {
	return &errors.ParseError{
		Err:      errors.ErrInvalidFEN,
		Input:    fen,
		Field:    field,
		Column:   column,
		Expected: expected,
		Got:      got,
	}
}

// fenField is one whitespace separated FEN token and its 1-based column.
type fenField struct {
	text   string
	column int
}

func splitFEN(fen string) []fenField {
	var fields []fenField
	start := -1
	for i, c := range fen {
		if unicode.IsSpace(c) {
			if start >= 0 {
				fields = append(fields, fenField{fen[start:i], start + 1})
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		fields = append(fields, fenField{fen[start:], start + 1})
	}
	return fields
}

// NewPosition creates the starting position of a variant.
func NewPosition(v *config.Variant) (*Position, error) {
	return NewPositionFromFEN(v, v.StartingFEN)
}

// NewPositionFromFEN creates a position from a FEN string. Placement,
// side to move, castling rights and en-passant square are required; the
// two counters are optional. The full-move number is validated but not
// kept: FEN derives it from the number of applied moves.
func NewPositionFromFEN(v *config.Variant, fen string) (*Position, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	fields := splitFEN(fen)
	if len(fields) < 4 || len(fields) > 6 {
		return nil, fenError(fen, "", 0, "4 to 6 fields", strconv.Itoa(len(fields))+" fields")
	}

	p := newPosition(v)
	if err := p.parsePlacement(fen, fields[0]); err != nil {
		return nil, err
	}
	if err := p.parseSideToMove(fen, fields[1]); err != nil {
		return nil, err
	}
	if err := p.parseCastlingRights(fen, fields[2]); err != nil {
		return nil, err
	}
	if err := p.parseEnPassant(fen, fields[3]); err != nil {
		return nil, err
	}
	if err := p.parseCounters(fen, fields[4:]); err != nil {
		return nil, err
	}

	// The side that just moved cannot be in check.
	if p.InCheck(p.side.Opposite()) {
		return nil, fenError(fen, "side to move", fields[1].column, "side not to move to be out of check", fields[1].text)
	}

	p.key = p.computeKey()
	return p, nil
}

// sideFromCase returns the side a piece or castling letter belongs to.
func (p *Position) sideFromCase(c byte) chess.Side {
	if c >= 'A' && c <= 'Z' {
		return p.variant.UpperCaseSide
	}
	return p.variant.UpperCaseSide.Opposite()
}

// parsePlacement parses the piece placement field, ranks from the top.
func (p *Position) parsePlacement(fen string, f fenField) error {
	g := p.geometry
	ranks := strings.Split(f.text, "/")
	if len(ranks) != g.Height {
		return fenError(fen, "placement", f.column, strconv.Itoa(g.Height)+" ranks", strconv.Itoa(len(ranks)))
	}

	var kingCount [2]int
	column := f.column
	for i, row := range ranks {
		rank := g.Height - 1 - i
		file := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '0' && c <= '9' {
				k := j
				for k < len(row) && row[k] >= '0' && row[k] <= '9' {
					k++
				}
				n, _ := strconv.Atoi(row[j:k])
				if n == 0 || row[j] == '0' {
					return fenError(fen, "placement", column+j, "empty-square count", row[j:k])
				}
				file += n
				j = k - 1
				continue
			}

			t := p.variant.TypeFromSymbol(c)
			if t == chess.NoPieceType {
				return fenError(fen, "placement", column+j, "", string(c))
			}
			if file >= g.Width {
				return fenError(fen, "placement", column+j, strconv.Itoa(g.Width)+" files in rank "+strconv.Itoa(rank+1), row)
			}
			side := p.sideFromCase(c)
			sq := g.Square(file, rank)
			p.board.Set(sq, chess.MakePiece(side, t))
			if t == chess.King {
				p.kings[side] = sq
				kingCount[side]++
			}
			file++
		}
		if file != g.Width {
			return fenError(fen, "placement", column, strconv.Itoa(g.Width)+" files in rank "+strconv.Itoa(rank+1), row)
		}
		column += len(row) + 1
	}

	if kingCount[chess.White] != 1 || kingCount[chess.Black] != 1 {
		return fenError(fen, "placement", f.column, "one king per side",
			strconv.Itoa(kingCount[chess.White])+" white and "+strconv.Itoa(kingCount[chess.Black])+" black")
	}
	return nil
}

// parseSideToMove parses the side to move field.
func (p *Position) parseSideToMove(fen string, f fenField) error {
	switch f.text {
	case "w":
		p.side, p.sign = chess.White, 1
	case "b":
		p.side, p.sign = chess.Black, -1
	default:
		return fenError(fen, "side to move", f.column, "w or b", f.text)
	}
	return nil
}

// parseCastlingRights parses the castling availability field. K and Q
// select the outermost rook on that side of the king; a file letter
// selects the rook on that file.
func (p *Position) parseCastlingRights(fen string, f fenField) error {
	if f.text == "-" {
		return nil
	}
	for i := 0; i < len(f.text); i++ {
		if !p.parseCastlingRight(f.text[i]) {
			return fenError(fen, "castling", f.column+i, "", string(f.text[i]))
		}
	}
	return nil
}

func (p *Position) parseCastlingRight(c byte) bool {
	g := p.geometry
	side := p.sideFromCase(c)
	c = byte(unicode.ToLower(rune(c)))

	kingSq := p.kings[side]
	if _, rank := g.FileRank(kingSq); rank != g.BackRank(side) {
		return false
	}
	rook := chess.MakePiece(side, chess.Rook)

	if c == 'k' || c == 'q' {
		wing, offset := chess.KingSide, chess.Square(1)
		if c == 'q' {
			wing, offset = chess.QueenSide, -1
		}
		// Locate the outermost rook on the castling side
		rookSq := chess.NoSquare
		for sq := kingSq + offset; !p.board.Get(sq).IsWall(); sq += offset {
			if p.board.Get(sq) == rook {
				rookSq = sq
			}
		}
		if rookSq == chess.NoSquare {
			return false
		}
		p.castling[side][wing] = rookSq
		return true
	}

	// Shredder-FEN or X-FEN file letter
	file := int(c) - 'a'
	if file < 0 || file >= g.Width {
		return false
	}
	rookSq := g.Square(file, g.BackRank(side))
	if rookSq == kingSq || p.board.Get(rookSq) != rook {
		return false
	}
	wing := chess.QueenSide
	if rookSq > kingSq {
		wing = chess.KingSide
	}
	p.castling[side][wing] = rookSq
	return true
}

// parseEnPassant parses the en-passant field. A square no pawn of the side
// to move can capture on is dropped.
func (p *Position) parseEnPassant(fen string, f fenField) error {
	if f.text == "-" {
		return nil
	}
	sq := p.geometry.ParseSquare(f.text)
	if sq == chess.NoSquare {
		return fenError(fen, "en passant", f.column, "a square or -", f.text)
	}

	pawnSq := sq + chess.Square(p.arwidth*p.sign)
	ownPawn := chess.MakePiece(p.side, chess.Pawn)
	opPawn := chess.MakePiece(p.side.Opposite(), chess.Pawn)
	if !p.board.Get(sq).IsEmpty() || p.board.Get(pawnSq) != opPawn {
		return nil
	}
	if p.board.Get(pawnSq-1) == ownPawn || p.board.Get(pawnSq+1) == ownPawn {
		p.enpassant = sq
	}
	return nil
}

// parseCounters parses the optional reversible-move and full-move fields.
func (p *Position) parseCounters(fen string, fields []fenField) error {
	if len(fields) > 0 {
		n, err := strconv.Atoi(fields[0].text)
		if err != nil || n < 0 {
			return fenError(fen, "halfmove clock", fields[0].column, "a non-negative number", fields[0].text)
		}
		p.reversible = n
	}
	if len(fields) > 1 {
		n, err := strconv.Atoi(fields[1].text)
		if err != nil || n < 1 {
			return fenError(fen, "fullmove number", fields[1].column, "a positive number", fields[1].text)
		}
	}
	return nil
}

// FEN returns the FEN string of the position in the variant's dialect.
func (p *Position) FEN() string {
	return p.FENWithNotation(p.variant.FenNotation)
}

// FENWithNotation returns the FEN string using the given castling dialect.
func (p *Position) FENWithNotation(notation config.FenNotation) string {
	var sb strings.Builder

	p.writePlacement(&sb)
	sb.WriteByte(' ')
	if p.side == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(p.castlingRightsString(notation))
	sb.WriteByte(' ')
	if p.enpassant != chess.NoSquare {
		sb.WriteString(p.geometry.SquareString(p.enpassant))
	} else {
		sb.WriteByte('-')
	}
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.reversible))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.Ply()/2 + 1))

	return sb.String()
}

// pieceSymbol returns the FEN letter of a piece.
func (p *Position) pieceSymbol(piece chess.Piece) byte {
	c := p.variant.Symbol(piece.Type())
	if piece.Side() != p.variant.UpperCaseSide {
		c = byte(unicode.ToLower(rune(c)))
	}
	return c
}

// writePlacement writes the piece placement, top rank first.
func (p *Position) writePlacement(sb *strings.Builder) {
	g := p.geometry
	for rank := g.Height - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < g.Width; file++ {
			piece := p.board.GetAt(file, rank)
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteString(strconv.Itoa(emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(p.pieceSymbol(piece))
		}
		if emptyCount > 0 {
			sb.WriteString(strconv.Itoa(emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// castlingRightsString writes K/Q when the castling rook is the outermost
// one on its wing, otherwise the rook's file letter.
func (p *Position) castlingRightsString(notation config.FenNotation) string {
	var sb strings.Builder
	for _, side := range []chess.Side{chess.White, chess.Black} {
		rook := chess.MakePiece(side, chess.Rook)
		for _, wing := range []chess.CastlingSide{chess.KingSide, chess.QueenSide} {
			rs := p.castling[side][wing]
			if rs == chess.NoSquare {
				continue
			}

			offset := chess.Square(1)
			if wing == chess.QueenSide {
				offset = -1
			}
			ambiguous := false
			for sq := rs + offset; !p.board.Get(sq).IsWall(); sq += offset {
				if p.board.Get(sq) == rook {
					ambiguous = true
					break
				}
			}

			var c byte
			if ambiguous || notation == config.ShredderFen {
				file, _ := p.geometry.FileRank(rs)
				c = byte('a' + file)
			} else if wing == chess.QueenSide {
				c = 'q'
			} else {
				c = 'k'
			}
			if side == p.variant.UpperCaseSide {
				c = byte(unicode.ToUpper(rune(c)))
			}
			sb.WriteByte(c)
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
