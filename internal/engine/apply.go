package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// castlingWing returns the wing of a castling move for the side to move,
// or NoCastlingSide. Castling is encoded as the king moving onto its own
// castling rook.
func (p *Position) castlingWing(m chess.Move) chess.CastlingSide {
	if m.Source == chess.NoSquare || m.Source != p.kings[p.side] {
		return chess.NoCastlingSide
	}
	rooks := p.castling[p.side]
	switch m.Target {
	case chess.NoSquare:
		return chess.NoCastlingSide
	case rooks[chess.QueenSide]:
		return chess.QueenSide
	case rooks[chess.KingSide]:
		return chess.KingSide
	}
	return chess.NoCastlingSide
}

// isCapture reports whether m captures an enemy piece, en passant included.
func (p *Position) isCapture(m chess.Move) bool {
	if m.Source != chess.NoSquare && m.Target == p.enpassant &&
		p.board.Get(m.Source).Type() == chess.Pawn {
		return true
	}
	return p.board.Get(m.Target).Side() == p.side.Opposite()
}

// MakeMove applies a move generated for this position. The move is not
// validated; passing a move from another position corrupts the state.
func (p *Position) MakeMove(m chess.Move) {
	side := p.side
	source := m.Source
	target := m.Target
	pieceType := p.board.Get(source).Type()
	promotion := m.Promotion
	epSq := p.enpassant
	clearSource := true
	reversible := true

	rec := undoRecord{
		kind:       normalMove,
		move:       m,
		capture:    p.board.Get(target),
		wing:       chess.NoCastlingSide,
		enpassant:  p.enpassant,
		castling:   p.castling,
		reversible: p.reversible,
		key:        p.key,
	}

	if source == chess.NoSquare {
		rec.kind = dropMove
		pieceType = promotion
		clearSource = false
		reversible = false
		epSq = chess.NoSquare
	}

	p.setEnpassantSquare(chess.NoSquare)

	switch {
	case rec.kind == dropMove:
	case pieceType == chess.King:
		if wing := p.castlingWing(m); wing != chess.NoCastlingSide {
			rec.kind = castleMove
			rec.wing = wing
			rec.capture = chess.Empty

			rookSource := target
			target = p.geometry.CastleTarget(side, wing)
			rookTarget := p.geometry.CastleRookTarget(side, wing)
			if rookTarget == source || target == source {
				clearSource = false
			}
			p.setSquare(rookSource, chess.Empty)
			p.setSquare(rookTarget, chess.MakePiece(side, chess.Rook))
			reversible = false
		}
		p.kings[side] = target
		// Any king move removes all castling rights
		p.setCastlingSquare(side, chess.QueenSide, chess.NoSquare)
		p.setCastlingSquare(side, chess.KingSide, chess.NoSquare)
	case pieceType == chess.Pawn:
		reversible = false
		switch {
		case target == epSq:
			rec.kind = enPassantMove
			p.setSquare(target+chess.Square(p.arwidth*p.sign), chess.Empty)
		case int(source-target)*p.sign == 2*p.arwidth:
			// Only record an en-passant square that can be used.
			opPawn := chess.MakePiece(side.Opposite(), chess.Pawn)
			if p.board.Get(target-1) == opPawn || p.board.Get(target+1) == opPawn {
				p.setEnpassantSquare(source - chess.Square(p.arwidth*p.sign))
			}
		case promotion != chess.NoPieceType:
			rec.kind = promotionMove
			pieceType = promotion
		}
	case pieceType == chess.Rook:
		for _, wing := range []chess.CastlingSide{chess.QueenSide, chess.KingSide} {
			if source == p.castling[side][wing] {
				p.setCastlingSquare(side, wing, chess.NoSquare)
				reversible = false
				break
			}
		}
	}

	if rec.kind != castleMove && rec.capture.Side() == side.Opposite() {
		p.removeCastlingRights(target)
		reversible = false
		if rec.kind == normalMove {
			rec.kind = captureMove
		}
	}

	p.setSquare(target, chess.MakePiece(side, pieceType))
	if clearSource {
		p.setSquare(source, chess.Empty)
	}

	if reversible {
		p.reversible++
	} else {
		p.reversible = 0
	}

	p.history = append(p.history, rec)
	p.flipSide()
}

// UnmakeMove reverts the most recently applied move. It panics if no move
// has been applied.
func (p *Position) UnmakeMove() {
	n := len(p.history)
	if n == 0 {
		panic("engine: UnmakeMove with empty history")
	}
	rec := p.history[n-1]
	p.history = p.history[:n-1]

	p.flipSide()
	side := p.side
	source := rec.move.Source
	target := rec.move.Target

	p.setEnpassantSquare(rec.enpassant)
	for _, s := range []chess.Side{chess.White, chess.Black} {
		for _, wing := range []chess.CastlingSide{chess.QueenSide, chess.KingSide} {
			p.setCastlingSquare(s, wing, rec.castling[s][wing])
		}
	}
	p.reversible = rec.reversible

	switch rec.kind {
	case normalMove, captureMove:
		piece := p.board.Get(target)
		if piece.Type() == chess.King {
			p.kings[side] = source
		}
		p.setSquare(source, piece)
		p.setSquare(target, rec.capture)
	case castleMove:
		kingTarget := p.geometry.CastleTarget(side, rec.wing)
		p.setSquare(kingTarget, chess.Empty)
		p.setSquare(p.geometry.CastleRookTarget(side, rec.wing), chess.Empty)
		p.setSquare(target, chess.MakePiece(side, chess.Rook))
		p.setSquare(source, chess.MakePiece(side, chess.King))
		p.kings[side] = source
	case enPassantMove:
		p.setSquare(source, p.board.Get(target))
		p.setSquare(target, chess.Empty)
		p.setSquare(target+chess.Square(p.arwidth*p.sign), chess.MakePiece(side.Opposite(), chess.Pawn))
	case promotionMove:
		p.setSquare(source, chess.MakePiece(side, chess.Pawn))
		p.setSquare(target, rec.capture)
	case dropMove:
		p.setSquare(target, rec.capture)
	}
}
