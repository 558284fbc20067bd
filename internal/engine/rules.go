package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// ResultKind is the outcome class of a position.
type ResultKind int

const (
	Ongoing ResultKind = iota
	Win
	Draw
)

// Reason explains a decided result.
type Reason int

const (
	NoReason Reason = iota
	Checkmate
	Stalemate
	InsufficientMaterial
	FiftyMoveRule
	ThreefoldRepetition
)

// String returns the string representation of a reason.
func (r Reason) String() string {
	switch r {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case InsufficientMaterial:
		return "insufficient material"
	case FiftyMoveRule:
		return "fifty-move rule"
	case ThreefoldRepetition:
		return "threefold repetition"
	default:
		return "none"
	}
}

// Result is the terminal status of a position.
type Result struct {
	Kind   ResultKind
	Winner chess.Side // NoSide unless Kind is Win
	Reason Reason
}

// IsOver returns true if the game has ended.
func (r Result) IsOver() bool {
	return r.Kind != Ongoing
}

// String returns the PGN score: "1-0", "0-1", "1/2-1/2" or "*".
func (r Result) String() string {
	switch r.Kind {
	case Win:
		if r.Winner == chess.White {
			return "1-0"
		}
		return "0-1"
	case Draw:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// Description returns a sentence such as "White mates".
func (r Result) Description() string {
	switch r.Kind {
	case Win:
		return r.Winner.String() + " mates"
	case Draw:
		switch r.Reason {
		case Stalemate:
			return "Draw by stalemate"
		case InsufficientMaterial:
			return "Draw by insufficient mating material"
		case FiftyMoveRule:
			return "Draw by fifty moves rule"
		case ThreefoldRepetition:
			return "Draw by 3-fold repetition"
		}
		return "Draw"
	default:
		return "No result"
	}
}

// Result returns the terminal status of the position. Checks run from the
// cheapest to the most expensive and stop at the first that applies.
func (p *Position) Result() Result {
	if !p.CanMove() {
		if p.InCheck(p.side) {
			return Result{Kind: Win, Winner: p.side.Opposite(), Reason: Checkmate}
		}
		return Result{Kind: Draw, Winner: chess.NoSide, Reason: Stalemate}
	}
	if p.HasInsufficientMaterial() {
		return Result{Kind: Draw, Winner: chess.NoSide, Reason: InsufficientMaterial}
	}
	if p.reversible >= 100 {
		return Result{Kind: Draw, Winner: chess.NoSide, Reason: FiftyMoveRule}
	}
	if p.RepetitionCount() >= 2 {
		return Result{Kind: Draw, Winner: chess.NoSide, Reason: ThreefoldRepetition}
	}
	return Result{Kind: Ongoing, Winner: chess.NoSide}
}

// IsCheckmate returns true if the side to move is checkmated.
func (p *Position) IsCheckmate() bool {
	return p.InCheck(p.side) && !p.CanMove()
}

// IsStalemate returns true if the side to move has no legal move and is
// not in check.
func (p *Position) IsStalemate() bool {
	return !p.InCheck(p.side) && !p.CanMove()
}

// HasInsufficientMaterial returns true if neither side has mating
// material. Knights and bishops weigh 1, every other piece (the king
// included) 2; a side with at most 3 cannot mate.
func (p *Position) HasInsufficientMaterial() bool {
	var material [2]int
	for _, piece := range p.board.Squares {
		if !piece.IsValid() {
			continue
		}
		switch piece.Type() {
		case chess.Knight, chess.Bishop:
			material[piece.Side()]++
		default:
			material[piece.Side()] += 2
		}
	}
	return material[chess.White] <= 3 && material[chess.Black] <= 3
}

// RepetitionCount returns how many earlier positions in the history equal
// the current one. Only positions since the last irreversible move, with
// the same side to move, can match.
func (p *Position) RepetitionCount() int {
	n := len(p.history)
	count := 0
	for k := n - 2; k >= 0 && n-k <= p.reversible; k -= 2 {
		if p.history[k].key == p.key {
			count++
		}
	}
	return count
}
