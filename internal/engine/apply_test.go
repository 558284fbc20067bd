package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// checkMakeUnmake applies every legal move to depth plies and verifies the
// incremental key and that UnmakeMove restores the exact prior state.
func checkMakeUnmake(t *testing.T, p *Position, depth int) {
	t.Helper()
	if depth == 0 {
		return
	}
	before := takeSnapshot(p)
	for _, m := range p.LegalMoves() {
		p.MakeMove(m)
		if p.key != p.computeKey() {
			t.Fatalf("incremental key differs from computed key after %v in %s", m, p.FEN())
		}
		if p.LastMove() != m {
			t.Fatalf("LastMove() = %v, want %v", p.LastMove(), m)
		}
		checkMakeUnmake(t, p, depth-1)
		p.UnmakeMove()
		testutil.AssertEqual(t, takeSnapshot(p), before, "unmaking %v", m)
	}
}

func TestMakeUnmake_Suite(t *testing.T) {
	for _, tc := range testutil.PerftSuite {
		t.Run(tc.Name, func(t *testing.T) {
			checkMakeUnmake(t, mustPosition(t, tc.Variant, tc.FEN), 2)
		})
	}
}

func TestMakeMove_Kinds(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		move    string // LAN
		kind    undoKind
		checkFn func(*testing.T, *Position)
	}{
		{
			name: "quiet move",
			fen:  "4k3/8/8/8/8/8/8/4K1N1 w - - 5 1",
			move: "g1f3",
			kind: normalMove,
			checkFn: func(t *testing.T, p *Position) {
				testutil.AssertEqual(t, p.PieceAt(sq(p, "f3")), chess.W(chess.Knight))
				testutil.AssertTrue(t, p.PieceAt(sq(p, "g1")).IsEmpty())
				testutil.AssertEqual(t, p.ReversibleMoveCount(), 6)
			},
		},
		{
			name: "capture",
			fen:  "4k3/8/8/8/8/5p2/8/4K1N1 w - - 5 1",
			move: "g1f3",
			kind: captureMove,
			checkFn: func(t *testing.T, p *Position) {
				testutil.AssertEqual(t, p.PieceAt(sq(p, "f3")), chess.W(chess.Knight))
				testutil.AssertEqual(t, p.ReversibleMoveCount(), 0)
			},
		},
		{
			name: "king-side castling",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 3 1",
			move: "e1g1",
			kind: castleMove,
			checkFn: func(t *testing.T, p *Position) {
				testutil.AssertEqual(t, p.PieceAt(sq(p, "g1")), chess.W(chess.King))
				testutil.AssertEqual(t, p.PieceAt(sq(p, "f1")), chess.W(chess.Rook))
				testutil.AssertTrue(t, p.PieceAt(sq(p, "h1")).IsEmpty())
				testutil.AssertTrue(t, p.PieceAt(sq(p, "e1")).IsEmpty())
				testutil.AssertEqual(t, p.KingSquare(chess.White), sq(p, "g1"))
				testutil.AssertEqual(t, p.castling[chess.White], [2]chess.Square{})
				testutil.AssertEqual(t, p.CastlingRookSquare(chess.Black, chess.QueenSide), sq(p, "a8"))
				testutil.AssertEqual(t, p.ReversibleMoveCount(), 0)
			},
		},
		{
			name: "queen-side castling",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			move: "e8c8",
			kind: castleMove,
			checkFn: func(t *testing.T, p *Position) {
				testutil.AssertEqual(t, p.PieceAt(sq(p, "c8")), chess.B(chess.King))
				testutil.AssertEqual(t, p.PieceAt(sq(p, "d8")), chess.B(chess.Rook))
				testutil.AssertTrue(t, p.PieceAt(sq(p, "a8")).IsEmpty())
				testutil.AssertEqual(t, p.FEN(), "2kr3r/8/8/8/8/8/8/R3K2R w KQ - 0 1")
			},
		},
		{
			name: "en passant",
			fen:  "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1",
			move: "e5d6",
			kind: enPassantMove,
			checkFn: func(t *testing.T, p *Position) {
				testutil.AssertEqual(t, p.PieceAt(sq(p, "d6")), chess.W(chess.Pawn))
				testutil.AssertTrue(t, p.PieceAt(sq(p, "d5")).IsEmpty())
				testutil.AssertEqual(t, p.EnPassantSquare(), chess.NoSquare)
			},
		},
		{
			name: "promotion with capture",
			fen:  "3rk3/4P3/8/8/8/8/8/4K3 w - - 0 1",
			move: "e7d8n",
			kind: promotionMove,
			checkFn: func(t *testing.T, p *Position) {
				testutil.AssertEqual(t, p.PieceAt(sq(p, "d8")), chess.W(chess.Knight))
				testutil.AssertTrue(t, p.PieceAt(sq(p, "e7")).IsEmpty())
			},
		},
		{
			name: "rook move revokes its right",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 4 1",
			move: "h1h5",
			kind: normalMove,
			checkFn: func(t *testing.T, p *Position) {
				testutil.AssertEqual(t, p.CastlingRookSquare(chess.White, chess.KingSide), chess.NoSquare)
				testutil.AssertEqual(t, p.CastlingRookSquare(chess.White, chess.QueenSide), sq(p, "a1"))
				testutil.AssertEqual(t, p.ReversibleMoveCount(), 0)
			},
		},
		{
			name: "capturing a castling rook revokes its right",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			move: "a1a8",
			kind: captureMove,
			checkFn: func(t *testing.T, p *Position) {
				testutil.AssertEqual(t, p.FEN(), "R3k2r/8/8/8/8/8/8/4K2R b Kk - 0 1")
			},
		},
		{
			name: "double push sets a usable en-passant square",
			fen:  "4k3/8/8/8/3p4/8/4P3/4K3 w - - 0 1",
			move: "e2e4",
			kind: normalMove,
			checkFn: func(t *testing.T, p *Position) {
				testutil.AssertEqual(t, p.EnPassantSquare(), sq(p, "e3"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustPosition(t, "standard", tt.fen)
			before := takeSnapshot(p)

			m, err := p.MoveFromLAN(tt.move)
			testutil.AssertNoError(t, err)
			p.MakeMove(m)

			testutil.AssertEqual(t, p.history[len(p.history)-1].kind, tt.kind)
			testutil.AssertEqual(t, p.Key(), p.computeKey())
			tt.checkFn(t, p)

			p.UnmakeMove()
			testutil.AssertEqual(t, takeSnapshot(p), before)
		})
	}
}

func TestMakeMove_Drop(t *testing.T) {
	p := mustPosition(t, "standard", "4k3/8/8/8/8/8/8/4K3 w - - 7 1")
	before := takeSnapshot(p)

	drop := chess.Move{Target: sq(p, "d4"), Promotion: chess.Queen}
	testutil.AssertTrue(t, drop.IsDrop())
	testutil.AssertEqual(t, p.MoveToLAN(drop), "Q@d4")

	p.MakeMove(drop)
	testutil.AssertEqual(t, p.PieceAt(sq(p, "d4")), chess.W(chess.Queen))
	testutil.AssertEqual(t, p.history[0].kind, dropMove)
	testutil.AssertEqual(t, p.ReversibleMoveCount(), 0)
	testutil.AssertEqual(t, p.Key(), p.computeKey())

	p.UnmakeMove()
	testutil.AssertEqual(t, takeSnapshot(p), before)
}

func TestMakeMove_Chess960Castling(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move string
		want string
	}{
		{
			name: "king and rook swap places",
			fen:  "4k3/8/8/8/8/8/8/2RK4 w C - 0 1",
			move: "d1c1",
			want: "4k3/8/8/8/8/8/8/2KR4 b - - 0 1",
		},
		{
			name: "king already on its king-side target",
			fen:  "4k3/8/8/8/8/8/8/6KR w H - 0 1",
			move: "g1h1",
			want: "4k3/8/8/8/8/8/8/5RK1 b - - 0 1",
		},
		{
			name: "king already on its queen-side target",
			fen:  "4k3/8/8/8/8/8/8/1RK5 w B - 0 1",
			move: "c1b1",
			want: "4k3/8/8/8/8/8/8/2KR4 b - - 0 1",
		},
		{
			name: "rook already on its target",
			fen:  "4k3/8/8/8/8/8/8/3RK3 w D - 0 1",
			move: "e1d1",
			want: "4k3/8/8/8/8/8/8/2KR4 b - - 0 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustPosition(t, "chess960", tt.fen)
			before := takeSnapshot(p)

			m, err := p.MoveFromLAN(tt.move)
			testutil.AssertNoError(t, err)
			p.MakeMove(m)
			testutil.AssertEqual(t, p.history[0].kind, castleMove)
			testutil.AssertEqual(t, p.FEN(), tt.want)
			testutil.AssertEqual(t, p.Key(), p.computeKey())

			p.UnmakeMove()
			testutil.AssertEqual(t, takeSnapshot(p), before)
		})
	}
}

func TestUnmakeMove_EmptyHistoryPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("UnmakeMove on a fresh position should panic")
		}
	}()
	mustStart(t).UnmakeMove()
}

func TestEnPassant_Lifetime(t *testing.T) {
	p := mustStart(t)
	playSAN(t, p, "e4", "a6", "e5", "d5")
	testutil.AssertEqual(t, p.EnPassantSquare(), sq(p, "d6"))

	exd6 := chess.Move{Source: sq(p, "e5"), Target: sq(p, "d6")}
	testutil.AssertTrue(t, p.IsLegalMove(exd6), "en passant right after the double push")
	san, err := p.MoveFromSAN("exd6")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, san, exd6)

	playSAN(t, p, "Nf3", "a5")
	testutil.AssertEqual(t, p.EnPassantSquare(), chess.NoSquare)
	testutil.AssertFalse(t, p.IsLegalMove(exd6), "en passant one move too late")
	_, err = p.MoveFromSAN("exd6")
	if err == nil {
		t.Error("MoveFromSAN(exd6) accepted an expired en-passant capture")
	}
}
