package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestFEN_RoundTrip(t *testing.T) {
	for _, tc := range testutil.FENSuite {
		t.Run(tc.Name, func(t *testing.T) {
			p := mustPosition(t, tc.Variant, tc.FEN)
			testutil.AssertEqual(t, p.FEN(), tc.Expected())
			testutil.AssertEqual(t, p.Key(), p.computeKey())

			// The output must parse back to the same position.
			q := mustPosition(t, tc.Variant, p.FEN())
			testutil.AssertEqual(t, takeSnapshot(q), takeSnapshot(p))
		})
	}
}

func TestNewPositionFromFEN_Fields(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		checkFn func(*testing.T, *Position)
	}{
		{
			name: "black to move",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1",
			checkFn: func(t *testing.T, p *Position) {
				testutil.AssertEqual(t, p.SideToMove(), chess.Black)
				testutil.AssertEqual(t, p.sign, -1)
				testutil.AssertEqual(t, p.PieceAt(sq(p, "e4")), chess.W(chess.Pawn))
			},
		},
		{
			name: "no castling rights",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w - - 0 1",
			checkFn: func(t *testing.T, p *Position) {
				testutil.AssertEqual(t, p.castling, [2][2]chess.Square{})
			},
		},
		{
			name: "halfmove clock",
			fen:  "4k3/8/8/8/8/8/8/4K2R w K - 37 50",
			checkFn: func(t *testing.T, p *Position) {
				testutil.AssertEqual(t, p.ReversibleMoveCount(), 37)
				testutil.AssertEqual(t, p.CastlingRookSquare(chess.White, chess.KingSide), sq(p, "h1"))
			},
		},
		{
			name: "usable en passant",
			fen:  "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1",
			checkFn: func(t *testing.T, p *Position) {
				testutil.AssertEqual(t, p.EnPassantSquare(), sq(p, "d6"))
			},
		},
		{
			name: "en passant without the pushed pawn",
			fen:  "4k3/8/8/4P3/8/8/8/4K3 w - d6 0 1",
			checkFn: func(t *testing.T, p *Position) {
				testutil.AssertEqual(t, p.EnPassantSquare(), chess.NoSquare)
			},
		},
		{
			name: "extra whitespace",
			fen:  "  4k3/8/8/8/8/8/8/4K3   w  -  -  ",
			checkFn: func(t *testing.T, p *Position) {
				testutil.AssertEqual(t, p.FEN(), "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
			},
		},
		{
			name: "outermost rook for K",
			fen:  "4k3/8/8/8/8/8/8/4K1RR w K - 0 1",
			checkFn: func(t *testing.T, p *Position) {
				testutil.AssertEqual(t, p.CastlingRookSquare(chess.White, chess.KingSide), sq(p, "h1"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.checkFn(t, mustPosition(t, "standard", tt.fen))
		})
	}
}

func TestNewPositionFromFEN_Errors(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		field string
	}{
		{"empty string", "", ""},
		{"three fields", "4k3/8/8/8/8/8/8/4K3 w -", ""},
		{"seven fields", "4k3/8/8/8/8/8/8/4K3 w - - 0 1 x", ""},
		{"seven ranks", "4k3/8/8/8/8/8/4K3 w - - 0 1", "placement"},
		{"rank too long", "4k3/9/8/8/8/8/8/4K3 w - - 0 1", "placement"},
		{"rank too short", "4k3/7/8/8/8/8/8/4K3 w - - 0 1", "placement"},
		{"piece beyond the last file", "4k3/8p/8/8/8/8/8/4K3 w - - 0 1", "placement"},
		{"unknown piece", "4k3/8/8/3X4/8/8/8/4K3 w - - 0 1", "placement"},
		{"zero run", "4k3/08/8/8/8/8/8/4K3 w - - 0 1", "placement"},
		{"no kings", "8/8/8/8/8/8/8/8 w - - 0 1", "placement"},
		{"two white kings", "4k3/8/8/8/8/8/8/3KK3 w - - 0 1", "placement"},
		{"bad side", "4k3/8/8/8/8/8/8/4K3 x - - 0 1", "side to move"},
		{"castling without rook", "4k3/8/8/8/8/8/8/4K3 w K - 0 1", "castling"},
		{"castling king off back rank", "4k3/8/8/8/8/8/4K3/7R w K - 0 1", "castling"},
		{"castling bad letter", "4k3/8/8/8/8/8/8/4K2R w X - 0 1", "castling"},
		{"castling file without rook", "4k3/8/8/8/8/8/8/4K2R w G - 0 1", "castling"},
		{"bad en passant", "4k3/8/8/8/8/8/8/4K3 w - z9 0 1", "en passant"},
		{"negative halfmove", "4k3/8/8/8/8/8/8/4K3 w - - -1 1", "halfmove clock"},
		{"non-numeric halfmove", "4k3/8/8/8/8/8/8/4K3 w - - x 1", "halfmove clock"},
		{"zero fullmove", "4k3/8/8/8/8/8/8/4K3 w - - 0 0", "fullmove number"},
		{"side not to move in check", "4k3/4R3/8/8/8/8/8/4K3 w - - 0 1", "side to move"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPositionFromFEN(config.Standard(), tt.fen)
			if p != nil {
				t.Errorf("NewPositionFromFEN(%q) returned a position", tt.fen)
			}
			testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)

			var perr *errors.ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("error %v is not a *ParseError", err)
			}
			testutil.AssertEqual(t, perr.Field, tt.field)
			testutil.AssertEqual(t, perr.Input, tt.fen)
		})
	}
}

func TestNewPositionFromFEN_ErrorColumn(t *testing.T) {
	fen := "4k3/8/8/8/8/8/8/4K3 x - - 0 1"
	_, err := NewPositionFromFEN(config.Standard(), fen)

	var perr *errors.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error %v is not a *ParseError", err)
	}
	testutil.AssertEqual(t, perr.Column, 21)
	testutil.AssertEqual(t, perr.Got, "x")
	testutil.AssertEqual(t, perr.Expected, "w or b")

	fen = "4k3/8/8/8/8/8/8/4K3 w - - 0 -3"
	_, err = NewPositionFromFEN(config.Standard(), fen)
	if !errors.As(err, &perr) {
		t.Fatalf("error %v is not a *ParseError", err)
	}
	testutil.AssertEqual(t, perr.Column, 29)
	testutil.AssertEqual(t, perr.Got, "-3")

	fen = "4k3/8/8/8/8/8/8/4K3 w X - 0 1"
	_, err = NewPositionFromFEN(config.Standard(), fen)
	if !errors.As(err, &perr) {
		t.Fatalf("error %v is not a *ParseError", err)
	}
	testutil.AssertEqual(t, perr.Field, "castling")
	testutil.AssertEqual(t, perr.Column, 23)
	testutil.AssertEqual(t, perr.Got, "X")
}

func TestNewPositionFromFEN_InvalidVariant(t *testing.T) {
	v := *config.Standard()
	v.Width = 2
	_, err := NewPositionFromFEN(&v, v.StartingFEN)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
}

func TestFENWithNotation(t *testing.T) {
	p := mustStart(t)
	testutil.AssertEqual(t, p.FENWithNotation(config.XFen), config.StandardFEN)
	testutil.AssertEqual(t, p.FENWithNotation(config.ShredderFen),
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w HAha - 0 1")

	// The same position parsed as Chess960 writes Shredder-FEN by default.
	q := mustPosition(t, "chess960", config.StandardFEN)
	testutil.AssertEqual(t, q.FEN(), "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w HAha - 0 1")
	testutil.AssertEqual(t, q.FENWithNotation(config.XFen), config.StandardFEN)
}

func TestFEN_AfterMoves(t *testing.T) {
	p := mustStart(t)

	playSAN(t, p, "e4")
	// No black pawn can capture on e3, so no en-passant square is written.
	testutil.AssertEqual(t, p.FEN(), "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1")

	playSAN(t, p, "c5", "Nf3")
	testutil.AssertEqual(t, p.FEN(), "rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2")

	playSAN(t, p, "Nc6", "Ke2")
	testutil.AssertEqual(t, p.FEN(), "r1bqkbnr/pp1ppppp/2n5/2p5/4P3/5N2/PPPPKPPP/RNBQ1B1R b kq - 3 3")
}

func TestFEN_UpperCaseBlack(t *testing.T) {
	v, err := config.NewVariantBuilder("inverted", config.Standard()).
		WithUpperCaseSide(chess.Black).
		WithStartingFEN("RNBQKBNR/PPPPPPPP/8/8/8/8/pppppppp/rnbqkbnr w kqKQ - 0 1").
		Build()
	testutil.AssertNoError(t, err)

	p, err := NewPosition(v)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, p.PieceAt(sq(p, "e1")), chess.W(chess.King))
	testutil.AssertEqual(t, p.PieceAt(sq(p, "e8")), chess.B(chess.King))
	testutil.AssertEqual(t, p.FEN(), "RNBQKBNR/PPPPPPPP/8/8/8/8/pppppppp/rnbqkbnr w kqKQ - 0 1")
	testutil.AssertEqual(t, len(p.LegalMoves()), 20)
}
