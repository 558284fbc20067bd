package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/config"
)

func benchPosition(b *testing.B, fen string) *Position {
	b.Helper()
	p, err := NewPositionFromFEN(config.Standard(), fen)
	if err != nil {
		b.Fatalf("NewPositionFromFEN(%q): %v", fen, err)
	}
	return p
}

func BenchmarkNewPositionFromFEN(b *testing.B) {
	v := config.Standard()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := NewPositionFromFEN(v, kiwipeteFEN); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFEN(b *testing.B) {
	p := benchPosition(b, kiwipeteFEN)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.FEN()
	}
}

func BenchmarkLegalMoves(b *testing.B) {
	p := benchPosition(b, kiwipeteFEN)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.LegalMoves()
	}
}

func BenchmarkMakeUnmake(b *testing.B) {
	p := benchPosition(b, kiwipeteFEN)
	moves := p.LegalMoves()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := moves[i%len(moves)]
		p.MakeMove(m)
		p.UnmakeMove()
	}
}

func BenchmarkPerft3(b *testing.B) {
	p := benchPosition(b, config.StandardFEN)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if n := perft(p, 3); n != 8902 {
			b.Fatalf("perft(3) = %d", n)
		}
	}
}

func BenchmarkMoveToSAN(b *testing.B) {
	p := benchPosition(b, kiwipeteFEN)
	moves := p.LegalMoves()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.MoveToSAN(moves[i%len(moves)])
	}
}

func BenchmarkMoveFromSAN(b *testing.B) {
	p := benchPosition(b, kiwipeteFEN)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.MoveFromSAN("Qxf6"); err != nil {
			b.Fatal(err)
		}
	}
}
