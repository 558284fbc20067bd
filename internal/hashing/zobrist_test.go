package hashing

import (
	"sync"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

var standard = chess.Geometry{Width: 8, Height: 8}

func TestZobristTable_Deterministic(t *testing.T) {
	a := NewZobristTable(standard)
	b := NewZobristTable(standard)

	if a.Side() != b.Side() {
		t.Error("side key differs between two builds of the same geometry")
	}
	e4 := standard.ParseSquare("e4")
	if a.Piece(chess.W(chess.Knight), e4) != b.Piece(chess.W(chess.Knight), e4) {
		t.Error("piece key differs between two builds of the same geometry")
	}
}

func TestZobristTable_DistinctKeys(t *testing.T) {
	zt := NewZobristTable(standard)
	seen := make(map[uint64]string)
	add := func(key uint64, name string) {
		t.Helper()
		if key == 0 {
			t.Fatalf("%s has a zero key", name)
		}
		if other, dup := seen[key]; dup {
			t.Fatalf("%s and %s share a key", name, other)
		}
		seen[key] = name
	}

	add(zt.Side(), "side")
	for rank := 0; rank < standard.Height; rank++ {
		for file := 0; file < standard.Width; file++ {
			sq := standard.Square(file, rank)
			name := standard.SquareString(sq)
			for _, side := range []chess.Side{chess.White, chess.Black} {
				for pt := chess.Pawn; pt < chess.NumPieceTypes; pt++ {
					add(zt.Piece(chess.MakePiece(side, pt), sq), chess.MakePiece(side, pt).String()+" "+name)
				}
				add(zt.Castling(side, sq), side.String()+" castling "+name)
			}
		}
	}
	for file := 0; file < standard.Width; file++ {
		add(zt.EnPassant(standard.Square(file, 2)), "ep file")
	}
}

func TestZobristTable_ZeroKeys(t *testing.T) {
	zt := NewZobristTable(standard)
	e4 := standard.ParseSquare("e4")

	tests := []struct {
		name string
		key  uint64
	}{
		{"empty square", zt.Piece(chess.Empty, e4)},
		{"wall", zt.Piece(chess.Wall, e4)},
		{"null square", zt.Piece(chess.W(chess.Pawn), chess.NoSquare)},
		{"castling without side", zt.Castling(chess.NoSide, e4)},
		{"castling null square", zt.Castling(chess.White, chess.NoSquare)},
		{"en passant null square", zt.EnPassant(chess.NoSquare)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.key != 0 {
				t.Errorf("key = %#x; want 0", tt.key)
			}
		})
	}
}

func TestZobristTable_EnPassantByFile(t *testing.T) {
	zt := NewZobristTable(standard)
	e3 := standard.ParseSquare("e3")
	e6 := standard.ParseSquare("e6")
	d6 := standard.ParseSquare("d6")

	if zt.EnPassant(e3) != zt.EnPassant(e6) {
		t.Error("en-passant key should depend only on the file")
	}
	if zt.EnPassant(e6) == zt.EnPassant(d6) {
		t.Error("different files should have different en-passant keys")
	}
}

func TestZobristTable_GeometriesDiffer(t *testing.T) {
	a := NewZobristTable(standard)
	b := NewZobristTable(chess.Geometry{Width: 10, Height: 8})
	if a.Side() == b.Side() {
		t.Error("different geometries should draw different key streams")
	}
	if b.Geometry().Width != 10 {
		t.Errorf("Geometry().Width = %d; want 10", b.Geometry().Width)
	}
}

func TestTableCache_Concurrent(t *testing.T) {
	cache := NewTableCache()
	geometries := []chess.Geometry{standard, {Width: 10, Height: 8}, {Width: 12, Height: 12}}

	const numWorkers = 16
	results := make([][]*ZobristTable, numWorkers)
	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for _, g := range geometries {
				results[worker] = append(results[worker], cache.Get(g))
			}
		}(i)
	}
	wg.Wait()

	if cache.Len() != len(geometries) {
		t.Errorf("Len() = %d; want %d", cache.Len(), len(geometries))
	}
	for worker := 1; worker < numWorkers; worker++ {
		for i := range geometries {
			if results[worker][i] != results[0][i] {
				t.Fatalf("worker %d got a different table for geometry %d", worker, i)
			}
		}
	}
}

func TestTables_Shared(t *testing.T) {
	if Tables(standard) != Tables(standard) {
		t.Error("Tables() should return the same table for equal geometries")
	}
}

func BenchmarkNewZobristTable(b *testing.B) {
	for i := 0; i < b.N; i++ {
		NewZobristTable(standard)
	}
}

func BenchmarkTables(b *testing.B) {
	Tables(standard)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Tables(standard)
	}
}
