package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Chess960Count is the number of Fischer-random starting positions.
const Chess960Count = 960

// StandardChess960Index is the Chess960 number of the orthodox array.
const StandardChess960Index = 518

// knightPlacements lists, for each knight code, the two empty squares
// (counting from the a-file) the knights take after bishops and queen.
var knightPlacements = [10][2]int{
	{0, 1}, {0, 2}, {0, 3}, {0, 4},
	{1, 2}, {1, 3}, {1, 4},
	{2, 3}, {2, 4},
	{3, 4},
}

// Chess960BackRank returns the back-rank piece order of Chess960 start
// position n using Scharnagl numbering.
func Chess960BackRank(n int) ([8]chess.PieceType, error) {
	var rank [8]chess.PieceType
	if n < 0 || n >= Chess960Count {
		return rank, errors.Wrapf(errors.ErrInvalidConfig, "chess960 position %d out of range 0-%d", n, Chess960Count-1)
	}

	rank[n%4*2+1] = chess.Bishop
	n /= 4
	rank[n%4*2] = chess.Bishop
	n /= 4
	queen := n % 6
	n /= 6
	knights := knightPlacements[n]

	// place fills the i-th empty square
	place := func(i int, t chess.PieceType) {
		for file := range rank {
			if rank[file] != chess.NoPieceType {
				continue
			}
			if i == 0 {
				rank[file] = t
				return
			}
			i--
		}
	}
	place(queen, chess.Queen)
	// The second knight goes first so the first knight's index still counts
	// the same empty squares.
	place(knights[1], chess.Knight)
	place(knights[0], chess.Knight)
	place(0, chess.Rook)
	place(0, chess.King)
	place(0, chess.Rook)
	return rank, nil
}

// Chess960FEN returns the FEN of Chess960 start position n with
// Shredder-style castling rights.
func Chess960FEN(n int) (string, error) {
	rank, err := Chess960BackRank(n)
	if err != nil {
		return "", err
	}

	letters := map[chess.PieceType]byte{
		chess.Knight: 'N', chess.Bishop: 'B', chess.Rook: 'R', chess.Queen: 'Q', chess.King: 'K',
	}
	var white strings.Builder
	var rookFiles []byte
	for file, t := range rank {
		white.WriteByte(letters[t])
		if t == chess.Rook {
			rookFiles = append(rookFiles, byte('a'+file))
		}
	}
	black := strings.ToLower(white.String())
	// King-side rook first, as in FEN output.
	castling := fmt.Sprintf("%c%c%c%c",
		rookFiles[1]-'a'+'A', rookFiles[0]-'a'+'A', rookFiles[1], rookFiles[0])

	return fmt.Sprintf("%s/pppppppp/8/8/8/8/PPPPPPPP/%s w %s - 0 1", black, white.String(), castling), nil
}

// HasStandardCastling reports whether every remaining castling right uses
// the orthodox setup: king on the e-file, rooks on the a- and h-files of
// an 8x8 board.
func (p *Position) HasStandardCastling() bool {
	g := p.geometry
	if g.Width != 8 || g.Height != 8 {
		return false
	}
	for _, side := range []chess.Side{chess.White, chess.Black} {
		back := g.BackRank(side)
		rights := p.castling[side]
		if rights[chess.QueenSide] == chess.NoSquare && rights[chess.KingSide] == chess.NoSquare {
			continue
		}
		if p.kings[side] != g.Square(4, back) {
			return false
		}
		if rs := rights[chess.QueenSide]; rs != chess.NoSquare && rs != g.Square(0, back) {
			return false
		}
		if rs := rights[chess.KingSide]; rs != chess.NoSquare && rs != g.Square(7, back) {
			return false
		}
	}
	return true
}
