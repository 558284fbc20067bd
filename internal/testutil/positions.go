package testutil

// PerftCase is a position with its known move-path counts. Nodes[i] is the
// number of leaf nodes at depth i+1.
type PerftCase struct {
	Name    string
	Variant string // name accepted by config.VariantByName
	FEN     string
	Nodes   []uint64
}

// Depth returns the deepest depth with a known count.
func (c PerftCase) Depth() int {
	return len(c.Nodes)
}

// Shallow returns the case truncated to at most depth plies.
func (c PerftCase) Shallow(depth int) PerftCase {
	if depth < len(c.Nodes) {
		c.Nodes = c.Nodes[:depth]
	}
	return c
}

// PerftSuite holds the well known perft positions. The deepest counts take
// a fraction of a second; use Shallow under -short.
var PerftSuite = []PerftCase{
	{
		Name:    "start",
		Variant: "standard",
		FEN:     "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		Nodes:   []uint64{20, 400, 8902},
	},
	{
		Name:    "kiwipete",
		Variant: "standard",
		FEN:     "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		Nodes:   []uint64{48, 2039, 97862},
	},
	{
		Name:    "rook endgame",
		Variant: "standard",
		FEN:     "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		Nodes:   []uint64{14, 191, 2812},
	},
	{
		Name:    "promotions",
		Variant: "standard",
		FEN:     "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		Nodes:   []uint64{6, 264, 9467},
	},
	{
		Name:    "discovered checks",
		Variant: "standard",
		FEN:     "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		Nodes:   []uint64{44, 1486},
	},
	{
		Name:    "chess960",
		Variant: "chess960",
		FEN:     "bqnb1rkr/pp3ppp/3ppn2/2p5/5P2/P2P4/NPP1P1PP/BQ1BNRKR w HFhf - 2 9",
		Nodes:   []uint64{21, 528, 12189, 326672},
	},
	{
		Name:    "capablanca start",
		Variant: "capablanca",
		FEN:     "rnabqkbcnr/pppppppppp/10/10/10/10/PPPPPPPPPP/RNABQKBCNR w KQkq - 0 1",
		Nodes:   []uint64{28, 784},
	},
}

// FENCase is a FEN string with the string expected back after parsing.
type FENCase struct {
	Name    string
	Variant string
	FEN     string
	Want    string // equal to FEN when empty
}

// Expected returns the FEN output the case expects.
func (c FENCase) Expected() string {
	if c.Want == "" {
		return c.FEN
	}
	return c.Want
}

// FENSuite holds positions whose FEN output is known.
var FENSuite = []FENCase{
	{Name: "start", Variant: "standard", FEN: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
	{Name: "kiwipete", Variant: "standard", FEN: "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"},
	{Name: "black to move", Variant: "standard", FEN: "rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 1"},
	{Name: "usable en passant", Variant: "standard", FEN: "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 1"},
	{
		Name:    "phantom en passant dropped",
		Variant: "standard",
		FEN:     "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		Want:    "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1",
	},
	{
		Name:    "full-move number derived from history",
		Variant: "standard",
		FEN:     "8/8/8/4k3/8/8/8/KR6 w - - 12 60",
		Want:    "8/8/8/4k3/8/8/8/KR6 w - - 12 1",
	},
	{Name: "partial rights", Variant: "standard", FEN: "r3k2r/8/8/8/8/8/8/R3K2R b Kq - 0 1"},
	{Name: "chess960 shredder", Variant: "chess960", FEN: "bqnb1rkr/pp3ppp/3ppn2/2p5/5P2/P2P4/NPP1P1PP/BQ1BNRKR w HFhf - 2 1"},
	{Name: "capablanca", Variant: "capablanca", FEN: "rnabqkbcnr/pppppppppp/10/10/10/10/PPPPPPPPPP/RNABQKBCNR w KQkq - 0 1"},
	{
		Name:    "x-fen inner rook",
		Variant: "standard",
		FEN:     "4k3/8/8/8/8/8/8/R3K1RR w G - 0 1",
	},
	{
		Name:    "four fields",
		Variant: "standard",
		FEN:     "4k3/8/8/8/8/8/8/4K2R w K -",
		Want:    "4k3/8/8/8/8/8/8/4K2R w K - 0 1",
	},
}
