package config

import (
	"io"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithVariant sets the rule set.
func (b *ConfigBuilder) WithVariant(v *Variant) *ConfigBuilder {
	b.cfg.Variant = v
	return b
}

// WithNotation sets the move notation.
func (b *ConfigBuilder) WithNotation(n MoveNotation) *ConfigBuilder {
	b.cfg.Output.Notation = n
	return b
}

// WithFenNotation forces a FEN dialect regardless of the variant.
func (b *ConfigBuilder) WithFenNotation(n FenNotation) *ConfigBuilder {
	b.cfg.Output.FenNotation = n
	b.cfg.Output.ForceFenNotation = true
	return b
}

// WithPerft enables perft to the given depth.
func (b *ConfigBuilder) WithPerft(depth int, divide bool) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	b.cfg.Perft.Divide = divide
	return b
}

// WithWorkers sets the number of perft workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}

// WithVerify enables reference cross-checking of perft counts.
func (b *ConfigBuilder) WithVerify(enabled bool) *ConfigBuilder {
	b.cfg.Perft.Verify = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostics writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// VariantBuilder provides a fluent API for custom rule sets. It starts
// from a copy of a base variant so only the differences need stating.
type VariantBuilder struct {
	v *Variant
}

// NewVariantBuilder creates a builder seeded with a copy of base.
func NewVariantBuilder(name string, base *Variant) *VariantBuilder {
	v := *base
	v.Name = name
	v.Pieces = slices.Clone(base.Pieces)
	return &VariantBuilder{v: &v}
}

// WithSize sets the board width and height.
func (b *VariantBuilder) WithSize(width, height int) *VariantBuilder {
	b.v.Width = width
	b.v.Height = height
	return b
}

// WithKingCapture controls whether kings may capture.
func (b *VariantBuilder) WithKingCapture(enabled bool) *VariantBuilder {
	b.v.KingCanCapture = enabled
	return b
}

// WithUpperCaseSide sets the side written in upper case in FEN.
func (b *VariantBuilder) WithUpperCaseSide(side chess.Side) *VariantBuilder {
	b.v.UpperCaseSide = side
	return b
}

// WithFenNotation sets the default FEN dialect.
func (b *VariantBuilder) WithFenNotation(n FenNotation) *VariantBuilder {
	b.v.FenNotation = n
	return b
}

// WithRandom marks the variant as Fischer-random style.
func (b *VariantBuilder) WithRandom(random bool) *VariantBuilder {
	b.v.Random = random
	return b
}

// WithStartingFEN sets the starting position.
func (b *VariantBuilder) WithStartingFEN(fen string) *VariantBuilder {
	b.v.StartingFEN = fen
	return b
}

// WithPiece adds a piece type, replacing any existing definition of it.
func (b *VariantBuilder) WithPiece(def PieceDef) *VariantBuilder {
	b.WithoutPiece(def.Type)
	b.v.Pieces = append(b.v.Pieces, def)
	return b
}

// WithoutPiece removes a piece type.
func (b *VariantBuilder) WithoutPiece(t chess.PieceType) *VariantBuilder {
	b.v.Pieces = slices.DeleteFunc(b.v.Pieces, func(d PieceDef) bool { return d.Type == t })
	return b
}

// Build validates and returns the variant.
func (b *VariantBuilder) Build() (*Variant, error) {
	if err := b.v.Validate(); err != nil {
		return nil, err
	}
	v := *b.v
	v.Pieces = slices.Clone(b.v.Pieces)
	return &v, nil
}
