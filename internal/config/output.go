package config

// MoveNotation represents the notation moves are read and written in.
type MoveNotation int

const (
	SAN MoveNotation = iota // Standard Algebraic Notation (Nf3, O-O)
	LAN                     // Long algebraic / UCI (g1f3, e1g1)
)

// String returns the string representation of a move notation.
func (n MoveNotation) String() string {
	if n == LAN {
		return "LAN"
	}
	return "SAN"
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Notation is used for both move input and move output.
	Notation MoveNotation

	// FenNotation replaces the variant's FEN dialect when ForceFenNotation is set.
	FenNotation      FenNotation
	ForceFenNotation bool

	// ShowFEN prints the position after the moves have been applied.
	ShowFEN bool

	// ListLegal prints the legal moves of the final position.
	ListLegal bool

	// ShowResult prints the terminal status of the final position.
	ShowResult bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Notation:    SAN,
		FenNotation: XFen,
		ShowFEN:     true,
	}
}
