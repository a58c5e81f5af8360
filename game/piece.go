package game

// Color identifies a side, White or Black.
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// PieceKind enumerates the six piece kinds.
type PieceKind uint8

const (
	King PieceKind = iota
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

// pieceValues holds the fixed material value per kind. The king is worth
// nothing so material sums never need an infinite sentinel.
var pieceValues = [6]int{King: 0, Queen: 9, Rook: 5, Bishop: 3, Knight: 3, Pawn: 1}

// Value returns the material value of the kind.
func (k PieceKind) Value() int {
	return pieceValues[k]
}

func (k PieceKind) String() string {
	switch k {
	case King:
		return "King"
	case Queen:
		return "Queen"
	case Rook:
		return "Rook"
	case Bishop:
		return "Bishop"
	case Knight:
		return "Knight"
	case Pawn:
		return "Pawn"
	}
	return "Unknown"
}

// Letter returns the algebraic letter for the kind, "N" for Knight.
func (k PieceKind) Letter() string {
	switch k {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Pawn:
		return "P"
	}
	return "?"
}

// Piece is a colored piece. Pieces are immutable values; positions place and
// remove them but never change one in place.
type Piece struct {
	Color Color
	Kind  PieceKind
}

// String renders the piece as a two-letter tag like "wQ" or "bN".
func (p Piece) String() string {
	if p.Color == White {
		return "w" + p.Kind.Letter()
	}
	return "b" + p.Kind.Letter()
}
