package game

import "fmt"

// Square addresses one board cell. Row 0 is Black's home rank, row 7 is
// White's home rank, and column 0 is the leftmost file from White's side of
// the board. This is the only coordinate system used anywhere in the module.
type Square struct {
	Row int
	Col int
}

// InBounds reports whether the square lies on the 8x8 board.
func (s Square) InBounds() bool {
	return s.Row >= 0 && s.Row < Rows && s.Col >= 0 && s.Col < Cols
}

// Notation returns the algebraic name of the square, "e2" for (6,4).
func (s Square) Notation() string {
	return fmt.Sprintf("%c%d", 'a'+s.Col, Rows-s.Row)
}

func (s Square) String() string {
	return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
}
