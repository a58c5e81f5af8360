package game

// Move ties a start square to an end square. Promotion is non-nil only for a
// pawn move landing on the opponent's home rank, and the engine only ever
// promotes to a queen.
//
// A Move carries no reference to the position it came from: it is a pure
// value, meaningful only against the position state it was generated for.
// Staleness after intervening moves is the caller's responsibility.
type Move struct {
	Start     Square
	End       Square
	Promotion *PieceKind
}

// String renders the move in long algebraic form, "e2e4" or "a7a8=Q".
func (m Move) String() string {
	s := m.Start.Notation() + m.End.Notation()
	if m.Promotion != nil {
		s += "=" + m.Promotion.Letter()
	}
	return s
}
