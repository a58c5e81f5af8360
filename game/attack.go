package game

// IsSquareAttacked reports whether any piece of by attacks sq on p. It walks
// the board itself instead of reusing GenerateMoves, because attack geometry
// and move legality differ: a pawn threatens its two forward diagonals even
// when they are empty, and a slider ray counts the first occupied square it
// reaches whatever that square's color. Returns false when by has no pieces
// or sq is off the board.
func IsSquareAttacked(p *Position, sq Square, by Color) bool {
	if !sq.InBounds() {
		return false
	}
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			from := Square{Row: r, Col: c}
			piece := p.Get(from)
			if piece == nil || piece.Color != by {
				continue
			}
			if attacks(p, from, *piece, sq) {
				return true
			}
		}
	}
	return false
}

func attacks(p *Position, from Square, piece Piece, sq Square) bool {
	switch piece.Kind {
	case Pawn:
		dir := 1
		if piece.Color == White {
			dir = -1
		}
		return from.Row+dir == sq.Row && (from.Col-1 == sq.Col || from.Col+1 == sq.Col)
	case Knight:
		return offsetAttacks(from, sq, knightOffsets)
	case King:
		return offsetAttacks(from, sq, kingOffsets)
	case Bishop:
		return rayAttacks(p, from, sq, diagonalDirs)
	case Rook:
		return rayAttacks(p, from, sq, orthogonalDirs)
	case Queen:
		return rayAttacks(p, from, sq, queenDirs)
	}
	return false
}

func offsetAttacks(from, sq Square, offsets []offset) bool {
	for _, o := range offsets {
		if from.Row+o.dr == sq.Row && from.Col+o.dc == sq.Col {
			return true
		}
	}
	return false
}

// rayAttacks casts each direction outward and reports whether sq is reached
// before the ray hits any occupied square.
func rayAttacks(p *Position, from, sq Square, dirs []offset) bool {
	for _, d := range dirs {
		to := Square{Row: from.Row + d.dr, Col: from.Col + d.dc}
		for to.InBounds() {
			if to == sq {
				return true
			}
			if p.Get(to) != nil {
				break
			}
			to.Row += d.dr
			to.Col += d.dc
		}
	}
	return false
}
