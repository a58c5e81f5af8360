package game

// offset is a relative board step.
type offset struct {
	dr int
	dc int
}

var (
	knightOffsets = []offset{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = []offset{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}

	diagonalDirs   = []offset{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	orthogonalDirs = []offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	queenDirs      = append(append([]offset{}, diagonalDirs...), orthogonalDirs...)
)

// GenerateMoves returns every pseudo-legal move for color on p. Squares are
// scanned in row-major order and each piece appends its moves in a fixed
// per-kind order, so two calls on an unchanged position return identical
// sequences. Moves that leave the mover's own king capturable are not
// filtered out.
func GenerateMoves(p *Position, color Color) []Move {
	var moves []Move
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			from := Square{Row: r, Col: c}
			piece := p.Get(from)
			if piece == nil || piece.Color != color {
				continue
			}
			moves = append(moves, pieceMoves(p, from, *piece)...)
		}
	}
	return moves
}

// pieceMoves dispatches over the closed set of piece kinds.
func pieceMoves(p *Position, from Square, piece Piece) []Move {
	switch piece.Kind {
	case Pawn:
		return pawnMoves(p, from, piece.Color)
	case Knight:
		return offsetMoves(p, from, piece.Color, knightOffsets)
	case Bishop:
		return sliderMoves(p, from, piece.Color, diagonalDirs)
	case Rook:
		return sliderMoves(p, from, piece.Color, orthogonalDirs)
	case Queen:
		return sliderMoves(p, from, piece.Color, queenDirs)
	case King:
		return offsetMoves(p, from, piece.Color, kingOffsets)
	}
	return nil
}

// pawnMoves generates the single push, the double push from the pawn's home
// row, and the two diagonal captures. Black pawns advance toward increasing
// rows, White toward decreasing rows. En passant is never generated.
func pawnMoves(p *Position, from Square, color Color) []Move {
	dir, homeRow := 1, 1
	if color == White {
		dir, homeRow = -1, 6
	}

	var moves []Move
	one := Square{Row: from.Row + dir, Col: from.Col}
	if one.InBounds() && p.Get(one) == nil {
		moves = append(moves, maybePromote(Move{Start: from, End: one}, color))
		two := Square{Row: from.Row + 2*dir, Col: from.Col}
		if from.Row == homeRow && p.Get(two) == nil {
			moves = append(moves, Move{Start: from, End: two})
		}
	}
	for _, dc := range [2]int{-1, 1} {
		to := Square{Row: from.Row + dir, Col: from.Col + dc}
		if target := p.Get(to); target != nil && target.Color != color {
			moves = append(moves, maybePromote(Move{Start: from, End: to}, color))
		}
	}
	return moves
}

// maybePromote flags mv with a queen promotion when it lands on the
// opponent's home rank. Under-promotion is never offered.
func maybePromote(mv Move, color Color) Move {
	if (color == White && mv.End.Row == 0) || (color == Black && mv.End.Row == 7) {
		queen := Queen
		mv.Promotion = &queen
	}
	return mv
}

// offsetMoves generates fixed-offset moves for knights and kings: every
// in-bounds destination not occupied by a same-color piece.
func offsetMoves(p *Position, from Square, color Color, offsets []offset) []Move {
	var moves []Move
	for _, o := range offsets {
		to := Square{Row: from.Row + o.dr, Col: from.Col + o.dc}
		if !to.InBounds() {
			continue
		}
		if target := p.Get(to); target == nil || target.Color != color {
			moves = append(moves, Move{Start: from, End: to})
		}
	}
	return moves
}

// sliderMoves walks each direction one square at a time: empty squares are
// added and the walk continues, an enemy piece is added and stops the walk,
// an own piece stops the walk without being added.
func sliderMoves(p *Position, from Square, color Color, dirs []offset) []Move {
	var moves []Move
	for _, d := range dirs {
		to := Square{Row: from.Row + d.dr, Col: from.Col + d.dc}
		for to.InBounds() {
			target := p.Get(to)
			if target == nil {
				moves = append(moves, Move{Start: from, End: to})
			} else {
				if target.Color != color {
					moves = append(moves, Move{Start: from, End: to})
				}
				break
			}
			to.Row += d.dr
			to.Col += d.dc
		}
	}
	return moves
}
