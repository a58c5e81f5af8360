package game

import "strings"

// Board dimensions, fixed for the lifetime of every Position.
const (
	Rows = 8
	Cols = 8
)

// Position is the full game state: an 8x8 grid of occupants plus the side to
// move. A nil cell is an empty square. One authoritative Position exists per
// game and is mutated in place by Apply; simulations always work on a Clone.
type Position struct {
	board  [Rows][Cols]*Piece
	toMove Color
}

// NewPosition returns the standard opening layout with White to move: Black
// on ranks 0 and 1, White on ranks 6 and 7.
func NewPosition() *Position {
	p := &Position{toMove: White}
	backRank := [Cols]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col, kind := range backRank {
		p.board[0][col] = &Piece{Color: Black, Kind: kind}
		p.board[7][col] = &Piece{Color: White, Kind: kind}
	}
	for col := 0; col < Cols; col++ {
		p.board[1][col] = &Piece{Color: Black, Kind: Pawn}
		p.board[6][col] = &Piece{Color: White, Kind: Pawn}
	}
	return p
}

// EmptyPosition returns a position with no pieces and the given side to move.
func EmptyPosition(toMove Color) *Position {
	return &Position{toMove: toMove}
}

// ToMove returns the side to move.
func (p *Position) ToMove() Color {
	return p.toMove
}

// Get returns the occupant of sq, or nil when the square is empty or out of
// bounds.
func (p *Position) Get(sq Square) *Piece {
	if !sq.InBounds() {
		return nil
	}
	return p.board[sq.Row][sq.Col]
}

// Set overwrites the occupant of sq. The caller must pass an in-bounds
// square; nil clears it.
func (p *Position) Set(sq Square, piece *Piece) {
	p.board[sq.Row][sq.Col] = piece
}

// Clone returns a deep copy sharing no mutable state with p: mutating either
// position never affects the other. This is what makes simulating candidate
// moves safe.
func (p *Position) Clone() *Position {
	c := &Position{toMove: p.toMove}
	for r := 0; r < Rows; r++ {
		for col := 0; col < Cols; col++ {
			if piece := p.board[r][col]; piece != nil {
				copied := *piece
				c.board[r][col] = &copied
			}
		}
	}
	return c
}

// Apply plays mv on p: the occupant of mv.Start moves to mv.End, a flagged
// pawn becomes a fresh queen of the mover's color, and the side to move
// flips. No legality check happens here; the caller contract is that only
// moves generated for p's current side to move are ever applied.
func (p *Position) Apply(mv Move) {
	piece := p.Get(mv.Start)
	p.Set(mv.Start, nil)
	if mv.Promotion != nil && piece != nil && piece.Kind == Pawn {
		p.Set(mv.End, &Piece{Color: piece.Color, Kind: *mv.Promotion})
	} else {
		p.Set(mv.End, piece)
	}
	p.toMove = p.toMove.Other()
}

// Material sums piece values over the whole board, White counting positive
// and Black negative. An empty board scores zero.
func (p *Position) Material() int {
	score := 0
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if piece := p.board[r][c]; piece != nil {
				if piece.Color == White {
					score += piece.Kind.Value()
				} else {
					score -= piece.Kind.Value()
				}
			}
		}
	}
	return score
}

// String renders the board row by row with Black's home rank on top, two
// letters per piece and dots for empty squares.
func (p *Position) String() string {
	var b strings.Builder
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			if piece := p.board[r][c]; piece != nil {
				b.WriteString(piece.String())
			} else {
				b.WriteString("..")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
