package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPosition(t *testing.T) {
	p := NewPosition()

	t.Run("white moves first", func(t *testing.T) {
		require.Equal(t, White, p.ToMove())
	})

	t.Run("sixteen pieces per color", func(t *testing.T) {
		white, black := 0, 0
		for r := 0; r < Rows; r++ {
			for c := 0; c < Cols; c++ {
				piece := p.Get(Square{Row: r, Col: c})
				if piece == nil {
					continue
				}
				if piece.Color == White {
					white++
				} else {
					black++
				}
			}
		}
		require.Equal(t, 16, white)
		require.Equal(t, 16, black)
	})

	t.Run("kings on column 4", func(t *testing.T) {
		require.Equal(t, &Piece{Color: Black, Kind: King}, p.Get(Square{Row: 0, Col: 4}))
		require.Equal(t, &Piece{Color: White, Kind: King}, p.Get(Square{Row: 7, Col: 4}))
	})

	t.Run("layout mirrored across the midline", func(t *testing.T) {
		for c := 0; c < Cols; c++ {
			top, bottom := p.Get(Square{Row: 0, Col: c}), p.Get(Square{Row: 7, Col: c})
			require.Equal(t, top.Kind, bottom.Kind, "column %d", c)
			require.Equal(t, Black, top.Color)
			require.Equal(t, White, bottom.Color)

			require.Equal(t, Pawn, p.Get(Square{Row: 1, Col: c}).Kind)
			require.Equal(t, Pawn, p.Get(Square{Row: 6, Col: c}).Kind)
		}
	})

	t.Run("middle ranks empty", func(t *testing.T) {
		for r := 2; r < 6; r++ {
			for c := 0; c < Cols; c++ {
				require.Nil(t, p.Get(Square{Row: r, Col: c}))
			}
		}
	})

	t.Run("material balanced", func(t *testing.T) {
		require.Equal(t, 0, p.Material())
	})
}

func TestPositionGet(t *testing.T) {
	p := NewPosition()

	t.Run("out of bounds is nil", func(t *testing.T) {
		require.Nil(t, p.Get(Square{Row: -1, Col: 0}))
		require.Nil(t, p.Get(Square{Row: 0, Col: 8}))
		require.Nil(t, p.Get(Square{Row: 8, Col: 8}))
	})

	t.Run("empty square is nil", func(t *testing.T) {
		require.Nil(t, p.Get(Square{Row: 4, Col: 4}))
	})

	t.Run("occupied square returns its piece", func(t *testing.T) {
		require.Equal(t, &Piece{Color: White, Kind: Queen}, p.Get(Square{Row: 7, Col: 3}))
	})
}

func TestPositionApply(t *testing.T) {
	t.Run("moves the piece and flips the side to move", func(t *testing.T) {
		p := NewPosition()
		p.Apply(Move{Start: Square{Row: 6, Col: 4}, End: Square{Row: 4, Col: 4}})

		require.Nil(t, p.Get(Square{Row: 6, Col: 4}))
		require.Equal(t, &Piece{Color: White, Kind: Pawn}, p.Get(Square{Row: 4, Col: 4}))
		require.Equal(t, Black, p.ToMove())
	})

	t.Run("capture replaces the occupant", func(t *testing.T) {
		p := EmptyPosition(White)
		p.Set(Square{Row: 4, Col: 0}, &Piece{Color: White, Kind: Rook})
		p.Set(Square{Row: 4, Col: 5}, &Piece{Color: Black, Kind: Knight})

		p.Apply(Move{Start: Square{Row: 4, Col: 0}, End: Square{Row: 4, Col: 5}})

		require.Equal(t, &Piece{Color: White, Kind: Rook}, p.Get(Square{Row: 4, Col: 5}))
		require.Equal(t, 5, p.Material())
	})

	t.Run("flagged pawn becomes a queen", func(t *testing.T) {
		p := EmptyPosition(White)
		p.Set(Square{Row: 1, Col: 0}, &Piece{Color: White, Kind: Pawn})
		queen := Queen

		p.Apply(Move{Start: Square{Row: 1, Col: 0}, End: Square{Row: 0, Col: 0}, Promotion: &queen})

		require.Equal(t, &Piece{Color: White, Kind: Queen}, p.Get(Square{Row: 0, Col: 0}))
	})

	t.Run("promotion flag ignored for non-pawns", func(t *testing.T) {
		p := EmptyPosition(White)
		p.Set(Square{Row: 1, Col: 0}, &Piece{Color: White, Kind: Rook})
		queen := Queen

		p.Apply(Move{Start: Square{Row: 1, Col: 0}, End: Square{Row: 0, Col: 0}, Promotion: &queen})

		require.Equal(t, &Piece{Color: White, Kind: Rook}, p.Get(Square{Row: 0, Col: 0}))
	})
}

func TestPositionCloneIndependence(t *testing.T) {
	original := NewPosition()
	clone := original.Clone()

	clone.Apply(Move{Start: Square{Row: 6, Col: 4}, End: Square{Row: 4, Col: 4}})

	t.Run("original unchanged by clone mutation", func(t *testing.T) {
		require.Equal(t, &Piece{Color: White, Kind: Pawn}, original.Get(Square{Row: 6, Col: 4}))
		require.Nil(t, original.Get(Square{Row: 4, Col: 4}))
		require.Equal(t, White, original.ToMove())
	})

	t.Run("clone unchanged by original mutation", func(t *testing.T) {
		original.Apply(Move{Start: Square{Row: 6, Col: 0}, End: Square{Row: 5, Col: 0}})
		require.Equal(t, &Piece{Color: White, Kind: Pawn}, clone.Get(Square{Row: 6, Col: 0}))
		require.Nil(t, clone.Get(Square{Row: 5, Col: 0}))
	})
}

func TestPositionMaterial(t *testing.T) {
	t.Run("empty board is zero", func(t *testing.T) {
		require.Equal(t, 0, EmptyPosition(White).Material())
	})

	t.Run("signed sum of piece values", func(t *testing.T) {
		p := EmptyPosition(White)
		p.Set(Square{Row: 0, Col: 0}, &Piece{Color: White, Kind: Queen})
		p.Set(Square{Row: 1, Col: 0}, &Piece{Color: White, Kind: King})
		p.Set(Square{Row: 7, Col: 7}, &Piece{Color: Black, Kind: Rook})
		p.Set(Square{Row: 7, Col: 6}, &Piece{Color: Black, Kind: Pawn})

		// 9 + 0 - 5 - 1, the king counts for nothing
		require.Equal(t, 3, p.Material())
	})
}
