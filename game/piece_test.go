package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestColor(t *testing.T) {
	t.Run("other flips the side", func(t *testing.T) {
		require.Equal(t, Black, White.Other())
		require.Equal(t, White, Black.Other())
	})

	t.Run("colors double as small indexes", func(t *testing.T) {
		// Agent tables and seeds rely on White being 0 and Black being 1.
		require.EqualValues(t, 0, White)
		require.EqualValues(t, 1, Black)
	})

	t.Run("names", func(t *testing.T) {
		require.Equal(t, "White", White.String())
		require.Equal(t, "Black", Black.String())
	})
}

func TestPieceKindValue(t *testing.T) {
	values := map[PieceKind]int{
		Pawn:   1,
		Knight: 3,
		Bishop: 3,
		Rook:   5,
		Queen:  9,
		King:   0,
	}
	for kind, want := range values {
		require.Equal(t, want, kind.Value(), kind.String())
	}
}

func TestPieceKindLetter(t *testing.T) {
	require.Equal(t, "N", Knight.Letter())
	require.Equal(t, "K", King.Letter())
	require.Equal(t, "P", Pawn.Letter())
}

func TestPieceString(t *testing.T) {
	require.Equal(t, "wQ", Piece{Color: White, Kind: Queen}.String())
	require.Equal(t, "bN", Piece{Color: Black, Kind: Knight}.String())
}

func TestSquare(t *testing.T) {
	t.Run("bounds", func(t *testing.T) {
		require.True(t, Square{Row: 0, Col: 0}.InBounds())
		require.True(t, Square{Row: 7, Col: 7}.InBounds())
		require.False(t, Square{Row: -1, Col: 0}.InBounds())
		require.False(t, Square{Row: 0, Col: 8}.InBounds())
		require.False(t, Square{Row: 8, Col: 0}.InBounds())
	})

	t.Run("algebraic notation", func(t *testing.T) {
		require.Equal(t, "e2", Square{Row: 6, Col: 4}.Notation())
		require.Equal(t, "a8", Square{Row: 0, Col: 0}.Notation())
		require.Equal(t, "h1", Square{Row: 7, Col: 7}.Notation())
	})
}
