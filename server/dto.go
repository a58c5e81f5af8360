package server

import (
	"strings"

	"minichess/game"
)

// Wire types speak rows and columns only; mapping clicks or pixels to squares
// belongs entirely to the client.

type squareDTO struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type pieceDTO struct {
	Color string `json:"color"`
	Kind  string `json:"kind"`
}

type moveDTO struct {
	From      squareDTO `json:"from"`
	To        squareDTO `json:"to"`
	Promotion string    `json:"promotion,omitempty"` // "Queen" when a pawn promotes
}

type stateDTO struct {
	ID       string                          `json:"id"`
	Board    [game.Rows][game.Cols]*pieceDTO `json:"board"`
	ToMove   string                          `json:"toMove"`
	Human    string                          `json:"human"`
	Moves    int                             `json:"moves"`
	Material int                             `json:"material"`
	Finished bool                            `json:"finished"`
}

func toSquareDTO(sq game.Square) squareDTO {
	return squareDTO{Row: sq.Row, Col: sq.Col}
}

func (s squareDTO) square() game.Square {
	return game.Square{Row: s.Row, Col: s.Col}
}

func toMoveDTO(mv game.Move) moveDTO {
	dto := moveDTO{From: toSquareDTO(mv.Start), To: toSquareDTO(mv.End)}
	if mv.Promotion != nil {
		dto.Promotion = mv.Promotion.String()
	}
	return dto
}

func toPieceDTO(piece *game.Piece) *pieceDTO {
	if piece == nil {
		return nil
	}
	return &pieceDTO{
		Color: strings.ToLower(piece.Color.String()),
		Kind:  strings.ToLower(piece.Kind.String()),
	}
}
