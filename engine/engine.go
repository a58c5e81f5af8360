package engine

import "minichess/game"

// MaxMoves caps runaway games: without draw or repetition rules two stubborn
// sides can shuffle pieces forever.
const MaxMoves = 512

// Agent picks one move per turn for a fixed side. ChooseMove returns nil when
// the side has no pseudo-legal moves; the engine treats that as the end of
// the game.
type Agent interface {
	Color() game.Color
	ChooseMove(*game.Position) *game.Move
}
