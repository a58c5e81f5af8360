package player

import (
	"golang.org/x/exp/rand"

	"minichess/game"
)

// Random plays a uniformly random pseudo-legal move. It serves as the
// baseline opponent in the experiment harness.
type Random struct {
	color game.Color
	rng   *rand.Rand
}

// NewRandom returns a random mover for color, seeded for reproducible games.
func NewRandom(color game.Color, seed uint64) *Random {
	return &Random{color: color, rng: rand.New(rand.NewSource(seed))}
}

// Color returns the side the mover plays.
func (r *Random) Color() game.Color {
	return r.color
}

// ChooseMove returns a random generated move, or nil when there is none.
func (r *Random) ChooseMove(pos *game.Position) *game.Move {
	moves := game.GenerateMoves(pos, r.color)
	if len(moves) == 0 {
		return nil
	}
	mv := moves[r.rng.Intn(len(moves))]
	return &mv
}
