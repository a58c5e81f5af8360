package engine

import (
	"github.com/rs/zerolog/log"

	"minichess/game"
)

type option func(*LocalEngine)

// WithMaxMoves overrides the default move cap.
func WithMaxMoves(n int) option {
	return func(e *LocalEngine) {
		if n > 0 {
			e.maxMoves = n
		}
	}
}

// Update records one applied move and the material balance it left behind.
type Update struct {
	Move     game.Move
	Player   game.Color
	Material int
}

// Result summarizes a finished game. The engine cannot tell checkmate from
// stalemate, so it only reports which side ran out of moves, if any.
type Result struct {
	Updates    []Update
	Material   int
	OutOfMoves *game.Color // side left without a move, nil when the cap was hit
}

// LocalEngine owns the one authoritative Position of a game and drives two
// agents against each other. It is the sole writer of that position; agents
// only ever see it through ChooseMove and simulate on their own clones.
type LocalEngine struct {
	position *game.Position
	agents   [2]Agent // indexed by game.Color
	maxMoves int
}

// NewLocalEngine wires a white and a black agent to a fresh standard
// position.
func NewLocalEngine(white, black Agent, options ...option) *LocalEngine {
	if white.Color() != game.White || black.Color() != game.Black {
		panic("agents must play white and black respectively")
	}
	e := &LocalEngine{
		position: game.NewPosition(),
		maxMoves: MaxMoves,
	}
	e.agents[game.White] = white
	e.agents[game.Black] = black
	for _, option := range options {
		option(e)
	}
	return e
}

// Position exposes the authoritative position for driver-side inspection.
func (e *LocalEngine) Position() *game.Position {
	return e.position
}

// Run plays the game until an agent has no move or the move cap is reached,
// and returns the per-move history.
func (e *LocalEngine) Run() Result {
	var result Result

	log.Info().Str("player", e.position.ToMove().String()).Msg("game starting")

	for len(result.Updates) < e.maxMoves {
		mover := e.position.ToMove()
		move := e.agents[mover].ChooseMove(e.position)
		if move == nil {
			out := mover
			result.OutOfMoves = &out
			log.Info().Str("player", mover.String()).Msg("no moves left")
			break
		}

		e.position.Apply(*move)
		result.Updates = append(result.Updates, Update{
			Move:     *move,
			Player:   mover,
			Material: e.position.Material(),
		})
		log.Debug().
			Str("player", mover.String()).
			Stringer("move", *move).
			Int("material", e.position.Material()).
			Msg("move applied")
	}

	result.Material = e.position.Material()
	log.Info().
		Int("moves", len(result.Updates)).
		Int("material", result.Material).
		Msg("game over")
	return result
}
