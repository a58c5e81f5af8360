package player

import "minichess/game"

// Greedy picks one move per turn for a fixed color with a three-tier policy:
// the most valuable capture whose landing square is safe after the exchange,
// otherwise the move with the best one-ply material balance, otherwise the
// first generated move. It keeps no state between calls and simulates every
// candidate on a private clone of the position, so the authoritative game
// state is never touched.
type Greedy struct {
	color game.Color
}

// NewGreedy returns a greedy chooser playing color.
func NewGreedy(color game.Color) *Greedy {
	return &Greedy{color: color}
}

// Color returns the side the chooser plays.
func (g *Greedy) Color() game.Color {
	return g.color
}

// ChooseMove returns the chosen move, or nil when the color has no
// pseudo-legal moves. The caller must treat nil as a terminal state; the
// chooser cannot tell stalemate from checkmate.
func (g *Greedy) ChooseMove(pos *game.Position) *game.Move {
	moves := game.GenerateMoves(pos, g.color)
	if len(moves) == 0 {
		return nil
	}

	if mv := g.bestSafeCapture(pos, moves); mv != nil {
		return mv
	}
	if mv := g.bestMaterial(pos, moves); mv != nil {
		return mv
	}
	mv := moves[0]
	return &mv
}

// bestSafeCapture returns the capture of the highest-valued piece whose
// destination is not attacked by the opponent after the move, or nil when no
// capture qualifies. Ties keep the earliest generated move.
func (g *Greedy) bestSafeCapture(pos *game.Position, moves []game.Move) *game.Move {
	var best *game.Move
	bestValue := -1
	for i := range moves {
		target := pos.Get(moves[i].End)
		if target == nil || target.Color == g.color {
			continue
		}
		sim := pos.Clone()
		sim.Apply(moves[i])
		if game.IsSquareAttacked(sim, moves[i].End, g.color.Other()) {
			continue
		}
		if value := target.Kind.Value(); value > bestValue {
			bestValue = value
			best = &moves[i]
		}
	}
	if best == nil {
		return nil
	}
	mv := *best
	return &mv
}

// bestMaterial simulates every move and keeps the one with the best material
// balance one ply out: maximal for White, minimal for Black. Ties keep the
// earliest generated move.
func (g *Greedy) bestMaterial(pos *game.Position, moves []game.Move) *game.Move {
	var best *game.Move
	bestEval := 0
	for i := range moves {
		sim := pos.Clone()
		sim.Apply(moves[i])
		eval := sim.Material()
		better := best == nil ||
			(g.color == game.White && eval > bestEval) ||
			(g.color == game.Black && eval < bestEval)
		if better {
			bestEval = eval
			best = &moves[i]
		}
	}
	if best == nil {
		return nil
	}
	mv := *best
	return &mv
}
