package metrics

import "time"

// Agent kinds playable in a matchup.
const (
	KindGreedy = "greedy"
	KindRandom = "random"
)

// AgentConfig describes one contender.
type AgentConfig struct {
	ID   int
	Kind string
	Seed uint64 // base seed, random agents only
}

// GameMetric captures whole-game figures.
type GameMetric struct {
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
	Material   int    // final balance, White positive
	OutOfMoves string // side that ran out of moves, empty when the cap was hit
}

// GameRecord ties a game's metrics to the agents that played it.
type GameRecord struct {
	ID    int
	White int // AgentConfig.ID
	Black int // AgentConfig.ID
	GameMetric
}

// MoveMetric captures one applied move.
type MoveMetric struct {
	Step     int
	Player   string
	Move     string
	Material int
}

// MoveRecord ties a move to its game.
type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}
