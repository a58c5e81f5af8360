package experiments

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"minichess/engine"
	"minichess/experiments/metrics"
	"minichess/game"
	"minichess/player"
)

const NumGames = 10 // per matchup

var agentConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: metrics.KindGreedy},
	{ID: 2, Kind: metrics.KindRandom, Seed: 1},
}

// RunMatchups plays every pairing of the configured agents, NumGames each,
// and writes the records to a timestamped CSV run directory.
func RunMatchups() error {
	var matchUps [][2]metrics.AgentConfig
	for _, white := range agentConfigs {
		for _, black := range agentConfigs {
			matchUps = append(matchUps, [2]metrics.AgentConfig{white, black})
		}
	}

	timestamp := time.Now().UTC().Format(time.RFC3339)
	writer, err := metrics.NewWriter(filepath.Join("experiments", "matchups", timestamp))
	if err != nil {
		return fmt.Errorf("failed to create metrics writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(agentConfigs); err != nil {
		return err
	}

	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord
	gameID := 0
	for _, matchUp := range matchUps {
		log.Info().
			Int("white", matchUp[0].ID).
			Int("black", matchUp[1].ID).
			Msg("starting matchup")
		for i := 0; i < NumGames; i++ {
			gameID++
			record, moves := runGame(gameID, matchUp[0], matchUp[1])
			gameRecords = append(gameRecords, record)
			moveRecords = append(moveRecords, moves...)
		}
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return err
	}
	log.Info().
		Str("dir", writer.BaseDir()).
		Int("games", len(gameRecords)).
		Int("moves", len(moveRecords)).
		Msg("matchups finished")
	return nil
}

// runGame plays one game between the two configured agents and converts the
// engine result into records.
func runGame(id int, white, black metrics.AgentConfig) (metrics.GameRecord, []metrics.MoveRecord) {
	e := engine.NewLocalEngine(newAgent(white, game.White, id), newAgent(black, game.Black, id))

	start := time.Now()
	result := e.Run()
	end := time.Now()

	record := metrics.GameRecord{
		ID:    id,
		White: white.ID,
		Black: black.ID,
		GameMetric: metrics.GameMetric{
			StartTime:  start,
			EndTime:    end,
			Duration:   end.Sub(start),
			TotalMoves: len(result.Updates),
			Material:   result.Material,
		},
	}
	if result.OutOfMoves != nil {
		record.OutOfMoves = result.OutOfMoves.String()
	}

	moves := make([]metrics.MoveRecord, len(result.Updates))
	for i, u := range result.Updates {
		moves[i] = metrics.MoveRecord{
			Game: id,
			MoveMetric: metrics.MoveMetric{
				Step:     i + 1,
				Player:   u.Player.String(),
				Move:     u.Move.String(),
				Material: u.Material,
			},
		}
	}
	return record, moves
}

// newAgent builds the configured agent. Random agents get a per-game,
// per-color seed so repeated games differ but the whole run stays
// reproducible.
func newAgent(config metrics.AgentConfig, color game.Color, gameID int) engine.Agent {
	switch config.Kind {
	case metrics.KindRandom:
		seed := config.Seed + uint64(gameID)*2 + uint64(color)
		return player.NewRandom(color, seed)
	default:
		return player.NewGreedy(color)
	}
}
