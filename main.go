package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"minichess/engine"
	"minichess/experiments"
	"minichess/game"
	"minichess/player"
	"minichess/server"
)

func main() {
	mode := flag.String("mode", "game", "game, experiment or serve")
	addr := flag.String("addr", ":3000", "listen address for serve mode")
	debug := flag.Bool("debug", false, "enable per-move debug logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	switch *mode {
	case "game":
		runDemoGame()
	case "experiment":
		if err := experiments.RunMatchups(); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
	case "serve":
		app := server.New()
		log.Info().Str("addr", *addr).Msg("listening")
		if err := app.Listen(*addr); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
	default:
		log.Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}

// runDemoGame plays the greedy chooser against itself and prints the final
// board.
func runDemoGame() {
	e := engine.NewLocalEngine(player.NewGreedy(game.White), player.NewGreedy(game.Black))
	result := e.Run()

	log.Info().
		Int("moves", len(result.Updates)).
		Int("material", result.Material).
		Msg("demo game finished")
	fmt.Print(e.Position().String())
}
