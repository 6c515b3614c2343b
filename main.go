package main

import (
	"flag"
	"fmt"
	"isolation/config"
	"isolation/engine"
	"isolation/game"
	"isolation/searcher/agent"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfgPath := flag.String("config", "", "Path to a YAML config file")
	level := flag.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	logLevel, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(logLevel)

	cfg, err := config.Setup(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to setup configuration")
	}

	winner, gameMetric, moveMetrics, err := runGame(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start game")
	}

	name := cfg.Players[winner-1].Name
	log.Info().
		Str("winner", name).
		Str("reason", gameMetric.Reason).
		Int("moves", gameMetric.TotalMoves).
		Int("searches", len(moveMetrics)).
		Dur("duration", gameMetric.Duration).
		Msg("game over")
}

// runGame plays a single game between the two configured players
func runGame(cfg *config.Config) (game.Player, engine.GameMetric, []engine.MoveMetric, error) {
	agents := make([]agent.Agent, len(cfg.Players))
	for i, p := range cfg.Players {
		a, err := createAgent(p)
		if err != nil {
			return 0, engine.GameMetric{}, nil, fmt.Errorf("failed to create agent %s: %w", p.Name, err)
		}
		agents[i] = a
	}

	board := game.NewBoard(cfg.Board.Width, cfg.Board.Height)
	e := engine.New(board, agents[0], agents[1],
		engine.WithTurnDuration(cfg.TurnDuration),
		engine.WithRandomOpenings(cfg.RandomOpenings, cfg.Seed),
	)

	winner, gameMetric, moveMetrics := e.Run()
	return winner, gameMetric, moveMetrics, nil
}

func createAgent(p config.PlayerConfig) (agent.Agent, error) {
	options, err := p.Options()
	if err != nil {
		return nil, err
	}
	return agent.New(p.Algorithm, *p.Iterative, options...)
}
