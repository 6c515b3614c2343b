package main

import (
	"isolation/config"
	"isolation/engine"
	"isolation/searcher/agent"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCreateAgent(t *testing.T) {
	iterative := true

	t.Run("configured player", func(t *testing.T) {
		a, err := createAgent(config.PlayerConfig{Algorithm: agent.AlphaBeta, Iterative: &iterative, Heuristic: "center-control"})

		require.NoError(t, err)
		require.NotNil(t, a)
	})

	t.Run("unknown algorithm", func(t *testing.T) {
		_, err := createAgent(config.PlayerConfig{Algorithm: "mcts", Iterative: &iterative, Heuristic: "center-control"})

		require.ErrorIs(t, err, agent.ErrUnknownAlgorithm)
	})
}

func TestRunGame(t *testing.T) {
	cfg, err := config.Setup("")
	require.NoError(t, err)
	cfg.Board = config.BoardConfig{Width: 4, Height: 4}
	cfg.TurnDuration = time.Second
	for i := range cfg.Players {
		cfg.Players[i].MaxDepth = 3
	}

	winner, gameMetric, moveMetrics, err := runGame(cfg)

	require.NoError(t, err)
	require.Equal(t, gameMetric.Winner, winner)
	require.Contains(t, []string{engine.Isolated, engine.Forfeit, engine.Timeout}, gameMetric.Reason)
	require.NotEmpty(t, moveMetrics)
}
