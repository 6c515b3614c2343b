package config

import (
	"isolation/game"
	"isolation/searcher"
	"isolation/searcher/agent"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "isolation.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSetup(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Setup("")
		require.NoError(t, err)

		require.Equal(t, BoardConfig{Width: 7, Height: 7}, cfg.Board)
		require.Equal(t, 150*time.Millisecond, cfg.TurnDuration)
		require.Equal(t, 2, cfg.RandomOpenings)
		require.Len(t, cfg.Players, 2)

		first, second := cfg.Players[0], cfg.Players[1]
		require.Equal(t, agent.AlphaBeta, first.Algorithm)
		require.True(t, *first.Iterative, "Alpha-beta should deepen iteratively by default")
		require.Equal(t, agent.Minimax, second.Algorithm)
		require.False(t, *second.Iterative, "Minimax should search at a fixed depth by default")
		for _, p := range cfg.Players {
			require.Equal(t, searcher.DefaultSearchDepth, p.SearchDepth)
			require.Equal(t, searcher.DefaultThreshold, p.Timeout)
			require.Equal(t, "opponent-distance", p.Heuristic)
		}
	})

	t.Run("config file", func(t *testing.T) {
		path := writeConfig(t, `
board:
  width: 5
  height: 4
turn_duration: 1s
random_openings: 0
players:
  - name: deep
    algorithm: alphabeta
    heuristic: center-control
    max_depth: 6
  - algorithm: minimax
    iterative: true
    search_depth: 2
    timeout: 5ms
`)

		cfg, err := Setup(path)
		require.NoError(t, err)

		require.Equal(t, BoardConfig{Width: 5, Height: 4}, cfg.Board)
		require.Equal(t, time.Second, cfg.TurnDuration)
		require.Zero(t, cfg.RandomOpenings)

		deep := cfg.Players[0]
		require.Equal(t, "deep", deep.Name)
		require.Equal(t, "center-control", deep.Heuristic)
		require.Equal(t, 6, deep.MaxDepth)
		require.True(t, *deep.Iterative)

		second := cfg.Players[1]
		require.Equal(t, "player2", second.Name, "Unnamed players are numbered")
		require.True(t, *second.Iterative)
		require.Equal(t, 2, second.SearchDepth)
		require.Equal(t, 5*time.Millisecond, second.Timeout)
	})

	t.Run("environment override", func(t *testing.T) {
		t.Setenv("ISOLATION_TURN_DURATION", "300ms")
		t.Setenv("ISOLATION_BOARD_WIDTH", "9")

		cfg, err := Setup("")
		require.NoError(t, err)

		require.Equal(t, 300*time.Millisecond, cfg.TurnDuration)
		require.Equal(t, 9, cfg.Board.Width)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Setup(filepath.Join(t.TempDir(), "missing.yaml"))

		require.Error(t, err)
	})

	t.Run("invalid settings", func(t *testing.T) {
		for name, content := range map[string]string{
			"unknown algorithm": "players:\n  - algorithm: mcts\n  - algorithm: minimax\n",
			"single player":     "players:\n  - algorithm: minimax\n",
			"unknown heuristic": "players:\n  - heuristic: vibes\n  - algorithm: minimax\n",
			"negative depth":    "players:\n  - search_depth: -1\n  - algorithm: minimax\n",
			"empty board":       "board:\n  width: 0\n",
			"negative openings": "random_openings: -3\n",
		} {
			_, err := Setup(writeConfig(t, content))

			require.ErrorIs(t, err, ErrInvalidConfig, name)
		}
	})
}

func TestPlayerOptions(t *testing.T) {
	t.Run("building a search config", func(t *testing.T) {
		p := PlayerConfig{SearchDepth: 4, Heuristic: "normalized-distance", Timeout: time.Second, MaxDepth: 8}

		options, err := p.Options()
		require.NoError(t, err)
		config := searcher.NewConfig(options...)

		require.Equal(t, 4, config.SearchDepth)
		require.Equal(t, time.Second, config.Threshold)
		require.Equal(t, 8, config.MaxDepth)
		require.NotNil(t, config.Evaluate)
	})

	t.Run("unknown heuristic", func(t *testing.T) {
		_, err := PlayerConfig{Heuristic: "vibes"}.Options()

		require.ErrorIs(t, err, game.ErrUnknownEvaluator)
	})
}
