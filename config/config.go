package config

import (
	"errors"
	"fmt"
	"isolation/game"
	"isolation/searcher"
	"isolation/searcher/agent"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid config")

type BoardConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

type PlayerConfig struct {
	Name        string        `mapstructure:"name"`
	Algorithm   string        `mapstructure:"algorithm"`
	Iterative   *bool         `mapstructure:"iterative"` // Defaults to true for alphabeta only
	SearchDepth int           `mapstructure:"search_depth"`
	Heuristic   string        `mapstructure:"heuristic"`
	Timeout     time.Duration `mapstructure:"timeout"`
	MaxDepth    int           `mapstructure:"max_depth"`
}

type Config struct {
	Board          BoardConfig    `mapstructure:"board"`
	TurnDuration   time.Duration  `mapstructure:"turn_duration"`
	RandomOpenings int            `mapstructure:"random_openings"`
	Seed           uint64         `mapstructure:"seed"`
	Players        []PlayerConfig `mapstructure:"players"`
}

// Setup loads the configuration file at cfgPath, if any, on top of the
// defaults. Scalar settings can be overridden by ISOLATION_* environment
// variables, e.g. ISOLATION_TURN_DURATION=300ms.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("isolation")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", cfgPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	for i := range cfg.Players {
		cfg.Players[i].applyDefaults(i)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("board.width", 7)
	v.SetDefault("board.height", 7)
	v.SetDefault("turn_duration", 150*time.Millisecond)
	v.SetDefault("random_openings", 2)
	v.SetDefault("seed", 0)
	v.SetDefault("players", []map[string]any{
		{"name": "alphabeta", "algorithm": agent.AlphaBeta},
		{"name": "minimax", "algorithm": agent.Minimax},
	})
}

func (p *PlayerConfig) applyDefaults(index int) {
	if p.Name == "" {
		p.Name = fmt.Sprintf("player%d", index+1)
	}
	if p.Algorithm == "" {
		p.Algorithm = agent.AlphaBeta
	}
	if p.Iterative == nil {
		iterative := p.Algorithm == agent.AlphaBeta
		p.Iterative = &iterative
	}
	if p.SearchDepth == 0 {
		p.SearchDepth = searcher.DefaultSearchDepth
	}
	if p.Heuristic == "" {
		p.Heuristic = game.EvaluatorNames()[0]
	}
	if p.Timeout == 0 {
		p.Timeout = searcher.DefaultThreshold
	}
}

func (c *Config) Validate() error {
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		return fmt.Errorf("board size %dx%d: %w", c.Board.Width, c.Board.Height, ErrInvalidConfig)
	}
	if c.TurnDuration <= 0 {
		return fmt.Errorf("turn duration %v: %w", c.TurnDuration, ErrInvalidConfig)
	}
	if c.RandomOpenings < 0 {
		return fmt.Errorf("random openings %d: %w", c.RandomOpenings, ErrInvalidConfig)
	}
	if len(c.Players) != 2 {
		return fmt.Errorf("need exactly two players, got %d: %w", len(c.Players), ErrInvalidConfig)
	}
	for _, p := range c.Players {
		if p.Algorithm != agent.Minimax && p.Algorithm != agent.AlphaBeta {
			return fmt.Errorf("player %s algorithm %q: %w", p.Name, p.Algorithm, ErrInvalidConfig)
		}
		if _, err := game.Evaluator(p.Heuristic); err != nil {
			return fmt.Errorf("player %s: %w: %w", p.Name, err, ErrInvalidConfig)
		}
		if p.SearchDepth < 0 || p.MaxDepth < 0 || p.Timeout < 0 {
			return fmt.Errorf("player %s negative search limits: %w", p.Name, ErrInvalidConfig)
		}
	}
	return nil
}

// Options translates the player's settings into search options.
func (p PlayerConfig) Options() ([]searcher.Option, error) {
	evaluate, err := game.Evaluator(p.Heuristic)
	if err != nil {
		return nil, err
	}
	return []searcher.Option{
		searcher.WithSearchDepth(p.SearchDepth),
		searcher.WithEvaluationFn(evaluate),
		searcher.WithTimeout(p.Timeout),
		searcher.WithMaxDepth(p.MaxDepth),
		searcher.WithMetrics(),
	}, nil
}
