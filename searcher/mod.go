package searcher

import (
	"isolation/game"
	"time"
)

// Defaults for a fixed-depth search
const (
	DefaultSearchDepth = 3
	DefaultThreshold   = 10 * time.Millisecond
)

type Option func(c *Config)

// Config is shared by both search strategies and the players driving them.
type Config struct {
	SearchDepth int           // Plies explored by a fixed-depth search
	Evaluate    game.Evaluate // Scores cutoff and terminal states
	Threshold   time.Duration // Search aborts once less time than this is left
	MaxDepth    int           // Iterative deepening ceiling, 0 for none
	Metrics     Collector
}

func WithSearchDepth(depth int) Option {
	return func(c *Config) {
		if depth >= 0 {
			c.SearchDepth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(c *Config) {
		if evaluate != nil {
			c.Evaluate = evaluate
		}
	}
}

func WithTimeout(threshold time.Duration) Option {
	return func(c *Config) {
		if threshold >= 0 {
			c.Threshold = threshold
		}
	}
}

func WithMaxDepth(depth int) Option {
	return func(c *Config) {
		if depth > 0 {
			c.MaxDepth = depth
		}
	}
}

func WithMetrics() Option {
	return func(c *Config) {
		c.Metrics = NewCollector()
	}
}

func NewConfig(options ...Option) Config {
	c := Config{ // Default values
		SearchDepth: DefaultSearchDepth,
		Evaluate:    game.EvaluateOpponentDistance,
		Threshold:   DefaultThreshold,
		Metrics:     NewDummyCollector(),
	}
	for _, option := range options {
		option(&c)
	}
	return c
}

// Result is a move paired with its backing value.
type Result struct {
	Move  game.Move
	Value float64
	// Exhaustive is set when no leaf was cut off by the depth limit, so
	// searching deeper cannot change the result
	Exhaustive bool
}

// DepthLimited is a search strategy bounded by a number of plies.
type DepthLimited interface {
	Search(state game.State, depth int, timer Timer) (Result, error)
}

// run carries the per-search state down the recursion
type run struct {
	timer     Timer
	threshold time.Duration
	evaluate  game.Evaluate
	metrics   Collector
	horizon   bool // A leaf was cut off by the depth limit
}

func (c Config) newRun(timer Timer) *run {
	return &run{
		timer:     timer,
		threshold: c.Threshold,
		evaluate:  c.Evaluate,
		metrics:   c.Metrics,
	}
}

// enter must be the first call of every search frame
func (r *run) enter() error {
	if r.timer.Remaining() < r.threshold {
		return ErrSearchTimeout
	}
	r.metrics.AddNode()
	return nil
}

// leaf reports whether the node is scored instead of expanded
func (r *run) leaf(depth int, moves []game.Move) bool {
	if len(moves) == 0 {
		return true
	}
	if depth <= 0 {
		r.horizon = true
		return true
	}
	return false
}

// score evaluates a leaf from the point of view of the player who started
// the search: the active player on maximizing plies, the inactive one on
// minimizing plies
func (r *run) score(state game.State, maximizing bool) float64 {
	r.metrics.AddEvaluation()
	if maximizing {
		return r.evaluate(state, state.ActivePlayer())
	}
	return r.evaluate(state, state.InactivePlayer())
}
