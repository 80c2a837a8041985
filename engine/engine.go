package engine

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"lukechampine.com/frand"

	"draughts-engine/draughts"
)

// Config selects one coherent engine setup. It is copied into every search, so
// changing it never affects a search already running.
type Config struct {
	MaxDepth  int
	Rules     draughts.Rules
	Evaluator Evaluator

	Aspiration       bool
	AspirationWindow int32

	// Transpositions reuses results inside one depth; TranspositionOrdering
	// uses the previous depth's results to break move-ordering ties.
	Transpositions        bool
	TranspositionOrdering bool

	ValidatePV         bool
	ForcedWinThreshold int32
}

func DefaultConfig() Config {
	return Config{
		MaxDepth:              30,
		Rules:                 draughts.Killer,
		Evaluator:             NewEvaluator(DefaultWeights),
		Aspiration:            true,
		AspirationWindow:      50,
		Transpositions:        true,
		TranspositionOrdering: true,
		ValidatePV:            true,
		ForcedWinThreshold:    10000,
	}
}

type Option func(*Engine)

// WithLogger sends search diagnostics to log. The default discards them.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// WithProgress registers a callback run after each completed depth, on the
// searching goroutine.
func WithProgress(fn func(Progress)) Option {
	return func(e *Engine) { e.progress = fn }
}

// Engine is a long-lived player. Searches must not overlap; Stop may be called
// from any goroutine.
type Engine struct {
	cfg      Config
	log      zerolog.Logger
	progress func(Progress)
	clock    TimeHandler

	running atomic.Pointer[session]
	value   atomic.Int32
}

func New(cfg Config, opts ...Option) *Engine {
	e := &Engine{cfg: cfg, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Config() Config { return e.cfg }

// SetConfig replaces the configuration for subsequent searches.
func (e *Engine) SetConfig(cfg Config) { e.cfg = cfg }

// Stop asks the running search to unwind. The depth in progress is thrown away.
// Without a running search it does nothing.
func (e *Engine) Stop() {
	if s := e.running.Load(); s != nil {
		s.abort()
	}
}

// Value is the score behind the last move the engine settled on.
func (e *Engine) Value() int32 { return e.value.Load() }

// Evaluate returns the static evaluation of pos with the configured evaluator.
func (e *Engine) Evaluate(pos *draughts.Position) int32 { return e.cfg.Evaluator.Evaluate(pos) }

// Think is Search for a player that has to move: if the search was stopped
// before its first depth finished a random legal move is chosen instead.
func (e *Engine) Think(ctx context.Context, pos *draughts.Position, limits Limits) (Result, error) {
	res, err := e.Search(ctx, pos, limits)
	if err != nil || !res.Move.IsZero() {
		return res, err
	}

	moves := e.cfg.Rules.LegalMoves(pos)
	res.Move = moves[frand.Intn(len(moves))]
	res.Score = 0
	e.value.Store(0)
	e.log.Warn().Str("move", res.Move.String()).Int("choices", len(moves)).Msg("no depth completed, playing a random move")
	return res, nil
}

// BestMove thinks about pos for at most budget, or until ctx is done. A zero
// budget leaves stopping to ctx and the depth cap.
func (e *Engine) BestMove(ctx context.Context, pos *draughts.Position, budget time.Duration) (draughts.Move, error) {
	res, err := e.Think(ctx, pos, Limits{MoveTime: budget})
	if err != nil {
		return draughts.Move{}, err
	}
	return res.Move, nil
}
