package engine

import (
	"context"
	"math"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"draughts-engine/draughts"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	// MaxScore bounds every window; no real score ever reaches it.
	MaxScore int32 = math.MaxInt32
	// WinScore is what a side with no legal moves scores against itself.
	WinScore int32 = 1 << 30
)

var (
	ErrSearchAborted      = errors.New("search aborted")
	ErrNoLegalMove        = errors.New("no legal move")
	ErrValidationMismatch = errors.New("principal variation does not reproduce its score")
)

// line is a score together with the moves that lead to the position it was
// measured in. Scores are white-relative throughout.
type line struct {
	score int32
	pv    []draughts.Move
}

// Result is what a search call hands back. Move is zero when not even the first
// depth completed.
type Result struct {
	Move    draughts.Move
	Score   int32
	PV      []draughts.Move
	Depth   int
	Nodes   uint64
	Elapsed time.Duration
	Stopped bool
	Stats   CutStatistics
}

// Progress is reported after every completed depth.
type Progress struct {
	Depth   int
	Score   int32
	Nodes   uint64
	Elapsed time.Duration
	PV      []draughts.Move
}

// session is everything one search call owns. Nothing in it outlives the call,
// including its stop flag: a late stop aimed at it cannot reach the next search.
type session struct {
	cfg     Config
	log     zerolog.Logger
	pos     *draughts.Position
	rules   draughts.Rules
	eval    Evaluator
	history *historyTable
	tt      *transTable
	prevPV  []draughts.Move
	nodes   uint64
	stats   CutStatistics
	stop    atomic.Bool
}

func (e *Engine) newSession(pos *draughts.Position, log zerolog.Logger) *session {
	return &session{
		cfg:     e.cfg,
		log:     log,
		pos:     pos.Clone(),
		rules:   e.cfg.Rules,
		eval:    e.cfg.Evaluator,
		history: &historyTable{},
		tt:      newTransTable(),
	}
}

func (s *session) abort() { s.stop.Store(true) }

// Search runs iterative deepening on a copy of pos until the depth cap, a forced
// result, the clock in limits, ctx or Stop ends it. The answer of the last depth
// that finished (and validated) is returned.
func (e *Engine) Search(ctx context.Context, pos *draughts.Position, limits Limits) (Result, error) {
	start := time.Now()
	log := e.log.With().Str("search", uuid.NewString()).Logger()
	s := e.newSession(pos, log)

	if len(s.rules.LegalMoves(s.pos)) == 0 {
		return Result{Score: terminalScore(s.pos)}, ErrNoLegalMove
	}

	e.running.Store(s)
	defer e.running.CompareAndSwap(s, nil)

	// Both callbacks may still fire after this call returns; they only ever
	// reach this session.
	cancel := context.AfterFunc(ctx, s.abort)
	defer cancel()
	if limits.Timed() {
		// a clock for the other side only still means "move quickly"
		e.clock.Start(Max(e.clock.Budget(s.pos, limits), minMoveTime), s.abort)
		defer e.clock.Cancel()
		log.Debug().Dur("budget", e.clock.Allocated()).Msg("clock armed")
	}

	maxDepth := e.cfg.MaxDepth
	if limits.Depth > 0 {
		maxDepth = Min(maxDepth, limits.Depth)
	}

	var res Result
	var best line
	for depth := 1; depth <= maxDepth; depth++ {
		if ctx.Err() != nil {
			res.Stopped = true
			break
		}
		s.tt.nextDepth()

		result, err := s.searchDepth(depth, best, res.Depth > 0)
		if errors.Is(err, ErrSearchAborted) {
			s.stats.Aborts++
			res.Stopped = true
			log.Debug().Int("depth", depth).Msg("search stopped, keeping previous depth")
			break
		}
		if s.cfg.ValidatePV {
			if err := s.validate(result); err != nil {
				s.stats.ValidationFailures++
				log.Warn().Err(err).Int("depth", depth).Msg("discarding depth")
				continue
			}
		}

		best = result
		s.prevPV = result.pv
		res.Depth = depth

		elapsed := time.Since(start)
		log.Debug().
			Int("depth", depth).
			Str("move", result.pv[0].String()).
			Int32("score", result.score).
			Uint64("nodes", s.nodes).
			Int("tt", s.tt.size()).
			Object("cuts", s.stats).
			Str("pv", PVString(result.pv)).
			Msg("depth complete")
		if e.progress != nil {
			e.progress(Progress{Depth: depth, Score: result.score, Nodes: s.nodes, Elapsed: elapsed, PV: result.pv})
		}

		if Abs(result.score) > s.cfg.ForcedWinThreshold {
			log.Debug().Int32("score", result.score).Msg("forced result, stop deepening")
			break
		}
	}

	if len(best.pv) > 0 {
		res.Move = best.pv[0]
		res.Score = best.score
		res.PV = best.pv
		e.value.Store(best.score)
	}
	res.Nodes = s.nodes
	res.Elapsed = time.Since(start)
	res.Stats = s.stats
	return res, nil
}

// searchDepth searches the root to depth, first inside an aspiration window
// around the previous score when enabled. A result on or outside the window is
// not trusted and the depth is searched again with the full window.
func (s *session) searchDepth(depth int, prev line, havePrev bool) (line, error) {
	if !s.cfg.Aspiration || !havePrev {
		return s.alphaBeta(-MaxScore, MaxScore, 0, depth)
	}

	alpha := prev.score - s.cfg.AspirationWindow
	beta := prev.score + s.cfg.AspirationWindow
	result, err := s.alphaBeta(alpha, beta, 0, depth)
	if err != nil {
		return line{}, err
	}
	if result.score <= alpha || result.score >= beta {
		s.stats.AspirationResearches++
		return s.alphaBeta(-MaxScore, MaxScore, 0, depth)
	}
	return result, nil
}

/*
alphaBeta scores the current position. A position without moves is lost for
the side to move. Once the depth is used up quiet positions are evaluated, but
positions with a capture pending keep being expanded until they settle.
Results are fail-soft and always carry the line that produced them.
*/
func (s *session) alphaBeta(alpha, beta int32, ply, depth int) (line, error) {
	remaining := Max(depth-ply, 0)
	hash := s.pos.Hash()
	if ply > 0 && s.cfg.Transpositions {
		if hit, ok := s.tt.probe(hash, remaining, alpha, beta); ok {
			s.stats.TTHits++
			return hit, nil
		}
	}

	s.nodes++
	moves := s.rules.LegalMoves(s.pos)

	var result line
	switch {
	case len(moves) == 0:
		result = line{score: terminalScore(s.pos)}
	case remaining == 0 && isQuiet(moves):
		result = line{score: s.eval.Evaluate(s.pos)}
	default:
		if remaining == 0 {
			s.stats.QuiescenceNodes++
		}
		var err error
		if result, err = s.expand(moves, alpha, beta, ply, depth); err != nil {
			return line{}, err
		}
	}

	if s.cfg.Transpositions {
		s.tt.store(hash, remaining, alpha, beta, result)
	}
	return result, nil
}

// expand tries every move, white maximising and black minimising. The position
// is restored before returning on every path, aborts included.
func (s *session) expand(moves []draughts.Move, alpha, beta int32, ply, depth int) (line, error) {
	if s.stop.Load() {
		return line{}, ErrSearchAborted
	}

	maximizing := s.pos.WhiteToMove()
	list := s.scoreMoves(moves, ply)

	best := line{score: MaxScore}
	if maximizing {
		best.score = -MaxScore
	}
	var bestMove draughts.Move

	for i := range list.moves {
		orderNextMove(i, &list)
		m := list.moves[i].move

		s.pos.Apply(m)
		child, err := s.alphaBeta(alpha, beta, ply+1, depth)
		s.pos.Undo(m)
		if err != nil {
			return line{}, err
		}

		if maximizing {
			if child.score > best.score {
				best, bestMove = child, m
			}
			alpha = Max(alpha, child.score)
		} else {
			if child.score < best.score {
				best, bestMove = child, m
			}
			beta = Min(beta, child.score)
		}

		if alpha >= beta {
			if maximizing {
				s.stats.BetaCutoffs++
			} else {
				s.stats.AlphaCutoffs++
			}
			break
		}
	}

	s.history.record(bestMove, ply)

	pv := make([]draughts.Move, 0, len(best.pv)+1)
	pv = append(pv, bestMove)
	pv = append(pv, best.pv...)
	return line{score: best.score, pv: pv}, nil
}

// validate replays result on a copy of the root and checks that every move is
// legal and the final position scores what the search claimed.
func (s *session) validate(result line) error {
	p := s.pos.Clone()
	for i, m := range result.pv {
		if !lo.ContainsBy(s.rules.LegalMoves(p), m.Equal) {
			return errors.Wrapf(ErrValidationMismatch, "move %d (%s) of %q is illegal", i+1, m.LongString(), PVString(result.pv))
		}
		p.Apply(m)
	}
	if leaf := s.leafScore(p); leaf != result.score {
		return errors.Wrapf(ErrValidationMismatch, "%q ends at %d, search reported %d", PVString(result.pv), leaf, result.score)
	}
	return nil
}

func (s *session) leafScore(p *draughts.Position) int32 {
	if len(s.rules.LegalMoves(p)) == 0 {
		return terminalScore(p)
	}
	return s.eval.Evaluate(p)
}

// terminalScore scores a position where the side to move cannot move: it lost.
func terminalScore(p *draughts.Position) int32 {
	if p.WhiteToMove() {
		return -WinScore
	}
	return WinScore
}

// Captures are compulsory, so one capture in the list means all of them are.
func isQuiet(moves []draughts.Move) bool {
	return len(moves) == 0 || !moves[0].IsCapture()
}
