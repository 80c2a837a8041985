package engine

import (
	"sync"
	"time"

	"draughts-engine/draughts"
)

// Limits bounds one search. Zero values mean "not set"; with nothing set the
// search runs until Stop is called or the depth cap is reached.
type Limits struct {
	Depth     int
	MoveTime  time.Duration
	WhiteTime time.Duration
	BlackTime time.Duration
	WhiteInc  time.Duration
	BlackInc  time.Duration
}

// Timed reports whether the limits carry any clock information.
func (l Limits) Timed() bool {
	return l.MoveTime > 0 || l.WhiteTime > 0 || l.BlackTime > 0
}

// TimeHandler turns a clock into a budget for one move and calls stop once the
// budget runs out. It never looks at the search itself.
type TimeHandler struct {
	mu     sync.Mutex
	timer  *time.Timer
	budget time.Duration
}

// Engine-side safety knobs
const (
	overhead      = 30 * time.Millisecond // reserve for IO jitter
	minMoveTime   = 5 * time.Millisecond
	maxFrac       = 0.7 // never spend more than this share of the clock
	panicThresh   = time.Second
	panicIncShare = 0.9
)

// Budget computes how long the side to move may think.
func (th *TimeHandler) Budget(p *draughts.Position, l Limits) time.Duration {
	if l.MoveTime > 0 {
		return l.MoveTime
	}
	rem, inc := l.WhiteTime, l.WhiteInc
	if !p.WhiteToMove() {
		rem, inc = l.BlackTime, l.BlackInc
	}
	if rem <= 0 {
		return 0
	}

	movesLeft := estimateMovesRemaining(p)
	var moveTime time.Duration
	if inc > 0 {
		if rem < panicThresh {
			// Panic: bank a little of the increment
			moveTime = time.Duration(float64(inc) * panicIncShare)
		} else {
			moveTime = rem/time.Duration(movesLeft) + inc
		}
	} else {
		moveTime = rem / 40
	}

	ceiling := Min(time.Duration(float64(rem)*maxFrac), rem-overhead)
	return Clamp(moveTime, minMoveTime, Max(ceiling, minMoveTime))
}

// Start arms the stop timer for budget. A zero budget arms nothing.
func (th *TimeHandler) Start(budget time.Duration, stop func()) {
	th.mu.Lock()
	defer th.mu.Unlock()
	if th.timer != nil {
		th.timer.Stop()
	}
	th.budget = budget
	th.timer = nil
	if budget > 0 {
		th.timer = time.AfterFunc(budget, stop)
	}
}

// Cancel disarms a pending timer.
func (th *TimeHandler) Cancel() {
	th.mu.Lock()
	defer th.mu.Unlock()
	if th.timer != nil {
		th.timer.Stop()
		th.timer = nil
	}
}

// Allocated is the budget of the last Start.
func (th *TimeHandler) Allocated() time.Duration {
	th.mu.Lock()
	defer th.mu.Unlock()
	return th.budget
}

// Linearly interpolate between 20 moves (bare board) and 45 (full board).
func estimateMovesRemaining(p *draughts.Position) int {
	wm, wk := p.Count(draughts.White)
	bm, bk := p.Count(draughts.Black)
	pieces := wm + wk + bm + bk
	return pieces*25/40 + 20
}
