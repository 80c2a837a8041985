package engine

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/exp/constraints"

	"draughts-engine/draughts"
)

// Min returns the smaller of x or y.
func Min[T constraints.Ordered](x, y T) T {
	if x < y {
		return x
	}
	return y
}

// Max returns the larger of x or y.
func Max[T constraints.Ordered](x, y T) T {
	if x > y {
		return x
	}
	return y
}

// Abs returns the absolute value of x.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp restricts f to the inclusive range [low, high].
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

// PVString joins a line in long notation, e.g. "32-28 19-23 28x19".
func PVString(pv []draughts.Move) string {
	return strings.Join(lo.Map(pv, func(m draughts.Move, _ int) string {
		return m.LongString()
	}), " ")
}

// ScoreString formats a score for protocol output: "win"/"loss" once a forced
// result is seen, centi-style units otherwise.
func ScoreString(score int32) string {
	switch {
	case score >= WinScore:
		return "win"
	case score <= -WinScore:
		return "loss"
	}
	return fmt.Sprintf("cp %d", score)
}
