package engine

import (
	"testing"

	"draughts-engine/draughts"
)

func TestHistoryWeightGrowsWithPly(t *testing.T) {
	var h historyTable
	m := draughts.Move{From: 32, To: 28, Piece: draughts.WhiteMan}

	var lastGain int64
	for ply := 0; ply < 12; ply++ {
		before := h.score(m)
		h.record(m, ply)
		gain := h.score(m) - before
		if gain != int64(1)<<ply {
			t.Fatalf("ply %d: gained %d want %d", ply, gain, int64(1)<<ply)
		}
		if gain <= lastGain {
			t.Fatalf("ply %d: gain %d not above previous %d", ply, gain, lastGain)
		}
		lastGain = gain
	}

	// repeated occurrences accumulate
	before := h.score(m)
	h.record(m, 3)
	h.record(m, 3)
	if h.score(m)-before != 16 {
		t.Fatalf("two records at ply 3 added %d want 16", h.score(m)-before)
	}
}

func TestHistoryIsPerColour(t *testing.T) {
	var h historyTable
	h.record(draughts.Move{From: 32, To: 28, Piece: draughts.WhiteMan}, 4)
	if got := h.score(draughts.Move{From: 32, To: 28, Piece: draughts.BlackKing}); got != 0 {
		t.Fatalf("black move picked up white history %d", got)
	}
	if got := h.score(draughts.Move{From: 32, To: 28, Piece: draughts.WhiteKing}); got != 16 {
		t.Fatalf("white king on the same squares: got %d want 16", got)
	}
}

func TestHistoryDeepPlyStaysPositive(t *testing.T) {
	var h historyTable
	m := draughts.Move{From: 1, To: 7, Piece: draughts.BlackMan}
	h.record(m, 200)
	if h.score(m) <= 0 {
		t.Fatalf("deep record overflowed to %d", h.score(m))
	}
}
