package engine

import (
	"draughts-engine/draughts"
)

// maxHistoryShift keeps 1<<ply inside an int64.
const maxHistoryShift = 62

/*
HISTORY
Every time a move ends up as the best move of a node we add 2^ply to its slot,
indexed by mover colour, begin square and end square. Shallow plies weigh much
more than deep ones. Scores only ever grow during a search; a new search starts
from an empty table.
*/
type historyTable struct {
	scores [2][draughts.NumSquares + 1][draughts.NumSquares + 1]int64
}

func (h *historyTable) record(m draughts.Move, ply int) {
	h.scores[m.Color()][m.From][m.To] += int64(1) << Min(ply, maxHistoryShift)
}

func (h *historyTable) score(m draughts.Move) int64 {
	return h.scores[m.Color()][m.From][m.To]
}
