package engine

import (
	"draughts-engine/draughts"
)

type move struct {
	move    draughts.Move
	pv      bool
	history int64
	// previous-iteration score of the child from the mover's point of view
	tieBreak int32
	known    bool
}

type moveList struct {
	moves []move
}

/*
Move ordering:
  - The move the previous iteration played at this ply goes first, it is the most
    likely refutation and keeps the search walking the old main line.
  - Then the history score of (colour, from, to), highest first.
  - Equal history is broken with the score the previous iteration stored for the
    resulting position. Scores are white-relative so black flips the sign.
    Positions the previous iteration never reached sort last.
*/
func (s *session) scoreMoves(moves []draughts.Move, ply int) moveList {
	var pvMove draughts.Move
	hasPV := ply < len(s.prevPV)
	if hasPV {
		pvMove = s.prevPV[ply]
	}
	white := s.pos.WhiteToMove()

	list := moveList{moves: make([]move, len(moves))}
	for i, m := range moves {
		entry := move{move: m, history: s.history.score(m)}
		if hasPV && m.Equal(pvMove) {
			entry.pv = true
		}
		if s.cfg.TranspositionOrdering {
			if score, ok := s.tt.previousScore(s.pos.HashAfter(m)); ok {
				if !white {
					score = -score
				}
				entry.tieBreak = score
				entry.known = true
			}
		}
		list.moves[i] = entry
	}
	return list
}

// better reports whether a should be searched before b.
func (a *move) better(b *move) bool {
	if a.pv != b.pv {
		return a.pv
	}
	if a.history != b.history {
		return a.history > b.history
	}
	if a.known != b.known {
		return a.known
	}
	return a.tieBreak > b.tieBreak
}

// Ordering the moves one at a time, at index given
func orderNextMove(currIndex int, moves *moveList) {
	bestIndex := currIndex
	for index := currIndex + 1; index < len(moves.moves); index++ {
		if moves.moves[index].better(&moves.moves[bestIndex]) {
			bestIndex = index
		}
	}
	moves.moves[currIndex], moves.moves[bestIndex] = moves.moves[bestIndex], moves.moves[currIndex]
}
