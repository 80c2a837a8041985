package engine

import (
	"draughts-engine/draughts"
)

// Evaluator scores a quiet position from white's point of view: positive is
// good for white. Implementations must be pure functions of the position.
type Evaluator interface {
	Evaluate(p *draughts.Position) int32
}

// WeightedEvaluator sums the heuristic terms of Weights. A zero weight skips
// its term entirely.
type WeightedEvaluator struct {
	Weights Weights
}

func NewEvaluator(w Weights) *WeightedEvaluator {
	return &WeightedEvaluator{Weights: w}
}

func (e *WeightedEvaluator) Evaluate(p *draughts.Position) int32 {
	w := e.Weights
	pieces := p.Pieces()

	var score int32
	if w.Material != 0 {
		score += int32(materialBalance(&pieces) * float64(w.Material))
	}
	if w.Formation != 0 {
		score += formationScore(&pieces) * w.Formation
	}
	if w.Tempo != 0 {
		score += tempoScore(&pieces) * w.Tempo
	}
	if w.Spread != 0 {
		score += (spreadScore(&pieces, draughts.WhiteMan) - spreadScore(&pieces, draughts.BlackMan)) * w.Spread
	}
	if w.Outpost != 0 {
		score += outpostScore(&pieces) * w.Outpost
	}
	if w.BackRank != 0 {
		score += backRankScore(&pieces) * w.BackRank
	}
	return score
}

type board = [draughts.NumSquares + 1]draughts.Piece

/*
Material counts men as 1 and kings as 3. The difference is scaled by the
squared ratio of the larger to the smaller side, so the side that is ahead
gains by trading down: 4 vs 3 is worth much less than 2 vs 1.
*/
func materialBalance(pieces *board) float64 {
	var white, black int
	for sq := 1; sq <= draughts.NumSquares; sq++ {
		switch pieces[sq] {
		case draughts.WhiteMan:
			white++
		case draughts.WhiteKing:
			white += 3
		case draughts.BlackMan:
			black++
		case draughts.BlackKing:
			black += 3
		}
	}
	multiplier := 10.0
	if Min(white, black) >= 1 {
		multiplier = float64(Max(white, black)) / float64(Min(white, black))
	}
	multiplier *= multiplier
	return float64(white-black) * multiplier
}

// formationScore counts men standing in the middle of a diagonal line of three
// men of their own colour, white minus black.
func formationScore(pieces *board) int32 {
	var score int32
	for sq := draughts.Square(1); sq <= draughts.NumSquares; sq++ {
		pc := pieces[sq]
		if !pc.IsMan() {
			continue
		}
		if backedOnDiagonal(pieces, sq, pc, draughts.NorthWest) || backedOnDiagonal(pieces, sq, pc, draughts.NorthEast) {
			if pc == draughts.WhiteMan {
				score++
			} else {
				score--
			}
		}
	}
	return score
}

func backedOnDiagonal(pieces *board, sq draughts.Square, pc draughts.Piece, d draughts.Direction) bool {
	a := draughts.Neighbour(sq, d)
	b := draughts.Neighbour(sq, d.Opposite())
	return a != draughts.NoSquare && b != draughts.NoSquare && pieces[a] == pc && pieces[b] == pc
}

// tempoScore is the total number of rows white's men have advanced minus the
// same for black.
func tempoScore(pieces *board) int32 {
	var white, black int32
	for sq := draughts.Square(1); sq <= draughts.NumSquares; sq++ {
		switch pieces[sq] {
		case draughts.WhiteMan:
			white += int32(draughts.BoardSize - 1 - draughts.Row(sq))
		case draughts.BlackMan:
			black += int32(draughts.Row(sq))
		}
	}
	return white - black
}

// spreadScore penalises a side whose men drift away from a 25/50/25 split over
// the left three, middle four and right three columns. Only shortfalls count.
func spreadScore(pieces *board, man draughts.Piece) int32 {
	var left, middle, right int32
	for sq := draughts.Square(1); sq <= draughts.NumSquares; sq++ {
		if pieces[sq] != man {
			continue
		}
		switch col := draughts.Col(sq); {
		case col <= 2:
			left++
		case col <= 6:
			middle++
		default:
			right++
		}
	}
	total := left + middle + right
	return Min(0, left-total/4) + Min(0, middle-total/2) + Min(0, right-total/4)
}

// outpostScore penalises advanced men that no friendly piece can back up
// within one move: the two squares diagonally behind and the three squares two
// rows behind.
func outpostScore(pieces *board) int32 {
	var white, black int32
	for sq := draughts.Square(1); sq <= draughts.NumSquares; sq++ {
		pc := pieces[sq]
		row := draughts.Row(sq)
		switch {
		case pc == draughts.WhiteMan && row >= 2 && row <= 4:
			if !supported(pieces, sq, +1, draughts.SouthWest, draughts.SouthEast, draughts.Piece.IsWhite) {
				white--
			}
		case pc == draughts.BlackMan && row >= 5 && row <= 7:
			if !supported(pieces, sq, -1, draughts.NorthWest, draughts.NorthEast, draughts.Piece.IsBlack) {
				black--
			}
		}
	}
	return white - black
}

func supported(pieces *board, sq draughts.Square, back int, d1, d2 draughts.Direction, friendly func(draughts.Piece) bool) bool {
	row, col := draughts.Row(sq), draughts.Col(sq)
	candidates := [5]draughts.Square{
		draughts.Neighbour(sq, d1),
		draughts.Neighbour(sq, d2),
		draughts.SquareAt(row+2*back, col-2),
		draughts.SquareAt(row+2*back, col),
		draughts.SquareAt(row+2*back, col+2),
	}
	for _, c := range candidates {
		if c != draughts.NoSquare && friendly(pieces[c]) {
			return true
		}
	}
	return false
}

// backRankScore rewards each side for keeping the man on its central back-rank
// square (48 for white, 3 for black), which guards the promotion row.
func backRankScore(pieces *board) int32 {
	var score int32
	if pieces[48] == draughts.WhiteMan {
		score++
	}
	if pieces[3] == draughts.BlackMan {
		score--
	}
	return score
}
