package draughts

import (
	"strings"

	"github.com/pkg/errors"
)

// Rules produces the legal moves of a position. Implementations differ only in
// which capture sequences they admit.
type Rules interface {
	Name() string
	LegalMoves(p *Position) []Move
}

type internationalRules struct{}

func (internationalRules) Name() string { return "international" }

func (internationalRules) LegalMoves(p *Position) []Move { return generateMoves(p, false) }

// killerRules: a king that captures a king as the last piece of its sequence
// must land directly behind it.
type killerRules struct{}

func (killerRules) Name() string { return "killer" }

func (killerRules) LegalMoves(p *Position) []Move { return generateMoves(p, true) }

var (
	International Rules = internationalRules{}
	Killer        Rules = killerRules{}
)

var ErrUnknownRules = errors.New("unknown rules variant")

// RulesByName returns the rules variant with the given name.
func RulesByName(name string) (Rules, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "international":
		return International, nil
	case "killer":
		return Killer, nil
	}
	return nil, errors.Wrapf(ErrUnknownRules, "%q", name)
}

// generateMoves returns all legal moves for the side to move. Captures are
// mandatory and only the sequences taking the most pieces are kept.
func generateMoves(p *Position, killer bool) []Move {
	side := p.sideToMove
	cs := captureSearch{pos: p, color: side, killer: killer}

	for sq := Square(1); sq <= NumSquares; sq++ {
		pc := p.pieces[sq]
		if !pc.belongsTo(side) {
			continue
		}
		cs.start(sq, pc)
	}
	if len(cs.moves) > 0 {
		return cs.moves
	}

	moves := make([]Move, 0, 16)
	for sq := Square(1); sq <= NumSquares; sq++ {
		pc := p.pieces[sq]
		if !pc.belongsTo(side) {
			continue
		}
		if pc.IsKing() {
			moves = appendKingSlides(p, sq, pc, moves)
		} else {
			moves = appendManSteps(p, sq, pc, moves)
		}
	}
	return moves
}

func appendManSteps(p *Position, sq Square, pc Piece, moves []Move) []Move {
	for _, d := range forward(pc.Color()) {
		to := neighbour[sq][d]
		if to == NoSquare || p.pieces[to] != Empty {
			continue
		}
		moves = append(moves, Move{
			From:     sq,
			To:       to,
			Piece:    pc,
			Path:     []Square{to},
			Promotes: Row(to) == promotionRow(pc.Color()),
		})
	}
	return moves
}

func appendKingSlides(p *Position, sq Square, pc Piece, moves []Move) []Move {
	for _, d := range directions {
		for to := neighbour[sq][d]; to != NoSquare && p.pieces[to] == Empty; to = neighbour[to][d] {
			moves = append(moves, Move{From: sq, To: to, Piece: pc, Path: []Square{to}})
		}
	}
	return moves
}

// captureSearch walks every capture sequence depth first. Jumped pieces stay
// on the board until the sequence is complete, so they block and cannot be
// jumped twice.
type captureSearch struct {
	pos    *Position
	color  Color
	killer bool

	from   Square
	mover  Piece
	jumped [NumSquares + 1]bool
	caps   []Capture
	path   []Square

	best  int
	moves []Move
}

func (cs *captureSearch) start(sq Square, pc Piece) {
	cs.from = sq
	cs.mover = pc
	cs.caps = cs.caps[:0]
	cs.path = cs.path[:0]

	// lift the mover so its origin counts as empty during the sequence
	cs.pos.pieces[sq] = Empty
	if pc.IsKing() {
		cs.king(sq)
	} else {
		cs.man(sq)
	}
	cs.pos.pieces[sq] = pc
}

func (cs *captureSearch) capturable(sq Square) bool {
	pc := cs.pos.pieces[sq]
	return pc != Empty && !pc.belongsTo(cs.color) && !cs.jumped[sq]
}

func (cs *captureSearch) push(over, land Square) {
	cs.jumped[over] = true
	cs.caps = append(cs.caps, Capture{Square: over, Piece: cs.pos.pieces[over]})
	cs.path = append(cs.path, land)
}

func (cs *captureSearch) pop() {
	last := cs.caps[len(cs.caps)-1]
	cs.jumped[last.Square] = false
	cs.caps = cs.caps[:len(cs.caps)-1]
	cs.path = cs.path[:len(cs.path)-1]
}

func (cs *captureSearch) man(sq Square) {
	extended := false
	for _, d := range directions {
		over := neighbour[sq][d]
		if over == NoSquare || !cs.capturable(over) {
			continue
		}
		land := neighbour[over][d]
		if land == NoSquare || cs.pos.pieces[land] != Empty {
			continue
		}
		extended = true
		cs.push(over, land)
		cs.man(land)
		cs.pop()
	}
	if !extended && len(cs.caps) > 0 {
		cs.emit(sq)
	}
}

func (cs *captureSearch) king(sq Square) {
	extended := false
	for _, d := range directions {
		over := neighbour[sq][d]
		for over != NoSquare && cs.pos.pieces[over] == Empty {
			over = neighbour[over][d]
		}
		if over == NoSquare || !cs.capturable(over) {
			continue
		}
		for land := neighbour[over][d]; land != NoSquare && cs.pos.pieces[land] == Empty; land = neighbour[land][d] {
			extended = true
			cs.push(over, land)
			cs.king(land)
			cs.pop()
		}
	}
	if !extended && len(cs.caps) > 0 {
		cs.emit(sq)
	}
}

// emit records a finished sequence ending on sq if it is at least as long as
// the best one seen so far.
func (cs *captureSearch) emit(sq Square) {
	n := len(cs.caps)
	if n < cs.best {
		return
	}
	if cs.killer && cs.mover.IsKing() {
		last := cs.caps[n-1]
		if last.Piece.IsKing() && !Adjacent(sq, last.Square) {
			return
		}
	}
	if n > cs.best {
		cs.best = n
		cs.moves = cs.moves[:0]
	}

	m := Move{
		From:     cs.from,
		To:       sq,
		Piece:    cs.mover,
		Captures: append([]Capture(nil), cs.caps...),
		Path:     append([]Square(nil), cs.path...),
		Promotes: cs.mover.IsMan() && Row(sq) == promotionRow(cs.color),
	}
	for _, other := range cs.moves {
		if other.Equal(m) {
			return
		}
	}
	cs.moves = append(cs.moves, m)
}
