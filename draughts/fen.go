package draughts

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// StartFEN is the PDN FEN of the initial position.
const StartFEN = "W:W31-50:B1-20"

var (
	ErrInvalidFEN  = errors.New("invalid fen")
	ErrInvalidMove = errors.New("invalid move")
)

// ParseFEN reads a PDN FEN such as "W:W31,32,K45:B1-20". Kings are prefixed
// with K and ranges are accepted.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Split(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(fen), ".")), ":")
	if len(fields) == 0 || fields[0] == "" {
		return nil, errors.Wrap(ErrInvalidFEN, "empty")
	}

	p := &Position{}
	switch strings.ToUpper(fields[0]) {
	case "W":
		p.sideToMove = White
	case "B":
		p.sideToMove = Black
	default:
		return nil, errors.Wrapf(ErrInvalidFEN, "side to move %q", fields[0])
	}

	for _, field := range fields[1:] {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		var man, king Piece
		switch field[0] {
		case 'W', 'w':
			man, king = WhiteMan, WhiteKing
		case 'B', 'b':
			man, king = BlackMan, BlackKing
		default:
			return nil, errors.Wrapf(ErrInvalidFEN, "colour field %q", field)
		}
		for _, tok := range strings.Split(field[1:], ",") {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			pc := man
			if tok[0] == 'K' || tok[0] == 'k' {
				pc = king
				tok = tok[1:]
			}
			lo, hi, err := parseSquareRange(tok)
			if err != nil {
				return nil, err
			}
			for sq := lo; sq <= hi; sq++ {
				if p.pieces[sq] != Empty {
					return nil, errors.Wrapf(ErrInvalidFEN, "square %d listed twice", sq)
				}
				p.pieces[sq] = pc
			}
		}
	}
	p.zobristKey = p.ComputeZobrist()
	return p, nil
}

func parseSquareRange(tok string) (Square, Square, error) {
	lo, hi, isRange := strings.Cut(tok, "-")
	from, err := parseSquare(lo)
	if err != nil {
		return 0, 0, err
	}
	if !isRange {
		return from, from, nil
	}
	to, err := parseSquare(hi)
	if err != nil {
		return 0, 0, err
	}
	if to < from {
		return 0, 0, errors.Wrapf(ErrInvalidFEN, "range %q", tok)
	}
	return from, to, nil
}

func parseSquare(s string) (Square, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidFEN, "square %q", s)
	}
	if n < 1 || n > NumSquares {
		return 0, errors.Wrapf(ErrInvalidFEN, "square %d out of range", n)
	}
	return Square(n), nil
}

// ToFEN writes the position as a PDN FEN with squares in ascending order.
func (p *Position) ToFEN() string {
	var sb strings.Builder
	if p.sideToMove == White {
		sb.WriteString("W")
	} else {
		sb.WriteString("B")
	}
	for _, side := range []struct {
		tag       string
		man, king Piece
	}{{"W", WhiteMan, WhiteKing}, {"B", BlackMan, BlackKing}} {
		var toks []string
		for sq := 1; sq <= NumSquares; sq++ {
			switch p.pieces[sq] {
			case side.man:
				toks = append(toks, strconv.Itoa(sq))
			case side.king:
				toks = append(toks, "K"+strconv.Itoa(sq))
			}
		}
		sb.WriteString(":" + side.tag + strings.Join(toks, ","))
	}
	return sb.String()
}

// ParseMove resolves text such as "32-28", "33x11" or "33x22x11" against the
// legal moves of p. A short capture that matches more than one legal move is
// rejected as ambiguous.
func ParseMove(p *Position, rules Rules, text string) (Move, error) {
	text = strings.TrimSpace(text)
	parts := strings.FieldsFunc(text, func(r rune) bool { return r == '-' || r == 'x' || r == 'X' || r == ':' })
	if len(parts) < 2 {
		return Move{}, errors.Wrapf(ErrInvalidMove, "%q", text)
	}
	squares := make([]Square, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 1 || n > NumSquares {
			return Move{}, errors.Wrapf(ErrInvalidMove, "%q", text)
		}
		squares[i] = Square(n)
	}

	from, to := squares[0], squares[len(squares)-1]
	var found []Move
	for _, m := range rules.LegalMoves(p) {
		if m.From != from || m.To != to {
			continue
		}
		if len(squares) > 2 && !samePath(m.Path, squares[1:]) {
			continue
		}
		found = append(found, m)
	}
	switch len(found) {
	case 0:
		return Move{}, errors.Wrapf(ErrInvalidMove, "%q is not legal", text)
	case 1:
		return found[0], nil
	}
	alts := make([]string, len(found))
	for i, m := range found {
		alts[i] = m.LongString()
	}
	sort.Strings(alts)
	return Move{}, errors.Wrapf(ErrInvalidMove, "%q is ambiguous (%s)", text, strings.Join(alts, ", "))
}

func samePath(path, want []Square) bool {
	if len(path) != len(want) {
		return false
	}
	for i := range path {
		if path[i] != want[i] {
			return false
		}
	}
	return true
}
