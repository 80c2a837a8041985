package draughts

import (
	"strconv"
	"strings"
)

// Capture is one jumped piece of a capturing move.
type Capture struct {
	Square Square
	Piece  Piece
}

// Move is an immutable move value. Captures are listed in the order they are
// jumped; Path holds every landing square, the last one being To.
type Move struct {
	From     Square
	To       Square
	Piece    Piece
	Captures []Capture
	Path     []Square
	Promotes bool
}

// IsZero reports whether m is the zero Move, used as "no move".
func (m Move) IsZero() bool { return m.From == NoSquare && m.To == NoSquare }

func (m Move) IsCapture() bool { return len(m.Captures) > 0 }

// IsWhite reports whether the move is made by white.
func (m Move) IsWhite() bool { return m.Piece.IsWhite() }

// Color returns the side making the move.
func (m Move) Color() Color { return m.Piece.Color() }

// Equal compares moves by value: same begin and end squares and the same set
// of captured squares. Path and capture order are not part of the identity.
func (m Move) Equal(o Move) bool {
	if m.From != o.From || m.To != o.To || len(m.Captures) != len(o.Captures) {
		return false
	}
	for _, c := range m.Captures {
		if !o.captures(c.Square) {
			return false
		}
	}
	return true
}

func (m Move) captures(sq Square) bool {
	for _, c := range m.Captures {
		if c.Square == sq {
			return true
		}
	}
	return false
}

// String returns the short PDN notation, e.g. "32-28" or "33x11".
func (m Move) String() string {
	if m.IsZero() {
		return "0000"
	}
	sep := "-"
	if m.IsCapture() {
		sep = "x"
	}
	return strconv.Itoa(int(m.From)) + sep + strconv.Itoa(int(m.To))
}

// LongString spells out every landing square of a capture, e.g. "33x22x11".
func (m Move) LongString() string {
	if !m.IsCapture() || len(m.Path) < 2 {
		return m.String()
	}
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(int(m.From)))
	for _, sq := range m.Path {
		sb.WriteByte('x')
		sb.WriteString(strconv.Itoa(int(sq)))
	}
	return sb.String()
}
