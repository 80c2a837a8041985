package draughts

// Direction is one of the four diagonals. North is toward row 0, white's far side.
type Direction int

const (
	NorthWest Direction = iota
	NorthEast
	SouthWest
	SouthEast
)

var directions = [4]Direction{NorthWest, NorthEast, SouthWest, SouthEast}

var dirDelta = [4][2]int{
	NorthWest: {-1, -1},
	NorthEast: {-1, +1},
	SouthWest: {+1, -1},
	SouthEast: {+1, +1},
}

// Opposite returns the direction pointing the other way along the same diagonal.
func (d Direction) Opposite() Direction {
	switch d {
	case NorthWest:
		return SouthEast
	case NorthEast:
		return SouthWest
	case SouthWest:
		return NorthEast
	}
	return NorthWest
}

// neighbour[sq][dir] is the adjacent square in dir, or NoSquare off the board.
var neighbour [NumSquares + 1][4]Square

func init() {
	initNeighbours()
}

func initNeighbours() {
	for sq := Square(1); sq <= NumSquares; sq++ {
		r, c := Row(sq), Col(sq)
		for _, d := range directions {
			neighbour[sq][d] = SquareAt(r+dirDelta[d][0], c+dirDelta[d][1])
		}
	}
}

// Row returns the board row of sq, 0 at black's back rank (squares 1-5).
func Row(sq Square) int { return (int(sq) - 1) / 5 }

// Col returns the board column of sq. Even rows hold the odd columns and
// odd rows the even ones.
func Col(sq Square) int {
	idx := (int(sq) - 1) % 5
	if Row(sq)%2 == 0 {
		return 2*idx + 1
	}
	return 2 * idx
}

// SquareAt maps a row/column pair to a playable square, or NoSquare when the
// coordinates are off the board or on a light field.
func SquareAt(row, col int) Square {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return NoSquare
	}
	if (row+col)%2 == 0 {
		return NoSquare
	}
	return Square(row*5 + col/2 + 1)
}

// Neighbour returns the adjacent square in direction d, or NoSquare.
func Neighbour(sq Square, d Direction) Square { return neighbour[sq][d] }

// Adjacent reports whether a and b touch diagonally.
func Adjacent(a, b Square) bool {
	for _, d := range directions {
		if neighbour[a][d] == b {
			return true
		}
	}
	return false
}

// forward returns the two directions a man of colour c moves in.
func forward(c Color) [2]Direction {
	if c == White {
		return [2]Direction{NorthWest, NorthEast}
	}
	return [2]Direction{SouthWest, SouthEast}
}

// promotionRow is the row where a man of colour c is crowned.
func promotionRow(c Color) int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}
