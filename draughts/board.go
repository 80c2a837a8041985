package draughts

// Piece codes match the playing-field values of a 10x10 international board.
type Piece uint8

const (
	Empty     Piece = 0
	WhiteMan  Piece = 1
	BlackMan  Piece = 2
	WhiteKing Piece = 3
	BlackKing Piece = 4
)

// IsWhite reports whether the piece belongs to white. Empty is neither colour.
func (p Piece) IsWhite() bool { return p == WhiteMan || p == WhiteKing }

// IsBlack reports whether the piece belongs to black.
func (p Piece) IsBlack() bool { return p == BlackMan || p == BlackKing }

// IsKing reports whether the piece is a king of either colour.
func (p Piece) IsKing() bool { return p == WhiteKing || p == BlackKing }

// IsMan reports whether the piece is a man of either colour.
func (p Piece) IsMan() bool { return p == WhiteMan || p == BlackMan }

// Color returns the owner of the piece. Only meaningful for non-empty pieces.
func (p Piece) Color() Color {
	if p.IsBlack() {
		return Black
	}
	return White
}

// Crowned returns the king of the same colour.
func (p Piece) Crowned() Piece {
	switch p {
	case WhiteMan:
		return WhiteKing
	case BlackMan:
		return BlackKing
	}
	return p
}

func (p Piece) belongsTo(c Color) bool {
	if c == White {
		return p.IsWhite()
	}
	return p.IsBlack()
}

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Opponent returns the other side.
func (c Color) Opponent() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Square is a playable field numbered 1..50 as in PDN; 0 is used for "no square".
type Square int

const (
	NoSquare   Square = 0
	NumSquares        = 50
	BoardSize         = 10
)

// Position holds the piece placement and side to move. It is mutated in place by
// Apply and Undo; Clone gives an independent copy.
type Position struct {
	// index 0 is never used so squares can index directly
	pieces     [NumSquares + 1]Piece
	sideToMove Color
	zobristKey uint64
}

// NewPosition returns an empty board with white to move.
func NewPosition() *Position {
	p := &Position{}
	p.zobristKey = p.ComputeZobrist()
	return p
}

// StartPosition returns the initial international draughts setup.
func StartPosition() *Position {
	p := &Position{}
	for sq := Square(1); sq <= 20; sq++ {
		p.pieces[sq] = BlackMan
	}
	for sq := Square(31); sq <= NumSquares; sq++ {
		p.pieces[sq] = WhiteMan
	}
	p.zobristKey = p.ComputeZobrist()
	return p
}

// Clone returns a deep copy; the copy shares nothing with p.
func (p *Position) Clone() *Position {
	c := *p
	return &c
}

func (p *Position) PieceAt(sq Square) Piece { return p.pieces[sq] }

func (p *Position) SideToMove() Color { return p.sideToMove }

func (p *Position) WhiteToMove() bool { return p.sideToMove == White }

// Hash returns the zobrist key of the position, side to move included.
func (p *Position) Hash() uint64 { return p.zobristKey }

// Pieces returns a copy of the board array (index 0 unused).
func (p *Position) Pieces() [NumSquares + 1]Piece { return p.pieces }

// SetPiece places a piece (or Empty) on a square, keeping the hash in sync.
func (p *Position) SetPiece(sq Square, pc Piece) {
	if old := p.pieces[sq]; old != Empty {
		p.zobristKey ^= zobristPiece[old][sq]
	}
	p.pieces[sq] = pc
	if pc != Empty {
		p.zobristKey ^= zobristPiece[pc][sq]
	}
}

// SetSideToMove changes the side to move, keeping the hash in sync.
func (p *Position) SetSideToMove(c Color) {
	if p.sideToMove != c {
		p.sideToMove = c
		p.zobristKey ^= zobristSide
	}
}

// Count returns the number of men and kings the given side has on the board.
func (p *Position) Count(c Color) (men int, kings int) {
	for sq := Square(1); sq <= NumSquares; sq++ {
		pc := p.pieces[sq]
		if !pc.belongsTo(c) {
			continue
		}
		if pc.IsKing() {
			kings++
		} else {
			men++
		}
	}
	return men, kings
}

// Apply plays m for the side to move. The move must come from the rules for this
// position; no legality checking happens here.
func (p *Position) Apply(m Move) {
	p.SetPiece(m.From, Empty)
	for _, c := range m.Captures {
		p.SetPiece(c.Square, Empty)
	}
	landed := m.Piece
	if m.Promotes {
		landed = landed.Crowned()
	}
	p.SetPiece(m.To, landed)
	p.sideToMove = p.sideToMove.Opponent()
	p.zobristKey ^= zobristSide
}

// Undo reverts Apply(m). Captured pieces come back on their own squares.
func (p *Position) Undo(m Move) {
	p.sideToMove = p.sideToMove.Opponent()
	p.zobristKey ^= zobristSide
	p.SetPiece(m.To, Empty)
	for _, c := range m.Captures {
		p.SetPiece(c.Square, c.Piece)
	}
	p.SetPiece(m.From, m.Piece)
}

// HashAfter returns the key the position would have after Apply(m), without
// touching the board.
func (p *Position) HashAfter(m Move) uint64 {
	key := p.zobristKey ^ zobristSide
	key ^= zobristPiece[m.Piece][m.From]
	for _, c := range m.Captures {
		key ^= zobristPiece[c.Piece][c.Square]
	}
	landed := m.Piece
	if m.Promotes {
		landed = landed.Crowned()
	}
	return key ^ zobristPiece[landed][m.To]
}

// Validate checks the cached hash against a full recompute and that no man
// stands on its own promotion row.
func (p *Position) Validate() bool {
	if p.zobristKey != p.ComputeZobrist() {
		return false
	}
	for sq := Square(1); sq <= NumSquares; sq++ {
		switch p.pieces[sq] {
		case WhiteMan:
			if Row(sq) == 0 {
				return false
			}
		case BlackMan:
			if Row(sq) == BoardSize-1 {
				return false
			}
		}
	}
	return true
}
