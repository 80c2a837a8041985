package draughts

import "math/rand"

// Zobrist keys per piece code and square, plus one for black to move.
var zobristPiece [BlackKing + 1][NumSquares + 1]uint64
var zobristSide uint64

func init() {
	initZobrist()
}

func initZobrist() {
	// Fixed seed so keys (and anything ordered by them) are reproducible across runs
	rnd := rand.New(rand.NewSource(0xD4A6))

	for p := WhiteMan; p <= BlackKing; p++ {
		for sq := 1; sq <= NumSquares; sq++ {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	zobristSide = rnd.Uint64()
}

// ComputeZobrist calculates the key from scratch. XOR makes it independent of
// the order pieces are visited in.
func (p *Position) ComputeZobrist() uint64 {
	var key uint64
	for sq := 1; sq <= NumSquares; sq++ {
		if pc := p.pieces[sq]; pc != Empty {
			key ^= zobristPiece[pc][sq]
		}
	}
	if p.sideToMove == Black {
		key ^= zobristSide
	}
	return key
}
