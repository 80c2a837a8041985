package draughts

// Perft counts the leaf nodes of the legal move tree to the given depth.
func Perft(p *Position, rules Rules, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := rules.LegalMoves(p)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		p.Apply(m)
		nodes += Perft(p, rules, depth-1)
		p.Undo(m)
	}
	return nodes
}

// PerftDivide reports the perft count below each root move, keyed by long notation.
func PerftDivide(p *Position, rules Rules, depth int) map[string]uint64 {
	out := make(map[string]uint64)
	if depth <= 0 {
		return out
	}
	for _, m := range rules.LegalMoves(p) {
		p.Apply(m)
		out[m.LongString()] = Perft(p, rules, depth-1)
		p.Undo(m)
	}
	return out
}
