package draughts

import (
	"errors"
	"math/rand"
	"testing"
)

func TestApplyUndoRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for game := 0; game < 20; game++ {
		p := StartPosition()
		start := *p
		var played []Move
		for ply := 0; ply < 120; ply++ {
			moves := Killer.LegalMoves(p)
			if len(moves) == 0 {
				break
			}
			m := moves[rnd.Intn(len(moves))]
			want := p.HashAfter(m)
			p.Apply(m)
			if p.Hash() != want {
				t.Fatalf("game %d ply %d: HashAfter(%s) = %x, Apply gave %x", game, ply, m, want, p.Hash())
			}
			if !p.Validate() {
				t.Fatalf("game %d ply %d: invalid position after %s", game, ply, m.LongString())
			}
			played = append(played, m)
		}
		for i := len(played) - 1; i >= 0; i-- {
			p.Undo(played[i])
		}
		if *p != start {
			t.Fatalf("game %d: position not restored after undoing %d moves", game, len(played))
		}
	}
}

func TestApplyUndoEveryLegalMove(t *testing.T) {
	fens := []string{
		StartFEN,
		"W:W33:B17,28,29",
		"W:WK46:BK37",
		"B:W27,28,32,K44:B12,K18,19,23",
	}
	for _, fen := range fens {
		p := mustParseFEN(t, fen)
		before := *p
		for _, m := range Killer.LegalMoves(p) {
			p.Apply(m)
			p.Undo(m)
			if *p != before {
				t.Fatalf("%s: apply/undo of %s changed the position", fen, m.LongString())
			}
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	p := StartPosition()
	c := p.Clone()
	m := International.LegalMoves(c)[0]
	c.Apply(m)
	if *p == *c {
		t.Fatalf("mutating the clone must not change the original")
	}
	if p.Hash() != StartPosition().Hash() {
		t.Fatalf("original hash changed")
	}
}

func TestHashDependsOnSideToMove(t *testing.T) {
	w := mustParseFEN(t, "W:W31:B20")
	b := mustParseFEN(t, "B:W31:B20")
	if w.Hash() == b.Hash() {
		t.Fatalf("side to move must perturb the hash")
	}
}

func TestFENRoundTrip(t *testing.T) {
	p := mustParseFEN(t, "B:W27,28,32,K44:B12,K18,19,23")
	q := mustParseFEN(t, p.ToFEN())
	if *p != *q {
		t.Fatalf("round trip changed position: %s vs %s", p.ToFEN(), q.ToFEN())
	}
	if mustParseFEN(t, StartFEN).Hash() != StartPosition().Hash() {
		t.Fatalf("StartFEN does not match StartPosition")
	}
}

func TestParseFENErrors(t *testing.T) {
	for _, fen := range []string{"", "X:W1:B2", "W:W51:B1", "W:W1,1:B2", "W:Wa:B2", "W:W9-3"} {
		if _, err := ParseFEN(fen); !errors.Is(err, ErrInvalidFEN) {
			t.Errorf("ParseFEN(%q): got %v want ErrInvalidFEN", fen, err)
		}
	}
}

func TestParseMove(t *testing.T) {
	p := StartPosition()
	m, err := ParseMove(p, International, "32-28")
	if err != nil || m.From != 32 || m.To != 28 {
		t.Fatalf("ParseMove(32-28) = %v, %v", m, err)
	}
	if _, err := ParseMove(p, International, "31-22"); !errors.Is(err, ErrInvalidMove) {
		t.Fatalf("expected ErrInvalidMove, got %v", err)
	}

	c := mustParseFEN(t, "W:W33:B17,28,29")
	for _, text := range []string{"33x11", "33x22x11"} {
		m, err := ParseMove(c, International, text)
		if err != nil || len(m.Captures) != 2 {
			t.Fatalf("ParseMove(%s) = %v, %v", text, m, err)
		}
	}
}
