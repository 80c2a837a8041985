package draughts

import (
	"testing"
)

func mustParseFEN(t testing.TB, fen string) *Position {
	t.Helper()
	p, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return p
}

func findMove(moves []Move, from, to Square) (Move, bool) {
	for _, m := range moves {
		if m.From == from && m.To == to {
			return m, true
		}
	}
	return Move{}, false
}

func TestGeometry(t *testing.T) {
	cases := []struct {
		sq       Square
		row, col int
	}{
		{1, 0, 1}, {5, 0, 9}, {6, 1, 0}, {28, 5, 4}, {33, 6, 5}, {46, 9, 0}, {50, 9, 8},
	}
	for _, c := range cases {
		if Row(c.sq) != c.row || Col(c.sq) != c.col {
			t.Errorf("square %d: got (%d,%d) want (%d,%d)", c.sq, Row(c.sq), Col(c.sq), c.row, c.col)
		}
		if got := SquareAt(c.row, c.col); got != c.sq {
			t.Errorf("SquareAt(%d,%d) = %d, want %d", c.row, c.col, got, c.sq)
		}
	}
	if SquareAt(0, 0) != NoSquare || SquareAt(-1, 1) != NoSquare || SquareAt(9, 10) != NoSquare {
		t.Fatalf("light or off-board fields must map to NoSquare")
	}
	if Neighbour(1, NorthWest) != NoSquare || Neighbour(1, SouthWest) != 6 || Neighbour(1, SouthEast) != 7 {
		t.Fatalf("unexpected neighbours of square 1")
	}
	if Neighbour(33, NorthWest) != 28 || !Adjacent(28, 33) || !Adjacent(28, 22) || Adjacent(28, 17) {
		t.Fatalf("unexpected adjacency around square 28")
	}
}

func TestStartPositionMoves(t *testing.T) {
	p := StartPosition()
	moves := International.LegalMoves(p)
	if len(moves) != 9 {
		t.Fatalf("start position: got %d moves want 9", len(moves))
	}
	for _, m := range moves {
		if m.IsCapture() || !m.IsWhite() || Row(m.To) != 5 {
			t.Fatalf("unexpected opening move %s", m)
		}
	}
}

func TestBlackMenMoveSouth(t *testing.T) {
	p := mustParseFEN(t, "B:W50:B1")
	moves := International.LegalMoves(p)
	if len(moves) != 2 {
		t.Fatalf("got %d moves want 2", len(moves))
	}
	for _, to := range []Square{6, 7} {
		if _, ok := findMove(moves, 1, to); !ok {
			t.Fatalf("missing 1-%d", to)
		}
	}
}

func TestMaximumCaptureRule(t *testing.T) {
	// 33 can take 29 alone or 28 and 17; only the double capture is legal.
	p := mustParseFEN(t, "W:W33:B17,28,29")
	moves := International.LegalMoves(p)
	if len(moves) != 1 {
		t.Fatalf("got %d moves want 1: %v", len(moves), moves)
	}
	m := moves[0]
	if m.From != 33 || m.To != 11 || len(m.Captures) != 2 {
		t.Fatalf("unexpected move %s with %d captures", m.LongString(), len(m.Captures))
	}
	if m.LongString() != "33x22x11" || m.String() != "33x11" {
		t.Fatalf("notation: got %q / %q", m.LongString(), m.String())
	}
}

func TestCaptureIsMandatory(t *testing.T) {
	p := mustParseFEN(t, "W:W22,45:B28")
	moves := International.LegalMoves(p)
	if len(moves) != 1 {
		t.Fatalf("got %d moves want only the capture", len(moves))
	}
	// men capture backwards too
	if moves[0].From != 22 || moves[0].To != 33 || moves[0].Captures[0].Square != 28 {
		t.Fatalf("unexpected move %s", moves[0].LongString())
	}
}

func TestPromotionOnLastRow(t *testing.T) {
	p := mustParseFEN(t, "W:W6:B45")
	moves := International.LegalMoves(p)
	m, ok := findMove(moves, 6, 1)
	if !ok || !m.Promotes {
		t.Fatalf("expected promoting move 6-1, got %v", moves)
	}
	p.Apply(m)
	if p.PieceAt(1) != WhiteKing {
		t.Fatalf("expected white king on 1, got %d", p.PieceAt(1))
	}
	p.Undo(m)
	if p.PieceAt(6) != WhiteMan || p.PieceAt(1) != Empty {
		t.Fatalf("undo did not restore the man")
	}
}

func TestKingSlides(t *testing.T) {
	p := mustParseFEN(t, "W:WK46:B5")
	moves := International.LegalMoves(p)
	if len(moves) != 8 {
		t.Fatalf("got %d king moves want 8", len(moves))
	}
	if _, ok := findMove(moves, 46, 5); ok {
		t.Fatalf("king must not land on an occupied square")
	}
}

func TestKillerRulesRestrictKingCaptures(t *testing.T) {
	cases := []struct {
		name  string
		fen   string
		rules Rules
		want  int
	}{
		{"international king takes king", "W:WK46:BK37", International, 7},
		{"killer king takes king", "W:WK46:BK37", Killer, 1},
		{"killer king takes man", "W:WK46:B37", Killer, 7},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := mustParseFEN(t, c.fen)
			moves := c.rules.LegalMoves(p)
			if len(moves) != c.want {
				t.Fatalf("got %d moves want %d", len(moves), c.want)
			}
			if c.want == 1 && moves[0].To != 32 {
				t.Fatalf("killer capture must land behind the king, got %s", moves[0])
			}
		})
	}
}

func TestMoveEqualIgnoresCaptureOrder(t *testing.T) {
	a := Move{From: 1, To: 1, Captures: []Capture{{7, BlackMan}, {12, BlackMan}}}
	b := Move{From: 1, To: 1, Captures: []Capture{{12, BlackMan}, {7, BlackMan}}}
	c := Move{From: 1, To: 1, Captures: []Capture{{12, BlackMan}, {8, BlackMan}}}
	if !a.Equal(b) {
		t.Fatalf("same capture set must compare equal")
	}
	if a.Equal(c) {
		t.Fatalf("different capture sets must not compare equal")
	}
}

func TestRulesByName(t *testing.T) {
	if r, err := RulesByName("Killer"); err != nil || r.Name() != "killer" {
		t.Fatalf("RulesByName(Killer) = %v, %v", r, err)
	}
	if _, err := RulesByName("frisian"); err == nil {
		t.Fatalf("expected error for unknown variant")
	}
}

func TestPerftInitialPosition(t *testing.T) {
	want := []uint64{9, 81, 658, 4265}
	for depth, n := range want {
		p := StartPosition()
		if got := Perft(p, International, depth+1); got != n {
			t.Fatalf("perft depth %d: got %d want %d", depth+1, got, n)
		}
	}
}
