package engine

import (
	"errors"
	"testing"

	"draughts-engine/draughts"
)

var evalFENs = []string{
	draughts.StartFEN,
	"W:W27,28,32,33,38,K44,48:B3,12,K18,19,23,24",
	"B:W22,31,36,41,46:B5,10,15,20,25",
	"W:W18,23,28,33:B3,7,K30",
	"W:W31:B",
}

// mirror rotates the board half a turn and swaps the colours, so the result is
// the same game seen from the other side.
func mirror(p *draughts.Position) *draughts.Position {
	m := draughts.NewPosition()
	for sq := draughts.Square(1); sq <= draughts.NumSquares; sq++ {
		pc := p.PieceAt(sq)
		switch pc {
		case draughts.WhiteMan:
			pc = draughts.BlackMan
		case draughts.BlackMan:
			pc = draughts.WhiteMan
		case draughts.WhiteKing:
			pc = draughts.BlackKing
		case draughts.BlackKing:
			pc = draughts.WhiteKing
		}
		m.SetPiece(draughts.NumSquares+1-sq, pc)
	}
	m.SetSideToMove(p.SideToMove().Opponent())
	return m
}

func TestEvaluateIsPure(t *testing.T) {
	ev := NewEvaluator(DefaultWeights)
	for _, fen := range evalFENs {
		p := mustParseFEN(t, fen)
		before := *p
		a, b := ev.Evaluate(p), ev.Evaluate(p)
		if a != b {
			t.Fatalf("%s: evaluated %d then %d", fen, a, b)
		}
		if *p != before {
			t.Fatalf("%s: evaluation changed the position", fen)
		}
		if c := ev.Evaluate(p.Clone()); c != a {
			t.Fatalf("%s: clone evaluates to %d, original %d", fen, c, a)
		}
	}
}

func TestEvaluateMirrorNegates(t *testing.T) {
	for _, name := range PresetNames() {
		w, _ := PresetByName(name)
		ev := NewEvaluator(w)
		for _, fen := range evalFENs {
			p := mustParseFEN(t, fen)
			if got, want := ev.Evaluate(mirror(p)), -ev.Evaluate(p); got != want {
				t.Errorf("%s/%s: mirrored score %d want %d", name, fen, got, want)
			}
		}
	}
}

func TestStartPositionIsBalanced(t *testing.T) {
	if score := NewEvaluator(DefaultWeights).Evaluate(draughts.StartPosition()); score != 0 {
		t.Fatalf("start position scores %d", score)
	}
}

func TestMaterialBalance(t *testing.T) {
	ev := NewEvaluator(MaterialWeights)
	cases := []struct {
		fen  string
		want int32
	}{
		{"W:W31,32:B", 2 * 100 * 90},        // lone side: fixed ratio of 10
		{"W:W31,32,33,34:B1,2", 2 * 4 * 90}, // 4 vs 2
		{"W:WK31:B1", 2 * 9 * 90},           // king is worth three men
		{"W:W31:B1", 0},
		{"B:W:B1,2,3", -3 * 100 * 90},
	}
	for _, c := range cases {
		if got := ev.Evaluate(mustParseFEN(t, c.fen)); got != c.want {
			t.Errorf("%s: got %d want %d", c.fen, got, c.want)
		}
	}
}

func TestPositionalTerms(t *testing.T) {
	pieces := func(fen string) *board {
		b := mustParseFEN(t, fen).Pieces()
		return &b
	}

	if got := formationScore(pieces("W:W28,33,39:B1")); got != 1 {
		t.Errorf("formation: got %d want 1", got)
	}
	if got := formationScore(pieces("W:W28,33:B1")); got != 0 {
		t.Errorf("formation without a full line: got %d want 0", got)
	}
	if got := tempoScore(pieces("W:W31:B")); got != 3 {
		t.Errorf("tempo: got %d want 3", got)
	}
	if got := spreadScore(pieces("W:W31,36,41,46:B"), draughts.WhiteMan); got != -3 {
		t.Errorf("spread: got %d want -3", got)
	}
	if got := outpostScore(pieces("W:W18:B1")); got != -1 {
		t.Errorf("lonely outpost: got %d want -1", got)
	}
	if got := outpostScore(pieces("W:W18,23,29:B1")); got != 0 {
		t.Errorf("supported outpost: got %d want 0", got)
	}
	if got := backRankScore(pieces("W:W48:B3")); got != 0 {
		t.Errorf("back rank both: got %d want 0", got)
	}
	if got := backRankScore(pieces("W:W48:B4")); got != 1 {
		t.Errorf("back rank white: got %d want 1", got)
	}
}

func TestPresets(t *testing.T) {
	w, err := PresetByName("Material")
	if err != nil || w != MaterialWeights {
		t.Fatalf("PresetByName(Material) = %+v, %v", w, err)
	}
	if _, err := PresetByName("aggressive"); !errors.Is(err, ErrUnknownPreset) {
		t.Fatalf("expected ErrUnknownPreset, got %v", err)
	}
	names := PresetNames()
	if len(names) != 3 || names[0] != "classic" || names[1] != "default" || names[2] != "material" {
		t.Fatalf("unexpected preset names %v", names)
	}
}
