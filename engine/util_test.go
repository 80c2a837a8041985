package engine

import (
	"bytes"
	"strings"
	"testing"

	"draughts-engine/draughts"
)

func TestScoreString(t *testing.T) {
	cases := map[int32]string{
		0:            "cp 0",
		-135:         "cp -135",
		WinScore:     "win",
		-WinScore:    "loss",
		WinScore - 1: "cp 1073741823",
	}
	for score, want := range cases {
		if got := ScoreString(score); got != want {
			t.Errorf("ScoreString(%d) = %q want %q", score, got, want)
		}
	}
}

func TestPVString(t *testing.T) {
	p := mustParseFEN(t, "W:W33,38:B17,28,19")
	var pv []draughts.Move
	for _, text := range []string{"33x11", "19-24"} {
		m, err := draughts.ParseMove(p, draughts.Killer, text)
		if err != nil {
			t.Fatalf("ParseMove(%s): %v", text, err)
		}
		p.Apply(m)
		pv = append(pv, m)
	}
	if got := PVString(pv); got != "33x22x11 19-24" {
		t.Fatalf("PVString = %q", got)
	}
	if PVString(nil) != "" {
		t.Fatalf("empty line should print nothing")
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 1, 3) != 3 || Clamp(-5, 1, 3) != 1 || Clamp(2, 1, 3) != 2 {
		t.Fatalf("Clamp misbehaves")
	}
	if Abs(int32(-7)) != 7 || Min(2, 1) != 1 || Max(2, 1) != 2 {
		t.Fatalf("Abs/Min/Max misbehave")
	}
}

func TestCutStatisticsDump(t *testing.T) {
	var buf bytes.Buffer
	CutStatistics{TTHits: 3, AspirationResearches: 1}.Dump(&buf)
	out := buf.String()
	if !strings.Contains(out, "TT hits: 3") || !strings.Contains(out, "Aspiration re-searches: 1") {
		t.Fatalf("unexpected dump:\n%s", out)
	}
}
