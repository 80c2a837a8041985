package engine

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// CutStatistics collects counts for each cutoff mechanism and the retries the
// deepening loop had to make.
type CutStatistics struct {
	TTHits               uint64
	BetaCutoffs          uint64
	AlphaCutoffs         uint64
	QuiescenceNodes      uint64
	AspirationResearches uint64
	ValidationFailures   uint64
	Aborts               uint64
}

// MarshalZerologObject lets the statistics ride along in a log event.
func (c CutStatistics) MarshalZerologObject(e *zerolog.Event) {
	e.Uint64("tt", c.TTHits).
		Uint64("beta", c.BetaCutoffs).
		Uint64("alpha", c.AlphaCutoffs).
		Uint64("quiescence", c.QuiescenceNodes).
		Uint64("researches", c.AspirationResearches).
		Uint64("validation_failures", c.ValidationFailures).
		Uint64("aborts", c.Aborts)
}

// Dump writes the statistics as protocol info strings.
func (c CutStatistics) Dump(w io.Writer) {
	fmt.Fprintln(w, "info string Cut statistics:")
	fmt.Fprintf(w, "info string   TT hits: %d\n", c.TTHits)
	fmt.Fprintf(w, "info string   Beta cutoffs: %d\n", c.BetaCutoffs)
	fmt.Fprintf(w, "info string   Alpha cutoffs: %d\n", c.AlphaCutoffs)
	fmt.Fprintf(w, "info string   Quiescence nodes: %d\n", c.QuiescenceNodes)
	fmt.Fprintf(w, "info string   Aspiration re-searches: %d\n", c.AspirationResearches)
	fmt.Fprintf(w, "info string   Validation failures: %d\n", c.ValidationFailures)
	fmt.Fprintf(w, "info string   Aborts: %d\n", c.Aborts)
}
