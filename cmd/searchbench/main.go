package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"draughts-engine/draughts"
	"draughts-engine/engine"
)

var benchFENs = []string{
	draughts.StartFEN,
	"W:W27,28,32,33,38,K44,48:B3,12,K18,19,23,24",
	"B:W22,31,36,41,46:B5,10,15,20,25",
	"W:W28,32,33,34,37,38,39,42,43,44,47,48:B6,7,9,12,13,14,16,17,18,19,23,24",
}

type benchResult struct {
	fen     string
	run     int
	move    draughts.Move
	score   int32
	depth   int
	nodes   uint64
	elapsed time.Duration
}

func main() {
	depthFlag := flag.Int("depth", 8, "search depth in plies")
	repeatFlag := flag.Int("repeat", 1, "number of searches per position")
	fenFlag := flag.String("fen", "", "semicolon separated FENs to search (empty = built-in set)")
	presetFlag := flag.String("preset", "default", "evaluation preset")
	rulesFlag := flag.String("rules", "killer", "rules variant")
	parallelFlag := flag.Int("parallel", runtime.NumCPU(), "searches to run at once, each with its own engine")
	verbose := flag.Bool("v", false, "log per-depth diagnostics")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(level).With().Timestamp().Logger()

	if *depthFlag <= 0 {
		log.Fatal().Int("depth", *depthFlag).Msg("depth must be positive")
	}
	weights, err := engine.PresetByName(*presetFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("bad preset")
	}
	rules, err := draughts.RulesByName(*rulesFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("bad rules")
	}

	fens := benchFENs
	if *fenFlag != "" {
		fens = strings.Split(*fenFlag, ";")
	}
	positions := make([]*draughts.Position, len(fens))
	for i, fen := range fens {
		if positions[i], err = draughts.ParseFEN(fen); err != nil {
			log.Fatal().Err(err).Str("fen", fen).Msg("bad fen")
		}
	}

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create CPU profile")
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal().Err(err).Msg("could not start CPU profile")
		}
		defer func() {
			pprof.StopCPUProfile()
			f.Close()
		}()
	}

	cfg := engine.DefaultConfig()
	cfg.Rules = rules
	cfg.Evaluator = engine.NewEvaluator(weights)

	var mu sync.Mutex
	var results []benchResult

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(*parallelFlag)
	startAll := time.Now()
	for i, pos := range positions {
		for run := 1; run <= *repeatFlag; run++ {
			fen, pos, run := fens[i], pos, run
			g.Go(func() error {
				eng := engine.New(cfg, engine.WithLogger(log.With().Str("fen", fen).Int("run", run).Logger()))
				res, err := eng.Search(ctx, pos, engine.Limits{Depth: *depthFlag})
				if err != nil {
					return errors.Wrap(err, fen)
				}
				mu.Lock()
				results = append(results, benchResult{fen, run, res.Move, res.Score, res.Depth, res.Nodes, res.Elapsed})
				mu.Unlock()
				log.Info().
					Str("fen", fen).
					Int("run", run).
					Str("bestmove", res.Move.LongString()).
					Str("score", engine.ScoreString(res.Score)).
					Int("depth", res.Depth).
					Uint64("nodes", res.Nodes).
					Dur("time", res.Elapsed).
					Msg("search done")
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("benchmark failed")
	}

	var nodes uint64
	var busy time.Duration
	for _, r := range results {
		nodes += r.nodes
		busy += r.elapsed
	}
	total := time.Since(startAll)
	fmt.Printf("searches: %d  nodes: %d  wall: %v  search time: %v  nps: %.0f\n",
		len(results), nodes, total, busy, float64(nodes)/max(busy.Seconds(), 1e-9))
}
