package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"draughts-engine/draughts"
	"draughts-engine/engine"
)

func main() {
	verbose := flag.Bool("v", false, "log search diagnostics to stderr")
	flag.Parse()

	log := zerolog.Nop()
	if *verbose {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
			With().Timestamp().Logger()
	}
	uciLoop(os.Stdin, os.Stdout, log)
}

var errMalformed = errors.New("malformed command")

// protocol is the state behind the command loop. Output can come from the loop
// and from a running search at the same time, so writes go through out.
type protocol struct {
	mu  sync.Mutex
	out io.Writer
	log zerolog.Logger

	eng   *engine.Engine
	board *draughts.Position

	searching sync.WaitGroup
	cancel    context.CancelFunc
	lastStats engine.CutStatistics
}

func (p *protocol) println(a ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, a...)
}

func (p *protocol) printf(format string, a ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.out, format, a...)
}

func uciLoop(in io.Reader, out io.Writer, log zerolog.Logger) {
	p := &protocol{out: out, log: log, board: draughts.StartPosition()}
	p.eng = engine.New(engine.DefaultConfig(), engine.WithLogger(log), engine.WithProgress(p.info))

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "id":
			p.println("id name GooseDraughts 0.1")
			p.println("id author Goose")
			p.println("idok")
		case "isready":
			p.println("readyok")
		case "newgame":
			p.halt()
			p.board = draughts.StartPosition()
		case "quit":
			p.halt()
			return
		case "stop":
			p.halt()
		case "go":
			limits, err := parseGo(tokens[1:])
			if err != nil {
				p.println("info string", err)
				continue
			}
			p.halt()
			p.startSearch(limits)
		case "position":
			p.halt()
			if err := p.setPosition(tokens[1:]); err != nil {
				p.println("info string", err)
			}
		case "setoption":
			p.halt()
			if err := p.setOption(tokens[1:]); err != nil {
				p.println("info string", err)
			}
		case "eval":
			p.println("eval", engine.ScoreString(p.eng.Evaluate(p.board)))
		case "d":
			p.println("fen", p.board.ToFEN())
		case "cutstats":
			p.mu.Lock()
			p.lastStats.Dump(p.out)
			p.mu.Unlock()
		default:
			p.println("info string Unknown command:", line)
		}
	}
	p.halt()
}

// halt stops a running search and waits until it has printed its bestmove.
func (p *protocol) halt() {
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.searching.Wait()
}

func (p *protocol) startSearch(limits engine.Limits) {
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	board := p.board.Clone()

	p.searching.Add(1)
	go func() {
		defer p.searching.Done()
		defer cancel()
		res, err := p.eng.Think(ctx, board, limits)
		if err != nil {
			p.println("info string", err)
			p.println("bestmove 0000")
			return
		}
		p.mu.Lock()
		p.lastStats = res.Stats
		p.mu.Unlock()
		p.println("bestmove", res.Move.LongString())
	}()
}

func (p *protocol) info(pr engine.Progress) {
	p.printf("info depth %d score %s nodes %d time %d pv %s\n",
		pr.Depth, engine.ScoreString(pr.Score), pr.Nodes, pr.Elapsed.Milliseconds(), engine.PVString(pr.PV))
}

func parseGo(tokens []string) (engine.Limits, error) {
	var limits engine.Limits
	for i := 0; i < len(tokens); i++ {
		key := strings.ToLower(tokens[i])
		if key == "infinite" {
			continue
		}
		if i+1 >= len(tokens) {
			return limits, errors.Wrapf(errMalformed, "go option %s has no value", key)
		}
		i++
		n, err := strconv.Atoi(tokens[i])
		if err != nil || n < 0 {
			return limits, errors.Wrapf(errMalformed, "go option %s: could not convert %q", key, tokens[i])
		}
		ms := time.Duration(n) * time.Millisecond
		switch key {
		case "depth":
			limits.Depth = n
		case "movetime":
			limits.MoveTime = ms
		case "wtime":
			limits.WhiteTime = ms
		case "btime":
			limits.BlackTime = ms
		case "winc":
			limits.WhiteInc = ms
		case "binc":
			limits.BlackInc = ms
		default:
			return limits, errors.Wrapf(errMalformed, "unknown go subcommand %s", key)
		}
	}
	return limits, nil
}

// setPosition handles "startpos [moves ...]" and "fen <fen> [moves ...]". The
// board is only replaced when the whole command is valid.
func (p *protocol) setPosition(tokens []string) error {
	if len(tokens) == 0 {
		return errors.Wrap(errMalformed, "position needs startpos or fen")
	}
	var board *draughts.Position
	rest := tokens[1:]
	switch strings.ToLower(tokens[0]) {
	case "startpos":
		board = draughts.StartPosition()
	case "fen":
		var fen []string
		for len(rest) > 0 && strings.ToLower(rest[0]) != "moves" {
			fen = append(fen, rest[0])
			rest = rest[1:]
		}
		var err error
		if board, err = draughts.ParseFEN(strings.Join(fen, "")); err != nil {
			return err
		}
	default:
		return errors.Wrapf(errMalformed, "invalid position subcommand %s", tokens[0])
	}

	if len(rest) > 0 && strings.ToLower(rest[0]) == "moves" {
		rules := p.eng.Config().Rules
		for _, text := range rest[1:] {
			m, err := draughts.ParseMove(board, rules, text)
			if err != nil {
				return errors.Wrapf(err, "position %s", board.ToFEN())
			}
			board.Apply(m)
		}
	}
	p.board = board
	return nil
}

// setOption handles "name <Name> value <v>".
func (p *protocol) setOption(tokens []string) error {
	if len(tokens) < 4 || strings.ToLower(tokens[0]) != "name" || strings.ToLower(tokens[2]) != "value" {
		return errors.Wrap(errMalformed, "expected setoption name <name> value <value>")
	}
	name, value := strings.ToLower(tokens[1]), strings.Join(tokens[3:], " ")
	cfg := p.eng.Config()

	switch name {
	case "rules":
		rules, err := draughts.RulesByName(value)
		if err != nil {
			return err
		}
		cfg.Rules = rules
	case "preset":
		w, err := engine.PresetByName(value)
		if err != nil {
			return err
		}
		cfg.Evaluator = engine.NewEvaluator(w)
	case "aspiration", "validate", "transpositions":
		on, err := strconv.ParseBool(value)
		if err != nil {
			return errors.Wrapf(errMalformed, "option %s wants true or false, got %q", name, value)
		}
		switch name {
		case "aspiration":
			cfg.Aspiration = on
		case "validate":
			cfg.ValidatePV = on
		default:
			cfg.Transpositions = on
		}
	case "depth":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return errors.Wrapf(errMalformed, "option depth wants a positive number, got %q", value)
		}
		cfg.MaxDepth = n
	default:
		return errors.Wrapf(errMalformed, "unknown option %s", tokens[1])
	}
	p.eng.SetConfig(cfg)
	p.log.Debug().Str("option", name).Str("value", value).Msg("option set")
	return nil
}
