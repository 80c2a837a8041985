package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/pkg/errors"
)

const (
	middlegameFEN = "W:W28,32,33,34,37,38,39,42,43,44,47,48:B6,7,9,12,13,14,16,17,18,19,23,24"
	kingsFEN      = "W:W27,28,32,33,38,K44,48:B3,12,K18,19,23,24"
)

// goRun runs one of the tools under cmd/ with its output passed straight through.
func goRun(tool string, args ...string) error {
	cmd := exec.Command("go", append([]string{"run", "./cmd/" + tool}, args...)...)
	cmd.Stdout, cmd.Stderr = os.Stdout, os.Stderr
	return errors.Wrap(cmd.Run(), tool)
}

func exitWith(err error) {
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		os.Exit(ee.ExitCode())
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

// Usage: go run ./cmd/benchrun
func main() {
	fmt.Println("Columns: BENCHMARK  N  ns/op  B/op  allocs/op")
	bench := exec.Command("go", "test", "./bench", "-run", "^$", "-bench", ".", "-benchmem", "-benchtime=1s")
	bench.Stdout, bench.Stderr = os.Stdout, os.Stderr
	if err := bench.Run(); err != nil {
		exitWith(err)
	}

	fmt.Println("\nPerft Performance:")
	fmt.Println("TEST \t\tDepth \t\tNodes \t\tTime \tNPS")
	perfts := [][]string{
		{"-depth", "4", "-label", "Initial"},
		{"-depth", "5", "-label", "Initial"},
		{"-depth", "6", "-label", "Initial"},
		{"-depth", "7", "-label", "Initial"},
		{"-fen", middlegameFEN, "-depth", "5", "-label", "Middlegame"},
		{"-fen", kingsFEN, "-depth", "4", "-rules", "killer", "-label", "Kings"},
	}
	for _, args := range perfts {
		if err := goRun("perft", args...); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}

	fmt.Println("\nSearch:")
	if err := goRun("searchbench", "-depth", "7", "-parallel", "1"); err != nil {
		exitWith(err)
	}
}
