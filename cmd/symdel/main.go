// Command symdel is the external collaborator spec.md §6 describes: it
// reads one or two newline-delimited files and writes verified neighbour
// triplets as tab-separated values on stdout. It is a thin binding layer
// over the symdel package — the CLI itself carries no algorithmic logic,
// mirroring how solrac97gr-DuplicateCheck/main.go is a pure dispatcher
// over DuplicateCheckEngine.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/solrac97gr/symdel"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "symdel:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr *os.File) error {
	fs := flag.NewFlagSet("symdel", flag.ContinueOnError)
	fs.SetOutput(stderr)

	k := fs.Int("k", 1, "maximum Levenshtein distance to report")
	oneIndexed := fs.Bool("one-indexed", false, "emit 1-based indices instead of 0-based")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: symdel [-k N] [--one-indexed] <file> [reference-file]")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "  <file> alone:            within-set neighbour join over <file>'s lines")
		fmt.Fprintln(stderr, "  <file> <reference-file>: cross-set join, <file> as query")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) < 1 || len(rest) > 2 {
		fs.Usage()
		return fmt.Errorf("expected 1 or 2 file arguments, got %d", len(rest))
	}

	queryLines, err := readLines(rest[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", rest[0], err)
	}

	zeroIndex := !*oneIndexed

	var triplets symdel.Triplets
	if len(rest) == 1 {
		triplets, err = symdel.Within(queryLines, *k, zeroIndex)
	} else {
		var refLines []string
		refLines, err = readLines(rest[1])
		if err != nil {
			return fmt.Errorf("reading %s: %w", rest[1], err)
		}
		triplets, err = symdel.Cross(queryLines, refLines, *k, zeroIndex)
	}
	if err != nil {
		return err
	}

	w := bufio.NewWriter(stdout)
	defer w.Flush()
	for _, t := range triplets {
		fmt.Fprintf(w, "%d\t%d\t%d\n", t.I, t.J, t.D)
	}
	return nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
