// Command strands solves a word-grid puzzle: it finds every exact cover of
// the board by dictionary words with one word (possibly merged from several
// chained placements) spanning opposite edges.
//
// Usage:
//
//	strands -puzzle puzzle.json -dict words.txt [-out dir] [-limit n]
//	        [-timeout d] [-v]
//
// The puzzle file is a JSON record with name, theme, letters (one string
// per row), and num_words.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/strands/solver"
	"github.com/katalvlaran/strands/worddict"
)

var (
	log = logrus.New()

	puzzlePath string
	dictPath   string
	outDir     string
	coverLimit int
	timeout    time.Duration
	verbose    bool
)

func init() {
	const (
		puzzleUsage = "puzzle JSON file path"
		dictUsage   = "dictionary word list path"
	)
	flag.StringVar(&puzzlePath, "puzzle", "puzzle.json", puzzleUsage)
	flag.StringVar(&puzzlePath, "p", "puzzle.json", puzzleUsage+" (shorthand)")
	flag.StringVar(&dictPath, "dict", "words.txt", dictUsage)
	flag.StringVar(&dictPath, "d", "words.txt", dictUsage+" (shorthand)")
	flag.StringVar(&outDir, "out", "", "directory to write solutions to (optional)")
	flag.IntVar(&coverLimit, "limit", 0, "max covers to examine, 0 = unlimited")
	flag.DurationVar(&timeout, "timeout", 0, "solve deadline, 0 = none")
	flag.BoolVar(&verbose, "v", false, "debug logging")
}

func setupLogging() {
	logLevel := logrus.InfoLevel
	if verbose {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)

	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
}

func loadPuzzle() solver.Puzzle {
	var p solver.Puzzle

	raw, err := os.ReadFile(puzzlePath)
	if err != nil {
		log.Fatalf("unable to read puzzle %s: %s", puzzlePath, err.Error())
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		log.Fatalf("unable to parse puzzle %s: %s", puzzlePath, err.Error())
	}

	return p
}

func writeSolutions(dir string, rendered []string) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatal("unable to create output directory: ", err)
	}
	for i, text := range rendered {
		path := filepath.Join(dir, fmt.Sprintf("solution_%03d.txt", i+1))
		if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
			log.Fatal("unable to write solution: ", err)
		}
	}
	log.Infof("wrote %d solutions to %s", len(rendered), dir)
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()
	setupLogging()

	puzzle := loadPuzzle()
	log.Infof("puzzle %q (%s), %d words", puzzle.Name, puzzle.Theme, puzzle.NumWords)

	dict, err := worddict.FromFile(dictPath)
	if err != nil {
		log.Fatal("unable to load dictionary: ", err)
	}
	log.Infof("dictionary loaded, %d words", dict.Len())

	s, err := solver.New(puzzle, dict,
		solver.WithCoverLimit(coverLimit),
		solver.WithLogger(log))
	if err != nil {
		log.Fatal("unable to build solver: ", err)
	}

	fmt.Println(renderGrid(s.Grid()))

	ctx := mainCtx
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(mainCtx, timeout)
		defer cancel()
	}

	start := time.Now()
	sols, err := s.Solve(ctx)
	if err != nil {
		log.Fatal("solve failed: ", err)
	}
	log.Infof("found %d solutions in %s", len(sols), time.Since(start).Round(time.Millisecond))

	rendered := make([]string, len(sols))
	for i, sol := range sols {
		rendered[i] = renderSolution(s.Grid(), sol)
		fmt.Printf("--- solution %d ---\n%s\n", i+1, rendered[i])
	}

	if outDir != "" {
		writeSolutions(outDir, rendered)
	}
}
