// cmd/wordline-query/main.go
//
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf
//
// The query CLI (spec §6, §12): subcommand "query", a -n result cap,
// and positional <LETTER_POOL> <WORD_SPEC> [<CROSSWORDS>...] arguments.
// The flag-based structure follows the teacher lineage's own
// main/main.go (flag.String/flag.Int/flag.Bool, flag.Parse()) rather
// than a third-party CLI framework, since no file in the pack's
// Scrabble-relevant lineage reaches for one.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	wordline "github.com/kristjanb/wordline"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 || args[0] != "query" {
		fmt.Fprintln(os.Stderr, "usage: wordline-query query [-n N] [-dict PATH] [-color auto|always|never] <LETTER_POOL> <WORD_SPEC> [<CROSSWORDS>...]")
		return 1
	}

	cfg := wordline.LoadConfig()

	fs := flag.NewFlagSet("query", flag.ContinueOnError)
	n := fs.Int("n", cfg.DefaultLimit, "cap the number of results returned (0 = unbounded)")
	dict := fs.String("dict", cfg.DictionaryPath, "path to the newline-delimited word list")
	color := fs.String("color", "auto", "dim the stderr summary line with ANSI color: auto, always or never")
	if err := fs.Parse(args[1:]); err != nil {
		return 1
	}

	rest := fs.Args()
	if len(rest) < 2 {
		fmt.Fprintln(os.Stderr, "query: expected <LETTER_POOL> <WORD_SPEC> [<CROSSWORDS>...]")
		return 1
	}
	if *dict == "" {
		fmt.Fprintln(os.Stderr, "query: no dictionary path given (-dict, WORDLINE_DICTIONARY or .env)")
		return 2
	}

	lex, err := wordline.LoadLexicon(*dict)
	if err != nil {
		fmt.Fprintln(os.Stderr, "query:", err)
		return 2
	}

	rack, err := wordline.ParseLetterPool(rest[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, "query:", err)
		return 1
	}
	spec, err := wordline.ParseWordSpec(rest[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "query:", err)
		return 1
	}
	crosswords, err := wordline.ParseCrosswords(rest[2:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "query:", err)
		return 1
	}

	q, err := wordline.NewQuery(rack, spec, crosswords)
	if err != nil {
		fmt.Fprintln(os.Stderr, "query:", err)
		return 1
	}

	results, oracle, stats := wordline.Evaluate(lex, q, *n)
	for _, r := range results {
		fmt.Println(wordline.FormatResult(spec, q, oracle, r))
	}

	useColor := *color == "always" || (*color == "auto" && isatty.IsTerminal(os.Stdout.Fd()))
	summary := fmt.Sprintf(
		"%s results from %s lexicon nodes visited",
		humanize.Comma(int64(len(results))), humanize.Comma(int64(stats.NodesVisited)),
	)
	if useColor {
		fmt.Fprintf(os.Stderr, "\033[2m%s\033[0m\n", summary)
	} else {
		fmt.Fprintln(os.Stderr, summary)
	}
	return 0
}
