// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package main

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/pkg/diff"
	diffwrite "github.com/pkg/diff/write"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"mvdan.cc/braceexpand/expand"
	"mvdan.cc/braceexpand/pattern"
	"mvdan.cc/braceexpand/syntax"
)

var (
	showVersion = flag.Bool("version", false, "")

	escape   = flag.Bool("e", false, "")
	alphabet expand.Alphabet
	nulSep   = flag.Bool("0", false, "")
	toRegexp = flag.Bool("regexp", false, "")
	toTree   = flag.Bool("tree", false, "")

	outPath  = flag.String("o", "", "")
	diffPath = flag.String("d", "", "")

	in    io.Reader = os.Stdin
	out   io.Writer = os.Stdout
	color bool

	version = "(devel)" // to match the default from runtime/debug
)

func init() { flag.Var(&alphabet, "alphabet", "") }

func main() {
	os.Exit(main1())
}

var errChangedWithDiff = errors.New("")

func main1() int {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: braceexpand [flags] [pattern ...]

Each pattern is brace expanded like Bash does, printing one result per line.
If no patterns are given, they are read from standard input, one per line.
Empty lines are skipped.

  -version  show version and exit

Expansion options:

  -e             backslashes escape braces, commas, and themselves
  -alphabet str  alphabet for character ranges (default/bash, default "default")

Output options:

  -0        separate results with a null byte instead of a newline
  -regexp   print an anchored regular expression matching the results
  -tree     print the syntax tree of each pattern instead of expanding it
  -o path   write the output to a file atomically
  -d path   error with a diff when the output differs from a file
`)
	}
	flag.Parse()

	if *showVersion {
		// don't overwrite the version if it was set by -ldflags=-X
		if info, ok := debug.ReadBuildInfo(); ok && version == "(devel)" {
			mod := &info.Main
			if mod.Replace != nil {
				mod = mod.Replace
			}
			if mod.Version != "" {
				version = mod.Version
			}
		}
		fmt.Fprintln(out, version)
		return 0
	}
	if *outPath != "" && *diffPath != "" {
		fmt.Fprintf(os.Stderr, "-o and -d cannot coexist\n")
		return 1
	}

	if os.Getenv("FORCE_COLOR") == "true" {
		// Undocumented way to force color; used in the tests.
		color = true
	} else if os.Getenv("TERM") == "dumb" {
		// Equivalent to forcing color to be turned off.
	} else if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		color = true
	}

	patterns := flag.Args()
	if len(patterns) == 0 {
		if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			// Waiting for patterns on a terminal is rarely what the user wants.
			flag.Usage()
			return 2
		}
		var err error
		if patterns, err = readPatterns(in); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}
	res, err := expandAll(patterns)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := writeResult(res); err != nil {
		if err != errChangedWithDiff {
			fmt.Fprintln(os.Stderr, err)
		}
		return 1
	}
	return 0
}

func readPatterns(r io.Reader) ([]string, error) {
	var patterns []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			patterns = append(patterns, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading patterns: %w", err)
	}
	return patterns, nil
}

// expandAll expands the patterns concurrently, concatenating their output in
// the original order. The first error in that order is returned.
func expandAll(patterns []string) ([]byte, error) {
	bufs := make([]bytes.Buffer, len(patterns))
	errs := make([]error, len(patterns))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, pat := range patterns {
		g.Go(func() error {
			errs[i] = expandPattern(&bufs[i], pat)
			return errs[i]
		})
	}
	g.Wait() // errors are reported in order below
	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("%s: %w", patterns[i], err)
		}
	}
	var all bytes.Buffer
	for i := range bufs {
		all.Write(bufs[i].Bytes())
	}
	return all.Bytes(), nil
}

func expandPattern(buf *bytes.Buffer, pat string) error {
	sep := byte('\n')
	if *nulSep {
		sep = 0
	}
	if *toTree {
		word, err := syntax.NewParser(syntax.Escape(*escape)).Parse(pat)
		if err != nil {
			return err
		}
		return syntax.DebugPrint(buf, word)
	}
	if *toRegexp {
		mode := pattern.EntireString
		if *escape {
			mode |= pattern.Escape
		}
		if alphabet == expand.AlphabetBash {
			mode |= pattern.BashAlphabet
		}
		expr, err := pattern.Regexp(pat, mode)
		if err != nil {
			return err
		}
		buf.WriteString(expr)
		buf.WriteByte(sep)
		return nil
	}
	cfg := &expand.Config{Escape: *escape, Alphabet: alphabet}
	seq, err := expand.Pattern(cfg, pat)
	if err != nil {
		return err
	}
	for s := range seq {
		buf.WriteString(s)
		buf.WriteByte(sep)
	}
	return nil
}

func writeResult(res []byte) error {
	switch {
	case *outPath != "":
		return writeFile(*outPath, res, 0o666)
	case *diffPath != "":
		want, err := os.ReadFile(*diffPath)
		if err != nil {
			return err
		}
		if bytes.Equal(want, res) {
			return nil
		}
		opts := []diffwrite.Option{}
		if color {
			opts = append(opts, diffwrite.TerminalColor())
		}
		if err := diff.Text(*diffPath, *diffPath+".expanded", want, res, out, opts...); err != nil {
			return fmt.Errorf("computing diff: %s", err)
		}
		return errChangedWithDiff
	}
	_, err := out.Write(res)
	return err
}
