// Copyright (c) 2018, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package expand

import (
	"fmt"
	"iter"

	"mvdan.cc/braceexpand/syntax"
)

// Braces performs brace expansion on a word. For example, the word parsed from
// "foo{bar,baz}" results in "foobar" and "foobaz".
//
// Results are produced one at a time, in the order Bash would produce them:
// the leftmost brace expansion varies slowest. Stopping the iteration early is
// fine. The sequence may be iterated any number of times.
func Braces(cfg *Config, word *syntax.Word) iter.Seq[string] {
	cfg = prepareConfig(cfg)
	return func(yield func(string) bool) {
		b := braceExpander{cfg: cfg, yield: yield}
		b.parts(word.Parts, nil, nil)
	}
}

type braceExpander struct {
	cfg   *Config
	yield func(string) bool
}

// continuation holds the parts still left to expand after the innermost
// brace expansion element, and those after the enclosing ones.
type continuation struct {
	parts []syntax.WordPart
	next  *continuation
}

// parts appends each candidate of the first part to buf and recurses. It
// returns false once yield has asked to stop.
//
// Appending to buf is safe across sibling candidates, as each only writes
// past len(buf).
func (b *braceExpander) parts(parts []syntax.WordPart, next *continuation, buf []byte) bool {
	for len(parts) == 0 {
		if next == nil {
			return b.emit(buf)
		}
		parts, next = next.parts, next.next
	}
	switch wp := parts[0].(type) {
	case *syntax.Lit:
		return b.parts(parts[1:], next, append(buf, wp.Value...))
	case *syntax.BraceExp:
		rest := &continuation{parts: parts[1:], next: next}
		for _, elem := range wp.Elems {
			if !b.parts(elem.Parts, rest, buf) {
				return false
			}
		}
		return true
	case *syntax.Range:
		for s := range Range(b.cfg, wp) {
			if !b.parts(parts[1:], next, append(buf, s...)) {
				return false
			}
		}
		return true
	default:
		panic(fmt.Sprintf("unhandled word part: %T", wp))
	}
}

func (b *braceExpander) emit(buf []byte) bool {
	if b.cfg.Escape {
		return b.yield(unescape(buf))
	}
	return b.yield(string(buf))
}

// Unescape removes the backslash from every backslash-character pair in s, as
// done to results when Config.Escape is set. A trailing lone backslash is
// kept.
func Unescape(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' {
			return unescape([]byte(s))
		}
	}
	return s
}

func unescape(buf []byte) string {
	out := make([]byte, 0, len(buf))
	for i := 0; i < len(buf); i++ {
		if buf[i] == '\\' && i+1 < len(buf) {
			i++
		}
		out = append(out, buf[i])
	}
	return string(out)
}
