// Copyright (c) 2017, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

// Package pattern allows working with brace expansion patterns as regular
// expressions, to match the strings a pattern would expand to without
// generating all of them.
package pattern

import (
	"bytes"
	"fmt"
	"regexp"

	"mvdan.cc/braceexpand/expand"
	"mvdan.cc/braceexpand/syntax"
)

// Mode can be used to supply a number of options to the package's functions.
// Not all functions change their behavior with all of the options below.
type Mode uint

const (
	Escape       Mode = 1 << iota // backslashes escape the following character
	BashAlphabet                  // character ranges use expand.AlphabetBash
	EntireString                  // match the entire string using ^$ delimiters
)

func (m Mode) config() *expand.Config {
	cfg := &expand.Config{Escape: m&Escape != 0}
	if m&BashAlphabet != 0 {
		cfg.Alphabet = expand.AlphabetBash
	}
	return cfg
}

// Regexp turns a brace expansion pattern into a regular expression that can be
// used with regexp.Compile. The expression matches exactly the strings that
// the pattern expands to. It will return an error if the input pattern was
// incorrect, which can only be a *syntax.UnbalancedError.
//
// For example, Regexp(`foo{1..3}.{c,h}`, 0) returns `foo(?:1|2|3)\.(?:c|h)`.
//
// Alternations are not expanded into their product, but ranges are turned into
// an alternation of all their values, so large ranges result in large
// expressions.
func Regexp(pat string, mode Mode) (string, error) {
	cfg := mode.config()
	word, err := syntax.NewParser(syntax.Escape(cfg.Escape)).Parse(pat)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if mode&EntireString != 0 {
		buf.WriteString("^")
	}
	writeWord(&buf, cfg, word)
	if mode&EntireString != 0 {
		buf.WriteString("$")
	}
	return buf.String(), nil
}

func writeWord(buf *bytes.Buffer, cfg *expand.Config, word *syntax.Word) {
	for _, wp := range word.Parts {
		switch wp := wp.(type) {
		case *syntax.Lit:
			s := wp.Value
			if cfg.Escape {
				s = expand.Unescape(s)
			}
			buf.WriteString(regexp.QuoteMeta(s))
		case *syntax.BraceExp:
			buf.WriteString("(?:")
			for i, elem := range wp.Elems {
				if i > 0 {
					buf.WriteByte('|')
				}
				writeWord(buf, cfg, elem)
			}
			buf.WriteByte(')')
		case *syntax.Range:
			buf.WriteString("(?:")
			first := true
			for s := range expand.Range(cfg, wp) {
				if !first {
					buf.WriteByte('|')
				}
				first = false
				buf.WriteString(regexp.QuoteMeta(s))
			}
			buf.WriteByte(')')
		default:
			panic(fmt.Sprintf("unhandled word part: %T", wp))
		}
	}
}

// HasMeta returns whether a string contains any brace, which may make it
// expand to something other than itself. When the function returns false, the
// given pattern can only expand to itself, or to itself without backslashes if
// the Escape mode is given.
//
// If Escape is given, braces preceded by a backslash are ignored.
//
// For example, HasMeta(`foo\{bar}`, Escape) returns false, but
// HasMeta(`foo{bar}`, Escape) returns true.
func HasMeta(pat string, mode Mode) bool {
	for i := 0; i < len(pat); i++ {
		switch pat[i] {
		case '\\':
			if mode&Escape != 0 {
				i++
			}
		case '{', '}':
			return true
		}
	}
	return false
}

// QuoteMeta returns a string that quotes all brace expansion metacharacters in
// the given text. The returned string is a pattern which, when expanded with
// backslash escaping enabled, results in the literal text.
//
// For example, QuoteMeta(`{a,b}`) returns `\{a\,b\}`.
func QuoteMeta(pat string) string {
	any := false
loop:
	for i := 0; i < len(pat); i++ {
		switch pat[i] {
		case '{', '}', ',', '\\':
			any = true
			break loop
		}
	}
	if !any { // short-cut without a string copy
		return pat
	}
	var buf bytes.Buffer
	for i := 0; i < len(pat); i++ {
		switch pat[i] {
		case '{', '}', ',', '\\':
			buf.WriteByte('\\')
		}
		buf.WriteByte(pat[i])
	}
	return buf.String()
}
