// Copyright (c) 2026, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

// Package syntax implements parsing of brace expansion patterns, as done by
// Bash, into syntax trees.
package syntax

import "fmt"

// ParserOption is a function which can be passed to NewParser
// to alter its behavior. To apply option to existing Parser
// call it directly, for example syntax.Escape(true)(parser).
type ParserOption func(*Parser)

// Escape makes the parser treat a backslash and the byte following it as an
// opaque unit, so that "\{", "\}", and "\," are never special.
//
// The backslashes are kept in the resulting *Lit nodes. When expanding, they
// must be removed by the caller, which mvdan.cc/braceexpand/expand does when
// its Config.Escape field is set.
func Escape(enabled bool) ParserOption {
	return func(p *Parser) { p.escape = enabled }
}

// NewParser allocates a new Parser and applies any number of options.
func NewParser(options ...ParserOption) *Parser {
	p := &Parser{}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Parser holds the configuration used to parse brace expansion patterns. It
// holds no state between calls to Parse, so it can be reused and shared.
type Parser struct {
	escape bool
}

// Parse is a shortcut for NewParser().Parse(pattern).
func Parse(pattern string) (*Word, error) {
	return NewParser().Parse(pattern)
}

// Parse splits a pattern into its literal runs and its top-level brace
// groups. Each brace group becomes a *Range if it is a valid sequence
// expression, a *BraceExp if it contains a top-level comma, or a *Lit with
// its braces otherwise.
//
// The only error is an *UnbalancedError, returned when a "{" is never closed
// or a "}" is found with no open group. No partial result is returned in that
// case.
func (p *Parser) Parse(pattern string) (*Word, error) {
	return p.word(pattern, 0)
}

// UnbalancedError is returned by Parse when the braces in a pattern do not
// balance.
type UnbalancedError struct {
	// Offset is the byte offset of the brace without a match. For an unclosed
	// group, it is the opening brace of the outermost group.
	Offset int
	// Brace is either '{' or '}'.
	Brace byte
}

func (e *UnbalancedError) Error() string {
	return fmt.Sprintf("%d: unmatched %q", e.Offset, e.Brace)
}

// word scans s, which starts at offset base in the original pattern.
func (p *Parser) word(s string, base int) (*Word, error) {
	w := &Word{}
	depth := 0
	start := 0 // start of the pending literal
	open := 0  // offset of the outermost open brace
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if p.escape {
				i++
			}
		case '{':
			if depth == 0 {
				if i > start {
					w.Parts = append(w.Parts, &Lit{ValuePos: base + start, Value: s[start:i]})
				}
				open = i
			}
			depth++
		case '}':
			if depth == 0 {
				return nil, &UnbalancedError{Offset: base + i, Brace: '}'}
			}
			if depth--; depth > 0 {
				break
			}
			part, err := p.group(s[open+1:i], base+open)
			if err != nil {
				return nil, err
			}
			w.Parts = append(w.Parts, part)
			start = i + 1
		}
	}
	if depth > 0 {
		return nil, &UnbalancedError{Offset: base + open, Brace: '{'}
	}
	if start < len(s) || len(w.Parts) == 0 {
		w.Parts = append(w.Parts, &Lit{ValuePos: base + start, Value: s[start:]})
	}
	return w, nil
}

// group classifies the inside of a balanced brace group whose opening brace
// is at offset lbrace.
func (p *Parser) group(inner string, lbrace int) (WordPart, error) {
	rbrace := lbrace + len(inner) + 1
	if r := parseRange(inner); r != nil {
		r.Lbrace, r.Rbrace = lbrace, rbrace
		return r, nil
	}
	return p.alternation(inner, lbrace)
}

func (p *Parser) alternation(inner string, lbrace int) (WordPart, error) {
	var commas []int
	depth := 0
	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '\\':
			if p.escape {
				i++
			}
		case '{':
			depth++
		case '}':
			depth--
		case ',':
			if depth == 0 {
				commas = append(commas, i)
			}
		}
	}
	if depth != 0 || len(commas) == 0 {
		// not an alternation; return {x} to a literal
		return &Lit{ValuePos: lbrace, Value: "{" + inner + "}"}, nil
	}
	br := &BraceExp{Lbrace: lbrace, Rbrace: lbrace + len(inner) + 1}
	start := 0
	for _, end := range append(commas, len(inner)) {
		elem, err := p.word(inner[start:end], lbrace+1+start)
		if err != nil {
			return nil, err
		}
		br.Elems = append(br.Elems, elem)
		start = end + 1
	}
	return br, nil
}
