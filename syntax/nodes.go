// Copyright (c) 2026, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package syntax

// Node represents a syntax tree node. Positions are byte offsets into the
// pattern that was parsed.
type Node interface {
	// Pos returns the offset of the first byte of the node.
	Pos() int
	// End returns the offset of the byte immediately after the node.
	End() int
}

// Word is a sequence of parts which are concatenated left to right. A pattern
// parses into a Word, as does each element of a brace expansion.
//
// Expanding a word yields the Cartesian product of the candidates of each of
// its parts, with the leftmost part varying slowest.
type Word struct {
	Parts []WordPart
}

func (w *Word) Pos() int {
	if len(w.Parts) == 0 {
		return 0
	}
	return w.Parts[0].Pos()
}

func (w *Word) End() int {
	if len(w.Parts) == 0 {
		return 0
	}
	return w.Parts[len(w.Parts)-1].End()
}

// Lit returns the word as a literal value, if the word consists of *Lit nodes
// only. An empty string is returned otherwise. Words with multiple literals,
// which can appear in some edge cases, are handled properly.
//
// For example, the word "foo" will return "foo", but the word "foo{1,2}"
// will return "".
func (w *Word) Lit() string {
	// In the usual case, we'll have either a single part that's a literal,
	// or one of the parts being a non-literal. Using strings.Join instead
	// of a strings.Builder avoids extra work in these cases, since a single
	// part is a shortcut, and many parts don't incur string copies.
	lits := make([]string, 0, 1)
	for _, part := range w.Parts {
		lit, ok := part.(*Lit)
		if !ok {
			return ""
		}
		lits = append(lits, lit.Value)
	}
	switch len(lits) {
	case 0:
		return ""
	case 1:
		return lits[0]
	}
	n := 0
	for _, s := range lits {
		n += len(s)
	}
	b := make([]byte, 0, n)
	for _, s := range lits {
		b = append(b, s...)
	}
	return string(b)
}

// WordPart represents all nodes that can form a word. It is one of *Lit,
// *BraceExp, or *Range.
type WordPart interface {
	Node
	wordPartNode()
}

func (*Lit) wordPartNode()      {}
func (*BraceExp) wordPartNode() {}
func (*Range) wordPartNode()    {}

// Lit represents literal text, which always expands to itself. Brace groups
// which are neither ranges nor alternations, such as "{1}", also end up as
// literals, braces included.
//
// When the pattern was parsed with escaping enabled, Value still contains the
// backslashes; they are removed when expanding.
type Lit struct {
	ValuePos int
	Value    string
}

func (l *Lit) Pos() int { return l.ValuePos }
func (l *Lit) End() int { return l.ValuePos + len(l.Value) }

// BraceExp represents a brace alternation, such as "{foo,bar}". Its
// candidates are the expansions of each element, in order.
//
// Elements may contain further brace expansions; "{a,b{c,d}}" has the
// elements "a" and "b{c,d}".
type BraceExp struct {
	Lbrace, Rbrace int
	Elems          []*Word
}

func (b *BraceExp) Pos() int { return b.Lbrace }
func (b *BraceExp) End() int { return b.Rbrace + 1 }

// Range represents a sequence expression, such as "{1..10}", "{a..e}", or
// "{0..100..5}".
//
// For integer ranges, From and To are decimal integers with an optional
// leading "-" which fit in an int64. For character ranges, they are single
// ASCII letters. Incr is empty when no increment was given; otherwise it is an
// integer whose sign does not matter.
type Range struct {
	Lbrace, Rbrace int

	Chars bool

	From, To string
	Incr     string
}

func (r *Range) Pos() int { return r.Lbrace }
func (r *Range) End() int { return r.Rbrace + 1 }
