// Copyright (c) 2026, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package syntax

import (
	"errors"
	"strings"
	"testing"
)

func FuzzParse(f *testing.F) {
	// Keep in sync with parseTests and unbalancedTests.
	f.Add("foo", false)
	f.Add("a{b,c{d,e,}}", false)
	f.Add("{{a,b},{c,d}}", false)
	f.Add("{1..10..3}", false)
	f.Add("{a..Z}", false)
	f.Add("{1,2}}", false)
	f.Add(`\{1,2\}`, true)
	f.Add(`\\{1,2}`, true)
	f.Fuzz(func(t *testing.T, src string, escape bool) {
		word, err := NewParser(Escape(escape)).Parse(src)
		if err != nil {
			var uerr *UnbalancedError
			if !errors.As(err, &uerr) {
				t.Fatalf("unexpected error type %T: %v", err, err)
			}
			if uerr.Offset < 0 || uerr.Offset >= len(src) || src[uerr.Offset] != uerr.Brace {
				t.Fatalf("bad error offset for %q: %v", src, err)
			}
			return
		}
		if !strings.ContainsAny(src, "{}") && word.Lit() != src {
			t.Fatalf("brace-free %q parsed as %q", src, word.Lit())
		}
		checkPositions(t, src, word)
	})
}

// checkPositions verifies that every node covers the source text it came
// from, and that parts within a word are contiguous.
func checkPositions(t *testing.T, src string, word *Word) {
	t.Helper()
	if len(word.Parts) == 0 {
		t.Fatalf("empty word in %q", src)
	}
	end := word.Pos()
	for _, part := range word.Parts {
		if part.Pos() != end {
			t.Fatalf("gap before %T at %d in %q", part, part.Pos(), src)
		}
		end = part.End()
		if end > len(src) {
			t.Fatalf("%T ends at %d past %q", part, end, src)
		}
		switch part := part.(type) {
		case *Lit:
			if src[part.Pos():part.End()] != part.Value {
				t.Fatalf("literal %q does not match %q", part.Value, src[part.Pos():part.End()])
			}
		case *BraceExp, *Range:
			if src[part.Pos()] != '{' || src[part.End()-1] != '}' {
				t.Fatalf("%T is not enclosed in braces in %q", part, src)
			}
		}
		if br, ok := part.(*BraceExp); ok {
			for _, elem := range br.Elems {
				checkPositions(t, src, elem)
			}
		}
	}
}
