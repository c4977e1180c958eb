// Copyright (c) 2026, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package expand

import (
	"strings"
	"testing"
)

func FuzzPattern(f *testing.F) {
	// Keep in sync with braceTests.
	f.Add("a{b,c{d,e,}}", false, false)
	f.Add("{07..10}", false, false)
	f.Add("{10..4..-2}", false, false)
	f.Add("{Z..a}", false, true)
	f.Add(`\\{1,2}`, true, false)
	f.Add("{1}", false, false)
	f.Fuzz(func(t *testing.T, src string, escape, bash bool) {
		cfg := &Config{Escape: escape}
		if bash {
			cfg.Alphabet = AlphabetBash
		}
		seq, err := Pattern(cfg, src)
		if err != nil {
			return
		}
		var results []string
		for s := range seq {
			results = append(results, s)
			if len(results) >= 1000 {
				break
			}
		}
		if len(results) == 0 {
			t.Fatalf("%q expanded to nothing", src)
		}
		if !escape && !strings.ContainsAny(src, "{}") {
			if len(results) != 1 || results[0] != src {
				t.Fatalf("brace-free %q expanded to %q", src, results)
			}
		}
		if escape && !strings.ContainsAny(src, `{}\`) {
			if len(results) != 1 || results[0] != src {
				t.Fatalf("brace-free %q expanded to %q", src, results)
			}
		}
	})
}
