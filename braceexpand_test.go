// Copyright (c) 2026, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package braceexpand

import (
	"testing"

	"github.com/go-quicktest/qt"

	"mvdan.cc/braceexpand/syntax"
)

func TestExpandAll(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in      string
		escape  bool
		want    []string
		wantErr bool
	}{
		{in: "no braces here", want: []string{"no braces here"}},
		{in: "a{X,Y}b", want: []string{"aXb", "aYb"}},
		{in: "item{1..3}", want: []string{"item1", "item2", "item3"}},
		{in: "{a..g..2}", want: []string{"a", "c", "e", "g"}},
		{in: "{1}2,3}", wantErr: true},
		{in: `\{1,2\}`, escape: true, want: []string{"{1,2}"}},
		{in: `\{1,2}`, want: []string{`\1`, `\2`}},
	}
	for _, tc := range tests {
		got, err := ExpandAll(tc.in, tc.escape)
		if tc.wantErr {
			var uerr *syntax.UnbalancedError
			qt.Check(t, qt.ErrorAs(err, &uerr))
			qt.Check(t, qt.IsNil(got))
			continue
		}
		qt.Assert(t, qt.IsNil(err))
		qt.Check(t, qt.DeepEquals(got, tc.want), qt.Commentf("input: %q", tc.in))
	}
}

func TestExpandNoBraces(t *testing.T) {
	t.Parallel()
	for _, in := range []string{"", "x", "a,b", "a..b", `back\slash`, "ünïcode ✓"} {
		for _, escape := range []bool{false, true} {
			if escape && in == `back\slash` {
				continue
			}
			seq, err := Expand(in, escape)
			qt.Assert(t, qt.IsNil(err))
			n := 0
			for s := range seq {
				qt.Check(t, qt.Equals(s, in))
				n++
			}
			qt.Check(t, qt.Equals(n, 1))
		}
	}
}
