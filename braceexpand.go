// Copyright (c) 2026, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

// Package braceexpand implements Bash brace expansion on strings, such as
// turning "file{1..3}.{txt,md}" into "file1.txt", "file1.md", "file2.txt",
// and so on.
//
// This package provides high-level functions for simple use cases. For more
// control, such as selecting the alphabet used by character ranges or
// expanding an already parsed pattern, use the expand and syntax packages.
package braceexpand

import (
	"iter"
	"slices"

	"mvdan.cc/braceexpand/expand"
)

// Expand returns the sequence of strings resulting from the brace expansion of
// pattern. This follows brace expansion as described in bash(1), with the
// following differences:
//
//   - Unbalanced braces are an error, returned as a
//     *syntax.UnbalancedError, instead of being partially expanded.
//
//   - A brace group without a top-level comma is kept as literal text, even
//     if it contains valid groups; "{a{b,c}}" results in itself.
//
//   - By default, character ranges crossing from upper to lower case, like
//     {Z..a}, skip the punctuation between the two. Use expand.AlphabetBash
//     to include it.
//
// If escape is true, a backslash makes the following character literal, and is
// removed from the results. Otherwise, backslashes are regular characters.
//
// Results are produced lazily, so the caller may stop early at no cost.
func Expand(pattern string, escape bool) (iter.Seq[string], error) {
	return expand.Pattern(&expand.Config{Escape: escape}, pattern)
}

// ExpandAll is like Expand, but collects all the results in a slice.
func ExpandAll(pattern string, escape bool) ([]string, error) {
	seq, err := Expand(pattern, escape)
	if err != nil {
		return nil, err
	}
	return slices.Collect(seq), nil
}
