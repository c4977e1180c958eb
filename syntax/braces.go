// Copyright (c) 2018, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package syntax

import (
	"strconv"
	"strings"
)

// parseRange returns a *Range without positions if inner is a valid sequence
// expression, and nil otherwise. Integer ranges are tried first, then
// character ranges.
func parseRange(inner string) *Range {
	elems := strings.Split(inner, "..")
	if len(elems) != 2 && len(elems) != 3 {
		return nil
	}
	r := &Range{From: elems[0], To: elems[1]}
	if len(elems) == 3 {
		// increment must be a number, even for characters
		if !isInt(elems[2]) {
			return nil
		}
		r.Incr = elems[2]
	}
	switch {
	case isInt(r.From) && isInt(r.To):
	case isLetter(r.From) && isLetter(r.To):
		r.Chars = true
	default:
		// mixed or malformed, such as {1..a}
		return nil
	}
	return r
}

// isInt reports whether s is an optional "-" followed by ASCII digits, and
// whether the number fits in an int64.
func isInt(s string) bool {
	digits := strings.TrimPrefix(s, "-")
	if digits == "" {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if c := digits[i]; c < '0' || c > '9' {
			return false
		}
	}
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}

func isLetter(s string) bool {
	if len(s) != 1 {
		return false
	}
	c := s[0]
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
