// Copyright (c) 2026, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package expand

import (
	"iter"
	"strconv"
	"strings"

	"mvdan.cc/braceexpand/syntax"
)

// Range returns the sequence of values of a range expression, such as
// "1", "2", and "3" for {1..3}.
//
// Integer ranges are zero-padded when either end has a leading zero, like
// {07..10}; all values then share the width of the longer end, sign included.
// The sign of the increment is ignored, as the direction always goes from
// From to To. An increment of zero is treated as one.
func Range(cfg *Config, r *syntax.Range) iter.Seq[string] {
	cfg = prepareConfig(cfg)
	if r.Chars {
		return charRange(cfg.Alphabet, r)
	}
	return intRange(r)
}

func incrMagnitude(incr string) uint64 {
	n, _ := strconv.ParseUint(strings.TrimPrefix(incr, "-"), 10, 64)
	if n == 0 {
		return 1
	}
	return n
}

func zeroPadded(s string) bool {
	digits := strings.TrimPrefix(s, "-")
	return len(digits) > 1 && digits[0] == '0'
}

func intRange(r *syntax.Range) iter.Seq[string] {
	from, _ := strconv.ParseInt(r.From, 10, 64)
	to, _ := strconv.ParseInt(r.To, 10, 64)
	incr := incrMagnitude(r.Incr)
	width := 0
	if zeroPadded(r.From) || zeroPadded(r.To) {
		width = max(len(r.From), len(r.To))
	}
	return func(yield func(string) bool) {
		// Work with unsigned offsets from the start, so that ranges
		// spanning the entire int64 space do not overflow.
		upward := from <= to
		var dist uint64
		if upward {
			dist = uint64(to) - uint64(from)
		} else {
			dist = uint64(from) - uint64(to)
		}
		last := dist / incr
		for i := uint64(0); ; i++ {
			n := uint64(from) + i*incr
			if !upward {
				n = uint64(from) - i*incr
			}
			if !yield(formatInt(int64(n), width)) || i == last {
				return
			}
		}
	}
}

func formatInt(n int64, width int) string {
	if width == 0 {
		return strconv.FormatInt(n, 10)
	}
	sign := ""
	mag := uint64(n)
	if n < 0 {
		sign = "-"
		mag = uint64(-n)
		width--
	}
	digits := strconv.FormatUint(mag, 10)
	if pad := width - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}
	return sign + digits
}

func charRange(alpha Alphabet, r *syntax.Range) iter.Seq[string] {
	letters := alpha.letters()
	from := strings.IndexByte(letters, r.From[0])
	to := strings.IndexByte(letters, r.To[0])
	incr := len(letters)
	if n := incrMagnitude(r.Incr); n < uint64(incr) {
		incr = int(n)
	}
	if from > to {
		incr = -incr
	}
	return func(yield func(string) bool) {
		for i := from; (incr > 0 && i <= to) || (incr < 0 && i >= to); i += incr {
			if !yield(letters[i : i+1]) {
				return
			}
		}
	}
}
