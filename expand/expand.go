// Copyright (c) 2017, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

// Package expand performs brace expansion on patterns parsed by
// mvdan.cc/braceexpand/syntax, producing results lazily.
package expand

import (
	"fmt"
	"iter"

	"mvdan.cc/braceexpand/syntax"
)

// A Config specifies details about how brace expansion should be performed. A
// nil *Config is equivalent to an empty one.
//
// A Config is only read, so the same one can be used by any number of
// concurrent expansions.
type Config struct {
	// Escape enables backslash escaping: a backslash makes the byte after it
	// lose any special meaning, and is itself removed from the results.
	//
	// When expanding an already parsed word, the parser must have been
	// configured with the same setting via syntax.Escape.
	Escape bool

	// Alphabet is the ordering used by character ranges like {a..z}.
	Alphabet Alphabet
}

func prepareConfig(cfg *Config) *Config {
	if cfg == nil {
		cfg = &Config{}
	}
	return cfg
}

// Alphabet selects the ordering of characters used by character ranges.
//
// It implements flag.Value, accepting "default" and "bash".
type Alphabet uint8

const (
	// AlphabetDefault contains the ASCII letters from A to Z followed by those
	// from a to z, so that {Z..a} expands to "Z" and "a".
	AlphabetDefault Alphabet = iota

	// AlphabetBash is like AlphabetDefault, but it also includes the
	// characters between Z and a in ASCII except the backslash, like Bash. The
	// extra characters cannot be used as the start or end of a range.
	AlphabetBash
)

const (
	lettersDefault = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	lettersBash    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ[]^_`abcdefghijklmnopqrstuvwxyz"
)

func (a Alphabet) letters() string {
	if a == AlphabetBash {
		return lettersBash
	}
	return lettersDefault
}

func (a Alphabet) String() string {
	switch a {
	case AlphabetDefault:
		return "default"
	case AlphabetBash:
		return "bash"
	}
	return fmt.Sprintf("Alphabet(%d)", uint8(a))
}

func (a *Alphabet) Set(s string) error {
	switch s {
	case "default":
		*a = AlphabetDefault
	case "bash":
		*a = AlphabetBash
	default:
		return fmt.Errorf("unknown alphabet: %q", s)
	}
	return nil
}

// Pattern parses a pattern and returns the sequence of its brace expansion
// results. The only error is a *syntax.UnbalancedError, returned before any
// result is produced.
//
// For example, "a{b,c}d{1..2}" results in "abd1", "abd2", "acd1", and "acd2".
// A pattern without brace expansions results in itself.
func Pattern(cfg *Config, pattern string) (iter.Seq[string], error) {
	cfg = prepareConfig(cfg)
	word, err := syntax.NewParser(syntax.Escape(cfg.Escape)).Parse(pattern)
	if err != nil {
		return nil, err
	}
	return Braces(cfg, word), nil
}
