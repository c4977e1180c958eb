// Copyright (c) 2026, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package expand_test

import (
	"fmt"

	"mvdan.cc/braceexpand/expand"
	"mvdan.cc/braceexpand/syntax"
)

func ExamplePattern() {
	seq, err := expand.Pattern(nil, "img{07..10}.{png,jpg}")
	if err != nil {
		return
	}
	for s := range seq {
		fmt.Println(s)
	}
	// Output:
	// img07.png
	// img07.jpg
	// img08.png
	// img08.jpg
	// img09.png
	// img09.jpg
	// img10.png
	// img10.jpg
}

func ExampleConfig() {
	cfg := &expand.Config{
		Escape:   true,
		Alphabet: expand.AlphabetBash,
	}
	seq, err := expand.Pattern(cfg, `\{{Z..a}\}`)
	if err != nil {
		return
	}
	for s := range seq {
		fmt.Print(s, " ")
	}
	fmt.Println()
	// Output:
	// {Z} {[} {]} {^} {_} {`} {a}
}

func ExampleBraces() {
	word, err := syntax.Parse("/usr/{ucb/{ex,edit},lib}")
	if err != nil {
		return
	}
	for s := range expand.Braces(nil, word) {
		fmt.Println(s)
	}
	// Output:
	// /usr/ucb/ex
	// /usr/ucb/edit
	// /usr/lib
}
