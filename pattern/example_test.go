// Copyright (c) 2019, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package pattern_test

import (
	"fmt"
	"regexp"

	"mvdan.cc/braceexpand/pattern"
)

func ExampleRegexp() {
	pat := "log-{2019..2021}.{txt,gz}"
	fmt.Println(pat)

	expr, err := pattern.Regexp(pat, pattern.EntireString)
	if err != nil {
		return
	}
	fmt.Println(expr)

	rx := regexp.MustCompile(expr)
	fmt.Println(rx.MatchString("log-2020.gz"))
	fmt.Println(rx.MatchString("log-2022.gz"))
	// Output:
	// log-{2019..2021}.{txt,gz}
	// ^log-(?:2019|2020|2021)\.(?:txt|gz)$
	// true
	// false
}

func ExampleQuoteMeta() {
	pat := "{a,b}"
	fmt.Println(pat)

	quoted := pattern.QuoteMeta(pat)
	fmt.Println(quoted)

	expr, err := pattern.Regexp(quoted, pattern.Escape)
	if err != nil {
		return
	}
	fmt.Println(expr)
	// Output:
	// {a,b}
	// \{a\,b\}
	// \{a,b\}
}
