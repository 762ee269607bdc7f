package tcc

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// The cluster grammar is written in a compact symbol form and expanded at
// init time:
//
//	c  any Thai consonant       [ก-ฮ]
//	t  optional tone mark       [่-๋]?
//	k  optional silent final    ([ก-ฮ][ก-ฮ]?[ิุ-ู]?์)?
//
// k must be expanded before c, because its replacement itself contains c.
func expandSymbols(pattern string) string {
	pattern = strings.ReplaceAll(pattern, "k", "(cc?[ิุ-ู]?์)?")
	pattern = strings.ReplaceAll(pattern, "c", "[ก-ฮ]")
	pattern = strings.ReplaceAll(pattern, "t", "[่-๋]?")
	return pattern
}

// clusterShapes are the cluster rules in symbol form, anchored at the start
// of the remaining text. The two final shapes are the lookahead rules: their
// trailing consonant or leading vowel belongs to the next cluster and is
// released by the scanner after matching (see lookaheadShapes).
var clusterShapes = []string{
	"^เc็ck",
	"^เcctาะk",
	"^เccีtยะk",
	"^เcc็ck",
	"^เcิc์ck",
	"^เcิtck",
	"^เcีtยะ?k",
	"^เcืtอะ?k",
	"^เctา?ะ?k",
	"^cัtวะk",
	"^c[ัื]tc[ุิะ]?k",
	"^c[ิุู]์k",
	"^c[ะ-ู]tk",
	"^cรรc์",
	"^c็",
	"^ct[ะาำ]?k",
	"^ck",
	"^แc็c",
	"^แcc์",
	"^แctะ",
	"^แcc็c",
	"^แccc์",
	"^โctะ",
	"^[เ-ไ]ct",
	"^ก็",
	"^อึ",
	"^หึ",
	"^(เccีtย)[เ-ไก-ฮ]",
	"^(เc[ิีุู]tย)[เ-ไก-ฮ]",
}

// lookaheadShapes re-test a matched cluster; on a hit the scanner backs the
// cursor off by one character so the trailing consonant or leading vowel
// starts the next cluster.
var lookaheadShapes = []string{
	"^(เccีtย)[เ-ไก-ฮ]",
	"^(เc[ิีุู]tย)[เ-ไก-ฮ]",
}

func compileShapes(shapes []string) []*regexp2.Regexp {
	compiled := make([]*regexp2.Regexp, len(shapes))
	for i, shape := range shapes {
		compiled[i] = regexp2.MustCompile(expandSymbols(shape), regexp2.None)
	}
	return compiled
}

var (
	clusterRules   = compileShapes(clusterShapes)
	lookaheadRules = compileShapes(lookaheadShapes)
)
