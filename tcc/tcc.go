/*
Package tcc partitions Thai text into Thai Character Clusters (TCCs) and
exposes the cluster endings as a set of character indices.

A TCC is a minimal grapheme-like subword unit defined by an orthographic
grammar: a leading vowel, a consonant, its vowel and tone marks, and an
optional silent final. No word boundary can legally fall inside a cluster,
so the segmentation search only considers cut positions this package
reports. Characters the grammar does not recognize (Latin, digits,
punctuation, stray combining marks) each form a cluster of their own.

Key Features:
  - Pos: Boundary set of a text as character indices, in O(n) scans.
  - Clusters: The clusters themselves, in input order.

Algorithm:
  - Greedy left-to-right scan; at each cursor every rule of the cluster
    grammar is tried and the longest match wins.
  - If the matched text also satisfies a lookahead rule, the cluster ends
    one character early: the trailing consonant or leading vowel is left
    for the next cluster.
  - When no rule matches, exactly one character is consumed.

The scan is a pure function of its input: it never fails, and malformed
input degrades to one-character clusters.
*/
package tcc

import (
	"github.com/Zubayear/kham/runetext"
	"github.com/Zubayear/kham/set"
)

// clusterLen returns the length in characters of the longest cluster rule
// matching at the start of text, or 0 when no rule matches.
func clusterLen(text runetext.Text) int {
	best := 0
	for _, rule := range clusterRules {
		m, err := rule.FindRunesMatch([]rune(text))
		if err != nil || m == nil {
			continue
		}
		if m.Length > best {
			best = m.Length
		}
	}
	return best
}

// isLookahead reports whether the matched cluster begins with one of the
// lookahead shapes, meaning its last character belongs to the next cluster.
func isLookahead(cluster runetext.Text) bool {
	for _, rule := range lookaheadRules {
		m, err := rule.FindRunesMatch([]rune(cluster))
		if err == nil && m != nil {
			return true
		}
	}
	return false
}

// step returns how many characters the scanner consumes at the start of the
// given suffix: the longest rule match, shortened by one for lookahead
// matches, or a single character when nothing matches.
func step(suffix runetext.Text) int {
	n := clusterLen(suffix)
	if n == 0 {
		return 1
	}
	if isLookahead(suffix.Slice(0, n)) {
		return n - 1
	}
	return n
}

// Pos returns the set of character indices at which a cluster ends.
//
// For non-empty text the result always contains text.Len(); for empty text
// the result is empty. Every index lies in 1..text.Len().
//
// Time Complexity: O(n * r), where n = text length, r = number of rules
func Pos(text runetext.Text) *set.UnorderedSet[int] {
	positions := set.NewUnorderedSet[int]()
	p := 0
	for p < text.Len() {
		p += step(text.Slice(p, text.Len()))
		positions.Insert(p)
	}
	return positions
}

// Clusters returns the clusters of the text in input order.
//
// The returned values are sub-views of the input sharing its backing array.
// Concatenating them in order reproduces the input.
func Clusters(text runetext.Text) []runetext.Text {
	var result []runetext.Text
	p := 0
	for p < text.Len() {
		n := step(text.Slice(p, text.Len()))
		result = append(result, text.Slice(p, p+n))
		p += n
	}
	return result
}
