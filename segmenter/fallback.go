package segmenter

import (
	"github.com/dlclark/regexp2"

	"github.com/Zubayear/kham/runetext"
)

// nonDictPatterns match the non-dictionary token families at the start of a
// suffix: Latin runs (with hyphen), ASCII and Thai digit groups with comma
// or dot separators, horizontal whitespace runs, and line terminators.
// The families are disjoint on their first character, so at most one
// pattern can match a given suffix.
var nonDictPatterns = []*regexp2.Regexp{
	regexp2.MustCompile(`^[-A-Za-z]+`, regexp2.None),
	regexp2.MustCompile(`^[0-9]+([,.][0-9]+)*`, regexp2.None),
	regexp2.MustCompile(`^[๐-๙]+([,.][๐-๙]+)*`, regexp2.None),
	regexp2.MustCompile("^[ \t]+", regexp2.None),
	regexp2.MustCompile("^\r?\n", regexp2.None),
}

// thaiTwoConsonants matches dictionary words of at most two characters made
// up entirely of Thai consonants. Such words are rejected as resume points
// by the minimum-skip search; accepting them splinters ambiguous input into
// isolated consonant pairs.
var thaiTwoConsonants = regexp2.MustCompile(`^[ก-ฮ]{0,2}$`, regexp2.None)

// Fallback matches a non-dictionary token at the start of the suffix and
// returns its length in characters, or -1 when no pattern matches.
//
// Unrecognized Thai content deliberately returns -1: the search consumes it
// through its minimum-skip scan instead.
func Fallback(suffix runetext.Text) int {
	for _, pattern := range nonDictPatterns {
		m, err := pattern.FindRunesMatch([]rune(suffix))
		if err == nil && m != nil {
			return m.Length
		}
	}
	return -1
}

// isThaiTwoConsonants reports whether the word trips the consonant-pair
// filter of the minimum-skip search.
func isThaiTwoConsonants(word runetext.Text) bool {
	m, err := thaiTwoConsonants.FindRunesMatch([]rune(word))
	return err == nil && m != nil
}
