package segmenter

import (
	"reflect"
	"strings"
	"testing"

	"github.com/Zubayear/kham/runetext"
	"github.com/Zubayear/kham/trie"
)

func segmentOrFail(t *testing.T, text string, dict *trie.Trie, safe, parallel bool) []string {
	t.Helper()
	tokens, err := Segment(text, dict, safe, parallel)
	if err != nil {
		t.Fatalf("Segment(%q) returned error %v", text, err)
	}
	return tokens
}

func TestEmptyInput(t *testing.T) {
	dict := trie.NewFromWords([]string{"กา"})
	tokens := segmentOrFail(t, "", dict, false, false)
	if len(tokens) != 0 {
		t.Errorf("Segment of empty input = %v; want no tokens", tokens)
	}
}

func TestSingleDictionaryWord(t *testing.T) {
	dict := trie.NewFromWords([]string{"กา"})
	tokens := segmentOrFail(t, "กา", dict, false, false)
	expected := []string{"กา"}
	if !reflect.DeepEqual(tokens, expected) {
		t.Errorf("Segment = %v; want %v", tokens, expected)
	}
}

func TestTwoWordsWithSpace(t *testing.T) {
	dict := trie.NewFromWords([]string{"กาแฟ", "ร้อน"})
	tokens := segmentOrFail(t, "กาแฟ ร้อน", dict, false, false)
	expected := []string{"กาแฟ", " ", "ร้อน"}
	if !reflect.DeepEqual(tokens, expected) {
		t.Errorf("Segment = %v; want %v", tokens, expected)
	}
}

func TestLatinFallback(t *testing.T) {
	dict := trie.NewFromWords([]string{"กา"})
	tokens := segmentOrFail(t, "กาhello", dict, false, false)
	expected := []string{"กา", "hello"}
	if !reflect.DeepEqual(tokens, expected) {
		t.Errorf("Segment = %v; want %v", tokens, expected)
	}
}

func TestDigitGroupFallback(t *testing.T) {
	dict := trie.New()
	tokens := segmentOrFail(t, "12,345.67", dict, false, false)
	expected := []string{"12,345.67"}
	if !reflect.DeepEqual(tokens, expected) {
		t.Errorf("Segment = %v; want %v", tokens, expected)
	}
}

func TestMixedScript(t *testing.T) {
	dict := trie.NewFromWords([]string{"กาแฟ"})
	input := "กาแฟ2ถ้วย"
	tokens := segmentOrFail(t, input, dict, false, false)
	if len(tokens) < 2 || tokens[0] != "กาแฟ" || tokens[1] != "2" {
		t.Errorf("Segment = %v; want it to begin [กาแฟ 2 ...]", tokens)
	}
	if got := strings.Join(tokens, ""); got != input {
		t.Errorf("tokens reconstruct to %q; want %q", got, input)
	}
}

func TestAmbiguousLongestMatch(t *testing.T) {
	// both กา and กาแฟ start the text; the cluster-constrained search keeps
	// the reading that spans the whole input
	dict := trie.NewFromWords([]string{"กา", "กาแฟ", "แฟ", "ร้อน"})
	tokens := segmentOrFail(t, "กาแฟร้อน", dict, false, false)
	if got := strings.Join(tokens, ""); got != "กาแฟร้อน" {
		t.Errorf("tokens reconstruct to %q; want the input back", got)
	}
	for _, token := range tokens {
		if !dict.Contains(token) {
			t.Errorf("token %q is not a dictionary word", token)
		}
	}
}

func TestUnknownThaiMinimumSkip(t *testing.T) {
	// ฝฝ is not in the dictionary; the search skips to the position where
	// สวย can resume
	dict := trie.NewFromWords([]string{"สวย"})
	tokens := segmentOrFail(t, "ฝฝสวย", dict, false, false)
	expected := []string{"ฝฝ", "สวย"}
	if !reflect.DeepEqual(tokens, expected) {
		t.Errorf("Segment = %v; want %v", tokens, expected)
	}
}

func TestConsonantPairRejectedAsResumePoint(t *testing.T) {
	// กข is a two-consonant dictionary word; the minimum-skip search must
	// not resume on it, so the whole run stays one token
	dict := trie.NewFromWords([]string{"กข"})
	tokens := segmentOrFail(t, "ฝกข", dict, false, false)
	expected := []string{"ฝกข"}
	if !reflect.DeepEqual(tokens, expected) {
		t.Errorf("Segment = %v; want %v", tokens, expected)
	}
}

func TestUnknownThaiRunsToEnd(t *testing.T) {
	dict := trie.NewFromWords([]string{"กาแฟ"})
	tokens := segmentOrFail(t, "ฝฝฝ", dict, false, false)
	expected := []string{"ฝฝฝ"}
	if !reflect.DeepEqual(tokens, expected) {
		t.Errorf("Segment = %v; want %v", tokens, expected)
	}
}

func TestNoTokenIsEmpty(t *testing.T) {
	dict := trie.NewFromWords([]string{"กา", "กาแฟ", "ร้อน"})
	inputs := []string{"กาแฟ ร้อน", "กาhello", "12,345.67", "ฝฝสวย", "กาแฟ\nร้อน"}
	for _, input := range inputs {
		for _, token := range segmentOrFail(t, input, dict, false, false) {
			if token == "" {
				t.Errorf("Segment(%q) emitted an empty token", input)
			}
		}
	}
}

func TestReconstruction(t *testing.T) {
	dict := trie.NewFromWords([]string{"กา", "กาแฟ", "ร้อน", "เย็น", "น้ำ", "แก้ว"})
	inputs := []string{
		"กาแฟร้อน",
		"กาแฟ ร้อน 2 แก้ว",
		"น้ำเย็น-iced กาแฟ 12,345.67 บาท",
		"abc กขฝ ๑๒๓",
		"\r\nกาแฟ\r\n",
	}
	for _, input := range inputs {
		tokens := segmentOrFail(t, input, dict, false, false)
		if got := strings.Join(tokens, ""); got != input {
			t.Errorf("Segment(%q) reconstructs to %q", input, got)
		}
	}
}

func TestGraphSizeCapStillReconstructs(t *testing.T) {
	// heavily overlapping dictionary entries trip the MaxGraphSize cap;
	// the output must still reconstruct the input
	words := make([]string, 0, 10)
	for i := 1; i <= 10; i++ {
		words = append(words, strings.Repeat("กา", i))
	}
	dict := trie.NewFromWords(words)
	input := strings.Repeat("กา", 40)
	tokens := segmentOrFail(t, input, dict, false, false)
	if got := strings.Join(tokens, ""); got != input {
		t.Errorf("capped search reconstructs to %q; want the input back", got)
	}
}

func TestModeEquivalenceOnShortInput(t *testing.T) {
	dict := trie.NewFromWords([]string{"กา", "กาแฟ", "ร้อน", "น้ำ"})
	inputs := []string{"", "กาแฟร้อน", "กาแฟ ร้อน", "น้ำ 12,345 hello"}
	for _, input := range inputs {
		base := segmentOrFail(t, input, dict, false, false)
		for _, mode := range []struct{ safe, parallel bool }{
			{true, false},
			{false, true},
			{true, true},
		} {
			got := segmentOrFail(t, input, dict, mode.safe, mode.parallel)
			if !reflect.DeepEqual(got, base) {
				t.Errorf("Segment(%q, safe=%v, parallel=%v) = %v; want %v",
					input, mode.safe, mode.parallel, got, base)
			}
		}
	}
}

func TestSafeModeLongInput(t *testing.T) {
	dict := trie.NewFromWords([]string{"กาแฟ", "ร้อน"})
	input := strings.Repeat("กาแฟร้อน", 30)

	expected := make([]string, 0, 60)
	for i := 0; i < 30; i++ {
		expected = append(expected, "กาแฟ", "ร้อน")
	}

	for _, parallel := range []bool{false, true} {
		tokens := segmentOrFail(t, input, dict, true, parallel)
		if !reflect.DeepEqual(tokens, expected) {
			t.Errorf("safe mode (parallel=%v) = %d tokens; want %d alternating dictionary words",
				parallel, len(tokens), len(expected))
		}
		if got := strings.Join(tokens, ""); got != input {
			t.Errorf("safe mode (parallel=%v) reconstructs to %q", parallel, got)
		}
	}
}

func TestSafeModeCutsAfterWhitespace(t *testing.T) {
	dict := trie.NewFromWords([]string{"กาแฟ"})
	// a space inside the scan window forces the window cut right after it
	input := strings.Repeat("กาแฟ", 30) + " " + strings.Repeat("กาแฟ", 10)
	tokens := segmentOrFail(t, input, dict, true, false)
	if got := strings.Join(tokens, ""); got != input {
		t.Errorf("safe mode reconstructs to %q; want the input back", got)
	}
}

func TestOneCutTokensAreViews(t *testing.T) {
	dict := trie.NewFromWords([]string{"กาแฟ"})
	text := runetext.New("กาแฟ")
	tokens, err := OneCut(text, dict)
	if err != nil {
		t.Fatalf("OneCut returned error %v", err)
	}
	if len(tokens) != 1 {
		t.Fatalf("OneCut returned %d tokens; want 1", len(tokens))
	}
	if &tokens[0][0] != &text[0] {
		t.Errorf("emitted token should be a view into the input")
	}
}
