/*
Package tokenizer is the public facade of the word segmentation engine.

A Tokenizer owns a dictionary trie and exposes segmentation over it. The
dictionary comes from a word-list slice or from a file with one word per
line (UTF-8, LF or CRLF; lines empty after trimming are skipped; duplicate
words are stored once). Dictionary words are normalized to NFC at load time
so that byte-different encodings of the same word collapse into one entry;
the text handed to Segment is never normalized, because the emitted tokens
must concatenate back to the input byte for byte.

Concurrency:
  - Segment may run concurrently from any number of goroutines.
  - AddWords and RemoveWords are serialized against outstanding Segment
    calls by a read-write mutex.

Example usage:

	tk := tokenizer.FromWordList([]string{"กาแฟ", "ร้อน"})
	tokens, err := tk.Segment("กาแฟร้อน", false, false)
	// tokens: ["กาแฟ", "ร้อน"]
*/
package tokenizer

import (
	"bufio"
	"fmt"
	"os"
	"sync"

	"golang.org/x/text/unicode/norm"

	"github.com/Zubayear/kham/segmenter"
	"github.com/Zubayear/kham/trie"
)

// Tokenizer owns the dictionary trie and runs the segmentation engine
// against it.
type Tokenizer struct {
	dict *trie.Trie
	// Serializes dictionary mutation against segmentation. The trie has its
	// own lock, but a multi-word AddWords must not interleave with a running
	// Segment call word by word.
	mutex sync.RWMutex
}

// FromWordList constructs a Tokenizer from a slice of dictionary words.
func FromWordList(words []string) *Tokenizer {
	dict := trie.New()
	for _, word := range words {
		dict.Insert(norm.NFC.String(word))
	}
	return &Tokenizer{dict: dict}
}

// FromFile constructs a Tokenizer from a dictionary file with one word per
// line. Returns an error when the file cannot be opened or read.
func FromFile(path string) (*Tokenizer, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tokenizer: open dictionary %q: %w", path, err)
	}
	defer file.Close()

	dict := trie.New()
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		dict.Insert(norm.NFC.String(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("tokenizer: read dictionary %q: %w", path, err)
	}
	return &Tokenizer{dict: dict}, nil
}

// AddWords inserts the given words into the dictionary.
func (tk *Tokenizer) AddWords(words []string) {
	tk.mutex.Lock()
	defer tk.mutex.Unlock()
	for _, word := range words {
		tk.dict.Insert(norm.NFC.String(word))
	}
}

// RemoveWords deletes the given words from the dictionary. Words not in the
// dictionary are ignored.
func (tk *Tokenizer) RemoveWords(words []string) {
	tk.mutex.Lock()
	defer tk.mutex.Unlock()
	for _, word := range words {
		tk.dict.Remove(norm.NFC.String(word))
	}
}

// WordCount returns the number of words currently in the dictionary.
func (tk *Tokenizer) WordCount() int {
	tk.mutex.RLock()
	defer tk.mutex.RUnlock()
	return tk.dict.Size()
}

// Segment tokenizes text and returns the tokens in input order.
// Concatenating the tokens reproduces the input exactly.
//
// safe bounds worst-case work on long input by segmenting in windows;
// parallel distributes per-call work over worker goroutines. Neither flag
// changes the result for input shorter than the safe-mode window.
func (tk *Tokenizer) Segment(text string, safe, parallel bool) ([]string, error) {
	tk.mutex.RLock()
	defer tk.mutex.RUnlock()
	return segmenter.Segment(text, tk.dict, safe, parallel)
}
