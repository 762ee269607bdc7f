/*
Package segmenter implements dictionary-based maximal matching word
segmentation constrained by Thai Character Cluster boundaries.

The search explores a directed acyclic graph of candidate cuts over the
input. A min-heap frontier holds the character positions still to be
explored; at each position every dictionary word prefixing the remaining
suffix proposes an edge, filtered to edges that land on a legal cluster
ending. Whenever the frontier collapses to a single position, the tokens up
to that position are fixed and emitted via a breadth-first walk of the
graph. Positions no dictionary word can leave are handled by a fallback
classifier for non-Thai runs and a minimum-skip scan for unknown Thai
content.

Two heuristics bound the work on adversarial input:

  - MaxGraphSize caps the candidate edges collected since the last
    unique-frontier flush; once tripped, no further words are scanned at the current position.
  - Safe mode windows long input at around 140 characters and segments each
    window independently, cutting after whitespace where possible.

Parallel mode distributes token materialization (or, in safe mode, whole
windows) over a bounded worker fan-out that preserves input order.

The per-call state never escapes a call, so any number of segmentations may
run concurrently over one shared dictionary.
*/
package segmenter

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"unicode"

	"github.com/Zubayear/kham/priorityqueue"
	"github.com/Zubayear/kham/queue"
	"github.com/Zubayear/kham/runetext"
	"github.com/Zubayear/kham/set"
	"github.com/Zubayear/kham/tcc"
	"github.com/Zubayear/kham/trie"
)

// MaxGraphSize caps the number of candidate edges collected since the last
// unique-frontier flush. It is a search bound, not a correctness constraint; once
// exceeded the engine stops scanning words at the current position and
// relies on the next unique-frontier flush.
const MaxGraphSize = 50

// Safe mode examines a scan window around character 120 of the remaining
// input and cuts inside it, bounding the worst case on long input with no
// dictionary coverage.
const (
	scanPoint = 120
	scanLeft  = 20
	scanRight = 20
	scanBegin = scanPoint - scanLeft
	scanEnd   = scanPoint + scanRight
)

// ErrNoPath reports that the breadth-first walk could not connect the last
// emitted position to the unique frontier position. The search never
// constructs such a graph; seeing this error means a bug in the engine.
var ErrNoPath = errors.New("no path between emitted position and frontier")

// pathState is one partial path through the candidate graph, queued during
// the breadth-first walk.
type pathState struct {
	vertex int
	path   []int
}

// bfsPath finds any path from start to goal through the candidate graph and
// returns its vertices, start first, goal last.
//
// Every edge points forward, so the walk terminates without a visited set.
func bfsPath(graph map[int][]int, start, goal int) ([]int, error) {
	pending := queue.NewQueue[pathState]()
	pending.Enqueue(pathState{vertex: start, path: []int{start}})
	for !pending.IsEmpty() {
		current, _ := pending.Dequeue()
		for _, position := range graph[current.vertex] {
			appended := make([]int, len(current.path), len(current.path)+1)
			copy(appended, current.path)
			appended = append(appended, position)
			if position == goal {
				return appended, nil
			}
			pending.Enqueue(pathState{vertex: position, path: appended})
		}
	}
	return nil, fmt.Errorf("bfs from %d to %d: %w", start, goal, ErrNoPath)
}

// OneCut segments the whole text in a single search and returns the tokens
// as sub-views of the input.
//
// Algorithm Steps:
//   - Compute the cluster-boundary set of the text.
//   - Seed the frontier min-heap with position 0.
//   - Pop the smallest unexplored position; collect an edge for every
//     dictionary word prefixing the remaining suffix whose end is a legal
//     boundary, capped by MaxGraphSize.
//   - If exactly one frontier position remains, emit the tokens of a
//     breadth-first path from the last emitted position to it.
//   - If no frontier position remains, consume a non-dictionary token: the
//     fallback classifier length if it matches, otherwise the minimum skip
//     to a boundary from which a dictionary word (not an isolated consonant
//     pair) or a fallback token can continue, or the end of the text.
//
// Time Complexity: bounded by O(n * d) trie walks plus the MaxGraphSize cap,
// where n = text length, d = longest dictionary word.
func OneCut(text runetext.Text, dict *trie.Trie) ([]runetext.Text, error) {
	textLength := text.Len()
	valid := tcc.Pos(text)
	graph := make(map[int][]int, textLength/10+1)
	result := make([]runetext.Text, 0, textLength/10+1)

	frontier := priorityqueue.NewBinaryHeap[int]()
	seen := set.NewUnorderedSet[int]()
	frontier.Add(0)
	seen.Insert(0)

	graphSize := 0
	emitted := 0

	for {
		smallest, err := frontier.Peek()
		if err != nil || smallest >= textLength {
			break
		}
		begin, _ := frontier.Poll()
		suffix := text.Slice(begin, textLength)

		for _, word := range dict.PrefixesOf(suffix) {
			end := begin + word.Len()
			if !valid.Contain(end) {
				continue
			}
			graph[begin] = append(graph[begin], end)
			graphSize++
			if !seen.Contain(end) {
				seen.Insert(end)
				frontier.Add(end)
			}
			if graphSize > MaxGraphSize {
				break
			}
		}

		switch frontier.Size() {
		case 1:
			// Only one candidate: everything up to it is decided.
			goal, _ := frontier.Peek()
			path, err := bfsPath(graph, emitted, goal)
			if err != nil {
				return nil, err
			}
			graphSize = 0
			for _, position := range path[1:] {
				result = append(result, text.Slice(emitted, position))
				emitted = position
			}
		case 0:
			// No dictionary progress from begin: consume a non-dictionary token.
			end := textLength
			if length := Fallback(suffix); length >= 0 {
				end = begin + length
			} else {
				for position := begin + 1; position < textLength; position++ {
					if !valid.Contain(position) {
						continue
					}
					rest := text.Slice(position, textLength)
					resumable := false
					for _, word := range dict.PrefixesOf(rest) {
						if valid.Contain(position+word.Len()) && !isThaiTwoConsonants(word) {
							resumable = true
							break
						}
					}
					if resumable || Fallback(rest) >= 0 {
						end = position
						break
					}
				}
			}
			graph[begin] = append(graph[begin], end)
			graphSize++
			result = append(result, text.Slice(begin, end))
			emitted = end
			frontier.Add(end)
			seen.Insert(end)
		}
	}
	return result, nil
}

// Segment tokenizes text against the dictionary and returns owned token
// strings in input order.
//
// When safe is true and the text is at least scanEnd (140) characters long,
// the text is segmented window by window; otherwise a single search covers
// the whole text. When parallel is true, token materialization (or, in safe
// mode, the windows themselves) is distributed over worker goroutines; the
// output order is the same either way.
func Segment(text string, dict *trie.Trie, safe, parallel bool) ([]string, error) {
	view := runetext.New(text)
	if view.IsEmpty() {
		return []string{}, nil
	}
	if !safe || view.Len() < scanEnd {
		tokens, err := OneCut(view, dict)
		if err != nil {
			return nil, err
		}
		return materialize(tokens, parallel), nil
	}

	parts, err := splitSafe(view, dict)
	if err != nil {
		return nil, err
	}
	if parallel {
		return segmentPartsParallel(parts, dict)
	}
	var result []string
	for _, part := range parts {
		tokens, err := OneCut(part, dict)
		if err != nil {
			return nil, err
		}
		result = append(result, materialize(tokens, false)...)
	}
	return result, nil
}

// splitSafe cuts the text into independent parts, each ending at a safe-mode
// cut position.
//
// The cut is chosen inside the scan window of the remaining text: right
// after the rightmost whitespace when the window has any, otherwise at the
// offset where the window's longest token begins (the cumulative length of
// the window tokens before it). Either way the cut lies at or beyond the
// window start, so every part is non-empty and the loop advances.
func splitSafe(view runetext.Text, dict *trie.Trie) ([]runetext.Text, error) {
	var parts []runetext.Text
	txt := view
	for txt.Len() >= scanEnd {
		sample := txt.Slice(scanBegin, scanEnd)
		var cut int
		if i := lastSpaceIndex(sample); i >= 0 {
			cut = scanBegin + i + 1
		} else {
			tokens, err := OneCut(sample, dict)
			if err != nil {
				return nil, err
			}
			longestIndex := 0
			longestLength := 0
			for i, token := range tokens {
				if token.Len() >= longestLength {
					longestLength = token.Len()
					longestIndex = i
				}
			}
			cut = scanBegin
			for i := 0; i < longestIndex; i++ {
				cut += tokens[i].Len()
			}
		}
		parts = append(parts, txt.Slice(0, cut))
		txt = txt.Slice(cut, txt.Len())
	}
	if !txt.IsEmpty() {
		parts = append(parts, txt)
	}
	return parts, nil
}

// lastSpaceIndex returns the index of the rightmost whitespace character in
// the text, or -1 when the text has none.
func lastSpaceIndex(text runetext.Text) int {
	for i := text.Len() - 1; i >= 0; i-- {
		if unicode.IsSpace(text.At(i)) {
			return i
		}
	}
	return -1
}

// materialize converts token views into owned strings, optionally fanning
// the conversion out over worker goroutines. Workers write into disjoint
// index ranges of the result, so the output order is the input order.
func materialize(tokens []runetext.Text, parallel bool) []string {
	result := make([]string, len(tokens))
	if !parallel || len(tokens) < 2 {
		for i, token := range tokens {
			result[i] = token.String()
		}
		return result
	}
	workers := runtime.GOMAXPROCS(0)
	if workers > len(tokens) {
		workers = len(tokens)
	}
	chunk := (len(tokens) + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		if lo >= len(tokens) {
			break
		}
		hi := lo + chunk
		if hi > len(tokens) {
			hi = len(tokens)
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				result[i] = tokens[i].String()
			}
		}(lo, hi)
	}
	wg.Wait()
	return result
}

// segmentPartsParallel runs one search per safe-mode part on its own worker,
// at most GOMAXPROCS workers at a time, and concatenates the token lists in
// part order.
func segmentPartsParallel(parts []runetext.Text, dict *trie.Trie) ([]string, error) {
	partTokens := make([][]string, len(parts))
	partErrs := make([]error, len(parts))
	slots := make(chan struct{}, runtime.GOMAXPROCS(0))
	var wg sync.WaitGroup
	for i, part := range parts {
		wg.Add(1)
		slots <- struct{}{}
		go func(i int, part runetext.Text) {
			defer wg.Done()
			defer func() { <-slots }()
			tokens, err := OneCut(part, dict)
			if err != nil {
				partErrs[i] = err
				return
			}
			partTokens[i] = materialize(tokens, false)
		}(i, part)
	}
	wg.Wait()
	var result []string
	for i := range parts {
		if partErrs[i] != nil {
			return nil, partErrs[i]
		}
		result = append(result, partTokens[i]...)
	}
	return result, nil
}
