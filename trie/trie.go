/*
Package trie provides the dictionary of the word segmentation engine as a
prefix tree (Trie) keyed by character.

A Trie stores a set of words and answers, for any text suffix, the question
"which dictionary words are a prefix of this suffix" in time proportional to
the longest match. That query (PrefixesOf) is the hot operation of the
segmentation search; exact membership (Contains) is answered from a separate
word set rather than a tree walk.

It supports the following features:

  - Insert: Add a word to the trie in O(n) time, where n is the length of the word.
  - Contains: Check if a word was inserted, in O(1) expected time.
  - Remove: Remove a word from the trie, pruning nodes as needed in O(n) time.
  - PrefixesOf: Enumerate all stored words prefixing a suffix in O(m) time,
    where m is the length of the longest match.
  - Thread Safety: Readers take a shared lock; mutators take an exclusive lock.

Invariants:
  - Words are trimmed of leading and trailing whitespace before insertion;
    words that are empty after trimming are never stored.
  - Every terminal node corresponds to exactly one entry in the word set and
    vice versa; every mutator keeps the two in sync.
  - After Remove, any node that is neither terminal nor has children is
    pruned. The root is never pruned.

Example usage:

	t := trie.New()
	t.Insert("กา")
	t.Insert("กาแฟ")
	fmt.Println(t.Contains("กา"))                      // true
	fmt.Println(len(t.PrefixesOf(runetext.New("กาแฟร้อน")))) // 2

Implementation Details:
  - Each node contains a map of rune to *node for children.
  - A `terminal` flag marks the end of a stored word.
  - Remove backtracks with a stack from github.com/Zubayear/kham/stack.

Concurrency:
  - Contains, PrefixesOf, Size, IsEmpty and Words are safe under any number
    of concurrent readers; Insert and Remove require exclusive access.
*/
package trie

import (
	"strings"
	"sync"

	"github.com/Zubayear/kham/runetext"
	"github.com/Zubayear/kham/stack"
)

// node represents a single node in the Trie.
//
// Each node contains:
//   - children: a map of rune to node pointers representing possible next characters.
//   - terminal: true if this node marks the end of a stored word.
type node struct {
	children map[rune]*node
	terminal bool
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// Trie represents a thread-safe dictionary trie.
//
// Fields:
//   - words: the set of stored words, used for exact membership tests
//   - root: the root node of the trie
//   - mutex: a read-write mutex (RWMutex) to ensure concurrent safety
//
// Operations supported:
//   - Insert: Add a word to the trie
//   - Contains: Check if a word is stored
//   - Remove: Delete a word from the trie
//   - PrefixesOf: Enumerate stored words prefixing a suffix
//   - Words / Size / IsEmpty: Utility functions
type Trie struct {
	words map[string]struct{}
	root  *node
	mutex sync.RWMutex
}

// New creates and returns an empty Trie instance.
//
// Example:
//
//	t := trie.New()
//	t.Insert("น้ำ")
//	fmt.Println(t.Contains("น้ำ")) // true
func New() *Trie {
	return &Trie{words: make(map[string]struct{}), root: newNode()}
}

// NewFromWords creates a Trie and inserts every word of the given list.
//
// Time Complexity: O(total length of all words)
func NewFromWords(words []string) *Trie {
	t := New()
	for _, w := range words {
		t.Insert(w)
	}
	return t
}

// Size returns the total number of words stored in the Trie.
//
// Time Complexity: O(1)
func (t *Trie) Size() int {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	return len(t.words)
}

// IsEmpty returns true if the Trie contains no words, false otherwise.
//
// Time Complexity: O(1)
func (t *Trie) IsEmpty() bool {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	return len(t.words) == 0
}

// Insert adds a word into the Trie.
//
// The word is trimmed of leading and trailing whitespace first; a word that
// is empty after trimming is ignored. Inserting a word twice stores it once.
//
// Algorithm Steps:
//   - Trim the word; bail out if nothing is left
//   - Record the word in the word set
//   - Start from the root node
//   - For each character in the word
//   - If the character's child does not exist, create a new node
//   - Move to the child node
//   - Mark the last node as terminal
//
// Time Complexity: O(N), where N = length of the word
//
// Space Complexity: O(N) for new nodes (if needed)
func (t *Trie) Insert(word string) {
	stripped := strings.TrimSpace(word)
	if len(stripped) == 0 {
		return
	}
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.words[stripped] = struct{}{}
	current := t.root
	for _, ch := range stripped {
		if current.children[ch] == nil {
			current.children[ch] = newNode()
		}
		current = current.children[ch]
	}
	current.terminal = true
}

// Contains checks if a word is stored in the Trie.
//
// Membership is answered from the word set, not a tree walk, and is exact:
// prefixes of stored words are not reported as stored.
//
// Time Complexity: O(1) expected
func (t *Trie) Contains(word string) bool {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	_, ok := t.words[word]
	return ok
}

// Words returns all stored words. The order of words is not guaranteed.
//
// Time Complexity: O(n), where n = number of stored words
func (t *Trie) Words() []string {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	result := make([]string, 0, len(t.words))
	for w := range t.words {
		result = append(result, w)
	}
	return result
}

// Remove deletes a word from the Trie if it exists.
//
// Returns true if the word was removed, false otherwise. The word is trimmed
// the same way Insert trims it. Nodes left childless and non-terminal by the
// removal are pruned from the leaf upward; the root always survives.
//
// Algorithm Steps:
//   - Trim the word; bail out if nothing is left or the word is not stored
//   - Delete the word from the word set
//   - Traverse the word and push (node, char) pairs into a stack for backtracking
//   - Unmark the terminal node
//   - Backtrack and remove nodes that are no longer needed (no children and not terminal)
//
// Time Complexity: O(N), where N = length of the word
//
// Space Complexity: O(N) for the stack used to track nodes
func (t *Trie) Remove(word string) bool {
	stripped := strings.TrimSpace(word)
	if len(stripped) == 0 {
		return false
	}
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if _, ok := t.words[stripped]; !ok {
		return false
	}
	delete(t.words, stripped)

	type pair struct {
		node *node
		ch   rune
	}

	s := stack.NewStack[pair]()
	current := t.root
	for _, ch := range stripped {
		next := current.children[ch]
		if next == nil {
			return false
		}
		s.Push(pair{current, ch})
		current = next
	}
	current.terminal = false

	for !s.IsEmpty() {
		val, _ := s.Pop()
		parent := val.node
		ch := val.ch
		child := parent.children[ch]
		if len(child.children) == 0 && !child.terminal {
			delete(parent.children, ch)
		} else {
			break
		}
	}
	return true
}

// PrefixesOf enumerates every stored word that is a prefix of the given
// suffix, in strictly increasing length order.
//
// The returned values are sub-views of the suffix sharing its backing array;
// no characters are copied per hit.
//
// Algorithm Steps:
//   - Walk the tree from the root, consuming suffix characters one at a time
//   - Each time a terminal node is reached at depth d, yield suffix[0..d]
//   - Stop at the first character with no matching edge
//
// Time Complexity: O(M), where M = length of the longest matching prefix
func (t *Trie) PrefixesOf(suffix runetext.Text) []runetext.Text {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	var result []runetext.Text
	current := t.root
	for i := 0; i < suffix.Len(); i++ {
		child := current.children[suffix.At(i)]
		if child == nil {
			break
		}
		if child.terminal {
			result = append(result, suffix.Slice(0, i+1))
		}
		current = child
	}
	return result
}
