/*
Package runetext provides a character-indexed view over UTF-8 text.

Thai script carries no inter-word spaces, so every position the segmentation
engine reasons about is a character (Unicode scalar) index, never a byte
offset. A Text is an immutable window onto a rune sequence with constant-time
length, indexing, and slicing. Byte offsets exist only at the conversion
boundary (New and String).

Key Features:
  - New: Convert a UTF-8 string into a character-indexed view in O(n).
  - Len / At: Character count and character access in O(1).
  - Slice: Sub-view sharing the same backing array, O(1) and non-allocating.
  - String: Materialize the view into an owned string in O(n).

Use Cases:
  - Tokenizers and segmenters that emit character-range tokens.
  - Boundary sets expressed as character indices.
  - Zero-copy suffix handoff to prefix-dictionary lookups.

Complexity:
  - New: O(n)
  - Len, At, Slice, IsEmpty: O(1)
  - String: O(n)
*/
package runetext

// Text is an immutable character-indexed view over a rune sequence.
//
// Slicing a Text yields a view onto the same backing array, so sub-views
// are free to create and safe to share as long as nobody mutates the
// underlying runes. All indices are character indices.
type Text []rune

// New converts a UTF-8 string into a character-indexed view.
//
// Time Complexity: O(n), where n = number of bytes in s
func New(s string) Text {
	return Text(s)
}

// Len returns the number of characters in the view.
//
// Time Complexity: O(1)
func (t Text) Len() int {
	return len(t)
}

// IsEmpty returns true if the view contains no characters.
//
// Time Complexity: O(1)
func (t Text) IsEmpty() bool {
	return len(t) == 0
}

// At returns the character at index i.
//
// Time Complexity: O(1)
func (t Text) At(i int) rune {
	return t[i]
}

// Slice returns the sub-view covering characters [i, j).
//
// The result shares the backing array with t; no characters are copied.
//
// Time Complexity: O(1)
func (t Text) Slice(i, j int) Text {
	return t[i:j]
}

// String materializes the view into an owned UTF-8 string.
//
// Time Complexity: O(n), where n = number of characters in the view
func (t Text) String() string {
	return string(t)
}
