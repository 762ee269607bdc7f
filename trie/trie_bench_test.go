package trie

import (
	"fmt"
	"testing"

	"github.com/Zubayear/kham/runetext"
)

var words = []string{
	"กา", "กาแฟ", "ก็", "กิน", "ข้าว", "คน", "ใจ",
	"น้ำ", "ร้อน", "เย็น", "เรียน", "โรงเรียน", "หนังสือ",
}

func generateWords(n int) []string {
	words := make([]string, n)
	for i := 0; i < n; i++ {
		words[i] = fmt.Sprintf("คำ%d", i)
	}
	return words
}

func BenchmarkInsert(b *testing.B) {
	for i := 0; i < b.N; i++ {
		t := New()
		for _, word := range words {
			t.Insert(word)
		}
	}
}

func BenchmarkContains(b *testing.B) {
	t := NewFromWords(words)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		t.Contains("โรงเรียน")
	}
}

func BenchmarkPrefixesOf(b *testing.B) {
	t := NewFromWords(words)
	suffix := runetext.New("กาแฟร้อนมาก")
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = t.PrefixesOf(suffix)
	}
}

func BenchmarkInsertLarge(b *testing.B) {
	largeWords := generateWords(10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t := New()
		for _, w := range largeWords {
			t.Insert(w)
		}
	}
}

func BenchmarkPrefixesOfParallel(b *testing.B) {
	t := NewFromWords(words)
	suffix := runetext.New("กาแฟร้อนมาก")
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = t.PrefixesOf(suffix)
		}
	})
}

func BenchmarkContainsParallel(b *testing.B) {
	t := NewFromWords(words)
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			t.Contains("กาแฟ")
		}
	})
}
