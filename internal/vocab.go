package internal

import "sort"

// Vocabulary is the sorted table of words the player may type. Words are
// collected with RawAdd while world data is lexed, then fixed with Build.
// A word's number is its index in the built table, so numbers are meaningful
// only after Build.
type Vocabulary struct {
	pending []string
	words   []string
	built   bool
}

// RawAdd adds a word to the pending vocabulary, keeping it sorted and without
// duplicates. It returns false if the word was already present. Panics if the
// vocabulary has already been built.
func (v *Vocabulary) RawAdd(word string) bool {
	if v.built {
		panic("ifparse: RawAdd called after the vocabulary was built")
	}
	i := sort.SearchStrings(v.pending, word)
	if i < len(v.pending) && v.pending[i] == word {
		return false
	}
	v.pending = append(v.pending, "")
	copy(v.pending[i+1:], v.pending[i:])
	v.pending[i] = word
	return true
}

// Build fixes the vocabulary. Later calls do nothing.
func (v *Vocabulary) Build() {
	if v.built {
		return
	}
	v.words = make([]string, len(v.pending))
	copy(v.words, v.pending)
	v.pending = nil
	v.built = true
}

// Built reports whether Build has been called.
func (v *Vocabulary) Built() bool {
	return v.built
}

// Index returns the word number of word, or -1 if the word is not in the
// built vocabulary.
func (v *Vocabulary) Index(word string) int {
	i := sort.SearchStrings(v.words, word)
	if i < len(v.words) && v.words[i] == word {
		return i
	}
	return -1
}

// Word returns the text of word number n, or the empty string if there is no
// such word.
func (v *Vocabulary) Word(n int) string {
	if n < 0 || n >= len(v.words) {
		return ""
	}
	return v.words[n]
}

// Len returns the number of words in the built vocabulary.
func (v *Vocabulary) Len() int {
	return len(v.words)
}

// Words returns the built vocabulary in word-number order. The caller must
// not modify the result.
func (v *Vocabulary) Words() []string {
	return v.words
}
