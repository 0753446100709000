package internal

import "unicode"

// MaxInputWords is the maximum number of words read from one line of input.
// Words beyond it are dropped.
const MaxInputWords = 32

// An InputWord is one word of player input. Num is its word number, or -1 if
// the word is not in the vocabulary.
type InputWord struct {
	Text string
	Num  int
}

// punctRune reports whether r is punctuation that forms a word by itself.
func punctRune(r rune) bool {
	return r == '.' || r == ','
}

// Tokenize splits a line of player input into case-folded words. It reports
// FailPardon for input with no words and FailUnknownWord when the first word
// is not in the vocabulary.
func (g *Game) Tokenize(line string) ([]InputWord, Failure) {
	line = g.fold.String(line)
	var words []InputWord
	add := func(w []rune) {
		if len(w) == 0 || len(words) >= MaxInputWords {
			return
		}
		s := string(w)
		words = append(words, InputWord{Text: s, Num: g.Vocab.Index(s)})
	}
	var cur []rune
	for _, r := range line {
		switch {
		case unicode.IsSpace(r):
			add(cur)
			cur = cur[:0]
		case punctRune(r):
			add(cur)
			cur = cur[:0]
			add([]rune{r})
		default:
			cur = append(cur, r)
		}
	}
	add(cur)
	if len(words) == 0 {
		return nil, FailPardon
	}
	if words[0].Num < 0 {
		return words, FailUnknownWord
	}
	return words, FailNone
}
