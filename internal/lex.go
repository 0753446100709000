package internal

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// A token is a single lexical element.
type token struct {
	Kind  tokenKind
	Value string
	Num   int

	Source    string
	Line, Col int
}

type tokenKind int

const (
	badToken tokenKind = iota

	openToken    // (
	closeToken   // )
	atomToken    // identifier
	stringToken  // "string"
	integerToken // 1234
	vocabToken   // <word>
)

// lexMode controls how the lexer treats vocabulary markers.
type lexMode int

const (
	// declareWords adds each vocabulary word to the pending vocabulary and
	// keeps its text in the token.
	declareWords lexMode = iota
	// lookupWords resolves each vocabulary word to its number in the built
	// vocabulary, failing on unknown words.
	lookupWords
)

// lexer holds the state of a single lexing pass.
type lexer struct {
	src    *bufio.Reader
	name   string
	mode   lexMode
	vocab  *Vocabulary
	report func(error)

	line, col int
	tokens    []token
	err       error
}

// lexFn is a lexer state function. Each lexFn lexes a token, appends it to the
// lexer's tokens, and returns the next lexFn to use.
type lexFn func(lx *lexer) lexFn

// lex converts source text into tokens. Lexing is tolerant: unexpected
// characters and bad escapes are passed to report and skipped. The only error
// returned is ErrUnknownWord in lookup mode.
//
// Strings accept the \n escape. The \" and \\ escapes are an extension over
// the data format, which otherwise reports every other escape.
func lex(source, name string, mode lexMode, vocab *Vocabulary, report func(error)) ([]token, error) {
	lx := &lexer{
		src:    bufio.NewReader(strings.NewReader(source)),
		name:   name,
		mode:   mode,
		vocab:  vocab,
		report: report,
		line:   1,
		col:    1,
	}
	state := eatSpace
	for state != nil {
		state = state(lx)
	}
	return lx.tokens, lx.err
}

// read reads one rune and advances the position.
func (lx *lexer) read() (rune, error) {
	r, _, err := lx.src.ReadRune()
	if err != nil {
		return r, err
	}
	if r == '\n' {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}
	return r, nil
}

// peek returns the next rune without consuming it.
func (lx *lexer) peek() (rune, error) {
	r, _, err := lx.src.ReadRune()
	if err != nil {
		return r, err
	}
	lx.src.UnreadRune()
	return r, nil
}

// accept appends the next run of runes which satisfy the predicate to b.
func (lx *lexer) accept(predicate func(rune) bool, b []rune) []rune {
	for {
		r, err := lx.peek()
		if err != nil || !predicate(r) {
			return b
		}
		lx.read()
		b = append(b, r)
	}
}

// warnf reports a recoverable problem at the given position.
func (lx *lexer) warnf(line, col int, format string, args ...interface{}) {
	if lx.report == nil {
		return
	}
	lx.report(&LoadError{Source: lx.name, Line: line, Col: col, Err: fmt.Errorf(format, args...)})
}

func (lx *lexer) emit(t token) {
	t.Source = lx.name
	lx.tokens = append(lx.tokens, t)
}

// identRune reports whether r may appear in an atom.
func identRune(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9' ||
		r == '-' || r == '_' || r == '#'
}

func digitRune(r rune) bool {
	return '0' <= r && r <= '9'
}

// eatSpace consumes space and comments and decides the next lexFn to use.
func eatSpace(lx *lexer) lexFn {
	lx.accept(unicode.IsSpace, nil)
	r, err := lx.peek()
	if err != nil {
		if err != io.EOF {
			lx.warnf(lx.line, lx.col, "%v", err)
		}
		return nil
	}
	line, col := lx.line, lx.col
	switch {
	case r == '(':
		lx.read()
		lx.emit(token{Kind: openToken, Value: "(", Line: line, Col: col})
		return eatSpace
	case r == ')':
		lx.read()
		lx.emit(token{Kind: closeToken, Value: ")", Line: line, Col: col})
		return eatSpace
	case r == '/':
		lx.read()
		if next, err := lx.peek(); err == nil && next == '/' {
			return lexComment
		}
		lx.warnf(line, col, "unexpected character %q", r)
		return eatSpace
	case digitRune(r):
		return lexInteger
	case identRune(r):
		return lexAtom
	case r == '"':
		return lexString
	case r == '<':
		return lexVocab
	}
	lx.read()
	lx.warnf(line, col, "unexpected character %q", r)
	return eatSpace
}

// lexComment discards the rest of the line.
func lexComment(lx *lexer) lexFn {
	lx.accept(func(r rune) bool { return r != '\n' }, nil)
	return eatSpace
}

// lexInteger lexes a run of decimal digits.
func lexInteger(lx *lexer) lexFn {
	line, col := lx.line, lx.col
	b := lx.accept(digitRune, nil)
	n, err := strconv.Atoi(string(b))
	if err != nil {
		lx.warnf(line, col, "integer %s out of range", string(b))
	}
	lx.emit(token{Kind: integerToken, Value: string(b), Num: n, Line: line, Col: col})
	return eatSpace
}

// lexAtom lexes an identifier, which consists of a-z, A-Z, 0-9, -, _, and #.
func lexAtom(lx *lexer) lexFn {
	line, col := lx.line, lx.col
	b := lx.accept(identRune, nil)
	lx.emit(token{Kind: atomToken, Value: string(b), Line: line, Col: col})
	return eatSpace
}

// lexString lexes a double-quoted string. The recognized escapes are \n, \",
// and \\; any other escape is reported and replaced by the escaped character.
func lexString(lx *lexer) lexFn {
	line, col := lx.line, lx.col
	lx.read()
	var b strings.Builder
	for {
		r, err := lx.read()
		if err != nil {
			lx.warnf(line, col, "unterminated string")
			return nil
		}
		switch r {
		case '"':
			lx.emit(token{Kind: stringToken, Value: b.String(), Line: line, Col: col})
			return eatSpace
		case '\\':
			el, ec := lx.line, lx.col-1
			e, err := lx.read()
			if err != nil {
				lx.warnf(el, ec, "incomplete escape at end of string")
				lx.warnf(line, col, "unterminated string")
				return nil
			}
			switch e {
			case 'n':
				b.WriteByte('\n')
			case '"', '\\':
				b.WriteRune(e)
			default:
				lx.warnf(el, ec, "unrecognized escape \\%c", e)
				b.WriteRune(e)
			}
		default:
			b.WriteRune(r)
		}
	}
}

// lexVocab lexes a <word> vocabulary marker.
func lexVocab(lx *lexer) lexFn {
	line, col := lx.line, lx.col
	lx.read()
	b := lx.accept(func(r rune) bool { return r != '>' }, nil)
	if _, err := lx.read(); err != nil {
		lx.warnf(line, col, "unterminated vocabulary word")
		return nil
	}
	word := string(b)
	if word == "" {
		lx.warnf(line, col, "empty vocabulary word")
		return eatSpace
	}
	t := token{Kind: vocabToken, Value: word, Line: line, Col: col}
	switch lx.mode {
	case declareWords:
		lx.vocab.RawAdd(word)
	case lookupWords:
		t.Num = lx.vocab.Index(word)
		if t.Num < 0 {
			lx.err = &LoadError{Source: lx.name, Line: line, Col: col, Err: fmt.Errorf("%w <%s>", ErrUnknownWord, word)}
			return nil
		}
		t.Value = ""
	}
	lx.emit(t)
	return eatSpace
}
