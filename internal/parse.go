package internal

/*
This file is for converting lexer tokens into list trees. The grammar has a
single production,

	list := '(' item* ')'

where an item is a nested list, an atom, a string, an integer, or a vocabulary
word. A source is a sequence of lists with no outer list around them.
*/

import "fmt"

type parser struct {
	tokens []token
	pos    int
}

// parseTokens converts a token stream into its top-level lists. Any error
// aborts the whole parse.
func parseTokens(tokens []token) ([]*Node, error) {
	p := parser{tokens: tokens}
	var lists []*Node
	for p.pos < len(p.tokens) {
		l, err := p.list()
		if err != nil {
			return nil, err
		}
		lists = append(lists, l)
	}
	return lists, nil
}

// Parse lexes and parses source text in lookup mode, so vocabulary words must
// already be in the built vocabulary. report receives recoverable lexing
// problems and may be nil.
func Parse(source, name string, vocab *Vocabulary, report func(error)) ([]*Node, error) {
	tokens, err := lex(source, name, lookupWords, vocab, report)
	if err != nil {
		return nil, err
	}
	return parseTokens(tokens)
}

func tokenError(t token, kind error, format string, args ...interface{}) error {
	return &LoadError{Source: t.Source, Line: t.Line, Col: t.Col, Err: fmt.Errorf("%w"+format, append([]interface{}{kind}, args...)...)}
}

// list parses one list beginning at the current token.
func (p *parser) list() (*Node, error) {
	open := p.tokens[p.pos]
	if open.Kind != openToken {
		return nil, tokenError(open, ErrExpectedList, ", found %q", open.Value)
	}
	p.pos++
	list := &Node{Kind: ListNode, Source: open.Source, Line: open.Line, Col: open.Col}
	for p.pos < len(p.tokens) {
		t := p.tokens[p.pos]
		switch t.Kind {
		case closeToken:
			p.pos++
			return list, nil
		case openToken:
			sub, err := p.list()
			if err != nil {
				return nil, err
			}
			list.Add(sub)
			continue
		case atomToken:
			list.Add(&Node{Kind: AtomNode, Text: t.Value})
		case stringToken:
			list.Add(&Node{Kind: StringNode, Text: t.Value})
		case integerToken:
			list.Add(&Node{Kind: IntegerNode, Num: t.Num})
		case vocabToken:
			list.Add(&Node{Kind: VocabNode, Text: t.Value, Num: t.Num})
		default:
			return nil, tokenError(t, ErrMalformed, ": bad token %q", t.Value)
		}
		item := list.Items[len(list.Items)-1]
		item.Source, item.Line, item.Col = t.Source, t.Line, t.Col
		p.pos++
	}
	return nil, tokenError(open, ErrUnterminated, " in list opened here")
}
