package internal

import "strings"

const (
	// MaxGrammarTokens is the maximum number of tokens in an action's
	// grammar, including the implicit end token.
	MaxGrammarTokens = 16
	// MaxNouns is the maximum number of noun or scope tokens in a grammar.
	MaxNouns = 2
	// MaxScopeObjects bounds the number of objects considered for one noun.
	MaxScopeObjects = 64
)

// GrammarKind is the kind of a grammar token.
type GrammarKind int

const (
	// WordToken matches one input word by word number.
	WordToken GrammarKind = iota
	// AnyToken matches any one input word.
	AnyToken
	// NounToken matches an object reachable from the player's location.
	NounToken
	// ScopeToken matches an object inside a particular object.
	ScopeToken
	// EndToken matches the end of a command.
	EndToken
)

func (k GrammarKind) String() string {
	switch k {
	case WordToken:
		return "word"
	case AnyToken:
		return "any"
	case NounToken:
		return "noun"
	case ScopeToken:
		return "scope"
	case EndToken:
		return "end"
	}
	return "GrammarKind(?)"
}

// A GrammarToken is one position in an action's grammar. A run of word tokens
// with Alt set on all but the last is a set of alternatives for a single
// position.
type GrammarToken struct {
	Kind  GrammarKind
	Word  int
	Alt   bool
	Scope ObjectID

	scopeName string
}

// An Action is a grammar paired with the action code it produces.
type Action struct {
	// Code is the action code reported on a successful match.
	Code int
	// Name is the name of the constant that gave the code, if any.
	Name    string
	Grammar []GrammarToken

	next *Action
	at   *Node
}

// Next returns the action declared before this one.
func (a *Action) Next() *Action {
	return a.next
}

// Failure classifies a command that could not be matched. Failures from
// FailParser through FailAmbiguous are ranked from least to most specific.
type Failure int

const (
	// FailNone indicates success.
	FailNone Failure = iota
	// FailParser indicates that no action could be tried at all.
	FailParser
	// FailNonMatch indicates that the command's verb was not recognized.
	FailNonMatch
	// FailNotVisible indicates that a noun matched no object in scope.
	FailNotVisible
	// FailAmbiguous indicates that a noun matched several objects equally.
	FailAmbiguous
	// FailUnknownWord indicates that the first input word is not in the
	// vocabulary.
	FailUnknownWord
	// FailPardon indicates empty input.
	FailPardon
)

func (f Failure) String() string {
	switch f {
	case FailNone:
		return "none"
	case FailParser:
		return "parser error"
	case FailNonMatch:
		return "non-match"
	case FailNotVisible:
		return "not visible"
	case FailAmbiguous:
		return "ambiguous"
	case FailUnknownWord:
		return "unknown word"
	case FailPardon:
		return "pardon"
	}
	return "Failure(?)"
}

// A Command is the result of matching input against the grammar.
type Command struct {
	// Action is the action that matched, or the action that produced the
	// reported failure.
	Action *Action
	// Code is the matched action's code.
	Code int
	// Nouns holds the objects matched by noun and scope tokens.
	Nouns []ObjectID
	// Ambiguous holds the tied candidates of an ambiguous noun.
	Ambiguous []ObjectID
	// Failure is FailNone on success.
	Failure Failure
	// Next is the number of input words consumed, including a trailing
	// separator.
	Next int
}

// Noun returns noun i as a script value, or 0 if there is no such noun.
func (c *Command) Noun(i int) *Node {
	if i < 0 || i >= len(c.Nouns) {
		return False()
	}
	return NewObjectRef(c.Nouns[i])
}

// Parse matches input words against every action, most recently declared
// first. It returns the first successful match, or else the most specific
// failure among all attempts.
func (g *Game) Parse(words []InputWord) Command {
	best := Command{Failure: FailParser}
	for a := g.Actions; a != nil; a = a.next {
		cmd := g.tryMatch(a, words)
		if cmd.Failure == FailNone {
			return cmd
		}
		if cmd.Failure > best.Failure {
			best = cmd
		}
	}
	return best
}

// tryMatch matches input words against one action's grammar. Running out of
// input, leftover input, and a wrong word are non-matches. A noun that names
// nothing in scope is not visible unless it is the first grammar token.
func (g *Game) tryMatch(a *Action, words []InputWord) Command {
	cmd := Command{Action: a, Code: a.Code}
	fail := func(f Failure) Command {
		cmd.Failure = f
		cmd.Nouns = nil
		return cmd
	}
	for i := 0; i < len(a.Grammar); i++ {
		t := a.Grammar[i]
		if t.Kind == EndToken {
			if cmd.Next == len(words) {
				return cmd
			}
			if g.isSeparator(words[cmd.Next]) {
				cmd.Next++
				return cmd
			}
			return fail(FailNonMatch)
		}
		if cmd.Next >= len(words) {
			return fail(FailNonMatch)
		}
		switch t.Kind {
		case WordToken:
			if words[cmd.Next].Num == t.Word {
				cmd.Next++
				for i < len(a.Grammar) && a.Grammar[i].Alt {
					i++
				}
				continue
			}
			if t.Alt {
				continue
			}
			return fail(FailNonMatch)
		case AnyToken:
			cmd.Next++
		case NounToken, ScopeToken:
			var scope []ObjectID
			if t.Kind == NounToken {
				scope = g.scope(g.World.Ceiling(g.Player), true)
			} else {
				scope = g.scope(t.Scope, false)
			}
			found, n := g.matchNoun(scope, words[cmd.Next:])
			switch {
			case n == 0 && i == 0:
				return fail(FailNonMatch)
			case n == 0:
				return fail(FailNotVisible)
			case len(found) > 1:
				cmd.Ambiguous = found
				return fail(FailAmbiguous)
			}
			cmd.Nouns = append(cmd.Nouns, found[0])
			cmd.Next += n
		default:
			return fail(FailParser)
		}
	}
	return fail(FailParser)
}

// scope lists the objects eligible for noun matching under root, breadth
// first, siblings before children. The root itself is included if withRoot.
func (g *Game) scope(root ObjectID, withRoot bool) []ObjectID {
	if g.World.Object(root) == nil {
		return nil
	}
	var r []ObjectID
	if withRoot {
		r = append(r, root)
	}
	queue := []ObjectID{root}
	for len(queue) > 0 && len(r) < MaxScopeObjects {
		cur := queue[0]
		queue = queue[1:]
		for c := g.World.FirstChild(cur); c != NoObject && len(r) < MaxScopeObjects; c = g.World.Sibling(c) {
			r = append(r, c)
			queue = append(queue, c)
		}
	}
	return r
}

// matchNoun finds the candidates whose vocabulary matches the most
// consecutive input words. It returns every candidate tied for the best
// count along with that count.
func (g *Game) matchNoun(candidates []ObjectID, words []InputWord) ([]ObjectID, int) {
	pid := g.knownProperty(PropVocab)
	var found []ObjectID
	best := 0
	for _, id := range candidates {
		obj := g.World.Object(id)
		n := 0
		for n < len(words) && obj.hasWord(pid, words[n].Num) {
			n++
		}
		if g.Trace {
			g.Logf("noun: %s matches %d", g.Name(id, false), n)
		}
		switch {
		case n == 0 || n < best:
		case n > best:
			best = n
			found = append(found[:0], id)
		default:
			found = append(found, id)
		}
	}
	return found, best
}

func (g *Game) isSeparator(w InputWord) bool {
	for _, s := range g.Separators {
		if w.Text == s {
			return true
		}
	}
	return false
}

// Message returns the text reported to the player for a failed command.
func (g *Game) Message(cmd Command, words []InputWord) string {
	switch cmd.Failure {
	case FailAmbiguous:
		names := make([]string, len(cmd.Ambiguous))
		for i, id := range cmd.Ambiguous {
			names[i] = g.Name(id, true)
		}
		var list string
		if len(names) == 2 {
			list = names[0] + " or " + names[1]
		} else {
			list = strings.Join(names[:len(names)-1], ", ") + ", or " + names[len(names)-1]
		}
		return "Which do you mean: " + list + "?"
	case FailNotVisible:
		return "Not visible."
	case FailNonMatch:
		if len(words) > 0 {
			return "Unrecognized verb '" + words[0].Text + "'."
		}
		return "Unrecognized verb."
	case FailUnknownWord:
		if len(words) > 0 {
			return "Unknown word '" + words[0].Text + "'."
		}
		return "Unknown word."
	case FailPardon:
		return "Pardon?"
	case FailParser:
		return "Parser error."
	}
	return ""
}
