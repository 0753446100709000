package internal

import (
	"strconv"
	"strings"
)

// Name returns the printed name of an object. With article, the name is
// preceded by the object's article property, or by "a" or "an", unless the
// object is proper. Objects with no name property print as (obj#N).
func (g *Game) Name(id ObjectID, article bool) string {
	obj := g.World.Object(id)
	if obj == nil {
		return "(nothing)"
	}
	p := obj.Property(g.knownProperty(PropName))
	if p == nil || p.Value.Kind != StringValue {
		return "(obj#" + strconv.Itoa(int(id)) + ")"
	}
	name := p.Value.Str
	if !article || obj.IsTrue(g.knownProperty(PropIsProper), false) {
		return name
	}
	if a := obj.Property(g.knownProperty(PropArticle)); a != nil && a.Value.Kind == StringValue {
		if a.Value.Str == "" {
			return name
		}
		return a.Value.Str + " " + name
	}
	if name != "" && strings.ContainsRune("aeiouAEIOU", rune(name[0])) {
		return "an " + name
	}
	return "a " + name
}

// sayText converts a value to the text say prints for it.
func (g *Game) sayText(n *Node) (string, bool) {
	switch n.Kind {
	case StringNode:
		return n.Text, true
	case IntegerNode:
		return strconv.Itoa(n.Num), true
	case ObjectNode:
		return g.Name(n.Obj, true), true
	case VocabNode:
		if n.Text != "" {
			return n.Text, true
		}
		return g.Vocab.Word(n.Num), true
	}
	return "", false
}

// builtinSay writes each argument to the output.
func builtinSay(g *Game, locals *SymbolTable, args []*Node) *Node {
	for _, a := range args {
		s, ok := g.sayText(a)
		if !ok {
			argError(g, "say", "cannot print %v", a.Kind)
			continue
		}
		g.Out.Write(s)
	}
	return False()
}

// builtinSayName writes the bare name of an object.
func builtinSayName(g *Game, locals *SymbolTable, args []*Node) *Node {
	if !checkCount(g, "say-name", args, 1, 1) {
		return False()
	}
	obj, ok := objectArg(g, "say-name", args, 0)
	if !ok {
		return False()
	}
	g.Out.Write(g.Name(obj.ID, false))
	return False()
}

func builtinEmphasis(g *Game, locals *SymbolTable, args []*Node) *Node {
	g.Out.EmphasisOn()
	return False()
}

func builtinNormal(g *Game, locals *SymbolTable, args []*Node) *Node {
	g.Out.EmphasisOff()
	return False()
}

// horizontal lists the children of an object in a sentence, with the contents
// of each non-empty child in parentheses.
func (g *Game) horizontal(id ObjectID, depth int) (string, int) {
	kids := g.World.Children(id)
	names := make([]string, len(kids))
	for i, c := range kids {
		names[i] = g.Name(c, true)
		if depth < MaxTreeDepth && g.World.FirstChild(c) != NoObject {
			inner, _ := g.horizontal(c, depth+1)
			names[i] += " (containing " + inner + ")"
		}
	}
	switch len(names) {
	case 0:
		return "", 0
	case 1:
		return names[0], 1
	case 2:
		return names[0] + " and " + names[1], 2
	}
	n := len(names)
	return strings.Join(names[:n-1], ", ") + ", and " + names[n-1], n
}

// builtinListContents prints the contents of an object as a sentence
// fragment and returns the number of direct children.
func builtinListContents(g *Game, locals *SymbolTable, args []*Node) *Node {
	if !checkCount(g, "list-contents", args, 1, 1) {
		return False()
	}
	obj, ok := objectArg(g, "list-contents", args, 0)
	if !ok {
		return False()
	}
	s, n := g.horizontal(obj.ID, 1)
	g.Out.Write(s)
	return NewInteger(n)
}

// builtinListInventory prints the contents of an object one per line,
// indented four spaces per level, and returns the number of direct children.
func builtinListInventory(g *Game, locals *SymbolTable, args []*Node) *Node {
	if !checkCount(g, "list-inventory", args, 1, 1) {
		return False()
	}
	obj, ok := objectArg(g, "list-inventory", args, 0)
	if !ok {
		return False()
	}
	n := 0
	g.World.Walk(obj.ID, func(id ObjectID, depth int) {
		if depth == 1 {
			n++
		}
		g.Out.Write(strings.Repeat("    ", depth) + g.Name(id, true) + "\n")
	})
	return NewInteger(n)
}

func builtinRequestQuit(g *Game, locals *SymbolTable, args []*Node) *Node {
	g.quit = true
	return True()
}
