package internal

import (
	"strconv"
	"strings"
)

// builtinQuote returns its argument without evaluating it.
func builtinQuote(g *Game, locals *SymbolTable, args []*Node) *Node {
	switch len(args) {
	case 0:
		return NewList()
	case 1:
		return args[0]
	}
	return NewList(args...)
}

// builtinIf evaluates its condition, then either the then-branch or the
// optional else-branch.
func builtinIf(g *Game, locals *SymbolTable, args []*Node) *Node {
	if !checkCount(g, "if", args, 2, 3) {
		return False()
	}
	if g.Evaluate(locals, args[0]).IsTrue() {
		return g.Evaluate(locals, args[1])
	}
	if len(args) == 3 {
		return g.Evaluate(locals, args[2])
	}
	return False()
}

// builtinSet binds a name in the local scope to the value of an expression.
func builtinSet(g *Game, locals *SymbolTable, args []*Node) *Node {
	if !checkCount(g, "set", args, 2, 2) {
		return False()
	}
	if args[0].Kind != AtomNode {
		return argError(g, "set", "name must be atom, not %v", args[0].Kind)
	}
	if locals == nil {
		return argError(g, "set", "no local scope")
	}
	v := g.Evaluate(locals, args[1])
	locals.Add(&Symbol{Name: args[0].Text, Kind: LocalSymbol, Local: v.Dup()})
	return v
}

// builtinLog writes its unevaluated arguments to the log, along with the
// values of any atoms that name symbols.
func builtinLog(g *Game, locals *SymbolTable, args []*Node) *Node {
	var b strings.Builder
	b.WriteString("log:")
	if len(args) == 0 {
		b.WriteString(" NULL")
	}
	for _, a := range args {
		g.logItem(&b, locals, a)
	}
	g.Log.Print(b.String())
	return False()
}

func (g *Game) logItem(b *strings.Builder, locals *SymbolTable, n *Node) {
	switch n.Kind {
	case ListNode:
		b.WriteString(" {")
		for _, item := range n.Items {
			g.logItem(b, locals, item)
		}
		b.WriteString(" }")
	case AtomNode:
		b.WriteString(" " + n.Text + " =")
		sym := lookup(locals, g.Symbols, n.Text)
		if sym == nil {
			b.WriteString(" NULL")
			return
		}
		v := symbolValue(sym)
		if v.Kind == AtomNode {
			b.WriteString(" " + v.Text)
			return
		}
		g.logItem(b, locals, v)
	case StringNode:
		b.WriteString(" " + n.Text)
	case IntegerNode:
		b.WriteString(" " + strconv.Itoa(n.Num))
	default:
		b.WriteString(" " + n.String())
	}
}

// builtinDo returns its last argument. Since arguments are evaluated in
// order, it sequences expressions.
func builtinDo(g *Game, locals *SymbolTable, args []*Node) *Node {
	if len(args) == 0 {
		return False()
	}
	return args[len(args)-1]
}

// builtinCall calls a function reference with the remaining arguments.
func builtinCall(g *Game, locals *SymbolTable, args []*Node) *Node {
	if !checkCount(g, "call", args, 1, -1) {
		return False()
	}
	if args[0].Kind != FunctionNode || args[0].Fn == nil {
		return argError(g, "call", "argument 1 must be function, not %v", args[0].Kind)
	}
	return g.Call(args[0].Fn, args[1:])
}

func builtinList(g *Game, locals *SymbolTable, args []*Node) *Node {
	return NewList(args...)
}

func listArg(g *Game, name string, args []*Node) (*Node, bool) {
	if !checkCount(g, name, args, 1, 1) {
		return nil, false
	}
	if args[0].Kind != ListNode {
		argError(g, name, "argument must be list, not %v", args[0].Kind)
		return nil, false
	}
	return args[0], true
}

func builtinFirst(g *Game, locals *SymbolTable, args []*Node) *Node {
	l, ok := listArg(g, "first", args)
	if !ok || l.Len() == 0 {
		return False()
	}
	return l.Items[0]
}

func builtinRest(g *Game, locals *SymbolTable, args []*Node) *Node {
	l, ok := listArg(g, "rest", args)
	if !ok {
		return False()
	}
	if l.Len() == 0 {
		return NewList()
	}
	return NewList(l.Items[1:]...)
}

func builtinLength(g *Game, locals *SymbolTable, args []*Node) *Node {
	l, ok := listArg(g, "length", args)
	if !ok {
		return False()
	}
	return NewInteger(l.Len())
}

// builtinNth returns the element of a list at a zero-based index.
func builtinNth(g *Game, locals *SymbolTable, args []*Node) *Node {
	if !checkCount(g, "nth", args, 2, 2) {
		return False()
	}
	l, ok := listArg(g, "nth", args[:1])
	if !ok {
		return False()
	}
	i, ok := intArg(g, "nth", args, 1)
	if !ok {
		return False()
	}
	if i < 0 || i >= l.Len() {
		return False()
	}
	return l.Items[i]
}

// isKind creates a type predicate builtin.
func isKind(kind NodeKind) Builtin {
	name := "is-" + kind.String()
	if kind == IntegerNode {
		name = "is-number"
	}
	return func(g *Game, locals *SymbolTable, args []*Node) *Node {
		if !checkCount(g, name, args, 1, 1) {
			return False()
		}
		return Bool(args[0].Kind == kind)
	}
}

func builtinTypeName(g *Game, locals *SymbolTable, args []*Node) *Node {
	if !checkCount(g, "type-name", args, 1, 1) {
		return False()
	}
	return NewString(args[0].Kind.String())
}
