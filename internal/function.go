package internal

// MaxCallDepth bounds nested function calls in scripts.
const MaxCallDepth = 200

// A Function is a user function declared in world data.
type Function struct {
	Name   string
	Params []string
	Body   []*Node
}

// A Builtin is a script function implemented in Go. locals is the caller's
// local scope, which special forms use to evaluate their raw arguments.
type Builtin func(g *Game, locals *SymbolTable, args []*Node) *Node

// builtin is the static descriptor of a Builtin. If autoEval is true, each
// argument is evaluated before the call; otherwise the builtin receives
// copies of its unevaluated argument expressions.
type builtin struct {
	name     string
	autoEval bool
	fn       Builtin
}

// Define adds or replaces a builtin.
func (g *Game) Define(name string, autoEval bool, fn Builtin) {
	g.builtins[name] = &builtin{name: name, autoEval: autoEval, fn: fn}
}

// HasBuiltin reports whether a builtin with the given name exists.
func (g *Game) HasBuiltin(name string) bool {
	_, ok := g.builtins[name]
	return ok
}

// Evaluate evaluates an expression. Literals evaluate to copies of
// themselves, atoms to the value of the symbol they name, and lists to the
// result of calling the function they name.
func (g *Game) Evaluate(locals *SymbolTable, expr *Node) *Node {
	if expr == nil {
		return False()
	}
	switch expr.Kind {
	case StringNode, IntegerNode, VocabNode, ObjectNode, FunctionNode:
		return expr.Dup()
	case AtomNode:
		sym := lookup(locals, g.Symbols, expr.Text)
		if sym == nil {
			g.Logf("undefined value %s", expr.Text)
			return False()
		}
		return symbolValue(sym)
	case ListNode:
		return g.Run(locals, expr)
	}
	g.Logf("tried to evaluate node of unknown kind %v", expr.Kind)
	return False()
}

// symbolValue converts a symbol to the value an atom naming it evaluates to.
func symbolValue(sym *Symbol) *Node {
	switch sym.Kind {
	case PropertySymbol, ConstantSymbol:
		return NewInteger(sym.Value)
	case LocalSymbol:
		return sym.Local.Dup()
	case ObjectSymbol:
		return NewObjectRef(sym.Obj)
	case FunctionSymbol:
		return NewFunctionRef(sym.Fn)
	}
	return False()
}

// Run calls the function named by the first element of list with the
// remaining elements as arguments. An empty list evaluates to an empty list.
func (g *Game) Run(locals *SymbolTable, list *Node) *Node {
	if list.Len() == 0 {
		return NewList()
	}
	head := list.Items[0]
	if head.Kind != AtomNode {
		g.Logf("tried to run list, but list did not start with atom: %v", list)
		return False()
	}
	name := head.Text
	sym := g.Symbols.Get(name)
	if sym != nil && sym.Kind == FunctionSymbol {
		return g.Call(sym.Fn, g.evalArgs(locals, list.Items[1:]))
	}
	if b, ok := g.builtins[name]; ok {
		var args []*Node
		if b.autoEval {
			args = g.evalArgs(locals, list.Items[1:])
		} else {
			args = make([]*Node, 0, len(list.Items)-1)
			for _, item := range list.Items[1:] {
				args = append(args, item.Dup())
			}
		}
		return b.fn(g, locals, args)
	}
	if sym != nil {
		g.Logf("tried to run non-function %s", name)
	} else {
		g.Logf("tried to run non-existent function %s", name)
	}
	return False()
}

func (g *Game) evalArgs(locals *SymbolTable, src []*Node) []*Node {
	args := make([]*Node, 0, len(src))
	for _, item := range src {
		args = append(args, g.Evaluate(locals, item))
	}
	return args
}

// Call invokes a user function with already evaluated arguments. Parameters
// without a corresponding argument are bound to 0. The result is the value of
// the last statement of the body, or 0 for an empty body.
func (g *Game) Call(fn *Function, args []*Node) *Node {
	if g.depth >= MaxCallDepth {
		g.Logf("%s: call depth exceeded", fn.Name)
		return False()
	}
	g.depth++
	defer func() { g.depth-- }()

	locals := NewSymbolTable()
	for i, p := range fn.Params {
		if i < len(args) {
			locals.Add(&Symbol{Name: p, Kind: LocalSymbol, Local: args[i]})
		} else {
			locals.Add(&Symbol{Name: p, Kind: ConstantSymbol, Value: 0})
		}
	}
	result := False()
	for _, stmt := range fn.Body {
		result = g.Evaluate(locals, stmt)
	}
	return result
}

// CallNamed calls the user function with the given name. It returns false if
// no such function exists.
func (g *Game) CallNamed(name string, args ...*Node) (*Node, bool) {
	sym := g.Symbols.Get(name)
	if sym == nil || sym.Kind != FunctionSymbol {
		return nil, false
	}
	return g.Call(sym.Fn, args), true
}
