package internal

// intArgs checks that every argument is an integer.
func intArgs(g *Game, name string, args []*Node) ([]int, bool) {
	r := make([]int, len(args))
	for i, a := range args {
		if a.Kind != IntegerNode {
			argError(g, name, "requires integer arguments")
			return nil, false
		}
		r[i] = a.Num
	}
	return r, true
}

// fold combines integer arguments left to right. If first is true, the first
// argument is the initial accumulator; otherwise init is.
func fold(g *Game, name string, args []*Node, init int, first bool, op func(acc, x int) (int, bool)) *Node {
	xs, ok := intArgs(g, name, args)
	if !ok {
		return False()
	}
	acc := init
	if first && len(xs) > 0 {
		acc, xs = xs[0], xs[1:]
	}
	for _, x := range xs {
		if acc, ok = op(acc, x); !ok {
			return argError(g, name, "division by zero")
		}
	}
	return NewInteger(acc)
}

func builtinAdd(g *Game, locals *SymbolTable, args []*Node) *Node {
	return fold(g, "add", args, 0, false, func(acc, x int) (int, bool) { return acc + x, true })
}

func builtinSub(g *Game, locals *SymbolTable, args []*Node) *Node {
	return fold(g, "sub", args, 0, true, func(acc, x int) (int, bool) { return acc - x, true })
}

func builtinMul(g *Game, locals *SymbolTable, args []*Node) *Node {
	return fold(g, "mul", args, 1, false, func(acc, x int) (int, bool) { return acc * x, true })
}

func builtinDiv(g *Game, locals *SymbolTable, args []*Node) *Node {
	return fold(g, "div", args, 0, true, func(acc, x int) (int, bool) {
		if x == 0 {
			return 0, false
		}
		return acc / x, true
	})
}

func builtinMod(g *Game, locals *SymbolTable, args []*Node) *Node {
	return fold(g, "mod", args, 0, true, func(acc, x int) (int, bool) {
		if x == 0 {
			return 0, false
		}
		return acc % x, true
	})
}

// compare checks that each integer argument stands in relation to the next.
func compare(g *Game, name string, args []*Node, rel func(a, b int) bool) *Node {
	if !checkCount(g, name, args, 2, -1) {
		return False()
	}
	xs, ok := intArgs(g, name, args)
	if !ok {
		return False()
	}
	for i := 1; i < len(xs); i++ {
		if !rel(xs[i-1], xs[i]) {
			return False()
		}
	}
	return True()
}

func builtinLt(g *Game, locals *SymbolTable, args []*Node) *Node {
	return compare(g, "lt", args, func(a, b int) bool { return a < b })
}

func builtinGt(g *Game, locals *SymbolTable, args []*Node) *Node {
	return compare(g, "gt", args, func(a, b int) bool { return a > b })
}

// builtinEq is true if every argument has the same kind and value as the
// first.
func builtinEq(g *Game, locals *SymbolTable, args []*Node) *Node {
	if !checkCount(g, "eq", args, 2, -1) {
		return False()
	}
	for _, a := range args[1:] {
		if !args[0].Equal(a) {
			return False()
		}
	}
	return True()
}

func builtinNot(g *Game, locals *SymbolTable, args []*Node) *Node {
	if !checkCount(g, "not", args, 1, 1) {
		return False()
	}
	return Bool(!args[0].IsTrue())
}

// builtinAnd evaluates its arguments in order, stopping at the first false
// one. The result is the last value evaluated.
func builtinAnd(g *Game, locals *SymbolTable, args []*Node) *Node {
	r := True()
	for _, a := range args {
		if r = g.Evaluate(locals, a); !r.IsTrue() {
			return r
		}
	}
	return r
}

// builtinOr evaluates its arguments in order, stopping at the first true one.
func builtinOr(g *Game, locals *SymbolTable, args []*Node) *Node {
	for _, a := range args {
		if r := g.Evaluate(locals, a); r.IsTrue() {
			return r
		}
	}
	return False()
}
