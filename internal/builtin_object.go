package internal

// propArgs gets the object and property number arguments common to the prop-*
// builtins.
func propArgs(g *Game, name string, args []*Node, min, max int) (*Object, int, bool) {
	if !checkCount(g, name, args, min, max) {
		return nil, 0, false
	}
	obj, ok := objectArg(g, name, args, 0)
	if !ok {
		return nil, 0, false
	}
	pid, ok := intArg(g, name, args, 1)
	if !ok {
		return nil, 0, false
	}
	return obj, pid, true
}

// builtinPropGet returns the value of a property, or false if the object has
// no such property.
func builtinPropGet(g *Game, locals *SymbolTable, args []*Node) *Node {
	obj, pid, ok := propArgs(g, "prop-get", args, 2, 2)
	if !ok {
		return False()
	}
	p := obj.Property(pid)
	if p == nil {
		return False()
	}
	return valueNode(p.Value)
}

// builtinPropSet sets a property to a value. With no value, it deletes the
// property instead.
func builtinPropSet(g *Game, locals *SymbolTable, args []*Node) *Node {
	obj, pid, ok := propArgs(g, "prop-set", args, 2, 3)
	if !ok {
		return False()
	}
	if len(args) == 2 {
		obj.Delete(pid)
		return False()
	}
	v, err := nodeValue(args[2], false)
	if err != nil {
		return argError(g, "prop-set", "%v", err)
	}
	obj.Set(pid, v)
	return args[2]
}

func builtinPropHas(g *Game, locals *SymbolTable, args []*Node) *Node {
	obj, pid, ok := propArgs(g, "prop-has", args, 2, 2)
	if !ok {
		return False()
	}
	return Bool(obj.Property(pid) != nil)
}

// builtinPropTrue tests whether a property is true, with an optional default
// for when the property is missing.
func builtinPropTrue(g *Game, locals *SymbolTable, args []*Node) *Node {
	obj, pid, ok := propArgs(g, "prop-true", args, 2, 3)
	if !ok {
		return False()
	}
	def := false
	if len(args) == 3 {
		def = args[2].IsTrue()
	}
	return Bool(obj.IsTrue(pid, def))
}

// objectResult converts an object id to a reference, or false for no object.
func objectResult(id ObjectID) *Node {
	if id == NoObject {
		return False()
	}
	return NewObjectRef(id)
}

// navigate creates a builtin following one tree link.
func navigate(name string, link func(w *World, id ObjectID) ObjectID) Builtin {
	return func(g *Game, locals *SymbolTable, args []*Node) *Node {
		if !checkCount(g, name, args, 1, 1) {
			return False()
		}
		obj, ok := objectArg(g, name, args, 0)
		if !ok {
			return False()
		}
		return objectResult(link(g.World, obj.ID))
	}
}

var (
	builtinParent  = navigate("parent", (*World).Parent)
	builtinSibling = navigate("sibling", (*World).Sibling)
	builtinChild   = navigate("child", (*World).FirstChild)
)

// relation creates a builtin testing a relationship between two objects.
func relation(name string, rel func(w *World, a, b ObjectID) bool) Builtin {
	return func(g *Game, locals *SymbolTable, args []*Node) *Node {
		if !checkCount(g, name, args, 2, 2) {
			return False()
		}
		a, ok := objectArg(g, name, args, 0)
		if !ok {
			return False()
		}
		b, ok := objectArg(g, name, args, 1)
		if !ok {
			return False()
		}
		return Bool(rel(g.World, a.ID, b.ID))
	}
}

var (
	builtinContains           = relation("contains", (*World).Contains)
	builtinIndirectlyContains = relation("indirectly-contains", (*World).ContainsIndirect)
)

// builtinObjectMove moves an object into a new parent. The result is true if
// the object is in the new parent afterward.
func builtinObjectMove(g *Game, locals *SymbolTable, args []*Node) *Node {
	if !checkCount(g, "object-move", args, 2, 2) {
		return False()
	}
	obj, ok := objectArg(g, "object-move", args, 0)
	if !ok {
		return False()
	}
	dest, ok := objectArg(g, "object-move", args, 1)
	if !ok {
		return False()
	}
	g.World.Move(obj.ID, dest.ID)
	return Bool(g.World.Parent(obj.ID) == dest.ID)
}

func builtinPlayer(g *Game, locals *SymbolTable, args []*Node) *Node {
	return objectResult(g.Player)
}

// builtinWord returns word n of the command being processed.
func builtinWord(g *Game, locals *SymbolTable, args []*Node) *Node {
	if !checkCount(g, "word", args, 1, 1) {
		return False()
	}
	n, ok := intArg(g, "word", args, 0)
	if !ok {
		return False()
	}
	if n < 0 || n >= len(g.input) {
		return False()
	}
	w := g.input[n]
	if w.Num < 0 {
		// Unknown words keep their text so that say can print them.
		return &Node{Kind: VocabNode, Text: w.Text, Num: w.Num}
	}
	return &Node{Kind: VocabNode, Num: w.Num}
}
