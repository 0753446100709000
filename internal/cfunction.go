package internal

import "fmt"

// coreBuiltins lists the builtins installed in every game. Extensions add
// more with Game.Define.
var coreBuiltins = []builtin{
	// builtin_math.go
	{"add", true, builtinAdd},
	{"sub", true, builtinSub},
	{"mul", true, builtinMul},
	{"div", true, builtinDiv},
	{"mod", true, builtinMod},
	{"lt", true, builtinLt},
	{"gt", true, builtinGt},
	{"eq", true, builtinEq},
	{"not", true, builtinNot},
	{"and", false, builtinAnd},
	{"or", false, builtinOr},

	// builtin_list.go
	{"quote", false, builtinQuote},
	{"if", false, builtinIf},
	{"set", false, builtinSet},
	{"log", false, builtinLog},
	{"do", true, builtinDo},
	{"call", true, builtinCall},
	{"list", true, builtinList},
	{"first", true, builtinFirst},
	{"rest", true, builtinRest},
	{"length", true, builtinLength},
	{"nth", true, builtinNth},
	{"is-object", true, isKind(ObjectNode)},
	{"is-string", true, isKind(StringNode)},
	{"is-number", true, isKind(IntegerNode)},
	{"is-function", true, isKind(FunctionNode)},
	{"is-list", true, isKind(ListNode)},
	{"type-name", true, builtinTypeName},

	// builtin_object.go
	{"prop-get", true, builtinPropGet},
	{"prop-set", true, builtinPropSet},
	{"prop-has", true, builtinPropHas},
	{"prop-true", true, builtinPropTrue},
	{"parent", true, builtinParent},
	{"sibling", true, builtinSibling},
	{"child", true, builtinChild},
	{"contains", true, builtinContains},
	{"indirectly-contains", true, builtinIndirectlyContains},
	{"object-move", true, builtinObjectMove},
	{"player", true, builtinPlayer},
	{"word", true, builtinWord},

	// builtin_output.go
	{"say", true, builtinSay},
	{"say-name", true, builtinSayName},
	{"emphasis", true, builtinEmphasis},
	{"normal", true, builtinNormal},
	{"list-contents", true, builtinListContents},
	{"list-inventory", true, builtinListInventory},
	{"request-quit", true, builtinRequestQuit},
}

// argError reports a builtin called with bad arguments and returns false.
func argError(g *Game, name, format string, args ...interface{}) *Node {
	g.Logf("%s: %s", name, fmt.Sprintf(format, args...))
	return False()
}

// checkCount verifies that a builtin received between min and max arguments.
// A negative max means no upper bound.
func checkCount(g *Game, name string, args []*Node, min, max int) bool {
	if len(args) < min || max >= 0 && len(args) > max {
		switch {
		case min == max:
			argError(g, name, "requires %d arguments, got %d", min, len(args))
		case max < 0:
			argError(g, name, "requires at least %d arguments, got %d", min, len(args))
		default:
			argError(g, name, "requires %d to %d arguments, got %d", min, max, len(args))
		}
		return false
	}
	return true
}

// objectArg gets argument i as a valid object reference.
func objectArg(g *Game, name string, args []*Node, i int) (*Object, bool) {
	a := args[i]
	if a.Kind != ObjectNode {
		argError(g, name, "argument %d must be object, not %v", i+1, a.Kind)
		return nil, false
	}
	obj := g.World.Object(a.Obj)
	if obj == nil {
		argError(g, name, "argument %d refers to no object", i+1)
		return nil, false
	}
	return obj, true
}

// intArg gets argument i as an integer.
func intArg(g *Game, name string, args []*Node, i int) (int, bool) {
	a := args[i]
	if a.Kind != IntegerNode {
		argError(g, name, "argument %d must be integer, not %v", i+1, a.Kind)
		return 0, false
	}
	return a.Num, true
}

// valueNode converts a property value to a script value.
func valueNode(v Value) *Node {
	switch v.Kind {
	case IntegerValue:
		return NewInteger(v.Int)
	case StringValue:
		return NewString(v.Str)
	case ObjectValue:
		if v.Obj == NoObject {
			return False()
		}
		return NewObjectRef(v.Obj)
	case ArrayValue:
		l := NewList()
		for _, e := range v.Array {
			l.Add(valueNode(e))
		}
		return l
	}
	return False()
}

// nodeValue converts a script value to a property value. Atoms, functions, and
// lists nested inside lists cannot be stored.
func nodeValue(n *Node, nested bool) (Value, error) {
	switch n.Kind {
	case IntegerNode, VocabNode:
		return IntValue(n.Num), nil
	case StringNode:
		return StrValue(n.Text), nil
	case ObjectNode:
		return ObjValue(n.Obj), nil
	case ListNode:
		if nested {
			return Value{}, fmt.Errorf("nested lists are not permitted in object properties")
		}
		elems := make([]Value, 0, len(n.Items))
		for _, item := range n.Items {
			v, err := nodeValue(item, true)
			if err != nil {
				return Value{}, err
			}
			elems = append(elems, v)
		}
		return ArrValue(elems), nil
	}
	return Value{}, fmt.Errorf("%v values cannot be stored in properties", n.Kind)
}
