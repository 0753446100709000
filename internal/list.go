package internal

import (
	"strconv"
	"strings"
)

// NodeKind is the type tag of a Node.
type NodeKind int

// Node kinds.
const (
	// ListNode is a parenthesized sequence of child nodes.
	ListNode NodeKind = iota
	// AtomNode is a bare identifier.
	AtomNode
	// StringNode is a quoted string literal.
	StringNode
	// IntegerNode is an integer literal or computed integer.
	IntegerNode
	// VocabNode is a vocabulary reference. Before the vocabulary is built it
	// carries the word text; afterward it carries the word number.
	VocabNode
	// ObjectNode is a non-owning reference to a world object.
	ObjectNode
	// FunctionNode is a non-owning reference to a user function.
	FunctionNode
)

var nodeKindNames = [...]string{"list", "atom", "string", "integer", "vocab", "object", "function"}

// String returns the script-visible name of the kind, as used by type-name.
func (k NodeKind) String() string {
	if k < ListNode || k > FunctionNode {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
	return nodeKindNames[k]
}

// A Node is a parsed S-expression element and also the runtime value type of
// the script evaluator.
type Node struct {
	Kind NodeKind
	// Text holds the identifier of an atom, the contents of a string, or the
	// unresolved text of a vocab node.
	Text string
	// Num holds an integer value or a resolved word number.
	Num int
	// Obj is the referenced object of an ObjectNode.
	Obj ObjectID
	// Fn is the referenced function of a FunctionNode.
	Fn *Function
	// Items are the children of a ListNode, in source order.
	Items []*Node

	// Source, Line, and Col locate the node in its source text, if it came
	// from one.
	Source    string
	Line, Col int
}

// NewList creates a list node holding items.
func NewList(items ...*Node) *Node {
	return &Node{Kind: ListNode, Items: items}
}

// NewInteger creates an integer node.
func NewInteger(n int) *Node {
	return &Node{Kind: IntegerNode, Num: n}
}

// NewString creates a string node.
func NewString(s string) *Node {
	return &Node{Kind: StringNode, Text: s}
}

// NewAtom creates an atom node.
func NewAtom(s string) *Node {
	return &Node{Kind: AtomNode, Text: s}
}

// NewObjectRef creates a reference to an object.
func NewObjectRef(id ObjectID) *Node {
	return &Node{Kind: ObjectNode, Obj: id}
}

// NewFunctionRef creates a reference to a user function.
func NewFunctionRef(fn *Function) *Node {
	return &Node{Kind: FunctionNode, Fn: fn}
}

// False returns a new false value, the integer 0.
func False() *Node {
	return NewInteger(0)
}

// True returns a new true value, the integer 1.
func True() *Node {
	return NewInteger(1)
}

// Bool converts a Go bool to an integer truth value.
func Bool(b bool) *Node {
	if b {
		return True()
	}
	return False()
}

// Add appends item to the list. Add does nothing if n is not a list or item is
// nil.
func (n *Node) Add(item *Node) {
	if n == nil || item == nil || n.Kind != ListNode {
		return
	}
	n.Items = append(n.Items, item)
}

// Len returns the number of children in a list, or 0 for non-lists.
func (n *Node) Len() int {
	if n == nil || n.Kind != ListNode {
		return 0
	}
	return len(n.Items)
}

// Head returns the first child of a list, or nil if there is none.
func (n *Node) Head() *Node {
	if n.Len() == 0 {
		return nil
	}
	return n.Items[0]
}

// IsAtom reports whether the node is the atom s.
func (n *Node) IsAtom(s string) bool {
	return n != nil && n.Kind == AtomNode && n.Text == s
}

// Dup returns a deep copy of the node. Object and function references are
// copied as references.
func (n *Node) Dup() *Node {
	if n == nil {
		return nil
	}
	r := *n
	if n.Kind == ListNode {
		r.Items = nil
		if n.Items != nil {
			r.Items = make([]*Node, len(n.Items))
			for i, item := range n.Items {
				r.Items[i] = item.Dup()
			}
		}
	}
	return &r
}

// IsTrue reports the truth of a node: lists are true when non-empty, integers
// when nonzero, and all other values are true.
func (n *Node) IsTrue() bool {
	if n == nil {
		return false
	}
	switch n.Kind {
	case ListNode:
		return len(n.Items) != 0
	case IntegerNode:
		return n.Num != 0
	}
	return true
}

// Equal reports whether two nodes have the same kind and the same value.
// Lists compare element-wise.
func (n *Node) Equal(m *Node) bool {
	if n == nil || m == nil {
		return n == m
	}
	if n.Kind != m.Kind {
		return false
	}
	switch n.Kind {
	case ListNode:
		if len(n.Items) != len(m.Items) {
			return false
		}
		for i := range n.Items {
			if !n.Items[i].Equal(m.Items[i]) {
				return false
			}
		}
		return true
	case AtomNode, StringNode:
		return n.Text == m.Text
	case IntegerNode:
		return n.Num == m.Num
	case VocabNode:
		return n.Num == m.Num && n.Text == m.Text
	case ObjectNode:
		return n.Obj == m.Obj
	case FunctionNode:
		return n.Fn == m.Fn
	}
	return false
}

// String renders the node in source syntax. Resolved vocab nodes render as
// <#N>, and references render as object#N or function:name, neither of which
// can be read back.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	if n == nil {
		b.WriteString("()")
		return
	}
	switch n.Kind {
	case ListNode:
		b.WriteByte('(')
		for i, item := range n.Items {
			if i > 0 {
				b.WriteByte(' ')
			}
			item.write(b)
		}
		b.WriteByte(')')
	case AtomNode:
		b.WriteString(n.Text)
	case StringNode:
		b.WriteByte('"')
		for _, r := range n.Text {
			switch r {
			case '\n':
				b.WriteString(`\n`)
			case '"':
				b.WriteString(`\"`)
			case '\\':
				b.WriteString(`\\`)
			default:
				b.WriteRune(r)
			}
		}
		b.WriteByte('"')
	case IntegerNode:
		b.WriteString(strconv.Itoa(n.Num))
	case VocabNode:
		b.WriteByte('<')
		if n.Text != "" {
			b.WriteString(n.Text)
		} else {
			b.WriteByte('#')
			b.WriteString(strconv.Itoa(n.Num))
		}
		b.WriteByte('>')
	case ObjectNode:
		b.WriteString("object#")
		b.WriteString(strconv.Itoa(int(n.Obj)))
	case FunctionNode:
		b.WriteString("function:")
		if n.Fn != nil {
			b.WriteString(n.Fn.Name)
		}
	default:
		b.WriteString("[")
		b.WriteString(n.Kind.String())
		b.WriteString("]")
	}
}
