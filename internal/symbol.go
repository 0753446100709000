package internal

import (
	"hash/fnv"
	"strconv"
)

// SymbolBuckets is the number of hash buckets in a symbol table.
const SymbolBuckets = 32

// SymbolKind identifies what a symbol names.
type SymbolKind int

// Symbol kinds.
const (
	ObjectSymbol SymbolKind = iota
	PropertySymbol
	ConstantSymbol
	FunctionSymbol
	// LocalSymbol is a binding in a function call's local table.
	LocalSymbol
)

var symbolKindNames = [...]string{"object", "property", "constant", "function", "local"}

func (k SymbolKind) String() string {
	if k < ObjectSymbol || k > LocalSymbol {
		return "symbol(" + strconv.Itoa(int(k)) + ")"
	}
	return symbolKindNames[k]
}

// A Symbol is a named entry in a SymbolTable. Which payload field is
// meaningful depends on Kind.
type Symbol struct {
	Name string
	Kind SymbolKind

	// Value is the id of a property or the value of a constant.
	Value int
	// Obj is the object an ObjectSymbol names.
	Obj ObjectID
	// Fn is the function a FunctionSymbol names.
	Fn *Function
	// Local is the value bound to a LocalSymbol.
	Local *Node

	next *Symbol
}

// A SymbolTable maps names to symbols. The game holds one global table for
// objects, properties, constants, and functions; each function call gets a
// short-lived local table for its parameters and set bindings.
type SymbolTable struct {
	buckets [SymbolBuckets]*Symbol
	n       int
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{}
}

// bucket returns the bucket index for name using 32-bit FNV-1a.
func bucket(name string) int {
	h := fnv.New32a()
	h.Write([]byte(name))
	return int(h.Sum32() % SymbolBuckets)
}

// Add adds sym to the table. If a symbol with the same name already exists,
// it is replaced in place, and a copy of the replaced symbol is returned.
// Otherwise Add returns nil.
func (t *SymbolTable) Add(sym *Symbol) *Symbol {
	b := bucket(sym.Name)
	for cur := t.buckets[b]; cur != nil; cur = cur.next {
		if cur.Name == sym.Name {
			old := *cur
			old.next = nil
			next := cur.next
			*cur = *sym
			cur.next = next
			return &old
		}
	}
	s := *sym
	s.next = t.buckets[b]
	t.buckets[b] = &s
	t.n++
	return nil
}

// Get returns the symbol with the given name, or nil if there is none.
func (t *SymbolTable) Get(name string) *Symbol {
	if t == nil {
		return nil
	}
	for cur := t.buckets[bucket(name)]; cur != nil; cur = cur.next {
		if cur.Name == name {
			return cur
		}
	}
	return nil
}

// Len returns the number of symbols in the table.
func (t *SymbolTable) Len() int {
	if t == nil {
		return 0
	}
	return t.n
}

// Each calls f for each symbol in bucket order.
func (t *SymbolTable) Each(f func(*Symbol)) {
	if t == nil {
		return
	}
	for _, cur := range t.buckets {
		for ; cur != nil; cur = cur.next {
			f(cur)
		}
	}
}

// lookup finds a name in locals, then in globals.
func lookup(locals, globals *SymbolTable, name string) *Symbol {
	if s := locals.Get(name); s != nil {
		return s
	}
	return globals.Get(name)
}
