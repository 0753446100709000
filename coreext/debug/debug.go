// Package debug provides builtins for inspecting a game's world, symbols, and
// vocabulary from scripts.
package debug

import (
	"fmt"
	"sort"

	"github.com/zephyrtronium/ifparse"
	"github.com/zephyrtronium/ifparse/internal"

	"github.com/davecgh/go-spew/spew"
)

// Config is the spew configuration used for dumps.
var Config = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func init() {
	internal.Register(initDebug)
}

func initDebug(g *ifparse.Game) {
	g.Define("dump-object", true, dumpObject)
	g.Define("dump-symbols", true, dumpSymbols)
	g.Define("vocab", true, vocab)
}

// An ObjectDump is the printed form of an object.
type ObjectDump struct {
	ID         ifparse.ObjectID
	Name       string
	Parent     ifparse.ObjectID
	Children   []ifparse.ObjectID
	Properties map[string]interface{}
}

// propertyNames maps property numbers to their names.
func propertyNames(g *ifparse.Game) map[int]string {
	names := make(map[int]string)
	g.Symbols.Each(func(sym *internal.Symbol) {
		if sym.Kind == internal.PropertySymbol {
			names[sym.Value] = sym.Name
		}
	})
	return names
}

// plain converts a property value to a Go value for dumping.
func plain(v internal.Value) interface{} {
	switch v.Kind {
	case internal.IntegerValue:
		return v.Int
	case internal.StringValue:
		return v.Str
	case internal.ObjectValue:
		return v.Obj
	case internal.ArrayValue:
		r := make([]interface{}, len(v.Array))
		for i, e := range v.Array {
			r[i] = plain(e)
		}
		return r
	}
	return nil
}

// Dump creates the printed form of an object, or nil if there is no such
// object.
func Dump(g *ifparse.Game, id ifparse.ObjectID) *ObjectDump {
	obj := g.World.Object(id)
	if obj == nil {
		return nil
	}
	names := propertyNames(g)
	d := ObjectDump{
		ID:         id,
		Name:       g.Name(id, false),
		Parent:     g.World.Parent(id),
		Children:   g.World.Children(id),
		Properties: make(map[string]interface{}),
	}
	for _, p := range obj.Properties() {
		name, ok := names[p.ID]
		if !ok {
			name = fmt.Sprintf("#%d", p.ID)
		}
		d.Properties[name] = plain(p.Value)
	}
	return &d
}

// dumpObject is a builtin.
//
// dumpObject prints the tree links and properties of an object.
func dumpObject(g *ifparse.Game, locals *ifparse.SymbolTable, args []*ifparse.Node) *ifparse.Node {
	if len(args) != 1 || args[0].Kind != ifparse.ObjectNode {
		g.Logf("dump-object: requires 1 object argument")
		return ifparse.False()
	}
	d := Dump(g, args[0].Obj)
	if d == nil {
		g.Logf("dump-object: argument 1 refers to no object")
		return ifparse.False()
	}
	g.Out.Write(Config.Sdump(d))
	return ifparse.True()
}

// dumpSymbols is a builtin.
//
// dumpSymbols prints every global symbol with its kind, sorted by name. It
// returns the number of symbols.
func dumpSymbols(g *ifparse.Game, locals *ifparse.SymbolTable, args []*ifparse.Node) *ifparse.Node {
	var syms []string
	g.Symbols.Each(func(sym *internal.Symbol) {
		syms = append(syms, sym.Name+" "+sym.Kind.String())
	})
	sort.Strings(syms)
	g.Out.Write(Config.Sdump(syms))
	return ifparse.NewInteger(len(syms))
}

// vocab is a builtin.
//
// vocab prints each vocabulary word with its word number and returns the
// number of words.
func vocab(g *ifparse.Game, locals *ifparse.SymbolTable, args []*ifparse.Node) *ifparse.Node {
	words := g.Vocab.Words()
	for i, w := range words {
		g.Out.Write(fmt.Sprintf("%d: %s\n", i, w))
	}
	return ifparse.NewInteger(len(words))
}
