// Package clock provides builtins reporting the real time to scripts.
package clock

import (
	"time"

	"github.com/zephyrtronium/ifparse"
	"github.com/zephyrtronium/ifparse/internal"

	"gitlab.com/variadico/lctime"
)

// DefaultFormat is the format clock uses when given none.
const DefaultFormat = "%Y-%m-%d %H:%M:%S"

// now is the time source, replaced in tests.
var now = time.Now

func init() {
	internal.Register(initClock)
}

func initClock(g *ifparse.Game) {
	g.Define("clock", true, clock)
	g.Define("elapsed", true, elapsed)
}

// clock is a builtin.
//
// clock returns the current local time as a string, formatted with ANSI C
// strftime directives. See https://godoc.org/github.com/variadico/lctime for
// the full list of supported directives.
func clock(g *ifparse.Game, locals *ifparse.SymbolTable, args []*ifparse.Node) *ifparse.Node {
	format := DefaultFormat
	switch len(args) {
	case 0:
	case 1:
		if args[0].Kind != ifparse.StringNode {
			g.Logf("clock: argument 1 must be string, not %v", args[0].Kind)
			return ifparse.False()
		}
		format = args[0].Text
	default:
		g.Logf("clock: requires 0 to 1 arguments, got %d", len(args))
		return ifparse.False()
	}
	return ifparse.NewString(lctime.Strftime(format, now()))
}

// elapsed is a builtin.
//
// elapsed returns the number of whole seconds since the game was created.
func elapsed(g *ifparse.Game, locals *ifparse.SymbolTable, args []*ifparse.Node) *ifparse.Node {
	if len(args) != 0 {
		g.Logf("elapsed: requires 0 arguments, got %d", len(args))
		return ifparse.False()
	}
	return ifparse.NewInteger(int(now().Sub(g.StartTime) / time.Second))
}
