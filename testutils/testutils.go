// Package testutils provides utilities for testing games and scripts in Go.
package testutils

import (
	"strings"
	"testing"

	"github.com/zephyrtronium/ifparse"
)

// Recorder is an Output that keeps everything written to it.
type Recorder struct {
	buf strings.Builder
	// Emphasis counts calls to EmphasisOn.
	Emphasis int
}

// Write records text.
func (r *Recorder) Write(text string) {
	r.buf.WriteString(text)
}

// EmphasisOn counts an emphasis.
func (r *Recorder) EmphasisOn() {
	r.Emphasis++
}

// EmphasisOff does nothing.
func (r *Recorder) EmphasisOff() {}

// String returns everything written since the last reset.
func (r *Recorder) String() string {
	return r.buf.String()
}

// Reset discards recorded output.
func (r *Recorder) Reset() {
	r.buf.Reset()
	r.Emphasis = 0
}

// NewGame creates a game printing to a Recorder and loads source into it.
// The test fails immediately if the source does not load.
func NewGame(t testing.TB, source string) (*ifparse.Game, *Recorder) {
	t.Helper()
	rec := &Recorder{}
	g := ifparse.NewGame(ifparse.Config{Out: rec})
	if err := g.Load(ifparse.Source{Name: t.Name(), Text: source}); err != nil {
		t.Fatalf("could not load world: %v", err)
	}
	return g, rec
}

// CheckBuiltins checks that a new game has each of the named builtins.
func CheckBuiltins(t *testing.T, names []string) {
	t.Helper()
	g := ifparse.NewGame(ifparse.Config{Out: &Recorder{}})
	for _, name := range names {
		if !g.HasBuiltin(name) {
			t.Errorf("no builtin %s", name)
		}
	}
}

// TestWorld is a small world with two rooms, the player, and an apple. The
// player starts in Room A; the apple is in Room B, to the north.
const TestWorld = `
(constant take 1)
(constant drop 2)
(constant north 3)
(constant south 4)
(constant look 5)
(constant inventory 6)
(constant quit 7)

(object gameinfo - player player intro "Welcome to the test world.")
(object room-a - name "Room A" description "A bare room. An exit leads north." north room-b)
(object room-b - name "Room B" description "Another bare room." south room-a)
(object player room-a name "yourself" is-proper 1 vocab (<me> <myself>))
(object apple room-b name "apple" vocab (<apple> <red>))

(action take (<take> <get>) noun)
(action drop <drop> noun)
(action north (<north> <n>))
(action south (<south> <s>))
(action look (<look> <l>))
(action inventory (<inventory> <i>))
(action quit (<quit> <q>))

(function print-location (loc)
	(emphasis) (say-name loc) (normal)
	(say "\n" (prop-get loc #description) "\n"))

(function take-sub (obj)
	(if (eq obj (player))
		(say "You can't take yourself.\n")
		(if (contains (player) obj)
			(say "You already have that.\n")
			(do (object-move obj (player)) (say "Taken.\n")))))

(function drop-sub (obj)
	(if (contains (player) obj)
		(do (object-move obj (parent (player))) (say "Dropped.\n"))
		(say "You don't have that.\n")))

(function go (dir)
	(set dest (prop-get (parent (player)) dir))
	(if dest
		(do (object-move (player) dest) (print-location dest))
		(say "You can't go that way.\n")))

(function north-sub () (go #north))
(function south-sub () (go #south))
(function look-sub () (print-location (parent (player))))

(function inventory-sub ()
	(if (child (player))
		(do (say "You are carrying:\n") (list-inventory (player)))
		(say "You are empty-handed.\n")))

(function quit-sub () (say "Goodbye.\n") (request-quit))
`

// A CommandTestCase is a line of player input and a predicate to check the
// output it produces.
type CommandTestCase struct {
	// Input is the line of player input.
	Input string
	// Pass is a predicate taking the recorded output and the game after the
	// input is processed. If Pass returns false, then the test fails.
	Pass func(out string, g *ifparse.Game) bool
}

// TestFunc returns a test function for the test case. The recorder is reset
// before the input is processed.
func (c CommandTestCase) TestFunc(g *ifparse.Game, rec *Recorder) func(*testing.T) {
	return func(t *testing.T) {
		rec.Reset()
		g.Step(c.Input)
		if out := rec.String(); !c.Pass(out, g) {
			t.Errorf("%q produced wrong result; output was:\n%s", c.Input, out)
		}
	}
}

// PassOutput returns a Pass function for a CommandTestCase that predicates on
// the output being exactly want.
func PassOutput(want string) func(string, *ifparse.Game) bool {
	return func(out string, g *ifparse.Game) bool {
		return out == want
	}
}

// PassContains returns a Pass function for a CommandTestCase that predicates
// on the output containing want.
func PassContains(want string) func(string, *ifparse.Game) bool {
	return func(out string, g *ifparse.Game) bool {
		return strings.Contains(out, want)
	}
}

// PassQuit returns a Pass function for a CommandTestCase that predicates on
// the game having quit.
func PassQuit() func(string, *ifparse.Game) bool {
	return func(out string, g *ifparse.Game) bool {
		return g.Done()
	}
}

// A SourceTestCase is a script expression and a predicate to check its value.
type SourceTestCase struct {
	// Source is the script source code to evaluate.
	Source string
	// Pass is a predicate taking the result of evaluating Source. If Pass
	// returns false, then the test fails.
	Pass func(result *ifparse.Node) bool
}

// TestFunc returns a test function for the test case, evaluating the source
// in g.
func (c SourceTestCase) TestFunc(g *ifparse.Game) func(*testing.T) {
	return func(t *testing.T) {
		r, err := g.Eval(c.Source)
		if err != nil {
			t.Fatalf("could not evaluate %q: %v", c.Source, err)
		}
		if !c.Pass(r) {
			t.Errorf("%q produced wrong result; got %v", c.Source, r)
		}
	}
}

// PassEqual returns a Pass function for a SourceTestCase that predicates on
// structural equality with want.
func PassEqual(want *ifparse.Node) func(*ifparse.Node) bool {
	return func(result *ifparse.Node) bool {
		return want.Equal(result)
	}
}

// PassKind returns a Pass function for a SourceTestCase that predicates on
// the kind of the result.
func PassKind(want ifparse.NodeKind) func(*ifparse.Node) bool {
	return func(result *ifparse.Node) bool {
		return result.Kind == want
	}
}
