package internal_test

import (
	"strings"
	"testing"

	"github.com/zephyrtronium/ifparse"
	. "github.com/zephyrtronium/ifparse/testutils"
)

// TestPlayApple plays through the test world. The steps depend on each other,
// so they run in order on one game.
func TestPlayApple(t *testing.T) {
	g, rec := NewGame(t, TestWorld)
	apple := objectNamed(t, g, "apple")
	steps := []CommandTestCase{
		{Input: "take apple", Pass: PassOutput("Not visible.\n")},
		{Input: "north", Pass: PassOutput("Room B\nAnother bare room.\n")},
		{Input: "take apple", Pass: func(out string, g *ifparse.Game) bool {
			return out == "Taken.\n" && g.World.Parent(apple) == g.Player
		}},
		{Input: "take apple", Pass: PassOutput("You already have that.\n")},
		{Input: "i", Pass: PassOutput("You are carrying:\n    an apple\n")},
		{Input: "drop red apple", Pass: func(out string, g *ifparse.Game) bool {
			return out == "Dropped.\n" && g.World.Parent(apple) == objectNamed(t, g, "room-b")
		}},
		{Input: "take me", Pass: PassOutput("You can't take yourself.\n")},
		{Input: "north", Pass: PassOutput("You can't go that way.\n")},
		{Input: "s", Pass: PassContains("Room A")},
		{Input: "look", Pass: PassOutput("Room A\nA bare room. An exit leads north.\n")},
		{Input: "inventory", Pass: PassOutput("You are empty-handed.\n")},
		{Input: "eat apple", Pass: PassOutput("Unknown word 'eat'.\n")},
		{Input: "apple", Pass: PassOutput("Unrecognized verb 'apple'.\n")},
		{Input: "   ", Pass: PassOutput("Pardon?\n")},
		{Input: "quit", Pass: func(out string, g *ifparse.Game) bool {
			return out == "Goodbye.\n" && g.Done()
		}},
	}
	for _, c := range steps {
		t.Run(c.Input, c.TestFunc(g, rec))
	}
}

func TestPlayChained(t *testing.T) {
	g, rec := NewGame(t, TestWorld)
	apple := objectNamed(t, g, "apple")
	steps := []CommandTestCase{
		{Input: "north then take apple", Pass: func(out string, g *ifparse.Game) bool {
			return out == "Room B\nAnother bare room.\nTaken.\n" && g.World.Parent(apple) == g.Player
		}},
		{Input: "south. drop apple. north", Pass: PassOutput("Room A\nA bare room. An exit leads north.\nDropped.\nRoom B\nAnother bare room.\n")},
		{Input: "take apple then take pebble then north", Pass: PassOutput("Not visible.\n")},
		{Input: "look then xyzzy then north", Pass: PassOutput("Room B\nAnother bare room.\nUnknown word 'xyzzy'.\n")},
		{Input: "south now", Pass: PassOutput("Unrecognized verb 'south'.\n")},
		{Input: "take", Pass: PassOutput("Unrecognized verb 'take'.\n")},
		{Input: "look then quit then look", Pass: func(out string, g *ifparse.Game) bool {
			return out == "Room B\nAnother bare room.\nGoodbye.\n" && g.Done()
		}},
	}
	for _, c := range steps {
		t.Run(c.Input, c.TestFunc(g, rec))
	}
}

func TestPlayStart(t *testing.T) {
	g, rec := NewGame(t, TestWorld)
	if err := g.Start(); err != nil {
		t.Fatal(err)
	}
	want := "Welcome to the test world.\nRoom A\nA bare room. An exit leads north.\n"
	if rec.String() != want {
		t.Errorf("wrong start: want %q, got %q", want, rec.String())
	}
	if rec.Emphasis != 1 {
		t.Errorf("location name emphasized %d times", rec.Emphasis)
	}
	if err := ifparse.NewGame(ifparse.Config{Out: &Recorder{}}).Start(); err == nil {
		t.Errorf("unloaded game started")
	}
}

func TestPlayDefaultLook(t *testing.T) {
	g, rec := NewGame(t, minimal+`(object hall - name "Hall" description "It is a hall.")
(object me hall)`)
	g.Player = objectNamed(t, g, "me")
	g.Look()
	if got := rec.String(); got != "Hall\nIt is a hall.\n" {
		t.Errorf("wrong default look: %q", got)
	}
}

func TestPlayDispatch(t *testing.T) {
	const world = minimal + `
(constant wave 5)
(object stick player name "stick" vocab (<stick>))
(action wave <wave> noun)
(action 7 <jump>)
(action 8 <sing>)
(action 9 <echo> any)
(function wave-sub (obj) (say "You wave " obj ".\n"))
(function do-action (code a b)
	(if (eq code 7)
		(say "Jumping.\n")
		(if (eq code 9)
			(say "You said " (word 1) ".\n")
			(say "Action " code ".\n"))))
`
	g, rec := NewGame(t, world)
	steps := []CommandTestCase{
		{Input: "wave stick", Pass: PassOutput("You wave a stick.\n")},
		{Input: "jump", Pass: PassOutput("Jumping.\n")},
		{Input: "sing", Pass: PassOutput("Action 8.\n")},
		{Input: "echo stick", Pass: PassOutput("You said stick.\n")},
		{Input: "echo plugh", Pass: PassOutput("You said plugh.\n")},
	}
	for _, c := range steps {
		t.Run(c.Input, c.TestFunc(g, rec))
	}
}

func TestPlayUnhandled(t *testing.T) {
	g, rec := NewGame(t, minimal+`(action 3 <sing>)`)
	CommandTestCase{Input: "sing", Pass: PassOutput("Unhandled action #3.\n")}.TestFunc(g, rec)(t)
	if !g.Step("sing") {
		t.Errorf("Step reported quit")
	}
}

func TestPlayWordBuiltin(t *testing.T) {
	g, rec := NewGame(t, minimal+`
(action 1 <check> any)
(function do-action (code a b)
	(if (eq (word 1) <check>) (say "same") (say "different")))
`)
	g.Step("check check")
	if rec.String() != "same" {
		t.Errorf("known word from input not equal to vocab literal: %q", rec.String())
	}
	rec.Reset()
	g.Step("check zork")
	if rec.String() != "different" {
		t.Errorf("unknown word equal to vocab literal: %q", rec.String())
	}
}

func TestPlayLogToConfig(t *testing.T) {
	var logs strings.Builder
	rec := &Recorder{}
	g := ifparse.NewGame(ifparse.Config{Out: rec, Log: &logs})
	if err := g.Load(ifparse.Source{Name: "log", Text: TestWorld}); err != nil {
		t.Fatal(err)
	}
	if _, err := g.Eval(`(no-such-function)`); err != nil {
		t.Fatal(err)
	}
	if rec.String() != "" {
		t.Errorf("diagnostic written to output: %q", rec.String())
	}
	if !strings.Contains(logs.String(), "no-such-function") {
		t.Errorf("diagnostic not logged: %q", logs.String())
	}
}
