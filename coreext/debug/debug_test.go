package debug_test

import (
	"strings"
	"testing"

	"github.com/zephyrtronium/ifparse"
	"github.com/zephyrtronium/ifparse/coreext/debug"
	"github.com/zephyrtronium/ifparse/testutils"
)

func TestRegister(t *testing.T) {
	testutils.CheckBuiltins(t, []string{"dump-object", "dump-symbols", "vocab"})
}

func TestDump(t *testing.T) {
	g, _ := testutils.NewGame(t, testutils.TestWorld)
	apple := g.Symbols.Get("apple").Obj
	d := debug.Dump(g, apple)
	if d == nil {
		t.Fatal("no dump for apple")
	}
	if d.Name != "apple" || d.Parent != g.Symbols.Get("room-b").Obj || len(d.Children) != 0 {
		t.Errorf("wrong dump: %+v", d)
	}
	if d.Properties["#name"] != "apple" {
		t.Errorf("wrong #name in dump: %v", d.Properties["#name"])
	}
	if words, ok := d.Properties["#vocab"].([]interface{}); !ok || len(words) != 2 {
		t.Errorf("wrong #vocab in dump: %v", d.Properties["#vocab"])
	}
	if debug.Dump(g, ifparse.NoObject) != nil {
		t.Errorf("dump of no object")
	}
}

func TestDumpBuiltins(t *testing.T) {
	cases := map[string]struct {
		src  string
		pass func(*ifparse.Node) bool
		out  []string
	}{
		"Object": {
			src:  `(dump-object apple)`,
			pass: testutils.PassEqual(ifparse.True()),
			out:  []string{"ObjectDump", `Name: (string) (len=5) "apple"`, `"#name"`},
		},
		"Object-bad": {
			src:  `(dump-object 1)`,
			pass: testutils.PassEqual(ifparse.False()),
			out:  []string{"requires 1 object argument"},
		},
		"Symbols": {
			src:  `(dump-symbols)`,
			pass: testutils.PassKind(ifparse.IntegerNode),
			out:  []string{"apple object", "take constant", "go function", "#name property"},
		},
		"Vocab": {
			src:  `(vocab)`,
			pass: testutils.PassEqual(ifparse.NewInteger(17)),
			out:  []string{"0: apple\n", ": take\n"},
		},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			g, rec := testutils.NewGame(t, testutils.TestWorld)
			r, err := g.Eval(c.src)
			if err != nil {
				t.Fatal(err)
			}
			if !c.pass(r) {
				t.Errorf("%s returned %v", c.src, r)
			}
			out := rec.String()
			for _, want := range c.out {
				if !strings.Contains(out, want) {
					t.Errorf("%s output lacks %q:\n%s", c.src, want, out)
				}
			}
		})
	}
}
