package internal_test

import (
	"strings"
	"testing"

	"github.com/zephyrtronium/ifparse"
	. "github.com/zephyrtronium/ifparse/testutils"
)

// TestCoreBuiltins tests that every game has the builtins scripts rely on.
func TestCoreBuiltins(t *testing.T) {
	CheckBuiltins(t, []string{
		"add", "sub", "mul", "div", "mod", "lt", "gt", "eq", "not", "and", "or",
		"quote", "if", "set", "log", "do", "call", "list", "first", "rest",
		"length", "nth", "is-object", "is-string", "is-number", "is-function",
		"is-list", "type-name",
		"prop-get", "prop-set", "prop-has", "prop-true", "parent", "sibling",
		"child", "contains", "indirectly-contains", "object-move", "player",
		"word",
		"say", "say-name", "emphasis", "normal", "list-contents",
		"list-inventory", "request-quit",
	})
}

func TestEvalMath(t *testing.T) {
	g, _ := NewGame(t, TestWorld)
	cases := map[string]SourceTestCase{
		"Add":         {Source: `(add 1 2 3)`, Pass: PassEqual(ifparse.NewInteger(6))},
		"Add-none":    {Source: `(add)`, Pass: PassEqual(ifparse.NewInteger(0))},
		"Sub":         {Source: `(sub 10 3 2)`, Pass: PassEqual(ifparse.NewInteger(5))},
		"Sub-one":     {Source: `(sub 5)`, Pass: PassEqual(ifparse.NewInteger(5))},
		"Mul":         {Source: `(mul 2 3 4)`, Pass: PassEqual(ifparse.NewInteger(24))},
		"Div":         {Source: `(div 20 2 5)`, Pass: PassEqual(ifparse.NewInteger(2))},
		"Div-zero":    {Source: `(div 1 0)`, Pass: PassEqual(ifparse.False())},
		"Mod":         {Source: `(mod 17 5)`, Pass: PassEqual(ifparse.NewInteger(2))},
		"Mod-zero":    {Source: `(mod 17 0)`, Pass: PassEqual(ifparse.False())},
		"Nested":      {Source: `(add (mul 2 3) (sub 4 1))`, Pass: PassEqual(ifparse.NewInteger(9))},
		"Add-string":  {Source: `(add 1 "2")`, Pass: PassEqual(ifparse.False())},
		"Lt":          {Source: `(lt 1 2 3)`, Pass: PassEqual(ifparse.True())},
		"Lt-false":    {Source: `(lt 1 3 2)`, Pass: PassEqual(ifparse.False())},
		"Lt-one":      {Source: `(lt 1)`, Pass: PassEqual(ifparse.False())},
		"Gt":          {Source: `(gt 3 2)`, Pass: PassEqual(ifparse.True())},
		"Gt-equal":    {Source: `(gt 2 2)`, Pass: PassEqual(ifparse.False())},
		"Eq":          {Source: `(eq 1 1 1)`, Pass: PassEqual(ifparse.True())},
		"Eq-kinds":    {Source: `(eq 1 "1")`, Pass: PassEqual(ifparse.False())},
		"Eq-strings":  {Source: `(eq "a" "a")`, Pass: PassEqual(ifparse.True())},
		"Eq-lists":    {Source: `(eq (quote (a 1)) (quote (a 1)))`, Pass: PassEqual(ifparse.True())},
		"Eq-objects":  {Source: `(eq apple apple)`, Pass: PassEqual(ifparse.True())},
		"Eq-distinct": {Source: `(eq apple player)`, Pass: PassEqual(ifparse.False())},
		"Not-zero":    {Source: `(not 0)`, Pass: PassEqual(ifparse.True())},
		"Not-string":  {Source: `(not "")`, Pass: PassEqual(ifparse.False())},
		"Not-empty":   {Source: `(not (list))`, Pass: PassEqual(ifparse.True())},
		"And":         {Source: `(and 1 2 3)`, Pass: PassEqual(ifparse.NewInteger(3))},
		"And-short":   {Source: `(and 1 0 (no-such-function))`, Pass: PassEqual(ifparse.False())},
		"And-none":    {Source: `(and)`, Pass: PassEqual(ifparse.True())},
		"Or":          {Source: `(or 0 5 (no-such-function))`, Pass: PassEqual(ifparse.NewInteger(5))},
		"Or-false":    {Source: `(or 0 0)`, Pass: PassEqual(ifparse.False())},
	}
	for name, c := range cases {
		t.Run(name, c.TestFunc(g))
	}
}

func TestEvalControl(t *testing.T) {
	g, _ := NewGame(t, TestWorld)
	cases := map[string]SourceTestCase{
		"If-then":      {Source: `(if 1 2 3)`, Pass: PassEqual(ifparse.NewInteger(2))},
		"If-else":      {Source: `(if 0 2 3)`, Pass: PassEqual(ifparse.NewInteger(3))},
		"If-no-else":   {Source: `(if 0 2)`, Pass: PassEqual(ifparse.False())},
		"If-lazy":      {Source: `(if 1 4 (no-such-function))`, Pass: PassEqual(ifparse.NewInteger(4))},
		"Set":          {Source: `(do (set x 5) (add x 1))`, Pass: PassEqual(ifparse.NewInteger(6))},
		"Set-result":   {Source: `(set y "v")`, Pass: PassEqual(ifparse.NewString("v"))},
		"Do":           {Source: `(do 1 2 3)`, Pass: PassEqual(ifparse.NewInteger(3))},
		"Do-none":      {Source: `(do)`, Pass: PassEqual(ifparse.False())},
		"Quote-none":   {Source: `(quote)`, Pass: PassEqual(ifparse.NewList())},
		"Quote-list":   {Source: `(quote (add 1 2))`, Pass: PassKind(ifparse.ListNode)},
		"Quote-atom":   {Source: `(quote apple)`, Pass: PassKind(ifparse.AtomNode)},
		"Quote-many":   {Source: `(length (quote a b c))`, Pass: PassEqual(ifparse.NewInteger(3))},
		"Empty":        {Source: `()`, Pass: PassEqual(ifparse.NewList())},
		"Undefined":    {Source: `(no-such-function 1)`, Pass: PassEqual(ifparse.False())},
		"Not-function": {Source: `(apple)`, Pass: PassEqual(ifparse.False())},
		"Constant":     {Source: `(add take quit)`, Pass: PassEqual(ifparse.NewInteger(8))},
		"Call":         {Source: `(call take-sub player)`, Pass: PassEqual(ifparse.False())},
		"Call-bad":     {Source: `(call 1)`, Pass: PassEqual(ifparse.False())},
		"Function-ref": {Source: `(do go)`, Pass: PassKind(ifparse.FunctionNode)},
	}
	for name, c := range cases {
		t.Run(name, c.TestFunc(g))
	}
}

func TestEvalLists(t *testing.T) {
	g, _ := NewGame(t, TestWorld)
	cases := map[string]SourceTestCase{
		"List":        {Source: `(list 1 "a" apple)`, Pass: PassKind(ifparse.ListNode)},
		"First":       {Source: `(first (list 1 2 3))`, Pass: PassEqual(ifparse.NewInteger(1))},
		"First-empty": {Source: `(first (list))`, Pass: PassEqual(ifparse.False())},
		"Rest":        {Source: `(rest (list 1 2 3))`, Pass: PassEqual(ifparse.NewList(ifparse.NewInteger(2), ifparse.NewInteger(3)))},
		"Rest-empty":  {Source: `(rest (list))`, Pass: PassEqual(ifparse.NewList())},
		"Length":      {Source: `(length (list 1 2 3))`, Pass: PassEqual(ifparse.NewInteger(3))},
		"Nth":         {Source: `(nth (list 4 5 6) 2)`, Pass: PassEqual(ifparse.NewInteger(6))},
		"Nth-range":   {Source: `(nth (list 4 5 6) 3)`, Pass: PassEqual(ifparse.False())},
		"Nth-neg":     {Source: `(nth (list 4 5 6) (sub 0 1))`, Pass: PassEqual(ifparse.False())},
		"Is-object":   {Source: `(is-object apple)`, Pass: PassEqual(ifparse.True())},
		"Is-string":   {Source: `(is-string "x")`, Pass: PassEqual(ifparse.True())},
		"Is-number":   {Source: `(is-number "x")`, Pass: PassEqual(ifparse.False())},
		"Is-function": {Source: `(is-function go)`, Pass: PassEqual(ifparse.True())},
		"Is-list":     {Source: `(is-list (list))`, Pass: PassEqual(ifparse.True())},
		"Type-object": {Source: `(type-name room-a)`, Pass: PassEqual(ifparse.NewString("object"))},
		"Type-int":    {Source: `(type-name 3)`, Pass: PassEqual(ifparse.NewString("integer"))},
		"Type-vocab":  {Source: `(type-name <apple>)`, Pass: PassEqual(ifparse.NewString("vocab"))},
	}
	for name, c := range cases {
		t.Run(name, c.TestFunc(g))
	}
}

func TestEvalObjects(t *testing.T) {
	g, _ := NewGame(t, TestWorld)
	cases := map[string]SourceTestCase{
		"Prop-get":         {Source: `(prop-get apple #name)`, Pass: PassEqual(ifparse.NewString("apple"))},
		"Prop-get-missing": {Source: `(prop-get apple #description)`, Pass: PassEqual(ifparse.False())},
		"Prop-get-object":  {Source: `(eq (prop-get room-a #north) room-b)`, Pass: PassEqual(ifparse.True())},
		"Prop-get-vocab":   {Source: `(length (prop-get apple #vocab))`, Pass: PassEqual(ifparse.NewInteger(2))},
		"Prop-has":         {Source: `(prop-has apple #vocab)`, Pass: PassEqual(ifparse.True())},
		"Prop-has-not":     {Source: `(prop-has apple #north)`, Pass: PassEqual(ifparse.False())},
		"Prop-true":        {Source: `(prop-true player #is-proper)`, Pass: PassEqual(ifparse.True())},
		"Prop-true-no":     {Source: `(prop-true apple #is-proper)`, Pass: PassEqual(ifparse.False())},
		"Prop-true-def":    {Source: `(prop-true apple #is-proper 1)`, Pass: PassEqual(ifparse.True())},
		"Prop-bad-object":  {Source: `(prop-get 3 #name)`, Pass: PassEqual(ifparse.False())},
		"Parent":           {Source: `(eq (parent apple) room-b)`, Pass: PassEqual(ifparse.True())},
		"Child":            {Source: `(eq (child room-b) apple)`, Pass: PassEqual(ifparse.True())},
		"Sibling":          {Source: `(sibling apple)`, Pass: PassEqual(ifparse.False())},
		"Contains":         {Source: `(contains room-b apple)`, Pass: PassEqual(ifparse.True())},
		"Contains-not":     {Source: `(contains room-a apple)`, Pass: PassEqual(ifparse.False())},
		"Indirect":         {Source: `(indirectly-contains room-a apple)`, Pass: PassEqual(ifparse.False())},
		"Player":           {Source: `(eq (player) player)`, Pass: PassEqual(ifparse.True())},
		"Word-outside":     {Source: `(word 0)`, Pass: PassEqual(ifparse.False())},
		"Vocab-word":       {Source: `(eq <apple> <apple>)`, Pass: PassEqual(ifparse.True())},
	}
	for name, c := range cases {
		t.Run(name, c.TestFunc(g))
	}
}

func TestEvalMutation(t *testing.T) {
	g, _ := NewGame(t, TestWorld)
	steps := []SourceTestCase{
		{Source: `(prop-set apple #name "pear")`, Pass: PassEqual(ifparse.NewString("pear"))},
		{Source: `(prop-get apple #name)`, Pass: PassEqual(ifparse.NewString("pear"))},
		{Source: `(prop-set apple #name)`, Pass: PassEqual(ifparse.False())},
		{Source: `(prop-has apple #name)`, Pass: PassEqual(ifparse.False())},
		{Source: `(prop-set apple #description (list 1 "x" player))`, Pass: PassKind(ifparse.ListNode)},
		{Source: `(eq (nth (prop-get apple #description) 2) player)`, Pass: PassEqual(ifparse.True())},
		{Source: `(prop-set apple #description (list (list 1)))`, Pass: PassEqual(ifparse.False())},
		{Source: `(object-move apple room-a)`, Pass: PassEqual(ifparse.True())},
		{Source: `(contains room-a apple)`, Pass: PassEqual(ifparse.True())},
		{Source: `(object-move apple apple)`, Pass: PassEqual(ifparse.False())},
		{Source: `(object-move room-a apple)`, Pass: PassEqual(ifparse.False())},
		{Source: `(indirectly-contains room-a apple)`, Pass: PassEqual(ifparse.True())},
	}
	for _, c := range steps {
		t.Run(c.Source, c.TestFunc(g))
	}
}

func TestEvalOutput(t *testing.T) {
	cases := map[string]struct {
		src  string
		want string
	}{
		"Say":            {`(say "x" 1 apple)`, "x1an apple"},
		"Say-proper":     {`(say player)`, "yourself"},
		"Say-word":       {`(say <apple>)`, "apple"},
		"Say-name":       {`(say-name apple)`, "apple"},
		"List-contents":  {`(list-contents room-b)`, "an apple"},
		"List-empty":     {`(list-contents apple)`, ""},
		"List-inventory": {`(list-inventory room-a)`, "    yourself\n"},
		"Location":       {`(print-location room-a)`, "Room A\nA bare room. An exit leads north.\n"},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			g, rec := NewGame(t, TestWorld)
			if _, err := g.Eval(c.src); err != nil {
				t.Fatal(err)
			}
			if got := rec.String(); got != c.want {
				t.Errorf("%s printed %q, want %q", c.src, got, c.want)
			}
		})
	}
}

func TestEvalListing(t *testing.T) {
	const world = `
(object gameinfo - player player)
(object room - name "room")
(object player room name "you" is-proper 1)
(object box room name "box")
(object coin box name "coin" article "a gold")
(object egg room name "egg")
(object dust room name "dust" article "")
`
	g, rec := NewGame(t, world)
	r, err := g.Eval(`(list-contents room)`)
	if err != nil {
		t.Fatal(err)
	}
	want := "dust, an egg, a box (containing a gold coin), and you"
	if got := rec.String(); got != want {
		t.Errorf("wrong listing: want %q, got %q", want, got)
	}
	if !r.Equal(ifparse.NewInteger(4)) {
		t.Errorf("wrong count: want 4, got %v", r)
	}
	rec.Reset()
	r, err = g.Eval(`(list-inventory room)`)
	if err != nil {
		t.Fatal(err)
	}
	want = "    dust\n    an egg\n    a box\n        a gold coin\n    you\n"
	if got := rec.String(); got != want {
		t.Errorf("wrong inventory: want %q, got %q", want, got)
	}
	if !r.Equal(ifparse.NewInteger(4)) {
		t.Errorf("wrong inventory count: want 4, got %v", r)
	}
}

func TestEvalLog(t *testing.T) {
	g, rec := NewGame(t, TestWorld)
	if _, err := g.Eval(`(log take nothing "s" 3 (a))`); err != nil {
		t.Fatal(err)
	}
	want := "log: take = 1 nothing = NULL s 3 { a = NULL }\n"
	if got := rec.String(); got != want {
		t.Errorf("wrong log: want %q, got %q", want, got)
	}
}

func TestEvalRecursion(t *testing.T) {
	g, rec := NewGame(t, `
(object gameinfo - player player)
(object player -)
(function forever () (forever))
(function countdown (n) (if (gt n 0) (countdown (sub n 1)) "done"))
`)
	r, err := g.Eval(`(forever)`)
	if err != nil {
		t.Fatal(err)
	}
	if !r.Equal(ifparse.False()) {
		t.Errorf("runaway recursion returned %v", r)
	}
	if !strings.Contains(rec.String(), "call depth exceeded") {
		t.Errorf("runaway recursion not logged: %q", rec.String())
	}
	r, err = g.Eval(`(countdown 50)`)
	if err != nil {
		t.Fatal(err)
	}
	if !r.Equal(ifparse.NewString("done")) {
		t.Errorf("bounded recursion returned %v", r)
	}
}

func TestEvalNotLoaded(t *testing.T) {
	g := ifparse.NewGame(ifparse.Config{Out: &Recorder{}})
	if _, err := g.Eval(`(add 1 2)`); err == nil {
		t.Errorf("Eval succeeded before load")
	}
}
