package internal

import (
	"github.com/zephyrtronium/contains"
)

// A Source is one named text of world data.
type Source struct {
	Name string
	Text string
}

// loader holds the declarations awaiting the fix-up pass.
type loader struct {
	g       *Game
	objects []ObjectID
	actions []*Action
}

// Load loads world data from sources in order. The sources form a single
// stream of declarations, so a declaration may refer to names declared later
// or in other sources. Loading is all or nothing: on error, the game is left
// empty and must not be loaded again.
func (g *Game) Load(sources ...Source) error {
	if g.loaded || g.Vocab.Built() {
		return ErrLoaded
	}
	if err := g.load(sources); err != nil {
		g.World = NewWorld()
		g.Symbols = NewSymbolTable()
		g.Actions = nil
		g.GameInfo, g.Player = NoObject, NoObject
		return err
	}
	g.loaded = true
	return nil
}

func (g *Game) load(sources []Source) error {
	report := func(err error) { g.Logf("%v", err) }
	var tokens []token
	for _, src := range sources {
		t, err := lex(src.Text, src.Name, declareWords, g.Vocab, report)
		if err != nil {
			return err
		}
		tokens = append(tokens, t...)
	}
	g.Vocab.Build()
	lists, err := parseTokens(tokens)
	if err != nil {
		return err
	}
	ld := loader{g: g}
	for _, l := range lists {
		if err := ld.declare(l); err != nil {
			return err
		}
	}
	if err := ld.fixup(); err != nil {
		return err
	}
	return g.findPlayer()
}

// findPlayer locates the gameinfo object and the player it names.
func (g *Game) findPlayer() error {
	sym := g.Symbols.Get("gameinfo")
	if sym == nil || sym.Kind != ObjectSymbol {
		return &LoadError{Err: ErrNoGameInfo}
	}
	g.GameInfo = sym.Obj
	p := g.World.Object(g.GameInfo).Property(g.knownProperty(PropPlayer))
	if p == nil || p.Value.Kind != ObjectValue || g.World.Object(p.Value.Obj) == nil {
		return &LoadError{Err: ErrNoPlayer}
	}
	g.Player = p.Value.Obj
	return nil
}

// declare processes one top-level list.
func (ld *loader) declare(l *Node) error {
	head := l.Head()
	if head == nil || head.Kind != AtomNode {
		return nodeError(l, ErrMalformed, "declaration must begin with an atom")
	}
	switch head.Text {
	case "object":
		return ld.object(l)
	case "action":
		return ld.action(l)
	case "constant":
		return ld.constant(l)
	case "function":
		return ld.function(l)
	}
	return nodeError(head, ErrMalformed, "unknown declaration type %s", head.Text)
}

// checkGlobal verifies that a global name is an atom not yet declared.
func (ld *loader) checkGlobal(n *Node, what string) error {
	if n.Kind != AtomNode {
		return nodeError(n, ErrMalformed, "%s name must be atom, not %v", what, n.Kind)
	}
	if ld.g.Symbols.Get(n.Text) != nil {
		return nodeError(n, ErrDuplicate, "%s", n.Text)
	}
	return nil
}

// object handles (object ident parent name value ...).
func (ld *loader) object(l *Node) error {
	g := ld.g
	if l.Len() < 3 || (l.Len()-3)%2 != 0 {
		return nodeError(l, ErrMalformed, "object requires ident, parent, and property pairs")
	}
	ident, parent := l.Items[1], l.Items[2]
	if !ident.IsAtom("-") {
		if err := ld.checkGlobal(ident, "object"); err != nil {
			return err
		}
	}
	if parent.Kind != AtomNode {
		return nodeError(parent, ErrMalformed, "object parent must be atom, not %v", parent.Kind)
	}
	id := g.World.Create(g.World.Root())
	obj := g.World.Object(id)
	ld.objects = append(ld.objects, id)
	obj.pendingAt = l
	if !ident.IsAtom("-") {
		g.Symbols.Add(&Symbol{Name: ident.Text, Kind: ObjectSymbol, Obj: id})
		pid, _ := g.PropertyID(PropInternalName)
		obj.SetString(pid, ident.Text)
	}
	if !parent.IsAtom("-") {
		obj.pendingParent = parent.Text
	}
	for i := 3; i < l.Len(); i += 2 {
		name, value := l.Items[i], l.Items[i+1]
		if name.Kind != AtomNode {
			return nodeError(name, ErrMalformed, "property name must be atom, not %v", name.Kind)
		}
		pid, ok := g.PropertyID(name.Text)
		if !ok {
			return nodeError(name, ErrDuplicate, "%s is not a property", name.Text)
		}
		v, err := ld.value(value, false)
		if err != nil {
			return err
		}
		obj.Set(pid, v)
	}
	return nil
}

// value converts a declared property value. Names and words are left for
// the fix-up pass.
func (ld *loader) value(n *Node, nested bool) (Value, error) {
	switch n.Kind {
	case StringNode:
		return StrValue(n.Text), nil
	case IntegerNode:
		return IntValue(n.Num), nil
	case VocabNode:
		return Value{Kind: UnresolvedWord, Str: n.Text}, nil
	case AtomNode:
		return Value{Kind: UnresolvedName, Str: n.Text}, nil
	case ListNode:
		if nested {
			ld.g.Logf("%v", nodeError(n, ErrMalformed, "nested lists are not permitted in object properties"))
			return IntValue(0), nil
		}
		elems := make([]Value, 0, n.Len())
		for _, item := range n.Items {
			v, err := ld.value(item, true)
			if err != nil {
				return Value{}, err
			}
			elems = append(elems, v)
		}
		return ArrValue(elems), nil
	}
	return Value{}, nodeError(n, ErrMalformed, "bad property value %v", n)
}

// action handles (action code grammar...).
func (ld *loader) action(l *Node) error {
	g := ld.g
	if l.Len() < 2 {
		return nodeError(l, ErrMalformed, "action requires a code")
	}
	a := &Action{at: l}
	switch code := l.Items[1]; code.Kind {
	case IntegerNode:
		a.Code = code.Num
	case AtomNode:
		a.Name = code.Text
	default:
		return nodeError(code, ErrMalformed, "action code must be integer or constant, not %v", code.Kind)
	}
	nouns := 0
	items := l.Items[2:]
	for i := 0; i < len(items); i++ {
		t := items[i]
		switch {
		case t.Kind == VocabNode:
			a.Grammar = append(a.Grammar, GrammarToken{Kind: WordToken, Word: g.Vocab.Index(t.Text)})
		case t.IsAtom("noun"):
			a.Grammar = append(a.Grammar, GrammarToken{Kind: NounToken})
			nouns++
		case t.IsAtom("any"):
			a.Grammar = append(a.Grammar, GrammarToken{Kind: AnyToken})
		case t.IsAtom("scope"):
			if i+1 >= len(items) || items[i+1].Kind != AtomNode {
				return nodeError(t, ErrMalformed, "scope requires an object name")
			}
			i++
			a.Grammar = append(a.Grammar, GrammarToken{Kind: ScopeToken, Scope: NoObject, scopeName: items[i].Text})
			nouns++
		case t.Kind == ListNode:
			if t.Len() == 0 {
				return nodeError(t, ErrMalformed, "empty word alternatives")
			}
			for j, w := range t.Items {
				if w.Kind != VocabNode {
					return nodeError(w, ErrMalformed, "word alternatives must be vocabulary words, not %v", w.Kind)
				}
				a.Grammar = append(a.Grammar, GrammarToken{Kind: WordToken, Word: g.Vocab.Index(w.Text), Alt: j < t.Len()-1})
			}
		default:
			return nodeError(t, ErrMalformed, "bad grammar token %v", t)
		}
	}
	a.Grammar = append(a.Grammar, GrammarToken{Kind: EndToken})
	if len(a.Grammar) > MaxGrammarTokens {
		return nodeError(l, ErrMalformed, "grammar has more than %d tokens", MaxGrammarTokens)
	}
	if nouns > MaxNouns {
		return nodeError(l, ErrMalformed, "grammar has more than %d nouns", MaxNouns)
	}
	a.next = g.Actions
	g.Actions = a
	ld.actions = append(ld.actions, a)
	return nil
}

// constant handles (constant name value).
func (ld *loader) constant(l *Node) error {
	if l.Len() != 3 {
		return nodeError(l, ErrMalformed, "constant requires a name and an integer")
	}
	name, value := l.Items[1], l.Items[2]
	if err := ld.checkGlobal(name, "constant"); err != nil {
		return err
	}
	if value.Kind != IntegerNode {
		return nodeError(value, ErrMalformed, "constant value must be integer, not %v", value.Kind)
	}
	ld.g.Symbols.Add(&Symbol{Name: name.Text, Kind: ConstantSymbol, Value: value.Num})
	return nil
}

// function handles (function name (params...) body...).
func (ld *loader) function(l *Node) error {
	if l.Len() < 3 {
		return nodeError(l, ErrMalformed, "function requires a name and a parameter list")
	}
	name, params := l.Items[1], l.Items[2]
	if err := ld.checkGlobal(name, "function"); err != nil {
		return err
	}
	if params.Kind != ListNode {
		return nodeError(params, ErrMalformed, "function parameters must be a list, not %v", params.Kind)
	}
	fn := &Function{Name: name.Text}
	for _, p := range params.Items {
		if p.Kind != AtomNode {
			return nodeError(p, ErrMalformed, "parameter must be atom, not %v", p.Kind)
		}
		fn.Params = append(fn.Params, p.Text)
	}
	for _, stmt := range l.Items[3:] {
		body := stmt.Dup()
		ld.numberWords(body)
		fn.Body = append(fn.Body, body)
	}
	ld.g.Symbols.Add(&Symbol{Name: name.Text, Kind: FunctionSymbol, Fn: fn})
	return nil
}

// numberWords replaces the text of vocabulary words in a tree with their
// numbers, as lookup-mode lexing would have produced.
func (ld *loader) numberWords(n *Node) {
	switch n.Kind {
	case VocabNode:
		n.Num = ld.g.Vocab.Index(n.Text)
		n.Text = ""
	case ListNode:
		for _, item := range n.Items {
			ld.numberWords(item)
		}
	}
}

// fixup resolves every forward reference recorded during declaration.
func (ld *loader) fixup() error {
	if err := ld.fixParents(); err != nil {
		return err
	}
	if err := ld.fixValues(UnresolvedName); err != nil {
		return err
	}
	if err := ld.fixValues(UnresolvedWord); err != nil {
		return err
	}
	return ld.fixActions()
}

// parentSymbol resolves an object's pending parent name.
func (ld *loader) parentSymbol(obj *Object) (ObjectID, error) {
	sym := ld.g.Symbols.Get(obj.pendingParent)
	if sym == nil || sym.Kind != ObjectSymbol {
		return NoObject, nodeError(obj.pendingAt, ErrUnknownObject, "parent %s", obj.pendingParent)
	}
	return sym.Obj, nil
}

// fixParents moves each object with a declared parent into it. Declared
// parents must not form a cycle.
func (ld *loader) fixParents() error {
	g := ld.g
	seen := contains.Set{}
	for _, id := range ld.objects {
		obj := g.World.Object(id)
		if obj.pendingParent == "" {
			continue
		}
		seen.Reset()
		seen.Add(uintptr(id))
		for cur := obj; cur.pendingParent != ""; {
			p, err := ld.parentSymbol(cur)
			if err != nil {
				return err
			}
			if !seen.Add(uintptr(p)) {
				return nodeError(obj.pendingAt, ErrParentCycle, "%s", obj.pendingParent)
			}
			cur = g.World.Object(p)
		}
	}
	for _, id := range ld.objects {
		obj := g.World.Object(id)
		if obj.pendingParent == "" {
			continue
		}
		p, _ := ld.parentSymbol(obj)
		g.World.Move(id, p)
		obj.pendingParent = ""
	}
	return nil
}

// fixValues resolves every property value of the given unresolved kind.
func (ld *loader) fixValues(kind ValueKind) error {
	for _, id := range ld.objects {
		obj := ld.g.World.Object(id)
		for _, p := range obj.Properties() {
			v, err := ld.resolve(obj, p.Value, kind)
			if err != nil {
				return err
			}
			p.Value = v
		}
	}
	return nil
}

// resolve resolves one value. A name may refer to an object or a constant.
func (ld *loader) resolve(obj *Object, v Value, kind ValueKind) (Value, error) {
	switch {
	case v.Kind == ArrayValue:
		for i, e := range v.Array {
			r, err := ld.resolve(obj, e, kind)
			if err != nil {
				return v, err
			}
			v.Array[i] = r
		}
		return v, nil
	case v.Kind != kind:
		return v, nil
	case kind == UnresolvedName:
		sym := ld.g.Symbols.Get(v.Str)
		switch {
		case sym == nil:
		case sym.Kind == ObjectSymbol:
			return ObjValue(sym.Obj), nil
		case sym.Kind == ConstantSymbol:
			return IntValue(sym.Value), nil
		}
		return v, nodeError(obj.pendingAt, ErrUnknownObject, "%s", v.Str)
	case kind == UnresolvedWord:
		n := ld.g.Vocab.Index(v.Str)
		if n < 0 {
			return v, nodeError(obj.pendingAt, ErrUnknownWord, "<%s>", v.Str)
		}
		return IntValue(n), nil
	}
	return v, nil
}

// fixActions resolves action codes named by constants and scope objects.
func (ld *loader) fixActions() error {
	g := ld.g
	for _, a := range ld.actions {
		if a.Name != "" {
			sym := g.Symbols.Get(a.Name)
			if sym == nil || sym.Kind != ConstantSymbol {
				return nodeError(a.at, ErrUnknownConstant, "%s", a.Name)
			}
			a.Code = sym.Value
		}
		for i := range a.Grammar {
			t := &a.Grammar[i]
			if t.Kind != ScopeToken {
				continue
			}
			sym := g.Symbols.Get(t.scopeName)
			if sym == nil || sym.Kind != ObjectSymbol {
				return nodeError(a.at, ErrUnknownObject, "scope %s", t.scopeName)
			}
			t.Scope = sym.Obj
		}
	}
	return nil
}
