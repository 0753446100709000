package internal

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// Names of the properties the engine itself reads.
const (
	PropName         = "#name"
	PropInternalName = "#internal-name"
	PropVocab        = "#vocab"
	PropArticle      = "#article"
	PropIsProper     = "#is-proper"
	PropPlayer       = "#player"
	PropIntro        = "#intro"
	PropDescription  = "#description"
)

// Config holds the settings used to create a game.
type Config struct {
	// Out receives everything the game prints. If nil, the game prints to
	// standard output.
	Out Output
	// Log receives diagnostics. If nil, diagnostics go to Out.
	Log io.Writer
	// Separators are the words that end one command so that another may
	// follow on the same line. If nil, "then" and "." are used.
	Separators []string
	// Trace logs each candidate considered during noun matching.
	Trace bool
}

// Game is a single interpreter session: a world, its symbols and vocabulary,
// and the state of play.
type Game struct {
	World   *World
	Symbols *SymbolTable
	Vocab   *Vocabulary
	// Actions is the list of actions, most recently declared first.
	Actions *Action

	// Out is the output sink.
	Out Output
	// Log receives diagnostics.
	Log *log.Logger

	// GameInfo is the gameinfo object, and Player is the object it names as
	// the player. Both are valid once the game is loaded.
	GameInfo ObjectID
	Player   ObjectID

	// Separators are the case-folded command separator words.
	Separators []string
	// Trace enables tracing noun matches.
	Trace bool
	// StartTime is the time the game was created.
	StartTime time.Time

	builtins     map[string]*builtin
	fold         cases.Caser
	nextProperty int
	depth        int
	loaded       bool
	quit         bool
	// input is the command currently being dispatched.
	input []InputWord
}

// NewGame creates a game with the core builtins and all registered
// extensions installed. The world must then be loaded before play.
func NewGame(cfg Config) *Game {
	haveGame = true
	g := &Game{
		World:        NewWorld(),
		Symbols:      NewSymbolTable(),
		Vocab:        &Vocabulary{},
		Out:          cfg.Out,
		GameInfo:     NoObject,
		Player:       NoObject,
		Trace:        cfg.Trace,
		StartTime:    time.Now(),
		builtins:     make(map[string]*builtin, len(coreBuiltins)),
		fold:         cases.Fold(),
		nextProperty: 1,
	}
	if g.Out == nil {
		g.Out = NewTextOutput(os.Stdout, 0, false)
	}
	if cfg.Log != nil {
		g.Log = log.New(cfg.Log, "", 0)
	} else {
		g.Log = log.New(outputWriter{g.Out}, "", 0)
	}
	seps := cfg.Separators
	if seps == nil {
		seps = []string{"then", "."}
	}
	for _, s := range seps {
		g.Separators = append(g.Separators, g.fold.String(s))
	}
	for i := range coreBuiltins {
		b := coreBuiltins[i]
		g.builtins[b.name] = &b
	}
	for _, ext := range coreExt {
		ext(g)
	}
	return g
}

// Register registers a core extension. Each function is called in the order
// it is registered whenever a game is created. Register should be called from
// within init funcs. Panics if NewGame has been called.
func Register(f func(*Game)) {
	if haveGame {
		panic("ifparse/internal: Register must be called before any Game is created")
	}
	coreExt = append(coreExt, f)
}

// coreExt is a list of core extensions that have been registered.
var coreExt = make([]func(*Game), 0, 4)

// haveGame becomes true once NewGame has been called.
var haveGame = false

// Logf writes a diagnostic.
func (g *Game) Logf(format string, args ...interface{}) {
	g.Log.Printf(format, args...)
}

// canonicalProperty returns the symbol name for a property name.
func canonicalProperty(name string) string {
	if strings.HasPrefix(name, "#") {
		return name
	}
	return "#" + name
}

// PropertyID returns the number for the property with the given name, which
// may be given with or without its leading #. Until the game is loaded, new
// names are assigned new numbers; afterward, unknown names report false.
func (g *Game) PropertyID(name string) (int, bool) {
	name = canonicalProperty(name)
	if sym := g.Symbols.Get(name); sym != nil {
		if sym.Kind != PropertySymbol {
			return 0, false
		}
		return sym.Value, true
	}
	if g.loaded {
		return 0, false
	}
	id := g.nextProperty
	g.nextProperty++
	g.Symbols.Add(&Symbol{Name: name, Kind: PropertySymbol, Value: id})
	return id, true
}

// knownProperty returns the number of a property without creating it. The
// result is 0, which no property has, if the property does not exist.
func (g *Game) knownProperty(name string) int {
	sym := g.Symbols.Get(name)
	if sym == nil || sym.Kind != PropertySymbol {
		return 0
	}
	return sym.Value
}

// Loaded reports whether the world has been loaded.
func (g *Game) Loaded() bool {
	return g.loaded
}

// Done reports whether the game has quit.
func (g *Game) Done() bool {
	return g.quit
}

// Quit ends the game.
func (g *Game) Quit() {
	g.quit = true
}

// Start prints the introduction and the player's location.
func (g *Game) Start() error {
	if !g.loaded {
		return fmt.Errorf("game is not loaded")
	}
	info := g.World.Object(g.GameInfo)
	if p := info.Property(g.knownProperty(PropIntro)); p != nil && p.Value.Kind == StringValue {
		g.Out.Write(p.Value.Str + "\n")
	}
	g.Look()
	return nil
}

// Look prints the player's location, using the print-location function if the
// world defines one.
func (g *Game) Look() {
	loc := g.World.Parent(g.Player)
	if _, ok := g.CallNamed("print-location", NewObjectRef(loc)); ok {
		return
	}
	g.Out.EmphasisOn()
	g.Out.Write(g.Name(loc, false))
	g.Out.EmphasisOff()
	g.Out.Write("\n")
	if obj := g.World.Object(loc); obj != nil {
		if p := obj.Property(g.knownProperty(PropDescription)); p != nil && p.Value.Kind == StringValue {
			g.Out.Write(p.Value.Str + "\n")
		}
	}
}

// Step processes one line of player input, which may hold several commands
// joined by separators. It returns false once the game has quit.
func (g *Game) Step(line string) bool {
	words, f := g.Tokenize(line)
	if f != FailNone {
		g.Out.Write(g.Message(Command{Failure: f}, words) + "\n")
		return !g.quit
	}
	for len(words) > 0 && !g.quit {
		if words[0].Num < 0 {
			g.Out.Write(g.Message(Command{Failure: FailUnknownWord}, words) + "\n")
			break
		}
		cmd := g.Parse(words)
		if cmd.Failure != FailNone {
			g.Out.Write(g.Message(cmd, words) + "\n")
			break
		}
		g.input = words
		g.Dispatch(cmd)
		g.input = nil
		if cmd.Next == 0 {
			break
		}
		words = words[cmd.Next:]
	}
	return !g.quit
}

// Dispatch runs the handler for a matched command. The handler for an action
// whose code was named by constant X is the function X-sub, called with the
// command's nouns. Otherwise, do-action is called with the code and nouns.
func (g *Game) Dispatch(cmd Command) {
	nouns := []*Node{cmd.Noun(0), cmd.Noun(1)}
	if cmd.Action != nil && cmd.Action.Name != "" {
		if _, ok := g.CallNamed(cmd.Action.Name+"-sub", nouns...); ok {
			return
		}
	}
	if _, ok := g.CallNamed("do-action", append([]*Node{NewInteger(cmd.Code)}, nouns...)...); ok {
		return
	}
	g.Out.Write(fmt.Sprintf("Unhandled action #%d.\n", cmd.Code))
}

// Eval parses source in lookup mode and evaluates each of its lists with a
// fresh local scope, returning the last result.
func (g *Game) Eval(source string) (*Node, error) {
	if !g.loaded {
		return nil, fmt.Errorf("game is not loaded")
	}
	lists, err := Parse(source, "eval", g.Vocab, func(err error) { g.Logf("%v", err) })
	if err != nil {
		return nil, err
	}
	r := False()
	for _, l := range lists {
		r = g.Evaluate(NewSymbolTable(), l)
	}
	return r, nil
}
