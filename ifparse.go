package ifparse

import (
	"io"

	"github.com/zephyrtronium/ifparse/internal"
)

// A Game is a single session of a text adventure.
type Game = internal.Game

// Config holds the settings used to create a game.
type Config = internal.Config

// Output is the sink for all text a game prints.
type Output = internal.Output

// TextOutput is an Output writing to an io.Writer, optionally wrapping text
// and rendering emphasis as ANSI bold.
type TextOutput = internal.TextOutput

// A Source is one named text of world data.
type Source = internal.Source

// A FileSource reads world data files by name.
type FileSource = internal.FileSource

// DirSource is a FileSource reading files relative to a directory.
type DirSource = internal.DirSource

// A Manifest describes a game's data files and settings.
type Manifest = internal.Manifest

// A Node is a script value or a piece of parsed world data.
type Node = internal.Node

// NodeKind is the type tag of a Node.
type NodeKind = internal.NodeKind

// A Builtin is a script function implemented in Go.
type Builtin = internal.Builtin

// A SymbolTable maps names to objects, properties, constants, functions, and
// local variables.
type SymbolTable = internal.SymbolTable

// An Object is a node in the world tree with a set of properties.
type Object = internal.Object

// ObjectID identifies an object in a world.
type ObjectID = internal.ObjectID

// A Command is the result of matching player input against the grammar.
type Command = internal.Command

// Failure classifies a command that could not be matched.
type Failure = internal.Failure

// A LoadError is a fatal error while loading world data.
type LoadError = internal.LoadError

// Node kinds.
const (
	ListNode     = internal.ListNode
	AtomNode     = internal.AtomNode
	StringNode   = internal.StringNode
	IntegerNode  = internal.IntegerNode
	VocabNode    = internal.VocabNode
	ObjectNode   = internal.ObjectNode
	FunctionNode = internal.FunctionNode
)

// Command failures.
const (
	FailNone        = internal.FailNone
	FailParser      = internal.FailParser
	FailNonMatch    = internal.FailNonMatch
	FailNotVisible  = internal.FailNotVisible
	FailAmbiguous   = internal.FailAmbiguous
	FailUnknownWord = internal.FailUnknownWord
	FailPardon      = internal.FailPardon
)

// NoObject is the ObjectID of no object.
const NoObject = internal.NoObject

// Load errors.
var (
	ErrUnterminated    = internal.ErrUnterminated
	ErrExpectedList    = internal.ErrExpectedList
	ErrUnknownWord     = internal.ErrUnknownWord
	ErrMalformed       = internal.ErrMalformed
	ErrUnknownObject   = internal.ErrUnknownObject
	ErrUnknownConstant = internal.ErrUnknownConstant
	ErrDuplicate       = internal.ErrDuplicate
	ErrParentCycle     = internal.ErrParentCycle
	ErrNotUTF8         = internal.ErrNotUTF8
	ErrNoGameInfo      = internal.ErrNoGameInfo
	ErrNoPlayer        = internal.ErrNoPlayer
	ErrLoaded          = internal.ErrLoaded
	ErrNoFiles         = internal.ErrNoFiles
)

// NewGame creates a game with the core builtins and all registered
// extensions installed.
func NewGame(cfg Config) *Game {
	return internal.NewGame(cfg)
}

// NewTextOutput creates a TextOutput. A positive width wraps text to fit it.
func NewTextOutput(w io.Writer, width int, styled bool) *TextOutput {
	return internal.NewTextOutput(w, width, styled)
}

// Register registers a core extension, called for each new game. Register
// must be called from init funcs.
func Register(f func(*Game)) {
	internal.Register(f)
}

// ParseManifest decodes a YAML manifest.
func ParseManifest(r io.Reader) (*Manifest, error) {
	return internal.ParseManifest(r)
}

// LoadManifest reads a YAML manifest from a file. Relative data file names
// are resolved against the manifest's directory.
func LoadManifest(path string) (*Manifest, error) {
	return internal.LoadManifest(path)
}

// NewInteger creates an integer value.
func NewInteger(n int) *Node {
	return internal.NewInteger(n)
}

// NewString creates a string value.
func NewString(s string) *Node {
	return internal.NewString(s)
}

// NewList creates a list of the given items.
func NewList(items ...*Node) *Node {
	return internal.NewList(items...)
}

// NewObjectRef creates a reference to an object.
func NewObjectRef(id ObjectID) *Node {
	return internal.NewObjectRef(id)
}

// True returns the canonical true value, the integer 1.
func True() *Node {
	return internal.True()
}

// False returns the canonical false value, the integer 0.
func False() *Node {
	return internal.False()
}
