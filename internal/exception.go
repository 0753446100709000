package internal

import (
	"errors"
	"fmt"
)

// Load errors. A LoadError wraps one of these when it can locate the problem.
var (
	// ErrUnterminated means a list was opened but never closed.
	ErrUnterminated = errors.New("unexpected end of tokens")
	// ErrExpectedList means a token other than '(' appeared where a list
	// must begin.
	ErrExpectedList = errors.New("expected '('")
	// ErrUnknownWord means a vocabulary marker named a word which is not in
	// the built vocabulary.
	ErrUnknownWord = errors.New("unknown word")
	// ErrMalformed means a declaration does not have the shape its keyword
	// requires.
	ErrMalformed = errors.New("malformed declaration")
	// ErrUnknownObject means a name which must refer to an object does not.
	ErrUnknownObject = errors.New("unknown object")
	// ErrUnknownConstant means an action code names no constant.
	ErrUnknownConstant = errors.New("unknown constant")
	// ErrDuplicate means a global name was declared twice.
	ErrDuplicate = errors.New("duplicate declaration")
	// ErrParentCycle means object parents form a loop.
	ErrParentCycle = errors.New("object is its own ancestor")
	// ErrNotUTF8 means a data file is not valid UTF-8 text.
	ErrNotUTF8 = errors.New("data is not valid UTF-8")
	// ErrNoGameInfo means the world defines no gameinfo object.
	ErrNoGameInfo = errors.New("no gameinfo object")
	// ErrNoPlayer means gameinfo does not name a valid player object.
	ErrNoPlayer = errors.New("gameinfo does not define valid initial player object")
	// ErrLoaded means a game was asked to load a second world.
	ErrLoaded = errors.New("game data already loaded")
)

// A LoadError is a fatal error while loading world data.
type LoadError struct {
	// Source is the name of the data source, usually a file name.
	Source string
	// Line and Col locate the error, if they are nonzero.
	Line, Col int
	// Err is the underlying error.
	Err error
}

// Error returns the error message prefixed by its location.
func (e *LoadError) Error() string {
	switch {
	case e.Line > 0:
		return fmt.Sprintf("%s:%d:%d: %v", e.Source, e.Line, e.Col, e.Err)
	case e.Source != "":
		return fmt.Sprintf("%s: %v", e.Source, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// nodeError creates a LoadError located at n that wraps kind with a message.
func nodeError(n *Node, kind error, format string, args ...interface{}) error {
	err := fmt.Errorf("%w: "+format, append([]interface{}{kind}, args...)...)
	if n == nil {
		return &LoadError{Err: err}
	}
	return &LoadError{Source: n.Source, Line: n.Line, Col: n.Col, Err: err}
}
