/*
Package ifparse implements an engine for parser-driven text adventures.

A game is a world of objects described by S-expression data files, together
with a grammar of player commands and a small Lisp-like scripting language for
the behavior behind them. The engine loads the data, then reads lines of
player input, matches each against the grammar, and runs the script function
that handles the matched action.

To embed the engine, create a Game with NewGame, load world data with Load or
LoadFiles, and call Start followed by Step for each line the player enters.
Everything the game prints goes to the Output given in the Config. The
cmd/ifparse program is a terminal front end driven by a YAML manifest.

World Data

A data file is a sequence of lists. Atoms are runs of letters, digits, and
the characters - _ #; strings are double-quoted with \n, \", and \\ escapes;
integers are runs of decimal digits; and <word> is a vocabulary word, which
the player can type. Comments run from // to the end of the line.

Four declarations are recognized:

	(object ident parent name value ...)
	(action code grammar-token ...)
	(constant name integer)
	(function name (param ...) statement ...)

An object's ident and parent may be - for none. Property names receive a
leading # if they lack one, so the property written name in an object
declaration is #name in scripts. An atom as a property value names another
object or a constant; a list value is an array.

An action's code is an integer or the name of a constant. Its grammar is a
sequence of tokens: a vocabulary word matches that word; a list of words
matches any one of them; any matches any single word; noun matches an object
near the player; and scope followed by an object name matches an object
inside that object. A noun matches the object whose #vocab property array
contains the most consecutive input words.

A matched action whose code was the constant X is handled by the function
X-sub, which receives the matched nouns. Otherwise the function do-action
receives the code and nouns.

The world must have an object named gameinfo whose player property names the
player object. Its intro property, if any, is printed when the game starts,
followed by a description of the player's location from the print-location
function.

Scripts

A script expression is a literal, an atom, or a list. Literals evaluate to
themselves, atoms to the value of the symbol they name, and lists to the result
of calling the function named by their first element:

	(function print-location (loc)
		(emphasis) (say-name loc) (normal) (say "\n")
		(say (prop-get loc #description) "\n"))

Integers are the only numbers, and 0 is false. Functions called from scripts
may be user functions or builtins. Most builtins receive evaluated arguments,
but some, such as if, and, or, quote, set, and log, receive their arguments
unevaluated. Extensions add builtins with Game.Define, typically from a func
passed to Register in an init func; importing coreext installs all extensions
in this module.
*/
package ifparse
