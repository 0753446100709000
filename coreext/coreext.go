// Package coreext installs every builtin extension in this module when
// imported.
package coreext

import (
	// importing for side effects
	_ "github.com/zephyrtronium/ifparse/coreext/clock"
	_ "github.com/zephyrtronium/ifparse/coreext/debug"
)
