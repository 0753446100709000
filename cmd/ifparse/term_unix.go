// +build aix darwin dragonfly freebsd linux netbsd openbsd solaris

package main

import "golang.org/x/sys/unix"

// terminal returns the width of the terminal on fd and whether fd is a
// terminal at all.
func terminal(fd uintptr) (int, bool) {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil {
		return 0, false
	}
	return int(ws.Col), true
}
