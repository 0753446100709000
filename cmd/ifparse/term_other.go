// +build !aix,!darwin,!dragonfly,!freebsd,!linux,!netbsd,!openbsd,!solaris

package main

// terminal reports no terminal, so output is neither wrapped nor styled.
func terminal(fd uintptr) (int, bool) {
	return 0, false
}
