//go:build debug

// Package debug gives library code a logging hook that costs nothing in
// normal builds.  Build with -tags debug to enable it.
package debug

import "log"

func Printf(msg string, args ...any) {
	log.Printf("jsonwriter: "+msg, args...)
}

const On = true
