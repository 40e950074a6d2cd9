// Package debug gates diagnostic logging behind environment
// variables, so instrumentation can be flipped on for one run without
// touching configuration.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Filter bool
	Loc    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Filter = boolEnv("ASTEXPORT_DEBUG_FILTER")
	d.Loc = boolEnv("ASTEXPORT_DEBUG_LOC")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Filter reports whether traversal-filter decisions should be logged.
func Filter() bool {
	return d.Filter
}

// Loc reports whether location-cache transitions should be logged.
func Loc() bool {
	return d.Loc
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
