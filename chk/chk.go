// Package chk is a convenience shortcut to the lol.Logger error checks:
//
//	if err = w.Submit(o); chk.E(err) {
//		return
//	}
//
// logs err at the error level and reports whether it was not nil.
package chk

import (
	"simplejson.mleku.dev/lol"
)

var F, E, W, I, D, T lol.Chk

func init() {
	F, E, W, I, D, T = lol.Main.Check.F, lol.Main.Check.E, lol.Main.Check.W,
		lol.Main.Check.I, lol.Main.Check.D, lol.Main.Check.T
}
