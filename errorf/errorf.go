// Package errorf is a convenience shortcut to the lol.Logger error
// constructors, which log the message at their level and return it as an
// error.
package errorf

import (
	"simplejson.mleku.dev/lol"
)

var F, E, W, I, D, T lol.Err

func init() {
	F, E, W, I, D, T = lol.Main.Errorf.F, lol.Main.Errorf.E, lol.Main.Errorf.W,
		lol.Main.Errorf.I, lol.Main.Errorf.D, lol.Main.Errorf.T
}
