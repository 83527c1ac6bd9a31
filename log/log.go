// Package log is a convenience shortcut to the lol.Logger level printers, as in
// log.D.F("opened %s", path).
package log

import (
	"simplejson.mleku.dev/lol"
)

var F, E, W, I, D, T lol.LevelPrinter

func init() {
	F, E, W, I, D, T = lol.Main.Log.F, lol.Main.Log.E, lol.Main.Log.W,
		lol.Main.Log.I, lol.Main.Log.D, lol.Main.Log.T
}
