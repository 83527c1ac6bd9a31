// Command gen writes the base 10000 lookup table used by the ints encoder.
package main

import (
	"fmt"
	"os"

	"simplejson.mleku.dev/chk"
)

func main() {
	fh, err := os.Create("base10k.txt")
	if chk.E(err) {
		panic(err)
	}
	defer fh.Close()
	for i := range 10000 {
		_, _ = fmt.Fprintf(fh, "%04d", i)
	}
}
