// Package config is the environment configuration of jsonstream.
package config

import (
	"io"
	"os"

	"go-simpler.org/env"

	"simplejson.mleku.dev/chk"
	"simplejson.mleku.dev/config/keyvalue"
	dotenv "simplejson.mleku.dev/env"
	"simplejson.mleku.dev/json"
	"simplejson.mleku.dev/lol"
)

// C is the configuration of jsonstream. Command line flags override it.
type C struct {
	AppName    string `env:"APP_NAME" default:"jsonstream"`
	LogLevel   string `env:"LOG_LEVEL" default:"info" usage:"log level: off fatal error warn info debug trace"`
	Output     string `env:"OUTPUT" default:"test.json" usage:"path of the JSON array file to write"`
	Escape     bool   `env:"ESCAPE" default:"false" usage:"escape quotes, backslashes and control characters in strings"`
	BufferSize int    `env:"BUFFER_SIZE" default:"64000" usage:"write buffer size in bytes"`
	Pprof      bool   `env:"PPROF" default:"false" usage:"write a memory profile to the working directory"`
	LogFile    string `env:"LOG_FILE" usage:"append log output to this file instead of stderr"`
}

// New loads the configuration from the environment, and from the .env style
// file at path first if path is not empty. The log level is applied.
func New(path string) (c *C, err error) {
	c = &C{}
	opts := &env.Options{SliceSep: ","}
	if path != "" {
		var e dotenv.Env
		if e, err = dotenv.GetEnv(path); chk.E(err) {
			return
		}
		opts.Source = e
	}
	if err = env.Load(c, opts); chk.E(err) {
		return
	}
	lol.SetLogLevel(c.LogLevel)
	return
}

// Mode is the string formatting mode selected by Escape.
func (c *C) Mode() json.Mode {
	if c.Escape {
		return json.Escaped
	}
	return json.Raw
}

// OpenLog sends log output to LogFile if it is set. The returned function closes
// the file and puts logging back on stderr.
func (c *C) OpenLog() (closer func(), err error) {
	closer = func() {}
	if c.LogFile == "" {
		return
	}
	var f *os.File
	if f, err = os.OpenFile(c.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); chk.E(err) {
		return
	}
	lol.SetOutput(f)
	closer = func() {
		lol.SetOutput(os.Stderr)
		chk.E(f.Close())
	}
	return
}

// PrintEnv writes the configuration as a bash script that sets it.
func (c *C) PrintEnv(w io.Writer) { keyvalue.PrintEnv(c, w) }

// Usage writes the list of environment variables and their defaults.
func (c *C) Usage(w io.Writer) { env.Usage(c, w, nil) }
