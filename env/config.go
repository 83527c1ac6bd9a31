// Package env is an implementation of the env.Source interface from
// go-simpler.org that reads a .env file and falls back to the process
// environment.
package env

import (
	"os"
	"strings"

	"simplejson.mleku.dev/chk"
)

// Env is a key/value map used to represent environment variables.
type Env map[string]string

// GetEnv reads a file of KEY=value lines in shell environment variable format.
// Blank lines, comments and an optional leading "export " are ignored, as are
// single or double quotes around the value.
func GetEnv(path string) (env Env, err error) {
	var s []byte
	env = make(Env)
	if s, err = os.ReadFile(path); chk.T(err) {
		return
	}
	for _, line := range strings.Split(string(s), "\n") {
		line = strings.TrimSpace(line)
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		split := strings.SplitN(line, "=", 2)
		if len(split) != 2 {
			continue
		}
		v := strings.TrimSpace(split[1])
		if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
			v = v[1 : len(v)-1]
		}
		env[strings.TrimSpace(split[0])] = v
	}
	return
}

// LookupEnv returns the value of key from the file, or from the process
// environment when the file does not set it.
func (env Env) LookupEnv(key string) (value string, ok bool) {
	if value, ok = env[key]; ok {
		return
	}
	return os.LookupEnv(key)
}
