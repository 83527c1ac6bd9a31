// Package keyvalue converts a go-simpler/env tagged configuration struct into a
// sorted list of key/values, and renders them as a bash script that sets the
// variables.
package keyvalue

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"
	"time"
)

// KV is a key/value pair.
type KV struct{ Key, Value string }

// KVSlice is a collection of key/value pairs.
type KVSlice []KV

func (kv KVSlice) Len() int           { return len(kv) }
func (kv KVSlice) Less(i, j int) bool { return kv[i].Key < kv[j].Key }
func (kv KVSlice) Swap(i, j int)      { kv[i], kv[j] = kv[j], kv[i] }

// EnvKV turns a struct, or a pointer to one, with `env` tags into key/value
// pairs. Fields without an env tag are skipped.
func EnvKV(cfg any) (m KVSlice) {
	v := reflect.Indirect(reflect.ValueOf(cfg))
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		k := t.Field(i).Tag.Get("env")
		if k == "" {
			continue
		}
		var val string
		switch f := v.Field(i).Interface().(type) {
		case string:
			val = f
		case int, int64, int32, uint64, uint32, bool, time.Duration:
			val = fmt.Sprint(f)
		case []string:
			val = strings.Join(f, ",")
		}
		m = append(m, KV{k, val})
	}
	return
}

// PrintEnv renders the key/values of cfg to w as a bash script, sorted by key.
func PrintEnv(cfg any, w io.Writer) {
	_, _ = fmt.Fprintln(w, "#!/usr/bin/env bash")
	kvs := EnvKV(cfg)
	sort.Sort(kvs)
	for _, v := range kvs {
		_, _ = fmt.Fprintf(w, "export %s=%s\n", v.Key, quote(v.Value))
	}
}

// quote single quotes values that the shell would otherwise split or expand.
func quote(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t\n'\"$`\\*?[]#~=&;|<>(){}") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
