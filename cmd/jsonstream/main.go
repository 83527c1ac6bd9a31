// Package main is jsonstream, a command that writes JSON array files of objects
// one object at a time.
//
//	jsonstream demo            build a sample object, mutate it step by step and
//	                           write every step
//	jsonstream yaml FILE       write every mapping document of a YAML stream
//	jsonstream env             print the configuration as a bash script
//	jsonstream usage           list the environment variables
//	jsonstream version         print the version
package main

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/alexflint/go-arg"
	"github.com/dustin/go-humanize"
	"github.com/pkg/profile"

	"simplejson.mleku.dev"
	"simplejson.mleku.dev/chk"
	"simplejson.mleku.dev/config"
	"simplejson.mleku.dev/interrupt"
	"simplejson.mleku.dev/json"
	"simplejson.mleku.dev/log"
	"simplejson.mleku.dev/stream"
	"simplejson.mleku.dev/yamlsrc"
)

type DemoCmd struct{}

type YAMLCmd struct {
	In string `arg:"positional,required" help:"YAML file, one record per document"`
}

type (
	EnvCmd     struct{}
	UsageCmd   struct{}
	VersionCmd struct{}
)

var args struct {
	Demo    *DemoCmd    `arg:"subcommand:demo" help:"write the mutation steps of a sample object"`
	YAML    *YAMLCmd    `arg:"subcommand:yaml" help:"write the documents of a YAML stream"`
	Env     *EnvCmd     `arg:"subcommand:env" help:"print the configuration as a bash script"`
	Usage   *UsageCmd   `arg:"subcommand:usage" help:"list the environment variables"`
	Version *VersionCmd `arg:"subcommand:version" help:"print the version"`
	Out     string      `arg:"-o,--out" help:"output file, overrides OUTPUT"`
	Escape  bool        `arg:"-e,--escape" help:"escape strings, overrides ESCAPE"`
	Config  string      `arg:"-c,--config" help:"file of KEY=value lines to load the configuration from"`
}

func main() {
	p := arg.MustParse(&args)
	if args.Version != nil {
		fmt.Println(simplejson.Version)
		return
	}
	cfg, err := config.New(args.Config)
	if chk.E(err) {
		os.Exit(1)
	}
	if args.Out != "" {
		cfg.Output = args.Out
	}
	if args.Escape {
		cfg.Escape = true
	}
	switch {
	case args.Env != nil:
		cfg.PrintEnv(os.Stdout)
		return
	case args.Usage != nil:
		fmt.Printf("\nenvironment variables that configure %s\n\n", cfg.AppName)
		cfg.Usage(os.Stdout)
		return
	}
	closeLog, err := cfg.OpenLog()
	if err != nil {
		os.Exit(1)
	}
	defer closeLog()
	if cfg.Pprof {
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	}
	opts := []stream.Option{stream.WithMode(cfg.Mode()), stream.WithBufferSize(cfg.BufferSize)}
	switch {
	case args.Demo != nil:
		err = demo(os.Stdout, cfg.Output, opts...)
	case args.YAML != nil:
		err = fromYAML(args.YAML.In, cfg.Output, opts...)
	default:
		p.WriteHelp(os.Stderr)
		os.Exit(2)
	}
	if err != nil {
		log.F.F("%s", err)
		os.Exit(1)
	}
}

// complexJSON formats a complex number as an object of its parts.
func complexJSON(dst []byte, c complex128) []byte {
	dst = append(dst, `{ "complex": true, "real": `...)
	dst = json.AppendFloat(dst, real(c))
	dst = append(dst, `, "imag": `...)
	dst = json.AppendFloat(dst, imag(c))
	return append(dst, '}')
}

// demo builds a sample object and writes it after each of a series of changes,
// printing every step to out.
func demo(out io.Writer, path string, opts ...stream.Option) (err error) {
	obj := json.NewObject(
		json.KV("foo", json.NewObject(
			json.KV("abc", json.Number(1.23)),
			json.KV("def", json.Number(456)),
		)),
		json.KV("bar", json.NewArray(json.Number(1), json.Number(2), json.Number(3))),
	)
	steps := []func() error{
		func() error { return nil },
		func() error { return obj.Set(json.Number(123), json.K("foo"), json.K(""), json.K("123")) },
		func() error { return obj.Set(json.Number(1000.0), json.K("bar"), json.I(1)) },
		func() (err error) {
			var bar *json.Element
			if bar, err = obj.Key("bar"); err != nil {
				return
			}
			var a *json.Array
			if a, err = bar.RawArray(); err != nil {
				return
			}
			(*a)[1] = json.Number(-1)
			return
		},
		func() error { return obj.Set(json.Func(complex(1.0, 2.0), complexJSON), json.K("bar"), json.I(1)) },
		func() error { return obj.Set(json.Null(), json.K("bar"), json.I(1)) },
	}
	var o json.Object
	if o, err = obj.RawObject(); chk.E(err) {
		return
	}
	return stream.WithFile(path, func(w *stream.Writer) (err error) {
		for i, step := range steps {
			if err = step(); chk.E(err) {
				return fmt.Errorf("step %d: %w", i, err)
			}
			_, _ = fmt.Fprintln(out, obj)
			if err = w.Submit(o); err != nil {
				return
			}
		}
		log.I.F("wrote %d objects to %s", w.Count(), path)
		return
	}, opts...)
}

// fromYAML writes every document of the YAML file in as one object of the
// array at path. An interrupt closes the array before the process exits.
func fromYAML(in, path string, opts ...stream.Option) (err error) {
	var f *os.File
	if f, err = os.Open(in); chk.E(err) {
		return
	}
	defer f.Close()
	var w *stream.Writer
	if w, err = stream.Open(path, opts...); chk.E(err) {
		return
	}
	// the interrupt handler runs on its own goroutine
	var mx sync.Mutex
	closeWriter := func() error {
		mx.Lock()
		defer mx.Unlock()
		return w.Close()
	}
	interrupt.AddHandler(func() { chk.E(closeWriter()) })
	defer func() {
		if cerr := closeWriter(); err == nil {
			err = cerr
		}
	}()
	d := yamlsrc.NewDecoder(f)
	for {
		var o json.Object
		if o, err = d.NextObject(); err != nil {
			if err == io.EOF {
				err = nil
				break
			}
			return
		}
		mx.Lock()
		err = w.Submit(o)
		mx.Unlock()
		if err != nil {
			return
		}
	}
	log.I.F("wrote %d objects, %s, from %d documents to %s",
		w.Count(), humanize.Bytes(uint64(w.Written())), d.Documents(), path)
	return
}
