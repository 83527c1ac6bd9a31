// Package interrupt runs registered handlers once when the process receives
// SIGINT or SIGTERM, so that files being written can be finished before exit.
package interrupt

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"simplejson.mleku.dev/log"
)

var (
	mx       sync.Mutex
	handlers []func()
	once     sync.Once
	signals  = make(chan os.Signal, 1)
	done     = make(chan struct{})
	// exit is replaced in tests.
	exit = os.Exit
)

// AddHandler registers fn to run on interrupt. Handlers run in reverse order of
// registration, like deferred calls.
func AddHandler(fn func()) {
	mx.Lock()
	handlers = append(handlers, fn)
	mx.Unlock()
	once.Do(listen)
}

func listen() {
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-signals
		log.I.F("received %s, shutting down", sig)
		Run()
		exit(1)
	}()
}

// Run calls the registered handlers now, once. Later calls do nothing.
func Run() {
	mx.Lock()
	defer mx.Unlock()
	select {
	case <-done:
		return
	default:
	}
	for i := len(handlers) - 1; i >= 0; i-- {
		handlers[i]()
	}
	close(done)
}

// Done is closed once the handlers have run.
func Done() <-chan struct{} { return done }
