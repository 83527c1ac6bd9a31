// Package stream writes a sequence of JSON objects to a file as one top level
// JSON array, one object at a time, so the sequence is never held in memory.
//
// The file is only valid JSON once Close has written the closing bracket. A
// process that dies before that leaves the array unterminated. WithFile
// guarantees Close on every return path of the caller's function, including a
// panic.
package stream

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"

	"simplejson.mleku.dev/chk"
	"simplejson.mleku.dev/json"
	"simplejson.mleku.dev/log"
	"simplejson.mleku.dev/units"
)

const (
	header    = "[\n"
	separator = ",\n"
	trailer   = "\n]"
)

// DefaultBufferSize is the size of the write buffer in front of the sink.
const DefaultBufferSize = 64 * units.Kb

// ErrClosed is returned by Submit after Close.
var ErrClosed = errors.New("stream: writer is closed")

type options struct {
	mode json.Mode
	size int
}

// Option configures a Writer.
type Option func(o *options)

// WithMode sets the string formatting mode of submitted objects.
func WithMode(m json.Mode) Option { return func(o *options) { o.mode = m } }

// WithBufferSize sets the write buffer size. Values below 1 disable buffering
// beyond the minimum bufio allows.
func WithBufferSize(n int) Option { return func(o *options) { o.size = n } }

// Writer is a JSON array writer. It is not safe for concurrent use.
type Writer struct {
	name    string
	sink    io.WriteCloser
	buf     *bufio.Writer
	mode    json.Mode
	scratch []byte
	count   int
	written int64
	err     error
	closed  bool
}

// Open creates or truncates the file at path and writes the opening bracket.
func Open(path string, opts ...Option) (w *Writer, err error) {
	var f *os.File
	if f, err = os.Create(path); chk.E(err) {
		err = errors.Wrapf(err, "stream: open %s", path)
		return
	}
	if w, err = New(f, opts...); err != nil {
		return
	}
	w.name = path
	log.D.F("opened %s", path)
	return
}

// New starts a JSON array on sink. The Writer owns sink from here on and closes
// it in Close, or right away if the opening bracket cannot be written.
func New(sink io.WriteCloser, opts ...Option) (w *Writer, err error) {
	o := options{size: DefaultBufferSize}
	for _, opt := range opts {
		opt(&o)
	}
	w = &Writer{
		sink: sink,
		buf:  bufio.NewWriterSize(sink, o.size),
		mode: o.mode,
	}
	if err = w.write([]byte(header)); err != nil {
		chk.E(sink.Close())
		w = nil
	}
	return
}

func (w *Writer) write(p []byte) (err error) {
	if w.err != nil {
		return w.err
	}
	var n int
	n, err = w.buf.Write(p)
	w.written += int64(n)
	if chk.E(err) {
		w.err = errors.Wrap(err, "stream: write")
		err = w.err
	}
	return
}

// Submit appends o to the array, preceded by a comma and a newline unless it is
// the first object. After a failed write every further Submit returns the same
// error.
func (w *Writer) Submit(o json.Object) (err error) {
	if w.closed {
		return ErrClosed
	}
	if w.count > 0 {
		if err = w.write([]byte(separator)); err != nil {
			return
		}
	}
	w.scratch = json.AppendObject(w.scratch[:0], o, w.mode)
	if err = w.write(w.scratch); err != nil {
		return
	}
	w.count++
	return
}

// Flush pushes buffered output to the sink.
func (w *Writer) Flush() (err error) {
	if w.err != nil {
		return w.err
	}
	if err = w.buf.Flush(); chk.E(err) {
		w.err = errors.Wrap(err, "stream: flush")
		err = w.err
	}
	return
}

// Close writes the closing bracket, flushes and closes the sink. The sink is
// closed even when an earlier write failed, in which case that error is
// returned and no bracket is written. Calling Close again does nothing.
func (w *Writer) Close() (err error) {
	if w.closed {
		return
	}
	w.closed = true
	if err = w.write([]byte(trailer)); err == nil {
		err = w.Flush()
	}
	if cerr := w.sink.Close(); chk.E(cerr) && err == nil {
		err = errors.Wrap(cerr, "stream: close")
	}
	log.D.F("closed %s after %d objects, %d bytes", w.name, w.count, w.written)
	return
}

// Count is the number of objects submitted so far.
func (w *Writer) Count() int { return w.count }

// Written is the number of bytes handed to the buffer so far.
func (w *Writer) Written() int64 { return w.written }

// Name is the path given to Open, or empty for a Writer made with New.
func (w *Writer) Name() string { return w.name }

// WithFile opens path, runs fn with the Writer and closes it however fn
// returns. The error of fn takes precedence over the error of Close.
func WithFile(path string, fn func(w *Writer) error, opts ...Option) (err error) {
	var w *Writer
	if w, err = Open(path, opts...); err != nil {
		return
	}
	defer func() {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}()
	err = fn(w)
	return
}
