package jsonwriter

import (
	"io"
)

// A Sink receives the output of a Writer, one fragment per successful
// operation, in order.  The slice passed to Append is only valid for the
// duration of the call.
//
// The Writer never opens, closes or seeks a sink.  A sink may also implement
// Flusher, in which case it is flushed each time a top-level value is
// complete.
type Sink interface {
	Append(p []byte) error
}

// A Flusher is a sink that buffers output.
type Flusher interface {
	Flush() error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(p []byte) error

var _ Sink = SinkFunc(nil)

// Append calls f(p).
func (f SinkFunc) Append(p []byte) error {
	return f(p)
}

// WriterSink implements a Sink which sends output to an io.Writer.
//
// If Flusher is not nil, it is flushed whenever a top-level value has been
// written.  This is useful when Writer is a bufio.Writer sending output to a
// terminal, so the user gets feedback early.
type WriterSink struct {
	io.Writer
	Flusher Flusher
}

var (
	_ Sink    = &WriterSink{}
	_ Flusher = &WriterSink{}
)

// NewWriterSink returns a sink writing to w, without flushing.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{Writer: w}
}

// Append sends p verbatim to the sink's writer.
func (s *WriterSink) Append(p []byte) error {
	n, err := s.Write(p)
	if err != nil {
		return err
	}
	if n < len(p) {
		return io.ErrShortWrite
	}
	return nil
}

// Flush flushes the Flusher if there is one.
func (s *WriterSink) Flush() error {
	if s.Flusher == nil {
		return nil
	}
	return s.Flusher.Flush()
}
