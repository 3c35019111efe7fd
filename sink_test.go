package jsonwriter

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestSinkFailure(t *testing.T) {
	errBroken := errors.New("broken")
	var got []string
	sink := SinkFunc(func(p []byte) error {
		if len(got) == 2 {
			return errBroken
		}
		got = append(got, string(p))
		return nil
	})
	w := New(sink)
	w.BeginArray()
	w.Number(1)
	err := w.Number(2)
	if !errors.Is(err, ErrSinkFailure) {
		t.Errorf("expected sink failure, got %v", err)
	}
	if !errors.Is(err, errBroken) {
		t.Errorf("expected error to wrap %q, got %v", errBroken, err)
	}
	if w.Result() != SinkFailure {
		t.Errorf("expected result %s, got %s", SinkFailure, w.Result())
	}
	if err := w.EndArray(); err == nil {
		t.Error("expected latched error")
	}
	if len(got) != 2 || got[0] != "[" || got[1] != "1" {
		t.Errorf("unexpected fragments %q", got)
	}
}

// One Append call per token
func TestSinkFragments(t *testing.T) {
	var got []string
	w := New(SinkFunc(func(p []byte) error {
		got = append(got, string(p))
		return nil
	}))
	w.BeginObject()
	w.Key("a")
	w.BeginArray()
	w.Number(1)
	w.Number(2)
	w.EndArray()
	w.Key("b")
	w.String("c")
	w.EndObject()
	expected := []string{`{`, `"a":`, `[`, `1`, `,2`, `]`, `,"b":`, `"c"`, `}`}
	if len(got) != len(expected) {
		t.Fatalf("expected %q, got %q", expected, got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("fragment %d: expected %q, got %q", i, expected[i], got[i])
		}
	}
}

type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) {
	return len(p) / 2, nil
}

func TestWriterSinkShortWrite(t *testing.T) {
	w := New(NewWriterSink(shortWriter{}))
	err := w.BeginArray()
	if !errors.Is(err, io.ErrShortWrite) {
		t.Errorf("expected short write, got %v", err)
	}
}

type countingFlusher struct {
	count int
	err   error
}

func (f *countingFlusher) Flush() error {
	f.count++
	return f.err
}

func TestWriterSinkFlushesDocuments(t *testing.T) {
	var out bytes.Buffer
	flusher := &countingFlusher{}
	w := New(&WriterSink{Writer: &out, Flusher: flusher}, WithValueSeparator("\n"))
	w.BeginArray()
	w.Number(1)
	if flusher.count != 0 {
		t.Errorf("expected no flush inside a document, got %d", flusher.count)
	}
	w.EndArray()
	w.Null()
	if flusher.count != 2 {
		t.Errorf("expected 2 flushes, got %d", flusher.count)
	}
	if out.String() != "[1]\nnull" {
		t.Errorf("expected %q, got %q", "[1]\nnull", out.String())
	}
}

func TestWriterSinkFlushFailure(t *testing.T) {
	errFlush := errors.New("flush failed")
	w := New(&WriterSink{Writer: io.Discard, Flusher: &countingFlusher{err: errFlush}})
	w.BeginObject()
	err := w.EndObject()
	if !errors.Is(err, errFlush) || !errors.Is(err, ErrSinkFailure) {
		t.Errorf("expected flush failure, got %v", err)
	}
}

func TestWriterSinkBufio(t *testing.T) {
	var out bytes.Buffer
	buf := bufio.NewWriter(&out)
	w := New(&WriterSink{Writer: buf, Flusher: buf})
	w.BeginArray()
	w.Bool(false)
	if out.Len() != 0 {
		t.Errorf("expected output to be buffered, got %q", out.String())
	}
	w.EndArray()
	if out.String() != "[false]" {
		t.Errorf("expected %q, got %q", "[false]", out.String())
	}
}
