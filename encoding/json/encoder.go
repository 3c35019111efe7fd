package json

import (
	"errors"

	"github.com/arnodel/jsonwriter"
	"github.com/arnodel/jsonwriter/token"
)

// ErrIncomplete is returned when a token stream ends inside a container.
var ErrIncomplete = errors.New("incomplete JSON value")

// An Encoder outputs a stream of JSON values through a Writer.  To output
// several top-level values, the Writer must have been created with
// jsonwriter.WithValueSeparator.
type Encoder struct {
	*jsonwriter.Writer
}

var _ token.StreamSink = &Encoder{}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w *jsonwriter.Writer) *Encoder {
	return &Encoder{Writer: w}
}

// Consume writes the tokens in the given channel.  It stops at the first
// error the Writer reports and returns it.  The rest of the stream is then
// drained so that the producer does not block forever.
func (e *Encoder) Consume(stream <-chan token.Token) error {
	err := e.Encode(token.ChannelReadStream(stream))
	if err != nil {
		for range stream {
		}
	}
	return err
}

// Encode writes all the tokens in r.
func (e *Encoder) Encode(r token.ReadStream) error {
	for tok := r.Next(); tok != nil; tok = r.Next() {
		if err := tok.WriteTo(e.Writer); err != nil {
			return err
		}
	}
	return e.checkComplete()
}

func (e *Encoder) checkComplete() error {
	if e.Depth() > 0 {
		return ErrIncomplete
	}
	return nil
}
