package json

import (
	stdjson "encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arnodel/jsonwriter/token"
)

// A Decoder reads JSON input and streams it into a JSON stream.  The input
// may contain any number of top-level values.
type Decoder struct {
	dec *stdjson.Decoder
}

var _ token.StreamSource = &Decoder{}

// NewDecoder sets up a new Decoder instance to read from the given input.
func NewDecoder(in io.Reader) *Decoder {
	dec := stdjson.NewDecoder(in)
	dec.UseNumber()
	return &Decoder{dec: dec}
}

// The standard library tokenizer does not tell keys from string values, so
// the decoder keeps track of open containers itself.
type container struct {
	isObject  bool
	expectKey bool
}

// Produce reads a stream of JSON values and streams them, until it runs
// out of input or encounter invalid JSON, in which case it will return an
// error.
func (d *Decoder) Produce(out chan<- token.Token) error {
	var stack []container
	valueDone := func() {
		if n := len(stack); n > 0 && stack[n-1].isObject {
			stack[n-1].expectKey = true
		}
	}
	for {
		tok, err := d.dec.Token()
		if err == io.EOF {
			if len(stack) > 0 {
				return io.ErrUnexpectedEOF
			}
			return nil
		}
		if err != nil {
			return err
		}
		switch x := tok.(type) {
		case stdjson.Delim:
			switch x {
			case '{':
				out <- &token.StartObject{}
				stack = append(stack, container{isObject: true, expectKey: true})
			case '[':
				out <- &token.StartArray{}
				stack = append(stack, container{})
			case '}':
				out <- &token.EndObject{}
				stack = stack[:len(stack)-1]
				valueDone()
			case ']':
				out <- &token.EndArray{}
				stack = stack[:len(stack)-1]
				valueDone()
			}
			continue
		case string:
			if n := len(stack); n > 0 && stack[n-1].expectKey {
				out <- token.NewKey(x)
				stack[n-1].expectKey = false
				continue
			}
		case stdjson.Number:
			scalar, err := ParseNumber(string(x))
			if err != nil {
				return err
			}
			out <- scalar
			valueDone()
			continue
		}
		// Strings, booleans and null
		scalar, err := token.ToScalar(tok)
		if err != nil {
			return fmt.Errorf("unexpected JSON token: %w", err)
		}
		out <- scalar
		valueDone()
	}
}

// ParseNumber converts a JSON number literal to a scalar.  Integers that fit
// in an int64 are kept exact.  Other numbers become floats which will be
// written with as many fractional digits as the literal has, or as few as
// needed if the literal has an exponent.
//
// Integers outside the int64 range are parsed as float64 and written in
// their shortest form, so digits beyond float64 precision are lost:
// 12345678901234567890123 is written 12345678901234568000000.
func ParseNumber(lit string) (*token.Scalar, error) {
	integer := !strings.ContainsAny(lit, ".eE")
	if integer {
		if n, err := strconv.ParseInt(lit, 10, 64); err == nil {
			return token.Int64Scalar(n), nil
		}
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q: %w", lit, err)
	}
	if integer {
		return token.Float64Scalar(f, -1), nil
	}
	return token.Float64Scalar(f, precisionOf(lit)), nil
}

func precisionOf(lit string) int {
	if strings.ContainsAny(lit, "eE") {
		return -1
	}
	if i := strings.IndexByte(lit, '.'); i >= 0 {
		return len(lit) - i - 1
	}
	return 0
}
