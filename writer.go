package jsonwriter

import (
	"math"
	"strconv"

	"github.com/arnodel/jsonwriter/internal/debug"
)

// A Writer emits a JSON document to a Sink one token at a time, checking at
// each call that the sequence of calls is allowed by the JSON grammar.
//
// For example
//
//	w := jsonwriter.New(sink)
//	w.BeginObject()
//	w.Key("name")
//	w.String("Joe")
//	w.Key("age")
//	w.Number(12)
//	w.EndObject()
//
// sends {"name":"Joe","age":12} to the sink.  Nothing is ever buffered beyond
// the current token, so output can be arbitrarily large.
//
// Every operation returns nil on success.  The first failure is latched: the
// operation returns an *Error and so does every later operation, without
// writing anything.  Output already sent to the sink is then an incomplete
// document, which the caller should discard.  There is no way to reset a
// Writer.
//
// The top-level value may be a container or a scalar.  Once it is complete
// the document is finished and any further value is a syntax error, unless
// the Writer was created with WithValueSeparator.
//
// A Writer must not be used concurrently from several goroutines.
type Writer struct {
	sink        Sink
	scopes      scopeStack
	err         *Error
	documents   int
	colorizer   *Colorizer
	separator   []byte
	valueStream bool
	buf         []byte // scratch space for the current token
}

// New returns a Writer sending output to sink.
func New(sink Sink, opts ...Option) *Writer {
	w := &Writer{
		sink:   sink,
		scopes: newScopeStack(DefaultMaxDepth),
		buf:    make([]byte, 0, 64),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Result returns the current status of the writer.  Its String() method gives
// a description suitable for users ("No error" if everything is fine).
func (w *Writer) Result() Result {
	if w.err == nil {
		return Ok
	}
	return w.err.Result
}

// Err returns the latched error, or nil.
func (w *Writer) Err() error {
	if w.err == nil {
		return nil
	}
	return w.err
}

// Depth returns the number of open containers.
func (w *Writer) Depth() int {
	return w.scopes.len()
}

// Documents returns the number of complete top-level values written so far.
func (w *Writer) Documents() int {
	return w.documents
}

// BeginObject opens a JSON object.
func (w *Writer) BeginObject() error {
	return w.begin("BeginObject", objectScope, '{')
}

// EndObject closes the current JSON object.  It fails if the innermost open
// container is not an object or if its last key has no value.
func (w *Writer) EndObject() error {
	return w.end("EndObject", objectScope, '}')
}

// BeginArray opens a JSON array.
func (w *Writer) BeginArray() error {
	return w.begin("BeginArray", arrayScope, '[')
}

// EndArray closes the current JSON array.
func (w *Writer) EndArray() error {
	return w.end("EndArray", arrayScope, ']')
}

// Key writes an object key.  It must be followed by exactly one value.
func (w *Writer) Key(k string) error {
	const op = "Key"
	if w.err != nil {
		return w.err
	}
	top := w.scopes.peek()
	if top == nil {
		return w.fail(op, ScopeUnderflow, "no open object")
	}
	if top.kind != objectScope {
		return w.fail(op, SyntaxError, "innermost container is an array")
	}
	if top.awaitingValue {
		return w.fail(op, SyntaxError, "previous key has no value")
	}
	buf := grow(w.buf[:0], quotedMaxLen(len(k))+2+w.colorOverhead())
	if !top.first {
		buf = append(buf, ',')
	}
	buf = w.colorizer.appendKeyColor(buf)
	buf = appendQuoted(buf, k)
	buf = w.colorizer.appendReset(buf)
	buf = append(buf, ':')
	if err := w.emit(op, buf); err != nil {
		return err
	}
	top.first = false
	top.awaitingValue = true
	return nil
}

// String writes a string value.
func (w *Writer) String(s string) error {
	const op = "String"
	buf, err := w.startValue(op)
	if err != nil {
		return err
	}
	buf = grow(buf, quotedMaxLen(len(s))+w.colorOverhead())
	buf = w.colorizer.appendScalarColor(buf, StringType)
	buf = appendQuoted(buf, s)
	buf = w.colorizer.appendReset(buf)
	return w.endValue(op, buf)
}

// Number writes an integer value.
func (w *Writer) Number(n int64) error {
	const op = "Number"
	buf, err := w.startValue(op)
	if err != nil {
		return err
	}
	buf = w.colorizer.appendScalarColor(buf, NumberType)
	buf = strconv.AppendInt(buf, n, 10)
	buf = w.colorizer.appendReset(buf)
	return w.endValue(op, buf)
}

// Float writes f in fixed-point notation with exactly precision digits after
// the decimal point (and no decimal point if precision is 0).  The value is
// rounded to the nearest representable decimal, ties to even, so
// Float(3.5, 0) writes 4 and Float(2.5, 0) writes 2.  A precision of -1
// writes the fewest digits that represent f exactly.
//
// NaN and infinities cannot be represented in JSON and make the writer fail
// with InvalidNumber, as does a precision below -1.
func (w *Writer) Float(f float64, precision int) error {
	const op = "Float"
	buf, err := w.startValue(op)
	if err != nil {
		return err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return w.fail(op, InvalidNumber, "not a finite number")
	}
	if precision < -1 {
		return w.fail(op, InvalidNumber, "precision must be at least -1")
	}
	buf = w.colorizer.appendScalarColor(buf, NumberType)
	buf = strconv.AppendFloat(buf, f, 'f', precision, 64)
	buf = w.colorizer.appendReset(buf)
	return w.endValue(op, buf)
}

// Bool writes true or false.
func (w *Writer) Bool(b bool) error {
	const op = "Bool"
	buf, err := w.startValue(op)
	if err != nil {
		return err
	}
	buf = w.colorizer.appendScalarColor(buf, BoolType)
	if b {
		buf = append(buf, trueBytes...)
	} else {
		buf = append(buf, falseBytes...)
	}
	buf = w.colorizer.appendReset(buf)
	return w.endValue(op, buf)
}

// Null writes null.
func (w *Writer) Null() error {
	const op = "Null"
	buf, err := w.startValue(op)
	if err != nil {
		return err
	}
	buf = w.colorizer.appendScalarColor(buf, NullType)
	buf = append(buf, nullBytes...)
	buf = w.colorizer.appendReset(buf)
	return w.endValue(op, buf)
}

func (w *Writer) begin(op string, kind scopeKind, open byte) error {
	if w.err != nil {
		return w.err
	}
	if w.scopes.full() {
		return w.fail(op, ScopeOverflow, "maximum depth is "+strconv.Itoa(w.scopes.capacity))
	}
	buf, err := w.startValue(op)
	if err != nil {
		return err
	}
	buf = append(buf, open)
	if err := w.emit(op, buf); err != nil {
		return err
	}
	// An object waiting for a value keeps waiting until the new container is
	// closed.
	if top := w.scopes.peek(); top != nil && top.kind == arrayScope {
		top.first = false
	}
	w.scopes.push(kind)
	return nil
}

func (w *Writer) end(op string, kind scopeKind, close byte) error {
	if w.err != nil {
		return w.err
	}
	top := w.scopes.peek()
	if top == nil {
		return w.fail(op, ScopeUnderflow, "no open "+kind.String())
	}
	if top.kind != kind {
		return w.fail(op, SyntaxError, "innermost container is an "+top.kind.String())
	}
	if top.awaitingValue {
		return w.fail(op, SyntaxError, "last key has no value")
	}
	if err := w.emit(op, append(w.buf[:0], close)); err != nil {
		return err
	}
	w.scopes.pop()
	top = w.scopes.peek()
	if top == nil {
		return w.completeDocument(op)
	}
	if top.kind == objectScope {
		top.awaitingValue = false
	}
	return nil
}

// startValue checks that a value may be written now and returns the scratch
// buffer containing whatever separator must precede it.
func (w *Writer) startValue(op string) ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	buf := w.buf[:0]
	top := w.scopes.peek()
	switch {
	case top == nil:
		if w.documents > 0 {
			if !w.valueStream {
				return nil, w.fail(op, SyntaxError, "document is complete")
			}
			buf = append(buf, w.separator...)
		}
	case top.kind == arrayScope:
		if !top.first {
			buf = append(buf, ',')
		}
	case !top.awaitingValue:
		return nil, w.fail(op, SyntaxError, "object value without a key")
	}
	return buf, nil
}

// endValue emits a complete scalar and updates the enclosing scope.
func (w *Writer) endValue(op string, buf []byte) error {
	if err := w.emit(op, buf); err != nil {
		return err
	}
	top := w.scopes.peek()
	switch {
	case top == nil:
		return w.completeDocument(op)
	case top.kind == arrayScope:
		top.first = false
	default:
		top.awaitingValue = false
	}
	return nil
}

func (w *Writer) emit(op string, buf []byte) error {
	w.buf = buf
	if err := w.sink.Append(buf); err != nil {
		return w.latch(&Error{Op: op, Result: SinkFailure, Err: err})
	}
	return nil
}

func (w *Writer) completeDocument(op string) error {
	w.documents++
	if f, ok := w.sink.(Flusher); ok {
		if err := f.Flush(); err != nil {
			return w.latch(&Error{Op: op, Result: SinkFailure, Reason: "flush", Err: err})
		}
	}
	return nil
}

func (w *Writer) fail(op string, res Result, reason string) error {
	return w.latch(&Error{Op: op, Result: res, Reason: reason})
}

func (w *Writer) latch(err *Error) error {
	w.err = err
	if debug.On {
		debug.Printf("%s (depth=%d)", err, w.scopes.len())
	}
	return err
}

func (w *Writer) colorOverhead() int {
	if w.colorizer == nil {
		return 0
	}
	n := len(w.colorizer.KeyColorCode)
	for _, code := range w.colorizer.ScalarColorCodes {
		if len(code) > n {
			n = len(code)
		}
	}
	return n + len(w.colorizer.ResetCode)
}

// grow makes sure there is room for n more bytes in b.
func grow(b []byte, n int) []byte {
	if cap(b)-len(b) >= n {
		return b
	}
	nb := make([]byte, len(b), len(b)+n)
	copy(nb, b)
	return nb
}

var (
	trueBytes  = []byte("true")
	falseBytes = []byte("false")
	nullBytes  = []byte("null")
)
