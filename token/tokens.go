package token

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/arnodel/jsonwriter"
)

// A Token is an item in a stream that encodes a JSON value.  Each token
// corresponds to one call on a jsonwriter.Writer.  For example, the JSON
// value
//
//	{"id": 123, "tags": ["important", "new"]}
//
// would be represented by the stream of Token (in pseudocode for
// clarity):
//
//	{            -> StartObject
//	"id":        -> Key("id")
//	123,         -> Scalar(123)
//	"tags":      -> Key("tags")
//	[            -> StartArray
//	"important", -> Scalar("important")
//	"new"        -> Scalar("new")
//	]            -> EndArray
//	}            -> EndObject
//
// Decoding input into a stream of Token values, processing this stream and
// writing out the outcome can be done concurrently using channels of Token
// values.
type Token interface {
	fmt.Stringer

	// WriteTo makes the writer call corresponding to the token.
	WriteTo(w *jsonwriter.Writer) error
}

// StartObject represents the start of a JSON object (introduced by '{').
type StartObject struct{}

func (s *StartObject) String() string {
	return "StartObject"
}

func (s *StartObject) WriteTo(w *jsonwriter.Writer) error {
	return w.BeginObject()
}

var _ Token = &StartObject{}

// EndObject represents the end of a JSON object (introduced by '}')
type EndObject struct{}

func (e *EndObject) String() string {
	return "EndObject"
}

func (e *EndObject) WriteTo(w *jsonwriter.Writer) error {
	return w.EndObject()
}

var _ Token = &EndObject{}

// StartArray represents the start of a JSON array (introduced by '[').
type StartArray struct{}

func (s *StartArray) String() string {
	return "StartArray"
}

func (s *StartArray) WriteTo(w *jsonwriter.Writer) error {
	return w.BeginArray()
}

var _ Token = &StartArray{}

// EndArray represents the end of a JSON array (introduced by ']')
type EndArray struct{}

func (e *EndArray) String() string {
	return "EndArray"
}

func (e *EndArray) WriteTo(w *jsonwriter.Writer) error {
	return w.EndArray()
}

var _ Token = &EndArray{}

// Key is an object key.  It must be followed by the token(s) encoding its
// value.
type Key struct {
	Name string
}

func NewKey(name string) *Key {
	return &Key{Name: name}
}

func (k *Key) String() string {
	return fmt.Sprintf("Key(%q)", k.Name)
}

func (k *Key) WriteTo(w *jsonwriter.Writer) error {
	return w.Key(k.Name)
}

var _ Token = &Key{}

// Scalar is the type used to represent all scalar JSON values, i.e.
// - strings
// - numbers
// - booleans (to values)
// - null (a single value)
type Scalar struct {

	// Type of the value
	Type jsonwriter.ScalarType

	// The value itself: nil, bool, string, float64 or an integer (normally
	// int64).
	Value any

	// Number of digits after the decimal point when Value is a float64, -1
	// meaning as many as needed.
	Precision int
}

var _ Token = &Scalar{}

func (s *Scalar) String() string {
	switch x := s.Value.(type) {
	case string:
		return fmt.Sprintf("Scalar(%q)", x)
	case float64:
		return "Scalar(" + strconv.FormatFloat(x, 'f', s.Precision, 64) + ")"
	case nil:
		return "Scalar(null)"
	default:
		return fmt.Sprintf("Scalar(%v)", x)
	}
}

// ErrInvalidScalar is returned when a Scalar holds a value that cannot be
// written as JSON.
var ErrInvalidScalar = errors.New("invalid scalar value")

// WriteTo writes the scalar's value.  Any Go integer type is accepted as a
// number, as is float32.
func (s *Scalar) WriteTo(w *jsonwriter.Writer) error {
	switch x := s.Value.(type) {
	case nil:
		return w.Null()
	case bool:
		return w.Bool(x)
	case string:
		return w.String(x)
	case float64:
		return w.Float(x, s.Precision)
	case float32:
		return w.Float(float64(x), s.Precision)
	}
	if n, ok := toInt64(s.Value); ok {
		return w.Number(n)
	}
	return fmt.Errorf("%w: %T", ErrInvalidScalar, s.Value)
}

// Equal reports whether s and t hold the same value.  Numbers are compared
// numerically, so Int64Scalar(1) equals Float64Scalar(1, 2).
func (s *Scalar) Equal(t *Scalar) bool {
	if s == nil || t == nil {
		return false
	}
	if s.Type != t.Type {
		return false
	}
	if s.Type != jsonwriter.NumberType {
		switch s.Value.(type) {
		case nil, bool, string:
			return s.Value == t.Value
		default:
			return false
		}
	}
	x, ok := toFloat(s.Value)
	if !ok {
		return false
	}
	y, ok := toFloat(t.Value)
	return ok && x == y
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	}
	if n, ok := toInt64(v); ok {
		return float64(n), true
	}
	return 0, false
}

// toInt64 converts any integer type to int64, failing for uint64 values
// that do not fit.
func toInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int64:
		return x, true
	case int:
		return int64(x), true
	case int32:
		return int64(x), true
	case int16:
		return int64(x), true
	case int8:
		return int64(x), true
	case uint64:
		if x > math.MaxInt64 {
			return 0, false
		}
		return int64(x), true
	case uint:
		if uint64(x) > math.MaxInt64 {
			return 0, false
		}
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint8:
		return int64(x), true
	default:
		return 0, false
	}
}

var (
	TrueScalar  = &Scalar{Type: jsonwriter.BoolType, Value: true}
	FalseScalar = &Scalar{Type: jsonwriter.BoolType, Value: false}
	NullScalar  = &Scalar{Type: jsonwriter.NullType}
)

func StringScalar(s string) *Scalar {
	return &Scalar{Type: jsonwriter.StringType, Value: s}
}

func Float64Scalar(x float64, precision int) *Scalar {
	return &Scalar{Type: jsonwriter.NumberType, Value: x, Precision: precision}
}

func Int64Scalar(n int64) *Scalar {
	return &Scalar{Type: jsonwriter.NumberType, Value: n}
}

func BoolScalar(b bool) *Scalar {
	if b {
		return TrueScalar
	}
	return FalseScalar
}

// ToScalar converts a Go value to a scalar.  Floats are written with as many
// digits as needed.
func ToScalar(value any) (*Scalar, error) {
	if value == nil {
		return NullScalar, nil
	}
	switch x := value.(type) {
	case string:
		return StringScalar(x), nil
	case float64:
		return Float64Scalar(x, -1), nil
	case float32:
		return Float64Scalar(float64(x), -1), nil
	case bool:
		return BoolScalar(x), nil
	}
	if n, ok := toInt64(value); ok {
		return Int64Scalar(n), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrInvalidScalar, value)
}
