package json

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/arnodel/jsonwriter/token"
)

// TestDecoderValues tests decoding of JSON values into tokens
func TestDecoderValues(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []token.Token
	}{
		{
			name:     "true",
			input:    "true",
			expected: []token.Token{token.TrueScalar},
		},
		{
			name:     "null",
			input:    "null",
			expected: []token.Token{token.NullScalar},
		},
		{
			name:     "integer",
			input:    "-123",
			expected: []token.Token{token.Int64Scalar(-123)},
		},
		{
			name:     "float keeps its digits",
			input:    "3.140",
			expected: []token.Token{token.Float64Scalar(3.14, 3)},
		},
		{
			name:     "scientific notation",
			input:    "1.5e10",
			expected: []token.Token{token.Float64Scalar(1.5e10, -1)},
		},
		{
			name:     "integer too large for int64",
			input:    "18446744073709551616",
			expected: []token.Token{token.Float64Scalar(18446744073709551616, -1)},
		},
		{
			name:     "escaped string",
			input:    `"a\"b\\c\nd"`,
			expected: []token.Token{token.StringScalar("a\"b\\c\nd")},
		},
		{
			name:  "array",
			input: `[1, "two", [true]]`,
			expected: []token.Token{
				&token.StartArray{},
				token.Int64Scalar(1),
				token.StringScalar("two"),
				&token.StartArray{},
				token.TrueScalar,
				&token.EndArray{},
				&token.EndArray{},
			},
		},
		{
			name:  "object with string values",
			input: `{"a": "b", "c": {"d": "e"}, "f": "g"}`,
			expected: []token.Token{
				&token.StartObject{},
				token.NewKey("a"),
				token.StringScalar("b"),
				token.NewKey("c"),
				&token.StartObject{},
				token.NewKey("d"),
				token.StringScalar("e"),
				&token.EndObject{},
				token.NewKey("f"),
				token.StringScalar("g"),
				&token.EndObject{},
			},
		},
		{
			name:  "objects in array",
			input: `[{"a": []}, "b"]`,
			expected: []token.Token{
				&token.StartArray{},
				&token.StartObject{},
				token.NewKey("a"),
				&token.StartArray{},
				&token.EndArray{},
				&token.EndObject{},
				token.StringScalar("b"),
				&token.EndArray{},
			},
		},
		{
			name:  "multiple values",
			input: "1 \"x\"\n{}",
			expected: []token.Token{
				token.Int64Scalar(1),
				token.StringScalar("x"),
				&token.StartObject{},
				&token.EndObject{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := decodeString(t, tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assertTokensEqual(t, tokens, tt.expected)
		})
	}
}

func TestDecoderErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unclosed array", "[1, 2"},
		{"unclosed object", `{"a": 1`},
		{"missing value", `{"a": }`},
		{"bad literal", "tru"},
		{"trailing comma", "[1,]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeString(t, tt.input)
			if err == nil {
				t.Errorf("expected an error for %q", tt.input)
			}
		})
	}
}

func TestDecoderUnexpectedEOF(t *testing.T) {
	_, err := decodeString(t, `{"a": [1`)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected %v, got %v", io.ErrUnexpectedEOF, err)
	}
}

func TestDecoderEmptyInput(t *testing.T) {
	tokens, err := decodeString(t, "  \n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 0 {
		t.Errorf("expected no tokens, got %v", tokens)
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"0", "Scalar(0)"},
		{"-0", "Scalar(0)"},
		{"12.50", "Scalar(12.50)"},
		{"1e3", "Scalar(1000)"},
		{"-2.5E-1", "Scalar(-0.25)"},
		{"12345678901234567890123", "Scalar(12345678901234568000000)"},
		{"-9223372036854775809", "Scalar(-9223372036854776000)"},
	}
	for _, tt := range tests {
		scalar, err := ParseNumber(tt.input)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.input, err)
			continue
		}
		if scalar.String() != tt.expected {
			t.Errorf("expected %q, got %q", tt.expected, scalar.String())
		}
	}
	if _, err := ParseNumber("1e999"); err == nil {
		t.Error("expected an error for out of range number")
	}
}

// decodeString is a helper that decodes a string into tokens
func decodeString(t *testing.T, input string) ([]token.Token, error) {
	t.Helper()
	decoder := NewDecoder(strings.NewReader(input))
	ch := make(chan token.Token)
	var err error
	go func() {
		defer close(ch)
		err = decoder.Produce(ch)
	}()
	var tokens []token.Token
	for tok := range ch {
		tokens = append(tokens, tok)
	}
	return tokens, err
}

func assertTokensEqual(t *testing.T, got, want []token.Token) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens %v, got %d tokens %v", len(want), want, len(got), got)
	}
	for i := range want {
		if got[i].String() != want[i].String() {
			t.Errorf("token %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}
