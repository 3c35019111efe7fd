package jsonwriter

import "testing"

func TestAppendQuoted(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", `""`},
		{"simple string", "hello", `"hello"`},
		{"string with spaces", "hello world", `"hello world"`},
		{"unicode string", "hello 世界", `"hello 世界"`},
		{"string with tab", "tab\there", `"tab\there"`},
		{"string with quotes", `say "hello"`, `"say \"hello\""`},
		{"string with backslash", `path\to\file`, `"path\\to\\file"`},
		{"string with newline", "line1\nline2", `"line1\nline2"`},
		{"string with carriage return", "a\r\nb", `"a\r\nb"`},
		{"mixed", "a\"b\\c\nd", `"a\"b\\c\nd"`},
		{"only specials", "\"\\\n\t\r", `"\"\\\n\t\r"`},
		{"other control chars pass through", "a\x01b", "\"a\x01b\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := string(appendQuoted(nil, tt.input))
			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
			if len(result) > quotedMaxLen(len(tt.input)) {
				t.Errorf("literal of length %d exceeds bound %d", len(result), quotedMaxLen(len(tt.input)))
			}
		})
	}
}

func TestAppendQuotedKeepsPrefix(t *testing.T) {
	result := string(appendQuoted([]byte("x,"), "a\tb"))
	if result != `x,"a\tb"` {
		t.Errorf("expected %q, got %q", `x,"a\tb"`, result)
	}
}
