package jsonwriter

// appendQuoted appends s to dst as a JSON string literal.  Only newline, tab,
// carriage return, double quote and backslash are escaped, every other byte
// is copied as is.
func appendQuoted(dst []byte, s string) []byte {
	dst = append(dst, '"')
	start := 0
	for i := 0; i < len(s); i++ {
		var esc byte
		switch s[i] {
		case '\n':
			esc = 'n'
		case '\t':
			esc = 't'
		case '\r':
			esc = 'r'
		case '"':
			esc = '"'
		case '\\':
			esc = '\\'
		default:
			continue
		}
		dst = append(dst, s[start:i]...)
		dst = append(dst, '\\', esc)
		start = i + 1
	}
	dst = append(dst, s[start:]...)
	return append(dst, '"')
}

// quotedMaxLen is the size of the literal for a string of n bytes if every
// byte needs escaping.
func quotedMaxLen(n int) int {
	return 2*n + 2
}
