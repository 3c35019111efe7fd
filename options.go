package jsonwriter

// DefaultMaxDepth is the nesting capacity of a Writer created without
// WithMaxDepth.
const DefaultMaxDepth = 256

// An Option configures a Writer at construction time.
type Option func(w *Writer)

// WithMaxDepth sets the maximum number of nested containers.  Values below 1
// are taken to be 1.
func WithMaxDepth(n int) Option {
	return func(w *Writer) {
		if n < 1 {
			n = 1
		}
		w.scopes = newScopeStack(n)
	}
}

// WithColorizer makes the Writer surround keys and scalars with the color
// codes of c.  A nil c disables colors.
func WithColorizer(c *Colorizer) Option {
	return func(w *Writer) {
		w.colorizer = c
	}
}

// WithValueSeparator turns the Writer into a value stream writer: once a
// top-level value is complete, another one may be written, preceded by sep.
// With "\n" this produces newline delimited JSON.
func WithValueSeparator(sep string) Option {
	return func(w *Writer) {
		w.separator = []byte(sep)
		w.valueStream = true
	}
}
