package token

// A ReadStream yields tokens one at a time.  Next returns nil once the stream
// is exhausted.
type ReadStream interface {
	Next() Token
}

// ChannelReadStream reads tokens from a channel until it is closed.
type ChannelReadStream <-chan Token

var _ ReadStream = make(ChannelReadStream)

func (r ChannelReadStream) Next() Token {
	return <-r
}

// SliceReadStream reads tokens from a slice.
type SliceReadStream struct {
	pending []Token
}

var _ ReadStream = &SliceReadStream{}

func NewSliceReadStream(toks []Token) *SliceReadStream {
	return &SliceReadStream{pending: toks}
}

func (r *SliceReadStream) Next() Token {
	if len(r.pending) == 0 {
		return nil
	}
	tok := r.pending[0]
	r.pending = r.pending[1:]
	return tok
}
