package token

// A StreamSource produces a stream of tokens, e.g. by decoding some input.
type StreamSource interface {
	Produce(chan<- Token) error
}

// A StreamSink consumes a stream of tokens, e.g. by writing them out.
type StreamSink interface {
	Consume(<-chan Token) error
}

// StartStream uses the source to start producing items and returns a new json
// stream where these items are produced.  This is always fast because the
// source is computed in a goroutine.
//
// As a source can produce errors, a handleError function can be provided.
func StartStream(source StreamSource, handleError func(error)) <-chan Token {
	out := make(chan Token)
	go func() {
		defer close(out)
		err := source.Produce(out)
		if err != nil && handleError != nil {
			handleError(err)
		}
	}()
	return out
}

func ConsumeStream(in <-chan Token, sink StreamSink) error {
	return sink.Consume(in)
}
