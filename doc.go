// Package jsonwriter implements a streaming JSON writer.
//
// A Writer turns a sequence of calls (BeginObject, Key, String, EndObject,
// ...) into compact JSON text, sent to a Sink as it is produced.  Nothing
// beyond the current token is buffered, so memory usage depends only on the
// nesting depth of the document, not on its size.
//
// Each call is checked against the JSON grammar.  Misplaced keys or values,
// mismatched closing calls and excessive nesting are reported as errors and
// never result in invalid output being written.  The first error is sticky:
// the Writer refuses all further calls.
//
// The package is organized as follows:
//
//   - token: one token type per Writer call, and token streams
//   - encoding/json: JSON decoder producing tokens, and an encoder driving a
//     Writer from tokens
//   - encoding/csv: CSV decoder producing tokens
//
// The command line tools are in cmd/jw (re-encode JSON or CSV as compact
// JSON) and cmd/jwtree (dump a random tree).  You can install them with:
//
//	go install github.com/arnodel/jsonwriter/cmd/jw
package jsonwriter
