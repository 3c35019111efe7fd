package csv

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/arnodel/jsonwriter/encoding/json"
	"github.com/arnodel/jsonwriter/token"
)

// A Decoder reads CSV input and streams it into a JSON stream, one value per
// record.
type Decoder struct {
	reader                *csv.Reader
	HasHeader             bool // When true, treat the first record as a header
	RecordsProduceObjects bool // When false, produce an array for each record, else an object
	fieldNames            []*token.Key
}

var _ token.StreamSource = &Decoder{}

// NewDecoder sets up a new Decoder instance to read from the given input.
func NewDecoder(in io.Reader) *Decoder {
	reader := csv.NewReader(in)
	reader.FieldsPerRecord = -1
	return &Decoder{reader: reader}
}

// Produce reads a stream of CSV records, until it runs out of input or
// encounters invalid CSV, in which case it will return an error
func (d *Decoder) Produce(out chan<- token.Token) error {
	recordCount := 0
	for {
		record, err := d.reader.Read()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if recordCount > 0 || !d.HasHeader {
			d.produceRecord(record, out)
		} else {
			// Try and get field names from the first record
			d.SetFieldNames(record)
		}
		recordCount++
	}
}

// SetFieldNames sets the field names for records.  Should be called before Produce.
func (d *Decoder) SetFieldNames(record []string) {
	for _, field := range record {
		d.fieldNames = append(d.fieldNames, token.NewKey(field))
	}
}

func (d *Decoder) produceRecord(record []string, out chan<- token.Token) {
	if d.RecordsProduceObjects {
		out <- &token.StartObject{}
		for i, field := range record {
			out <- d.getFieldName(i)
			out <- fieldToScalar(field)
		}
		out <- &token.EndObject{}
	} else {
		out <- &token.StartArray{}
		for _, field := range record {
			out <- fieldToScalar(field)
		}
		out <- &token.EndArray{}
	}
}

func (d *Decoder) getFieldName(i int) *token.Key {
	for j := len(d.fieldNames); j <= i; j++ {
		d.fieldNames = append(d.fieldNames, token.NewKey(fmt.Sprintf("field_%d", j+1)))
	}
	return d.fieldNames[i]
}

func fieldToScalar(field string) *token.Scalar {
	switch field {
	case "":
		return token.NullScalar
	case "true":
		return token.TrueScalar
	case "false":
		return token.FalseScalar
	}
	if couldBeNumber(field) {
		if scalar, err := json.ParseNumber(field); err == nil {
			return scalar
		}
	}
	return token.StringScalar(field)
}

// couldBeNumber filters out fields that strconv would accept but JSON does
// not, such as "Inf" or "0x10".
func couldBeNumber(field string) bool {
	for _, b := range []byte(field) {
		if !(isDigit(b) || b == '.' || b == 'e' || b == 'E' || b == '+' || b == '-') {
			return false
		}
	}
	return true
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
