package jsonwriter

// ScalarType encodes the four possible JSON scalar types.
type ScalarType uint8

const (
	NullType   ScalarType = 0x0 // the type of JSON null
	BoolType   ScalarType = 0x1 // a JSON boolean
	NumberType ScalarType = 0x2 // a JSON number
	StringType ScalarType = 0x3 // a JSON string
)

// A Colorizer surrounds keys and scalars with terminal color codes.  The
// output is then meant to be read by people, it is no longer valid JSON.
type Colorizer struct {
	KeyColorCode     []byte
	ScalarColorCodes [4][]byte // indexed by ScalarType
	ResetCode        []byte
}

// Some color ANSI codes
var (
	Reset = []byte("\033[0m")

	Black   = []byte("\033[30m")
	Red     = []byte("\033[31m")
	Green   = []byte("\033[32m")
	Yellow  = []byte("\033[33m")
	Blue    = []byte("\033[34m")
	Magenta = []byte("\033[35m")
	Cyan    = []byte("\033[36m")
	White   = []byte("\033[37m")

	BrightBlue = []byte("\033[34;1m")
	DimWhite   = []byte("\033[37;2m")
)

// DefaultColorizer is the color scheme used by the command line tools.
var DefaultColorizer = Colorizer{
	ScalarColorCodes: [4][]byte{DimWhite, Yellow, White, Green},
	KeyColorCode:     BrightBlue,
	ResetCode:        Reset,
}

// appendScalarColor appends the color code for a scalar of type tp.  It does
// nothing if c is nil.
func (c *Colorizer) appendScalarColor(dst []byte, tp ScalarType) []byte {
	if c == nil {
		return dst
	}
	return append(dst, c.ScalarColorCodes[tp]...)
}

func (c *Colorizer) appendKeyColor(dst []byte) []byte {
	if c == nil {
		return dst
	}
	return append(dst, c.KeyColorCode...)
}

func (c *Colorizer) appendReset(dst []byte) []byte {
	if c == nil {
		return dst
	}
	return append(dst, c.ResetCode...)
}
