// Package codec centralizes the encodings colorsep writes besides the LUT
// text itself: value codecs for the JSON run report and stream compression
// for output files.
package codec

// Codec encodes and decodes run reports. Implementations must be safe for
// concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// Default is the codec used for run reports.
var Default Codec = GoJSON{}
