package colorspace

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"seehuhn.de/go/icc"
)

const (
	headerSize   = 128
	tagEntrySize = 12
)

// Header fields the decoder does not expose.
const (
	offVersion = 8
	offClass   = 12
)

var classDisplay = sig("mntr")

func sig(s string) uint32 {
	return binary.BigEndian.Uint32([]byte(s))
}

// s15Fixed16 decodes an ICC s15Fixed16Number.
func s15Fixed16(b []byte) float64 {
	return float64(int32(binary.BigEndian.Uint32(b))) / 65536
}

// tagTable maps tag signatures to their data.
type tagTable map[uint32][]byte

func readTags(data []byte) (tagTable, error) {
	if len(data) < headerSize+4 {
		return nil, fmt.Errorf("%w: truncated tag table", ErrUnsupportedProfile)
	}

	count := int(binary.BigEndian.Uint32(data[headerSize:]))
	if count > (len(data)-headerSize-4)/tagEntrySize {
		return nil, fmt.Errorf("%w: tag count %d exceeds profile size", ErrUnsupportedProfile, count)
	}

	tags := make(tagTable, count)
	for i := range count {
		e := data[headerSize+4+i*tagEntrySize:]
		s := binary.BigEndian.Uint32(e)
		off := uint64(binary.BigEndian.Uint32(e[4:]))
		size := uint64(binary.BigEndian.Uint32(e[8:]))
		if off+size > uint64(len(data)) {
			return nil, fmt.Errorf("%w: tag %q out of bounds", ErrUnsupportedProfile, sigString(s))
		}
		tags[s] = data[off : off+size]
	}
	return tags, nil
}

func sigString(s uint32) string {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], s)
	return string(b[:])
}

func (t tagTable) lookup(name string) ([]byte, error) {
	b, ok := t[sig(name)]
	if !ok {
		return nil, fmt.Errorf("%w: missing %q tag", ErrUnsupportedProfile, name)
	}
	return b, nil
}

func (t tagTable) xyz(name string) (XYZ, error) {
	b, err := t.lookup(name)
	if err != nil {
		return XYZ{}, err
	}
	if len(b) < 20 || binary.BigEndian.Uint32(b) != sig("XYZ ") {
		return XYZ{}, fmt.Errorf("%w: malformed %q tag", ErrUnsupportedProfile, name)
	}
	return XYZ{X: s15Fixed16(b[8:]), Y: s15Fixed16(b[12:]), Z: s15Fixed16(b[16:])}, nil
}

func (t tagTable) curve(name string) (ToneCurve, error) {
	b, err := t.lookup(name)
	if err != nil {
		return nil, err
	}
	if len(b) < 12 {
		return nil, fmt.Errorf("%w: malformed %q tag", ErrUnsupportedProfile, name)
	}

	switch binary.BigEndian.Uint32(b) {
	case sig("curv"):
		n := int(binary.BigEndian.Uint32(b[8:]))
		if len(b) < 12+2*n {
			return nil, fmt.Errorf("%w: truncated %q curve", ErrUnsupportedProfile, name)
		}
		switch n {
		case 0:
			return Gamma(1), nil
		case 1:
			// u8Fixed8Number gamma
			return Gamma(float64(binary.BigEndian.Uint16(b[12:])) / 256), nil
		}
		table := make(Table, n)
		for i := range table {
			table[i] = float64(binary.BigEndian.Uint16(b[12+2*i:])) / 65535
		}
		return table, nil

	case sig("para"):
		typ := int(binary.BigEndian.Uint16(b[8:]))
		if typ >= len(parametricParams) {
			return nil, fmt.Errorf("%w: parametric curve type %d", ErrUnsupportedProfile, typ)
		}
		n := parametricParams[typ]
		if len(b) < 12+4*n {
			return nil, fmt.Errorf("%w: truncated %q curve", ErrUnsupportedProfile, name)
		}
		params := make([]float64, n)
		for i := range params {
			params[i] = s15Fixed16(b[12+4*i:])
		}
		return NewParametric(typ, params...)

	default:
		return nil, fmt.Errorf("%w: %q tag of type %q", ErrUnsupportedProfile, name, sigString(binary.BigEndian.Uint32(b)))
	}
}

func (t tagTable) chad() (Matrix3, bool) {
	b, ok := t[sig("chad")]
	if !ok || len(b) < 44 || binary.BigEndian.Uint32(b) != sig("sf32") {
		return Matrix3{}, false
	}
	var m Matrix3
	for i := range 9 {
		m[i/3][i%3] = s15Fixed16(b[8+4*i:])
	}
	return m, true
}

// Decode parses an ICC matrix/TRC RGB profile.
func Decode(name string, data []byte) (*RGBProfile, error) {
	p, err := icc.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedProfile, err)
	}
	if p.ColorSpace != icc.RGBSpace {
		return nil, ErrNotRGB
	}

	tags, err := readTags(data)
	if err != nil {
		return nil, err
	}

	var cols [3]XYZ
	for i, tag := range []string{"rXYZ", "gXYZ", "bXYZ"} {
		if cols[i], err = tags.xyz(tag); err != nil {
			return nil, err
		}
	}

	var curves [3]ToneCurve
	for i, tag := range []string{"rTRC", "gTRC", "bTRC"} {
		if curves[i], err = tags.curve(tag); err != nil {
			return nil, err
		}
	}

	toPCS := Matrix3{
		{cols[0].X, cols[1].X, cols[2].X},
		{cols[0].Y, cols[1].Y, cols[2].Y},
		{cols[0].Z, cols[1].Z, cols[2].Z},
	}

	white, err := mediaWhite(data, tags)
	if err != nil {
		return nil, err
	}

	profile, err := NewRGBProfile(name, toPCS, curves, white)
	if err != nil {
		return nil, err
	}

	if m, ok := tags.chad(); ok {
		if inv, err := m.Inverse(); err == nil {
			profile.adopted = inv.ApplyXYZ(D50)
		}
	}
	return profile, nil
}

// mediaWhite reads the wtpt tag. Display profiles older than version 4 are
// treated as D50, as colour management modules do for them.
func mediaWhite(data []byte, tags tagTable) (XYZ, error) {
	if data[offVersion] < 4 && binary.BigEndian.Uint32(data[offClass:]) == classDisplay {
		return D50, nil
	}
	return tags.xyz("wtpt")
}

// Load reads and decodes an ICC profile file.
func Load(path string) (*RGBProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownProfile, err)
	}

	p, err := Decode(filepath.Base(path), data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Resolve returns the built-in profile called nameOrPath, or else the ICC
// profile stored at that path.
func Resolve(nameOrPath string) (*RGBProfile, error) {
	if IsNamed(nameOrPath) {
		return Lookup(nameOrPath)
	}
	return Load(nameOrPath)
}
