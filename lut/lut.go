package lut

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
	"github.com/hupe1980/colorsep/vector"
)

var (
	// ErrSize is returned when the number of colours does not match the size.
	ErrSize = errors.New("lut: colour count does not match size")

	// ErrFormat is returned for malformed .cube input.
	ErrFormat = errors.New("lut: malformed cube file")

	// ErrMismatch is returned by Compare when two LUTs differ.
	ErrMismatch = errors.New("lut: tables differ")
)

// Ext is the file extension of .cube LUTs.
const Ext = ".cube"

// MaxSize is the largest LUT_3D_SIZE Decode accepts.
const MaxSize = 1024

// decodePrealloc caps the colours reserved up front while decoding.
const decodePrealloc = 1 << 16

// headerLines is the number of lines preceding the table in written files.
const headerLines = 3

// LUT is a 3D lookup table in canonical order.
type LUT struct {
	Size   int
	Colors []vector.Vector3
}

// New returns a LUT after checking that colors holds size^3 entries.
func New(size int, colors []vector.Vector3) (*LUT, error) {
	if size < 1 || len(colors) != size*size*size {
		return nil, fmt.Errorf("%w: size %d, %d colours", ErrSize, size, len(colors))
	}
	return &LUT{Size: size, Colors: colors}, nil
}

// Clamp limits v to [0, 1]. NaN becomes 0.
func Clamp(v float32) float32 {
	switch {
	case !(v > 0):
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

func appendValue(dst []byte, v float32) []byte {
	return strconv.AppendFloat(dst, float64(Clamp(v)), 'f', -1, 32)
}

// Encode writes l to w.
func Encode(w io.Writer, l *LUT) error {
	if l.Size < 1 || len(l.Colors) != l.Size*l.Size*l.Size {
		return fmt.Errorf("%w: size %d, %d colours", ErrSize, l.Size, len(l.Colors))
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "LUT_3D_SIZE %d\nDOMAIN_MIN 0 0 0\nDOMAIN_MAX 1 1 1\n", l.Size); err != nil {
		return err
	}

	line := make([]byte, 0, 64)
	for _, c := range l.Colors {
		line = appendValue(line[:0], c[0])
		line = append(line, ' ')
		line = appendValue(line, c[1])
		line = append(line, ' ')
		line = appendValue(line, c[2])
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Decode reads a .cube LUT. Blank lines, comments and TITLE, DOMAIN_MIN and
// DOMAIN_MAX keywords are accepted before the table; 1D LUTs are rejected.
func Decode(r io.Reader) (*LUT, error) {
	sc := bufio.NewScanner(r)

	l := &LUT{}
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "LUT_3D_SIZE":
			if l.Size != 0 || len(fields) != 2 {
				return nil, fmt.Errorf("%w: line %d: bad LUT_3D_SIZE", ErrFormat, lineNo)
			}
			n, err := strconv.Atoi(fields[1])
			if err != nil || n < 1 || n > MaxSize {
				return nil, fmt.Errorf("%w: line %d: bad size %q", ErrFormat, lineNo, fields[1])
			}
			l.Size = n
			l.Colors = make([]vector.Vector3, 0, min(n*n*n, decodePrealloc))
			continue
		case "TITLE", "DOMAIN_MIN", "DOMAIN_MAX":
			continue
		case "LUT_1D_SIZE":
			return nil, fmt.Errorf("%w: line %d: 1D LUTs are not supported", ErrFormat, lineNo)
		}

		if l.Size == 0 {
			return nil, fmt.Errorf("%w: line %d: data before LUT_3D_SIZE", ErrFormat, lineNo)
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: line %d: want 3 components, got %d", ErrFormat, lineNo, len(fields))
		}
		if len(l.Colors) == l.Size*l.Size*l.Size {
			return nil, fmt.Errorf("%w: line %d: more than %d colours", ErrSize, lineNo, len(l.Colors))
		}

		var c vector.Vector3
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 32)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrFormat, lineNo, err)
			}
			c[i] = float32(v)
		}
		l.Colors = append(l.Colors, c)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if l.Size == 0 {
		return nil, fmt.Errorf("%w: missing LUT_3D_SIZE", ErrFormat)
	}
	if len(l.Colors) != l.Size*l.Size*l.Size {
		return nil, fmt.Errorf("%w: size %d, %d colours", ErrSize, l.Size, len(l.Colors))
	}
	return l, nil
}

// MismatchError describes the first component that differs beyond tolerance.
type MismatchError struct {
	Index     int // Lattice position
	Component int
	Want, Got float32
	Tolerance float32
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("lut: entry %d (line %d) component %d: %v !~= %v (+/- %v)",
		e.Index, e.Index+headerLines+1, e.Component, e.Want, e.Got, e.Tolerance)
}

func (e *MismatchError) Unwrap() error { return ErrMismatch }

// Compare checks that got matches want within tol per component.
func Compare(want, got *LUT, tol float32) error {
	if want.Size != got.Size || len(want.Colors) != len(got.Colors) {
		return fmt.Errorf("%w: size %d vs %d", ErrMismatch, want.Size, got.Size)
	}
	for i := range want.Colors {
		for c := range vector.Dimensions {
			w, g := want.Colors[i][c], got.Colors[i][c]
			if !(math32.Abs(w-g) <= tol) {
				return &MismatchError{Index: i, Component: c, Want: w, Got: g, Tolerance: tol}
			}
		}
	}
	return nil
}

// OutputNames returns the file names for a separation written to path: the
// secondary LUT at path itself, then for each primary i the blend LUT
// <stem>_<i><ext> and the mask LUT <stem>_<i>m<ext>.
func OutputNames(path string, primaries int) []string {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)

	names := make([]string, 0, 1+2*primaries)
	names = append(names, path)
	for i := range primaries {
		names = append(names,
			fmt.Sprintf("%s_%d%s", stem, i, ext),
			fmt.Sprintf("%s_%dm%s", stem, i, ext),
		)
	}
	return names
}
