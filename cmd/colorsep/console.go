package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hupe1980/colorsep"
	"github.com/hupe1980/colorsep/colorspace"
	"github.com/muesli/termenv"
)

// OutputError reports a LUT that could not be written.
type OutputError struct {
	Location string
	Err      error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("create %s: %v", e.Location, e.Err)
}

func (e *OutputError) Unwrap() error { return e.Err }

// console renders errors on the terminal. Styles degrade to plain text when
// the output is not a colour terminal.
type console struct {
	out *termenv.Output
}

func newConsole(w io.Writer, opts ...termenv.OutputOption) console {
	return console{out: termenv.NewOutput(w, opts...)}
}

// option highlights an option name.
func (c console) option(s string) string {
	return c.out.String(s).Foreground(c.out.Color("11")).String()
}

// path highlights a file or object location.
func (c console) path(s string) string {
	return c.out.String(s).Foreground(c.out.Color("14")).String()
}

// fail prints err with the error banner and returns the exit code.
func (c console) fail(err error) int {
	banner := c.out.String(" Error ").Background(c.out.Color("1"))
	fmt.Fprintf(c.out, "%s %s See %s for usage documentation.\n", banner, c.message(err), c.option("--help"))
	return 1
}

var invalidValueMessages = map[string]string{
	"color":        "Primary color component must be a number.",
	"size":         "3D LUT size must be an integer greater than or equal to 2.",
	"target":       "Target number must be a positive integer.",
	"limit":        "Ink limit must be non-negative number.",
	"workers":      "Worker count must be a non-negative integer.",
	"scale":        "Color scale must be a positive number.",
	"memory-limit": "Memory limit must be a non-negative number of bytes.",
	"io-limit":     "IO limit must be a non-negative number of bytes per second.",
	"level":        "Compression level must be a non-negative integer.",
}

// message turns err into a sentence for the user.
func (c console) message(err error) string {
	var (
		missing *MissingArgumentError
		unknown *UnknownOptionError
		invalid *InvalidValueError
		cfgErr  *colorsep.ConfigError
		trErr   *colorsep.TransformError
		outErr  *OutputError
	)

	switch {
	case errors.As(err, &missing):
		return fmt.Sprintf("Missing argument for %s.", c.option(missing.Option))
	case errors.As(err, &unknown):
		return fmt.Sprintf("Unknown option %s.", c.option(unknown.Option))
	case errors.As(err, &invalid):
		if msg, ok := invalidValueMessages[invalid.Option]; ok {
			return msg
		}
	case errors.As(err, &trErr):
		switch {
		case errors.Is(err, colorspace.ErrNotRGB):
			return "Only RGB ICC profiles are supported."
		case errors.Is(err, colorspace.ErrUnknownProfile):
			return fmt.Sprintf("Could not read ICC profile file %s: %v.", c.path(trErr.Profile), errors.Unwrap(trErr))
		}
		return fmt.Sprintf("Could not use ICC profile %s: %v.", c.path(trErr.Profile), errors.Unwrap(trErr))
	case errors.As(err, &outErr):
		return fmt.Sprintf("Could not create output 3D LUT file %s: %v.", c.path(outErr.Location), outErr.Err)
	case errors.As(err, &cfgErr):
		switch cfgErr.Field {
		case "profile":
			return fmt.Sprintf("No ICC profile was specified. Use %s to specify an ICC profile.", c.option("--profile"))
		case "output":
			return fmt.Sprintf("No output file was specified. Use %s to specify an output file.", c.option("--output"))
		case "primaries":
			if errors.Unwrap(cfgErr) == nil {
				return fmt.Sprintf("No primary colors were specified. Use %s to specify a primary color.", c.option("--color"))
			}
		}
	}
	return sentence(err.Error())
}

// sentence capitalizes s and ends it with a full stop.
func sentence(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	r, n := utf8.DecodeRuneInString(s)
	s = string(unicode.ToUpper(r)) + s[n:]
	if !strings.HasSuffix(s, ".") {
		s += "."
	}
	return s
}
