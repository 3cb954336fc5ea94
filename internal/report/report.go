// Package report formats shape measurements for output.
package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/charlieparkes/geometry/geometry"
)

type Format string

const (
	Text Format = "text"
	JSON Format = "json"
)

var ErrUnknownFormat = errors.New("unknown format")

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case Text, JSON:
		return f, nil
	}
	return "", fmt.Errorf("%w %q (want text or json)", ErrUnknownFormat, s)
}

// Write reports each shape on its own line. It stops at the first write
// error and returns it.
func Write(w io.Writer, f Format, shapes ...geometry.Shape) error {
	ew := &errWriter{w: w}
	switch f {
	case Text:
		for _, s := range shapes {
			fmt.Fprintf(ew, "%v area=%v perimeter=%v\n", s, s.Area(), s.Perimeter())
		}
	case JSON:
		// zerolog only ever writes to buf; write errors surface through ew.
		var buf bytes.Buffer
		l := zerolog.New(&buf)
		for _, s := range shapes {
			if ew.err != nil {
				break
			}
			buf.Reset()
			e := l.Log()
			switch s := s.(type) {
			case geometry.Circle:
				e = e.Str("shape", "circle").Float64("radius", s.Radius())
			case geometry.Rectangle:
				e = e.Str("shape", "rectangle").Float64("width", s.Width()).Float64("height", s.Height())
			default:
				e = e.Str("shape", fmt.Sprintf("%T", s))
			}
			e.Float64("area", s.Area()).Float64("perimeter", s.Perimeter()).Send()
			ew.Write(buf.Bytes())
		}
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, string(f))
	}
	return ew.err
}

// errWriter remembers the first error and drops every write after it.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}
