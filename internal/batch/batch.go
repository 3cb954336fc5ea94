// Package batch reads shape descriptions, one per line:
//
//	# comment
//	circle 1
//	rect 3 4  # trailing comment
//
// Fields may be separated by any run of spaces or tabs. Everything from a
// field starting with # to the end of the line is ignored.
package batch

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charlieparkes/geometry/geometry"
)

var (
	ErrUnknownShape = errors.New("unknown shape")
	ErrFieldCount   = errors.New("wrong number of fields")
)

func Parse(r io.Reader) ([]geometry.Shape, error) {
	reader := csv.NewReader(r)
	reader.Comma = ' '
	reader.Comment = '#'
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	var shapes []geometry.Shape
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		record = fields(record)
		if len(record) == 0 {
			continue
		}
		line, _ := reader.FieldPos(0)

		s, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		shapes = append(shapes, s)
	}
	return shapes, nil
}

func parseRecord(record []string) (geometry.Shape, error) {
	kind := strings.ToLower(record[0])
	switch kind {
	case "circle", "rect", "rectangle":
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownShape, record[0])
	}

	nums, err := parseFloats(record[1:])
	if err != nil {
		return nil, err
	}

	if kind == "circle" {
		if len(nums) != 1 {
			return nil, fmt.Errorf("%w: circle takes a radius, got %d values", ErrFieldCount, len(nums))
		}
		return geometry.NewCircle(nums[0]), nil
	}
	if len(nums) != 2 {
		return nil, fmt.Errorf("%w: rectangle takes width and height, got %d values", ErrFieldCount, len(nums))
	}
	return geometry.NewRectangle(nums[0], nums[1]), nil
}

func parseFloats(fields []string) ([]float64, error) {
	nums := make([]float64, 0, len(fields))
	for _, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		nums = append(nums, x)
	}
	return nums, nil
}

// fields splits a record on any whitespace the csv reader left inside a
// field, and cuts it at the first field starting with #.
func fields(record []string) []string {
	var out []string
	for _, r := range record {
		for _, f := range strings.Fields(r) {
			if strings.HasPrefix(f, "#") {
				return out
			}
			out = append(out, f)
		}
	}
	return out
}
