package report

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charlieparkes/geometry/geometry"
)

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("text")
	require.NoError(t, err)
	assert.Equal(t, Text, f)

	f, err = ParseFormat(" JSON ")
	require.NoError(t, err)
	assert.Equal(t, JSON, f)

	_, err = ParseFormat("yaml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, Text, geometry.NewRectangle(3, 4), geometry.NewCircle(0))
	require.NoError(t, err)
	assert.Equal(t,
		"Rectangle(width=3, height=4) area=12 perimeter=14\n"+
			"Circle(radius=0) area=0 perimeter=0\n",
		buf.String())
}

type square float64

func (s square) Area() float64      { return float64(s * s) }
func (s square) Perimeter() float64 { return float64(4 * s) }

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, JSON, geometry.NewCircle(1), geometry.NewRectangle(5, 5), square(2))
	require.NoError(t, err)

	var lines []map[string]interface{}
	sc := bufio.NewScanner(&buf)
	for sc.Scan() {
		var m map[string]interface{}
		require.NoError(t, json.Unmarshal(sc.Bytes(), &m), sc.Text())
		lines = append(lines, m)
	}
	require.Len(t, lines, 3)

	assert.Equal(t, "circle", lines[0]["shape"])
	assert.Equal(t, 1.0, lines[0]["radius"])
	assert.InDelta(t, math.Pi, lines[0]["area"], 1e-9)
	assert.InDelta(t, 2*math.Pi, lines[0]["perimeter"], 1e-9)

	assert.Equal(t, map[string]interface{}{
		"shape":     "rectangle",
		"width":     5.0,
		"height":    5.0,
		"area":      25.0,
		"perimeter": 20.0,
	}, lines[1])

	assert.Equal(t, "report.square", lines[2]["shape"])
	assert.Equal(t, 4.0, lines[2]["area"])
	assert.Equal(t, 8.0, lines[2]["perimeter"])
}

func TestWriteUnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, Format("xml"), geometry.NewCircle(1))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

type failWriter struct{ calls int }

func (w *failWriter) Write([]byte) (int, error) {
	w.calls++
	return 0, errors.New("disk full")
}

func TestWriteStopsOnError(t *testing.T) {
	w := &failWriter{}
	err := Write(w, Text, geometry.NewCircle(1), geometry.NewCircle(2), geometry.NewCircle(3))
	assert.EqualError(t, err, "disk full")
	assert.Equal(t, 1, w.calls)
}

func TestWriteJSONErrorIsNotLogged(t *testing.T) {
	r, pw, err := os.Pipe()
	require.NoError(t, err)
	stderr := os.Stderr
	os.Stderr = pw
	t.Cleanup(func() { os.Stderr = stderr })

	w := &failWriter{}
	err = Write(w, JSON, geometry.NewCircle(1), geometry.NewRectangle(3, 4))

	os.Stderr = stderr
	require.NoError(t, pw.Close())
	logged, rerr := io.ReadAll(r)
	require.NoError(t, rerr)

	assert.EqualError(t, err, "disk full")
	assert.Equal(t, 1, w.calls)
	assert.Empty(t, string(logged))
}
