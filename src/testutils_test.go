package navmi

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tkrajina/gpxgo/gpx"
)

// streamBuilder assembles NAVMI byte streams for tests.
type streamBuilder struct {
	buf bytes.Buffer
}

func newStream() *streamBuilder {
	var s = new(streamBuilder)

	s.buf.WriteString(Magic)
	s.buf.WriteByte(Version)

	return s
}

func (s *streamBuilder) int64(v int64) *streamBuilder {
	var b [8]byte

	binary.LittleEndian.PutUint64(b[:], uint64(v)) //nolint:gosec
	s.buf.Write(b[:])

	return s
}

func (s *streamBuilder) float64(v float64) *streamBuilder {
	var b [8]byte

	binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
	s.buf.Write(b[:])

	return s
}

func (s *streamBuilder) tag(t byte) *streamBuilder {
	s.buf.WriteByte(t)

	return s
}

// position writes a type 0 record. A lat of NoLatitude leaves out the
// longitude, as the format requires.
func (s *streamBuilder) position(ticks int64, lat, lon, ele, speed float64) *streamBuilder {
	s.tag(byte(Position)).int64(ticks).float64(lat)

	if lat != NoLatitude {
		s.float64(lon)
	}

	return s.float64(ele).float64(speed)
}

func (s *streamBuilder) event(kind RecordType, ticks int64) *streamBuilder {
	return s.tag(byte(kind)).int64(ticks)
}

func (s *streamBuilder) bytes() []byte {
	return append([]byte(nil), s.buf.Bytes()...)
}

func (s *streamBuilder) reader() *bytes.Reader {
	return bytes.NewReader(s.bytes())
}

// readGPX parses a written GPX file and returns the points of its only
// segment.
func readGPX(t *testing.T, path string) (*gpx.GPX, []gpx.GPXPoint) {
	t.Helper()

	var b, err = os.ReadFile(path)
	require.NoError(t, err)

	return parseGPX(t, b)
}

func parseGPX(t *testing.T, b []byte) (*gpx.GPX, []gpx.GPXPoint) {
	t.Helper()

	var doc, err = gpx.ParseBytes(b)
	require.NoError(t, err)
	require.Len(t, doc.Tracks, 1)

	var points []gpx.GPXPoint
	for _, seg := range doc.Tracks[0].Segments {
		points = append(points, seg.Points...)
	}

	return doc, points
}
