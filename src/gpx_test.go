package navmi

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tkrajina/gpxgo/gpx"
)

func TestWriteGPX(t *testing.T) {
	var b TrackBuilder

	var first = time.Date(2020, time.January, 1, 12, 30, 0, 0, time.UTC)

	require.NoError(t, b.Append(Point{Time: first, Lat: 10, Lon: 20, Elevation: 5}))
	require.NoError(t, b.Append(Point{
		Time:      first.Add(90 * time.Second),
		Lat:       51.477928,
		Lon:       -0.001545,
		Elevation: 45.5,
	}))

	var out strings.Builder

	require.NoError(t, WriteGPX(&out, b.Finalize(), GPXOptions{Name: "Morning <run>"}))

	assert.True(t, strings.HasPrefix(out.String(), "<?xml"), out.String())
	assert.Contains(t, out.String(), `creator="navmi2gpx"`)
	assert.Contains(t, out.String(), "&lt;run&gt;")

	var doc, err = gpx.ParseBytes([]byte(out.String()))
	require.NoError(t, err)

	assert.Equal(t, "1.1", doc.Version)
	require.Len(t, doc.Tracks, 1)
	assert.Equal(t, "Morning <run>", doc.Tracks[0].Name)
	require.Len(t, doc.Tracks[0].Segments, 1)

	var points = doc.Tracks[0].Segments[0].Points
	require.Len(t, points, 2)

	assert.InDelta(t, 10.0, points[0].Latitude, 0)
	assert.InDelta(t, 20.0, points[0].Longitude, 0)
	assert.InDelta(t, 5.0, points[0].Elevation.Value(), 0)
	assert.True(t, first.Equal(points[0].Timestamp), "got %v", points[0].Timestamp)

	assert.InDelta(t, 51.477928, points[1].Latitude, 1e-9)
	assert.InDelta(t, -0.001545, points[1].Longitude, 1e-9)
	assert.InDelta(t, 45.5, points[1].Elevation.Value(), 0)
	assert.True(t, first.Add(90*time.Second).Equal(points[1].Timestamp), "got %v", points[1].Timestamp)
}

func TestWriteGPXEmptyTrack(t *testing.T) {
	var b TrackBuilder

	var out strings.Builder

	require.NoError(t, WriteGPX(&out, b.Finalize(), GPXOptions{Creator: "test"}))
	assert.Contains(t, out.String(), "<trkseg", "one segment even without points")

	var doc, err = gpx.ParseBytes([]byte(out.String()))
	require.NoError(t, err)
	assert.Equal(t, "test", doc.Creator)
	require.Len(t, doc.Tracks, 1, "one track even without points")

	for _, seg := range doc.Tracks[0].Segments {
		assert.Empty(t, seg.Points)
	}
}

func TestWriteGPXRejectsNonFinite(t *testing.T) {
	tests := []struct {
		name  string
		point Point
	}{
		{name: "NaN latitude", point: Point{Lat: math.NaN(), Lon: 1, Elevation: 1}},
		{name: "infinite longitude", point: Point{Lat: 1, Lon: math.Inf(-1), Elevation: 1}},
		{name: "infinite elevation", point: Point{Lat: 1, Lon: 1, Elevation: math.Inf(1)}},
		{name: "NaN elevation", point: Point{Lat: 1, Lon: 1, Elevation: math.NaN()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b TrackBuilder

			require.NoError(t, b.Append(Point{Time: time.Unix(0, 0).UTC(), Lat: 1, Lon: 2, Elevation: 3}))

			tt.point.Time = time.Unix(1, 0).UTC()
			require.NoError(t, b.Append(tt.point))

			var out strings.Builder

			var err = WriteGPX(&out, b.Finalize(), GPXOptions{})
			require.ErrorIs(t, err, ErrNotFinite)
			assert.Contains(t, err.Error(), "point 1")
			assert.Empty(t, out.String(), "nothing written")
		})
	}
}
