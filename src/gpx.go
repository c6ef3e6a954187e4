package navmi

import (
	"fmt"
	"io"
	"math"

	"github.com/tkrajina/gpxgo/gpx"
)

const DefaultCreator = "navmi2gpx"

type GPXOptions struct {
	Creator string
	Name    string /* Track name, omitted if empty. */
}

// gpxDocument builds the GPX model for t: one track holding one segment,
// points in track order. A point that is present but not a finite number
// has no GPX representation and fails the whole document.
func gpxDocument(t Track, opts GPXOptions) (*gpx.GPX, error) {
	var creator = opts.Creator
	if creator == "" {
		creator = DefaultCreator
	}

	var seg = gpx.GPXTrackSegment{Points: make([]gpx.GPXPoint, 0, t.Len())}

	for i, p := range t.points {
		if !finite(p.Lat) || !finite(p.Lon) || !finite(p.Elevation) {
			return nil, fmt.Errorf("point %d (lat %v, lon %v, ele %v): %w", i, p.Lat, p.Lon, p.Elevation, ErrNotFinite)
		}

		seg.Points = append(seg.Points, gpx.GPXPoint{
			Point: gpx.Point{
				Latitude:  p.Lat,
				Longitude: p.Lon,
				Elevation: *gpx.NewNullableFloat64(p.Elevation),
			},
			Timestamp: p.Time.UTC(),
		})
	}

	return &gpx.GPX{
		Version: "1.1",
		Creator: creator,
		Tracks: []gpx.GPXTrack{{
			Name:     opts.Name,
			Segments: []gpx.GPXTrackSegment{seg},
		}},
	}, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// WriteGPX writes t as a GPX 1.1 document. Nothing is written if any
// point cannot be represented.
func WriteGPX(w io.Writer, t Track, opts GPXOptions) error {
	var doc, err = gpxDocument(t, opts)
	if err != nil {
		return err
	}

	var b, xmlErr = doc.ToXml(gpx.ToXmlParams{Version: "1.1", Indent: true})
	if xmlErr != nil {
		return fmt.Errorf("encoding GPX: %w", xmlErr)
	}

	if _, err := w.Write(b); err != nil {
		return err
	}

	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}

	return nil
}
