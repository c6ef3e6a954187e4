package navmi

import (
	"time"

	"github.com/golang/geo/s2"
)

// Mean earth radius, meters.
const earthRadius = 6371008.8

// Point is one track point as written to GPX.
type Point struct {
	Time      time.Time
	Lat       float64
	Lon       float64
	Elevation float64
}

// Track is a finalized, read-only sequence of points in decode order.
type Track struct {
	points []Point
}

func (t Track) Len() int {
	return len(t.points)
}

// Points returns a copy of the points.
func (t Track) Points() []Point {
	return append([]Point(nil), t.points...)
}

// At returns the i'th point.
func (t Track) At(i int) Point {
	return t.points[i]
}

// TrackBuilder accumulates points while a file is decoded.
type TrackBuilder struct {
	points    []Point
	finalized bool
}

// Append adds p after every point already appended. Nothing is sorted or
// deduplicated.
func (b *TrackBuilder) Append(p Point) error {
	if b.finalized {
		return ErrTrackFinalized
	}

	b.points = append(b.points, p)

	return nil
}

func (b *TrackBuilder) Len() int {
	return len(b.points)
}

// Finalize freezes the builder. Calling it again returns the same track.
func (b *TrackBuilder) Finalize() Track {
	b.finalized = true

	return Track{points: b.points}
}

type Summary struct {
	Points   int
	Start    time.Time
	End      time.Time
	Duration time.Duration
	Distance float64 /* Meters, great circle between successive points. */
}

func (t Track) Summary() Summary {
	var s = Summary{Points: len(t.points)}
	if s.Points == 0 {
		return s
	}

	s.Start = t.points[0].Time
	s.End = t.points[len(t.points)-1].Time
	s.Duration = s.End.Sub(s.Start)

	var prev = s2.LatLngFromDegrees(t.points[0].Lat, t.points[0].Lon)

	for _, p := range t.points[1:] {
		var ll = s2.LatLngFromDegrees(p.Lat, p.Lon)

		s.Distance += prev.Distance(ll).Radians() * earthRadius
		prev = ll
	}

	return s
}
