package navmi

import (
	"fmt"
	"time"
)

// RFC 3339 in UTC, keeping sub-second digits when there are any.
const timeLayout = "2006-01-02T15:04:05.999999Z"

type RecordType byte

const (
	Position     RecordType = 0
	SessionStart RecordType = 1
	Pause        RecordType = 2
	Resume       RecordType = 3
	Lap          RecordType = 4
)

func (t RecordType) String() string {
	switch t {
	case Position:
		return "Position"
	case SessionStart:
		return "Started"
	case Pause:
		return "Paused"
	case Resume:
		return "Resumed"
	case Lap:
		return "Lap"
	default:
		return fmt.Sprintf("RecordType(%d)", byte(t))
	}
}

// Record is either a *PositionRecord or an *EventRecord.
type Record interface {
	Type() RecordType
	Timestamp() time.Time
	StartOffset() int64
}

type LatLon struct {
	Lat float64
	Lon float64
}

// PositionRecord is a decoded type 0 record. Nil fields were absent.
type PositionRecord struct {
	Offset    int64
	Time      time.Time
	Position  *LatLon
	Elevation *float64
	Speed     *float64 /* Decoded but not carried into the track. */
}

func (r *PositionRecord) Type() RecordType     { return Position }
func (r *PositionRecord) Timestamp() time.Time { return r.Time }
func (r *PositionRecord) StartOffset() int64   { return r.Offset }

// Point returns the track point for this record, if it has everything a
// point needs.
func (r *PositionRecord) Point() (Point, bool) {
	if r.Position == nil || r.Elevation == nil {
		return Point{}, false
	}

	return Point{
		Time:      r.Time,
		Lat:       r.Position.Lat,
		Lon:       r.Position.Lon,
		Elevation: *r.Elevation,
	}, true
}

// EventRecord is one of the timestamp-only records, tags 1 to 4.
type EventRecord struct {
	Offset int64
	Kind   RecordType
	Time   time.Time
}

func (r *EventRecord) Type() RecordType     { return r.Kind }
func (r *EventRecord) Timestamp() time.Time { return r.Time }
func (r *EventRecord) StartOffset() int64   { return r.Offset }

func readTimestamp(c *cursor) (time.Time, error) {
	var ticks, err = c.readInt64("timestamp")
	if err != nil {
		return time.Time{}, err
	}

	return TicksToInstant(ticks)
}

/*
 * Position layout after the tag:
 *
 *	int64	ticks
 *	double	latitude, -200.0 if none
 *	double	longitude, only present with a latitude
 *	double	elevation, -9999999.9 if none
 *	double	speed, -1.0 if none
 */
func decodePosition(c *cursor, offset int64) (*PositionRecord, error) {
	var rec = &PositionRecord{Offset: offset}

	var t, err = readTimestamp(c)
	if err != nil {
		return nil, err
	}

	rec.Time = t

	var lat, hasLat, latErr = c.readOptionalFloat64("latitude", NoLatitude)
	if latErr != nil {
		return nil, latErr
	}

	if hasLat {
		var lon, lonErr = c.readFloat64("longitude")
		if lonErr != nil {
			return nil, lonErr
		}

		rec.Position = &LatLon{Lat: lat, Lon: lon}
	}

	var ele, hasEle, eleErr = c.readOptionalFloat64("elevation", NoElevation)
	if eleErr != nil {
		return nil, eleErr
	}

	if hasEle {
		rec.Elevation = &ele
	}

	var speed, hasSpeed, speedErr = c.readOptionalFloat64("speed", NoSpeed)
	if speedErr != nil {
		return nil, speedErr
	}

	if hasSpeed {
		rec.Speed = &speed
	}

	return rec, nil
}

func decodeEvent(c *cursor, offset int64, kind RecordType) (*EventRecord, error) {
	var t, err = readTimestamp(c)
	if err != nil {
		return nil, err
	}

	return &EventRecord{Offset: offset, Kind: kind, Time: t}, nil
}
