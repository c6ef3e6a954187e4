package navmi

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Decoder walks a NAVMI stream one record at a time. It never seeks back
// and gives up at the first bad tag or short record.
type Decoder struct {
	c        *cursor
	logger   *log.Logger
	gridRefs bool
	started  bool
	err      error
}

type Option func(*Decoder)

// WithLogger logs every decoded record at info level, and the raw bytes
// of an unknown record at debug level. Without it the decoder is silent.
func WithLogger(logger *log.Logger) Option {
	return func(d *Decoder) {
		d.logger = logger
	}
}

// WithGridRefs adds a UTM grid reference to logged positions.
func WithGridRefs(enable bool) Option {
	return func(d *Decoder) {
		d.gridRefs = enable
	}
}

func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	var d = &Decoder{c: newCursor(r)}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// ReadHeader validates the magic marker and version. Next calls it if
// it has not been called already.
func (d *Decoder) ReadHeader() error {
	if d.started {
		return d.err
	}

	d.started = true

	var err = validateHeader(d.c)
	if err != nil {
		d.err = err
	}

	return err
}

// Next returns the next record. io.EOF means the stream ended cleanly on
// a record boundary; any other error is fatal and is returned again by
// every later call.
func (d *Decoder) Next() (Record, error) {
	if !d.started {
		if err := d.ReadHeader(); err != nil {
			return nil, err
		}
	}

	if d.err != nil {
		return nil, d.err
	}

	var rec, err = d.next()
	if err != nil {
		d.err = err

		return nil, err
	}

	d.logRecord(rec)

	return rec, nil
}

func (d *Decoder) next() (Record, error) {
	d.c.startRecord()

	var offset = d.c.Offset()

	var tag, ok, err = d.c.readTag()
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, io.EOF
	}

	switch t := RecordType(tag); t {
	case Position:
		return decodePosition(d.c, offset)
	case SessionStart, Pause, Resume, Lap:
		return decodeEvent(d.c, offset, t)
	default:
		var unknown = &UnknownRecordTypeError{Tag: tag, Offset: offset}

		if d.logger != nil {
			var dump strings.Builder

			hexDump(&dump, offset, d.Raw())
			d.logger.Debug("Unknown record", "offset", offset, "tag", fmt.Sprintf("0x%02x", tag), "raw", strings.TrimRight(dump.String(), "\n"))
		}

		return nil, unknown
	}
}

// Raw returns the bytes of the most recent record, tag included. After a
// truncation error it holds whatever part of the record was read.
func (d *Decoder) Raw() []byte {
	return append([]byte(nil), d.c.record...)
}

// Offset is the number of bytes consumed so far.
func (d *Decoder) Offset() int64 {
	return d.c.Offset()
}

func (d *Decoder) logRecord(rec Record) {
	if d.logger == nil {
		return
	}

	switch r := rec.(type) {
	case *PositionRecord:
		var kv = []any{"offset", r.Offset, "time", r.Time.Format(timeLayout)}

		if r.Position != nil {
			kv = append(kv, "lat", r.Position.Lat, "lon", r.Position.Lon)

			if d.gridRefs {
				var grid, err = GridReference(r.Position.Lat, r.Position.Lon)
				if err == nil {
					kv = append(kv, "utm", grid)
				}
			}
		}

		if r.Elevation != nil {
			kv = append(kv, "ele", *r.Elevation)
		}

		if r.Speed != nil {
			kv = append(kv, "speed", *r.Speed)
		}

		d.logger.Info("Position", kv...)
	case *EventRecord:
		d.logger.Info(r.Kind.String(), "offset", r.Offset, "time", r.Time.Format(timeLayout))
	}
}

// Result is everything a successful decode produces.
type Result struct {
	Track     Track
	Events    []EventRecord
	Positions int /* Position records seen, with or without a usable point. */
}

// Skipped is the number of position records that did not become points.
func (r *Result) Skipped() int {
	return r.Positions - r.Track.Len()
}

// Decode reads a whole NAVMI stream. On error nothing is returned but the
// error; there is no partial track.
func Decode(r io.Reader, opts ...Option) (*Result, error) {
	var d = NewDecoder(r, opts...)

	if err := d.ReadHeader(); err != nil {
		return nil, err
	}

	var builder TrackBuilder

	var result Result

	for {
		var rec, err = d.Next()
		if err == io.EOF { //nolint:errorlint
			break
		}

		if err != nil {
			return nil, err
		}

		switch r := rec.(type) {
		case *PositionRecord:
			result.Positions++

			if p, ok := r.Point(); ok {
				if err := builder.Append(p); err != nil {
					return nil, err
				}
			}
		case *EventRecord:
			result.Events = append(result.Events, *r)
		}
	}

	result.Track = builder.Finalize()

	return &result, nil
}
