package navmi

import (
	"errors"
	"fmt"
)

// Decode failures. All of them are fatal for the file being decoded.
var (
	ErrBadMagic           = errors.New("not a NAVMI binary file")
	ErrUnsupportedVersion = errors.New("unsupported NAVMI version")
	ErrUnknownRecordType  = errors.New("unknown record type")
	ErrTruncated          = errors.New("truncated input")
	ErrRange              = errors.New("timestamp out of range")

	ErrTrackFinalized = errors.New("track already finalized")
	ErrNotFinite      = errors.New("coordinate is not a finite number")
	ErrOutputClash    = errors.New("output already written in this run")
)

// UnknownRecordTypeError reports a tag byte outside the known record set.
// Offset is the position of the tag itself.
type UnknownRecordTypeError struct {
	Tag    byte
	Offset int64
}

func (e *UnknownRecordTypeError) Error() string {
	return fmt.Sprintf("unknown record type 0x%02x at offset %d", e.Tag, e.Offset)
}

func (e *UnknownRecordTypeError) Is(target error) bool {
	return target == ErrUnknownRecordType
}
