package navmi

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// Sentinels marking an absent field. Compared bit for bit.
const (
	NoLatitude  = -200.0
	NoElevation = -9999999.9
	NoSpeed     = -1.0
)

const fieldSize = 8

// cursor is a forward-only reader over the byte stream. It counts what has
// been consumed and keeps the bytes of the record currently being decoded.
type cursor struct {
	r      *bufio.Reader
	offset int64
	record []byte
	buf    [fieldSize]byte
}

func newCursor(r io.Reader) *cursor {
	return &cursor{r: bufio.NewReader(r)}
}

func (c *cursor) Offset() int64 {
	return c.offset
}

// startRecord forgets the bytes of the previous record.
func (c *cursor) startRecord() {
	c.record = c.record[:0]
}

// readFull reads exactly len(p) bytes, returning the number read.
func (c *cursor) readFull(p []byte) (int, error) {
	var n, err = io.ReadFull(c.r, p)

	c.offset += int64(n)
	c.record = append(c.record, p[:n]...)

	return n, err
}

// readTag reads a record type tag. No bytes left means a clean end of
// stream and is reported as ok == false with a nil error.
func (c *cursor) readTag() (byte, bool, error) {
	var n, err = c.readFull(c.buf[:1])
	if n == 0 {
		if err == nil || errors.Is(err, io.EOF) {
			return 0, false, nil
		}

		return 0, false, err
	}

	return c.buf[0], true, nil
}

func (c *cursor) readField(name string) ([]byte, error) {
	var _, err = c.readFull(c.buf[:])
	if err != nil {
		if isShortRead(err) {
			return nil, fmt.Errorf("%w: reading %s at offset %d", ErrTruncated, name, c.offset)
		}

		return nil, err
	}

	return c.buf[:], nil
}

func (c *cursor) readInt64(name string) (int64, error) {
	var b, err = c.readField(name)
	if err != nil {
		return 0, err
	}

	return int64(binary.LittleEndian.Uint64(b)), nil //nolint:gosec
}

func (c *cursor) readFloat64(name string) (float64, error) {
	var b, err = c.readField(name)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(binary.LittleEndian.Uint64(b)), nil
}

// readOptionalFloat64 reads a double that is absent when its bits equal
// those of sentinel exactly.
func (c *cursor) readOptionalFloat64(name string, sentinel float64) (float64, bool, error) {
	var v, err = c.readFloat64(name)
	if err != nil {
		return 0, false, err
	}

	if isSentinel(v, sentinel) {
		return 0, false, nil
	}

	return v, true, nil
}

func isSentinel(v float64, sentinel float64) bool {
	return math.Float64bits(v) == math.Float64bits(sentinel)
}
