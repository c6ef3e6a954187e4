package navmi

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

const (
	Magic   = "NAVMI"
	Version = 0x01
)

// validateHeader checks the magic marker and the version byte. A short
// marker is treated as a bad one, a missing version byte as the wrong one.
func validateHeader(c *cursor) error {
	var magic = make([]byte, len(Magic))

	var n, err = c.readFull(magic)
	if err != nil && !isShortRead(err) {
		return err
	}

	if n != len(Magic) || !bytes.Equal(magic, []byte(Magic)) {
		return fmt.Errorf("%w: got %q", ErrBadMagic, magic[:n])
	}

	var version [1]byte

	n, err = c.readFull(version[:])
	if err != nil && !isShortRead(err) {
		return err
	}

	if n != 1 {
		return fmt.Errorf("%w: missing version byte", ErrUnsupportedVersion)
	}

	if version[0] != Version {
		return fmt.Errorf("%w: 0x%02x", ErrUnsupportedVersion, version[0])
	}

	return nil
}

func isShortRead(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}
