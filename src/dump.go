package navmi

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Dump writes one line per record of the NAVMI stream r, followed by the
// raw record bytes. Bytes of a record that failed to decode are dumped
// before the error is returned.
func Dump(r io.Reader, w io.Writer) error {
	var d = NewDecoder(r)

	if err := d.ReadHeader(); err != nil {
		return err
	}

	fmt.Fprintf(w, "%s version %d\n", Magic, Version)

	var count int

	for {
		var rec, err = d.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			var raw = d.Raw()

			fmt.Fprintf(w, "error: %s\n", err)
			hexDump(w, d.Offset()-int64(len(raw)), raw)

			return err
		}

		count++

		fmt.Fprintf(w, "%06x %-8s %s%s\n", rec.StartOffset(), rec.Type(), rec.Timestamp().Format(timeLayout), describe(rec))
		hexDump(w, rec.StartOffset(), d.Raw())
	}

	fmt.Fprintf(w, "%d records, %d bytes\n", count, d.Offset())

	return nil
}

func describe(rec Record) string {
	var p, ok = rec.(*PositionRecord)
	if !ok {
		return ""
	}

	var s string

	if p.Position != nil {
		s += fmt.Sprintf(" lat=%g lon=%g", p.Position.Lat, p.Position.Lon)
	} else {
		s += " lat=none"
	}

	if p.Elevation != nil {
		s += fmt.Sprintf(" ele=%g", *p.Elevation)
	} else {
		s += " ele=none"
	}

	if p.Speed != nil {
		s += fmt.Sprintf(" speed=%g", *p.Speed)
	} else {
		s += " speed=none"
	}

	return s
}

func dumpAll(cv *Converter, inputs []string) int {
	var status = exitOK

	for _, input := range inputs {
		fmt.Fprintf(cv.Stdout, "== %s\n", input)

		var err = dumpFile(cv, input)
		if err != nil {
			cv.Logger.Error("Dump failed", "file", input, "err", err)

			status = exitFailed

			if cv.Config.StopOnError {
				break
			}
		}
	}

	return status
}

func dumpFile(cv *Converter, input string) error {
	if input == StdioName {
		return Dump(cv.Stdin, cv.Stdout)
	}

	var f, err = os.Open(input) //nolint:gosec
	if err != nil {
		return err
	}
	defer f.Close()

	return Dump(f, cv.Stdout)
}
