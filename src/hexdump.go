package navmi

import (
	"fmt"
	"io"
)

// hexDump writes p as rows of 16 bytes with an ASCII column. offset is the
// stream position of p[0].
func hexDump(w io.Writer, offset int64, p []byte) {
	for len(p) > 0 {
		var n = min(len(p), 16)

		fmt.Fprintf(w, "  %06x: ", offset)

		for i := 0; i < n; i++ {
			fmt.Fprintf(w, " %02x", p[i])
		}

		for i := n; i < 16; i++ {
			fmt.Fprintf(w, "   ")
		}

		fmt.Fprintf(w, "  ")

		for i := 0; i < n; i++ {
			if p[i] >= 0x20 && p[i] <= 0x7E {
				fmt.Fprintf(w, "%c", p[i])
			} else {
				fmt.Fprintf(w, ".")
			}
		}

		fmt.Fprintf(w, "\n")

		p = p[n:]
		offset += int64(n)
	}
}
