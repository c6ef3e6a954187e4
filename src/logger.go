package navmi

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger builds the logger used for decode events and per file
// reports. Colour is only used when w is a terminal.
func NewLogger(w io.Writer, cfg Config) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          "navmi2gpx",
		Level:           cfg.Level(),
		ReportTimestamp: false,
	})
}
