package navmi

import (
	"fmt"
	"io"
	"runtime/debug"
)

// Set at build time via `-ldflags "-X 'github.com/doismellburning/navmi2gpx/src.NAVMI2GPX_VERSION=X'"`
var NAVMI2GPX_VERSION string

func printVersion(w io.Writer, verbose bool) {
	var version = NAVMI2GPX_VERSION
	if version == "" {
		version = "!UNKNOWN!"
	}

	var revision, built = "UNKNOWN", "UNKNOWN"

	var dirty bool

	var info, ok = debug.ReadBuildInfo()
	if ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				revision = s.Value
			case "vcs.time":
				built = s.Value
			case "vcs.modified":
				dirty = s.Value == "true"
			}
		}
	}

	if dirty {
		revision += "-DIRTY"
	}

	fmt.Fprintf(w, "navmi2gpx - Version %s (revision %s, built at %s)\n", version, revision, built)

	if verbose && ok {
		fmt.Fprintf(w, "%s %s\n", info.Main.Path, info.GoVersion)
	}
}
