/* NAVMI track log to GPX conversion */
package main

import (
	"os"

	navmi "github.com/doismellburning/navmi2gpx/src"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	return navmi.Navmi2GPXMain(args, os.Stdout, os.Stderr)
}
