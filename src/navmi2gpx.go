package navmi

/*------------------------------------------------------------------
 *
 * Purpose:	Convert NAVMI track logs to GPX.
 *
 * Description:	Each input file is decoded on its own and, if it decodes
 *		cleanly, written next to it with a .gpx extension.
 *		A bad file is reported and the rest are still converted.
 *
 *		"-" reads standard input and writes to standard output.
 *
 *---------------------------------------------------------------*/

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/pflag"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

func Navmi2GPXMain(args []string, stdout io.Writer, stderr io.Writer) int {
	return navmi2GPXMainWithStdin(os.Stdin, args, stdout, stderr)
}

func navmi2GPXMainWithStdin(stdin io.Reader, args []string, stdout io.Writer, stderr io.Writer) int {
	var fs = pflag.NewFlagSet("navmi2gpx", pflag.ContinueOnError)

	fs.SetOutput(stderr)

	var configPath = fs.StringP("config", "c", "", "YAML configuration file.")
	var quiet = fs.BoolP("quiet", "q", true, "Only report warnings and errors.")
	var verbose = fs.BoolP("verbose", "v", false, "Log every decoded record, with debug detail.")
	var outputDir = fs.StringP("output-dir", "o", "", "Write GPX files here instead of next to the input.")
	var nameFormat = fs.StringP("name-format", "n", "", "Name output files with this 'strftime' format applied to the first point time.")
	var creator = fs.String("creator", DefaultCreator, "GPX creator attribute.")
	var trackName = fs.String("track-name", "", "GPX track name.")
	var stopOnError = fs.Bool("stop-on-error", false, "Stop at the first file that fails to convert.")
	var gridRefs = fs.Bool("grid-refs", false, "Include UTM grid references when logging positions.")
	var dump = fs.Bool("dump", false, "Print every record with its raw bytes instead of converting.")
	var version = fs.Bool("version", false, "Print version and exit.")
	var help = fs.BoolP("help", "h", false, "Display help text.")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "navmi2gpx - Convert NAVMI track logs to GPX.\n")
		fmt.Fprintf(stderr, "\n")
		fmt.Fprintf(stderr, "Usage: navmi2gpx [options] file.navmi ...\n")
		fmt.Fprintf(stderr, "\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}

		return exitUsage
	}

	if *help {
		fs.Usage()

		return exitOK
	}

	if *version {
		printVersion(stdout, *verbose)

		return exitOK
	}

	var cfg = DefaultConfig()

	if *configPath != "" {
		var loaded, err = LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Can't load config: %s\n", err)

			return exitUsage
		}

		cfg = loaded
	}

	if fs.Changed("quiet") {
		cfg.Quiet = *quiet
	}

	if *verbose {
		cfg.Quiet = false
		cfg.LogLevel = "debug"
	}

	if fs.Changed("output-dir") {
		cfg.OutputDir = *outputDir
	}

	if fs.Changed("name-format") {
		cfg.NameFormat = *nameFormat
	}

	if fs.Changed("creator") {
		cfg.Creator = *creator
	}

	if fs.Changed("track-name") {
		cfg.TrackName = *trackName
	}

	if fs.Changed("stop-on-error") {
		cfg.StopOnError = *stopOnError
	}

	if fs.Changed("grid-refs") {
		cfg.GridRefs = *gridRefs
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "%s\n", err)

		return exitUsage
	}

	var inputs = fs.Args()
	if len(inputs) == 0 {
		fs.Usage()

		return exitUsage
	}

	var logger = NewLogger(stderr, cfg)

	var cv = NewConverter(cfg, logger)

	cv.Stdin = stdin
	cv.Stdout = stdout

	if *dump {
		return dumpAll(cv, inputs)
	}

	// GPX for "-" goes to stdout, so it must be the only thing there.
	var report = stdout
	if slices.Contains(inputs, StdioName) {
		report = stderr
	}

	var status = exitOK

	for _, fr := range cv.ConvertAll(inputs) {
		if fr.Err != nil {
			status = exitFailed

			continue
		}

		if fr.Output != StdioName {
			fmt.Fprintf(report, "Written to %s\n", fr.Output)
		}
	}

	return status
}
