package navmi

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/lestrrat-go/strftime"
)

// StdioName as an input path means read standard input and write the GPX
// document to standard output.
const StdioName = "-"

// FileResult is the outcome of converting one input file.
type FileResult struct {
	Input  string
	Output string /* Empty when nothing was written. */
	Result *Result
	Err    error
}

// Converter turns NAVMI files into GPX files, one at a time. Nothing is
// shared between files except the configuration and the logger.
type Converter struct {
	Config Config
	Logger *log.Logger
	Stdin  io.Reader
	Stdout io.Writer

	written map[string]string /* Output path to the input that produced it. */
}

func NewConverter(cfg Config, logger *log.Logger) *Converter {
	return &Converter{
		Config: cfg,
		Logger: logger,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
	}
}

// OutputPath derives where the GPX for input goes. By default it is the
// input with its extension replaced by .gpx. If cfg.NameFormat is set
// and the track has points, the file is named by formatting the first
// point time instead.
func OutputPath(input string, t Track, cfg Config) (string, error) {
	var dir = filepath.Dir(input)
	if cfg.OutputDir != "" {
		dir = cfg.OutputDir
	}

	var base = filepath.Base(input)

	var name = strings.TrimSuffix(base, filepath.Ext(base))

	if cfg.NameFormat != "" && t.Len() > 0 {
		var formatted, err = strftime.Format(cfg.NameFormat, t.At(0).Time)
		if err != nil {
			return "", fmt.Errorf("name_format %q: %w", cfg.NameFormat, err)
		}

		name = formatted
	}

	return filepath.Join(dir, name+".gpx"), nil
}

// ConvertFile decodes one file and writes its GPX document. No output is
// written when decoding fails.
func (cv *Converter) ConvertFile(input string) FileResult {
	var fr = FileResult{Input: input}

	var logger = cv.Logger.With("file", input)

	var result, err = cv.decode(input, logger)
	if err != nil {
		fr.Err = err

		return fr
	}

	fr.Result = result

	var opts = GPXOptions{Creator: cv.Config.Creator, Name: cv.Config.TrackName}

	if input == StdioName {
		fr.Err = WriteGPX(cv.Stdout, result.Track, opts)
		if fr.Err == nil {
			fr.Output = StdioName
		}

		return fr
	}

	var output, pathErr = OutputPath(input, result.Track, cv.Config)
	if pathErr != nil {
		fr.Err = pathErr

		return fr
	}

	if err := cv.claim(output, input); err != nil {
		fr.Err = err

		return fr
	}

	if err := writeGPXFile(output, result.Track, opts); err != nil {
		fr.Err = err

		return fr
	}

	fr.Output = output

	var summary = result.Track.Summary()

	logger.Info("Converted",
		"output", output,
		"points", summary.Points,
		"skipped", result.Skipped(),
		"events", len(result.Events),
		"duration", summary.Duration,
		"distance_m", fmt.Sprintf("%.1f", summary.Distance))

	return fr
}

func (cv *Converter) decode(input string, logger *log.Logger) (*Result, error) {
	var opts = cv.Config.decoderOptions(logger)

	if input == StdioName {
		return Decode(cv.Stdin, opts...)
	}

	var f, err = os.Open(input) //nolint:gosec
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f, opts...)
}

// claim records that output belongs to input. Two inputs of one run that
// name the same output file would otherwise overwrite each other.
func (cv *Converter) claim(output string, input string) error {
	var key, err = filepath.Abs(output)
	if err != nil {
		key = filepath.Clean(output)
	}

	if prev, ok := cv.written[key]; ok && prev != input {
		return fmt.Errorf("%s from %s: %w by %s", output, input, ErrOutputClash, prev)
	}

	if cv.written == nil {
		cv.written = make(map[string]string)
	}

	cv.written[key] = input

	return nil
}

func writeGPXFile(path string, t Track, opts GPXOptions) error {
	var f, err = os.Create(path) //nolint:gosec
	if err != nil {
		return err
	}

	var w = bufio.NewWriter(f)

	if err := WriteGPX(w, t, opts); err != nil {
		_ = f.Close()
		_ = os.Remove(path)

		return err
	}

	if err := w.Flush(); err != nil {
		_ = f.Close()
		_ = os.Remove(path)

		return err
	}

	return f.Close()
}

// ConvertAll converts each input in turn. A failed file is reported and
// the next one is still attempted, unless Config.StopOnError is set.
func (cv *Converter) ConvertAll(inputs []string) []FileResult {
	var results = make([]FileResult, 0, len(inputs))

	cv.written = nil

	for _, input := range inputs {
		var fr = cv.ConvertFile(input)

		results = append(results, fr)

		if fr.Err != nil {
			cv.Logger.Error("Conversion failed", "file", input, "err", fr.Err)

			if cv.Config.StopOnError {
				break
			}
		}
	}

	return results
}
