// Command dsdump replays a raw sample capture through the decoding
// pipeline and prints the decoded events, in the shape of the teacher's
// cmd/flac-frame file-replay tool.
package main

import (
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/psi46/datastream"
	"github.com/psi46/datastream/level"
	"github.com/psi46/datastream/pipe"
	"github.com/psi46/datastream/source"
)

var (
	device     = pflag.StringP("device", "d", "rocdig", "decoder dialect: rocana, rocdig, or moddig")
	ublack     = pflag.Int("ublack", 0, "ultra-black calibration sample (rocana only)")
	black      = pflag.Int("black", 0, "black calibration sample (rocana only)")
	errorsOnly = pflag.Bool("errors-only", false, "print only events with a non-zero error mask")
)

func main() {
	pflag.Parse()
	logger := log.New(os.Stderr)

	if pflag.NArg() != 1 {
		logger.Fatal("usage: dsdump [flags] <capture-file>")
	}

	if err := run(pflag.Arg(0), logger); err != nil {
		logger.Fatal(err)
	}
}

func run(path string, logger *log.Logger) error {
	src, err := source.OpenFile(path)
	if err != nil {
		return err
	}
	defer src.Close()

	stream, err := newStream(src)
	if err != nil {
		return err
	}
	defer stream.Close()

	printer := pipe.NewEventPrinter(stream, os.Stdout, logger)
	printer.ErrorsOnly = *errorsOnly
	var events pipe.EventSource = printer

	for {
		_, err := events.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

func newStream(src *source.FileSource) (*datastream.Stream, error) {
	switch *device {
	case "rocana":
		var levels level.Decoder
		levels.Calibrate(*ublack, *black)
		return datastream.NewRocAnaStream(src, levels), nil
	case "rocdig":
		return datastream.NewRocDigStream(src), nil
	case "moddig":
		return datastream.NewModDigStream(src), nil
	default:
		return nil, errors.New("dsdump: unknown -device " + *device)
	}
}
