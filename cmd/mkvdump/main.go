// Command mkvdump parses an EBML/Matroska file and writes its decoded
// element structure to stdout as YAML or JSON.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	matroska "github.com/go-ebml/mkvdump"
	"github.com/go-ebml/mkvdump/internal/xlog"
	"github.com/go-ebml/mkvdump/render"
)

const (
	exitOK            = 0
	exitIOError       = 1
	exitUnrecoverable = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var (
		formatFlag    string
		showPositions bool
		linearOutput  bool
		bufferSize    int
		verbose       bool
	)

	cmd := &cobra.Command{
		Use:           "mkvdump <filename>",
		Short:         "Dump the decoded element structure of an EBML/Matroska file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, cmdArgs []string) error {
			format, err := render.ParseFormat(formatFlag)
			if err != nil {
				return err
			}

			level := zerolog.WarnLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			log := xlog.NewStdHelper(os.Stderr, level)

			f, err := os.Open(cmdArgs[0])
			if err != nil {
				return err
			}
			defer f.Close()

			elems, err := decodeAll(f, bufferSize, log)
			if err != nil {
				return err
			}

			trees := matroska.BuildTrees(elems)
			opts := render.Options{
				Format:        format,
				LinearOutput:  linearOutput,
				ShowPositions: showPositions,
			}
			out := bufio.NewWriter(cmd.OutOrStdout())
			if err := render.Trees(out, trees, opts); err != nil {
				if isBrokenPipe(err) {
					return nil
				}
				return err
			}
			if err := out.Flush(); err != nil {
				if isBrokenPipe(err) {
					return nil
				}
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&formatFlag, "format", "yaml", "output format: yaml or json")
	cmd.Flags().BoolVar(&showPositions, "show-element-positions", false, "include each element's absolute byte position")
	cmd.Flags().BoolVar(&linearOutput, "linear-output", false, "render elements as a flat stream-order list instead of a nested tree")
	cmd.Flags().IntVar(&bufferSize, "buffer-size", 0, "read buffer size in bytes (0 selects the default)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging to stderr")

	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		if isBrokenPipe(err) {
			return exitOK
		}
		level := zerolog.WarnLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		xlog.NewStdHelper(os.Stderr, level).Errorf("%v", err)
		if errors.Is(err, matroska.ErrOutOfBufferSpace) {
			return exitUnrecoverable
		}
		return exitIOError
	}
	return exitOK
}

// decodeAll drives a Driver to exhaustion, returning every Element it
// emitted in stream order.
func decodeAll(f *os.File, bufferSize int, log *xlog.Helper) ([]matroska.Element, error) {
	d := matroska.NewDriver(f, matroska.Options{BufferSize: bufferSize, Logger: log})

	var elems []matroska.Element
	for {
		el, err := d.Next()
		if err != nil {
			if err == io.EOF {
				return elems, nil
			}
			return elems, fmt.Errorf("decoding %s: %w", f.Name(), err)
		}
		elems = append(elems, el)
	}
}

func isBrokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE)
}
