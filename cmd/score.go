package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"bangsafe/internal/api/handler/v1handler"
	"bangsafe/internal/scanner"
	"bangsafe/pkg/serrors"
)

// stdinInput selects standard input for --input.
const stdinInput = "-"

// maxInputLine bounds a single URL read from --input.
const maxInputLine = 1 << 20

// errUnscored is returned when at least one input could not be scored.
var errUnscored = errors.New("some urls could not be scored")

type scoreOptions struct {
	input       string
	concurrency int
}

// readInputs returns the positional args, or one URL per line of --input.
func readInputs(cmd *cobra.Command, opts scoreOptions, args []string) ([]string, error) {
	if opts.input == "" {
		return args, nil
	}
	if len(args) > 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "urls and --input are mutually exclusive")
	}

	var r io.Reader = cmd.InOrStdin()
	if opts.input != stdinInput {
		f, err := os.Open(opts.input)
		if err != nil {
			return nil, fmt.Errorf("could not open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	var inputs []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxInputLine)
	for sc.Scan() {
		inputs = append(inputs, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("could not read input: %w", err)
	}

	return inputs, nil
}

// scoreAll scores inputs concurrently and returns one JSON line per input,
// in input order, plus the number of inputs that failed.
func scoreAll(ctx context.Context, sc scanner.Scanner, inputs []string, concurrency int) ([][]byte, int, error) {
	lines := make([][]byte, len(inputs))
	failed := make([]bool, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, input := range inputs {
		g.Go(func() error {
			scan, err := sc.Scan(ctx, input)
			if err != nil {
				if serrors.KindOf(err) != serrors.ErrBadRequest {
					return fmt.Errorf("could not score %q: %w", input, err)
				}
				failed[i] = true
				lines[i] = v1handler.ErrorBody(serrors.ErrBadRequest.Code(), serrors.MessageOf(err, "bad request"))

				return nil
			}
			line, err := v1handler.ScanToV1Specs(scan).MarshalJSON()
			if err != nil {
				return fmt.Errorf("could not encode scan of %q: %w", input, err)
			}
			lines[i] = line

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	n := 0
	for _, f := range failed {
		if f {
			n++
		}
	}

	return lines, n, nil
}

// scoreCommand scores URLs offline and prints one JSON object per line.
func scoreCommand(_ *app) *cobra.Command {
	opts := scoreOptions{}

	cmd := &cobra.Command{
		Use:   "score [url...]",
		Short: "Scores URLs without starting the server",
		Long: "Scores the given URLs, or one URL per line of --input, and prints one JSON object per line " +
			"in input order using the POST /scan response shape.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.concurrency < 1 {
				return serrors.With(serrors.ErrBadRequest, "--concurrency must be positive")
			}

			inputs, err := readInputs(cmd, opts, args)
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			// scans never touch storage
			lines, failed, err := scoreAll(ctx, scanner.New(nil, scanner.Options{}), inputs, opts.concurrency)
			if err != nil {
				return err
			}

			w := bufio.NewWriter(cmd.OutOrStdout())
			for _, line := range lines {
				_, _ = w.Write(line)
				_ = w.WriteByte('\n')
			}
			if err = w.Flush(); err != nil {
				return fmt.Errorf("could not write output: %w", err)
			}

			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", errUnscored, failed, len(inputs))
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", `File with one URL per line, "-" for stdin`)
	cmd.Flags().IntVar(&opts.concurrency, "concurrency", runtime.NumCPU(), "Number of URLs scored in parallel")

	return cmd
}
