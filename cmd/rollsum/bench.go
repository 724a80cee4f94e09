package main

import (
	"bytes"
	"fmt"
	"time"

	"github.com/Redundancy/go-rollsum/rollsum"
	"github.com/Redundancy/go-rollsum/util/readers"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	mb = 1024 * 1024
)

func init() {
	commands = append(
		commands,
		&cli.Command{
			Name:  "bench",
			Usage: "compare the per byte cost of a narrow and a wide window",
			Description: `Rolls the configured family over the same number of windows of a non-repeating
stream at two widths. The cost per byte should not depend on the width.`,
			Action: Bench,
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "narrow",
					Value: 64,
					Usage: "width of the narrow window",
				},
				&cli.IntFlag{
					Name:  "wide",
					Value: 65536,
					Usage: "width of the wide window",
				},
				&cli.IntFlag{
					Name:  "size",
					Value: 16 * mb,
					Usage: "number of windows to checksum at each width",
				},
			},
		},
	)
}

type benchResult struct {
	width     int
	windows   int64
	perByteNs float64
}

func runBench(family rollsum.Type, width int, data []byte, windows int) (benchResult, error) {
	s, err := rollsum.New(family, width)
	if err != nil {
		return benchResult{}, err
	}

	input := data[:windows+width-1]

	start := time.Now()
	count, err := s.Run(bytes.NewReader(input), func(int64, uint64) bool { return true })
	elapsed := time.Since(start)

	if err != nil {
		return benchResult{}, err
	}

	return benchResult{
		width:     width,
		windows:   count,
		perByteNs: float64(elapsed.Nanoseconds()) / float64(len(input)),
	}, nil
}

func Bench(c *cli.Context) error {
	cfg := configFrom(c)
	narrow, wide, size := c.Int("narrow"), c.Int("wide"), c.Int("size")

	if narrow < 1 || wide < 1 || size < 1 {
		return errors.New("--narrow, --wide and --size must be positive")
	}

	data := make([]byte, size+max(narrow, wide)-1)
	readers.NewNonRepeatingSequence(0).Read(data)

	logger := loggerFrom(c)
	family := rollsum.Type(cfg.Family)
	var results []benchResult

	for _, width := range []int{narrow, wide} {
		logger.Debugw("benchmarking", "family", family, "width", width, "windows", size)

		r, err := runBench(family, width, data, size)
		if err != nil {
			return err
		}

		results = append(results, r)
		_, err = fmt.Fprintf(c.App.Writer, "%v\twidth %v\t%v windows\t%.3f ns/byte\n", family, r.width, r.windows, r.perByteNs)
		if err != nil {
			return err
		}
	}

	if results[0].perByteNs == 0 {
		_, err := fmt.Fprintln(c.App.Writer, "ratio n/a")
		return err
	}

	ratio := results[1].perByteNs / results[0].perByteNs
	paint := color.New(color.FgGreen)
	if ratio > 2 {
		paint = color.New(color.FgYellow)
	}

	_, err := fmt.Fprintln(c.App.Writer, "ratio", paint.Sprintf("%.2f", ratio))
	return err
}
