package main

import (
	"fmt"

	"github.com/Redundancy/go-rollsum/rollsum"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const sumsUsage = "rollsum sums [--every N] [--limit N] <file>"

func init() {
	commands = append(
		commands,
		&cli.Command{
			Name:      "sums",
			Aliases:   []string{"s"},
			Usage:     "print the checksum of every window",
			UsageText: sumsUsage,
			Description: `Prints one line per window: the offset of its first byte and the checksum in hex.
<file> may be compressed (see --format), or "-" for stdin.`,
			Action: Sums,
			Flags: []cli.Flag{
				&cli.Int64Flag{
					Name:  "every",
					Usage: "only print windows whose offset is a multiple of N",
				},
				&cli.Int64Flag{
					Name:  "limit",
					Usage: "stop after printing N lines (0 for no limit)",
				},
			},
		},
	)
}

// Sums prints the checksum sequence of a file
func Sums(c *cli.Context) error {
	cfg := configFrom(c)
	if c.IsSet("every") {
		cfg.Every = c.Int64("every")
	}
	if c.IsSet("limit") {
		cfg.Limit = c.Int64("limit")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	s, err := rollsum.New(rollsum.Type(cfg.Family), cfg.Width)
	if err != nil {
		return err
	}

	src, err := openSource(c, sumsUsage)
	if err != nil {
		return err
	}
	defer src.Close()

	var printed int64
	var writeErr error
	w := c.App.Writer

	count, err := s.Run(src, func(offset int64, sum uint64) bool {
		if offset%cfg.Every != 0 {
			return true
		}

		if _, writeErr = fmt.Fprintf(w, "%d\t%x\n", offset, sum); writeErr != nil {
			return false
		}

		printed++
		return cfg.Limit == 0 || printed < cfg.Limit
	})

	if writeErr != nil {
		return errors.Wrap(writeErr, "writing output")
	}
	if err != nil {
		return err
	}

	loggerFrom(c).Infow("done", "family", s.Name(), "width", s.Width(), "windows", count, "printed", printed)
	return nil
}
