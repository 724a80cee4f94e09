/*
rollsum prints, fingerprints and benchmarks the rolling checksums of a file,
using any of the families in the rollsum package.
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

// each command file appends to this in init
var commands []*cli.Command

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "rollsum"
	app.Usage = "Rolling checksums over every window of a file"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "YAML configuration file",
		},
		&cli.StringFlag{
			Name:    "family",
			Aliases: []string{"f"},
			Usage:   "checksum family (see \"rollsum families\")",
		},
		&cli.IntFlag{
			Name:    "width",
			Aliases: []string{"w"},
			Usage:   "window width in bytes",
		},
		&cli.StringFlag{
			Name:  "format",
			Usage: "input encoding: auto, raw, gzip, zstd, snappy or lz4",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "debug, info, warn or error",
		},
	}
	app.Commands = commands
	app.Before = setup
	app.After = teardown

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("rollsum: %v", err))
		os.Exit(1)
	}
}
