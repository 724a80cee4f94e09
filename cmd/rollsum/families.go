package main

import (
	"fmt"

	"github.com/Redundancy/go-rollsum/rollsum"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

func init() {
	commands = append(
		commands,
		&cli.Command{
			Name:   "families",
			Usage:  "list the checksum families that can be used with --family",
			Action: Families,
		},
	)
}

func Families(c *cli.Context) error {
	current := configFrom(c).Family
	name := color.New(color.FgGreen)
	selected := color.New(color.FgGreen, color.Bold)

	for _, t := range rollsum.Types() {
		var err error
		if string(t) == current {
			_, err = fmt.Fprintln(c.App.Writer, selected.Sprint(t), "(selected)")
		} else {
			_, err = fmt.Fprintln(c.App.Writer, name.Sprint(t))
		}

		if err != nil {
			return err
		}
	}

	return nil
}
