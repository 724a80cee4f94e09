package main

import (
	"encoding/binary"
	"fmt"

	"github.com/Redundancy/go-rollsum/rollsum"
	"github.com/cespare/xxhash/v2"
	"github.com/urfave/cli/v2"
)

const fingerprintUsage = "rollsum fingerprint <file>"

func init() {
	commands = append(
		commands,
		&cli.Command{
			Name:      "fingerprint",
			Aliases:   []string{"fp"},
			Usage:     "digest the whole checksum sequence of a file",
			UsageText: fingerprintUsage,
			Description: `Prints the family, the width, the number of windows and an xxhash64 of the
checksums (each as a little endian uint64). Two runs over the same input must agree.`,
			Action: Fingerprint,
		},
	)
}

type fingerprint struct {
	family string
	width  int
	count  int64
	digest uint64
}

func (f fingerprint) String() string {
	return fmt.Sprintf("%v\t%v\t%v\t%016x", f.family, f.width, f.count, f.digest)
}

func Fingerprint(c *cli.Context) error {
	cfg := configFrom(c)

	s, err := rollsum.New(rollsum.Type(cfg.Family), cfg.Width)
	if err != nil {
		return err
	}

	src, err := openSource(c, fingerprintUsage)
	if err != nil {
		return err
	}
	defer src.Close()

	h := xxhash.New()
	var buf [8]byte

	count, err := s.Run(src, func(_ int64, sum uint64) bool {
		binary.LittleEndian.PutUint64(buf[:], sum)
		h.Write(buf[:])
		return true
	})
	if err != nil {
		return err
	}

	result := fingerprint{
		family: s.Name(),
		width:  s.Width(),
		count:  count,
		digest: h.Sum64(),
	}

	_, err = fmt.Fprintln(c.App.Writer, result)
	return err
}
