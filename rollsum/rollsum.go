/*
rollsum provides rolling checksum families for the rolling package.

Each family is a small value type: the window width and any precomputed constants.
The running state is passed in and returned by ProcessByte, so one family value can drive
any number of streams. None of the families here are cryptographic - they are weak
checksums meant to find candidate matches or boundaries cheaply.

  - Additive: the sum of the window bytes mod 256. Mostly for illustration and tests.
  - Rsync: the rsync weak checksum, with 16 bit running sums.
  - Rollsum64: the same algorithm with 64 bit sums, 32 bits of each in the checksum.
  - Adler32: Adler-32, identical to hash/adler32 of the window.
  - Buzhash32, Buzhash64: cyclic polynomial hashes over a byte table.
  - Polynomial32: a Rabin-Karp style polynomial hash mod 2^32.

The families can also be looked up by name (see registry.go), and a uint32 family can be
used as a hash.Hash via NewHash32.
*/
package rollsum

import (
	rolling "github.com/Redundancy/go-rollsum"
	"github.com/pkg/errors"
)

func checkWidth(width int) error {
	if width <= 0 {
		return errors.Wrapf(rolling.ErrInvalidWidth, "width %v", width)
	}
	return nil
}
