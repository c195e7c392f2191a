// Package units formats byte counts for the status bar.
package units

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// Unit is the binary magnitude of a value passed to Humanize.
type Unit int

const (
	Byte Unit = iota
	KiB
	MiB
	GiB
)

var suffixes = [...]string{"B", "K", "M", "G"}

// Humanize formats value, expressed in unit, as a right-aligned number and a
// one-letter suffix. The value moves to the next unit (steps of 1024) once it
// reaches 1000, so the number stays within its width: 3 columns when
// precision is 0, otherwise 4+precision. A trailing ".0" is dropped.
func Humanize(value float64, unit Unit, precision int) string {
	for unit < GiB && value >= 1000 {
		value /= 1024
		unit++
	}

	width := 3
	if precision > 0 {
		width = 4 + precision
	}
	number := fmt.Sprintf("%*.*f", width, precision, value)
	number = strings.TrimSuffix(number, ".0")
	return number + " " + suffixes[unit]
}

// Bytes is Humanize for a byte count.
func Bytes(n uint64, precision int) string {
	return Humanize(float64(n), Byte, precision)
}

// Size formats a memory size with IEC suffixes, e.g. "7.6 GiB".
func Size(n uint64) string {
	return humanize.IBytes(n)
}
