// Package format renders currency magnitudes for display. Nothing here is
// game-state bearing.
package format

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

var units = []string{"", "K", "M", "B", "T", "Qa", "Qi"}

// Number renders n compactly, e.g. 12.3K or 450M. Values below 100 in a unit
// keep one decimal; plain values drop a trailing ".0".
func Number(n float64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	for _, unit := range units {
		if n < 1000 {
			if n >= 100 {
				return sign + strconv.Itoa(int(n)) + unit
			}
			s := strconv.FormatFloat(n, 'f', 1, 64)
			if unit == "" {
				s = strings.TrimSuffix(s, ".0")
			}
			return sign + s + unit
		}
		n /= 1000
	}
	return sign + strconv.FormatFloat(n, 'f', 1, 64) + "Sx"
}

// Commas renders the whole part of n with grouped digits, e.g. 1,234,567.
func Commas(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return Number(n)
	}
	if math.Abs(n) >= math.MaxInt64 {
		return Number(n)
	}
	return humanize.Comma(int64(n))
}
