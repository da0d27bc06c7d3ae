// Package formatting converts byte counts to and from human-readable sizes.
package formatting

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Base-1024 units. An int64 tops out just under 8 EB, so larger units
// would never be reachable.
var units = []string{"B", "KB", "MB", "GB", "TB", "PB", "EB"}

// FormatBytes renders n in the largest unit that keeps the value at or
// above one, with precision decimal places. Negative precision is treated
// as zero and negative counts keep their sign.
func FormatBytes(n int64, precision int) string {
	if n < 0 {
		if n == math.MinInt64 {
			return "-8 EB"
		}
		return "-" + FormatBytes(-n, precision)
	}
	precision = max(precision, 0)

	size := float64(n)
	i := 0
	for size >= 1024 && i < len(units)-1 {
		size /= 1024
		i++
	}

	if i == 0 {
		return strconv.FormatInt(n, 10) + " B"
	}
	return strconv.FormatFloat(size, 'f', precision, 64) + " " + units[i]
}

// ParseBytes parses sizes such as "512", "1.5KB", "10 mb" or "2MiB".
// Units are case-insensitive and base-1024; "K", "KB" and "KiB" are
// equivalent. A bare number is a byte count.
func ParseBytes(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty byte size string")
	}

	split := strings.IndexFunc(s, unicode.IsLetter)
	if split == -1 {
		split = len(s)
	}
	number := strings.TrimSpace(s[:split])
	unit := strings.ToUpper(s[split:])

	value, err := strconv.ParseFloat(number, 64)
	if err != nil || value < 0 || math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, fmt.Errorf("invalid byte size: %q", s)
	}

	exp, ok := unitExponent(unit)
	if !ok {
		return 0, fmt.Errorf("unknown byte size unit: %q", unit)
	}

	bytes := value * math.Pow(1024, float64(exp))
	if bytes >= math.MaxInt64 {
		return 0, fmt.Errorf("byte size overflows int64: %q", s)
	}
	return int64(bytes), nil
}

func unitExponent(unit string) (int, bool) {
	if unit == "" || unit == "B" {
		return 0, true
	}
	unit = strings.TrimSuffix(strings.Replace(unit, "IB", "B", 1), "B")
	for i, u := range units[1:] {
		if unit == u[:1] {
			return i + 1, true
		}
	}
	return 0, false
}
