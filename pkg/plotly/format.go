package plotly

import (
	"fmt"
	"math"
	"strconv"
)

// FormatCurrencyShort renders a dollar amount in compact form: $950, $1.2K,
// $3.4M, $5.6B, $7.8T. Bar text and hover labels use it so nine-figure
// offering amounts stay readable.
func FormatCurrencyShort(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1e12:
		return fmt.Sprintf("$%.1fT", v/1e12)
	case abs >= 1e9:
		return fmt.Sprintf("$%.1fB", v/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("$%.1fM", v/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("$%.1fK", v/1e3)
	default:
		return fmt.Sprintf("$%.0f", v)
	}
}

// FormatCount renders a count with thousands separators: 1234567 -> "1,234,567".
func FormatCount(v float64) string {
	n := int64(math.Round(v))
	neg := n < 0
	if neg {
		n = -n
	}

	s := strconv.FormatInt(n, 10)
	if len(s) > 3 {
		var out []byte
		for i, d := range []byte(s) {
			if i > 0 && (len(s)-i)%3 == 0 {
				out = append(out, ',')
			}
			out = append(out, d)
		}
		s = string(out)
	}
	if neg {
		return "-" + s
	}
	return s
}

// FormatTextValues formats a series for on-chart text: short currency for
// amount metrics, separated counts otherwise.
func FormatTextValues(values []float64, amount bool) []string {
	out := make([]string, len(values))
	for i, v := range values {
		if amount {
			out[i] = FormatCurrencyShort(v)
		} else {
			out[i] = FormatCount(v)
		}
	}
	return out
}
