package widgets

import (
	"sort"
	"strconv"
)

// earliestYear mirrors the chart cutoff: no dropdown entries for the sparse
// pre-2009 data.
const earliestYear = 2009

// AvailableYearOptions shapes the backend's year list into dropdown options:
// "All Years" first, then each year descending. Years before 2009 are
// dropped.
func AvailableYearOptions(years []int) []Option {
	filtered := make([]int, 0, len(years))
	for _, y := range years {
		if y >= earliestYear {
			filtered = append(filtered, y)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(filtered)))

	options := make([]Option, 0, len(filtered)+1)
	options = append(options, Option{Label: "All Years", Value: "all"})
	for _, y := range filtered {
		s := strconv.Itoa(y)
		options = append(options, Option{Label: s, Value: s})
	}
	return options
}
