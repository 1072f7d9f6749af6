package charts

import (
	"fmt"
	"sort"

	"github.com/kamathhrishi/openbb-formd-filings/pkg/adapters/backend"
	"github.com/kamathhrishi/openbb-formd-filings/pkg/plotly"
)

// TotalValue sums a distribution.
func TotalValue(dist []backend.DistributionItem) float64 {
	var total float64
	for _, item := range dist {
		total += item.Value
	}
	return total
}

// GroupTopWithOther sorts a distribution descending and keeps the top n
// buckets; everything past them collapses into a single "All Others" bucket
// holding the remainder sum.
func GroupTopWithOther(dist []backend.DistributionItem, n int) []backend.DistributionItem {
	sorted := make([]backend.DistributionItem, len(dist))
	copy(sorted, dist)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Value > sorted[j].Value })

	if len(sorted) <= n {
		return sorted
	}

	top := sorted[:n:n]
	return append(top, backend.DistributionItem{
		Name:  "All Others",
		Value: TotalValue(sorted[n:]),
	})
}

// SecurityTypesFigure builds the security type donut: the four largest
// types plus "All Others", with the grand total in the subtitle.
func SecurityTypesFigure(dist []backend.DistributionItem, opts Options) *plotly.Figure {
	palette := plotly.ThemePalette(opts.Theme)
	amount := IsAmountMetric(opts.Metric)

	total := TotalValue(dist)
	grouped := GroupTopWithOther(dist, 4)

	labels := make([]string, len(grouped))
	values := make([]float64, len(grouped))
	for i, item := range grouped {
		labels[i] = item.Name
		values[i] = item.Value
	}

	var totalText string
	if amount {
		totalText = plotly.FormatCurrencyShort(total)
	} else {
		totalText = plotly.FormatCount(total)
	}
	subtitle := fmt.Sprintf("Total: %s%s", totalText, FilterContext(opts.Year, "", opts.Metric))

	pie := &plotly.Pie{
		Type:          "pie",
		Labels:        labels,
		Values:        values,
		Hole:          0.4,
		Marker:        &plotly.PieMarker{Colors: sliceColors[:len(grouped)]},
		TextInfo:      "label+percent",
		TextPosition:  "auto",
		TextFont:      &plotly.Font{Color: "white", Size: 12},
		HoverTemplate: hoverTemplate(opts.Metric, "pie"),
	}
	if amount {
		pie.CustomData = plotly.FormatTextValues(values, true)
	}

	layout := plotly.BaseLayout(opts.Theme)
	layout.Title = plotly.ChartTitle("Security Type Distribution", subtitle, palette)
	layout.Height = 400
	layout.ShowLegend = plotly.Bool(true)
	layout.Legend = &plotly.Legend{
		Orientation: "v",
		YAnchor:     "middle",
		Y:           plotly.Float(0.5),
		Font:        &plotly.Font{Size: 12, Color: palette.Text},
	}

	return &plotly.Figure{
		Data:   []plotly.Trace{pie},
		Layout: layout,
		Config: plotly.DefaultConfig(),
	}
}
