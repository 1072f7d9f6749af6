package charts

import (
	"fmt"
	"sort"

	"github.com/kamathhrishi/openbb-formd-filings/pkg/adapters/backend"
	"github.com/kamathhrishi/openbb-formd-filings/pkg/plotly"
)

// TopIndustriesFigure builds the industry ranking as a horizontal bar
// chart. The caller passes the top industries in backend order; bars are
// re-sorted ascending so the largest sector renders at the top.
func TopIndustriesFigure(dist []backend.DistributionItem, opts Options) *plotly.Figure {
	palette := plotly.ThemePalette(opts.Theme)
	amount := IsAmountMetric(opts.Metric)

	sorted := make([]backend.DistributionItem, len(dist))
	copy(sorted, dist)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Value < sorted[j].Value })

	values := make([]float64, len(sorted))
	names := make([]string, len(sorted))
	for i, item := range sorted {
		values[i] = item.Value
		names[i] = truncate(item.Name, 30)
	}
	textValues := plotly.FormatTextValues(values, amount)

	bar := &plotly.Bar{
		Type:          "bar",
		X:             values,
		Y:             names,
		Orientation:   "h",
		Marker:        &plotly.BarMarker{Color: palette.MainLine},
		Text:          textValues,
		TextPosition:  "outside",
		TextFont:      &plotly.Font{Color: palette.Text, Size: 12},
		HoverTemplate: hoverTemplate(opts.Metric, "hbar"),
	}
	if amount {
		bar.CustomData = textValues
	}

	subtitle := fmt.Sprintf("Real Form D data - most active sectors%s", FilterContext(opts.Year, "", opts.Metric))

	layout := plotly.BaseLayout(opts.Theme)
	layout.Title = plotly.ChartTitle("Top 10 Industries", subtitle, palette)
	layout.Height = 400
	layout.Margin = &plotly.Margin{L: 150, R: 50, T: 80, B: 50}
	layout.XAxis = themedAxis(AxisTitle(opts.Metric), palette)
	layout.XAxis.Range = []float64{0, maxOf(values) * 1.1}
	layout.YAxis = themedAxis("", palette)

	return &plotly.Figure{
		Data:   []plotly.Trace{bar},
		Layout: layout,
		Config: plotly.DefaultConfig(),
	}
}
