package charts

import (
	"fmt"
	"sort"

	"github.com/kamathhrishi/openbb-formd-filings/pkg/adapters/backend"
	"github.com/kamathhrishi/openbb-formd-filings/pkg/plotly"
)

// RankFundraisers deduplicates companies (a company filing several times
// keeps only its largest amount) and returns the top n by amount,
// descending.
func RankFundraisers(list []backend.Fundraiser, n int) []backend.Fundraiser {
	if len(list) > n {
		list = list[:n]
	}

	largest := make(map[string]backend.Fundraiser, len(list))
	var order []string
	for _, f := range list {
		best, seen := largest[f.CompanyName]
		if !seen {
			order = append(order, f.CompanyName)
		}
		if !seen || f.Amount > best.Amount {
			largest[f.CompanyName] = f
		}
	}

	ranked := make([]backend.Fundraiser, 0, len(order))
	for _, name := range order {
		ranked = append(ranked, largest[name])
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Amount > ranked[j].Amount })

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// TopFundraisersFigure builds the fundraiser ranking as a horizontal bar
// chart, bars colored by security type and sorted ascending so the largest
// raise renders at the top.
func TopFundraisersFigure(ranked []backend.Fundraiser, opts Options) *plotly.Figure {
	palette := plotly.ThemePalette(opts.Theme)

	display := make([]backend.Fundraiser, len(ranked))
	copy(display, ranked)
	sort.SliceStable(display, func(i, j int) bool { return display[i].Amount < display[j].Amount })

	amounts := make([]float64, len(display))
	names := make([]string, len(display))
	colors := make([]string, len(display))
	types := make([]string, len(display))
	for i, f := range display {
		amounts[i] = f.Amount
		names[i] = truncate(f.CompanyName, 40)
		colors[i] = SecurityTypeColor(f.SecurityType)
		if f.SecurityType != "" {
			types[i] = f.SecurityType
		} else {
			types[i] = "Unknown"
		}
	}
	formattedAmounts := plotly.FormatTextValues(amounts, true)

	bar := &plotly.Bar{
		Type:          "bar",
		X:             amounts,
		Y:             names,
		Orientation:   "h",
		Marker:        &plotly.BarMarker{Color: colors},
		Text:          formattedAmounts,
		TextPosition:  "outside",
		TextFont:      &plotly.Font{Color: palette.Text, Size: 10},
		HoverTemplate: "<b>%{y}</b><br>Amount: %{text}<br>Type: %{customdata}<extra></extra>",
		CustomData:    types,
	}

	subtitle := fmt.Sprintf("Real Form D data - largest offering amounts%s",
		FilterContext(opts.Year, opts.Industry, opts.Metric))

	layout := plotly.BaseLayout(opts.Theme)
	layout.Title = plotly.ChartTitle("Top 20 Fundraisers", subtitle, palette)
	layout.Height = 600
	layout.Margin = &plotly.Margin{L: 200, R: 50, T: 80, B: 80}
	layout.XAxis = themedAxis(AxisTitle(opts.Metric), palette)
	layout.XAxis.Range = []float64{0, maxOf(amounts) * 1.1}
	layout.YAxis = themedAxis("", palette)

	return &plotly.Figure{
		Data:   []plotly.Trace{bar},
		Layout: layout,
		Config: plotly.DefaultConfig(),
	}
}
