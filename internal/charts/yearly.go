package charts

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/kamathhrishi/openbb-formd-filings/pkg/adapters/backend"
	"github.com/kamathhrishi/openbb-formd-filings/pkg/plotly"
)

// YearTotal is one year's aggregate, the unit of the yearly statistics
// chart and its raw data view.
type YearTotal struct {
	Year  string  `json:"year"`
	Value float64 `json:"value"`
}

// AggregateYearly folds the all-industries monthly series into yearly
// totals for the requested metric: amounts sum the three security type
// amounts, counts sum the three filing counts. Years before 2009 are
// dropped; the result is sorted ascending by year.
func AggregateYearly(points []backend.MonthlyPoint, metric string) []YearTotal {
	amount := IsAmountMetric(metric)
	totals := make(map[string]float64)
	for _, p := range points {
		if len(p.Date) < 4 {
			continue
		}
		var v float64
		if amount {
			v = p.EquityAmount + p.DebtAmount + p.FundAmount
		} else {
			v = p.EquityFilings + p.DebtFilings + p.FundFilings
		}
		totals[p.Date[:4]] += v
	}
	return sortYearTotals(totals)
}

// AggregateYearlyIndustry folds a single industry's monthly series into
// yearly totals.
func AggregateYearlyIndustry(points []backend.IndustryPoint, metric string) []YearTotal {
	amount := IsAmountMetric(metric)
	totals := make(map[string]float64)
	for _, p := range points {
		if len(p.Date) < 4 {
			continue
		}
		if amount {
			totals[p.Date[:4]] += p.TotalAmount
		} else {
			totals[p.Date[:4]] += p.Filings
		}
	}
	return sortYearTotals(totals)
}

func sortYearTotals(totals map[string]float64) []YearTotal {
	out := make([]YearTotal, 0, len(totals))
	for year, total := range totals {
		if y, err := strconv.Atoi(year); err != nil || y < minYear {
			continue
		}
		out = append(out, YearTotal{Year: year, Value: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// YearlyStatisticsFigure builds the yearly totals bar chart.
func YearlyStatisticsFigure(totals []YearTotal, opts Options) *plotly.Figure {
	palette := plotly.ThemePalette(opts.Theme)
	amount := IsAmountMetric(opts.Metric)

	years := make([]string, len(totals))
	values := make([]float64, len(totals))
	for i, t := range totals {
		years[i] = t.Year
		values[i] = t.Value
	}
	textValues := plotly.FormatTextValues(values, amount)

	bar := &plotly.Bar{
		Type:          "bar",
		X:             years,
		Y:             values,
		Marker:        &plotly.BarMarker{Color: palette.MainLine},
		Text:          textValues,
		TextPosition:  "outside",
		TextFont:      &plotly.Font{Color: palette.Text, Size: 12},
		HoverTemplate: hoverTemplate(opts.Metric, "bar"),
		CustomData:    textValues,
	}

	subtitle := fmt.Sprintf("Annual totals by year%s", FilterContext("", opts.Industry, opts.Metric))

	layout := plotly.BaseLayout(opts.Theme)
	layout.Title = plotly.ChartTitle("Yearly Statistics", subtitle, palette)
	layout.Height = 500
	layout.Margin = &plotly.Margin{L: 80, R: 50, T: 80, B: 80}
	layout.XAxis = themedAxis("Year", palette)
	layout.YAxis = themedAxis(AxisTitle(opts.Metric), palette)

	return &plotly.Figure{
		Data:   []plotly.Trace{bar},
		Layout: layout,
		Config: plotly.DefaultConfig(),
	}
}
