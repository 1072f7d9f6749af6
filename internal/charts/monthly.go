package charts

import (
	"fmt"
	"strconv"
	"time"

	"github.com/kamathhrishi/openbb-formd-filings/pkg/adapters/backend"
	"github.com/kamathhrishi/openbb-formd-filings/pkg/plotly"
)

// MonthlySeries is plot-ready monthly data: one value per month and
// security type for the selected metric. A single-industry view carries the
// industry total in Equity with the other two series zeroed.
type MonthlySeries struct {
	Months   []string
	Equity   []float64
	Debt     []float64
	Fund     []float64
	Industry string
}

// MonthlyRow is one month of the raw data view.
type MonthlyRow struct {
	Month  string  `json:"month"`
	Equity float64 `json:"equity"`
	Debt   float64 `json:"debt"`
	Fund   float64 `json:"fund"`
}

// MonthlyFromTimeSeries selects the requested metric out of the
// all-industries series.
func MonthlyFromTimeSeries(points []backend.MonthlyPoint, metric string) MonthlySeries {
	s := MonthlySeries{
		Months: make([]string, len(points)),
		Equity: make([]float64, len(points)),
		Debt:   make([]float64, len(points)),
		Fund:   make([]float64, len(points)),
	}
	amount := IsAmountMetric(metric)
	for i, p := range points {
		s.Months[i] = p.Date
		if amount {
			s.Equity[i] = p.EquityAmount
			s.Debt[i] = p.DebtAmount
			s.Fund[i] = p.FundAmount
		} else {
			s.Equity[i] = p.EquityFilings
			s.Debt[i] = p.DebtFilings
			s.Fund[i] = p.FundFilings
		}
	}
	return s
}

// MonthlyFromIndustrySeries selects the requested metric out of a single
// industry's series.
func MonthlyFromIndustrySeries(points []backend.IndustryPoint, metric, industry string) MonthlySeries {
	s := MonthlySeries{
		Months:   make([]string, len(points)),
		Equity:   make([]float64, len(points)),
		Debt:     make([]float64, len(points)),
		Fund:     make([]float64, len(points)),
		Industry: industry,
	}
	amount := IsAmountMetric(metric)
	for i, p := range points {
		s.Months[i] = p.Date
		if amount {
			s.Equity[i] = p.TotalAmount
		} else {
			s.Equity[i] = p.Filings
		}
	}
	return s
}

// FilterMonths drops months before 2009 and the current month, which is
// still accumulating filings and would always plot as a misleading dip.
func FilterMonths(s MonthlySeries, now time.Time) MonthlySeries {
	currentMonth := now.Format("2006-01")

	out := MonthlySeries{Industry: s.Industry}
	for i, month := range s.Months {
		if len(month) < 4 {
			continue
		}
		year, err := strconv.Atoi(month[:4])
		if err != nil || year < minYear || month == currentMonth {
			continue
		}
		out.Months = append(out.Months, month)
		out.Equity = append(out.Equity, s.Equity[i])
		out.Debt = append(out.Debt, s.Debt[i])
		out.Fund = append(out.Fund, s.Fund[i])
	}
	return out
}

// Rows returns the series as the raw data view.
func (s MonthlySeries) Rows() []MonthlyRow {
	rows := make([]MonthlyRow, len(s.Months))
	for i, month := range s.Months {
		rows[i] = MonthlyRow{
			Month:  month,
			Equity: s.Equity[i],
			Debt:   s.Debt[i],
			Fund:   s.Fund[i],
		}
	}
	return rows
}

// MonthlyActivityFigure builds the monthly activity line chart: one line
// per security type, or a single total line when an industry filter is set.
func MonthlyActivityFigure(s MonthlySeries, opts Options) *plotly.Figure {
	palette := plotly.ThemePalette(opts.Theme)
	hover := plotly.ThemeHover(opts.Theme)
	amount := IsAmountMetric(opts.Metric)

	var hoverTmpl, yTitle string
	if amount {
		hoverTmpl = "<b>%{x}</b><br><b>%{fullData.name}</b>: %{customdata}<extra></extra>"
		yTitle = "Amount ($)"
	} else {
		hoverTmpl = "<b>%{x}</b><br><b>%{fullData.name}</b>: %{y:,.0f} filings<extra></extra>"
		yTitle = "Number of Filings"
	}

	hoverLabel := &plotly.HoverLabel{
		BgColor:     hover.BgColor,
		BorderColor: hover.BorderColor,
		Font:        &plotly.Font{Color: palette.Text},
	}

	line := func(values []float64, name, color string) *plotly.Scatter {
		trace := &plotly.Scatter{
			Type:          "scatter",
			X:             s.Months,
			Y:             values,
			Mode:          "lines+markers",
			Name:          name,
			Line:          &plotly.Line{Color: color, Width: 3},
			Marker:        &plotly.ScatterMarker{Size: 6},
			HoverTemplate: hoverTmpl,
			HoverLabel:    hoverLabel,
		}
		if amount {
			trace.CustomData = plotly.FormatTextValues(values, true)
		}
		return trace
	}

	var traces []plotly.Trace
	if s.Industry != "" {
		name := fmt.Sprintf("%s - Filings", s.Industry)
		if amount {
			name = fmt.Sprintf("%s - Total Amount", s.Industry)
		}
		traces = append(traces, line(s.Equity, name, "#3B82F6"))
	} else if amount {
		traces = append(traces,
			line(s.Equity, "Equity", "#3B82F6"),
			line(s.Debt, "Debt", "#F59E0B"),
			line(s.Fund, "Fund", "#10B981"),
		)
	} else {
		traces = append(traces,
			line(s.Equity, "Equity Filings", "#3B82F6"),
			line(s.Debt, "Debt Filings", "#F59E0B"),
			line(s.Fund, "Fund Filings", "#10B981"),
		)
	}

	var base string
	switch opts.Metric {
	case MetricOfferingAmount:
		base = "offering amounts over time"
	case MetricAmountSold:
		base = "amounts sold over time"
	default:
		base = "filings over time"
	}
	subtitle := fmt.Sprintf("Real Form D data - %s%s", base, FilterContext("", s.Industry, ""))

	layout := plotly.BaseLayout(opts.Theme)
	layout.Title = plotly.ChartTitle("Monthly Filing Activity", subtitle, palette)
	layout.Height = 500
	layout.HoverMode = "x"
	layout.Margin = &plotly.Margin{L: 80, R: 50, T: 80, B: 80}
	layout.XAxis = themedAxis("Month", palette)
	layout.YAxis = themedAxis(yTitle, palette)
	layout.YAxis.Range = []float64{0, maxOf(s.Equity, s.Debt, s.Fund) * 1.1}
	layout.Legend = &plotly.Legend{Font: &plotly.Font{Color: palette.Text, Size: 12}}

	return &plotly.Figure{
		Data:   traces,
		Layout: layout,
		Config: plotly.DefaultConfig(),
	}
}
