package charts

import (
	"fmt"
	"strings"

	"github.com/kamathhrishi/openbb-formd-filings/pkg/plotly"
)

// Metrics a chart can display. Count is the number of filings; the other
// two are dollar aggregates.
const (
	MetricCount          = "count"
	MetricOfferingAmount = "offering_amount"
	MetricAmountSold     = "amount_sold"
)

// Earliest year with trustworthy data. Electronic Form D filing only became
// mandatory in 2009; earlier records are sparse and skew every chart.
const minYear = 2009

// Options carry the request filters that shape a chart.
type Options struct {
	Metric   string
	Year     string
	Industry string
	Theme    string
}

// IsAmountMetric reports whether metric is a dollar amount rather than a
// filing count.
func IsAmountMetric(metric string) bool {
	return metric == MetricOfferingAmount || metric == MetricAmountSold
}

// AxisTitle returns the value-axis label for a metric.
func AxisTitle(metric string) string {
	switch metric {
	case MetricOfferingAmount:
		return "Offering Amount ($)"
	case MetricAmountSold:
		return "Amount Sold ($)"
	default:
		return "Number of Filings"
	}
}

func metricLabel(metric string) string {
	switch metric {
	case MetricOfferingAmount:
		return "Offering Amount"
	case MetricAmountSold:
		return "Amount Sold"
	default:
		return ""
	}
}

// FilterContext renders the active filters as a subtitle suffix, e.g.
// " (Year: 2023, Metric: Offering Amount)". Unset filters, "all" values and
// the default count metric contribute nothing.
func FilterContext(year, industry, metric string) string {
	var parts []string
	if year != "" && year != "all" {
		parts = append(parts, fmt.Sprintf("Year: %s", year))
	}
	if industry != "" && industry != "all" {
		parts = append(parts, fmt.Sprintf("Industry: %s", industry))
	}
	if label := metricLabel(metric); label != "" {
		parts = append(parts, fmt.Sprintf("Metric: %s", label))
	}
	if len(parts) == 0 {
		return ""
	}
	return fmt.Sprintf(" (%s)", strings.Join(parts, ", "))
}

// SecurityTypeColor maps a security type to its fixed chart color.
func SecurityTypeColor(securityType string) string {
	switch securityType {
	case "Equity":
		return "#3B82F6"
	case "Debt":
		return "#F59E0B"
	case "Fund":
		return "#10B981"
	default:
		return "#8B5CF6"
	}
}

// sliceColors is the palette for categorical slices, in rank order.
var sliceColors = []string{"#3B82F6", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6"}

// truncate shortens a label to max characters with a trailing ellipsis so
// long company and industry names do not swallow the plot area.
func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}

// hoverTemplate builds the tooltip template for a trace kind (pie, hbar for
// horizontal bars, bar for vertical ones). Amount metrics read the formatted
// currency from customdata; counts format inline.
func hoverTemplate(metric, kind string) string {
	amount := IsAmountMetric(metric)
	switch kind {
	case "pie":
		if amount {
			return "<b>%{label}</b><br>%{customdata}<extra></extra>"
		}
		return "<b>%{label}</b><br>%{value:,.0f} filings<extra></extra>"
	case "hbar":
		if amount {
			return "<b>%{y}</b><br>%{customdata}<extra></extra>"
		}
		return "<b>%{y}</b><br>%{x:,.0f} filings<extra></extra>"
	default:
		if amount {
			return "<b>%{x}</b><br>%{customdata}<extra></extra>"
		}
		return "<b>%{x}</b><br>%{y:,.0f} filings<extra></extra>"
	}
}

// themedAxis builds an axis with the theme's text and grid colors applied.
func themedAxis(title string, p plotly.Palette) *plotly.Axis {
	axis := &plotly.Axis{
		TickFont:  &plotly.Font{Color: p.Text},
		GridColor: p.Grid,
	}
	if title != "" {
		axis.Title = &plotly.Title{Text: title, Font: &plotly.Font{Color: p.Text}}
	}
	return axis
}

// maxOf returns the largest value across the given series, or 0 when all
// are empty.
func maxOf(series ...[]float64) float64 {
	var max float64
	for _, values := range series {
		for _, v := range values {
			if v > max {
				max = v
			}
		}
	}
	return max
}
