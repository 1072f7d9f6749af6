package charts

import (
	"fmt"

	"github.com/kamathhrishi/openbb-formd-filings/pkg/adapters/backend"
	"github.com/kamathhrishi/openbb-formd-filings/pkg/plotly"
)

// allYearsTotalFloor flags a year-filtered response that still looks like
// the all-years aggregate. No single year has six-figure filing counts, so
// a larger total means the backend ignored the year filter.
const allYearsTotalFloor = 100000

// LocationFigure builds the US state choropleth. The caller passes the top
// states (name is the two-letter state code).
func LocationFigure(dist []backend.DistributionItem, opts Options) *plotly.Figure {
	palette := plotly.ThemePalette(opts.Theme)
	amount := IsAmountMetric(opts.Metric)

	locations := make([]string, len(dist))
	values := make([]float64, len(dist))
	hoverTexts := make([]string, len(dist))
	for i, item := range dist {
		locations[i] = item.Name
		values[i] = item.Value
		if amount {
			hoverTexts[i] = fmt.Sprintf("%s: %s", item.Name, plotly.FormatCurrencyShort(item.Value))
		} else {
			hoverTexts[i] = fmt.Sprintf("%s: %s filings", item.Name, plotly.FormatCount(item.Value))
		}
	}

	choropleth := &plotly.Choropleth{
		Type:          "choropleth",
		Locations:     locations,
		Z:             values,
		LocationMode:  "USA-states",
		ColorScale:    "Blues",
		Text:          hoverTexts,
		HoverTemplate: "<b>%{text}</b><extra></extra>",
		ColorBar: &plotly.ColorBar{
			Title: &plotly.Title{
				Text: AxisTitle(opts.Metric),
				Font: &plotly.Font{Color: palette.Text},
			},
			TickFont: &plotly.Font{Color: palette.Text},
		},
	}

	total := TotalValue(dist)
	var totalText string
	if amount {
		totalText = plotly.FormatCurrencyShort(total)
	} else {
		totalText = plotly.FormatCount(total)
	}

	var subtitle string
	switch {
	case opts.Year != "" && opts.Year != "all" && total > allYearsTotalFloor:
		subtitle = fmt.Sprintf("Year %s selected - %s total (may show all years data)", opts.Year, totalText)
	case opts.Year != "" && opts.Year != "all":
		subtitle = fmt.Sprintf("Year %s data - %s total across %d states", opts.Year, totalText, len(dist))
	default:
		subtitle = fmt.Sprintf("All years data - %s total across %d states", totalText, len(dist))
	}
	if ctx := FilterContext(opts.Year, "", opts.Metric); ctx != "" {
		subtitle += ctx
	}

	layout := plotly.BaseLayout(opts.Theme)
	layout.Title = plotly.ChartTitle("Geographic Distribution", subtitle, palette)
	layout.Height = 600
	layout.Margin = &plotly.Margin{L: 50, R: 50, T: 80, B: 50}
	layout.Geo = &plotly.Geo{
		Scope:          "usa",
		Projection:     &plotly.Projection{Type: "albers usa"},
		ShowLakes:      true,
		LakeColor:      "rgb(255, 255, 255)",
		BgColor:        palette.Background,
		LandColor:      "rgba(255,255,255,0.1)",
		CoastlineColor: "rgba(255,255,255,0.3)",
		ShowLand:       true,
		ShowCoastlines: true,
		ShowOcean:      true,
		OceanColor:     palette.Background,
	}

	return &plotly.Figure{
		Data:   []plotly.Trace{choropleth},
		Layout: layout,
		Config: plotly.DefaultConfig(),
	}
}
