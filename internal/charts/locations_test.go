package charts

import (
	"strings"
	"testing"

	"github.com/kamathhrishi/openbb-formd-filings/pkg/adapters/backend"
	"github.com/kamathhrishi/openbb-formd-filings/pkg/plotly"
)

func TestLocationFigure(t *testing.T) {
	dist := []backend.DistributionItem{
		{Name: "CA", Value: 12000},
		{Name: "NY", Value: 8000},
		{Name: "TX", Value: 5000},
	}

	fig := LocationFigure(dist, Options{Metric: MetricCount, Theme: plotly.ThemeDark})

	choropleth := fig.Data[0].(*plotly.Choropleth)
	if choropleth.LocationMode != "USA-states" {
		t.Errorf("Expected USA-states location mode, got %q", choropleth.LocationMode)
	}
	if choropleth.ColorScale != "Blues" {
		t.Errorf("Expected Blues colorscale, got %q", choropleth.ColorScale)
	}
	if choropleth.Locations[0] != "CA" || choropleth.Z[0] != 12000 {
		t.Errorf("Unexpected first location: %v %v", choropleth.Locations, choropleth.Z)
	}
	if choropleth.Text[0] != "CA: 12,000 filings" {
		t.Errorf("Unexpected hover text %q", choropleth.Text[0])
	}

	if !strings.Contains(fig.Layout.Title.Text, "All years data - 25,000 total across 3 states") {
		t.Errorf("Unexpected subtitle: %q", fig.Layout.Title.Text)
	}
	if fig.Layout.Geo == nil || fig.Layout.Geo.Scope != "usa" {
		t.Error("Expected USA geo scope")
	}
}

func TestLocationFigureYearSubtitles(t *testing.T) {
	small := []backend.DistributionItem{{Name: "CA", Value: 900}}
	fig := LocationFigure(small, Options{Metric: MetricCount, Year: "2023", Theme: plotly.ThemeDark})
	if !strings.Contains(fig.Layout.Title.Text, "Year 2023 data - 900 total across 1 states") {
		t.Errorf("Unexpected filtered subtitle: %q", fig.Layout.Title.Text)
	}

	// A six-figure total under a year filter means the backend served the
	// all-years aggregate anyway.
	big := []backend.DistributionItem{{Name: "CA", Value: 150000}}
	fig = LocationFigure(big, Options{Metric: MetricCount, Year: "2023", Theme: plotly.ThemeDark})
	if !strings.Contains(fig.Layout.Title.Text, "may show all years data") {
		t.Errorf("Expected the all-years warning, got %q", fig.Layout.Title.Text)
	}
}

func TestLocationFigureAmountHover(t *testing.T) {
	dist := []backend.DistributionItem{{Name: "NY", Value: 2300000}}

	fig := LocationFigure(dist, Options{Metric: MetricOfferingAmount, Theme: plotly.ThemeDark})

	choropleth := fig.Data[0].(*plotly.Choropleth)
	if choropleth.Text[0] != "NY: $2.3M" {
		t.Errorf("Expected currency hover text, got %q", choropleth.Text[0])
	}
	if choropleth.ColorBar.Title.Text != "Offering Amount ($)" {
		t.Errorf("Unexpected colorbar title %q", choropleth.ColorBar.Title.Text)
	}
}
