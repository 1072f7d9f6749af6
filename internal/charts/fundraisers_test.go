package charts

import (
	"testing"

	"github.com/kamathhrishi/openbb-formd-filings/pkg/adapters/backend"
	"github.com/kamathhrishi/openbb-formd-filings/pkg/plotly"
)

func TestRankFundraisersDedupes(t *testing.T) {
	list := []backend.Fundraiser{
		{CompanyName: "Acme Capital", Amount: 500, SecurityType: "Equity"},
		{CompanyName: "Blue Ridge Fund", Amount: 900, SecurityType: "Fund"},
		{CompanyName: "Acme Capital", Amount: 1200, SecurityType: "Debt"},
		{CompanyName: "Crest Partners", Amount: 300, SecurityType: "Equity"},
	}

	ranked := RankFundraisers(list, 20)

	if len(ranked) != 3 {
		t.Fatalf("Expected 3 companies after dedupe, got %d", len(ranked))
	}
	if ranked[0].CompanyName != "Acme Capital" || ranked[0].Amount != 1200 {
		t.Errorf("Expected Acme Capital's largest filing first, got %+v", ranked[0])
	}
	if ranked[0].SecurityType != "Debt" {
		t.Errorf("Dedupe should keep the whole largest record, got type %q", ranked[0].SecurityType)
	}
	if ranked[1].CompanyName != "Blue Ridge Fund" || ranked[2].CompanyName != "Crest Partners" {
		t.Errorf("Expected descending order by amount, got %+v", ranked)
	}
}

func TestRankFundraisersLimits(t *testing.T) {
	var list []backend.Fundraiser
	for i := 0; i < 30; i++ {
		list = append(list, backend.Fundraiser{
			CompanyName: string(rune('A' + i)),
			Amount:      float64(i),
		})
	}

	ranked := RankFundraisers(list, 20)
	if len(ranked) != 20 {
		t.Fatalf("Expected at most 20 fundraisers, got %d", len(ranked))
	}
}

func TestTopFundraisersFigure(t *testing.T) {
	ranked := []backend.Fundraiser{
		{CompanyName: "Blue Ridge Fund", Amount: 9000000, SecurityType: "Fund"},
		{CompanyName: "Acme Capital", Amount: 5000000, SecurityType: "Equity"},
		{CompanyName: "Crest Partners", Amount: 1000000},
	}

	fig := TopFundraisersFigure(ranked, Options{Metric: MetricOfferingAmount, Theme: plotly.ThemeDark})

	bar := fig.Data[0].(*plotly.Bar)
	if bar.Orientation != "h" {
		t.Errorf("Expected horizontal bars, got %q", bar.Orientation)
	}

	// Ascending for display: smallest at the bottom.
	names := bar.Y.([]string)
	if names[0] != "Crest Partners" || names[2] != "Blue Ridge Fund" {
		t.Errorf("Expected ascending display order, got %v", names)
	}

	colors := bar.Marker.Color.([]string)
	if colors[0] != "#8B5CF6" {
		t.Errorf("Expected default color for missing security type, got %q", colors[0])
	}
	if colors[1] != "#3B82F6" || colors[2] != "#10B981" {
		t.Errorf("Expected security type colors, got %v", colors)
	}

	if bar.CustomData[0] != "Unknown" {
		t.Errorf("Expected 'Unknown' for missing security type, got %q", bar.CustomData[0])
	}
	if bar.Text[2] != "$9.0M" {
		t.Errorf("Expected short currency text, got %q", bar.Text[2])
	}
}

func TestTopFundraisersFigureTruncatesNames(t *testing.T) {
	long := "Extremely Long Institutional Capital Management Partners Fund III LP"
	ranked := []backend.Fundraiser{{CompanyName: long, Amount: 100}}

	fig := TopFundraisersFigure(ranked, Options{Metric: MetricOfferingAmount, Theme: plotly.ThemeDark})

	names := fig.Data[0].(*plotly.Bar).Y.([]string)
	if names[0] != long[:40]+"..." {
		t.Errorf("Expected 40-char truncation, got %q", names[0])
	}
}
