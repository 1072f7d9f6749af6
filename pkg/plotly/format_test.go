package plotly

import "testing"

func TestFormatCurrencyShort(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "$0"},
		{950, "$950"},
		{1000, "$1.0K"},
		{1250, "$1.2K"},
		{3400000, "$3.4M"},
		{5600000000, "$5.6B"},
		{7800000000000, "$7.8T"},
		{-2500000, "$-2.5M"},
	}

	for _, tt := range tests {
		if got := FormatCurrencyShort(tt.value); got != tt.want {
			t.Errorf("FormatCurrencyShort(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-45000, "-45,000"},
	}

	for _, tt := range tests {
		if got := FormatCount(tt.value); got != tt.want {
			t.Errorf("FormatCount(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestFormatTextValues(t *testing.T) {
	values := []float64{1500, 2000000}

	amounts := FormatTextValues(values, true)
	if amounts[0] != "$1.5K" || amounts[1] != "$2.0M" {
		t.Errorf("Unexpected amount formatting: %v", amounts)
	}

	counts := FormatTextValues(values, false)
	if counts[0] != "1,500" || counts[1] != "2,000,000" {
		t.Errorf("Unexpected count formatting: %v", counts)
	}
}
