package widgets

import (
	"strings"
	"testing"
)

func TestRegistryEndpointsMatchIDs(t *testing.T) {
	for id, w := range Registry() {
		if w.Endpoint != id {
			t.Errorf("Widget %q: endpoint %q does not match its id", id, w.Endpoint)
		}
		if w.Name == "" || w.Description == "" {
			t.Errorf("Widget %q: missing name or description", id)
		}
		switch w.Type {
		case TypeMarkdown, TypeTable, TypeChart:
		default:
			t.Errorf("Widget %q: unknown type %q", id, w.Type)
		}
		if w.GridData.W == 0 || w.GridData.H == 0 {
			t.Errorf("Widget %q: missing grid size", id)
		}
	}
}

func TestRegistryYearParamsUseYearsEndpoint(t *testing.T) {
	for id, w := range Registry() {
		for _, p := range w.Params {
			if p.ParamName != "year" {
				continue
			}
			if p.OptionsEndpoint != YearsEndpoint {
				t.Errorf("Widget %q: year param should use %s, got %q", id, YearsEndpoint, p.OptionsEndpoint)
			}
			if p.Value != "all" {
				t.Errorf("Widget %q: year param should default to 'all', got %q", id, p.Value)
			}
		}
	}
}

func TestAppsReferenceOnlyRegisteredWidgets(t *testing.T) {
	registry := Registry()
	apps := Apps()

	if len(apps) != 1 {
		t.Fatalf("Expected one app template, got %d", len(apps))
	}

	app := apps[0]
	wantTabs := []string{"overview", "market-trends", "geographic-analysis"}
	if len(app.Tabs) != len(wantTabs) {
		t.Fatalf("Expected %d tabs, got %d", len(wantTabs), len(app.Tabs))
	}

	placed := make(map[string]bool)
	for _, key := range wantTabs {
		tab, ok := app.Tabs[key]
		if !ok {
			t.Fatalf("Missing tab %q", key)
		}
		if tab.ID != key {
			t.Errorf("Tab %q: id %q does not match its key", key, tab.ID)
		}
		for _, item := range tab.Layout {
			if _, ok := registry[item.I]; !ok {
				t.Errorf("Tab %q places unknown widget %q", key, item.I)
			}
			placed[item.I] = true
		}
	}

	// Every widget should appear somewhere on the dashboard.
	for id := range registry {
		if !placed[id] {
			t.Errorf("Widget %q is registered but placed on no tab", id)
		}
	}
}

func TestAvailableYearOptions(t *testing.T) {
	options := AvailableYearOptions([]int{2008, 2023, 2009, 2024})

	if options[0].Label != "All Years" || options[0].Value != "all" {
		t.Fatalf("Expected 'All Years' first, got %+v", options[0])
	}

	want := []string{"2024", "2023", "2009"}
	rest := options[1:]
	if len(rest) != len(want) {
		t.Fatalf("Expected years %v, got %+v", want, rest)
	}
	for i, y := range want {
		if rest[i].Value != y {
			t.Errorf("Option %d: expected %s, got %s", i, y, rest[i].Value)
		}
	}
}

func TestIntroMarkdownIsPlain(t *testing.T) {
	md := IntroMarkdown()

	if !strings.HasPrefix(md, "# SEC Form D Filings") {
		t.Error("Expected the intro to open with its heading")
	}
	if !strings.Contains(md, "Regulation D") {
		t.Error("Expected the intro to mention Regulation D")
	}
	for _, r := range md {
		if r > 0x2FFF {
			t.Fatalf("Intro markdown should stay plain text, found %q", r)
		}
	}
}
