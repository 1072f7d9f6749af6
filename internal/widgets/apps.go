package widgets

// App is a prebuilt dashboard the host can install: named tabs, each laying
// out widgets on the grid.
type App struct {
	Name               string         `json:"name"`
	Description        string         `json:"description"`
	AllowCustomization bool           `json:"allowCustomization"`
	Tabs               map[string]Tab `json:"tabs"`
	Groups             []Group        `json:"groups"`
}

// Tab is one dashboard tab.
type Tab struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Layout []LayoutItem `json:"layout"`
}

// LayoutItem places widget i at grid position (x, y) with size (w, h).
type LayoutItem struct {
	I string `json:"i"`
	X int    `json:"x"`
	Y int    `json:"y"`
	W int    `json:"w"`
	H int    `json:"h"`
}

// Group links parameters across widgets. The Form D app keeps every widget
// independently filterable, so the list stays empty.
type Group struct {
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	ParamName string   `json:"paramName"`
	WidgetIDs []string `json:"widgetIds"`
}

// Apps returns the app templates served at /apps.json: one Form D
// analytics dashboard with overview, trends and geographic tabs.
func Apps() []App {
	return []App{
		{
			Name:               "Form D Analytics Hub",
			Description:        "SEC Form D private offering analytics: latest filings, security types, industries, time series and geography",
			AllowCustomization: true,
			Tabs: map[string]Tab{
				"overview": {
					ID:   "overview",
					Name: "Overview",
					Layout: []LayoutItem{
						{I: "form_d_intro", X: 0, Y: 0, W: 40, H: 6},
						{I: "latest_filings", X: 0, Y: 6, W: 40, H: 12},
						{I: "security_types", X: 0, Y: 18, W: 20, H: 9},
						{I: "top_industries", X: 20, Y: 18, W: 20, H: 9},
					},
				},
				"market-trends": {
					ID:   "market-trends",
					Name: "Market Trends",
					Layout: []LayoutItem{
						{I: "monthly_activity", X: 0, Y: 0, W: 40, H: 11},
						{I: "yearly_statistics", X: 0, Y: 11, W: 20, H: 11},
						{I: "top_fundraisers", X: 20, Y: 11, W: 20, H: 11},
					},
				},
				"geographic-analysis": {
					ID:   "geographic-analysis",
					Name: "Geographic Analysis",
					Layout: []LayoutItem{
						{I: "location_distribution", X: 0, Y: 0, W: 40, H: 14},
					},
				},
			},
			Groups: []Group{},
		},
	}
}
