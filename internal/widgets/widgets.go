package widgets

// Widget payload types the host can render.
const (
	TypeMarkdown = "markdown"
	TypeTable    = "table"
	TypeChart    = "chart"
)

// YearsEndpoint serves the year dropdown options for every year parameter.
const YearsEndpoint = "/api/available_years"

// Widget describes one widget endpoint to the dashboard host.
type Widget struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category,omitempty"`
	Type        string   `json:"type"`
	Endpoint    string   `json:"endpoint"`
	GridData    GridData `json:"gridData"`
	Source      []string `json:"source,omitempty"`
	Params      []Param  `json:"params,omitempty"`
}

// GridData is the widget's default size on the dashboard grid. The grid is
// 40 columns wide.
type GridData struct {
	W int `json:"w"`
	H int `json:"h"`
}

// Param is one configurable widget input rendered by the host.
type Param struct {
	ParamName       string   `json:"paramName"`
	Value           string   `json:"value,omitempty"`
	Label           string   `json:"label"`
	Type            string   `json:"type"`
	Description     string   `json:"description,omitempty"`
	Options         []Option `json:"options,omitempty"`
	OptionsEndpoint string   `json:"optionsEndpoint,omitempty"`
}

// Option is one dropdown choice.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

func yearParam() Param {
	return Param{
		ParamName:       "year",
		Value:           "all",
		Label:           "Year",
		Type:            "endpoint",
		Description:     "Filter filings by year",
		OptionsEndpoint: YearsEndpoint,
	}
}

func metricParam(defaultValue string) Param {
	return Param{
		ParamName:   "metric",
		Value:       defaultValue,
		Label:       "Metric",
		Type:        "text",
		Description: "Value to aggregate",
		Options: []Option{
			{Label: "Filing Count", Value: "count"},
			{Label: "Offering Amount", Value: "offering_amount"},
			{Label: "Amount Sold", Value: "amount_sold"},
		},
	}
}

func industryParam() Param {
	return Param{
		ParamName:   "industry",
		Value:       "all",
		Label:       "Industry",
		Type:        "text",
		Description: "Filter by industry group, or 'all'",
	}
}

// Registry returns the widget descriptors served at /widgets.json, keyed by
// widget id. Each id doubles as the route the host fetches, so the map
// enumerates exactly the widget endpoints the hub implements.
func Registry() map[string]Widget {
	source := []string{"SEC EDGAR"}

	return map[string]Widget{
		"form_d_intro": {
			Name:        "Form D Introduction",
			Description: "What SEC Form D filings are and how to read this dashboard",
			Category:    "Form D",
			Type:        TypeMarkdown,
			Endpoint:    "form_d_intro",
			GridData:    GridData{W: 40, H: 6},
			Source:      source,
		},
		"latest_filings": {
			Name:        "Latest Filings",
			Description: "Most recent Form D filings as reported to EDGAR",
			Category:    "Form D",
			Type:        TypeTable,
			Endpoint:    "latest_filings",
			GridData:    GridData{W: 40, H: 12},
			Source:      source,
		},
		"security_types": {
			Name:        "Security Type Distribution",
			Description: "Share of filings by security type, top four plus all others",
			Category:    "Form D",
			Type:        TypeChart,
			Endpoint:    "security_types",
			GridData:    GridData{W: 20, H: 9},
			Source:      source,
			Params:      []Param{yearParam(), metricParam("count")},
		},
		"top_industries": {
			Name:        "Top 10 Industries",
			Description: "Most active industry groups by filings or amounts",
			Category:    "Form D",
			Type:        TypeChart,
			Endpoint:    "top_industries",
			GridData:    GridData{W: 20, H: 9},
			Source:      source,
			Params:      []Param{yearParam(), metricParam("count")},
		},
		"monthly_activity": {
			Name:        "Monthly Filing Activity",
			Description: "Filing volume over time by security type",
			Category:    "Form D",
			Type:        TypeChart,
			Endpoint:    "monthly_activity",
			GridData:    GridData{W: 40, H: 11},
			Source:      source,
			Params:      []Param{metricParam("count"), industryParam()},
		},
		"yearly_statistics": {
			Name:        "Yearly Statistics",
			Description: "Annual filing totals aggregated from the monthly series",
			Category:    "Form D",
			Type:        TypeChart,
			Endpoint:    "yearly_statistics",
			GridData:    GridData{W: 20, H: 11},
			Source:      source,
			Params:      []Param{metricParam("count"), industryParam()},
		},
		"top_fundraisers": {
			Name:        "Top 20 Fundraisers",
			Description: "Largest offerings by company, colored by security type",
			Category:    "Form D",
			Type:        TypeChart,
			Endpoint:    "top_fundraisers",
			GridData:    GridData{W: 20, H: 11},
			Source:      source,
			Params:      []Param{yearParam(), metricParam("offering_amount"), industryParam()},
		},
		"location_distribution": {
			Name:        "Geographic Distribution",
			Description: "Filings by US state of the issuer",
			Category:    "Form D",
			Type:        TypeChart,
			Endpoint:    "location_distribution",
			GridData:    GridData{W: 40, H: 14},
			Source:      source,
			Params:      []Param{yearParam(), metricParam("count")},
		},
	}
}
