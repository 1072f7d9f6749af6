package backend

// DistributionItem is one named bucket of an aggregate distribution, e.g.
// a security type, an industry or a state code with its total.
type DistributionItem struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// SecurityTypes is the security-type-distribution response. It also carries
// the list of years the backend has data for, which feeds the year dropdowns.
type SecurityTypes struct {
	Distribution   []DistributionItem `json:"distribution"`
	AvailableYears []int              `json:"available_years"`
}

// MonthlyPoint is one month of the all-industries time series, split by
// security type. Date is "YYYY-MM".
type MonthlyPoint struct {
	Date          string  `json:"date"`
	EquityFilings float64 `json:"equity_filings"`
	DebtFilings   float64 `json:"debt_filings"`
	FundFilings   float64 `json:"fund_filings"`
	EquityAmount  float64 `json:"equity_amount"`
	DebtAmount    float64 `json:"debt_amount"`
	FundAmount    float64 `json:"fund_amount"`
}

// IndustryPoint is one month of a single industry's time series.
type IndustryPoint struct {
	Date        string  `json:"date"`
	Filings     float64 `json:"filings"`
	TotalAmount float64 `json:"total_amount"`
}

// Fundraiser is one company in the top-fundraisers ranking.
type Fundraiser struct {
	CompanyName  string  `json:"company_name"`
	Amount       float64 `json:"amount"`
	SecurityType string  `json:"security_type"`
	Industry     string  `json:"industry,omitempty"`
	State        string  `json:"state,omitempty"`
	Date         string  `json:"date,omitempty"`
}

// Filing is one raw filing record. The hub does not interpret filing fields;
// records pass through to the table widget as-is.
type Filing map[string]any

// FilingsPage is one page of the latest-filings feed.
type FilingsPage struct {
	Filings    []Filing `json:"filings"`
	TotalItems int      `json:"total_items"`
}

type industryDistributionResponse struct {
	Distribution []DistributionItem `json:"distribution"`
}

type monthlySeriesResponse struct {
	TimeSeries []MonthlyPoint `json:"time_series"`
}

type industrySeriesResponse struct {
	TimeSeries []IndustryPoint `json:"timeseries"`
}

type fundraisersResponse struct {
	TopFundraisers []Fundraiser `json:"top_fundraisers"`
}

type locationDistributionResponse struct {
	Distribution []DistributionItem `json:"distribution"`
}
