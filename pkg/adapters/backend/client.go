package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Metrics records the outcome of upstream calls. The prometheus collector
// implements it; a nil Metrics disables recording.
type Metrics interface {
	ObserveBackendRequest(endpoint, outcome string, duration time.Duration)
}

// Client fetches aggregate data from the Form D backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	metrics    Metrics
}

// New creates a backend client for the given base URL. The timeout bounds
// every call end to end; metrics may be nil.
func New(baseURL string, timeout time.Duration, logger *zap.Logger, metrics Metrics) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		metrics:    metrics,
	}
}

// SecurityTypes fetches the distribution of filings by security type, plus
// the years the backend has data for.
func (c *Client) SecurityTypes(ctx context.Context, metric, year string) (*SecurityTypes, error) {
	var out SecurityTypes
	if err := c.get(ctx, "charts/security-type-distribution", buildQuery(metric, year, ""), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// IndustryDistribution fetches the distribution of filings by industry.
func (c *Client) IndustryDistribution(ctx context.Context, metric, year string) ([]DistributionItem, error) {
	var out industryDistributionResponse
	if err := c.get(ctx, "charts/industry-distribution", buildQuery(metric, year, ""), &out); err != nil {
		return nil, err
	}
	return out.Distribution, nil
}

// MonthlyTimeSeries fetches the all-industries monthly series. The count
// metric comes from the default charts endpoint; amount metrics come from
// the amount-raised series.
func (c *Client) MonthlyTimeSeries(ctx context.Context, metric string) ([]MonthlyPoint, error) {
	endpoint := "charts"
	query := url.Values{}
	if metric == "offering_amount" || metric == "amount_sold" {
		endpoint = "charts/amount-raised-timeseries"
		query.Set("metric", metric)
	}

	var out monthlySeriesResponse
	if err := c.get(ctx, endpoint, query, &out); err != nil {
		return nil, err
	}
	return out.TimeSeries, nil
}

// IndustryTimeSeries fetches the monthly series for a single industry.
func (c *Client) IndustryTimeSeries(ctx context.Context, metric, industry string) ([]IndustryPoint, error) {
	var out industrySeriesResponse
	if err := c.get(ctx, "charts/industry-timeseries", buildQuery(metric, "", industry), &out); err != nil {
		return nil, err
	}
	return out.TimeSeries, nil
}

// TopFundraisers fetches the largest filings by offering amount.
func (c *Client) TopFundraisers(ctx context.Context, metric, year, industry string) ([]Fundraiser, error) {
	var out fundraisersResponse
	if err := c.get(ctx, "charts/top-fundraisers", buildQuery(metric, year, industry), &out); err != nil {
		return nil, err
	}
	return out.TopFundraisers, nil
}

// LocationDistribution fetches the distribution of filings by US state.
// When a concrete year is requested a cache-busting timestamp is appended,
// otherwise intermediaries keep serving the all-years aggregate.
func (c *Client) LocationDistribution(ctx context.Context, metric, year string) ([]DistributionItem, error) {
	query := buildQuery(metric, year, "")
	if year != "" && year != "all" {
		query.Set("_t", strconv.FormatInt(time.Now().Unix(), 10))
	}

	var out locationDistributionResponse
	if err := c.get(ctx, "charts/location-distribution", query, &out); err != nil {
		return nil, err
	}
	return out.Distribution, nil
}

// LatestFilings fetches one page of the latest filings feed.
func (c *Client) LatestFilings(ctx context.Context, page, perPage int) (*FilingsPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(perPage))

	var out FilingsPage
	if err := c.get(ctx, "filings/latest", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// buildQuery assembles the common chart query. The metric is always sent;
// year and industry only when a concrete filter is set ("all" means no
// filtering upstream).
func buildQuery(metric, year, industry string) url.Values {
	query := url.Values{}
	if metric != "" {
		query.Set("metric", metric)
	}
	if year != "" && year != "all" {
		query.Set("year", year)
	}
	if industry != "" && industry != "all" {
		query.Set("industry", industry)
	}
	return query
}

// get performs one backend call and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, endpoint string, query url.Values, out any) error {
	u := c.baseURL + "/" + endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("fetching backend data", zap.String("endpoint", endpoint))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(endpoint, "unreachable", start)
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.observe(endpoint, "unreachable", start)
		return fmt.Errorf("%w: reading body: %v", ErrUnreachable, err)
	}

	if resp.StatusCode != http.StatusOK {
		c.observe(endpoint, "error_status", start)
		c.logger.Warn("backend returned error status",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode))
		return fmt.Errorf("%w: status %d from %s", ErrStatus, resp.StatusCode, endpoint)
	}

	if err := json.Unmarshal(body, out); err != nil {
		c.observe(endpoint, "malformed", start)
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	c.observe(endpoint, "success", start)
	return nil
}

func (c *Client) observe(endpoint, outcome string, start time.Time) {
	if c.metrics != nil {
		c.metrics.ObserveBackendRequest(endpoint, outcome, time.Since(start))
	}
}
