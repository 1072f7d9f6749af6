package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func newTestClient(url string) *Client {
	return New(url, 5*time.Second, zap.NewNop(), nil)
}

func TestSecurityTypesForwardsFilters(t *testing.T) {
	var gotPath, gotMetric, gotYear string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMetric = r.URL.Query().Get("metric")
		gotYear = r.URL.Query().Get("year")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"distribution":[{"name":"Equity","value":120},{"name":"Debt","value":30}],"available_years":[2023,2024]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	resp, err := client.SecurityTypes(context.Background(), "count", "2023")
	if err != nil {
		t.Fatalf("SecurityTypes failed: %v", err)
	}

	if gotPath != "/charts/security-type-distribution" {
		t.Errorf("Unexpected path %q", gotPath)
	}
	if gotMetric != "count" {
		t.Errorf("Expected metric 'count', got %q", gotMetric)
	}
	if gotYear != "2023" {
		t.Errorf("Expected year '2023', got %q", gotYear)
	}
	if len(resp.Distribution) != 2 || resp.Distribution[0].Name != "Equity" {
		t.Errorf("Unexpected distribution %+v", resp.Distribution)
	}
	if len(resp.AvailableYears) != 2 || resp.AvailableYears[0] != 2023 {
		t.Errorf("Unexpected available years %v", resp.AvailableYears)
	}
}

func TestSecurityTypesOmitsAllYearFilter(t *testing.T) {
	var rawQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		w.Write([]byte(`{"distribution":[],"available_years":[]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	if _, err := client.SecurityTypes(context.Background(), "count", "all"); err != nil {
		t.Fatalf("SecurityTypes failed: %v", err)
	}

	if rawQuery != "metric=count" {
		t.Errorf("Expected only the metric param, got %q", rawQuery)
	}
}

func TestMonthlyTimeSeriesEndpointSelection(t *testing.T) {
	tests := []struct {
		metric     string
		wantPath   string
		wantMetric string
	}{
		{"count", "/charts", ""},
		{"offering_amount", "/charts/amount-raised-timeseries", "offering_amount"},
		{"amount_sold", "/charts/amount-raised-timeseries", "amount_sold"},
	}

	for _, tt := range tests {
		t.Run(tt.metric, func(t *testing.T) {
			var gotPath, gotMetric string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				gotMetric = r.URL.Query().Get("metric")
				w.Write([]byte(`{"time_series":[{"date":"2023-01","equity_filings":10}]}`))
			}))
			defer server.Close()

			client := newTestClient(server.URL)
			series, err := client.MonthlyTimeSeries(context.Background(), tt.metric)
			if err != nil {
				t.Fatalf("MonthlyTimeSeries failed: %v", err)
			}

			if gotPath != tt.wantPath {
				t.Errorf("Expected path %q, got %q", tt.wantPath, gotPath)
			}
			if gotMetric != tt.wantMetric {
				t.Errorf("Expected metric %q, got %q", tt.wantMetric, gotMetric)
			}
			if len(series) != 1 || series[0].Date != "2023-01" {
				t.Errorf("Unexpected series %+v", series)
			}
		})
	}
}

func TestLocationDistributionCacheBuster(t *testing.T) {
	tests := []struct {
		name       string
		year       string
		wantBuster bool
	}{
		{"concrete year", "2023", true},
		{"all years", "all", false},
		{"no year", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buster string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				buster = r.URL.Query().Get("_t")
				w.Write([]byte(`{"distribution":[{"name":"CA","value":500}]}`))
			}))
			defer server.Close()

			client := newTestClient(server.URL)
			if _, err := client.LocationDistribution(context.Background(), "count", tt.year); err != nil {
				t.Fatalf("LocationDistribution failed: %v", err)
			}

			if tt.wantBuster && buster == "" {
				t.Error("Expected cache buster for concrete year filter")
			}
			if !tt.wantBuster && buster != "" {
				t.Errorf("Expected no cache buster, got %q", buster)
			}
		})
	}
}

func TestLatestFilingsForwardsPagination(t *testing.T) {
	var gotPage, gotPerPage string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPage = r.URL.Query().Get("page")
		gotPerPage = r.URL.Query().Get("per_page")
		w.Write([]byte(`{"filings":[{"company_name":"Acme Fund LP","amount":1000000}],"total_items":57}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	page, err := client.LatestFilings(context.Background(), 2, 25)
	if err != nil {
		t.Fatalf("LatestFilings failed: %v", err)
	}

	if gotPage != "2" || gotPerPage != "25" {
		t.Errorf("Expected page=2 per_page=25, got page=%s per_page=%s", gotPage, gotPerPage)
	}
	if page.TotalItems != 57 {
		t.Errorf("Expected 57 total items, got %d", page.TotalItems)
	}
	if len(page.Filings) != 1 || page.Filings[0]["company_name"] != "Acme Fund LP" {
		t.Errorf("Unexpected filings %+v", page.Filings)
	}
}

func TestErrorClassification(t *testing.T) {
	t.Run("error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		_, err := client.SecurityTypes(context.Background(), "count", "")
		if !errors.Is(err, ErrStatus) {
			t.Errorf("Expected ErrStatus, got %v", err)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html>not json</html>`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		_, err := client.SecurityTypes(context.Background(), "count", "")
		if !errors.Is(err, ErrMalformed) {
			t.Errorf("Expected ErrMalformed, got %v", err)
		}
	})

	t.Run("unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client := newTestClient(server.URL)
		_, err := client.SecurityTypes(context.Background(), "count", "")
		if !errors.Is(err, ErrUnreachable) {
			t.Errorf("Expected ErrUnreachable, got %v", err)
		}
	})
}
