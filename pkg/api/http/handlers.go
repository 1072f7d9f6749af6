package http

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kamathhrishi/openbb-formd-filings/internal/charts"
	"github.com/kamathhrishi/openbb-formd-filings/internal/widgets"
	"github.com/kamathhrishi/openbb-formd-filings/pkg/adapters/backend"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail represents error details
type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Pagination describes one page of a table response.
type Pagination struct {
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	TotalItems int  `json:"total_items"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// FilingsResponse is the latest filings table payload.
type FilingsResponse struct {
	Data       []backend.Filing `json:"data"`
	Pagination Pagination       `json:"pagination"`
}

// chartOptions reads the query parameters shared by the chart widgets.
func chartOptions(c *gin.Context, defaultMetric string) charts.Options {
	return charts.Options{
		Metric:   c.DefaultQuery("metric", defaultMetric),
		Year:     c.DefaultQuery("year", "all"),
		Industry: c.DefaultQuery("industry", "all"),
		Theme:    c.DefaultQuery("theme", "dark"),
	}
}

// rawRequested reports whether the caller asked for the underlying data
// instead of a rendered figure.
func rawRequested(c *gin.Context) bool {
	raw, err := strconv.ParseBool(c.Query("raw"))
	return err == nil && raw
}

func queryInt(c *gin.Context, name string, fallback int) int {
	value := c.Query(name)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

// upstreamError maps a backend failure onto the 502 error envelope.
func (s *Server) upstreamError(c *gin.Context, widget string, err error) {
	code := "UPSTREAM_ERROR"
	switch {
	case errors.Is(err, backend.ErrUnreachable):
		code = "UPSTREAM_UNREACHABLE"
	case errors.Is(err, backend.ErrMalformed):
		code = "UPSTREAM_MALFORMED"
	}

	s.logger.Error("failed to fetch widget data",
		zap.String("widget", widget),
		zap.Error(err))
	s.incWidgetBuilt(widget, "error")

	c.JSON(http.StatusBadGateway, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: "Failed to fetch data from the Form D backend",
			Details: err.Error(),
		},
	})
}

// noData answers a widget request when the backend returned an empty
// dataset. The host renders the message in place of the widget.
func (s *Server) noData(c *gin.Context, widget string) {
	s.incWidgetBuilt(widget, "no_data")
	c.JSON(http.StatusOK, gin.H{"error": "No data available from backend"})
}

func (s *Server) incWidgetBuilt(widget, status string) {
	if s.metrics != nil {
		s.metrics.IncWidgetBuilt(widget, status)
	}
}

// handleRoot handles service info requests
func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        "Form D Analytics Hub",
		"description": "SEC Form D filings widget backend for OpenBB Workspace",
		"widgets":     len(s.widgets),
		"endpoints": gin.H{
			"widgets": "/widgets.json",
			"apps":    "/apps.json",
			"health":  "/health",
			"metrics": "/metrics",
		},
	})
}

// handleHealth handles health check requests
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"checks": gin.H{
			"widgets": len(s.widgets),
		},
	})
}

// handleWidgets serves the widget registry consumed by the dashboard host
func (s *Server) handleWidgets(c *gin.Context) {
	c.JSON(http.StatusOK, s.widgets)
}

// handleApps serves the prebuilt dashboard layouts
func (s *Server) handleApps(c *gin.Context) {
	c.JSON(http.StatusOK, s.apps)
}

// handleIntro serves the introduction markdown widget
func (s *Server) handleIntro(c *gin.Context) {
	s.incWidgetBuilt("form_d_intro", "success")
	c.JSON(http.StatusOK, s.intro)
}

// handleLatestFilings serves one page of the latest filings table
func (s *Server) handleLatestFilings(c *gin.Context) {
	page := queryInt(c, "page", 1)
	if page < 1 {
		page = 1
	}

	limit := queryInt(c, "limit", queryInt(c, "per_page", 25))
	if limit < 1 || limit > 100 {
		limit = 25
	}

	result, err := s.backend.LatestFilings(c.Request.Context(), page, limit)
	if err != nil {
		s.upstreamError(c, "latest_filings", err)
		return
	}

	filings := result.Filings
	if len(filings) > limit {
		filings = filings[:limit]
	}
	if filings == nil {
		filings = []backend.Filing{}
	}

	totalPages := 0
	if result.TotalItems > 0 {
		totalPages = int(math.Ceil(float64(result.TotalItems) / float64(limit)))
	}

	s.incWidgetBuilt("latest_filings", "success")
	c.JSON(http.StatusOK, FilingsResponse{
		Data: filings,
		Pagination: Pagination{
			Page:       page,
			PerPage:    limit,
			TotalItems: result.TotalItems,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
			HasPrev:    page > 1,
		},
	})
}

// handleSecurityTypes serves the security type distribution donut
func (s *Server) handleSecurityTypes(c *gin.Context) {
	opts := chartOptions(c, charts.MetricCount)

	result, err := s.backend.SecurityTypes(c.Request.Context(), opts.Metric, opts.Year)
	if err != nil {
		s.upstreamError(c, "security_types", err)
		return
	}
	if len(result.Distribution) == 0 {
		s.noData(c, "security_types")
		return
	}

	s.incWidgetBuilt("security_types", "success")
	if rawRequested(c) {
		c.JSON(http.StatusOK, result.Distribution)
		return
	}
	c.JSON(http.StatusOK, charts.SecurityTypesFigure(result.Distribution, opts))
}

// handleTopIndustries serves the top industries bar chart
func (s *Server) handleTopIndustries(c *gin.Context) {
	opts := chartOptions(c, charts.MetricCount)

	dist, err := s.backend.IndustryDistribution(c.Request.Context(), opts.Metric, opts.Year)
	if err != nil {
		s.upstreamError(c, "top_industries", err)
		return
	}
	if len(dist) == 0 {
		s.noData(c, "top_industries")
		return
	}

	if len(dist) > 10 {
		dist = dist[:10]
	}

	s.incWidgetBuilt("top_industries", "success")
	if rawRequested(c) {
		c.JSON(http.StatusOK, dist)
		return
	}
	c.JSON(http.StatusOK, charts.TopIndustriesFigure(dist, opts))
}

// handleMonthlyActivity serves the monthly filing activity lines. With a
// concrete industry filter the chart collapses to that industry's single
// series; otherwise it splits by security type.
func (s *Server) handleMonthlyActivity(c *gin.Context) {
	opts := chartOptions(c, charts.MetricCount)

	var series charts.MonthlySeries
	if opts.Industry != "" && opts.Industry != "all" {
		points, err := s.backend.IndustryTimeSeries(c.Request.Context(), opts.Metric, opts.Industry)
		if err != nil {
			s.upstreamError(c, "monthly_activity", err)
			return
		}
		series = charts.MonthlyFromIndustrySeries(points, opts.Metric, opts.Industry)
	} else {
		points, err := s.backend.MonthlyTimeSeries(c.Request.Context(), opts.Metric)
		if err != nil {
			s.upstreamError(c, "monthly_activity", err)
			return
		}
		series = charts.MonthlyFromTimeSeries(points, opts.Metric)
	}

	series = charts.FilterMonths(series, time.Now())
	if len(series.Months) == 0 {
		s.noData(c, "monthly_activity")
		return
	}

	s.incWidgetBuilt("monthly_activity", "success")
	if rawRequested(c) {
		c.JSON(http.StatusOK, series.Rows())
		return
	}
	c.JSON(http.StatusOK, charts.MonthlyActivityFigure(series, opts))
}

// handleYearlyStatistics serves annual totals aggregated from the monthly
// series
func (s *Server) handleYearlyStatistics(c *gin.Context) {
	opts := chartOptions(c, charts.MetricCount)

	var totals []charts.YearTotal
	if opts.Industry != "" && opts.Industry != "all" {
		points, err := s.backend.IndustryTimeSeries(c.Request.Context(), opts.Metric, opts.Industry)
		if err != nil {
			s.upstreamError(c, "yearly_statistics", err)
			return
		}
		totals = charts.AggregateYearlyIndustry(points, opts.Metric)
	} else {
		points, err := s.backend.MonthlyTimeSeries(c.Request.Context(), opts.Metric)
		if err != nil {
			s.upstreamError(c, "yearly_statistics", err)
			return
		}
		totals = charts.AggregateYearly(points, opts.Metric)
	}

	if len(totals) == 0 {
		s.noData(c, "yearly_statistics")
		return
	}

	s.incWidgetBuilt("yearly_statistics", "success")
	if rawRequested(c) {
		c.JSON(http.StatusOK, totals)
		return
	}
	c.JSON(http.StatusOK, charts.YearlyStatisticsFigure(totals, opts))
}

// handleTopFundraisers serves the largest offerings ranked by amount
func (s *Server) handleTopFundraisers(c *gin.Context) {
	opts := chartOptions(c, charts.MetricOfferingAmount)

	list, err := s.backend.TopFundraisers(c.Request.Context(), opts.Metric, opts.Year, opts.Industry)
	if err != nil {
		s.upstreamError(c, "top_fundraisers", err)
		return
	}

	ranked := charts.RankFundraisers(list, 20)
	if len(ranked) == 0 {
		s.noData(c, "top_fundraisers")
		return
	}

	s.incWidgetBuilt("top_fundraisers", "success")
	if rawRequested(c) {
		c.JSON(http.StatusOK, ranked)
		return
	}
	c.JSON(http.StatusOK, charts.TopFundraisersFigure(ranked, opts))
}

// handleLocationDistribution serves the state choropleth
func (s *Server) handleLocationDistribution(c *gin.Context) {
	opts := chartOptions(c, charts.MetricCount)

	dist, err := s.backend.LocationDistribution(c.Request.Context(), opts.Metric, opts.Year)
	if err != nil {
		s.upstreamError(c, "location_distribution", err)
		return
	}
	if len(dist) == 0 {
		s.noData(c, "location_distribution")
		return
	}

	if len(dist) > 25 {
		dist = dist[:25]
	}

	s.incWidgetBuilt("location_distribution", "success")
	if rawRequested(c) {
		c.JSON(http.StatusOK, dist)
		return
	}
	c.JSON(http.StatusOK, charts.LocationFigure(dist, opts))
}

// handleAvailableYears serves the options for the year dropdown. The years
// come from the backend so the list tracks the loaded dataset.
func (s *Server) handleAvailableYears(c *gin.Context) {
	result, err := s.backend.SecurityTypes(c.Request.Context(), charts.MetricCount, "")
	if err != nil {
		s.upstreamError(c, "available_years", err)
		return
	}
	if len(result.AvailableYears) == 0 {
		s.noData(c, "available_years")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"years": widgets.AvailableYearOptions(result.AvailableYears),
	})
}
