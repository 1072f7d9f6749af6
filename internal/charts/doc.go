// Package charts turns backend aggregates into the plotly figures the
// dashboard renders.
//
// Each builder takes already-fetched backend data plus the request filters
// (metric, year, industry, theme) and returns a complete figure: donut of
// security types, horizontal industry and fundraiser rankings, monthly
// activity lines, a US state choropleth and yearly totals. The data shaping
// steps that feed the figures (top-N grouping, month filtering, company
// dedupe, yearly aggregation) are exposed separately because the raw data
// views return their output without a figure around it.
//
// Data before 2009 is noise in the source filings and is excluded
// everywhere, as is the still-accumulating current month.
package charts
