// Package plotly builds plotly.js figure specifications as plain Go values.
//
// A Figure marshals to the JSON shape the dashboard host hands directly to
// plotly.js: {"data": [...], "layout": {...}, "config": {...}}. Traces are
// concrete structs (Pie, Bar, Scatter, Choropleth) whose Type field selects
// the plotly trace type.
//
// The package also carries the shared presentation helpers: dark/light theme
// palettes, the transparent base layout, bold title with subtitle markup, and
// short currency formatting for axis text and hover labels.
package plotly
