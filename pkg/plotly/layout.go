package plotly

import "fmt"

// Layout is the figure layout. Optional sections are pointers so that
// untouched ones stay out of the marshaled JSON.
type Layout struct {
	Title        *Title  `json:"title,omitempty"`
	PaperBgColor string  `json:"paper_bgcolor,omitempty"`
	PlotBgColor  string  `json:"plot_bgcolor,omitempty"`
	Font         *Font   `json:"font,omitempty"`
	Height       int     `json:"height,omitempty"`
	ShowLegend   *bool   `json:"showlegend,omitempty"`
	Legend       *Legend `json:"legend,omitempty"`
	Margin       *Margin `json:"margin,omitempty"`
	XAxis        *Axis   `json:"xaxis,omitempty"`
	YAxis        *Axis   `json:"yaxis,omitempty"`
	HoverMode    string  `json:"hovermode,omitempty"`
	// DragMode is false to disable panning and box select, or one of the
	// plotly drag mode strings.
	DragMode any  `json:"dragmode,omitempty"`
	Geo      *Geo `json:"geo,omitempty"`
}

// Title is a figure or axis title.
type Title struct {
	Text string `json:"text"`
	Font *Font  `json:"font,omitempty"`
}

// Legend positions and styles the trace legend.
type Legend struct {
	Orientation string   `json:"orientation,omitempty"`
	YAnchor     string   `json:"yanchor,omitempty"`
	Y           *float64 `json:"y,omitempty"`
	Font        *Font    `json:"font,omitempty"`
}

// Margin sets the plot margins in pixels.
type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

// Axis styles one cartesian axis.
type Axis struct {
	Title     *Title    `json:"title,omitempty"`
	Range     []float64 `json:"range,omitempty"`
	TickFont  *Font     `json:"tickfont,omitempty"`
	GridColor string    `json:"gridcolor,omitempty"`
}

// Geo configures the map pane of a choropleth figure.
type Geo struct {
	Scope          string      `json:"scope,omitempty"`
	Projection     *Projection `json:"projection,omitempty"`
	ShowLakes      bool        `json:"showlakes,omitempty"`
	LakeColor      string      `json:"lakecolor,omitempty"`
	BgColor        string      `json:"bgcolor,omitempty"`
	LandColor      string      `json:"landcolor,omitempty"`
	CoastlineColor string      `json:"coastlinecolor,omitempty"`
	ShowLand       bool        `json:"showland,omitempty"`
	ShowCoastlines bool        `json:"showcoastlines,omitempty"`
	ShowOcean      bool        `json:"showocean,omitempty"`
	OceanColor     string      `json:"oceancolor,omitempty"`
}

// Projection selects the map projection.
type Projection struct {
	Type string `json:"type,omitempty"`
}

// BaseLayout returns the layout every chart starts from: transparent
// backgrounds so the chart blends into the dashboard panel, themed text,
// and dragging disabled.
func BaseLayout(theme string) *Layout {
	p := ThemePalette(theme)
	return &Layout{
		PaperBgColor: p.Background,
		PlotBgColor:  p.Background,
		Font:         &Font{Color: p.Text},
		DragMode:     false,
	}
}

// ChartTitle renders a bold title with a smaller subtitle line underneath.
func ChartTitle(title, subtitle string, p Palette) *Title {
	return &Title{
		Text: fmt.Sprintf("<b>%s</b><br><sub>%s</sub>", title, subtitle),
		Font: &Font{Color: p.Text, Size: 16},
	}
}

// Bool returns a pointer to b, for optional layout flags like ShowLegend.
func Bool(b bool) *bool { return &b }

// Float returns a pointer to f, for optional layout values like Legend.Y.
func Float(f float64) *float64 { return &f }
