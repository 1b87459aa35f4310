// Package figure builds serializable chart documents from a tabular frame
// and a chart-type keyword. A Figure is the wire format the frontend renders;
// no drawing happens server-side.
package figure

import "encoding/json"

// Chart-type keywords the dispatcher renders natively. Anything else
// degrades to a scatter rendering.
const (
	ChartBar       = "bar"
	ChartLine      = "line"
	ChartScatter   = "scatter"
	ChartHistogram = "histogram"
	ChartBox       = "box"
	ChartPie       = "pie"
	ChartHeatmap   = "heatmap"
)

// Figure is a serializable chart document.
type Figure struct {
	ChartType  string     `json:"chart_type"`
	Title      string     `json:"title"`
	Theme      string     `json:"theme"`
	XAxis      Axis       `json:"x_axis"`
	YAxis      Axis       `json:"y_axis"`
	ShowLegend bool       `json:"show_legend"`
	ShowGrid   bool       `json:"show_grid"`
	Series     []Series   `json:"series,omitempty"`
	Cells      []HeatCell `json:"cells,omitempty"`
}

// Axis labels one figure axis.
type Axis struct {
	Title string `json:"title,omitempty"`
}

// Series is one named sequence of points.
type Series struct {
	Name   string  `json:"name"`
	Color  string  `json:"color,omitempty"`
	Points []Point `json:"points"`
}

// Point is a single datum. Label carries categorical/datetime x values,
// X carries numeric x values, Value is the y (or count) value.
type Point struct {
	Label string   `json:"label,omitempty"`
	X     *float64 `json:"x,omitempty"`
	Value float64  `json:"value"`
}

// HeatCell is one cell of a heatmap density grid.
type HeatCell struct {
	X     string  `json:"x"`
	Y     string  `json:"y"`
	Value float64 `json:"value"`
}

// JSON serializes the figure.
func (f *Figure) JSON() (string, error) {
	b, err := json.Marshal(f)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
