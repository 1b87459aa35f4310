package figure

import (
	"fmt"
	"math"
	"sort"

	"chartly-be/internal/dataset"
)

// Build dispatches on chartType and constructs a figure from the frame and
// the requested column selections. Unrecognized chart types fall back to a
// scatter rendering so the dispatcher always succeeds for a syntactically
// valid request; column-level problems (absent column, type-incompatible
// selection) are returned as errors for the caller to surface.
func Build(frame *dataset.Frame, chartType, x, y string) (*Figure, error) {
	var (
		fig *Figure
		err error
	)

	switch chartType {
	case ChartBar:
		fig, err = buildBar(frame, x, y)
	case ChartLine:
		fig, err = buildXY(frame, ChartLine, x, y)
	case ChartScatter:
		fig, err = buildXY(frame, ChartScatter, x, y)
	case ChartHistogram:
		fig, err = buildHistogram(frame, x, y)
	case ChartBox:
		fig, err = buildBox(frame, x, y)
	case ChartPie:
		fig, err = buildPie(frame, x, y)
	case ChartHeatmap:
		fig, err = buildHeatmap(frame, x, y)
	default:
		fig, err = buildXY(frame, ChartScatter, x, y)
	}
	if err != nil {
		return nil, err
	}

	ApplyTheme(fig)
	return fig, nil
}

func column(frame *dataset.Frame, name string) ([]string, error) {
	if name == "" {
		return nil, fmt.Errorf("no column selected")
	}
	values, ok := frame.Column(name)
	if !ok {
		return nil, fmt.Errorf("column %q not found", name)
	}
	return values, nil
}

func numericColumn(frame *dataset.Frame, name string) ([]string, error) {
	values, err := column(frame, name)
	if err != nil {
		return nil, err
	}
	if dataset.Classify(values) != dataset.DTypeNumeric {
		return nil, fmt.Errorf("column %q is not numeric", name)
	}
	return values, nil
}

func buildBar(frame *dataset.Frame, x, y string) (*Figure, error) {
	xVals, err := column(frame, x)
	if err != nil {
		return nil, err
	}

	fig := &Figure{
		ChartType:  ChartBar,
		Title:      fmt.Sprintf("%s vs %s", x, y),
		XAxis:      Axis{Title: x},
		YAxis:      Axis{Title: y},
		ShowLegend: true,
		ShowGrid:   true,
	}

	if y == "" {
		fig.Title = fmt.Sprintf("Counts of %s", x)
		fig.YAxis = Axis{Title: "count"}
		fig.Series = []Series{{Name: x, Points: categoryCounts(xVals)}}
		return fig, nil
	}

	yVals, err := numericColumn(frame, y)
	if err != nil {
		return nil, err
	}
	fig.Series = []Series{{Name: y, Points: sumByCategory(xVals, yVals)}}
	return fig, nil
}

func buildXY(frame *dataset.Frame, chartType, x, y string) (*Figure, error) {
	xVals, err := column(frame, x)
	if err != nil {
		return nil, err
	}
	yVals, err := numericColumn(frame, y)
	if err != nil {
		return nil, err
	}

	xNumeric := dataset.Classify(xVals) == dataset.DTypeNumeric

	points := make([]Point, 0, len(xVals))
	for i := range xVals {
		yv, ok := parseFloat(yVals[i])
		if !ok {
			continue
		}
		p := Point{Value: yv}
		if xNumeric {
			if xv, ok := parseFloat(xVals[i]); ok {
				f := xv
				p.X = &f
			} else {
				continue
			}
		} else {
			if xVals[i] == "" {
				continue
			}
			p.Label = xVals[i]
		}
		points = append(points, p)
	}

	return &Figure{
		ChartType:  chartType,
		Title:      fmt.Sprintf("%s vs %s", x, y),
		XAxis:      Axis{Title: x},
		YAxis:      Axis{Title: y},
		ShowLegend: true,
		ShowGrid:   true,
		Series:     []Series{{Name: y, Points: points}},
	}, nil
}

// buildHistogram uses x if given, else y, as its single target column.
func buildHistogram(frame *dataset.Frame, x, y string) (*Figure, error) {
	target := x
	if target == "" {
		target = y
	}
	values, err := numericColumn(frame, target)
	if err != nil {
		return nil, err
	}

	nums := parseAll(values)
	if len(nums) == 0 {
		return nil, fmt.Errorf("column %q has no numeric values", target)
	}

	const bins = 10
	lo, hi := nums[0], nums[0]
	for _, v := range nums {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	width := (hi - lo) / bins
	if width == 0 {
		width = 1
	}

	counts := make([]int, bins)
	for _, v := range nums {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}

	points := make([]Point, bins)
	for i, c := range counts {
		points[i] = Point{
			Label: fmt.Sprintf("%.2f-%.2f", lo+float64(i)*width, lo+float64(i+1)*width),
			Value: float64(c),
		}
	}

	return &Figure{
		ChartType:  ChartHistogram,
		Title:      fmt.Sprintf("Dist of %s", target),
		XAxis:      Axis{Title: target},
		YAxis:      Axis{Title: "count"},
		ShowGrid:   true,
		Series:     []Series{{Name: target, Points: points}},
	}, nil
}

func buildBox(frame *dataset.Frame, x, y string) (*Figure, error) {
	// Single-column box when only x is given.
	if y == "" {
		values, err := numericColumn(frame, x)
		if err != nil {
			return nil, err
		}
		s, err := summarySeries(x, parseAll(values))
		if err != nil {
			return nil, err
		}
		return boxFigure(fmt.Sprintf("Box: %s", x), x, "", []Series{s}), nil
	}

	xVals, err := column(frame, x)
	if err != nil {
		return nil, err
	}
	yVals, err := numericColumn(frame, y)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]float64)
	order := []string{}
	for i, cat := range xVals {
		if cat == "" {
			continue
		}
		v, ok := parseFloat(yVals[i])
		if !ok {
			continue
		}
		if _, seen := grouped[cat]; !seen {
			order = append(order, cat)
		}
		grouped[cat] = append(grouped[cat], v)
	}

	series := make([]Series, 0, len(order))
	for _, cat := range order {
		s, err := summarySeries(cat, grouped[cat])
		if err != nil {
			return nil, err
		}
		series = append(series, s)
	}
	return boxFigure(fmt.Sprintf("Box: %s", x), x, y, series), nil
}

func boxFigure(title, x, y string, series []Series) *Figure {
	return &Figure{
		ChartType:  ChartBox,
		Title:      title,
		XAxis:      Axis{Title: x},
		YAxis:      Axis{Title: y},
		ShowLegend: true,
		ShowGrid:   true,
		Series:     series,
	}
}

// summarySeries computes the five-number summary of one group.
func summarySeries(name string, values []float64) (Series, error) {
	if len(values) == 0 {
		return Series{}, fmt.Errorf("group %q has no numeric values", name)
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	return Series{
		Name: name,
		Points: []Point{
			{Label: "min", Value: sorted[0]},
			{Label: "q1", Value: quantile(sorted, 0.25)},
			{Label: "median", Value: quantile(sorted, 0.5)},
			{Label: "q3", Value: quantile(sorted, 0.75)},
			{Label: "max", Value: sorted[len(sorted)-1]},
		},
	}, nil
}

func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

func buildPie(frame *dataset.Frame, x, y string) (*Figure, error) {
	xVals, err := column(frame, x)
	if err != nil {
		return nil, err
	}

	var points []Point
	if y == "" {
		points = categoryCounts(xVals)
	} else {
		yVals, err := numericColumn(frame, y)
		if err != nil {
			return nil, err
		}
		points = sumByCategory(xVals, yVals)
	}

	return &Figure{
		ChartType:  ChartPie,
		Title:      fmt.Sprintf("Pie: %s", x),
		ShowLegend: true,
		Series:     []Series{{Name: x, Points: points}},
	}, nil
}

func buildHeatmap(frame *dataset.Frame, x, y string) (*Figure, error) {
	xVals, err := column(frame, x)
	if err != nil {
		return nil, err
	}
	yVals, err := column(frame, y)
	if err != nil {
		return nil, err
	}

	counts := make(map[[2]string]float64)
	order := [][2]string{}
	for i := range xVals {
		if xVals[i] == "" || yVals[i] == "" {
			continue
		}
		key := [2]string{xVals[i], yVals[i]}
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}

	cells := make([]HeatCell, 0, len(order))
	for _, key := range order {
		cells = append(cells, HeatCell{X: key[0], Y: key[1], Value: counts[key]})
	}

	return &Figure{
		ChartType: ChartHeatmap,
		Title:     "Heatmap",
		XAxis:     Axis{Title: x},
		YAxis:     Axis{Title: y},
		ShowGrid:  true,
		Cells:     cells,
	}, nil
}

func categoryCounts(values []string) []Point {
	counts := make(map[string]float64)
	order := []string{}
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}
	points := make([]Point, 0, len(order))
	for _, v := range order {
		points = append(points, Point{Label: v, Value: counts[v]})
	}
	return points
}

func sumByCategory(categories, values []string) []Point {
	sums := make(map[string]float64)
	order := []string{}
	for i, cat := range categories {
		if cat == "" {
			continue
		}
		v, ok := parseFloat(values[i])
		if !ok {
			continue
		}
		if _, seen := sums[cat]; !seen {
			order = append(order, cat)
		}
		sums[cat] += v
	}
	points := make([]Point, 0, len(order))
	for _, cat := range order {
		points = append(points, Point{Label: cat, Value: sums[cat]})
	}
	return points
}

func parseFloat(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	return dataset.ParseNumeric(s)
}

func parseAll(values []string) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if f, ok := parseFloat(v); ok {
			out = append(out, f)
		}
	}
	return out
}
