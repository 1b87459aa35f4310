package figure

import (
	"strings"
	"testing"

	"chartly-be/internal/dataset"
)

func irisFrame(t *testing.T) *dataset.Frame {
	t.Helper()
	frame, err := dataset.NewFrame(
		[]string{"species", "sepal_length", "sepal_width"},
		[][]string{
			{"setosa", "5.1", "3.5"},
			{"setosa", "4.9", "3.0"},
			{"versicolor", "6.4", "3.2"},
			{"versicolor", "6.9", "3.1"},
			{"virginica", "6.3", "3.3"},
		},
	)
	if err != nil {
		t.Fatalf("NewFrame: %v", err)
	}
	return frame
}

func TestBuildBarSums(t *testing.T) {
	fig, err := Build(irisFrame(t), ChartBar, "species", "sepal_length")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if fig.ChartType != ChartBar {
		t.Errorf("chart type = %s, want bar", fig.ChartType)
	}
	points := fig.Series[0].Points
	if len(points) != 3 {
		t.Fatalf("got %d bars, want 3", len(points))
	}
	if points[0].Label != "setosa" || points[0].Value != 10.0 {
		t.Errorf("setosa bar = %+v, want sum 10.0", points[0])
	}
}

func TestBuildBarCountsWithoutY(t *testing.T) {
	fig, err := Build(irisFrame(t), ChartBar, "species", "")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	points := fig.Series[0].Points
	if len(points) != 3 || points[1].Label != "versicolor" || points[1].Value != 2 {
		t.Errorf("count bars = %+v", points)
	}
}

func TestBuildScatterNumericAxes(t *testing.T) {
	fig, err := Build(irisFrame(t), ChartScatter, "sepal_width", "sepal_length")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	points := fig.Series[0].Points
	if len(points) != 5 {
		t.Fatalf("got %d points, want 5", len(points))
	}
	if points[0].X == nil || *points[0].X != 3.5 {
		t.Errorf("numeric x axis not preserved: %+v", points[0])
	}
}

func TestBuildUnknownTypeFallsBackToScatter(t *testing.T) {
	fig, err := Build(irisFrame(t), "sunburst", "species", "sepal_length")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if fig.ChartType != ChartScatter {
		t.Errorf("chart type = %s, want scatter fallback", fig.ChartType)
	}
}

func TestBuildMissingColumn(t *testing.T) {
	_, err := Build(irisFrame(t), ChartBar, "petal_length", "")
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("err = %v, want column-not-found", err)
	}
}

func TestBuildLineNonNumericY(t *testing.T) {
	_, err := Build(irisFrame(t), ChartLine, "sepal_length", "species")
	if err == nil || !strings.Contains(err.Error(), "not numeric") {
		t.Errorf("err = %v, want not-numeric", err)
	}
}

func TestBuildHistogram(t *testing.T) {
	fig, err := Build(irisFrame(t), ChartHistogram, "sepal_length", "")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	points := fig.Series[0].Points
	if len(points) != 10 {
		t.Fatalf("got %d bins, want 10", len(points))
	}
	total := 0.0
	for _, p := range points {
		total += p.Value
	}
	if total != 5 {
		t.Errorf("bin counts sum to %v, want 5", total)
	}
}

func TestBuildBoxGrouped(t *testing.T) {
	fig, err := Build(irisFrame(t), ChartBox, "species", "sepal_length")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(fig.Series) != 3 {
		t.Fatalf("got %d groups, want 3", len(fig.Series))
	}
	setosa := fig.Series[0]
	if setosa.Name != "setosa" {
		t.Fatalf("first group = %s, want setosa", setosa.Name)
	}
	byLabel := map[string]float64{}
	for _, p := range setosa.Points {
		byLabel[p.Label] = p.Value
	}
	if byLabel["min"] != 4.9 || byLabel["max"] != 5.1 || byLabel["median"] != 5.0 {
		t.Errorf("setosa summary = %v", byLabel)
	}
}

func TestBuildPie(t *testing.T) {
	fig, err := Build(irisFrame(t), ChartPie, "species", "")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if fig.ChartType != ChartPie || len(fig.Series[0].Points) != 3 {
		t.Errorf("pie = %+v", fig)
	}
}

func TestBuildHeatmap(t *testing.T) {
	fig, err := Build(irisFrame(t), ChartHeatmap, "species", "sepal_width")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(fig.Cells) != 5 {
		t.Errorf("got %d cells, want 5", len(fig.Cells))
	}
	if fig.Cells[0].X != "setosa" || fig.Cells[0].Value != 1 {
		t.Errorf("first cell = %+v", fig.Cells[0])
	}
}

func TestBuildAppliesTheme(t *testing.T) {
	fig, err := Build(irisFrame(t), ChartBar, "species", "")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if fig.Theme != ThemeDark {
		t.Errorf("theme = %s, want %s", fig.Theme, ThemeDark)
	}
	if fig.Series[0].Color == "" {
		t.Error("series color not assigned")
	}
}
