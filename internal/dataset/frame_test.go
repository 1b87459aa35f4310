package dataset

import "testing"

func TestNewFrameDropsEmptyRowsAndColumns(t *testing.T) {
	frame, err := NewFrame(
		[]string{"a", "blank", "b"},
		[][]string{
			{"1", "", "x"},
			{"", "", ""},
			{"2", " ", "y"},
		},
	)
	if err != nil {
		t.Fatalf("NewFrame: %v", err)
	}

	if frame.RowCount() != 2 {
		t.Errorf("rows = %d, want 2", frame.RowCount())
	}
	if frame.ColumnCount() != 2 {
		t.Errorf("columns = %d, want 2", frame.ColumnCount())
	}
	if frame.HasColumn("blank") {
		t.Error("fully empty column should be dropped")
	}
	if !frame.HasColumn("a") || !frame.HasColumn("b") {
		t.Errorf("surviving headers = %v", frame.Headers)
	}
}

func TestNewFramePadsRaggedRows(t *testing.T) {
	frame, err := NewFrame(
		[]string{"a", "b", "c"},
		[][]string{
			{"1", "x", "p"},
			{"2", "y"},
		},
	)
	if err != nil {
		t.Fatalf("NewFrame: %v", err)
	}

	col, ok := frame.Column("c")
	if !ok {
		t.Fatal("column c missing")
	}
	if len(col) != 2 || col[1] != "" {
		t.Errorf("column c = %v, want padded missing cell", col)
	}
}

func TestNewFrameNoColumns(t *testing.T) {
	if _, err := NewFrame(nil, nil); err == nil {
		t.Error("expected error for headerless input")
	}
}

func TestColumnUnknown(t *testing.T) {
	frame, _ := NewFrame([]string{"a"}, [][]string{{"1"}})
	if _, ok := frame.Column("nope"); ok {
		t.Error("unknown column should report ok=false")
	}
}

func TestPreview(t *testing.T) {
	frame, err := NewFrame(
		[]string{"n", "flag", "label"},
		[][]string{
			{"1.5", "true", "x"},
			{"2", "false", ""},
			{"3", "true", "z"},
		},
	)
	if err != nil {
		t.Fatalf("NewFrame: %v", err)
	}

	preview := frame.Preview(2)
	if len(preview) != 2 {
		t.Fatalf("preview length = %d, want 2", len(preview))
	}

	if v, ok := preview[0]["n"].(float64); !ok || v != 1.5 {
		t.Errorf("numeric cell = %#v, want float64 1.5", preview[0]["n"])
	}
	if v, ok := preview[1]["flag"].(bool); !ok || v {
		t.Errorf("boolean cell = %#v, want false", preview[1]["flag"])
	}
	if preview[1]["label"] != nil {
		t.Errorf("missing cell = %#v, want nil", preview[1]["label"])
	}
	if preview[0]["label"] != "x" {
		t.Errorf("categorical cell = %#v, want \"x\"", preview[0]["label"])
	}
}

func TestPreviewLimitBeyondRows(t *testing.T) {
	frame, _ := NewFrame([]string{"a"}, [][]string{{"1"}})
	if got := frame.Preview(20); len(got) != 1 {
		t.Errorf("preview length = %d, want 1", len(got))
	}
}
