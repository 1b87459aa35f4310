package dataset

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestParseCSV(t *testing.T) {
	data := []byte("a,b\n1,x\n2,y\n")

	frame, err := ParseCSV(data)
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if frame.RowCount() != 2 || frame.ColumnCount() != 2 {
		t.Errorf("shape = %dx%d, want 2x2", frame.RowCount(), frame.ColumnCount())
	}
	col, _ := frame.Column("b")
	if col[1] != "y" {
		t.Errorf("column b = %v", col)
	}
}

func TestParseCSVEmpty(t *testing.T) {
	if _, err := ParseCSV(nil); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestParseXLSX(t *testing.T) {
	wb := excelize.NewFile()
	sheet := wb.GetSheetName(0)
	cells := map[string]interface{}{
		"A1": "name", "B1": "score",
		"A2": "alice", "B2": 10,
		"A3": "bob", "B3": 12,
	}
	for cell, value := range cells {
		if err := wb.SetCellValue(sheet, cell, value); err != nil {
			t.Fatalf("SetCellValue(%s): %v", cell, err)
		}
	}
	buf, err := wb.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}

	frame, err := ParseXLSX(buf.Bytes())
	if err != nil {
		t.Fatalf("ParseXLSX: %v", err)
	}
	if frame.RowCount() != 2 {
		t.Errorf("rows = %d, want 2", frame.RowCount())
	}
	col, ok := frame.Column("score")
	if !ok || col[0] != "10" {
		t.Errorf("score column = %v", col)
	}
}

func TestParseXLSXGarbage(t *testing.T) {
	if _, err := ParseXLSX([]byte("not a workbook")); err == nil {
		t.Error("expected error for non-xlsx bytes")
	}
}
