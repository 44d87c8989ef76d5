package export

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/darkstore/rackplan/pkg/catalog"
	"github.com/darkstore/rackplan/pkg/geometry"
	"github.com/darkstore/rackplan/pkg/plan"
)

func testSolution(t *testing.T) plan.Solution {
	t.Helper()
	racks, err := catalog.Default().NewRacks(2, catalog.KindFreezer)
	if err != nil {
		t.Fatal(err)
	}
	return plan.Solution{
		Placements: []plan.Placement{
			{Rack: racks[0], Pos: geometry.Position{X: 1.5, Y: 2}},
			{Rack: racks[1], Pos: geometry.Position{X: 8, Y: 2}},
		},
		Score: 58.3,
		Metrics: plan.Metrics{
			TotalRacks:    2,
			TotalCapacity: 300,
		},
	}
}

func TestWorkbookBytes(t *testing.T) {
	data, err := WorkbookBytes(testSolution(t))
	if err != nil {
		t.Fatalf("WorkbookBytes: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(racksSheet)
	if err != nil {
		t.Fatalf("GetRows(%s): %v", racksSheet, err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rack rows, want header + 2", len(rows))
	}
	if rows[1][0] != "freezer_1" || rows[1][1] != "freezer" {
		t.Errorf("rack row = %v", rows[1])
	}

	metrics, err := f.GetRows(metricsSheet)
	if err != nil {
		t.Fatalf("GetRows(%s): %v", metricsSheet, err)
	}
	if len(metrics) < 10 {
		t.Errorf("got %d metric rows, want at least 10", len(metrics))
	}
	if metrics[2][0] != "Total racks" || metrics[2][1] != "2" {
		t.Errorf("metric row = %v", metrics[2])
	}
}

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solution.xlsx")
	if err := WriteWorkbook(path, testSolution(t)); err != nil {
		t.Fatalf("WriteWorkbook: %v", err)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen file: %v", err)
	}
	defer f.Close()
	if list := f.GetSheetList(); len(list) != 2 {
		t.Errorf("sheets = %v, want 2", list)
	}
}
