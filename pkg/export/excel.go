// Package export writes a scored solution to an Excel workbook with one
// sheet per concern: placed racks and summary metrics.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/darkstore/rackplan/pkg/errors"
	"github.com/darkstore/rackplan/pkg/plan"
)

const (
	racksSheet   = "Racks"
	metricsSheet = "Metrics"
)

// WriteWorkbook builds the workbook and saves it to path.
func WriteWorkbook(path string, sol plan.Solution) error {
	f, err := buildWorkbook(sol)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "save workbook %s", path)
	}
	return nil
}

// WorkbookBytes builds the workbook and returns the xlsx bytes.
func WorkbookBytes(sol plan.Solution) ([]byte, error) {
	f, err := buildWorkbook(sol)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode workbook")
	}
	return buf.Bytes(), nil
}

func buildWorkbook(sol plan.Solution) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", racksSheet)
	if _, err := f.NewSheet(metricsSheet); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create sheet %s", metricsSheet)
	}

	if err := writeRacks(f, sol); err != nil {
		return nil, err
	}
	if err := writeMetrics(f, sol); err != nil {
		return nil, err
	}
	return f, nil
}

func writeRacks(f *excelize.File, sol plan.Solution) error {
	header := []any{"ID", "Kind", "X (m)", "Y (m)", "Width (m)", "Height (m)", "Capacity"}
	if err := setRow(f, racksSheet, 1, header); err != nil {
		return err
	}
	for i, p := range sol.Placements {
		row := []any{
			p.Rack.ID,
			p.Rack.Kind.String(),
			p.Pos.X,
			p.Pos.Y,
			p.Rack.Dims.Width,
			p.Rack.Dims.Height,
			p.Rack.Capacity,
		}
		if err := setRow(f, racksSheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeMetrics(f *excelize.File, sol plan.Solution) error {
	m := sol.Metrics
	rows := [][]any{
		{"Metric", "Value"},
		{"Composite score", sol.Score},
		{"Total racks", m.TotalRacks},
		{"Total capacity", m.TotalCapacity},
		{"Area utilization", m.AreaUtilization},
		{"Accessibility", m.Accessibility},
		{"Workflow regularity", m.WorkflowRegularity},
		{"Density", m.Density},
		{"Aisle efficiency", m.AisleEfficiency},
		{"Avg distance to entrance (m)", m.AvgDistanceToEntrance},
		{"Avg distance to dock (m)", m.AvgDistanceToDock},
	}
	for i, row := range rows {
		if err := setRow(f, metricsSheet, i+1, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell := fmt.Sprintf("A%d", row)
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write row %s!%s", sheet, cell)
	}
	return nil
}
