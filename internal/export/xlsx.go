package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/san-kum/brushchart/internal/app"
	"github.com/san-kum/brushchart/internal/chart"
)

const (
	SamplesSheet   = "Samples"
	SelectionSheet = "Selection"
)

// XLSX writes the samples with their selection flag, and a summary of the
// selection, as a workbook.
func XLSX(w io.Writer, f chart.Frame[app.ChildView]) error {
	x := excelize.NewFile()
	defer x.Close()

	if err := x.SetSheetName("Sheet1", SamplesSheet); err != nil {
		return err
	}
	if _, err := x.NewSheet(SelectionSheet); err != nil {
		return err
	}

	bold, err := x.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	rows := [][]any{{"Index", "Value", "Selected"}}
	for _, d := range f.Dots {
		rows = append(rows, []any{d.Index, d.Value, d.Emphasized})
	}
	if err := writeRows(x, SamplesSheet, rows); err != nil {
		return err
	}
	if err := x.SetCellStyle(SamplesSheet, "A1", "C1", bold); err != nil {
		return err
	}

	view := f.Child
	summary := [][]any{
		{"Low", f.Selection.Low},
		{"High", f.Selection.High},
		{"Count", view.Count()},
	}
	if !view.Empty() {
		summary = append(summary,
			[]any{"Min", view.Min},
			[]any{"Max", view.Max},
			[]any{"Mean", view.Mean},
		)
	}
	if err := writeRows(x, SelectionSheet, summary); err != nil {
		return err
	}
	if err := x.SetCellStyle(SelectionSheet, "A1", fmt.Sprintf("A%d", len(summary)), bold); err != nil {
		return err
	}

	x.SetActiveSheet(0)
	if _, err := x.WriteTo(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

func writeRows(x *excelize.File, sheet string, rows [][]any) error {
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := x.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("%s!%s: %w", sheet, cell, err)
			}
		}
	}
	return nil
}
